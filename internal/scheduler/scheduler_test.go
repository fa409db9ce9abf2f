package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestVirtualRunsInScheduledOrder(t *testing.T) {
	v := NewVirtual()

	var got []string
	v.AfterFunc(20*time.Millisecond, func() { got = append(got, "b") })
	v.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	v.AfterFunc(20*time.Millisecond, func() { got = append(got, "c") })

	v.Advance(15 * time.Millisecond)
	require.Equal(t, []string{"a"}, got)
	require.Equal(t, 15*time.Millisecond, v.Now())

	v.Advance(5 * time.Millisecond)
	require.Equal(t, []string{"a", "b", "c"}, got)
	require.Zero(t, v.Pending())
}

func TestVirtualRunsRescheduledTasksWithinAdvance(t *testing.T) {
	v := NewVirtual()

	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			v.AfterFunc(time.Millisecond, tick)
		}
	}
	v.AfterFunc(time.Millisecond, tick)

	v.Advance(3 * time.Millisecond)
	require.Equal(t, 3, ticks)

	v.Advance(time.Second)
	require.Equal(t, 5, ticks)
}

func TestVirtualPostWaitsForAdvance(t *testing.T) {
	v := NewVirtual()

	ran := false
	v.Post(func() { ran = true })
	require.False(t, ran)

	v.RunPending()
	require.True(t, ran)
	require.Zero(t, v.Now())
}

func TestLoopSerializesTasks(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(1)
	go loop.Run(ctx)

	const n = 50
	results := make(chan int, n)
	for i := 0; i < n; i++ {
		loop.Post(func() { results <- i })
	}

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		select {
		case v := <-results:
			seen[v] = true
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for loop")
		}
	}
	require.Len(t, seen, n)

	cancel()
	<-loop.Done()
}

func TestLoopAfterFunc(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(0)
	go loop.Run(ctx)

	fired := make(chan struct{})
	loop.AfterFunc(5*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timer never fired")
	}

	cancel()
	<-loop.Done()

	// Posting after stop is a no-op.
	loop.Post(func() { t.Error("ran after stop") })
}
