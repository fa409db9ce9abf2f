package counter

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

func newCounter(doc *dom.MemDocument, target string) *dom.MemElement {
	el := doc.Add("", "stat-number").SetAttr(TargetAttr, target)
	el.SetText("0")
	return el
}

func TestCounterReachesTarget(t *testing.T) {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	clock := scheduler.NewVirtual()
	el := newCounter(doc, "200")

	a := New(clock, []dom.Element{el}, nil)
	a.Activate()

	// The first increment is applied synchronously.
	require.Equal(t, "1", el.Text())

	prev := 1
	for i := 0; i < 199; i++ {
		clock.Advance(TickInterval)
		n, err := strconv.Atoi(el.Text())
		require.NoError(t, err)
		require.LessOrEqual(t, n, 200)
		require.GreaterOrEqual(t, n, prev)
		prev = n
	}
	require.Equal(t, "200", el.Text())

	clock.Advance(TickInterval)
	require.Equal(t, "200+", el.Text())
	require.Zero(t, clock.Pending())
}

func TestActivateIsIdempotent(t *testing.T) {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	clock := scheduler.NewVirtual()
	el := newCounter(doc, "50")

	a := New(clock, []dom.Element{el}, nil)
	require.False(t, a.Activated())

	a.Activate()
	a.Activate()
	a.Activate()
	require.True(t, a.Activated())

	// A single chain of ticks is pending.
	require.Equal(t, 1, clock.Pending())

	clock.Advance(time.Second)
	require.Equal(t, "50+", el.Text())
}

func TestCountersRunConcurrently(t *testing.T) {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	clock := scheduler.NewVirtual()
	small := newCounter(doc, "10")
	large := newCounter(doc, "1000")

	a := New(clock, []dom.Element{small, large}, nil)
	a.Activate()
	require.Equal(t, 2, clock.Pending())

	clock.Advance(50 * TickInterval)
	require.Equal(t, "10+", small.Text())
	require.Equal(t, "255", large.Text())

	clock.Advance(time.Second)
	require.Equal(t, "1000+", large.Text())
}

func TestMissingTargetSnapsImmediately(t *testing.T) {
	doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
	clock := scheduler.NewVirtual()
	el := doc.Add("", "stat-number")

	New(clock, []dom.Element{el}, nil).Activate()
	require.Equal(t, "0+", el.Text())
	require.Zero(t, clock.Pending())
}

func TestCounterNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		target := rapid.IntRange(1, 5000).Draw(t, "target")

		doc := dom.NewMemDocument(dom.NewMemWindow(1280, 800))
		clock := scheduler.NewVirtual()
		el := newCounter(doc, strconv.Itoa(target))

		New(clock, []dom.Element{el}, nil).Activate()

		for !strings.HasSuffix(el.Text(), Suffix) {
			n, err := strconv.Atoi(el.Text())
			if err != nil {
				t.Fatalf("non-numeric text %q", el.Text())
			}
			if n > target {
				t.Fatalf("displayed %d above target %d", n, target)
			}
			clock.Advance(TickInterval)
		}

		if el.Text() != strconv.Itoa(target)+Suffix {
			t.Fatalf("terminal text %q", el.Text())
		}
	})
}
