package scheduler

import (
	"container/heap"
	"sync"
	"time"
)

// Virtual is a Scheduler driven by a manual clock. Nothing runs until the
// caller advances time, which makes timer choreography reproducible in
// tests. Tasks due at the same instant run in the order they were scheduled.
type Virtual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	queue taskHeap
}

// NewVirtual returns a clock at time zero.
func NewVirtual() *Virtual {
	return &Virtual{}
}

// Now returns the elapsed virtual time.
func (v *Virtual) Now() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.now
}

// AfterFunc implements Scheduler.
func (v *Virtual) AfterFunc(d time.Duration, f func()) {
	if d < 0 {
		d = 0
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	heap.Push(&v.queue, &task{at: v.now + d, seq: v.seq, fn: f})
}

// Post implements Scheduler.
func (v *Virtual) Post(f func()) {
	v.AfterFunc(0, f)
}

// Pending returns the number of queued tasks.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.queue.Len()
}

// Advance moves the clock forward by d, running every task that falls due,
// including tasks scheduled by tasks run during the advance.
func (v *Virtual) Advance(d time.Duration) {
	v.mu.Lock()
	target := v.now + d
	v.mu.Unlock()

	for {
		v.mu.Lock()
		if v.queue.Len() == 0 || v.queue[0].at > target {
			v.now = target
			v.mu.Unlock()
			return
		}

		next := heap.Pop(&v.queue).(*task)
		v.now = next.at
		v.mu.Unlock()

		next.fn()
	}
}

// RunPending runs everything already due without moving the clock.
func (v *Virtual) RunPending() {
	v.Advance(0)
}

type task struct {
	at  time.Duration
	seq uint64
	fn  func()
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at == h[j].at {
		return h[i].seq < h[j].seq
	}
	return h[i].at < h[j].at
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	*h = old[:n-1]

	return t
}

var _ Scheduler = (*Virtual)(nil)
