package scheduler

import (
	"context"
	"sync"
	"time"
)

// DefaultQueueSize is the task buffer of a Loop created with a non-positive
// capacity.
const DefaultQueueSize = 256

// Loop is a Scheduler backed by one goroutine draining a channel of tasks.
// Tasks posted after the loop stops are dropped.
type Loop struct {
	tasks chan func()

	mu      sync.Mutex
	stopped bool

	done chan struct{}
}

// NewLoop creates a loop with the given task buffer.
func NewLoop(capacity int) *Loop {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}

	return &Loop{
		tasks: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Run executes tasks until ctx is cancelled. It blocks, and must be called
// exactly once.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.stopped = true
			l.mu.Unlock()
			return

		case task := <-l.tasks:
			task()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post implements Scheduler.
func (l *Loop) Post(f func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}

	select {
	case l.tasks <- f:
	default:
		// The buffer is full. Hand off without holding the lock so the
		// caller is not blocked on the loop.
		go func() {
			select {
			case l.tasks <- f:
			case <-l.done:
			}
		}()
	}
}

// AfterFunc implements Scheduler.
func (l *Loop) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		l.Post(f)
	})
}

var _ Scheduler = (*Loop)(nil)
