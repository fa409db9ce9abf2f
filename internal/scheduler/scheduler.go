// Package scheduler provides the single execution context the page
// components run on. Every handler, timer callback and visibility callback is
// executed by one Scheduler, one at a time, so components never need locks.
package scheduler

import (
	"time"
)

// Scheduler runs callbacks on a single execution context.
type Scheduler interface {
	// AfterFunc runs f once, no sooner than d from now.
	AfterFunc(d time.Duration, f func())

	// Post runs f as soon as the context is free. Post is safe to call
	// from any goroutine and is how off-context work hands its result
	// back.
	Post(f func())
}
