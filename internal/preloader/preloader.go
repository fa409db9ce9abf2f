// Package preloader fades out the loading overlay once the page has loaded.
package preloader

import (
	"time"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

const (
	// FadeDelay is how long the overlay stays up after load.
	FadeDelay = 1000 * time.Millisecond

	// RemoveDelay is the fade duration before the overlay leaves the
	// layout.
	RemoveDelay = 300 * time.Millisecond
)

// Preloader hides a single overlay element.
type Preloader struct {
	sched scheduler.Scheduler
	el    dom.Element
}

// New creates a preloader for el.
func New(sched scheduler.Scheduler, el dom.Element) *Preloader {
	return &Preloader{sched: sched, el: el}
}

// Dismiss fades the overlay out and then removes it from the layout.
func (p *Preloader) Dismiss() {
	p.sched.AfterFunc(FadeDelay, func() {
		p.el.SetStyle("opacity", "0")
		p.sched.AfterFunc(RemoveDelay, func() {
			p.el.SetStyle("display", "none")
		})
	})
}
