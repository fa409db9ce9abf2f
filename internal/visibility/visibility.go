// Package visibility fires callbacks when an element scrolls into view.
package visibility

import (
	"math"
	"slices"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

// Options configures when an element counts as visible.
type Options struct {
	// Threshold is the fraction of the element, in [0, 1], that must be
	// inside the viewport.
	Threshold float64

	// RootMarginBottom shrinks the viewport from the bottom, in pixels, so
	// elements trigger slightly before they are fully on screen.
	RootMarginBottom float64
}

// Callback receives the element that became visible.
type Callback func(el dom.Element)

// Observer notifies callbacks as observed elements enter the viewport.
type Observer interface {
	Observe(el dom.Element, cb Callback)
	Unobserve(el dom.Element)
}

type entry struct {
	el      dom.Element
	cb      Callback
	visible bool
	removed bool
}

// ScrollObserver is an Observer that recomputes intersections on every
// scroll event of a window. Callbacks only fire on the transition from not
// visible to visible, so a repeatedly observed element fires again only after
// leaving and re-entering the viewport.
type ScrollObserver struct {
	win   dom.Window
	sched scheduler.Scheduler
	opts  Options

	entries []*entry
}

// NewScrollObserver creates an observer and subscribes it to win's scroll
// events.
func NewScrollObserver(win dom.Window, sched scheduler.Scheduler,
	opts Options) *ScrollObserver {

	o := &ScrollObserver{
		win:   win,
		sched: sched,
		opts:  opts,
	}
	win.OnScroll(o.Check)

	return o
}

// Observe starts watching el. The initial state is evaluated asynchronously
// on the scheduler, so an element that is already on screen still fires.
func (o *ScrollObserver) Observe(el dom.Element, cb Callback) {
	e := &entry{el: el, cb: cb}
	o.entries = append(o.entries, e)

	o.sched.Post(func() {
		o.evaluate(e)
	})
}

// Unobserve stops watching el. It is safe to call from a callback.
func (o *ScrollObserver) Unobserve(el dom.Element) {
	o.entries = slices.DeleteFunc(o.entries, func(e *entry) bool {
		if e.el == el {
			e.removed = true
			return true
		}
		return false
	})
}

// Check re-evaluates every observed element against the current viewport.
func (o *ScrollObserver) Check() {
	for _, e := range slices.Clone(o.entries) {
		o.evaluate(e)
	}
}

func (o *ScrollObserver) evaluate(e *entry) {
	if e.removed {
		return
	}

	now := o.isVisible(e.el.Rect())
	entering := now && !e.visible
	e.visible = now

	if entering {
		e.cb(e.el)
	}
}

func (o *ScrollObserver) isVisible(r dom.Rect) bool {
	viewTop := o.win.ScrollY()
	viewBottom := viewTop + o.win.InnerHeight() - o.opts.RootMarginBottom

	ratio := Ratio(r, viewTop, viewBottom)
	if ratio == 0 {
		return false
	}
	return ratio >= o.opts.Threshold
}

// Ratio returns the fraction of r that lies between viewTop and viewBottom.
// A zero-height element counts as fully visible when its top edge is inside
// the range.
func Ratio(r dom.Rect, viewTop, viewBottom float64) float64 {
	if r.Height <= 0 {
		if r.Top >= viewTop && r.Top <= viewBottom {
			return 1
		}
		return 0
	}

	overlap := math.Min(r.Bottom(), viewBottom) - math.Max(r.Top, viewTop)
	if overlap <= 0 {
		return 0
	}

	return math.Min(overlap/r.Height, 1)
}

// Once observes el and stops observing it after the first time it becomes
// visible.
func Once(o Observer, el dom.Element, cb Callback) {
	o.Observe(el, func(target dom.Element) {
		o.Unobserve(target)
		cb(target)
	})
}

// ObserveOptional observes el if it is present and does nothing otherwise.
func ObserveOptional(o Observer, el fn.Option[dom.Element], cb Callback) {
	el.WhenSome(func(target dom.Element) {
		o.Observe(target, cb)
	})
}

// OnceOptional is Once for an element that may be absent.
func OnceOptional(o Observer, el fn.Option[dom.Element], cb Callback) {
	el.WhenSome(func(target dom.Element) {
		Once(o, target, cb)
	})
}
