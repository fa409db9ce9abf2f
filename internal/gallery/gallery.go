// Package gallery filters the portfolio items by category.
package gallery

import (
	"time"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

const (
	// FilterAttr holds a button's category tag.
	FilterAttr = "data-filter"

	// CategoryAttr holds an item's category tag.
	CategoryAttr = "data-category"

	// All matches every item.
	All = "all"

	// ActiveClass marks the selected filter button.
	ActiveClass = "active"

	// Transition is applied to every item before any filtering.
	Transition = "opacity 0.3s ease, transform 0.3s ease"

	// ShowDelay separates putting an item back in the layout from fading
	// it in, so the transition has a starting frame.
	ShowDelay = 10 * time.Millisecond

	// HideDelay matches the transition duration; excluded items leave the
	// layout once they have faded out.
	HideDelay = 300 * time.Millisecond
)

// Visibility is the display state of an item.
type Visibility uint8

const (
	Visible Visibility = iota
	TransitioningOut
	Hidden
)

// String returns the state name.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case TransitioningOut:
		return "transitioning-out"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

type item struct {
	el    dom.Element
	state Visibility

	// gen is bumped on every selection so transitions scheduled by an
	// earlier click do not land on top of a later one.
	gen uint64
}

// Filter shows the gallery items of one category at a time.
type Filter struct {
	sched   scheduler.Scheduler
	buttons []dom.Element
	items   []*item
}

// New creates a filter and primes every item's transition.
func New(sched scheduler.Scheduler, buttons,
	items []dom.Element) *Filter {

	f := &Filter{
		sched:   sched,
		buttons: buttons,
	}
	for _, el := range items {
		el.SetStyle("transition", Transition)
		f.items = append(f.items, &item{el: el})
	}

	return f
}

// Bind selects a button's tag whenever it is clicked.
func (f *Filter) Bind() {
	for _, btn := range f.buttons {
		btn.OnClick(func(dom.Event) { f.Select(btn) })
	}
}

// Select makes btn the active filter and applies its tag.
func (f *Filter) Select(btn dom.Element) {
	for _, b := range f.buttons {
		b.RemoveClass(ActiveClass)
	}
	btn.AddClass(ActiveClass)

	f.Apply(btn.Attr(FilterAttr))
}

// Apply shows the items matching tag and hides the rest.
func (f *Filter) Apply(tag string) {
	for _, it := range f.items {
		it.gen++
		gen := it.gen
		el := it.el

		if Matches(tag, el.Attr(CategoryAttr)) {
			it.state = Visible
			el.SetStyle("display", "block")
			f.sched.AfterFunc(ShowDelay, func() {
				if it.gen != gen {
					return
				}
				el.SetStyle("opacity", "1")
				el.SetStyle("transform", "scale(1)")
			})
			continue
		}

		it.state = TransitioningOut
		el.SetStyle("opacity", "0")
		el.SetStyle("transform", "scale(0.8)")
		f.sched.AfterFunc(HideDelay, func() {
			if it.gen != gen {
				return
			}
			it.state = Hidden
			el.SetStyle("display", "none")
		})
	}
}

// States returns the visibility of each item in document order.
func (f *Filter) States() []Visibility {
	out := make([]Visibility, len(f.items))
	for i, it := range f.items {
		out[i] = it.state
	}
	return out
}

// Matches reports whether an item of category is shown under tag.
func Matches(tag, category string) bool {
	return tag == All || tag == category
}
