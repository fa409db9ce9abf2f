// Package dom describes the slice of the browser document the portfolio
// components drive. Components only ever see these interfaces, so the same
// code runs against the real page (see package jsdom) and against the
// in-memory document used by tests.
package dom

import (
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Event is a user input event delivered to a handler.
type Event interface {
	// PreventDefault suppresses the browser's default action.
	PreventDefault()
}

// Rect is the document-absolute vertical geometry of an element.
type Rect struct {
	// Top is the distance from the top of the document.
	Top float64

	// Height is the element's rendered height.
	Height float64
}

// Bottom returns Top+Height.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Element is a single node of the page.
type Element interface {
	// ID returns the element's id attribute.
	ID() string

	// Attr returns the named attribute, or "" when it is not set.
	Attr(name string) string

	AddClass(name string)
	RemoveClass(name string)
	ToggleClass(name string)
	HasClass(name string) bool

	// SetClassName replaces the full class list.
	SetClassName(name string)

	// SetStyle sets an inline style property such as "display".
	SetStyle(prop, value string)

	// Style returns an inline style property, "" when unset.
	Style(prop string) string

	Text() string
	SetText(text string)

	Disabled() bool
	SetDisabled(disabled bool)

	// Rect reports the element's current geometry.
	Rect() Rect

	// ScrollIntoView smoothly scrolls the window so the element is at
	// the top of the viewport.
	ScrollIntoView()

	// OnClick registers a click handler.
	OnClick(handler func(Event))
}

// Form is a form element with named controls.
type Form interface {
	// Value returns the current value of the named control.
	Value(name string) string

	// Reset clears every control back to its default.
	Reset()

	// OnSubmit registers a submit handler.
	OnSubmit(handler func(Event))
}

// Document gives access to the elements of the page.
type Document interface {
	// ByID looks an element up by id.
	ByID(id string) fn.Option[Element]

	// Query returns the first element matching the selector.
	Query(selector string) fn.Option[Element]

	// QueryAll returns every element matching the selector, in document
	// order. A comma separated selector list is accepted.
	QueryAll(selector string) []Element

	// FormByID looks a form up by id.
	FormByID(id string) fn.Option[Form]
}

// Window is the browser viewport.
type Window interface {
	InnerWidth() float64
	InnerHeight() float64

	// ScrollY is the current vertical scroll offset.
	ScrollY() float64

	// OnScroll registers a scroll handler.
	OnScroll(handler func())

	// OnLoad registers a page-load handler.
	OnLoad(handler func())
}
