// Package reveal fades content cards in the first time they scroll into
// view.
package reveal

import (
	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/visibility"
)

const (
	// Selector lists the card-like elements that fade in.
	Selector = ".service-card, .portfolio-item, .blog-card, .timeline-item"

	// Class is added to an element once it has been revealed.
	Class = "fade-in"

	// Threshold is the visible fraction that triggers the reveal.
	Threshold = 0.1

	// RootMarginBottom triggers the reveal this many px before the
	// element reaches the bottom edge of the viewport.
	RootMarginBottom = 100
)

// Options returns the visibility options the revealer's observer needs.
func Options() visibility.Options {
	return visibility.Options{
		Threshold:        Threshold,
		RootMarginBottom: RootMarginBottom,
	}
}

// Revealer adds Class to each element once.
type Revealer struct {
	obs      visibility.Observer
	elements []dom.Element
}

// New creates a revealer. obs should be configured with Options.
func New(obs visibility.Observer, elements []dom.Element) *Revealer {
	return &Revealer{obs: obs, elements: elements}
}

// Start observes every element.
func (r *Revealer) Start() {
	for _, el := range r.elements {
		visibility.Once(r.obs, el, func(target dom.Element) {
			target.AddClass(Class)
		})
	}
}
