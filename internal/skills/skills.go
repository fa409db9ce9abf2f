// Package skills fills the progress bars of the resume section.
package skills

import (
	"github.com/Zachkp/microx-portfolio/internal/dom"
)

// ProgressAttr holds a bar's target percentage.
const ProgressAttr = "data-progress"

// Animator sets every bar to its declared width. The visual transition is
// left to the stylesheet.
type Animator struct {
	bars []dom.Element
}

// New creates an animator for the given bars.
func New(bars []dom.Element) *Animator {
	return &Animator{bars: bars}
}

// Animate sets each bar's width. It is idempotent.
func (a *Animator) Animate() {
	for _, bar := range a.bars {
		bar.SetStyle("width", bar.Attr(ProgressAttr)+"%")
	}
}
