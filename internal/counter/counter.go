// Package counter animates the statistic numbers of the about section.
package counter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

const (
	// Speed is the number of ticks a counter takes to reach its target.
	Speed = 200

	// TickInterval is the delay between two increments.
	TickInterval = time.Millisecond

	// TargetAttr holds the integer a counter counts up to.
	TargetAttr = "data-count"

	// Suffix is appended once a counter reaches its target.
	Suffix = "+"
)

// Animator counts a set of elements up to their targets. All counters start
// together on the first Activate and never again.
type Animator struct {
	sched    scheduler.Scheduler
	counters []dom.Element
	log      *zap.Logger

	counted bool
}

// New creates an animator for the given counter elements.
func New(sched scheduler.Scheduler, counters []dom.Element,
	log *zap.Logger) *Animator {

	if log == nil {
		log = zap.NewNop()
	}

	return &Animator{
		sched:    sched,
		counters: counters,
		log:      log,
	}
}

// Activated reports whether the counters have been started.
func (a *Animator) Activated() bool {
	return a.counted
}

// Activate starts every counter. Calls after the first are ignored.
func (a *Animator) Activate() {
	if a.counted {
		return
	}
	a.counted = true

	a.log.Debug("Starting stat counters", zap.Int("count", len(a.counters)))

	for _, c := range a.counters {
		a.tick(c)
	}
}

func (a *Animator) tick(c dom.Element) {
	target := parseNumber(c.Attr(TargetAttr))
	count := parseNumber(c.Text())
	increment := target / Speed

	// A NaN on either side fails the comparison and snaps to the target.
	if count < target {
		next := math.Min(math.Ceil(count+increment), target)
		c.SetText(formatNumber(next))
		a.sched.AfterFunc(TickInterval, func() {
			a.tick(c)
		})
		return
	}

	c.SetText(formatNumber(target) + Suffix)
}

// parseNumber reads text the way a numeric cast would: blank text is zero and
// anything unparseable is NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
