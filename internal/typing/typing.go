// Package typing implements the hero banner's type-and-delete text loop.
package typing

import (
	"errors"
	"time"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

const (
	// StartDelay is the wait between Start and the first keystroke.
	StartDelay = 1000 * time.Millisecond

	// TypeInterval is the delay between two typed characters.
	TypeInterval = 100 * time.Millisecond

	// DeleteInterval is the delay between two deleted characters.
	DeleteInterval = 50 * time.Millisecond

	// FullPause is how long a complete phrase stays on screen.
	FullPause = 2000 * time.Millisecond

	// EmptyPause is how long the display stays blank between phrases.
	EmptyPause = 500 * time.Millisecond
)

var (
	// ErrNoPhrases is returned when the phrase list is empty.
	ErrNoPhrases = errors.New("typing: phrase list is empty")

	// ErrEmptyPhrase is returned when a phrase has no characters.
	ErrEmptyPhrase = errors.New("typing: phrase is empty")
)

// Phase is the state of the cycle.
type Phase uint8

const (
	Typing Phase = iota
	PausingFull
	Deleting
	PausingEmpty
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case PausingFull:
		return "pausing-full"
	case Deleting:
		return "deleting"
	case PausingEmpty:
		return "pausing-empty"
	default:
		return "unknown"
	}
}

// State is the position of the cycle.
type State struct {
	PhraseIndex int
	CharIndex   int
	Phase       Phase
}

// Cycler types each phrase, holds it, deletes it, and moves on to the next,
// forever.
type Cycler struct {
	sched   scheduler.Scheduler
	el      dom.Element
	phrases [][]rune

	state   State
	started bool
}

// New creates a cycler writing into el.
func New(sched scheduler.Scheduler, el dom.Element,
	phrases []string) (*Cycler, error) {

	if len(phrases) == 0 {
		return nil, ErrNoPhrases
	}

	runes := make([][]rune, 0, len(phrases))
	for _, p := range phrases {
		if p == "" {
			return nil, ErrEmptyPhrase
		}
		runes = append(runes, []rune(p))
	}

	return &Cycler{
		sched:   sched,
		el:      el,
		phrases: runes,
	}, nil
}

// State returns the current position of the cycle.
func (c *Cycler) State() State {
	return c.state
}

// Start schedules the first keystroke after StartDelay. Calls after the first
// are ignored.
func (c *Cycler) Start() {
	if c.started {
		return
	}
	c.started = true

	c.sched.AfterFunc(StartDelay, c.tick)
}

func (c *Cycler) tick() {
	c.sched.AfterFunc(c.step(), c.tick)
}

// step advances the cycle by one keystroke and returns the delay before the
// next one.
func (c *Cycler) step() time.Duration {
	s := &c.state

	switch s.Phase {
	case PausingFull:
		s.Phase = Deleting
	case PausingEmpty:
		s.Phase = Typing
	}

	current := c.phrases[s.PhraseIndex]

	if s.Phase == Deleting {
		s.CharIndex--
	} else {
		s.CharIndex++
	}
	c.el.SetText(string(current[:s.CharIndex]))

	switch {
	case s.Phase == Typing && s.CharIndex == len(current):
		s.Phase = PausingFull
		return FullPause

	case s.Phase == Deleting && s.CharIndex == 0:
		s.Phase = PausingEmpty
		s.PhraseIndex = (s.PhraseIndex + 1) % len(c.phrases)
		return EmptyPause

	case s.Phase == Deleting:
		return DeleteInterval

	default:
		return TypeInterval
	}
}
