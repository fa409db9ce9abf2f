// Package contact sends the contact form to the sheet-backed endpoint and
// drives the form's submit button and status message.
package contact

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/formcheck"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
)

const (
	// SubmitLabel is the idle label of the submit button.
	SubmitLabel = "Send Message"

	// BusyLabel is shown while a submission is in flight.
	BusyLabel = "Sending..."

	SuccessMessage = "✓ Thank you! Your message has been sent successfully."
	ErrorMessage   = "✗ Oops! Something went wrong. Please try again."

	successClass = "form-message success"
	errorClass   = "form-message error"

	// StatusTimeout is how long a status message stays on screen.
	StatusTimeout = 5000 * time.Millisecond
)

// State is the pipeline's position in a submission.
type State uint8

const (
	Idle State = iota
	Submitting
	Success
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Failed:
		return "error"
	default:
		return "unknown"
	}
}

// Config wires a Pipeline to the page.
type Config struct {
	Form      dom.Form
	Button    dom.Element
	Status    dom.Element
	Submitter Submitter
	Scheduler scheduler.Scheduler

	// Now stamps records. Defaults to time.Now.
	Now func() time.Time

	// Log receives submission errors and the self-test report.
	Log *zap.Logger
}

// Pipeline handles contact form submissions. Each submission is a single
// attempt; a failure waits for the visitor to submit again.
type Pipeline struct {
	cfg   Config
	suite *formcheck.Suite
	log   *zap.Logger

	state State

	// statusGen identifies the status message on screen so a hide timer
	// from an earlier submission leaves a newer message alone.
	statusGen uint64

	// lastSummary is the self-test outcome of the latest successful
	// submission.
	lastSummary *formcheck.Summary
}

// NewPipeline creates a pipeline.
func NewPipeline(cfg Config) *Pipeline {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	return &Pipeline{
		cfg:   cfg,
		suite: formcheck.NewSuite(cfg.Log),
		log:   cfg.Log,
	}
}

// State returns the current state.
func (p *Pipeline) State() State {
	return p.state
}

// LastSummary returns the self-test summary of the latest successful
// submission, or nil if there has been none.
func (p *Pipeline) LastSummary() *formcheck.Summary {
	return p.lastSummary
}

// Bind handles the form's submit events. Delivery runs off the scheduler and
// its outcome is posted back to it.
func (p *Pipeline) Bind(ctx context.Context) {
	p.cfg.Form.OnSubmit(func(ev dom.Event) {
		p.HandleSubmit(ctx, ev)
	})
}

// HandleSubmit starts a submission without blocking the caller.
func (p *Pipeline) HandleSubmit(ctx context.Context, ev dom.Event) {
	ev.PreventDefault()

	rec, ok := p.begin()
	if !ok {
		return
	}

	go func() {
		err := p.cfg.Submitter.Submit(ctx, rec)
		p.cfg.Scheduler.Post(func() {
			p.finish(rec, err)
		})
	}()
}

// Submit runs a whole submission on the calling goroutine and returns the
// resulting state.
func (p *Pipeline) Submit(ctx context.Context) State {
	rec, ok := p.begin()
	if !ok {
		return p.state
	}

	p.finish(rec, p.cfg.Submitter.Submit(ctx, rec))

	return p.state
}

func (p *Pipeline) begin() (Record, bool) {
	if p.state == Submitting {
		p.log.Debug("Ignoring submit while a submission is in flight")
		return Record{}, false
	}

	rec := RecordFromForm(p.cfg.Form, p.cfg.Now())

	p.state = Submitting
	p.cfg.Button.SetDisabled(true)
	p.cfg.Button.SetText(BusyLabel)
	p.cfg.Status.SetStyle("display", "none")

	return rec, true
}

func (p *Pipeline) finish(rec Record, err error) {
	status := p.cfg.Status
	status.SetStyle("display", "block")

	if err != nil {
		p.state = Failed
		status.SetClassName(errorClass)
		status.SetText(ErrorMessage)
		p.log.Error("Form submission error", zap.Error(err))
	} else {
		p.state = Success
		status.SetClassName(successClass)
		status.SetText(SuccessMessage)
		p.cfg.Form.Reset()
		p.selfTest(rec)
	}

	p.cfg.Button.SetDisabled(false)
	p.cfg.Button.SetText(SubmitLabel)

	p.statusGen++
	gen := p.statusGen
	p.cfg.Scheduler.AfterFunc(StatusTimeout, func() {
		if gen != p.statusGen {
			return
		}
		status.SetStyle("display", "none")
		if p.state != Submitting {
			p.state = Idle
		}
	})
}

// selfTest checks the record that was sent. Its outcome is only logged.
func (p *Pipeline) selfTest(rec Record) {
	payload, err := rec.Payload()
	if err != nil {
		p.log.Warn("Unable to decode submitted payload", zap.Error(err))
		return
	}

	sum := p.suite.RunAndReport(payload)
	p.lastSummary = &sum
}
