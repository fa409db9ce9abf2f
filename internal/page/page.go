// Package page attaches every portfolio component to a document.
package page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.uber.org/zap"

	"github.com/Zachkp/microx-portfolio/internal/config"
	"github.com/Zachkp/microx-portfolio/internal/contact"
	"github.com/Zachkp/microx-portfolio/internal/counter"
	"github.com/Zachkp/microx-portfolio/internal/dom"
	"github.com/Zachkp/microx-portfolio/internal/gallery"
	"github.com/Zachkp/microx-portfolio/internal/logging"
	"github.com/Zachkp/microx-portfolio/internal/nav"
	"github.com/Zachkp/microx-portfolio/internal/preloader"
	"github.com/Zachkp/microx-portfolio/internal/reveal"
	"github.com/Zachkp/microx-portfolio/internal/scheduler"
	"github.com/Zachkp/microx-portfolio/internal/skills"
	"github.com/Zachkp/microx-portfolio/internal/typing"
	"github.com/Zachkp/microx-portfolio/internal/visibility"
)

// Element ids and selectors the page is expected to carry.
const (
	PreloaderID    = "preloader"
	MenuToggleID   = "menuToggle"
	SidebarID      = "sidebar"
	MainContent    = ".main-content"
	NavLinks       = ".nav-link"
	Sections       = ".section"
	AboutID        = "about"
	StatCounters   = ".stat-number"
	ResumeID       = "resume"
	SkillBars      = ".skill-progress"
	FilterButtons  = ".filter-btn"
	GalleryItems   = ".portfolio-item"
	ContactFormID  = "contactForm"
	SubmitButtonID = "submitBtn"
	FormMessageID  = "formMessage"
	TypedText      = ".typed-text"
)

const (
	// CounterThreshold is the fraction of the about section that starts
	// the stat counters.
	CounterThreshold = 0.5

	// SkillsThreshold is the fraction of the resume section that fills
	// the skill bars.
	SkillsThreshold = 0.3
)

// ErrMissingElement is returned when a required element is not on the page.
var ErrMissingElement = errors.New("page: required element missing")

// Deps are the collaborators an App runs against.
type Deps struct {
	Document  dom.Document
	Window    dom.Window
	Scheduler scheduler.Scheduler
	Submitter contact.Submitter
	Frontend  config.Frontend
	Log       *zap.Logger

	// Now stamps contact records. Defaults to time.Now.
	Now func() time.Time
}

// App is the set of components attached to one page.
type App struct {
	deps Deps
	log  *zap.Logger

	Nav       *nav.Controller
	Counters  *counter.Animator
	Skills    *skills.Animator
	Gallery   *gallery.Filter
	Reveal    *reveal.Revealer
	Contact   *contact.Pipeline
	Typing    fn.Option[*typing.Cycler]
	Preloader fn.Option[*preloader.Preloader]

	menuToggle fn.Option[dom.Element]
	content    fn.Option[dom.Element]
	about      fn.Option[dom.Element]
	resume     fn.Option[dom.Element]

	counterObs *visibility.ScrollObserver
	skillsObs  *visibility.ScrollObserver
	revealObs  *visibility.ScrollObserver
}

// New looks up the page's elements and builds every component. The contact
// form, its submit button and its status message are required; everything
// else is skipped when absent.
func New(d Deps) (*App, error) {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if err := d.Frontend.Validate(); err != nil {
		return nil, err
	}

	doc := d.Document

	form, err := lookup(doc.FormByID(ContactFormID), ContactFormID)
	if err != nil {
		return nil, err
	}
	button, err := lookup(doc.ByID(SubmitButtonID), SubmitButtonID)
	if err != nil {
		return nil, err
	}
	status, err := lookup(doc.ByID(FormMessageID), FormMessageID)
	if err != nil {
		return nil, err
	}

	a := &App{
		deps:       d,
		log:        d.Log,
		menuToggle: doc.ByID(MenuToggleID),
		content:    doc.Query(MainContent),
		about:      doc.ByID(AboutID),
		resume:     doc.ByID(ResumeID),
	}

	a.Nav = nav.New(nav.Config{
		Window:     d.Window,
		Sidebar:    doc.ByID(SidebarID),
		Links:      doc.QueryAll(NavLinks),
		Sections:   doc.QueryAll(Sections),
		Breakpoint: d.Frontend.Breakpoint,
	})
	a.Counters = counter.New(
		d.Scheduler, doc.QueryAll(StatCounters), d.Log.Named("counter"),
	)
	a.Skills = skills.New(doc.QueryAll(SkillBars))
	a.Gallery = gallery.New(
		d.Scheduler, doc.QueryAll(FilterButtons), doc.QueryAll(GalleryItems),
	)
	a.Contact = contact.NewPipeline(contact.Config{
		Form:      form,
		Button:    button,
		Status:    status,
		Submitter: d.Submitter,
		Scheduler: d.Scheduler,
		Now:       d.Now,
		Log:       d.Log.Named("contact"),
	})

	a.counterObs = visibility.NewScrollObserver(
		d.Window, d.Scheduler,
		visibility.Options{Threshold: CounterThreshold},
	)
	a.skillsObs = visibility.NewScrollObserver(
		d.Window, d.Scheduler,
		visibility.Options{Threshold: SkillsThreshold},
	)
	a.revealObs = visibility.NewScrollObserver(
		d.Window, d.Scheduler, reveal.Options(),
	)
	a.Reveal = reveal.New(a.revealObs, doc.QueryAll(reveal.Selector))

	doc.ByID(PreloaderID).WhenSome(func(el dom.Element) {
		a.Preloader = fn.Some(preloader.New(d.Scheduler, el))
	})

	var typingErr error
	doc.Query(TypedText).WhenSome(func(el dom.Element) {
		c, err := typing.New(d.Scheduler, el, d.Frontend.Phrases)
		if err != nil {
			typingErr = err
			return
		}
		a.Typing = fn.Some(c)
	})
	if typingErr != nil {
		return nil, typingErr
	}

	return a, nil
}

// Start attaches every component. ctx bounds contact form submissions.
func (a *App) Start(ctx context.Context) {
	a.deps.Window.OnLoad(func() {
		a.Preloader.WhenSome(func(p *preloader.Preloader) {
			p.Dismiss()
		})
	})

	a.Nav.Bind(a.menuToggle, a.content)

	// The counters guard themselves, so the about section stays observed.
	visibility.ObserveOptional(a.counterObs, a.about, func(dom.Element) {
		a.Counters.Activate()
	})
	visibility.OnceOptional(a.skillsObs, a.resume, func(dom.Element) {
		a.Skills.Animate()
	})

	a.Gallery.Bind()
	a.Contact.Bind(ctx)
	a.Reveal.Start()

	a.Typing.WhenSome(func(c *typing.Cycler) {
		c.Start()
	})

	logging.Welcome(a.log)
}

func lookup[T any](opt fn.Option[T], id string) (T, error) {
	var zero T
	if opt.IsNone() {
		return zero, fmt.Errorf("%w: #%s", ErrMissingElement, id)
	}
	return opt.UnwrapOr(zero), nil
}
