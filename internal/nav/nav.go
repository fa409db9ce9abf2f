// Package nav keeps the sidebar menu and its links in sync with the page.
package nav

import (
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/Zachkp/microx-portfolio/internal/dom"
)

const (
	// DefaultBreakpoint is the viewport width, in px, at or below which
	// the sidebar behaves as an overlay menu.
	DefaultBreakpoint = 1024

	// ActiveClass marks the open sidebar and the current link.
	ActiveClass = "active"
)

// Config wires a Controller to the page.
type Config struct {
	Window dom.Window

	// Sidebar is the collapsible menu. Menu toggling is skipped when it
	// is absent.
	Sidebar fn.Option[dom.Element]

	// Links are the navigation anchors, each with a "#section" href.
	Links []dom.Element

	// Sections are the page sections in document order.
	Sections []dom.Element

	// Breakpoint overrides DefaultBreakpoint when positive.
	Breakpoint float64
}

// Controller owns the sidebar open state and the active link.
type Controller struct {
	win        dom.Window
	sidebar    fn.Option[dom.Element]
	links      []dom.Element
	sections   []dom.Element
	breakpoint float64
}

// New creates a controller.
func New(cfg Config) *Controller {
	breakpoint := cfg.Breakpoint
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}

	return &Controller{
		win:        cfg.Window,
		sidebar:    cfg.Sidebar,
		links:      cfg.Links,
		sections:   cfg.Sections,
		breakpoint: breakpoint,
	}
}

// Bind attaches the controller to the menu button, the content region, the
// links and the window scroll event. Absent elements are skipped.
func (c *Controller) Bind(menuToggle, content fn.Option[dom.Element]) {
	menuToggle.WhenSome(func(btn dom.Element) {
		btn.OnClick(func(dom.Event) { c.ToggleMenu() })
	})
	content.WhenSome(func(main dom.Element) {
		main.OnClick(func(dom.Event) { c.ContentClicked() })
	})

	for _, link := range c.links {
		link.OnClick(func(ev dom.Event) { c.LinkClicked(link, ev) })
	}

	c.win.OnScroll(func() { c.Scrolled() })
}

// SidebarOpen reports whether the sidebar is open.
func (c *Controller) SidebarOpen() bool {
	open := false
	c.sidebar.WhenSome(func(s dom.Element) {
		open = s.HasClass(ActiveClass)
	})

	return open
}

// ToggleMenu flips the sidebar between open and closed.
func (c *Controller) ToggleMenu() {
	c.sidebar.WhenSome(func(s dom.Element) {
		s.ToggleClass(ActiveClass)
	})
}

// ContentClicked closes an open overlay sidebar.
func (c *Controller) ContentClicked() {
	if c.isOverlay() && c.SidebarOpen() {
		c.closeSidebar()
	}
}

// LinkClicked handles a click on one of the navigation links: it scrolls to
// the linked section and makes the link the only active one.
func (c *Controller) LinkClicked(link dom.Element, ev dom.Event) {
	ev.PreventDefault()

	if c.isOverlay() {
		c.closeSidebar()
	}

	c.sectionFor(link.Attr("href")).WhenSome(func(s dom.Element) {
		s.ScrollIntoView()
	})

	for _, l := range c.links {
		l.RemoveClass(ActiveClass)
	}
	link.AddClass(ActiveClass)
}

// Scrolled recomputes the active section from the scroll position and marks
// the matching link. It returns the active section id, or "" if no section
// qualifies.
func (c *Controller) Scrolled() string {
	current := ActiveSection(c.win.ScrollY(), c.sections)

	for _, l := range c.links {
		l.RemoveClass(ActiveClass)
		if current != "" && l.Attr("href") == "#"+current {
			l.AddClass(ActiveClass)
		}
	}

	return current
}

// ActiveSection returns the id of the last section whose top, raised by a
// third of its height, is at or above scrollY.
func ActiveSection(scrollY float64, sections []dom.Element) string {
	current := ""
	for _, s := range sections {
		r := s.Rect()
		if scrollY >= r.Top-r.Height/3 {
			current = s.ID()
		}
	}

	return current
}

func (c *Controller) isOverlay() bool {
	return c.win.InnerWidth() <= c.breakpoint
}

func (c *Controller) closeSidebar() {
	c.sidebar.WhenSome(func(s dom.Element) {
		s.RemoveClass(ActiveClass)
	})
}

func (c *Controller) sectionFor(href string) fn.Option[dom.Element] {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return fn.None[dom.Element]()
	}

	for _, s := range c.sections {
		if s.ID() == id {
			return fn.Some(s)
		}
	}

	return fn.None[dom.Element]()
}
