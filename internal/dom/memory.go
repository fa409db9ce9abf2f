package dom

import (
	"slices"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// MemEvent is the Event delivered by the in-memory document.
type MemEvent struct {
	// Prevented records whether a handler called PreventDefault.
	Prevented bool
}

// PreventDefault implements Event.
func (e *MemEvent) PreventDefault() {
	e.Prevented = true
}

// MemWindow is an in-memory Window whose geometry is set by the caller.
type MemWindow struct {
	width   float64
	height  float64
	scrollY float64

	scrollHandlers []func()
	loadHandlers   []func()
}

// NewMemWindow creates a window with the given viewport size.
func NewMemWindow(width, height float64) *MemWindow {
	return &MemWindow{width: width, height: height}
}

func (w *MemWindow) InnerWidth() float64  { return w.width }
func (w *MemWindow) InnerHeight() float64 { return w.height }
func (w *MemWindow) ScrollY() float64     { return w.scrollY }

// SetWidth resizes the viewport horizontally.
func (w *MemWindow) SetWidth(width float64) {
	w.width = width
}

func (w *MemWindow) OnScroll(handler func()) {
	w.scrollHandlers = append(w.scrollHandlers, handler)
}

func (w *MemWindow) OnLoad(handler func()) {
	w.loadHandlers = append(w.loadHandlers, handler)
}

// ScrollTo moves the viewport and dispatches a scroll event.
func (w *MemWindow) ScrollTo(y float64) {
	w.scrollY = y
	for _, h := range w.scrollHandlers {
		h()
	}
}

// Load dispatches the page-load event.
func (w *MemWindow) Load() {
	for _, h := range w.loadHandlers {
		h()
	}
}

// MemElement is an in-memory Element.
type MemElement struct {
	id       string
	attrs    map[string]string
	classes  []string
	style    map[string]string
	text     string
	disabled bool
	rect     Rect

	clickHandlers []func(Event)

	win *MemWindow
}

func (e *MemElement) ID() string { return e.id }

func (e *MemElement) Attr(name string) string {
	if name == "id" {
		return e.id
	}
	return e.attrs[name]
}

// SetAttr sets an attribute.
func (e *MemElement) SetAttr(name, value string) *MemElement {
	e.attrs[name] = value
	return e
}

func (e *MemElement) AddClass(name string) {
	if !e.HasClass(name) {
		e.classes = append(e.classes, name)
	}
}

func (e *MemElement) RemoveClass(name string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return c == name
	})
}

func (e *MemElement) ToggleClass(name string) {
	if e.HasClass(name) {
		e.RemoveClass(name)
		return
	}
	e.AddClass(name)
}

func (e *MemElement) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

func (e *MemElement) SetClassName(name string) {
	e.classes = strings.Fields(name)
}

// ClassName returns the space separated class list.
func (e *MemElement) ClassName() string {
	return strings.Join(e.classes, " ")
}

func (e *MemElement) SetStyle(prop, value string) {
	e.style[prop] = value
}

func (e *MemElement) Style(prop string) string {
	return e.style[prop]
}

// Styles returns a copy of the inline style map.
func (e *MemElement) Styles() map[string]string {
	out := make(map[string]string, len(e.style))
	for k, v := range e.style {
		out[k] = v
	}
	return out
}

func (e *MemElement) Text() string        { return e.text }
func (e *MemElement) SetText(text string) { e.text = text }

func (e *MemElement) Disabled() bool            { return e.disabled }
func (e *MemElement) SetDisabled(disabled bool) { e.disabled = disabled }

func (e *MemElement) Rect() Rect { return e.rect }

// SetRect places the element in the document.
func (e *MemElement) SetRect(top, height float64) *MemElement {
	e.rect = Rect{Top: top, Height: height}
	return e
}

func (e *MemElement) ScrollIntoView() {
	if e.win != nil {
		e.win.ScrollTo(e.rect.Top)
	}
}

func (e *MemElement) OnClick(handler func(Event)) {
	e.clickHandlers = append(e.clickHandlers, handler)
}

// Click dispatches a click event and returns it so callers can inspect
// whether the default action was prevented.
func (e *MemElement) Click() *MemEvent {
	ev := &MemEvent{}
	for _, h := range e.clickHandlers {
		h(ev)
	}
	return ev
}

// MemForm is an in-memory Form.
type MemForm struct {
	id     string
	values map[string]string

	submitHandlers []func(Event)
}

func (f *MemForm) Value(name string) string {
	return f.values[name]
}

// SetValue fills in a control.
func (f *MemForm) SetValue(name, value string) *MemForm {
	f.values[name] = value
	return f
}

func (f *MemForm) Reset() {
	clear(f.values)
}

func (f *MemForm) OnSubmit(handler func(Event)) {
	f.submitHandlers = append(f.submitHandlers, handler)
}

// Submit dispatches a submit event.
func (f *MemForm) Submit() *MemEvent {
	ev := &MemEvent{}
	for _, h := range f.submitHandlers {
		h(ev)
	}
	return ev
}

// MemDocument is an in-memory Document. Elements are kept in insertion
// order, which stands in for document order.
type MemDocument struct {
	win      *MemWindow
	elements []*MemElement
	forms    []*MemForm
}

// NewMemDocument creates an empty document bound to a window.
func NewMemDocument(win *MemWindow) *MemDocument {
	return &MemDocument{win: win}
}

// Add appends an element with the given id and classes.
func (d *MemDocument) Add(id string, classes ...string) *MemElement {
	el := &MemElement{
		id:      id,
		attrs:   make(map[string]string),
		classes: slices.Clone(classes),
		style:   make(map[string]string),
		win:     d.win,
	}
	d.elements = append(d.elements, el)

	return el
}

// AddForm appends a form with the given id.
func (d *MemDocument) AddForm(id string) *MemForm {
	f := &MemForm{id: id, values: make(map[string]string)}
	d.forms = append(d.forms, f)

	return f
}

func (d *MemDocument) ByID(id string) fn.Option[Element] {
	for _, el := range d.elements {
		if el.id == id {
			return fn.Some[Element](el)
		}
	}
	return fn.None[Element]()
}

func (d *MemDocument) Query(selector string) fn.Option[Element] {
	all := d.QueryAll(selector)
	if len(all) == 0 {
		return fn.None[Element]()
	}
	return fn.Some(all[0])
}

// QueryAll supports "#id" and ".class" selectors and comma separated lists
// of them.
func (d *MemDocument) QueryAll(selector string) []Element {
	var parts []string
	for _, p := range strings.Split(selector, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var out []Element
	for _, el := range d.elements {
		if slices.ContainsFunc(parts, el.matches) {
			out = append(out, el)
		}
	}
	return out
}

func (d *MemDocument) FormByID(id string) fn.Option[Form] {
	for _, f := range d.forms {
		if f.id == id {
			return fn.Some[Form](f)
		}
	}
	return fn.None[Form]()
}

func (e *MemElement) matches(selector string) bool {
	switch {
	case strings.HasPrefix(selector, "#"):
		return e.id == selector[1:]
	case strings.HasPrefix(selector, "."):
		return e.HasClass(selector[1:])
	default:
		return false
	}
}
