//go:build js && wasm

// Package jsdom implements the dom interfaces over syscall/js.
//
// Browser events are handed to a Runner and the JS callback waits for the
// handler to finish, so handlers run on the runner's goroutine while
// PreventDefault still takes effect.
package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/Zachkp/microx-portfolio/internal/dom"
)

// Runner executes posted tasks one at a time. scheduler.Loop is a Runner.
type Runner interface {
	Post(f func())
	Done() <-chan struct{}
}

// Window is the browser window.
type Window struct {
	v      js.Value
	runner Runner
}

// Document is the browser document.
type Document struct {
	v      js.Value
	win    *Window
	runner Runner
}

// New binds the global window and document.
func New(runner Runner) (*Document, *Window) {
	win := &Window{v: js.Global(), runner: runner}
	doc := &Document{
		v:      js.Global().Get("document"),
		win:    win,
		runner: runner,
	}
	return doc, win
}

// Location returns the page URL.
func (w *Window) Location() string {
	return w.v.Get("location").Get("href").String()
}

func (w *Window) InnerWidth() float64  { return w.v.Get("innerWidth").Float() }
func (w *Window) InnerHeight() float64 { return w.v.Get("innerHeight").Float() }
func (w *Window) ScrollY() float64     { return w.v.Get("scrollY").Float() }

func (w *Window) OnScroll(handler func()) {
	listen(w.v, "scroll", w.runner, func(js.Value) { handler() },
		map[string]any{"passive": true})
}

// OnLoad runs handler on the window's load event, or right away when the
// page has already loaded.
func (w *Window) OnLoad(handler func()) {
	if w.v.Get("document").Get("readyState").String() == "complete" {
		w.runner.Post(handler)
		return
	}
	listen(w.v, "load", w.runner, func(js.Value) { handler() }, nil)
}

// ByID implements dom.Document.
func (d *Document) ByID(id string) fn.Option[dom.Element] {
	return d.wrap(d.v.Call("getElementById", id))
}

// Query implements dom.Document.
func (d *Document) Query(selector string) fn.Option[dom.Element] {
	return d.wrap(d.v.Call("querySelector", selector))
}

// QueryAll implements dom.Document.
func (d *Document) QueryAll(selector string) []dom.Element {
	list := d.v.Call("querySelectorAll", selector)
	n := list.Length()

	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &Element{v: list.Index(i), doc: d})
	}
	return out
}

// FormByID implements dom.Document.
func (d *Document) FormByID(id string) fn.Option[dom.Form] {
	v := d.v.Call("getElementById", id)
	if !v.Truthy() || !strings.EqualFold(v.Get("tagName").String(), "form") {
		return fn.None[dom.Form]()
	}
	return fn.Some[dom.Form](&Form{v: v, runner: d.runner})
}

func (d *Document) wrap(v js.Value) fn.Option[dom.Element] {
	if !v.Truthy() {
		return fn.None[dom.Element]()
	}
	return fn.Some[dom.Element](&Element{v: v, doc: d})
}

// Element is a DOM element. It is always used by pointer: js.Value is not
// comparable.
type Element struct {
	v   js.Value
	doc *Document
}

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *Element) classList() js.Value       { return e.v.Get("classList") }
func (e *Element) AddClass(name string)      { e.classList().Call("add", name) }
func (e *Element) RemoveClass(name string)   { e.classList().Call("remove", name) }
func (e *Element) ToggleClass(name string)   { e.classList().Call("toggle", name) }
func (e *Element) HasClass(name string) bool { return e.classList().Call("contains", name).Bool() }
func (e *Element) SetClassName(name string)  { e.v.Set("className", name) }
func (e *Element) Text() string              { return e.v.Get("textContent").String() }
func (e *Element) SetText(text string)       { e.v.Set("textContent", text) }
func (e *Element) Disabled() bool            { return e.v.Get("disabled").Truthy() }
func (e *Element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }

func (e *Element) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

// Rect converts the viewport-relative bounding box to document coordinates.
func (e *Element) Rect() dom.Rect {
	r := e.v.Call("getBoundingClientRect")
	return dom.Rect{
		Top:    r.Get("top").Float() + e.doc.win.ScrollY(),
		Height: r.Get("height").Float(),
	}
}

func (e *Element) ScrollIntoView() {
	e.v.Call("scrollIntoView", map[string]any{
		"behavior": "smooth",
		"block":    "start",
	})
}

func (e *Element) OnClick(handler func(dom.Event)) {
	listen(e.v, "click", e.doc.runner, func(ev js.Value) {
		handler(event{v: ev})
	}, nil)
}

// Form is a form element.
type Form struct {
	v      js.Value
	runner Runner
}

// Value returns the value of the named control, "" when there is none.
func (f *Form) Value(name string) string {
	c := f.v.Get("elements").Call("namedItem", name)
	if !c.Truthy() {
		return ""
	}
	return c.Get("value").String()
}

func (f *Form) Reset() { f.v.Call("reset") }

func (f *Form) OnSubmit(handler func(dom.Event)) {
	listen(f.v, "submit", f.runner, func(ev js.Value) {
		handler(event{v: ev})
	}, nil)
}

type event struct {
	v js.Value
}

func (e event) PreventDefault() { e.v.Call("preventDefault") }

// listen registers handler for the named event on target. The JS callback
// blocks until the runner has run handler. The function is never released:
// listeners live as long as the page.
func listen(target js.Value, name string, runner Runner,
	handler func(js.Value), opts map[string]any) {

	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}

		done := make(chan struct{})
		runner.Post(func() {
			defer close(done)
			handler(ev)
		})

		select {
		case <-done:
		case <-runner.Done():
		}
		return nil
	})

	if opts != nil {
		target.Call("addEventListener", name, cb, opts)
		return
	}
	target.Call("addEventListener", name, cb)
}
