// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

// Package dom implements the host contracts on a browser page through
// syscall/js.
//
// Wrap turns an existing page element into a host.Element usable as a
// card's hostElement:
//
//	box := dom.Wrap(js.Global().Get("document").Call("getElementById", "card"))
//	card, err := scratchcard.New(merge.Map{"hostElement": box, "imageSource": "prize.png"})
package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/gogpu/scratchcard/host"
)

// Errors returned by tree operations.
var (
	ErrNotChild    = errors.New("dom: node is not a child of this element")
	ErrForeignNode = errors.New("dom: node does not belong to this host")
	ErrNoContext   = errors.New("dom: canvas 2d context not available")
	ErrNotFound    = errors.New("dom: no element matches selector")
)

// Document wraps a browser document.
type Document struct {
	v js.Value
}

// Global returns the page document.
func Global() *Document {
	return &Document{v: js.Global().Get("document")}
}

// Value returns the underlying document object.
func (d *Document) Value() js.Value { return d.v }

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

// CreateImage implements host.Document.
func (d *Document) CreateImage() host.Image {
	return &Image{Element: d.CreateElement("img")}
}

// CreateCanvas implements host.Document.
func (d *Document) CreateCanvas() host.Canvas {
	return &Canvas{Element: d.CreateElement("canvas")}
}

// Element wraps a DOM node.
type Element struct {
	v js.Value
}

// Wrap returns v as an Element. v may be any node; NodeType reports what
// it really is.
func Wrap(v js.Value) *Element {
	return &Element{v: v}
}

// Mount returns the first page element matching the CSS selector.
func Mount(selector string) (*Element, error) {
	v, err := call(js.Global().Get("document"), "querySelector", selector)
	if err != nil {
		return nil, err
	}
	if !isObject(v) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, selector)
	}
	return Wrap(v), nil
}

// Value returns the underlying node.
func (e *Element) Value() js.Value { return e.v }

// NodeType implements host.Node.
func (e *Element) NodeType() host.NodeType {
	if !isObject(e.v) {
		return 0
	}
	nt := e.v.Get("nodeType")
	if nt.Type() != js.TypeNumber {
		return 0
	}
	return host.NodeType(nt.Int())
}

// OwnerDocument implements host.Element. It is nil for a detached
// document fragment or a non-node value.
func (e *Element) OwnerDocument() host.Document {
	if !isObject(e.v) {
		return nil
	}
	doc := e.v.Get("ownerDocument")
	if !isObject(doc) {
		return nil
	}
	return &Document{v: doc}
}

// AppendChild implements host.Element.
func (e *Element) AppendChild(child host.Element) error {
	c, ok := child.(valuer)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, child)
	}
	_, err := call(e.v, "appendChild", c.Value())
	return err
}

// RemoveChild implements host.Element.
func (e *Element) RemoveChild(child host.Element) error {
	c, ok := child.(valuer)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignNode, child)
	}
	if !c.Value().Get("parentNode").Equal(e.v) {
		return ErrNotChild
	}
	_, err := call(e.v, "removeChild", c.Value())
	return err
}

// ClearChildren implements host.Element.
func (e *Element) ClearChildren() {
	e.v.Set("innerHTML", "")
}

// SetCSSText implements host.Element.
func (e *Element) SetCSSText(css string) {
	e.v.Get("style").Set("cssText", css)
}

// SetStyle implements host.Element.
func (e *Element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

// Style implements host.Element.
func (e *Element) Style(property string) string {
	return e.v.Get("style").Call("getPropertyValue", property).String()
}

// PageOffset implements host.Element.
func (e *Element) PageOffset() (x, y float64) {
	r := e.v.Call("getBoundingClientRect")
	win := js.Global()
	return r.Get("left").Float() + win.Get("pageXOffset").Float(),
		r.Get("top").Float() + win.Get("pageYOffset").Float()
}

// Listen implements host.Element. Handlers that call PreventDefault
// prevent the browser default, so listeners are registered non-passive.
func (e *Element) Listen(t host.EventType, h host.Handler) *host.Subscription {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := toEvent(t, args[0])
		h(ev)
		if ev.DefaultPrevented() {
			args[0].Call("preventDefault")
		}
		return nil
	})
	opts := map[string]any{"passive": false}
	e.v.Call("addEventListener", string(t), fn, opts)
	return host.NewSubscription(func() {
		e.v.Call("removeEventListener", string(t), fn, opts)
		fn.Release()
	})
}

// toEvent copies the fields cards read from a browser event.
func toEvent(t host.EventType, v js.Value) *host.Event {
	ev := &host.Event{Type: t}
	if x := v.Get("pageX"); x.Type() == js.TypeNumber {
		ev.PageX = x.Float()
		ev.PageY = v.Get("pageY").Float()
	}
	if touches := v.Get("targetTouches"); isObject(touches) {
		n := touches.Get("length").Int()
		for i := 0; i < n; i++ {
			tp := touches.Index(i)
			ev.Touches = append(ev.Touches, host.Touch{
				PageX: tp.Get("pageX").Float(),
				PageY: tp.Get("pageY").Float(),
			})
		}
	}
	return ev
}

// valuer is implemented by every node of this package.
type valuer interface {
	Value() js.Value
}

// call invokes method on v and turns a thrown JavaScript exception into
// an error.
func call(v js.Value, method string, args ...any) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = fmt.Errorf("dom: %s: %w", method, jsErr)
				return
			}
			panic(r)
		}
	}()
	return v.Call(method, args...), nil
}

func isObject(v js.Value) bool {
	return v.Type() == js.TypeObject || v.Type() == js.TypeFunction
}

var (
	_ host.Document = (*Document)(nil)
	_ host.Element  = (*Element)(nil)
)
