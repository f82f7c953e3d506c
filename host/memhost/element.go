// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gogpu/scratchcard/host"
)

// Element is an in-memory element. Images and canvases embed it.
type Element struct {
	doc  *Document
	tag  string
	self host.Element // outermost value, e.g. the *Canvas embedding this

	parent   *Element
	children []*Element

	styles map[string]string
	order  []string
	text   string

	offsetX, offsetY float64

	listeners map[host.EventType][]*listener
}

type listener struct {
	h host.Handler
}

// node is implemented by every memhost element type through *Element.
type node interface {
	base() *Element
}

func newElement(d *Document, tag string) *Element {
	return &Element{
		doc:       d,
		tag:       tag,
		styles:    make(map[string]string),
		listeners: make(map[host.EventType][]*listener),
	}
}

func (e *Element) base() *Element { return e }

// NodeType returns host.ElementNode.
func (e *Element) NodeType() host.NodeType { return host.ElementNode }

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// OwnerDocument returns the document that created e.
func (e *Element) OwnerDocument() host.Document {
	if e.doc == nil {
		return nil
	}
	return e.doc
}

// AppendChild inserts child as the last child, moving it from its current
// parent if it has one.
func (e *Element) AppendChild(child host.Element) error {
	n, ok := child.(node)
	if !ok {
		return ErrForeignNode
	}
	c := n.base()
	for p := e; p != nil; p = p.parent {
		if p == c {
			return ErrHierarchy
		}
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = e
	e.children = append(e.children, c)
	return nil
}

// RemoveChild detaches child.
func (e *Element) RemoveChild(child host.Element) error {
	n, ok := child.(node)
	if !ok {
		return ErrForeignNode
	}
	c := n.base()
	if c.parent != e {
		return ErrNotChild
	}
	e.detach(c)
	return nil
}

func (e *Element) detach(c *Element) {
	if i := slices.Index(e.children, c); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	c.parent = nil
}

// ClearChildren removes every child and the text content.
func (e *Element) ClearChildren() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.text = ""
}

// Children returns the child elements in order.
func (e *Element) Children() []host.Element {
	out := make([]host.Element, len(e.children))
	for i, c := range e.children {
		out[i] = c.outer()
	}
	return out
}

// Parent returns the parent element, or nil.
func (e *Element) Parent() host.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent.outer()
}

// Query returns the descendants of e with the given tag, in document order.
func (e *Element) Query(tag string) []host.Element {
	var out []host.Element
	var walk func(*Element)
	walk = func(el *Element) {
		for _, c := range el.children {
			if c.tag == tag {
				out = append(out, c.outer())
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

func (e *Element) outer() host.Element {
	if e.self != nil {
		return e.self
	}
	return e
}

// SetText replaces the text content.
func (e *Element) SetText(text string) { e.text = text }

// Text returns the text content.
func (e *Element) Text() string { return e.text }

// SetCSSText replaces the inline style declaration. Declarations are
// "property: value" pairs separated by semicolons.
func (e *Element) SetCSSText(css string) {
	clear(e.styles)
	e.order = e.order[:0]
	for _, decl := range strings.Split(css, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		e.SetStyle(prop, value)
	}
}

// CSSText serializes the inline style declaration.
func (e *Element) CSSText() string {
	var b strings.Builder
	for i, prop := range e.order {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(prop)
		b.WriteString(": ")
		b.WriteString(e.styles[prop])
		b.WriteByte(';')
	}
	return b.String()
}

// SetStyle sets one inline style property. An empty value removes it.
func (e *Element) SetStyle(property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	if property == "" {
		return
	}
	if value == "" {
		if _, ok := e.styles[property]; ok {
			delete(e.styles, property)
			e.order = slices.DeleteFunc(e.order, func(p string) bool { return p == property })
		}
		return
	}
	if _, ok := e.styles[property]; !ok {
		e.order = append(e.order, property)
	}
	e.styles[property] = value
}

// Style returns the inline value of property.
func (e *Element) Style(property string) string {
	return e.styles[strings.ToLower(property)]
}

// SetOffset positions e relative to its parent.
func (e *Element) SetOffset(x, y float64) {
	e.offsetX, e.offsetY = x, y
}

// PageOffset returns the sum of the offsets along the parent chain.
func (e *Element) PageOffset() (x, y float64) {
	for el := e; el != nil; el = el.parent {
		x += el.offsetX
		y += el.offsetY
	}
	return x, y
}

// Listen registers h for events of type t.
func (e *Element) Listen(t host.EventType, h host.Handler) *host.Subscription {
	l := &listener{h: h}
	e.listeners[t] = append(e.listeners[t], l)
	return host.NewSubscription(func() {
		e.listeners[t] = slices.DeleteFunc(e.listeners[t], func(x *listener) bool { return x == l })
		if len(e.listeners[t]) == 0 {
			delete(e.listeners, t)
		}
	})
}

// Listeners returns the number of listeners bound for t.
func (e *Element) Listeners(t host.EventType) int {
	return len(e.listeners[t])
}

// Dispatch delivers ev to e and then to each ancestor. Listeners bound or
// released during delivery take effect for the next event. It reports
// whether a listener called PreventDefault.
func (e *Element) Dispatch(ev *host.Event) bool {
	for el := e; el != nil; el = el.parent {
		for _, l := range slices.Clone(el.listeners[ev.Type]) {
			l.h(ev)
		}
	}
	return ev.DefaultPrevented()
}

// pxStyle parses a "<n>px" inline style.
func (e *Element) pxStyle(property string) (int, bool) {
	v := strings.TrimSuffix(e.Style(property), "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

var _ host.Element = (*Element)(nil)
