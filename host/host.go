// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"github.com/gogpu/scratchcard/surface"
)

// NodeType identifies the kind of a node, mirroring DOM nodeType values.
type NodeType int

const (
	// ElementNode is an element such as a div, img or canvas.
	ElementNode NodeType = 1

	// TextNode is a run of character data.
	TextNode NodeType = 3

	// DocumentNode is the document itself.
	DocumentNode NodeType = 9
)

// Node is anything carrying a node identity. Configuration merging treats
// every Node as an opaque reference and never clones it.
type Node interface {
	NodeType() NodeType
}

// Element is a node that can hold children, carry inline styles and
// deliver events.
type Element interface {
	Node

	// OwnerDocument returns the document used to create new elements.
	OwnerDocument() Document

	// AppendChild inserts child as the last child. A child that already has
	// a parent is moved.
	AppendChild(child Element) error

	// RemoveChild detaches child. It fails if child is not a direct child.
	RemoveChild(child Element) error

	// ClearChildren removes every child (innerHTML = '').
	ClearChildren()

	// SetCSSText replaces the whole inline style declaration.
	SetCSSText(css string)

	// SetStyle sets a single inline style property. An empty value removes it.
	SetStyle(property, value string)

	// Style returns the inline value of property, or "".
	Style(property string) string

	// PageOffset returns the element's top-left corner in page coordinates.
	PageOffset() (x, y float64)

	// Listen registers h for events of type t. The returned subscription
	// removes the listener when released.
	Listen(t EventType, h Handler) *Subscription
}

// Image is an element that loads a picture asynchronously.
type Image interface {
	Element

	// SetSource starts loading src. Completion is reported through the
	// callback installed with OnLoad.
	SetSource(src string)

	// OnLoad installs the load-completion callback. Passing nil unsets it,
	// so a late load cannot reach a torn-down owner.
	OnLoad(fn func())

	// NaturalSize returns the intrinsic dimensions of the loaded picture.
	NaturalSize() (width, height int)

	// SetSize sets the rendered dimensions.
	SetSize(width, height int)
}

// Canvas is an element exposing a 2D raster surface.
type Canvas interface {
	Element

	// SetSize sets both the backing store and the rendered size.
	SetSize(width, height int)

	// SetFallbackText sets the content shown when the surface is unsupported.
	SetFallbackText(text string)

	// Context2D returns the drawing surface, or an error when the
	// environment has no 2D drawing support.
	Context2D() (surface.Surface, error)
}

// Document creates elements.
type Document interface {
	CreateImage() Image
	CreateCanvas() Canvas
}
