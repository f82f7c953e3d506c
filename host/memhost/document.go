// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"errors"
	"image"
	"log/slog"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/surface"
)

// Errors returned by element tree operations.
var (
	// ErrNotChild is returned by RemoveChild for a node that is not a
	// direct child.
	ErrNotChild = errors.New("memhost: node is not a child of this element")

	// ErrForeignNode is returned when a node from another host is inserted.
	ErrForeignNode = errors.New("memhost: node does not belong to memhost")

	// ErrHierarchy is returned when an insertion would create a cycle.
	ErrHierarchy = errors.New("memhost: node cannot be inserted into its own subtree")
)

// Loader fetches and decodes the picture behind an image source.
type Loader func(src string) (image.Image, error)

// Option configures a Document.
type Option func(*Document)

// WithBackend selects the surface backend canvases use. Naming a backend
// that is not registered makes Context2D fail, which is how tests
// exercise the unsupported-surface path.
func WithBackend(name string) Option {
	return func(d *Document) {
		d.backend = name
	}
}

// WithLoader replaces the file loader used for image sources.
func WithLoader(l Loader) Option {
	return func(d *Document) {
		if l != nil {
			d.loader = l
		}
	}
}

// WithLogger sets the logger for load failures and tree misuse.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.log = l
		}
	}
}

// Document creates elements and owns pending image loads.
type Document struct {
	backend string
	loader  Loader
	log     *slog.Logger

	pending []*Image
}

// NewDocument creates a document. By default canvases use the built-in
// image surface and images are decoded from files.
func NewDocument(opts ...Option) *Document {
	d := &Document{
		backend: surface.BackendImage,
		loader:  LoadFile,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateElement creates a generic element such as a div.
func (d *Document) CreateElement(tag string) *Element {
	e := newElement(d, tag)
	e.self = e
	return e
}

// CreateImage creates an image element.
func (d *Document) CreateImage() host.Image {
	return d.NewImage()
}

// NewImage is CreateImage returning the concrete type.
func (d *Document) NewImage() *Image {
	img := &Image{Element: newElement(d, "img")}
	img.self = img
	return img
}

// CreateCanvas creates a canvas element.
func (d *Document) CreateCanvas() host.Canvas {
	return d.NewCanvas()
}

// NewCanvas is CreateCanvas returning the concrete type.
func (d *Document) NewCanvas() *Canvas {
	c := &Canvas{Element: newElement(d, "canvas"), width: 300, height: 150}
	c.self = c
	return c
}

// Pending returns the number of images waiting to load.
func (d *Document) Pending() int {
	return len(d.pending)
}

// LoadImages completes every pending image load, firing load callbacks in
// request order. Images whose source fails to load stay unloaded and never
// fire. It returns the number of images loaded.
func (d *Document) LoadImages() int {
	pending := d.pending
	d.pending = nil

	loaded := 0
	for _, img := range pending {
		pic, err := d.loader(img.src)
		if err != nil {
			d.log.Warn("memhost: image failed to load", "src", img.src, "err", err)
			continue
		}
		img.finish(pic)
		loaded++
	}
	return loaded
}

func (d *Document) request(img *Image) {
	for _, p := range d.pending {
		if p == img {
			return
		}
	}
	d.pending = append(d.pending, img)
}

var _ host.Document = (*Document)(nil)
