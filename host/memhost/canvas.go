// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"fmt"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/surface"
)

// Canvas is a canvas element backed by a surface from the registry.
type Canvas struct {
	*Element

	width, height int

	surf surface.Surface
	err  error
}

// SetSize sets the canvas size. Resizing discards an existing surface,
// as resizing a browser canvas clears it.
func (c *Canvas) SetSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.release()
}

// Size returns the canvas size.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetFallbackText sets the text shown without surface support.
func (c *Canvas) SetFallbackText(text string) {
	c.SetText(text)
}

// Context2D returns the canvas surface, creating it on first use with the
// document's backend. The same surface is returned until the canvas is
// resized.
func (c *Canvas) Context2D() (surface.Surface, error) {
	if c.surf != nil || c.err != nil {
		return c.surf, c.err
	}
	backend := surface.BackendImage
	if c.doc != nil {
		backend = c.doc.backend
	}
	s, err := surface.NewSurfaceByName(backend, c.width, c.height)
	if err != nil {
		c.err = fmt.Errorf("memhost: canvas context: %w", err)
		return nil, c.err
	}
	c.surf = s
	return s, nil
}

// Surface returns the surface created by Context2D, or nil.
func (c *Canvas) Surface() surface.Surface {
	return c.surf
}

func (c *Canvas) release() {
	if closer, ok := c.surf.(surface.Closer); ok {
		_ = closer.Close()
	}
	c.surf = nil
	c.err = nil
}

var _ host.Canvas = (*Canvas)(nil)
