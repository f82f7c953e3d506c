// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Surface is a 2D raster drawing target with canvas-like semantics.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// SetComposite selects how subsequent draws combine with existing pixels.
	SetComposite(op Composite)

	// Composite returns the current composite operation.
	Composite() Composite

	// SetFillColor sets the color used by FillRect and FillText.
	SetFillColor(c color.Color)

	// SetStrokeColor sets the color used by Stroke.
	SetStrokeColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(width float64)

	// SetLineCap sets the shape of stroke end points.
	SetLineCap(lineCap LineCap)

	// SetLineJoin sets the shape of stroke corners.
	SetLineJoin(join LineJoin)

	// SetFont sets the font used by FillText.
	SetFont(font Font)

	// SetTextAlign sets horizontal text anchoring.
	SetTextAlign(align TextAlign)

	// SetTextBaseline sets vertical text anchoring.
	SetTextBaseline(baseline TextBaseline)

	// FillRect fills the rectangle with the fill color.
	FillRect(x, y, w, h float64)

	// FillText draws s anchored at (x, y) with the fill color.
	FillText(s string, x, y float64)

	// BeginPath discards the current path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight segment to (x, y).
	LineTo(x, y float64)

	// ClosePath closes the current subpath.
	ClosePath()

	// Stroke strokes the current path. The path is not consumed.
	Stroke()

	// ImageData returns a copy of the non-premultiplied pixels inside r.
	// Pixels outside the surface read as transparent black. The result
	// has its origin at (0, 0): the pixel at r.Min is at index 0.
	ImageData(r image.Rectangle) *image.NRGBA
}

// Closer is implemented by surfaces holding releasable resources.
type Closer interface {
	Close() error
}
