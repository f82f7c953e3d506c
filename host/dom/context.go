// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package dom

import (
	"image"
	"image/color"
	"syscall/js"

	"github.com/gogpu/scratchcard/surface"
)

// Context is a surface.Surface backed by a CanvasRenderingContext2D.
type Context struct {
	v         js.Value
	canvas    js.Value
	composite surface.Composite
}

// Width implements surface.Surface.
func (c *Context) Width() int { return c.canvas.Get("width").Int() }

// Height implements surface.Surface.
func (c *Context) Height() int { return c.canvas.Get("height").Int() }

// SetComposite implements surface.Surface.
func (c *Context) SetComposite(op surface.Composite) {
	c.composite = op
	c.v.Set("globalCompositeOperation", op.String())
}

// Composite implements surface.Surface.
func (c *Context) Composite() surface.Composite { return c.composite }

// SetFillColor implements surface.Surface.
func (c *Context) SetFillColor(col color.Color) {
	c.v.Set("fillStyle", surface.CSSColor(col))
}

// SetStrokeColor implements surface.Surface.
func (c *Context) SetStrokeColor(col color.Color) {
	c.v.Set("strokeStyle", surface.CSSColor(col))
}

// SetLineWidth implements surface.Surface.
func (c *Context) SetLineWidth(width float64) { c.v.Set("lineWidth", width) }

// SetLineCap implements surface.Surface.
func (c *Context) SetLineCap(lineCap surface.LineCap) { c.v.Set("lineCap", lineCap.String()) }

// SetLineJoin implements surface.Surface.
func (c *Context) SetLineJoin(join surface.LineJoin) { c.v.Set("lineJoin", join.String()) }

// SetFont implements surface.Surface.
func (c *Context) SetFont(font surface.Font) { c.v.Set("font", font.String()) }

// SetTextAlign implements surface.Surface.
func (c *Context) SetTextAlign(align surface.TextAlign) { c.v.Set("textAlign", align.String()) }

// SetTextBaseline implements surface.Surface.
func (c *Context) SetTextBaseline(baseline surface.TextBaseline) {
	c.v.Set("textBaseline", baseline.String())
}

// FillRect implements surface.Surface.
func (c *Context) FillRect(x, y, w, h float64) { c.v.Call("fillRect", x, y, w, h) }

// FillText implements surface.Surface.
func (c *Context) FillText(s string, x, y float64) { c.v.Call("fillText", s, x, y) }

// BeginPath implements surface.Surface.
func (c *Context) BeginPath() { c.v.Call("beginPath") }

// MoveTo implements surface.Surface.
func (c *Context) MoveTo(x, y float64) { c.v.Call("moveTo", x, y) }

// LineTo implements surface.Surface.
func (c *Context) LineTo(x, y float64) { c.v.Call("lineTo", x, y) }

// ClosePath implements surface.Surface.
func (c *Context) ClosePath() { c.v.Call("closePath") }

// Stroke implements surface.Surface.
func (c *Context) Stroke() { c.v.Call("stroke") }

// ImageData implements surface.Surface. A tainted canvas cannot be read
// back and yields a fully transparent image.
func (c *Context) ImageData(r image.Rectangle) *image.NRGBA {
	r = r.Canon()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if r.Empty() {
		return out
	}
	data, err := call(c.v, "getImageData", r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if err != nil {
		return out
	}
	js.CopyBytesToGo(out.Pix, data.Get("data"))
	return out
}

var _ surface.Surface = (*Context)(nil)
