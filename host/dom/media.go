// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/surface"
)

// Image wraps an img element.
type Image struct {
	*Element
	onLoad js.Func
	bound  bool
}

// SetSource implements host.Image.
func (img *Image) SetSource(src string) {
	img.v.Set("src", src)
}

// OnLoad implements host.Image.
func (img *Image) OnLoad(fn func()) {
	if img.bound {
		img.v.Set("onload", js.Null())
		img.onLoad.Release()
		img.bound = false
	}
	if fn == nil {
		return
	}
	img.onLoad = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	img.bound = true
	img.v.Set("onload", img.onLoad)
}

// NaturalSize implements host.Image.
func (img *Image) NaturalSize() (width, height int) {
	return img.v.Get("naturalWidth").Int(), img.v.Get("naturalHeight").Int()
}

// SetSize implements host.Image.
func (img *Image) SetSize(width, height int) {
	img.v.Set("width", width)
	img.v.Set("height", height)
}

// Canvas wraps a canvas element.
type Canvas struct {
	*Element
	ctx *Context
}

// SetSize implements host.Canvas.
func (c *Canvas) SetSize(width, height int) {
	c.v.Set("width", width)
	c.v.Set("height", height)
}

// SetFallbackText implements host.Canvas. Browsers without canvas
// support show the text instead.
func (c *Canvas) SetFallbackText(text string) {
	c.v.Set("textContent", text)
}

// Context2D implements host.Canvas.
func (c *Canvas) Context2D() (surface.Surface, error) {
	if c.ctx != nil {
		return c.ctx, nil
	}
	if c.v.Get("getContext").Type() != js.TypeFunction {
		return nil, ErrNoContext
	}
	v, err := call(c.v, "getContext", "2d")
	if err != nil {
		return nil, err
	}
	if !isObject(v) {
		return nil, ErrNoContext
	}
	c.ctx = &Context{v: v, canvas: c.v}
	return c.ctx, nil
}

var (
	_ host.Image  = (*Image)(nil)
	_ host.Canvas = (*Canvas)(nil)
)
