// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import (
	"image"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/surface"
)

// Render composites the subtree rooted at root into an image the size of
// root. Images are scaled to their set size, canvases contribute their
// surface pixels, and a canvas without a surface shows its background
// style color.
func Render(root host.Element) *image.NRGBA {
	n, ok := root.(node)
	if !ok {
		return image.NewNRGBA(image.Rectangle{})
	}
	e := n.base()
	w, h := e.size()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	renderInto(dst, e, image.Point{})
	return dst
}

func renderInto(dst *image.NRGBA, e *Element, origin image.Point) {
	if e.Style("display") == "none" {
		return
	}
	at := origin.Add(image.Pt(int(e.offsetX), int(e.offsetY)))
	w, h := e.size()
	r := image.Rect(at.X, at.Y, at.X+w, at.Y+h)

	if bg := e.Style("background"); bg != "" && bg != "transparent" {
		if c, err := surface.ParseColor(bg); err == nil {
			draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
		}
	}

	switch el := e.outer().(type) {
	case *Image:
		if pic := el.Picture(); pic != nil && !r.Empty() {
			draw.ApproxBiLinear.Scale(dst, r, pic, pic.Bounds(), draw.Over, nil)
		}
	case *Canvas:
		if s := el.Surface(); s != nil {
			data := s.ImageData(image.Rect(0, 0, s.Width(), s.Height()))
			draw.Draw(dst, r, data, image.Point{}, draw.Over)
		}
	}

	children := append([]*Element(nil), e.children...)
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].zIndex() < children[j].zIndex()
	})
	for _, c := range children {
		renderInto(dst, c, at)
	}
}

// size returns the element's layout size.
func (e *Element) size() (int, int) {
	w, wok := e.pxStyle("width")
	h, hok := e.pxStyle("height")
	if wok && hok {
		return w, h
	}
	switch el := e.outer().(type) {
	case *Image:
		return el.Size()
	case *Canvas:
		return el.Size()
	}
	return w, h
}

func (e *Element) zIndex() int {
	z, err := strconv.Atoi(strings.TrimSpace(e.Style("z-index")))
	if err != nil {
		return 0
	}
	return z
}

// Alpha is a convenience for tests: it returns the alpha of the pixel at
// (x, y) in img, or 0 outside.
func Alpha(img image.Image, x, y int) uint8 {
	if !image.Pt(x, y).In(img.Bounds()) {
		return 0
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A
}
