// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the 2D drawing surface a scratch card paints its
// cover on and erases from.
//
// Surface follows the HTML canvas 2D context closely: fill and stroke
// colors, line width, caps and joins, a path built from MoveTo and LineTo,
// a composite operation switch and pixel read-back. The same card code can
// therefore drive a browser canvas (see host/dom) or the software
// ImageSurface backed by gg.
//
// # Erasing
//
// With the composite set to CompositeDestinationOut, every fill, stroke and
// text draw removes coverage from the destination instead of painting:
//
//	s := surface.NewImageSurface(240, 180)
//	s.SetFillColor(color.Gray{0xE0})
//	s.FillRect(0, 0, 240, 180)
//
//	s.SetComposite(surface.CompositeDestinationOut)
//	s.SetLineWidth(30)
//	s.SetLineCap(surface.LineCapRound)
//	s.BeginPath()
//	s.MoveTo(10, 10)
//	s.LineTo(200, 150)
//	s.Stroke()
//
//	data := s.ImageData(image.Rect(0, 0, 240, 180)) // alpha 0 along the stroke
//
// # Backends
//
// Backends register factories under a name (see Register). The "image"
// backend is built in. Hosts create surfaces with NewSurfaceByName so a
// missing or unavailable backend surfaces as an error, the same way a
// browser without canvas support fails getContext.
//
// # Fonts
//
// Fonts are selected with CSS font shorthand strings ("30px Verdana").
// Families are looked up in the font registry (RegisterFont); unknown
// families fall back to Go Regular.
package surface
