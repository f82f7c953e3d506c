// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/unicode/norm"
)

// ImageSurface is a CPU-based surface rendering into a gg.Context.
//
// Source-over draws go straight to the context. Destination-out draws are
// rasterized into a second, scratch context (the brush) and then subtracted
// from the destination alpha, which is how canvas "destination-out" erases.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.SetFillColor(color.White)
//	s.FillRect(0, 0, 800, 600)
//	img := s.ImageData(image.Rect(0, 0, 800, 600))
type ImageSurface struct {
	width  int
	height int

	dc    *gg.Context // destination
	brush *gg.Context // erase coverage scratch

	composite   Composite
	fillColor   color.Color
	strokeColor color.Color
	lineWidth   float64
	lineCap     LineCap
	lineJoin    LineJoin
	font        Font
	align       TextAlign
	baseline    TextBaseline

	path []pathOp

	// closed tracks if Close has been called
	closed bool
}

// pathVerb is a recorded path command.
type pathVerb uint8

const (
	verbMoveTo pathVerb = iota
	verbLineTo
	verbClose
)

type pathOp struct {
	verb pathVerb
	x, y float64
}

// NewImageSurface creates a transparent surface with the given dimensions.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:       width,
		height:      height,
		dc:          gg.NewContext(width, height),
		brush:       gg.NewContext(width, height),
		fillColor:   color.Black,
		strokeColor: color.Black,
		lineWidth:   1,
		font:        DefaultFont,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// SetComposite selects the composite operation.
func (s *ImageSurface) SetComposite(op Composite) {
	s.composite = op
}

// Composite returns the composite operation.
func (s *ImageSurface) Composite() Composite {
	return s.composite
}

// SetFillColor sets the fill color.
func (s *ImageSurface) SetFillColor(c color.Color) {
	if c != nil {
		s.fillColor = c
	}
}

// SetStrokeColor sets the stroke color.
func (s *ImageSurface) SetStrokeColor(c color.Color) {
	if c != nil {
		s.strokeColor = c
	}
}

// SetLineWidth sets the stroke width. Non-positive widths are ignored, as
// canvas does.
func (s *ImageSurface) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) && !math.IsNaN(width) {
		s.lineWidth = width
	}
}

// SetLineCap sets the line cap style.
func (s *ImageSurface) SetLineCap(lineCap LineCap) {
	s.lineCap = lineCap
}

// SetLineJoin sets the line join style.
func (s *ImageSurface) SetLineJoin(join LineJoin) {
	s.lineJoin = join
}

// SetFont sets the text font.
func (s *ImageSurface) SetFont(font Font) {
	if font.Size > 0 {
		s.font = font
	}
}

// SetTextAlign sets horizontal text anchoring.
func (s *ImageSurface) SetTextAlign(align TextAlign) {
	s.align = align
}

// SetTextBaseline sets vertical text anchoring.
func (s *ImageSurface) SetTextBaseline(baseline TextBaseline) {
	s.baseline = baseline
}

// FillRect fills a rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if s.closed || w == 0 || h == 0 {
		return
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}

	if s.composite == CompositeDestinationOut {
		s.erase(s.bounds(), func(b *gg.Context) {
			b.DrawRectangle(x, y, w, h)
			_ = b.Fill()
		})
		return
	}

	// Whole-surface fills skip rasterization so every pixel gets the exact
	// fill color.
	if x <= 0 && y <= 0 && x+w >= float64(s.width) && y+h >= float64(s.height) && isOpaque(s.fillColor) {
		s.dc.ClearWithColor(gg.FromColor(s.fillColor))
		return
	}

	s.dc.ClearPath()
	s.dc.SetColor(s.fillColor)
	s.dc.DrawRectangle(x, y, w, h)
	_ = s.dc.Fill()
}

// FillText draws text with the current font, fill color and anchoring.
func (s *ImageSurface) FillText(str string, x, y float64) {
	if s.closed || str == "" {
		return
	}
	face := globalFonts.face(s.font)
	if face == nil {
		return
	}
	str = norm.NFC.String(str)
	ax, ay := s.align.anchor(), s.baseline.anchor()

	if s.composite == CompositeDestinationOut {
		s.erase(s.bounds(), func(b *gg.Context) {
			b.SetFont(face)
			b.DrawStringAnchored(str, x, y, ax, ay)
		})
		return
	}

	s.dc.SetFont(face)
	s.dc.SetColor(s.fillColor)
	s.dc.DrawStringAnchored(str, x, y, ax, ay)
}

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() {
	s.path = s.path[:0]
}

// MoveTo starts a new subpath.
func (s *ImageSurface) MoveTo(x, y float64) {
	s.path = append(s.path, pathOp{verb: verbMoveTo, x: x, y: y})
}

// LineTo adds a line segment. Without a current point it acts as MoveTo.
func (s *ImageSurface) LineTo(x, y float64) {
	if len(s.path) == 0 {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, pathOp{verb: verbLineTo, x: x, y: y})
}

// ClosePath closes the current subpath.
func (s *ImageSurface) ClosePath() {
	if len(s.path) == 0 {
		return
	}
	s.path = append(s.path, pathOp{verb: verbClose})
}

// Stroke strokes the current path.
func (s *ImageSurface) Stroke() {
	if s.closed || !s.hasSegments() {
		return
	}

	if s.composite == CompositeDestinationOut {
		s.erase(s.pathBounds(), func(b *gg.Context) {
			s.applyStroke(b)
			s.replay(b)
			_ = b.Stroke()
		})
		return
	}

	s.dc.SetColor(s.strokeColor)
	s.applyStroke(s.dc)
	s.replay(s.dc)
	_ = s.dc.Stroke()
}

// ImageData returns a copy of the pixels inside r.
func (s *ImageSurface) ImageData(r image.Rectangle) *image.NRGBA {
	r = r.Canon()
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if s.closed {
		return out
	}
	_ = s.dc.FlushGPU()

	src := r.Intersect(s.bounds())
	if src.Empty() {
		return out
	}
	data := s.dc.ResizeTarget().Data()
	rowBytes := src.Dx() * 4
	for y := src.Min.Y; y < src.Max.Y; y++ {
		si := (y*s.width + src.Min.X) * 4
		di := out.PixOffset(src.Min.X-r.Min.X, y-r.Min.Y)
		copy(out.Pix[di:di+rowBytes], data[si:si+rowBytes])
	}
	return out
}

// Pixels returns the backing pixel buffer, RGBA with 4 bytes per pixel in
// row-major order. It is a direct reference, not a copy.
func (s *ImageSurface) Pixels() []uint8 {
	if s.closed {
		return nil
	}
	return s.dc.ResizeTarget().Data()
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.brush.Close()
	err := s.dc.Close()
	s.path = nil
	return err
}

func (s *ImageSurface) bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *ImageSurface) hasSegments() bool {
	for _, op := range s.path {
		if op.verb != verbMoveTo {
			return true
		}
	}
	return false
}

func (s *ImageSurface) applyStroke(dc *gg.Context) {
	dc.SetLineWidth(s.lineWidth)
	dc.SetLineCap(ggLineCap(s.lineCap))
	dc.SetLineJoin(ggLineJoin(s.lineJoin))
}

// replay rebuilds the recorded path on dc.
func (s *ImageSurface) replay(dc *gg.Context) {
	dc.ClearPath()
	for _, op := range s.path {
		switch op.verb {
		case verbMoveTo:
			dc.MoveTo(op.x, op.y)
		case verbLineTo:
			dc.LineTo(op.x, op.y)
		case verbClose:
			dc.ClosePath()
		}
	}
}

// pathBounds returns the pixel bounds the current path can touch when
// stroked, padded for caps and joins.
func (s *ImageSurface) pathBounds() image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, op := range s.path {
		if op.verb == verbClose {
			continue
		}
		minX, maxX = math.Min(minX, op.x), math.Max(maxX, op.x)
		minY, maxY = math.Min(minY, op.y), math.Max(maxY, op.y)
	}
	if math.IsInf(minX, 1) {
		return image.Rectangle{}
	}

	pad := s.lineWidth/2 + 2
	if s.lineJoin == LineJoinMiter || s.lineCap == LineCapSquare {
		pad = s.lineWidth*5 + 2
	}
	return image.Rect(
		int(math.Floor(minX-pad)), int(math.Floor(minY-pad)),
		int(math.Ceil(maxX+pad)), int(math.Ceil(maxY+pad)),
	)
}

// erase rasterizes draw into the brush and removes the brush coverage from
// the destination alpha inside r: dst.a = dst.a * (1 - src.a).
func (s *ImageSurface) erase(r image.Rectangle, draw func(b *gg.Context)) {
	r = r.Intersect(s.bounds())
	if r.Empty() {
		return
	}

	mask := s.brush.ResizeTarget().Data()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y*s.width + r.Min.X) * 4
		clear(mask[i : i+r.Dx()*4])
	}

	s.brush.ClearPath()
	s.brush.SetColor(color.White)
	draw(s.brush)
	_ = s.brush.FlushGPU()

	dst := s.dc.ResizeTarget().Data()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y*s.width + r.Min.X) * 4
		for x := 0; x < r.Dx(); x++ {
			i := row + x*4 + 3
			sa := uint32(mask[i])
			if sa == 0 {
				continue
			}
			dst[i] = uint8(uint32(dst[i]) * (255 - sa) / 255)
		}
	}
}

func isOpaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0xffff
}

func ggLineCap(c LineCap) gg.LineCap {
	switch c {
	case LineCapRound:
		return gg.LineCapRound
	case LineCapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func ggLineJoin(j LineJoin) gg.LineJoin {
	switch j {
	case LineJoinRound:
		return gg.LineJoinRound
	case LineJoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

// Verify ImageSurface implements Surface interface.
var _ Surface = (*ImageSurface)(nil)
var _ Closer = (*ImageSurface)(nil)
