// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
	"testing"
)

// alphaAt returns the alpha of pixel (x, y) on s.
func alphaAt(s Surface, x, y int) uint8 {
	return s.ImageData(image.Rect(x, y, x+1, y+1)).Pix[3]
}

func newCovered(w, h int) *ImageSurface {
	s := NewImageSurface(w, h)
	s.SetFillColor(color.NRGBA{0xE0, 0xE0, 0xE0, 0xff})
	s.FillRect(0, 0, float64(w), float64(h))
	return s
}

// TestImageSurfaceInterface verifies the Surface interface contract.
func TestImageSurfaceInterface(t *testing.T) {
	var _ Surface = (*ImageSurface)(nil)
}

func TestNewImageSurface(t *testing.T) {
	s := NewImageSurface(0, -5)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1 for invalid dimensions", s.Width(), s.Height())
	}

	s = NewImageSurface(16, 8)
	data := s.ImageData(image.Rect(0, 0, 16, 8))
	for i := 3; i < len(data.Pix); i += 4 {
		if data.Pix[i] != 0 {
			t.Fatalf("new surface pixel %d alpha = %d, want 0", i/4, data.Pix[i])
		}
	}
}

func TestImageSurfaceFillRectWhole(t *testing.T) {
	s := newCovered(10, 10)
	data := s.ImageData(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(data.Pix); i += 4 {
		if data.Pix[i+3] != 0xff {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, data.Pix[i+3])
		}
		if !near(data.Pix[i], 0xE0) {
			t.Fatalf("pixel %d red = %d, want 0xE0", i/4, data.Pix[i])
		}
	}
}

func TestImageSurfaceEraseRect(t *testing.T) {
	s := newCovered(20, 20)
	s.SetComposite(CompositeDestinationOut)
	s.FillRect(2, 2, 6, 6)

	if a := alphaAt(s, 4, 4); a != 0 {
		t.Errorf("erased pixel alpha = %d, want 0", a)
	}
	if a := alphaAt(s, 15, 15); a != 0xff {
		t.Errorf("untouched pixel alpha = %d, want 255", a)
	}
	if s.Composite() != CompositeDestinationOut {
		t.Errorf("Composite() = %v, want destination-out", s.Composite())
	}
}

func TestImageSurfaceEraseStroke(t *testing.T) {
	s := newCovered(60, 60)
	s.SetComposite(CompositeDestinationOut)
	s.SetLineWidth(10)
	s.SetLineCap(LineCapRound)
	s.SetLineJoin(LineJoinRound)

	s.BeginPath()
	s.MoveTo(10, 20)
	s.LineTo(50, 20)
	s.Stroke()

	if a := alphaAt(s, 30, 20); a != 0 {
		t.Errorf("pixel on stroke alpha = %d, want 0", a)
	}
	if a := alphaAt(s, 30, 45); a != 0xff {
		t.Errorf("pixel off stroke alpha = %d, want 255", a)
	}
}

func TestImageSurfaceStrokeMoveOnly(t *testing.T) {
	s := newCovered(20, 20)
	s.SetComposite(CompositeDestinationOut)
	s.SetLineWidth(8)
	s.BeginPath()
	s.MoveTo(10, 10)
	s.Stroke()

	if a := alphaAt(s, 10, 10); a != 0xff {
		t.Errorf("move-only stroke changed alpha to %d", a)
	}
}

func TestImageSurfaceStrokePaints(t *testing.T) {
	s := NewImageSurface(40, 20)
	s.SetStrokeColor(color.NRGBA{255, 0, 0, 255})
	s.SetLineWidth(6)
	s.BeginPath()
	s.MoveTo(5, 10)
	s.LineTo(35, 10)
	s.Stroke()

	if a := alphaAt(s, 20, 10); a == 0 {
		t.Error("source-over stroke left the pixel transparent")
	}
	if a := alphaAt(s, 20, 1); a != 0 {
		t.Errorf("pixel away from stroke alpha = %d, want 0", a)
	}
}

func TestImageSurfaceImageDataOrigin(t *testing.T) {
	s := newCovered(20, 20)
	s.SetComposite(CompositeDestinationOut)
	s.FillRect(5, 5, 2, 2)

	tests := []struct {
		r    image.Rectangle
		want image.Rectangle
	}{
		{image.Rect(5, 5, 10, 10), image.Rect(0, 0, 5, 5)},
		{image.Rect(10, 10, 5, 5), image.Rect(0, 0, 5, 5)},
		{image.Rect(0, 0, 20, 20), image.Rect(0, 0, 20, 20)},
	}
	for _, tt := range tests {
		data := s.ImageData(tt.r)
		if data.Bounds() != tt.want {
			t.Errorf("ImageData(%v) bounds = %v, want %v", tt.r, data.Bounds(), tt.want)
		}
	}
	if a := s.ImageData(image.Rect(5, 5, 10, 10)).Pix[3]; a != 0 {
		t.Errorf("alpha at index 0 = %d, want 0 (pixel at r.Min)", a)
	}
}

func TestImageSurfaceImageDataOutOfBounds(t *testing.T) {
	s := newCovered(4, 4)
	data := s.ImageData(image.Rect(-2, -2, 2, 2))
	if data.Bounds().Dx() != 4 || data.Bounds().Dy() != 4 {
		t.Fatalf("ImageData bounds = %v, want 4x4", data.Bounds())
	}
	if a := data.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("outside pixel alpha = %d, want 0", a)
	}
	if a := data.NRGBAAt(3, 3).A; a != 0xff {
		t.Errorf("inside pixel alpha = %d, want 255", a)
	}
}

func TestImageSurfaceFillText(t *testing.T) {
	s := NewImageSurface(80, 40)
	font, err := ParseFont("30px Verdana")
	if err != nil {
		t.Fatal(err)
	}
	s.SetFont(font)
	s.SetTextAlign(TextAlignCenter)
	s.SetTextBaseline(TextBaselineMiddle)
	s.SetFillColor(color.Black)
	s.FillText("WIN", 40, 20)

	data := s.ImageData(image.Rect(0, 0, 80, 40))
	painted := 0
	for i := 3; i < len(data.Pix); i += 4 {
		if data.Pix[i] != 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("FillText painted no pixels")
	}
}

func TestImageSurfaceSetLineWidthIgnoresInvalid(t *testing.T) {
	s := NewImageSurface(4, 4)
	s.SetLineWidth(12)
	s.SetLineWidth(0)
	s.SetLineWidth(-3)
	if s.lineWidth != 12 {
		t.Errorf("lineWidth = %v, want 12", s.lineWidth)
	}
}

func TestImageSurfaceClose(t *testing.T) {
	s := newCovered(5, 5)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if s.Pixels() != nil {
		t.Error("Pixels() should be nil after Close")
	}

	// Draws after Close are ignored and read-back stays well-formed.
	s.FillRect(0, 0, 5, 5)
	data := s.ImageData(image.Rect(0, 0, 5, 5))
	if data.Bounds().Dx() != 5 {
		t.Errorf("ImageData after Close bounds = %v", data.Bounds())
	}
}

func TestCompositeString(t *testing.T) {
	tests := []struct {
		c    Composite
		want string
	}{
		{CompositeSourceOver, "source-over"},
		{CompositeDestinationOut, "destination-out"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if LineCapRound.String() != "round" || LineJoinRound.String() != "round" {
		t.Error("unexpected cap/join names")
	}
	if TextAlignCenter.String() != "center" || TextBaselineMiddle.String() != "middle" {
		t.Error("unexpected text anchoring names")
	}
}
