// Package prize draws the built-in picture the demos hide under their
// scratch cards.
package prize

import (
	"image"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/gogpu/scratchcard/host/memhost"
	"github.com/gogpu/scratchcard/surface"
)

// Source is the image source that resolves to the built-in picture.
// An optional "?WxH" suffix selects the picture size.
const Source = "builtin:prize"

// Default picture size.
const (
	Width  = 240
	Height = 180
)

// Load resolves Source to a drawn picture and everything else through
// memhost.LoadFile. It is a memhost.Loader.
func Load(src string) (image.Image, error) {
	if !strings.HasPrefix(src, Source) {
		return memhost.LoadFile(src)
	}
	w, h := Width, Height
	if size, ok := strings.CutPrefix(src, Source+"?"); ok {
		if pw, ph, ok := parseSize(size); ok {
			w, h = pw, ph
		}
	}
	return Picture(w, h), nil
}

// Picture draws the prize at w x h.
func Picture(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	drawGradientBackground(dc, w, h)
	drawStarburst(dc, float64(w)/2, float64(h)/2, math.Min(float64(w), float64(h))*0.45)

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(math.Max(1, float64(h)/45))
	inset := float64(h) / 30
	dc.DrawRoundedRectangle(inset, inset, float64(w)-2*inset, float64(h)-2*inset, 2*inset)
	_ = dc.Stroke()

	if src, err := surface.LookupFont("go"); err == nil {
		dc.SetFont(src.Face(float64(h) / 6))
		dc.SetRGB(0.15, 0.1, 0)
		dc.DrawStringAnchored("YOU WIN", float64(w)/2, float64(h)/2, 0.5, 0.5)
	}
	return dc.Image()
}

func drawGradientBackground(dc *gg.Context, w, h int) {
	steps := 40
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetColor(gg.RGB(0.9-t*0.3, 0.3+t*0.2, 0.4+t*0.4))
		y := float64(i) * float64(h) / float64(steps)
		dc.DrawRectangle(0, y, float64(w), float64(h)/float64(steps)+1)
		_ = dc.Fill()
	}
}

// drawStarburst fills a sixteen-point star.
func drawStarburst(dc *gg.Context, cx, cy, r float64) {
	const points = 16
	dc.SetColor(gg.HSL(0.14, 0.95, 0.6))
	for i := 0; i < points*2; i++ {
		radius := r
		if i%2 == 1 {
			radius = r * 0.7
		}
		angle := float64(i) * math.Pi / points
		x, y := cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	_ = dc.Fill()
}

// parseSize parses "WxH" with positive dimensions.
func parseSize(s string) (w, h int, ok bool) {
	ws, hs, found := strings.Cut(s, "x")
	if !found {
		return 0, 0, false
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
