package scratchcard

import (
	"image"

	"github.com/gogpu/scratchcard/surface"
)

// ErasedFraction returns the share of pixels in area whose alpha is zero.
// Pixels of area that fall outside the surface read as transparent and
// count as erased. An empty area yields 0.
func ErasedFraction(s surface.Surface, area image.Rectangle) float64 {
	if s == nil || area.Empty() {
		return 0
	}
	data := s.ImageData(area)

	erased := 0
	for i := 3; i < len(data.Pix); i += 4 {
		if data.Pix[i] == 0 {
			erased++
		}
	}
	total := area.Dx() * area.Dy()
	return float64(erased) / float64(total)
}
