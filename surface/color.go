// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a CSS color string cannot be parsed.
var ErrInvalidColor = errors.New("surface: invalid color")

// ParseColor parses a CSS color: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa",
// "rgb(r, g, b)", "rgba(r, g, b, a)", "transparent" or a CSS color name.
func ParseColor(s string) (color.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return nil, fmt.Errorf("%w: empty", ErrInvalidColor)
	case v == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v)
	case strings.HasPrefix(v, "rgb"):
		return parseFuncColor(v)
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but falls back to opaque black.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.Black
	}
	return c
}

func parseHexColor(v string) (color.Color, error) {
	digits := v[1:]
	switch len(digits) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
	}
	return gg.Hex(digits).Color(), nil
}

func parseFuncColor(v string) (color.Color, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	name := v[:open]
	if name != "rgb" && name != "rgba" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	parts := strings.Split(v[open+1:len(v)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		ch[i] = clampByte(n)
	}

	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = clampByte(a * 255)
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: alpha}, nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}

// CSSColor formats c as a CSS rgba() string.
func CSSColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(float64(n.A)/255, 'f', -1, 64))
}
