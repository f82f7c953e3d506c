// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFont is returned when a CSS font string has no usable size.
var ErrInvalidFont = errors.New("surface: invalid font")

// Font is a parsed CSS font shorthand.
type Font struct {
	// Size is the font size in CSS pixels.
	Size float64

	// Families lists font families in preference order.
	Families []string

	// Modifiers holds the style, variant and weight keywords preceding the
	// size, kept so String round-trips.
	Modifiers []string
}

// DefaultFont is the canvas default, "10px sans-serif".
var DefaultFont = Font{Size: 10, Families: []string{"sans-serif"}}

// ParseFont parses CSS font shorthand such as "30px Verdana" or
// "bold 16pt 'Helvetica Neue', sans-serif".
func ParseFont(css string) (Font, error) {
	fields := strings.Fields(css)
	for i, field := range fields {
		sizePart := field
		if slash := strings.IndexByte(field, '/'); slash >= 0 {
			sizePart = field[:slash] // drop line-height
		}
		size, ok := parseFontSize(sizePart)
		if !ok {
			continue
		}

		f := Font{Size: size}
		if i > 0 {
			f.Modifiers = append([]string(nil), fields[:i]...)
		}
		for _, fam := range strings.Split(strings.Join(fields[i+1:], " "), ",") {
			fam = strings.Trim(strings.TrimSpace(fam), `"'`)
			if fam != "" {
				f.Families = append(f.Families, fam)
			}
		}
		if len(f.Families) == 0 {
			return Font{}, fmt.Errorf("%w: no family in %q", ErrInvalidFont, css)
		}
		return f, nil
	}
	return Font{}, fmt.Errorf("%w: no size in %q", ErrInvalidFont, css)
}

func parseFontSize(s string) (float64, bool) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"px", 1},
		{"pt", 4.0 / 3.0},
		{"rem", 16},
		{"em", 16},
	}
	for _, u := range units {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, u.suffix), 64)
		if err != nil || n <= 0 {
			return 0, false
		}
		return n * u.scale, true
	}
	return 0, false
}

// String formats the font as CSS shorthand with the size in px.
func (f Font) String() string {
	var b strings.Builder
	for _, m := range f.Modifiers {
		b.WriteString(m)
		b.WriteByte(' ')
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px ")
	for i, fam := range f.Families {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.ContainsRune(fam, ' ') {
			fam = strconv.Quote(fam)
		}
		b.WriteString(fam)
	}
	return b.String()
}
