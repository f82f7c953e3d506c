// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"testing"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#888", color.NRGBA{0x88, 0x88, 0x88, 0xff}},
		{"#E0E0E0", color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}},
		{"#ff000080", color.NRGBA{0xff, 0, 0, 0x80}},
		{"rgba(255, 255, 255, 1)", color.NRGBA{255, 255, 255, 255}},
		{"rgb(10,20,30)", color.NRGBA{10, 20, 30, 255}},
		{"rgba(0, 0, 0, 0.5)", color.NRGBA{0, 0, 0, 128}},
		{"Red", color.NRGBA{255, 0, 0, 255}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			got := color.NRGBAModel.Convert(c).(color.NRGBA)
			if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "hsl(1,2,3)", "notacolor", "rgba(a,b,c,d)"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestMustParseColorFallback(t *testing.T) {
	if got := MustParseColor("bogus"); got != color.Black {
		t.Errorf("MustParseColor(bogus) = %v, want black", got)
	}
}

func TestCSSColor(t *testing.T) {
	got := CSSColor(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if got != "rgba(1, 2, 3, 1)" {
		t.Errorf("CSSColor = %q", got)
	}
}
