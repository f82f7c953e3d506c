// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Composite selects the Porter-Duff operation applied by draws.
type Composite uint8

const (
	// CompositeSourceOver paints the source over the destination.
	CompositeSourceOver Composite = iota

	// CompositeDestinationOut keeps the destination only where the source
	// is transparent: drawn pixels erase.
	CompositeDestinationOut
)

// String returns the canvas globalCompositeOperation name.
func (c Composite) String() string {
	switch c {
	case CompositeSourceOver:
		return "source-over"
	case CompositeDestinationOut:
		return "destination-out"
	default:
		return "unknown"
	}
}

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt LineCap = iota

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

// String returns the canvas lineCap name.
func (c LineCap) String() string {
	switch c {
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the canvas lineJoin name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "miter"
	}
}

// TextAlign anchors text horizontally relative to the draw point.
type TextAlign uint8

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// String returns the canvas textAlign name.
func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return "left"
	}
}

// anchor returns the horizontal anchor fraction.
func (a TextAlign) anchor() float64 {
	switch a {
	case TextAlignCenter:
		return 0.5
	case TextAlignRight:
		return 1
	default:
		return 0
	}
}

// TextBaseline anchors text vertically relative to the draw point.
type TextBaseline uint8

const (
	TextBaselineAlphabetic TextBaseline = iota
	TextBaselineTop
	TextBaselineMiddle
	TextBaselineBottom
)

// String returns the canvas textBaseline name.
func (b TextBaseline) String() string {
	switch b {
	case TextBaselineTop:
		return "top"
	case TextBaselineMiddle:
		return "middle"
	case TextBaselineBottom:
		return "bottom"
	default:
		return "alphabetic"
	}
}

// anchor returns the vertical anchor fraction in gg's DrawStringAnchored
// convention, where 0 keeps y on the baseline.
func (b TextBaseline) anchor() float64 {
	switch b {
	case TextBaselineTop:
		return 1
	case TextBaselineMiddle:
		return 0.5
	default:
		return 0
	}
}

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}
