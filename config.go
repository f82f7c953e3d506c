package scratchcard

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/merge"
)

// Configuration keys.
const (
	KeyHostElement         = "hostElement"
	KeyImageSource         = "imageSource"
	KeySize                = "size"
	KeyValidArea           = "validArea"
	KeyCompletionThreshold = "completionThreshold"
	KeyCoverStyle          = "coverStyle"
	KeyUnsupportedMessage  = "unsupportedMessage"
	KeyOnScratch           = "onScratch"
	KeyOnComplete          = "onComplete"

	KeyFillColor   = "fillColor"
	KeyLabelText   = "labelText"
	KeyLabelColor  = "labelColor"
	KeyFont        = "font"
	KeyStrokeWidth = "strokeWidth"
)

// Default configuration values.
const (
	DefaultWidth               = 240
	DefaultHeight              = 180
	DefaultCompletionThreshold = 0.6
	DefaultFillColor           = "#E0E0E0"
	DefaultLabelText           = "Scratch here"
	DefaultLabelColor          = "#888"
	DefaultFont                = "30px Verdana"
	DefaultStrokeWidth         = 30.0
	DefaultUnsupportedMessage  = "Sorry, [Canvas] is not supported."
)

// Defaults returns a fresh default configuration tree. validArea is absent:
// the whole card is sampled unless the caller provides one.
func Defaults() merge.Map {
	return merge.Map{
		KeyHostElement:         nil,
		KeyImageSource:         "",
		KeySize:                []float64{DefaultWidth, DefaultHeight},
		KeyCompletionThreshold: DefaultCompletionThreshold,
		KeyCoverStyle: merge.Map{
			KeyFillColor:   DefaultFillColor,
			KeyLabelText:   DefaultLabelText,
			KeyLabelColor:  DefaultLabelColor,
			KeyFont:        DefaultFont,
			KeyStrokeWidth: DefaultStrokeWidth,
		},
		KeyUnsupportedMessage: DefaultUnsupportedMessage,
		KeyOnScratch:          nil,
		KeyOnComplete:         nil,
	}
}

// CoverStyle describes how the cover layer is painted.
type CoverStyle struct {
	FillColor   string
	LabelText   string
	LabelColor  string
	Font        string
	StrokeWidth float64
}

// Config is a validated, decoded configuration. Cards never modify it.
type Config struct {
	HostElement host.Element
	ImageSource string

	// Size is the card size. The zero value means the image's natural size.
	Size image.Point

	// ValidArea is the sampled rectangle in card coordinates. It is only
	// meaningful when FullArea is false.
	ValidArea image.Rectangle
	FullArea  bool

	CompletionThreshold float64
	CoverStyle          CoverStyle
	UnsupportedMessage  string

	OnScratch  func(fraction float64)
	OnComplete func()
}

// decodeConfig converts a tree that passed Validate. Values of the wrong
// type for non-validated keys fall back to their defaults with a warning.
func decodeConfig(m merge.Map, log *slog.Logger) Config {
	cfg := Config{
		HostElement:         m[KeyHostElement].(host.Element),
		ImageSource:         m[KeyImageSource].(string),
		FullArea:            true,
		CompletionThreshold: DefaultCompletionThreshold,
		UnsupportedMessage:  DefaultUnsupportedMessage,
	}

	if v, ok := present(m, KeySize); ok {
		nums, _ := numbers(v, 2)
		cfg.Size = image.Pt(int(nums[0]), int(nums[1]))
	}
	if v, ok := present(m, KeyValidArea); ok {
		nums, _ := numbers(v, 4)
		x, y := int(nums[0]), int(nums[1])
		cfg.ValidArea = image.Rect(x, y, x+int(nums[2]), y+int(nums[3]))
		cfg.FullArea = false
	}
	if v, ok := present(m, KeyCompletionThreshold); ok {
		cfg.CompletionThreshold, _ = threshold(v)
		if t := cfg.CompletionThreshold; t <= 0 || t > 1 {
			log.Warn("scratchcard: completionThreshold outside (0, 1]", "value", t)
		}
	}
	if v, ok := present(m, KeyUnsupportedMessage); ok {
		cfg.UnsupportedMessage = stringValue(log, KeyUnsupportedMessage, v, DefaultUnsupportedMessage)
	}

	cfg.CoverStyle = decodeCoverStyle(m[KeyCoverStyle], log)

	switch fn := m[KeyOnScratch].(type) {
	case nil:
	case func(float64):
		cfg.OnScratch = fn
	default:
		log.Warn("scratchcard: ignoring onScratch of wrong type", "type", typeName(fn))
	}
	switch fn := m[KeyOnComplete].(type) {
	case nil:
	case func():
		cfg.OnComplete = fn
	default:
		log.Warn("scratchcard: ignoring onComplete of wrong type", "type", typeName(fn))
	}

	return cfg
}

func decodeCoverStyle(v any, log *slog.Logger) CoverStyle {
	style := CoverStyle{
		FillColor:   DefaultFillColor,
		LabelText:   DefaultLabelText,
		LabelColor:  DefaultLabelColor,
		Font:        DefaultFont,
		StrokeWidth: DefaultStrokeWidth,
	}
	m, ok := v.(merge.Map)
	if !ok {
		if v != nil {
			log.Warn("scratchcard: ignoring coverStyle of wrong type", "type", typeName(v))
		}
		return style
	}

	if v, ok := present(m, KeyFillColor); ok {
		style.FillColor = stringValue(log, KeyFillColor, v, style.FillColor)
	}
	if v, ok := present(m, KeyLabelText); ok {
		style.LabelText = stringValue(log, KeyLabelText, v, style.LabelText)
	}
	if v, ok := present(m, KeyLabelColor); ok {
		style.LabelColor = stringValue(log, KeyLabelColor, v, style.LabelColor)
	}
	if v, ok := present(m, KeyFont); ok {
		style.Font = stringValue(log, KeyFont, v, style.Font)
	}
	if v, ok := present(m, KeyStrokeWidth); ok {
		if w, ok := number(v); ok && w > 0 {
			style.StrokeWidth = w
		} else {
			log.Warn("scratchcard: ignoring invalid strokeWidth", "value", v)
		}
	}
	return style
}

func stringValue(log *slog.Logger, key string, v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		log.Warn("scratchcard: ignoring value of wrong type", "key", key, "type", typeName(v))
		return fallback
	}
	return s
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
