package scratchcard

import (
	"log/slog"

	"github.com/gogpu/scratchcard/host"
)

// Option configures a Card during creation.
//
// Example:
//
//	card, err := scratchcard.New(cfg,
//	    scratchcard.WithCapabilities(scratchcard.Capabilities{Touch: true}),
//	    scratchcard.WithLogger(slog.Default()),
//	)
type Option func(*options)

// options holds optional configuration for Card creation.
type options struct {
	caps   Capabilities
	logger *slog.Logger
}

// defaultOptions returns the default card options.
func defaultOptions() options {
	return options{
		caps:   Capabilities{},
		logger: nil, // Logger() at creation time
	}
}

// WithCapabilities sets the host capability descriptor. Without it a card
// assumes a mouse-driven host that repaints on its own.
func WithCapabilities(c Capabilities) Option {
	return func(o *options) {
		o.caps = c
	}
}

// WithLogger sets the logger for one card, overriding the package logger.
// A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Capabilities describes what the host environment can do. It is passed to
// each card explicitly.
type Capabilities struct {
	// Touch selects touchstart/touchmove/touchend instead of mouse events.
	Touch bool

	// ForceRepaint toggles the canvas opacity after every erase segment.
	// Some engines do not repaint a canvas changed only through the
	// destination-out composite without it.
	ForceRepaint bool
}

// DownEvent returns the event that starts a stroke.
func (c Capabilities) DownEvent() host.EventType {
	if c.Touch {
		return host.TouchStart
	}
	return host.MouseDown
}

// MoveEvent returns the event that extends a stroke.
func (c Capabilities) MoveEvent() host.EventType {
	if c.Touch {
		return host.TouchMove
	}
	return host.MouseMove
}

// UpEvent returns the event that ends a stroke and samples coverage.
func (c Capabilities) UpEvent() host.EventType {
	if c.Touch {
		return host.TouchEnd
	}
	return host.MouseUp
}
