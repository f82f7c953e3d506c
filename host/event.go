// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

// EventType names an input event, using DOM event names.
type EventType string

// Event names used by scratch cards.
const (
	MouseDown  EventType = "mousedown"
	MouseMove  EventType = "mousemove"
	MouseUp    EventType = "mouseup"
	MouseOut   EventType = "mouseout"
	TouchStart EventType = "touchstart"
	TouchMove  EventType = "touchmove"
	TouchEnd   EventType = "touchend"
)

// Touch is one contact point of a touch event.
type Touch struct {
	PageX float64
	PageY float64
}

// Event is a pointer or touch event with page-relative coordinates.
type Event struct {
	Type EventType

	// PageX and PageY locate a mouse event relative to the page.
	PageX float64
	PageY float64

	// Touches holds the target touches of a touch event, if any.
	Touches []Touch

	defaultPrevented bool
}

// Point returns the event location: the first target touch when present,
// otherwise the page coordinates.
func (e *Event) Point() (x, y float64) {
	if len(e.Touches) > 0 {
		return e.Touches[0].PageX, e.Touches[0].PageY
	}
	return e.PageX, e.PageY
}

// PreventDefault marks the event so the host skips its default action
// (scrolling, text selection).
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler receives events.
type Handler func(ev *Event)

// Subscription is the handle returned when a listener is bound.
// Releasing it unbinds the listener. Release is idempotent and safe on a
// nil Subscription.
type Subscription struct {
	release func()
}

// NewSubscription returns a subscription that calls release exactly once.
func NewSubscription(release func()) *Subscription {
	return &Subscription{release: release}
}

// Release unbinds the listener.
func (s *Subscription) Release() {
	if s == nil || s.release == nil {
		return
	}
	release := s.release
	s.release = nil
	release()
}

// Active reports whether the listener is still bound.
func (s *Subscription) Active() bool {
	return s != nil && s.release != nil
}
