// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memhost

import "github.com/gogpu/scratchcard/host"

// MouseEvent builds a mouse event at page coordinates (x, y).
func MouseEvent(t host.EventType, x, y float64) *host.Event {
	return &host.Event{Type: t, PageX: x, PageY: y}
}

// TouchEvent builds a touch event with a single target touch at (x, y).
// Touch end events carry no target touches.
func TouchEvent(t host.EventType, x, y float64) *host.Event {
	ev := &host.Event{Type: t}
	if t != host.TouchEnd {
		ev.Touches = []host.Touch{{PageX: x, PageY: y}}
	}
	return ev
}

// Drag dispatches a full stroke on target: a down at the first point, a
// move to each following point and an up at the last. With touch set it
// uses touch events.
func Drag(target *Element, touch bool, points ...[2]float64) {
	if len(points) == 0 {
		return
	}
	down, move, up := host.MouseDown, host.MouseMove, host.MouseUp
	mk := MouseEvent
	if touch {
		down, move, up = host.TouchStart, host.TouchMove, host.TouchEnd
		mk = TouchEvent
	}
	first, last := points[0], points[len(points)-1]
	target.Dispatch(mk(down, first[0], first[1]))
	for _, p := range points[1:] {
		target.Dispatch(mk(move, p[0], p[1]))
	}
	target.Dispatch(mk(up, last[0], last[1]))
}
