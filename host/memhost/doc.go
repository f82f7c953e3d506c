// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package memhost is an in-memory host environment for scratch cards.
//
// It implements the host contracts (Document, Element, Image, Canvas) with
// plain Go values: elements keep their inline styles, children and
// listeners in memory, images load when LoadImages is called, and canvases
// draw on a surface from the surface registry. Events are dispatched
// synchronously and bubble to ancestors, like DOM events.
//
// memhost backs the card tests and the headless and terminal demos:
//
//	doc := memhost.NewDocument()
//	box := doc.CreateElement("div")
//	card, err := scratchcard.New(merge.Map{
//	    "hostElement": box,
//	    "imageSource": "prize.png",
//	})
//	...
//	doc.LoadImages()
//	canvas := box.Query("canvas")[0].(*memhost.Canvas)
//	canvas.Dispatch(memhost.MouseEvent(host.MouseDown, 10, 10))
//
// # Layout
//
// Layout is deliberately simple: every element sits at its own offset
// (SetOffset) relative to its parent, and its size comes from the width and
// height inline styles or, for images and canvases, their set size.
// Render composites a subtree in child order, sorted by z-index, skipping
// elements styled display: none.
package memhost
