// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host defines the contracts a scratch card consumes from its
// environment.
//
// A browser page is the reference environment: a container element that
// accepts children and inline styles, an image element that signals when it
// has loaded, a canvas element exposing a 2D drawing surface, and a source of
// pointer or touch events carrying page-relative coordinates.
//
// Implementations:
//
//   - memhost: in-memory tree used by tests and the headless demos
//   - dom: syscall/js bindings for js/wasm builds
//
// Hosts deliver events one at a time on a single goroutine. Handlers run to
// completion before the next event is dispatched, so nothing in this package
// is synchronized.
package host
