// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package merge deep-merges loosely typed configuration trees.
//
// A tree is a Map whose values are primitives, sequences (slices and
// arrays), callables (funcs), opaque references (host nodes, pointers,
// structs) or nested Maps. Resolve overlays a caller's tree on a default
// tree:
//
//	defaults := merge.Map{"size": []float64{240, 180}, "cover": merge.Map{"color": "#888", "width": 30}}
//	user := merge.Map{"cover": merge.Map{"width": 10}}
//
//	cfg := merge.Resolve(user, defaults)
//	// cfg["cover"] == Map{"color": "#888", "width": 10}
//
// Nested Maps merge key by key. Sequences and callables from the user
// replace the default wholesale; sequences are copied so later mutation of
// either side does not leak into the other. Opaque references are shared,
// never copied. Resolve never panics.
package merge
