// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/gogpu/scratchcard/merge"
)

// ToMap converts a JavaScript options object to a configuration tree.
// Plain objects become merge.Map, arrays become []any, DOM nodes are
// wrapped with Wrap and functions are kept as js.Value.
func ToMap(v js.Value) merge.Map {
	m, _ := toGo(v).(merge.Map)
	return m
}

func toGo(v js.Value) any {
	switch v.Type() {
	case js.TypeBoolean:
		return v.Bool()
	case js.TypeNumber:
		return v.Float()
	case js.TypeString:
		return v.String()
	case js.TypeFunction:
		return v
	case js.TypeObject:
		if v.Get("nodeType").Type() == js.TypeNumber {
			return Wrap(v)
		}
		if js.Global().Get("Array").Call("isArray", v).Bool() {
			out := make([]any, v.Length())
			for i := range out {
				out[i] = toGo(v.Index(i))
			}
			return out
		}
		keys := js.Global().Get("Object").Call("keys", v)
		out := make(merge.Map, keys.Length())
		for i := 0; i < keys.Length(); i++ {
			k := keys.Index(i).String()
			out[k] = toGo(v.Get(k))
		}
		return out
	default:
		return nil
	}
}
