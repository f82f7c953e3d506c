// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package merge

import (
	"reflect"
	"unsafe"

	"github.com/gogpu/scratchcard/host"
)

// Map is a configuration tree node.
type Map = map[string]any

// Kind classifies a value for merging and cloning.
type Kind uint8

const (
	// KindPrimitive covers nil, booleans, numbers and strings.
	KindPrimitive Kind = iota

	// KindSequence covers slices and arrays.
	KindSequence

	// KindCallable covers funcs.
	KindCallable

	// KindOpaque covers references that must never be traversed: host
	// nodes, pointers, channels, structs and other maps.
	KindOpaque

	// KindStructure covers nested Maps.
	KindStructure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindSequence:
		return "sequence"
	case KindCallable:
		return "callable"
	case KindOpaque:
		return "opaque"
	case KindStructure:
		return "structure"
	default:
		return "unknown"
	}
}

// KindOf classifies v. Node identity is checked first, so a host node is
// opaque whatever its underlying type.
func KindOf(v any) Kind {
	if v == nil {
		return KindPrimitive
	}
	if _, ok := v.(host.Node); ok {
		return KindOpaque
	}
	if _, ok := v.(Map); ok {
		return KindStructure
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return KindPrimitive
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Func:
		return KindCallable
	default:
		return KindOpaque
	}
}

// Clone returns a copy of v: Maps and sequences are copied recursively,
// everything else is returned as is. A Map or slice that contains itself
// is copied as a reference where the cycle closes.
func Clone(v any) any {
	return clone(v, visiting{})
}

// Resolve overlays user on a copy of defaults and returns the result.
// Neither input is modified. A nil user yields a copy of defaults.
// Cyclic inputs are merged best-effort: the back reference is kept as is.
func Resolve(user, defaults Map) Map {
	seen := visiting{}
	out := cloneMap(defaults, seen)
	if out == nil {
		out = Map{}
	}
	return mergeInto(out, user, seen)
}

// visiting holds the maps and slices on the current recursion path.
type visiting map[unsafe.Pointer]struct{}

// enter marks the container behind v as being traversed. It reports false
// when v is already on the path.
func (s visiting) enter(v reflect.Value) bool {
	p := v.UnsafePointer()
	if p == nil {
		return true
	}
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

func (s visiting) has(v reflect.Value) bool {
	_, ok := s[v.UnsafePointer()]
	return ok
}

func (s visiting) leave(v reflect.Value) {
	delete(s, v.UnsafePointer())
}

func clone(v any, seen visiting) any {
	switch KindOf(v) {
	case KindStructure:
		return cloneMap(v.(Map), seen)
	case KindSequence:
		return cloneSequence(reflect.ValueOf(v), seen)
	default:
		return v
	}
}

// mergeInto overlays src onto dst, which the caller owns.
func mergeInto(dst, src Map, seen visiting) Map {
	rv := reflect.ValueOf(src)
	if !seen.enter(rv) {
		return dst
	}
	defer seen.leave(rv)

	for key, uv := range src {
		switch KindOf(uv) {
		case KindStructure:
			um := uv.(Map)
			if seen.has(reflect.ValueOf(um)) {
				dst[key] = uv
				continue
			}
			base, _ := dst[key].(Map)
			sub := cloneMap(base, seen)
			if sub == nil {
				sub = Map{}
			}
			dst[key] = mergeInto(sub, um, seen)
		case KindSequence:
			dst[key] = cloneSequence(reflect.ValueOf(uv), seen)
		default:
			dst[key] = uv
		}
	}
	return dst
}

func cloneMap(m Map, seen visiting) Map {
	if m == nil {
		return nil
	}
	rv := reflect.ValueOf(m)
	if !seen.enter(rv) {
		return m
	}
	defer seen.leave(rv)

	out := make(Map, len(m))
	for k, v := range m {
		out[k] = clone(v, seen)
	}
	return out
}

func cloneSequence(v reflect.Value, seen visiting) any {
	if v.Kind() == reflect.Array {
		// Arrays are values; copying the interface copies the elements.
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			setCloned(out.Index(i), v.Index(i), seen)
		}
		return out.Interface()
	}
	if v.IsNil() {
		return v.Interface()
	}
	if !seen.enter(v) {
		return v.Interface()
	}
	defer seen.leave(v)

	out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	for i := 0; i < v.Len(); i++ {
		setCloned(out.Index(i), v.Index(i), seen)
	}
	return out.Interface()
}

// setCloned stores a clone of src into dst, keeping the element type.
func setCloned(dst, src reflect.Value, seen visiting) {
	if src.Kind() == reflect.Interface && src.IsNil() {
		return
	}
	c := clone(src.Interface(), seen)
	if c == nil {
		return
	}
	cv := reflect.ValueOf(c)
	if cv.Type().AssignableTo(dst.Type()) {
		dst.Set(cv)
		return
	}
	dst.Set(src)
}
