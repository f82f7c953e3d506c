package scratchcard

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/gogpu/scratchcard/host"
	"github.com/gogpu/scratchcard/merge"
)

// Configuration errors. Validate wraps them in a *ConfigError.
var (
	// ErrMissingContainer means hostElement is absent or not an element.
	ErrMissingContainer = errors.New("scratchcard: hostElement must be an element node")

	// ErrMissingImage means imageSource is absent or not a non-empty string.
	ErrMissingImage = errors.New("scratchcard: imageSource must be a non-empty string")

	// ErrInvalidSize means size is not a [width, height] pair of positive numbers.
	ErrInvalidSize = errors.New("scratchcard: size must be [width, height]")

	// ErrInvalidValidArea means validArea is not [left, top, width, height].
	ErrInvalidValidArea = errors.New("scratchcard: validArea must be [left, top, width, height]")

	// ErrInvalidThreshold means completionThreshold is neither a number nor
	// a numeric string.
	ErrInvalidThreshold = errors.New("scratchcard: completionThreshold must be a number or numeric string")
)

// ErrUnsupportedSurface is reported by Card.Err when the host cannot
// provide a 2D drawing surface.
var ErrUnsupportedSurface = errors.New("scratchcard: drawing surface unsupported")

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	// Field is the configuration key that failed.
	Field string

	// Value is the offending value as found in the resolved tree.
	Value any

	// Err is one of the ErrMissing*/ErrInvalid* sentinels.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v (got %T)", e.Err, e.Value)
}

// Unwrap returns the sentinel.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks a resolved configuration tree. Checks run in a fixed
// order and the first failure is returned:
//
//  1. hostElement is an element node with an owner document
//  2. imageSource is a non-empty string
//  3. size, if present, is two positive numbers
//  4. validArea, if present, is four numbers with non-negative extent
//  5. completionThreshold, if present, is a number or numeric string
//
// Validate does not modify the tree.
func Validate(cfg merge.Map) error {
	el, ok := cfg[KeyHostElement].(host.Element)
	if !ok || isNilRef(el) || el.NodeType() != host.ElementNode || el.OwnerDocument() == nil {
		return &ConfigError{Field: KeyHostElement, Value: cfg[KeyHostElement], Err: ErrMissingContainer}
	}

	if src, ok := cfg[KeyImageSource].(string); !ok || src == "" {
		return &ConfigError{Field: KeyImageSource, Value: cfg[KeyImageSource], Err: ErrMissingImage}
	}

	if v, ok := present(cfg, KeySize); ok {
		nums, ok := numbers(v, 2)
		if !ok || nums[0] < 1 || nums[1] < 1 {
			return &ConfigError{Field: KeySize, Value: v, Err: ErrInvalidSize}
		}
	}

	if v, ok := present(cfg, KeyValidArea); ok {
		nums, ok := numbers(v, 4)
		if !ok || nums[2] < 0 || nums[3] < 0 {
			return &ConfigError{Field: KeyValidArea, Value: v, Err: ErrInvalidValidArea}
		}
	}

	if v, ok := present(cfg, KeyCompletionThreshold); ok {
		if _, ok := threshold(v); !ok {
			return &ConfigError{Field: KeyCompletionThreshold, Value: v, Err: ErrInvalidThreshold}
		}
	}

	return nil
}

// present returns the value under key unless it is missing or nil.
func present(cfg merge.Map, key string) (any, bool) {
	v, ok := cfg[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// numbers converts a sequence of exactly n finite numbers.
func numbers(v any, n int) ([]float64, bool) {
	if merge.KindOf(v) != merge.KindSequence {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Len() != n {
		return nil, false
	}
	out := make([]float64, n)
	for i := range n {
		f, ok := number(rv.Index(i).Interface())
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// number converts any Go numeric value to float64.
func number(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// threshold accepts a number or a string holding one.
func threshold(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return number(v)
}

// isNilRef reports whether v is an interface holding a nil pointer.
func isNilRef(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
