// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fallbackFamily is used when none of a font's families is registered.
const fallbackFamily = "go"

// FontNotFoundError indicates a family is not registered.
type FontNotFoundError struct {
	Family string
}

func (e *FontNotFoundError) Error() string {
	return "surface: font family not found: " + e.Family
}

// faceKey identifies a cached face.
type faceKey struct {
	source *text.FontSource
	size   float64
}

// fontRegistry maps lowercase family names to font sources.
type fontRegistry struct {
	mu      sync.RWMutex
	sources map[string]*text.FontSource
	faces   map[faceKey]text.Face
}

var globalFonts = &fontRegistry{}

// RegisterFont parses TrueType or OpenType data and registers it under one
// or more family names. Registering an existing name replaces it.
func RegisterFont(data []byte, families ...string) error {
	return globalFonts.register(data, families...)
}

// LookupFont returns the font source registered for family.
func LookupFont(family string) (*text.FontSource, error) {
	return globalFonts.lookup(family)
}

// Families returns the registered family names.
func Families() []string {
	globalFonts.mu.RLock()
	defer globalFonts.mu.RUnlock()

	names := make([]string, 0, len(globalFonts.sources))
	for name := range globalFonts.sources {
		names = append(names, name)
	}
	return names
}

func (r *fontRegistry) register(data []byte, families ...string) error {
	if len(families) == 0 {
		return fmt.Errorf("%w: no family name", ErrInvalidFont)
	}
	if _, err := gotext.ParseTTF(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("surface: parse font %q: %w", families[0], err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return fmt.Errorf("surface: load font %q: %w", families[0], err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sources == nil {
		r.sources = make(map[string]*text.FontSource)
	}
	for _, fam := range families {
		r.sources[strings.ToLower(fam)] = src
	}
	return nil
}

func (r *fontRegistry) lookup(family string) (*text.FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if src, ok := r.sources[strings.ToLower(family)]; ok {
		return src, nil
	}
	return nil, &FontNotFoundError{Family: family}
}

// face resolves f to a sized face: the first registered family wins,
// otherwise the fallback family is used. Returns nil only when even the
// fallback is missing.
func (r *fontRegistry) face(f Font) text.Face {
	var src *text.FontSource
	for _, fam := range f.Families {
		if s, err := r.lookup(fam); err == nil {
			src = s
			break
		}
	}
	if src == nil {
		s, err := r.lookup(fallbackFamily)
		if err != nil {
			return nil
		}
		src = s
	}

	key := faceKey{source: src, size: f.Size}
	r.mu.RLock()
	face, ok := r.faces[key]
	r.mu.RUnlock()
	if ok {
		return face
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[key]; ok {
		return face
	}
	if r.faces == nil {
		r.faces = make(map[faceKey]text.Face)
	}
	face = src.Face(f.Size)
	r.faces[key] = face
	return face
}

// init registers the Go fonts as the generic families.
func init() {
	if err := RegisterFont(goregular.TTF, fallbackFamily, "sans-serif", "serif", "system-ui"); err != nil {
		panic(err)
	}
	if err := RegisterFont(gomono.TTF, "go mono", "monospace"); err != nil {
		panic(err)
	}
}
