// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Backend names.
const (
	// BackendImage is the built-in gg-backed ImageSurface.
	BackendImage = "image"
)

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface implementation.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can create surfaces right now.
	Available func() bool
}

// Registry manages registered surface backends.
//
// Hosts create canvases through a registry, so tests can register failing
// or unavailable backends to exercise the unsupported-surface path.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// globalRegistry is the default registry.
var globalRegistry = NewRegistry()

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) {
	globalRegistry.Unregister(name)
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return globalRegistry.Available()
}

// NewSurface creates a surface using the best available backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a surface using a specific named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Register adds a backend to this registry. Registering a name that already
// exists replaces the previous entry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Available returns names of available backends, highest priority first.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if b.Available() {
			list = append(list, b)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Priority != list[j].Priority {
			return list[i].Priority > list[j].Priority
		}
		return list[i].Name < list[j].Name
	})

	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

// NewSurface creates a surface using the best available backend.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// NewSurfaceByName creates a surface using a specific backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts)
}

// ErrNoBackendAvailable is returned when no surface backends are registered
// or available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

// init registers the built-in ImageSurface backend.
func init() {
	Register(BackendImage, 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
