// Package registry holds a loaded metadata snapshot and serves it to query
// builders. A loaded Registry satisfies introspect.Source; every accessor
// returns copies so callers cannot mutate the registered snapshot.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/conduit-lang/introspect/descriptor"
)

// Registry stores one snapshot behind a read-write lock. The zero value is
// usable and empty.
type Registry struct {
	mu       sync.RWMutex
	snapshot *descriptor.Snapshot
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Load replaces the registered snapshot.
func (r *Registry) Load(snapshot *descriptor.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = snapshot
}

// LoadJSON unmarshals and registers a serialized snapshot.
func (r *Registry) LoadJSON(data []byte) error {
	var snapshot descriptor.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	r.Load(&snapshot)
	return nil
}

// Reset clears the registry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = nil
}

// Snapshot returns the registered snapshot, or nil when nothing is loaded.
func (r *Registry) Snapshot() *descriptor.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// Routes returns a copy of the registered route descriptors.
func (r *Registry) Routes() ([]descriptor.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Routes), nil
}

// Models returns a copy of the registered model descriptors.
func (r *Registry) Models() ([]descriptor.Model, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Models), nil
}

// Views returns a copy of the registered view descriptors.
func (r *Registry) Views() ([]descriptor.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Views), nil
}

// Middleware returns a copy of the registered middleware descriptors.
func (r *Registry) Middleware() ([]descriptor.Middleware, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Middleware), nil
}

// Events returns a copy of the registered event descriptors.
func (r *Registry) Events() ([]descriptor.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Events), nil
}

// Jobs returns a copy of the registered job descriptors.
func (r *Registry) Jobs() ([]descriptor.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Jobs), nil
}

// Providers returns a copy of the registered service provider descriptors.
func (r *Registry) Providers() ([]descriptor.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Providers), nil
}

// Traits returns a copy of the registered trait descriptors.
func (r *Registry) Traits() ([]descriptor.Trait, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Traits), nil
}

// Interfaces returns a copy of the registered interface descriptors.
func (r *Registry) Interfaces() ([]descriptor.Interface, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.snapshot == nil {
		return nil, nil
	}
	return copySlice(r.snapshot.Interfaces), nil
}

// copySlice returns a shallow copy to prevent external mutation of the
// registered snapshot.
func copySlice[T any](records []T) []T {
	if records == nil {
		return nil
	}
	result := make([]T, len(records))
	copy(result, records)
	return result
}
