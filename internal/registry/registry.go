// Package registry tracks singleton instances by key. A key is either
// active exactly once or absent; registering it twice or removing it while
// absent is reported as an error instead of silently corrupting state.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrAlreadyActive is returned when registering a key that is active.
	ErrAlreadyActive = errors.New("already active")
	// ErrNotActive is returned when removing or updating a key that is absent.
	ErrNotActive = errors.New("not active")
)

// Registry holds at most one value per key.
type Registry[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty registry.
func New[K cmp.Ordered, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: make(map[K]V)}
}

// Register activates key with value.
func (r *Registry[K, V]) Register(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("registry: %v: %w", key, ErrAlreadyActive)
	}
	r.entries[key] = value
	return nil
}

// Update replaces the value of an active key.
func (r *Registry[K, V]) Update(key K, value V) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; !exists {
		return fmt.Errorf("registry: %v: %w", key, ErrNotActive)
	}
	r.entries[key] = value
	return nil
}

// Remove deactivates key.
func (r *Registry[K, V]) Remove(key K) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; !exists {
		return fmt.Errorf("registry: %v: %w", key, ErrNotActive)
	}
	delete(r.entries, key)
	return nil
}

// Get returns the value of key and whether it is active.
func (r *Registry[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[key]
	return v, ok
}

// Has reports whether key is active.
func (r *Registry[K, V]) Has(key K) bool {
	_, ok := r.Get(key)
	return ok
}

// Keys returns the active keys in ascending order.
func (r *Registry[K, V]) Keys() []K {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of active keys.
func (r *Registry[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear deactivates every key.
func (r *Registry[K, V]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.entries)
}
