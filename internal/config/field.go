package config

import (
	"slices"
	"sync"
)

// Field is a write-once configuration cell. Set succeeds at most once per
// Field; Get fails until then unless a fallback was declared.
//
// Field is safe for concurrent use: when several goroutines race on Set,
// exactly one wins and the others get ErrDoubleInit.
type Field[T any] struct {
	key      string
	mu       sync.RWMutex
	value    T
	set      bool
	fallback *T
	clone    func(T) T
}

// NewField returns an empty Field named key.
func NewField[T any](key string) *Field[T] {
	return &Field[T]{key: key}
}

// NewFieldWithFallback returns an empty Field whose getter yields fallback
// instead of failing while the field is unset.
func NewFieldWithFallback[T any](key string, fallback T) *Field[T] {
	return &Field[T]{key: key, fallback: &fallback}
}

// NewListField returns an empty list Field. The stored slice is copied on
// Set and on Get, so callers cannot change it after the one write.
func NewListField[E any](key string) *Field[[]E] {
	return &Field[[]E]{key: key, clone: func(s []E) []E { return slices.Clone(s) }}
}

// Key returns the environment/file key of the field.
func (f *Field[T]) Key() string {
	return f.key
}

// Get returns the stored value, the fallback, or an ErrAccessBeforeInit
// error.
func (f *Field[T]) Get() (T, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.set {
		return f.copyOf(f.value), nil
	}
	if f.fallback != nil {
		return f.copyOf(*f.fallback), nil
	}

	var zero T
	return zero, keyError(f.key, ErrAccessBeforeInit, nil)
}

// Set stores value. A second call fails with ErrDoubleInit and keeps the
// original value.
func (f *Field[T]) Set(value T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.set {
		return keyError(f.key, ErrDoubleInit, nil)
	}
	f.value = f.copyOf(value)
	f.set = true
	return nil
}

func (f *Field[T]) copyOf(v T) T {
	if f.clone == nil {
		return v
	}
	return f.clone(v)
}

// IsSet reports whether Set has succeeded.
func (f *Field[T]) IsSet() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.set
}
