// Package ref provides write-once reference cells for capturing nodes
// built inside declarative configuration blocks, without forward
// declaration boilerplate.
package ref

import (
	"fmt"
	"sync"

	"github.com/go-arbor/arbor/pkg/errors"
)

// Ref is a single-assignment holder. The first Set wins; later writes
// fail with already_assigned and reads before the first write fail with
// not_yet_assigned. Thread-safe.
type Ref[T any] struct {
	mu    sync.RWMutex
	value T
	set   bool
}

// New creates a new empty Ref.
func New[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Set stores v. A second write fails with already_assigned.
func (r *Ref[T]) Set(v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.set {
		return errors.Newf("ref.Set", errors.KindAlreadyAssigned, "ref already holds a value")
	}
	r.value = v
	r.set = true
	return nil
}

// Get returns the held value. A read before the first write fails with
// not_yet_assigned.
func (r *Ref[T]) Get() (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		var zero T
		return zero, errors.Newf("ref.Get", errors.KindNotYetAssigned, "ref read before assignment")
	}
	return r.value, nil
}

// IsSet reports whether the ref has been assigned.
func (r *Ref[T]) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.set
}

// MustSet is Set that panics on a second write.
func (r *Ref[T]) MustSet(v T) {
	if err := r.Set(v); err != nil {
		panic(err)
	}
}

// MustGet is Get that panics on a premature read.
func (r *Ref[T]) MustGet() T {
	v, err := r.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// List holds references to values captured in a loop. Unlike Ref, appends
// are unlimited. Thread-safe.
type List[T any] struct {
	mu     sync.RWMutex
	values []T
}

// NewList creates a new empty List.
func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Append adds v to the list.
func (l *List[T]) Append(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = append(l.values, v)
}

// All returns a copy of the captured values in append order.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.values))
	copy(out, l.values)
	return out
}

// At returns the value at index i.
func (l *List[T]) At(i int) (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i < 0 || i >= len(l.values) {
		var zero T
		return zero, errors.Newf("ref.List.At", errors.KindNotYetAssigned, "index %d out of range [0,%d)", i, len(l.values))
	}
	return l.values[i], nil
}

// Len returns the number of captured values.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.values)
}

// Map holds keyed single-assignment cells. The first write per key wins;
// a duplicate key fails with already_assigned. Thread-safe.
type Map[K comparable, T any] struct {
	mu     sync.RWMutex
	values map[K]T
}

// NewMap creates a new empty Map.
func NewMap[K comparable, T any]() *Map[K, T] {
	return &Map[K, T]{values: make(map[K]T)}
}

// Put stores v under key. A duplicate key fails with already_assigned.
func (m *Map[K, T]) Put(key K, v T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.values[key]; dup {
		return errors.New("ref.Map.Put", errors.KindAlreadyAssigned, fmt.Errorf("key %v already assigned", key))
	}
	m.values[key] = v
	return nil
}

// Get returns the value stored under key, failing with not_yet_assigned
// for an unknown key.
func (m *Map[K, T]) Get(key K) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		var zero T
		return zero, errors.New("ref.Map.Get", errors.KindNotYetAssigned, fmt.Errorf("key %v not assigned", key))
	}
	return v, nil
}

// Len returns the number of assigned keys.
func (m *Map[K, T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
