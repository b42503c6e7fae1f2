// Package registry provides an explicit type-keyed registry of lazily
// constructed singletons. It replaces ambient global lookup with a value
// passed by constructor or context injection: views, controllers, and
// other long-lived collaborators register a factory once and are
// constructed on first resolve.
package registry

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-arbor/arbor/pkg/errors"
)

// Registry maps type identities to lazily constructed, exclusively-owned
// singleton instances. The zero value is not usable; create one with New.
// Thread-safe.
type Registry struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

type entry struct {
	construct func() any
	once      sync.Once
	instance  any
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[reflect.Type]*entry)}
}

// Provide registers a factory for T. The factory runs at most once, on
// the first Resolve. Registering the same type twice fails with
// already_assigned.
func Provide[T any](r *Registry, construct func() T) error {
	key := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[key]; dup {
		return errors.New("registry.Provide", errors.KindAlreadyAssigned, fmt.Errorf("type %s already provided", key))
	}
	r.entries[key] = &entry{construct: func() any { return construct() }}
	return nil
}

// Resolve returns the singleton for T, constructing it on first use.
// Resolving a type that was never provided fails with not_yet_assigned.
func Resolve[T any](r *Registry) (T, error) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	r.mu.Lock()
	e, ok := r.entries[key]
	r.mu.Unlock()
	if !ok {
		var zero T
		return zero, errors.New("registry.Resolve", errors.KindNotYetAssigned, fmt.Errorf("type %s not provided", key))
	}
	e.once.Do(func() {
		e.instance = e.construct()
	})
	return e.instance.(T), nil
}

// MustResolve is Resolve that panics on an unprovided type.
func MustResolve[T any](r *Registry) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// MustProvide is Provide that panics on a duplicate registration.
func MustProvide[T any](r *Registry, construct func() T) {
	if err := Provide(r, construct); err != nil {
		panic(err)
	}
}
