// Package names resolves entity types to storage collection names.
//
// Overrides are declared once at startup via Register; For falls back
// to the type's own simple name when no override exists.
package names

import (
	"errors"
	"reflect"
	"sync"
)

// ErrEmptyName is returned when a type resolves to an empty collection name.
var ErrEmptyName = errors.New("collection name cannot be empty for this entity")

var (
	mu        sync.RWMutex
	overrides = make(map[reflect.Type]string)
)

// Register declares an explicit collection name for T. Registering an
// empty name removes a previous override. Intended to be called from
// bootstrap before any repository is built.
func Register[T any](name string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	mu.Lock()
	defer mu.Unlock()
	if name == "" {
		delete(overrides, t)
		return
	}
	overrides[t] = name
}

// For returns the collection name for T: the registered override when
// present, else the type's simple name. A type whose name resolves
// empty (e.g. an anonymous struct with no override) is a configuration
// error.
func For[T any]() (string, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()

	mu.RLock()
	name, ok := overrides[t]
	mu.RUnlock()
	if !ok {
		name = t.Name()
	}
	if name == "" {
		return "", ErrEmptyName
	}
	return name, nil
}
