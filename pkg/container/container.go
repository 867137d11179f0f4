// Package container is a small dependency container: it binds capability
// types to providers with a singleton or transient lifetime and resolves them
// for request handlers. Cyclic bindings are a caller error and are not
// detected.
package container

import (
	"reflect"
	"sync"

	"github.com/BelugaDiver/foreman/pkg/types/errs"
)

// Lifetime controls how a binding produces instances.
type Lifetime int

const (
	// Singleton constructs the instance once, at registration, and serves the
	// cached instance on every resolve.
	Singleton Lifetime = iota
	// Transient invokes the factory on every resolve.
	Transient
)

type binding struct {
	lifetime Lifetime
	factory  func() any
	instance any
}

// Container maps capability types to bindings. Registrations happen during
// process initialization; resolves may run concurrently afterwards.
type Container struct {
	mu       sync.RWMutex
	bindings map[reflect.Type]binding
}

func New() *Container {
	return &Container{bindings: make(map[reflect.Type]binding)}
}

func capabilityOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds capability T to a factory. Registering the same capability
// again overwrites the previous binding, last write wins.
func Register[T any](c *Container, lifetime Lifetime, factory func() T) {
	b := binding{
		lifetime: lifetime,
		factory:  func() any { return factory() },
	}

	if lifetime == Singleton {
		b.instance = b.factory()
	}

	c.mu.Lock()
	c.bindings[capabilityOf[T]()] = b
	c.mu.Unlock()
}

// Resolve returns an instance satisfying capability T.
func Resolve[T any](c *Container) (T, error) {
	key := capabilityOf[T]()

	c.mu.RLock()
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		var zero T

		return zero, &errs.UnregisteredCapabilityError{Capability: key.String()}
	}

	if b.lifetime == Singleton {
		return b.instance.(T), nil
	}

	return b.factory().(T), nil
}

// Clear drops every binding.
func (c *Container) Clear() {
	c.mu.Lock()
	c.bindings = make(map[reflect.Type]binding)
	c.mu.Unlock()
}
