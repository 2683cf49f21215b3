package pool

import (
	"reflect"
	"sync"
)

// A Registry owns one pool per message type.
//
// It exists so that the set of pools is explicit state with a controlled
// lifecycle: construct a registry once, near the top of the process, and
// inject it wherever instances are rented. Tests can construct an isolated
// registry per case instead of sharing implicit process-wide pools.
type Registry struct {
	opts  options
	pools sync.Map // reflect.Type -> *Pool[T]
}

// NewRegistry returns an empty registry.
//
// The given options apply to every pool the registry creates.
func NewRegistry(options ...Option) *Registry {
	return &Registry{
		opts: resolveOptions(options),
	}
}

// For returns the registry's pool for type T, creating and pre-populating it
// with instances produced by factory on first use.
//
// Every call for the same T returns the same pool. reg must not be nil.
func For[T Rentable](reg *Registry, factory func() T) *Pool[T] {
	if reg == nil {
		panic("pool registry must not be nil")
	}

	key := reflect.TypeFor[T]()

	if p, ok := reg.pools.Load(key); ok {
		return p.(*Pool[T])
	}

	p, _ := reg.pools.LoadOrStore(key, newPool(factory, reg, reg.opts))
	return p.(*Pool[T])
}
