package moniker

import (
	"context"
	"reflect"
	"sort"
	"sync"
)

// shape identifies how a registered Go type wraps its enumeration.
type shape uint8

const (
	shapePlain shape = iota
	shapePointer
	shapeOptional
)

// binding maps a handled type to its enumeration type.
type binding struct {
	base  reflect.Type
	shape shape
}

// declaration holds the type-specific closures captured at registration.
type declaration struct {
	build func() (any, error)                // returns *Codec[E]
	adapt func(codec any, s shape) Converter // wraps *Codec[E] for a shape
}

// Registry selects codecs for Go types.
//
// Each registered enumeration E is handled in three shapes: E itself, *E and
// Optional[E]. Codecs are built lazily on first use and cached for the life of
// the registry; all shapes of E share one index.
//
// Registries are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings map[reflect.Type]binding
	decls    map[reflect.Type]declaration
	codecs   map[reflect.Type]any
}

// Default is the process-wide registry.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[reflect.Type]binding),
		decls:    make(map[reflect.Type]declaration),
		codecs:   make(map[reflect.Type]any),
	}
}

// Register declares E with a fixed member table.
// Registering E again replaces the declaration and drops any built codec.
func Register[E Integer](r *Registry, members []Member[E], opts ...Option) {
	RegisterLoader(r, Static(members), opts...)
}

// RegisterLoader declares E with a member table produced on first use.
// A failing loader is retried on the next request; its error is returned
// unchanged to the caller of Use or Converter.
func RegisterLoader[E Integer](r *Registry, load Loader[E], opts ...Option) {
	base := reflect.TypeFor[E]()
	o := applyOptions(opts)
	name := o.typeName
	if name == "" {
		name = base.String()
	}

	decl := declaration{
		build: func() (any, error) {
			members, err := load()
			if err != nil {
				emitLoadFailed(context.Background(), name, err)
				return nil, err
			}
			return bind(newIndex(name, members), o), nil
		},
		adapt: func(codec any, s shape) Converter {
			c := codec.(*Codec[E])
			switch s {
			case shapePointer:
				return c.Pointer()
			case shapeOptional:
				return c.Optional()
			default:
				return c
			}
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.decls[base] = decl
	delete(r.codecs, base)
	r.bindings[base] = binding{base: base, shape: shapePlain}
	r.bindings[reflect.TypeFor[*E]()] = binding{base: base, shape: shapePointer}
	r.bindings[reflect.TypeFor[Optional[E]]()] = binding{base: base, shape: shapeOptional}
}

// Use returns the cached codec for E or builds it.
func Use[E Integer](r *Registry) (*Codec[E], error) {
	c, err := r.codec(reflect.TypeFor[E]())
	if err != nil {
		return nil, err
	}
	return c.(*Codec[E]), nil
}

// CanHandle reports whether t is a registered enumeration or a pointer or
// Optional wrapping one. A false result means "not applicable", not an error.
func (r *Registry) CanHandle(t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bindings[t]
	return ok
}

// Converter returns the codec for t, building its index on first use.
// Build failures are returned unchanged.
func (r *Registry) Converter(t reflect.Type) (Converter, error) {
	r.mu.RLock()
	b, ok := r.bindings[t]
	decl := r.decls[b.base]
	r.mu.RUnlock()

	if !ok {
		return nil, newRegistryError(ErrNotRegistered, t)
	}

	c, err := r.codec(b.base)
	if err != nil {
		return nil, err
	}
	return decl.adapt(c, b.shape), nil
}

// Types returns every handled type, sorted by name.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	out := make([]reflect.Type, 0, len(r.bindings))
	for t := range r.bindings {
		out = append(out, t)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// Reset drops every built codec; declarations are kept.
// This is primarily useful for test isolation.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs = make(map[reflect.Type]any)
}

// codec returns the cached *Codec[E] for base or builds it.
func (r *Registry) codec(base reflect.Type) (any, error) {
	// Fast path: read-lock cache check
	r.mu.RLock()
	if cached, ok := r.codecs[base]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	// Slow path: build and cache with write-lock
	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check pattern
	if cached, ok := r.codecs[base]; ok {
		return cached, nil
	}

	decl, ok := r.decls[base]
	if !ok {
		return nil, newRegistryError(ErrNotRegistered, base)
	}

	c, err := decl.build()
	if err != nil {
		return nil, err
	}

	r.codecs[base] = c
	return c, nil
}
