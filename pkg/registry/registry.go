// Package registry holds the per-type metadata driving the Ripple runtime:
// which fields a component type declares, how each is bound, its render
// entry, event bindings, and lifecycle hooks.
//
// A Registry is an explicit owned table. Applications create one, declare
// their component types against it with Define, and hand it to a runtime;
// there is no package-level registry, so independent runtimes are fully
// isolated.
package registry

// Registry is the owned table of type descriptors.
//
// Declarations are expected at type-definition time, before instances are
// created; the registry performs no locking.
type Registry struct {
	types map[string]*TypeDescriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*TypeDescriptor)}
}

// Define returns a builder over the type's descriptor, allocating an empty
// descriptor on first reference. Repeated Define calls for one name share
// the descriptor; each declaration mutates it in place.
func (r *Registry) Define(name string) *TypeBuilder {
	d, ok := r.types[name]
	if !ok {
		d = newTypeDescriptor(name)
		r.types[name] = d
	}
	return &TypeBuilder{d: d}
}

// Lookup returns the descriptor for a type name, or nil if the name was
// never defined.
func (r *Registry) Lookup(name string) *TypeDescriptor {
	return r.types[name]
}

// Has reports whether the name is a defined component type.
func (r *Registry) Has(name string) bool {
	_, ok := r.types[name]
	return ok
}
