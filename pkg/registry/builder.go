package registry

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/errors"
)

// TypeBuilder applies declarations to a type descriptor. Builder calls are
// not validated: conflicting declarations silently overwrite each other
// (last write wins). Declarations against a sealed descriptor are reported
// and ignored.
type TypeBuilder struct {
	d *TypeDescriptor
}

// Descriptor returns the descriptor under construction.
func (b *TypeBuilder) Descriptor() *TypeDescriptor {
	return b.d
}

func (b *TypeBuilder) declare(op string) bool {
	if b.d.sealed {
		errors.Report(&errors.RuntimeError{
			Op:        op,
			Kind:      errors.KindDeclaration,
			Component: b.d.name,
			Err:       fmt.Errorf("descriptor is sealed: instances already exist"),
		})
		return false
	}
	return true
}

// Tag declares the host element tag. Types without a tag host on a
// non-rendering fragment node.
func (b *TypeBuilder) Tag(tag string) *TypeBuilder {
	if b.declare("registry.Tag") {
		b.d.tag = tag
	}
	return b
}

// Render declares the render entry.
func (b *TypeBuilder) Render(fn RenderFunc) *TypeBuilder {
	if b.declare("registry.Render") {
		b.d.render = fn
	}
	return b
}

// Params declares the render entry's positional input parameters, by prop
// name and in argument order.
func (b *TypeBuilder) Params(names ...string) *TypeBuilder {
	if b.declare("registry.Params") {
		b.d.params = append([]string(nil), names...)
	}
	return b
}

// ChildrenParam names the positional parameter that receives the instance's
// virtual children. The name must also appear in Params.
func (b *TypeBuilder) ChildrenParam(name string) *TypeBuilder {
	if b.declare("registry.ChildrenParam") {
		b.d.childrenParam = name
	}
	return b
}

// State declares a plain reactive state field with an initial value.
func (b *TypeBuilder) State(field string, initial any) *TypeBuilder {
	if b.declare("registry.State") {
		b.d.rebind(field, FieldState)
		b.d.defaults[field] = initial
	}
	return b
}

// Prop declares a field reflected to a DOM property on the host element.
func (b *TypeBuilder) Prop(field, domProperty string, initial any) *TypeBuilder {
	if b.declare("registry.Prop") {
		b.d.rebind(field, FieldProp)
		b.d.props[field] = domProperty
		b.d.defaults[field] = initial
	}
	return b
}

// Style declares a field reflected to a single style entry on the host.
func (b *TypeBuilder) Style(field, styleProperty string, initial any) *TypeBuilder {
	if b.declare("registry.Style") {
		b.d.rebind(field, FieldStyle)
		b.d.styles[field] = styleProperty
		b.d.defaults[field] = initial
	}
	return b
}

// StyleGroup declares a field whose map value merges entry-by-entry into the
// host's style map on every change.
func (b *TypeBuilder) StyleGroup(field string, initial map[string]any) *TypeBuilder {
	if b.declare("registry.StyleGroup") {
		b.d.rebind(field, FieldStyleGroup)
		b.d.defaults[field] = initial
	}
	return b
}

// Store links a field to a global store cell. The initial value seeds the
// cell only when no cell exists yet for the key.
func (b *TypeBuilder) Store(field, key string, initial any) *TypeBuilder {
	if b.declare("registry.Store") {
		b.d.rebind(field, FieldStore)
		b.d.storeKeys[field] = key
		b.d.defaults[field] = initial
	}
	return b
}

// Computed declares a derived field. Dependencies are discovered by tracking
// the fields the getter reads.
func (b *TypeBuilder) Computed(field string, fn ComputedFunc) *TypeBuilder {
	if b.declare("registry.Computed") {
		b.d.rebind(field, FieldComputed)
		b.d.computed[field] = fn
	}
	return b
}

// Watch registers a handler invoked with (new, old) after the field changes.
// Multiple watches on one field run in registration order.
func (b *TypeBuilder) Watch(field string, fn WatchFunc) *TypeBuilder {
	if b.declare("registry.Watch") && fn != nil {
		b.d.watches[field] = append(b.d.watches[field], fn)
	}
	return b
}

// Method declares a named method, the target of event bindings.
func (b *TypeBuilder) Method(name string, fn MethodFunc) *TypeBuilder {
	if b.declare("registry.Method") {
		b.d.methods[name] = fn
	}
	return b
}

// On binds a host event type to a declared method by name.
func (b *TypeBuilder) On(eventType, method string) *TypeBuilder {
	if b.declare("registry.On") {
		b.d.events[eventType] = method
	}
	return b
}

// RouteParam seeds a field from the externally supplied route/query
// parameter bag under the given key.
func (b *TypeBuilder) RouteParam(field, key string) *TypeBuilder {
	if b.declare("registry.RouteParam") {
		b.d.routeParams[field] = key
	}
	return b
}

// BeforeMount declares the hook run after binding, before the first render.
func (b *TypeBuilder) BeforeMount(fn HookFunc) *TypeBuilder {
	if b.declare("registry.BeforeMount") {
		b.d.beforeMount = fn
	}
	return b
}

// Mounted declares the hook run when the host's nodes attach to a live
// document.
func (b *TypeBuilder) Mounted(fn HookFunc) *TypeBuilder {
	if b.declare("registry.Mounted") {
		b.d.mounted = fn
	}
	return b
}

// BeforeUpdate declares the hook run before each re-render.
func (b *TypeBuilder) BeforeUpdate(fn HookFunc) *TypeBuilder {
	if b.declare("registry.BeforeUpdate") {
		b.d.beforeUpdate = fn
	}
	return b
}

// Updated declares the hook run after each re-render.
func (b *TypeBuilder) Updated(fn HookFunc) *TypeBuilder {
	if b.declare("registry.Updated") {
		b.d.updated = fn
	}
	return b
}

// BeforeUnmount declares the hook run at the start of Destroy.
func (b *TypeBuilder) BeforeUnmount(fn HookFunc) *TypeBuilder {
	if b.declare("registry.BeforeUnmount") {
		b.d.beforeUnmount = fn
	}
	return b
}

// Destroyed declares the hook run after teardown of listeners and
// subscriptions.
func (b *TypeBuilder) Destroyed(fn HookFunc) *TypeBuilder {
	if b.declare("registry.Destroyed") {
		b.d.destroyed = fn
	}
	return b
}

// ErrorCaptured declares the instance's error-capture hook.
func (b *TypeBuilder) ErrorCaptured(fn ErrorCaptureFunc) *TypeBuilder {
	if b.declare("registry.ErrorCaptured") {
		b.d.errorCaptured = fn
	}
	return b
}
