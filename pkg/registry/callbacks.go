package registry

import (
	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/vdom"
)

// Component is the runtime-facing view of a component instance, as seen from
// declared callbacks. Declaring callbacks against this interface keeps the
// registry free of any dependency on the runtime package.
type Component interface {
	// Get reads a bound field.
	Get(field string) any
	// Set writes a bound field, driving the reactive pipeline.
	Set(field string, value any)
	// Host returns the instance's host node.
	Host() dom.Node
	// Update re-renders the instance's subtree.
	Update()
	// Destroy tears the instance down.
	Destroy()
}

// RenderFunc is a component type's render entry. It receives the positional
// argument list built from the type's declared input/children parameters and
// returns the virtual tree for one render pass.
type RenderFunc func(c Component, args []any) *vdom.Node

// MethodFunc is a named method, invocable from declared event bindings.
type MethodFunc func(c Component, evt *dom.Event)

// WatchFunc observes a field, receiving the new and previous values.
type WatchFunc func(c Component, newValue, oldValue any)

// ComputedFunc derives a value; field reads inside it are tracked as
// dependencies.
type ComputedFunc func(c Component) any

// HookFunc is a lifecycle hook.
type HookFunc func(c Component)

// ErrorCaptureFunc handles an error raised in a watch handler, computed
// getter, render entry, or lifecycle hook. Returning false opts out of
// suppression: the error propagates past the triggering call site.
type ErrorCaptureFunc func(c Component, err error) bool
