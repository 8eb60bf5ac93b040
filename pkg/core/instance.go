package core

import (
	"fmt"
	"sort"

	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/registry"
	"github.com/go-ripple/ripple/pkg/vdom"
)

// Instance is one live component: its field container, host node, realized
// subtree, and teardown records. Instances are created by the runtime,
// explicitly destroyed, and never reused.
type Instance struct {
	rt   *Runtime
	desc *registry.TypeDescriptor

	host     dom.Node // *dom.Element when the type declares a tag, else *dom.Fragment
	props    map[string]any
	children []*vdom.Node

	fields   map[string]*fieldSlot
	computed map[string]*computedEntry
	rendered []dom.Node

	listeners []*dom.Listener
	unsubs    []func()

	mounted   bool
	destroyed bool
}

// NewInstance creates a component instance: seeds parameter-bag fields,
// allocates the host node, binds all declared fields, attaches event
// bindings, runs the before-mount hook, and performs the first render pass.
//
// The "mounted" hook does not run here; it fires during mount propagation,
// once the host's nodes are attached to a live document.
//
// A type without a render entry cannot be instantiated: the declaration
// error is reported and nil is returned.
func (rt *Runtime) NewInstance(name string, props map[string]any, children []*vdom.Node) *Instance {
	desc := rt.registry.Lookup(name)
	if desc == nil || desc.Render() == nil {
		errors.Report(&errors.RuntimeError{
			Op:        "core.NewInstance",
			Kind:      errors.KindDeclaration,
			Component: name,
			Err:       fmt.Errorf("component type has no render entry"),
		})
		return nil
	}
	desc.Seal()

	if props == nil {
		props = make(map[string]any)
	}
	inst := &Instance{
		rt:       rt,
		desc:     desc,
		props:    props,
		children: children,
		fields:   make(map[string]*fieldSlot),
		computed: make(map[string]*computedEntry),
	}

	// Fields mapped from the route/query parameter bag seed from props;
	// the bag keys are stripped before props ever reach the render entry.
	seeded := make(map[string]any)
	for field, key := range desc.RouteParams() {
		if value, ok := props[key]; ok {
			seeded[field] = value
			delete(props, key)
		}
	}

	if tag := desc.Tag(); tag != "" {
		el := dom.NewElement(tag)
		el.SetInstanceRef(inst)
		inst.host = el
	} else {
		frag := dom.NewFragment()
		frag.SetInstanceRef(inst)
		inst.host = frag
	}

	inst.bindFields(seeded)
	inst.bindEvents()

	inst.invokeHook("core.beforeMount", desc.BeforeMount())

	nodes, ok := inst.renderPass()
	if ok {
		inst.rendered = nodes
		for _, n := range nodes {
			inst.appendToHost(n)
		}
	}
	return inst
}

// Get reads a bound field, recording the read against any active tracking
// scope. Reading an undeclared field returns nil.
func (i *Instance) Get(field string) any {
	slot, ok := i.fields[field]
	if !ok {
		return nil
	}
	i.rt.tracker.RecordRead(i, field)
	switch slot.kind {
	case registry.FieldStore:
		return i.rt.store.Get(i.desc.StoreKey(field))
	case registry.FieldComputed:
		return i.computedValue(field)
	default:
		return slot.value
	}
}

// Set writes a bound field, driving the reactive pipeline: DOM reflection,
// watch dispatch, computed cascade, and a re-render request for state
// fields. A write identical (by reference) to the current value is a no-op.
func (i *Instance) Set(field string, value any) {
	slot, ok := i.fields[field]
	if !ok {
		errors.Report(&errors.RuntimeError{
			Op:        "core.Instance.Set",
			Kind:      errors.KindBinding,
			Component: i.desc.Name(),
			Field:     field,
			Err:       fmt.Errorf("no binding declared for field"),
		})
		return
	}
	i.setSlot(slot, value)
}

// Host returns the instance's host node.
func (i *Instance) Host() dom.Node {
	return i.host
}

// Mounted reports whether the mount propagation has reached the instance.
func (i *Instance) Mounted() bool {
	return i.mounted
}

// Update re-renders the instance: the previously realized subtree is
// discarded wholesale and rebuilt from a fresh render pass. No-op unless
// mounted.
func (i *Instance) Update() {
	if !i.mounted || i.destroyed {
		return
	}
	i.invokeHook("core.beforeUpdate", i.desc.BeforeUpdate())

	nodes, ok := i.renderPass()
	if !ok {
		// Broken render: keep the stale subtree rather than tearing down.
		return
	}
	for _, n := range i.rendered {
		i.removeFromHost(n)
	}
	i.rendered = nodes
	for _, n := range nodes {
		i.appendToHost(n)
	}
	if dom.Attached(i.host) {
		for _, n := range nodes {
			i.rt.propagateMount(n)
		}
	}
	i.invokeHook("core.updated", i.desc.Updated())
}

// Destroy tears the instance down: before-unmount hook, event listener
// detach, store unsubscribes, destroyed hook, then removal of the realized
// subtree and of an attached element host. Nested child instances are not
// destroyed recursively.
func (i *Instance) Destroy() {
	if i.destroyed {
		return
	}
	i.invokeHook("core.beforeUnmount", i.desc.BeforeUnmount())

	if el, ok := i.host.(*dom.Element); ok {
		for _, l := range i.listeners {
			el.RemoveListener(l)
		}
	}
	i.listeners = nil

	for _, unsub := range i.unsubs {
		unsub()
	}
	i.unsubs = nil

	i.invokeHook("core.destroyed", i.desc.Destroyed())

	for _, n := range i.rendered {
		i.removeFromHost(n)
	}
	i.rendered = nil

	if el, ok := i.host.(*dom.Element); ok && el.Parent() != nil {
		dom.Detach(el)
	}

	i.mounted = false
	i.destroyed = true
}

// Type returns the instance's component type name.
func (i *Instance) Type() string {
	return i.desc.Name()
}

// renderPass invokes the render entry with the positional argument list
// built from the declared input/children parameters and realizes the
// returned virtual tree. ok is false when the render entry failed; the
// error has already been routed and contained.
func (i *Instance) renderPass() (nodes []dom.Node, ok bool) {
	args := i.buildArgs()
	var v *vdom.Node
	ok = i.guard("core.render", false, func() {
		v = i.desc.Render()(i, args)
	})
	if !ok {
		return nil, false
	}
	return i.rt.Realize(v), true
}

// buildArgs rebuilds the render entry's positional arguments from the
// descriptor's parameter mapping. The children parameter receives the
// instance's virtual children; every other parameter reads from props.
func (i *Instance) buildArgs() []any {
	params := i.desc.Params()
	args := make([]any, len(params))
	for idx, name := range params {
		if name != "" && name == i.desc.ChildrenParam() {
			args[idx] = i.children
		} else {
			args[idx] = i.props[name]
		}
	}
	return args
}

// bindEvents attaches the declared event bindings to the host element.
// A tagless host or a missing method target is a binding error: reported,
// binding skipped.
func (i *Instance) bindEvents() {
	events := i.desc.Events()
	if len(events) == 0 {
		return
	}
	el, isElement := i.host.(*dom.Element)
	for _, eventType := range sortedEventTypes(events) {
		methodName := events[eventType]
		if !isElement {
			i.reportBinding("core.bindEvents", eventType,
				fmt.Errorf("event binding %q requires a tagged host", eventType))
			continue
		}
		method := i.desc.Method(methodName)
		if method == nil {
			i.reportBinding("core.bindEvents", eventType,
				fmt.Errorf("event binding %q targets undeclared method %q", eventType, methodName))
			continue
		}
		inst := i
		l := el.AddListener(eventType, func(evt *dom.Event) {
			method(inst, evt)
		})
		i.listeners = append(i.listeners, l)
	}
}

// Invoke calls a declared method by name, as an event binding would.
// Unknown methods are a reported binding error.
func (i *Instance) Invoke(method string, evt *dom.Event) {
	fn := i.desc.Method(method)
	if fn == nil {
		i.reportBinding("core.Instance.Invoke", method,
			fmt.Errorf("undeclared method %q", method))
		return
	}
	fn(i, evt)
}

func (i *Instance) appendToHost(n dom.Node) {
	switch host := i.host.(type) {
	case *dom.Element:
		host.Append(n)
	case *dom.Fragment:
		host.Append(n)
	}
}

func (i *Instance) removeFromHost(n dom.Node) {
	switch host := i.host.(type) {
	case *dom.Element:
		host.Remove(n)
	case *dom.Fragment:
		host.Remove(n)
	}
}

// invokeHook runs a lifecycle hook under the render-boundary guard: a
// panicking hook is routed to the error-capture hook and contained either
// way.
func (i *Instance) invokeHook(op string, fn registry.HookFunc) {
	if fn == nil {
		return
	}
	i.guard(op, false, func() {
		fn(i)
	})
}

// guard runs fn with panic recovery. A recovered panic is routed to the
// declared error-capture hook; when the hook explicitly opts out of
// suppression (returns false) and rethrow is set, the panic propagates to
// the caller — the originating field-write call site. Otherwise the error
// is reported and contained.
func (i *Instance) guard(op string, rethrow bool, fn func()) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			perr := &errors.PanicError{
				Op:         op,
				Component:  i.desc.Name(),
				Value:      r,
				StackTrace: errors.CaptureStack(),
			}
			if capture := i.desc.ErrorCaptured(); capture != nil {
				if suppress := capture(i, perr); !suppress && rethrow {
					panic(r)
				}
			}
			errors.ReportPanic(perr)
		}
	}()
	fn()
	return true
}

func (i *Instance) reportBinding(op, field string, err error) {
	errors.Report(&errors.RuntimeError{
		Op:        op,
		Kind:      errors.KindBinding,
		Component: i.desc.Name(),
		Field:     field,
		Err:       err,
	})
}

func sortedEventTypes(events map[string]string) []string {
	types := make([]string, 0, len(events))
	for t := range events {
		types = append(types, t)
	}
	// Deterministic attach order for listener records.
	sort.Strings(types)
	return types
}
