// Package core implements the Ripple reactivity and rendering engine:
// component instances, the reactive field binder, and the render walker that
// realizes virtual trees into dom nodes.
//
// A Runtime owns everything that would otherwise be ambient global state:
// the type registry, the shared store, and the dependency tracker. Two
// runtimes never share state, which keeps tests and embedded uses isolated.
//
// Execution is single-threaded and cooperative. Every propagation chain
// (field write → watch → computed cascade → re-render) runs synchronously
// inside the call stack of the triggering mutation; nothing here queues,
// batches, or defers.
package core

import (
	"github.com/go-ripple/ripple/pkg/config"
	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/registry"
	"github.com/go-ripple/ripple/pkg/store"
	"github.com/go-ripple/ripple/pkg/vdom"
)

// Options tunes a runtime.
type Options struct {
	// MaxComputedDepth caps nested computed evaluations per instance.
	// Zero means the tracker default.
	MaxComputedDepth int
	// VerboseErrors switches the global error log to verbose output
	// (stack traces included).
	VerboseErrors bool
}

// OptionsFromConfig converts a resolved configuration profile into runtime
// options.
func OptionsFromConfig(r *config.Resolved) Options {
	if r == nil {
		return Options{}
	}
	return Options{
		MaxComputedDepth: r.MaxComputedDepth,
		VerboseErrors:    r.VerboseErrors,
	}
}

// Runtime is the engine context: registry, store, and tracker, plus the
// instance manager and render walker operating over them.
type Runtime struct {
	registry *registry.Registry
	store    *store.Store
	tracker  *reactive.Tracker
}

// New creates a runtime over the given registry with default options.
func New(reg *registry.Registry) *Runtime {
	return NewWithOptions(reg, Options{})
}

// NewWithOptions creates a runtime with explicit options.
func NewWithOptions(reg *registry.Registry, opts Options) *Runtime {
	rt := &Runtime{
		registry: reg,
		store:    store.NewStore(),
		tracker:  reactive.NewTracker(),
	}
	if opts.MaxComputedDepth > 0 {
		rt.tracker.SetMaxDepth(opts.MaxComputedDepth)
	}
	if opts.VerboseErrors {
		errors.SetHandler(&errors.LogHandler{Verbose: true})
	}
	return rt
}

// Registry returns the runtime's type registry.
func (rt *Runtime) Registry() *registry.Registry {
	return rt.registry
}

// Store returns the runtime's shared store.
func (rt *Runtime) Store() *store.Store {
	return rt.store
}

// Tracker returns the runtime's dependency tracker.
func (rt *Runtime) Tracker() *reactive.Tracker {
	return rt.tracker
}

// Mount realizes a virtual tree, appends the produced nodes under the
// container, and — when the container is part of a live document — runs
// mount propagation over the attached subtree. It returns the realized
// top-level nodes.
func (rt *Runtime) Mount(v *vdom.Node, container *dom.Element) []dom.Node {
	nodes := rt.Realize(v)
	for _, n := range nodes {
		container.Append(n)
	}
	if dom.Attached(container) {
		for _, n := range nodes {
			rt.propagateMount(n)
		}
	}
	return nodes
}

// propagateMount walks an attached subtree depth-first. Every node carrying
// an unmounted instance reference is flagged mounted and gets its "mounted"
// hook before its own subtree is walked, so parents always mount before
// their descendants.
func (rt *Runtime) propagateMount(n dom.Node) {
	if host, ok := n.(dom.InstanceHost); ok {
		if inst, ok := host.InstanceRef().(*Instance); ok && !inst.mounted && !inst.destroyed {
			inst.mounted = true
			inst.invokeHook("core.mounted", inst.desc.Mounted())
		}
	}
	for _, child := range n.ChildNodes() {
		rt.propagateMount(child)
	}
}
