package core

import (
	"fmt"

	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/reactive"
	"github.com/go-ripple/ripple/pkg/registry"
)

// fieldSlot is the installed get/set behavior for one declared field.
// Store-linked and computed fields keep no backing value here; everything
// else holds its current value on the slot.
type fieldSlot struct {
	name  string
	kind  registry.FieldKind
	value any
}

// computedEntry caches one computed field: its discovered dependency set,
// the cached value, and the dirty flag forcing re-evaluation on next read.
type computedEntry struct {
	deps  map[string]struct{}
	value any
	dirty bool
}

// bindFields installs a slot for every declared field. Seeded values (from
// the route/query parameter bag) override declared defaults. Store-linked
// fields seed their cell only when no cell exists yet for the key, then
// subscribe the instance so external writes drive the same pipeline as
// local ones. Computed fields are primed with an initial evaluation so
// their dependency edges exist before any explicit read.
func (i *Instance) bindFields(seeded map[string]any) {
	desc := i.desc
	for _, name := range desc.Fields() {
		kind := desc.KindOf(name)
		slot := &fieldSlot{name: name, kind: kind}
		i.fields[name] = slot

		initial := desc.Default(name)
		if v, ok := seeded[name]; ok {
			initial = v
		}

		switch kind {
		case registry.FieldStore:
			key := desc.StoreKey(name)
			if !i.rt.store.Has(key) {
				i.rt.store.Set(key, initial)
			}
			field := name
			unsub := i.rt.store.Subscribe(key, func(newValue, oldValue any) {
				i.afterFieldChange(field, newValue, oldValue)
			})
			i.unsubs = append(i.unsubs, unsub)

		case registry.FieldComputed:
			i.computed[name] = &computedEntry{dirty: true}

		default:
			slot.value = initial
			if i.domFacing(kind) {
				if _, isElement := i.host.(*dom.Element); !isElement {
					i.reportBinding("core.bindFields", name,
						fmt.Errorf("%s binding requires a tagged host", kind))
				} else if initial != nil {
					i.reflectToHost(slot, initial)
				}
			}
		}
	}

	// Prime computed caches so the reverse-dependency index carries their
	// edges from the start; a watch on a computed field must fire on the
	// first upstream write even when nothing has read the field yet.
	for _, name := range desc.Fields() {
		if desc.KindOf(name) == registry.FieldComputed {
			i.computedValue(name)
		}
	}
}

func (i *Instance) domFacing(kind registry.FieldKind) bool {
	switch kind {
	case registry.FieldProp, registry.FieldStyle, registry.FieldStyleGroup:
		return true
	}
	return false
}

// setSlot performs the ordered write pipeline for a field:
//
//	(a) reflect DOM-facing fields to the host node
//	(b) invoke the field's watch handlers with (new, old)
//	(c) eagerly recompute every transitively dependent computed field,
//	    relinking its dependency edges, and recurse for those that changed
//	(d) request a re-render when a state field changed on a mounted instance
//
// A write identical (by reference) to the current value does none of this.
func (i *Instance) setSlot(slot *fieldSlot, value any) {
	switch slot.kind {
	case registry.FieldComputed:
		i.reportBinding("core.Instance.Set", slot.name,
			fmt.Errorf("computed field is read-only"))
		return

	case registry.FieldStore:
		// The pipeline runs from the store subscription so that every
		// instance bound to the key, writer included, reacts identically
		// and in registration order.
		i.rt.store.Set(i.desc.StoreKey(slot.name), value)
		return
	}

	old := slot.value
	if reactive.Identical(old, value) {
		return
	}
	slot.value = value
	i.reflectToHost(slot, value)
	i.afterFieldChange(slot.name, value, old)
}

// reflectToHost mirrors a DOM-facing field's value onto the host element.
func (i *Instance) reflectToHost(slot *fieldSlot, value any) {
	el, ok := i.host.(*dom.Element)
	if !ok {
		return
	}
	switch slot.kind {
	case registry.FieldProp:
		applyAttribute(el, i.desc.DOMProperty(slot.name), value)
	case registry.FieldStyle:
		el.SetStyle(i.desc.StyleProperty(slot.name), value)
	case registry.FieldStyleGroup:
		switch styles := value.(type) {
		case map[string]any:
			for _, prop := range sortedStyleKeys(styles) {
				el.SetStyle(prop, styles[prop])
			}
		case map[string]string:
			for prop, v := range styles {
				el.SetStyle(prop, v)
			}
		}
	}
}

// afterFieldChange runs steps (b)-(d) of the write pipeline for a field
// whose value already changed. Cascaded computed changes re-enter here,
// which gives them watch dispatch and further cascading but never a
// re-render of their own.
func (i *Instance) afterFieldChange(field string, newValue, oldValue any) {
	i.dispatchWatches(field, newValue, oldValue)
	i.cascadeComputed(field)

	switch i.desc.KindOf(field) {
	case registry.FieldState, registry.FieldStore:
		if i.mounted {
			i.Update()
		}
	}
}

// dispatchWatches invokes the field's watch handlers in registration order.
// A panicking handler is routed to the error-capture hook; an explicit
// opt-out propagates the panic out of the triggering field write.
func (i *Instance) dispatchWatches(field string, newValue, oldValue any) {
	for _, watch := range i.desc.Watches(field) {
		fn := watch
		i.guard("core.watch", true, func() {
			fn(i, newValue, oldValue)
		})
	}
}

// cascadeComputed marks every computed field dependent on the changed field
// dirty, recomputes it eagerly under a fresh tracking scope, and — when its
// value changed — repeats the pipeline for it recursively.
func (i *Instance) cascadeComputed(field string) {
	for _, name := range i.desc.DependentsOf(field) {
		entry, ok := i.computed[name]
		if !ok {
			continue
		}
		prev := entry.value
		entry.dirty = true
		value := i.computedValue(name)
		if !reactive.Identical(value, prev) {
			i.afterFieldChange(name, value, prev)
		}
	}
}

// computedValue returns the computed field's cached value, re-evaluating it
// under a tracking scope when dirty. Dependency edges in the descriptor's
// reverse index are relinked on every evaluation: stale edges removed,
// current ones added.
//
// A circular dependency or an exceeded recursion cap aborts the evaluation:
// the last cached value is returned and a warning reported, never a crash.
func (i *Instance) computedValue(name string) any {
	entry, ok := i.computed[name]
	if !ok {
		entry = &computedEntry{dirty: true}
		i.computed[name] = entry
	}
	if !entry.dirty {
		return entry.value
	}
	getter := i.desc.ComputedFunc(name)
	if getter == nil {
		return entry.value
	}

	tracker := i.rt.tracker
	if err := tracker.StartComputing(i, name); err != nil {
		errors.Report(&errors.RuntimeError{
			Op:        "core.computed",
			Kind:      errors.KindCycle,
			Component: i.desc.Name(),
			Field:     name,
			Err:       err,
		})
		return entry.value
	}

	var value any
	var scope *reactive.Scope
	completed := func() bool {
		defer func() {
			scope = tracker.EndTracking()
			tracker.EndComputing(i, name)
		}()
		tracker.StartTracking(i)
		return i.guard("core.computed", true, func() {
			value = getter(i)
		})
	}()
	if !completed {
		// Evaluation failed and was contained; keep the stale cache and
		// leave the entry dirty for the next read.
		return entry.value
	}

	current := scope.Fields()
	for dep := range entry.deps {
		if _, still := current[dep]; !still {
			i.desc.UnlinkDependency(dep, name)
		}
	}
	for dep := range current {
		i.desc.LinkDependency(dep, name)
	}
	entry.deps = current
	entry.value = value
	entry.dirty = false
	return value
}
