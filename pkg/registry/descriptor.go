package registry

import "sort"

// FieldKind identifies which reactive mechanism a field is bound to.
// A field is bound to exactly one kind; rebinding replaces the previous
// binding (last declaration wins).
type FieldKind int

const (
	// FieldUnbound marks a name with no binding.
	FieldUnbound FieldKind = iota
	// FieldState is plain reactive state; writes request a re-render.
	FieldState
	// FieldProp reflects to a DOM property on the host element.
	FieldProp
	// FieldStyle reflects to a single style entry on the host element.
	FieldStyle
	// FieldStyleGroup reflects a style-object's entries onto the host.
	FieldStyleGroup
	// FieldStore links the field to a global store cell.
	FieldStore
	// FieldComputed derives the value from tracked dependencies.
	FieldComputed
)

func (k FieldKind) String() string {
	switch k {
	case FieldState:
		return "state"
	case FieldProp:
		return "prop"
	case FieldStyle:
		return "style"
	case FieldStyleGroup:
		return "styleGroup"
	case FieldStore:
		return "store"
	case FieldComputed:
		return "computed"
	default:
		return "unbound"
	}
}

// TypeDescriptor is the compiled metadata for one component type. It is
// built incrementally by TypeBuilder declarations and sealed when the first
// instance is created; only the reverse computed-dependency index mutates
// after that.
type TypeDescriptor struct {
	name          string
	tag           string
	render        RenderFunc
	params        []string
	childrenParam string

	kinds       map[string]FieldKind
	defaults    map[string]any
	props       map[string]string // field -> DOM property
	styles      map[string]string // field -> style property
	storeKeys   map[string]string // field -> store key
	routeParams map[string]string // field -> parameter-bag key
	computed    map[string]ComputedFunc
	watches     map[string][]WatchFunc
	methods     map[string]MethodFunc
	events      map[string]string // event type -> method name

	beforeMount   HookFunc
	mounted       HookFunc
	beforeUpdate  HookFunc
	updated       HookFunc
	beforeUnmount HookFunc
	destroyed     HookFunc
	errorCaptured ErrorCaptureFunc

	// dependents is the reverse computed-dependency index: for each field,
	// the computed fields whose cached value reads it. Relinked on every
	// recomputation.
	dependents map[string]map[string]struct{}

	sealed bool
}

func newTypeDescriptor(name string) *TypeDescriptor {
	return &TypeDescriptor{
		name:        name,
		kinds:       make(map[string]FieldKind),
		defaults:    make(map[string]any),
		props:       make(map[string]string),
		styles:      make(map[string]string),
		storeKeys:   make(map[string]string),
		routeParams: make(map[string]string),
		computed:    make(map[string]ComputedFunc),
		watches:     make(map[string][]WatchFunc),
		methods:     make(map[string]MethodFunc),
		events:      make(map[string]string),
		dependents:  make(map[string]map[string]struct{}),
	}
}

// Name returns the component type name.
func (d *TypeDescriptor) Name() string { return d.name }

// Tag returns the host element tag, or "" for a fragment-hosted type.
func (d *TypeDescriptor) Tag() string { return d.tag }

// Render returns the render entry, or nil if none was declared.
func (d *TypeDescriptor) Render() RenderFunc { return d.render }

// Params returns the declared positional render parameter names.
func (d *TypeDescriptor) Params() []string { return d.params }

// ChildrenParam returns the parameter name bound to the instance's virtual
// children, or "" if the render entry takes none.
func (d *TypeDescriptor) ChildrenParam() string { return d.childrenParam }

// KindOf returns the field's binding kind.
func (d *TypeDescriptor) KindOf(field string) FieldKind { return d.kinds[field] }

// Fields returns all bound field names in sorted order.
func (d *TypeDescriptor) Fields() []string {
	fields := make([]string, 0, len(d.kinds))
	for name := range d.kinds {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Default returns the field's declared initial value.
func (d *TypeDescriptor) Default(field string) any { return d.defaults[field] }

// DOMProperty returns the host property a prop field reflects to.
func (d *TypeDescriptor) DOMProperty(field string) string { return d.props[field] }

// StyleProperty returns the style entry a style field reflects to.
func (d *TypeDescriptor) StyleProperty(field string) string { return d.styles[field] }

// StoreKey returns the store key a store-linked field reads and writes.
func (d *TypeDescriptor) StoreKey(field string) string { return d.storeKeys[field] }

// RouteParams returns the field → parameter-bag key mapping.
func (d *TypeDescriptor) RouteParams() map[string]string { return d.routeParams }

// ComputedFunc returns the getter for a computed field.
func (d *TypeDescriptor) ComputedFunc(field string) ComputedFunc { return d.computed[field] }

// Watches returns the watch handlers registered for the field.
func (d *TypeDescriptor) Watches(field string) []WatchFunc { return d.watches[field] }

// Method returns the named method, or nil.
func (d *TypeDescriptor) Method(name string) MethodFunc { return d.methods[name] }

// Events returns the event type → method name bindings.
func (d *TypeDescriptor) Events() map[string]string { return d.events }

// Hooks.
func (d *TypeDescriptor) BeforeMount() HookFunc { return d.beforeMount }
func (d *TypeDescriptor) Mounted() HookFunc { return d.mounted }
func (d *TypeDescriptor) BeforeUpdate() HookFunc { return d.beforeUpdate }
func (d *TypeDescriptor) Updated() HookFunc { return d.updated }
func (d *TypeDescriptor) BeforeUnmount() HookFunc { return d.beforeUnmount }
func (d *TypeDescriptor) Destroyed() HookFunc { return d.destroyed }
func (d *TypeDescriptor) ErrorCaptured() ErrorCaptureFunc { return d.errorCaptured }

// Seal freezes the descriptor against further declarations. Called by the
// runtime when the first instance of the type is created.
func (d *TypeDescriptor) Seal() { d.sealed = true }

// Sealed reports whether instances have started using the descriptor.
func (d *TypeDescriptor) Sealed() bool { return d.sealed }

// LinkDependency records that the computed field reads dep.
func (d *TypeDescriptor) LinkDependency(dep, computed string) {
	set, ok := d.dependents[dep]
	if !ok {
		set = make(map[string]struct{})
		d.dependents[dep] = set
	}
	set[computed] = struct{}{}
}

// UnlinkDependency removes a stale edge from the reverse index.
func (d *TypeDescriptor) UnlinkDependency(dep, computed string) {
	if set, ok := d.dependents[dep]; ok {
		delete(set, computed)
		if len(set) == 0 {
			delete(d.dependents, dep)
		}
	}
}

// DependentsOf returns, in sorted order, the computed fields whose cached
// value reads the given field.
func (d *TypeDescriptor) DependentsOf(field string) []string {
	set := d.dependents[field]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// rebind clears any previous binding for the field and installs the new
// kind. Last declaration wins; no diagnostics at declaration time.
func (d *TypeDescriptor) rebind(field string, kind FieldKind) {
	delete(d.props, field)
	delete(d.styles, field)
	delete(d.storeKeys, field)
	delete(d.computed, field)
	d.kinds[field] = kind
}
