package dom

// Fragment is a non-rendering grouping node. It participates in the tree and
// holds children but introduces no tag of its own; serialization and text
// aggregation pass straight through it. Components without a host tag use a
// fragment as their host node.
type Fragment struct {
	children []Node
	parent   Node
	instance any
}

// NewFragment creates a detached, empty fragment.
func NewFragment() *Fragment {
	return &Fragment{}
}

// Parent returns the fragment's parent node.
func (f *Fragment) Parent() Node {
	return f.parent
}

func (f *Fragment) setParent(parent Node) {
	f.parent = parent
}

// ChildNodes returns the fragment's children in order.
func (f *Fragment) ChildNodes() []Node {
	return f.children
}

// SetInstanceRef attaches a component-instance reference to the fragment.
func (f *Fragment) SetInstanceRef(ref any) {
	f.instance = ref
}

// InstanceRef returns the attached component-instance reference, or nil.
func (f *Fragment) InstanceRef() any {
	return f.instance
}

// Append adds a child at the end, detaching it from any previous parent.
func (f *Fragment) Append(child Node) {
	if child == nil {
		return
	}
	Detach(child)
	child.setParent(f)
	f.children = append(f.children, child)
}

// Remove removes a direct child. Removing a non-child is a no-op.
func (f *Fragment) Remove(child Node) {
	if child == nil || child.Parent() != f {
		return
	}
	f.children = removeFromSlice(f.children, child)
	child.setParent(nil)
}
