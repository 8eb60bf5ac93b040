package dom

// Text is a leaf node holding character data.
type Text struct {
	data   string
	parent Node
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Data returns the node's character data.
func (t *Text) Data() string {
	return t.data
}

// SetData replaces the node's character data.
func (t *Text) SetData(data string) {
	t.data = data
}

// Parent returns the node's parent.
func (t *Text) Parent() Node {
	return t.parent
}

func (t *Text) setParent(parent Node) {
	t.parent = parent
}

// ChildNodes returns nil; text nodes have no children.
func (t *Text) ChildNodes() []Node {
	return nil
}
