package dom

import (
	"sort"
	"strings"
)

// Element is a tag-backed node with attributes, styles, classes, children,
// and event listeners.
type Element struct {
	tag       string
	attrs     map[string]string
	styles    map[string]string
	classes   []string
	children  []Node
	listeners map[string][]*Listener
	parent    Node
	instance  any
	doc       *Document // non-nil only for a document body
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Parent returns the element's parent node.
func (e *Element) Parent() Node {
	return e.parent
}

func (e *Element) setParent(parent Node) {
	e.parent = parent
}

// ChildNodes returns the element's children in order.
func (e *Element) ChildNodes() []Node {
	return e.children
}

// SetInstanceRef attaches a component-instance reference to the element.
func (e *Element) SetInstanceRef(ref any) {
	e.instance = ref
}

// InstanceRef returns the attached component-instance reference, or nil.
func (e *Element) InstanceRef() any {
	return e.instance
}

// Append adds a child at the end, detaching it from any previous parent.
func (e *Element) Append(child Node) {
	if child == nil {
		return
	}
	Detach(child)
	child.setParent(e)
	e.children = append(e.children, child)
}

// InsertBefore inserts a child before an existing reference child, detaching
// it from any previous parent. A nil or non-child reference appends.
func (e *Element) InsertBefore(child, ref Node) {
	if child == nil {
		return
	}
	Detach(child)
	child.setParent(e)
	for i, n := range e.children {
		if n == ref {
			e.children = append(e.children[:i], append([]Node{child}, e.children[i:]...)...)
			return
		}
	}
	e.children = append(e.children, child)
}

// Remove removes a direct child. Removing a non-child is a no-op.
func (e *Element) Remove(child Node) {
	if child == nil || child.Parent() != e {
		return
	}
	e.children = removeFromSlice(e.children, child)
	child.setParent(nil)
}

// SetAttribute sets an attribute value.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute deletes an attribute. Deleting an absent attribute is a no-op.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Attribute returns an attribute value and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetStyle sets a single style entry. The value may be a string, a
// color.Color, or any stringable value; see StyleValue.
func (e *Element) SetStyle(property string, value any) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[property] = StyleValue(value)
}

// Style returns a style entry and whether it is set.
func (e *Element) Style(property string) (string, bool) {
	v, ok := e.styles[property]
	return v, ok
}

// SetClasses replaces the element's class list.
func (e *Element) SetClasses(classes []string) {
	e.classes = append([]string(nil), classes...)
}

// Classes returns the element's class list.
func (e *Element) Classes() []string {
	return e.classes
}

// String renders the element and its subtree as HTML-ish markup for
// diagnostics and test assertions. Attributes and styles print in sorted
// order so output is stable.
func (e *Element) String() string {
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Element) write(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(e.tag)
	for _, name := range sortedKeys(e.attrs) {
		sb.WriteString(" ")
		sb.WriteString(name)
		if v := e.attrs[name]; v != "" {
			sb.WriteString(`="`)
			sb.WriteString(v)
			sb.WriteString(`"`)
		}
	}
	if len(e.classes) > 0 {
		sb.WriteString(` class="`)
		sb.WriteString(strings.Join(e.classes, " "))
		sb.WriteString(`"`)
	}
	if len(e.styles) > 0 {
		sb.WriteString(` style="`)
		for i, prop := range sortedKeys(e.styles) {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(prop)
			sb.WriteString(": ")
			sb.WriteString(e.styles[prop])
		}
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	writeChildren(sb, e.children)
	sb.WriteString("</")
	sb.WriteString(e.tag)
	sb.WriteString(">")
}

func writeChildren(sb *strings.Builder, children []Node) {
	for _, child := range children {
		switch n := child.(type) {
		case *Element:
			n.write(sb)
		case *Text:
			sb.WriteString(n.Data())
		case *Fragment:
			writeChildren(sb, n.children)
		}
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
