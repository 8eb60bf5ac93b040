// Package vdom defines the immutable virtual node tree produced by component
// render entries and consumed by the runtime's render walker.
//
// Virtual nodes are plain descriptions: a tag (element or component type
// name), a property map, and children. They are built once per render pass
// and never mutated; the walker realizes them into dom nodes.
package vdom

import "fmt"

// Kind discriminates the virtual node variants.
type Kind int

const (
	// KindElement describes a tagged element or, when the tag names a
	// registered component type, a component instantiation.
	KindElement Kind = iota
	// KindFragment groups children without a container of its own.
	KindFragment
	// KindText holds character data.
	KindText
)

// Node is an immutable description of a UI node.
type Node struct {
	Kind     Kind
	Tag      string
	Props    map[string]any
	Children []*Node
	Text     string
}

// El creates an element (or component) node. The tag is matched against the
// component registry at realization time; a registered name instantiates a
// component, anything else becomes a real element.
//
// Children may be *Node values or plain values: nil and booleans are
// filtered out, other non-node values stringify to text nodes.
func El(tag string, props map[string]any, children ...any) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Props:    props,
		Children: coerceChildren(children),
	}
}

// Fragment creates a grouping node whose realized children flatten into the
// parent with no wrapping container.
func Fragment(children ...any) *Node {
	return &Node{
		Kind:     KindFragment,
		Children: coerceChildren(children),
	}
}

// Text creates a text node from the stringified value.
func Text(value any) *Node {
	return &Node{Kind: KindText, Text: Stringify(value)}
}

// Stringify renders a child value as text content.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// coerceChildren filters and converts raw child arguments. nil and boolean
// values realize to nothing and are dropped here, before the walker ever
// sees them; non-node values become text nodes.
func coerceChildren(raw []any) []*Node {
	if len(raw) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(raw))
	for _, child := range raw {
		switch v := child.(type) {
		case nil:
			continue
		case bool:
			continue
		case *Node:
			if v != nil {
				nodes = append(nodes, v)
			}
		case []*Node:
			nodes = append(nodes, v...)
		default:
			nodes = append(nodes, Text(v))
		}
	}
	return nodes
}
