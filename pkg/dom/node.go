// Package dom provides the in-memory document model the Ripple runtime
// renders into.
//
// The model is deliberately small: tagged elements with attributes, styles,
// classes, and event listeners; text nodes; and non-rendering fragment nodes
// that group children without introducing a container. A Document marks the
// root of a live tree; nodes reachable from the document body are "attached".
package dom

import "strings"

// Node is a real node in the document tree.
type Node interface {
	// Parent returns the node's parent, or nil for a detached root.
	Parent() Node
	// ChildNodes returns the node's children in order. Text nodes return nil.
	ChildNodes() []Node

	setParent(parent Node)
}

// InstanceHost is implemented by nodes that can carry a component-instance
// reference (elements and fragments). The reference is opaque to this
// package; the runtime's mount walker interprets it.
type InstanceHost interface {
	Node
	// SetInstanceRef attaches a component-instance reference to the node.
	SetInstanceRef(ref any)
	// InstanceRef returns the attached reference, or nil.
	InstanceRef() any
}

// Attached reports whether the node is part of a live document, i.e. whether
// walking its parent chain reaches a document body.
func Attached(n Node) bool {
	for n != nil {
		if el, ok := n.(*Element); ok && el.doc != nil {
			return true
		}
		n = n.Parent()
	}
	return false
}

// Detach removes the node from its parent, if any.
func Detach(n Node) {
	if n == nil {
		return
	}
	switch parent := n.Parent().(type) {
	case *Element:
		parent.Remove(n)
	case *Fragment:
		parent.Remove(n)
	}
}

// TextContent concatenates the text data of the node and all descendants.
func TextContent(n Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	if t, ok := n.(*Text); ok {
		sb.WriteString(t.Data())
		return
	}
	for _, child := range n.ChildNodes() {
		collectText(child, sb)
	}
}

// removeFromSlice removes the first occurrence of target from nodes.
func removeFromSlice(nodes []Node, target Node) []Node {
	for i, n := range nodes {
		if n == target {
			return append(nodes[:i], nodes[i+1:]...)
		}
	}
	return nodes
}
