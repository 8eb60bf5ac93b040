package testing

import (
	"strings"

	"github.com/go-ripple/ripple/pkg/dom"
)

// FindAllByTag returns, in document order, every element under root with
// the given tag.
func FindAllByTag(root dom.Node, tag string) []*dom.Element {
	var found []*dom.Element
	walk(root, func(n dom.Node) {
		if el, ok := n.(*dom.Element); ok && el.Tag() == tag {
			found = append(found, el)
		}
	})
	return found
}

// FirstByTag returns the first element under root with the given tag, or
// nil.
func FirstByTag(root dom.Node, tag string) *dom.Element {
	all := FindAllByTag(root, tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// ContainsText reports whether the subtree's aggregated text content
// contains the substring.
func ContainsText(root dom.Node, substr string) bool {
	return strings.Contains(dom.TextContent(root), substr)
}

func walk(n dom.Node, visit func(dom.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.ChildNodes() {
		walk(child, visit)
	}
}
