package core

import (
	"sort"
	"strings"

	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/vdom"
)

// Realize converts a virtual node into real dom nodes.
//
//   - A tag naming a registered component type spawns an instance; its host
//     node is the single realized node and the instance owns its subtree.
//   - A fragment realizes each child and flattens the results with no
//     wrapping container.
//   - A text node realizes to one dom text node.
//   - Any other tag realizes to a real element with its props applied and
//     its children realized in order.
//
// There is no diffing: callers replace a subtree's realized nodes wholesale
// on every render pass.
func (rt *Runtime) Realize(v *vdom.Node) []dom.Node {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case vdom.KindText:
		return []dom.Node{dom.NewText(v.Text)}

	case vdom.KindFragment:
		var nodes []dom.Node
		for _, child := range v.Children {
			nodes = append(nodes, rt.Realize(child)...)
		}
		return nodes

	default:
		if rt.registry.Has(v.Tag) {
			inst := rt.NewInstance(v.Tag, cloneProps(v.Props), v.Children)
			if inst == nil {
				return nil
			}
			return []dom.Node{inst.host}
		}
		el := dom.NewElement(v.Tag)
		applyProps(el, v.Props)
		for _, child := range v.Children {
			for _, n := range rt.Realize(child) {
				el.Append(n)
			}
		}
		return []dom.Node{el}
	}
}

// applyProps applies a virtual node's property map to a real element.
// Keys apply in sorted order so repeated realizations are deterministic.
func applyProps(el *dom.Element, props map[string]any) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		switch {
		case key == "style":
			applyStyleProp(el, value)
		case key == "class":
			applyClassProp(el, value)
		case isHandlerProp(key, value):
			// Listeners attached here are not recorded anywhere: when the
			// element is not owned by a component instance there is nothing
			// to detach them on. Noted limitation.
			eventType := strings.ToLower(strings.TrimPrefix(key, "on"))
			el.AddListener(eventType, toHandler(value))
		default:
			applyAttribute(el, key, value)
		}
	}
}

// applyAttribute applies the boolean-attribute convention: true sets a bare
// attribute, false and nil remove it, anything else is stringified and set.
func applyAttribute(el *dom.Element, name string, value any) {
	switch v := value.(type) {
	case nil:
		el.RemoveAttribute(name)
	case bool:
		if v {
			el.SetAttribute(name, "")
		} else {
			el.RemoveAttribute(name)
		}
	default:
		el.SetAttribute(name, vdom.Stringify(v))
	}
}

func applyStyleProp(el *dom.Element, value any) {
	switch styles := value.(type) {
	case map[string]any:
		for _, prop := range sortedStyleKeys(styles) {
			el.SetStyle(prop, styles[prop])
		}
	case map[string]string:
		props := make([]string, 0, len(styles))
		for p := range styles {
			props = append(props, p)
		}
		sort.Strings(props)
		for _, prop := range props {
			el.SetStyle(prop, styles[prop])
		}
	}
}

func applyClassProp(el *dom.Element, value any) {
	switch classes := value.(type) {
	case []string:
		el.SetClasses(classes)
	case string:
		el.SetClasses(strings.Fields(classes))
	}
}

func isHandlerProp(key string, value any) bool {
	if !strings.HasPrefix(key, "on") || len(key) <= 2 {
		return false
	}
	switch value.(type) {
	case dom.EventHandler, func(*dom.Event), func():
		return true
	}
	return false
}

func toHandler(value any) dom.EventHandler {
	switch fn := value.(type) {
	case dom.EventHandler:
		return fn
	case func(*dom.Event):
		return fn
	case func():
		return func(*dom.Event) { fn() }
	}
	return nil
}

func sortedStyleKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func cloneProps(props map[string]any) map[string]any {
	cloned := make(map[string]any, len(props))
	for k, v := range props {
		cloned[k] = v
	}
	return cloned
}
