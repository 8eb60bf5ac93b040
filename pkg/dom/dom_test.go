package dom

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendReparents(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	child := NewText("x")

	a.Append(child)
	require.Equal(t, a, child.Parent())
	require.Len(t, a.ChildNodes(), 1)

	b.Append(child)
	assert.Equal(t, b, child.Parent())
	assert.Empty(t, a.ChildNodes())
}

func TestInsertBefore(t *testing.T) {
	el := NewElement("ul")
	a := NewText("a")
	c := NewText("c")
	el.Append(a)
	el.Append(c)

	b := NewText("b")
	el.InsertBefore(b, c)
	assert.Equal(t, "abc", TextContent(el))

	// Unknown reference appends.
	el.InsertBefore(NewText("d"), NewText("x"))
	assert.Equal(t, "abcd", TextContent(el))
}

func TestRemoveNonChildIsNoOp(t *testing.T) {
	a := NewElement("div")
	stray := NewText("x")
	a.Remove(stray)
	assert.Nil(t, stray.Parent())
}

func TestAttached(t *testing.T) {
	doc := NewDocument()
	el := NewElement("div")
	assert.False(t, Attached(el))

	doc.Body().Append(el)
	assert.True(t, Attached(el))

	inner := NewText("x")
	el.Append(inner)
	assert.True(t, Attached(inner))

	Detach(el)
	assert.False(t, Attached(el))
	assert.False(t, Attached(inner))
}

func TestFragmentIsTransparent(t *testing.T) {
	doc := NewDocument()
	frag := NewFragment()
	frag.Append(NewText("a"))
	frag.Append(NewText("b"))
	doc.Body().Append(frag)

	assert.True(t, Attached(frag))
	assert.Equal(t, "ab", TextContent(doc.Body()))
	assert.Equal(t, "<body>ab</body>", doc.Body().String())
}

func TestAttributesAndStyles(t *testing.T) {
	el := NewElement("input")
	el.SetAttribute("type", "text")
	el.SetAttribute("disabled", "")
	el.SetStyle("color", "red")
	el.SetStyle("width", 42)
	el.SetClasses([]string{"a", "b"})

	v, ok := el.Attribute("type")
	require.True(t, ok)
	assert.Equal(t, "text", v)

	el.RemoveAttribute("disabled")
	_, ok = el.Attribute("disabled")
	assert.False(t, ok)

	style, ok := el.Style("width")
	require.True(t, ok)
	assert.Equal(t, "42", style)

	assert.Equal(t,
		`<input type="text" class="a b" style="color: red; width: 42">`+
			`</input>`,
		el.String())
}

func TestDispatchBubbles(t *testing.T) {
	outer := NewElement("div")
	inner := NewElement("button")
	outer.Append(inner)

	var order []string
	inner.AddListener("click", func(e *Event) {
		order = append(order, "inner")
		assert.Equal(t, inner, e.Target.(*Element))
	})
	outer.AddListener("click", func(e *Event) {
		order = append(order, "outer")
	})

	inner.Dispatch("click")
	assert.Equal(t, []string{"inner", "outer"}, order)
}

func TestStopPropagation(t *testing.T) {
	outer := NewElement("div")
	inner := NewElement("button")
	outer.Append(inner)

	var order []string
	inner.AddListener("click", func(e *Event) {
		order = append(order, "inner")
		e.StopPropagation()
	})
	outer.AddListener("click", func(e *Event) {
		order = append(order, "outer")
	})

	inner.Dispatch("click")
	assert.Equal(t, []string{"inner"}, order)
}

func TestRemoveListener(t *testing.T) {
	el := NewElement("button")
	calls := 0
	l := el.AddListener("click", func(e *Event) { calls++ })

	el.Dispatch("click")
	require.Equal(t, 1, calls)

	el.RemoveListener(l)
	el.Dispatch("click")
	assert.Equal(t, 1, calls)
}

func TestInstanceRef(t *testing.T) {
	el := NewElement("div")
	ref := struct{ name string }{"inst"}
	el.SetInstanceRef(ref)
	assert.Equal(t, ref, el.InstanceRef())

	frag := NewFragment()
	frag.SetInstanceRef(ref)
	assert.Equal(t, ref, frag.InstanceRef())
}

func TestNamedColor(t *testing.T) {
	c, ok := NamedColor("steelblue")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{0x46, 0x82, 0xb4, 0xff}, c)

	_, ok = NamedColor("notacolor")
	assert.False(t, ok)
}

func TestStyleValueColors(t *testing.T) {
	el := NewElement("div")
	el.SetStyle("color", color.RGBA{0x46, 0x82, 0xb4, 0xff})
	v, _ := el.Style("color")
	assert.Equal(t, "#4682b4", v)

	el.SetStyle("background", color.RGBA{0x00, 0x00, 0x00, 0x80})
	v, _ = el.Style("background")
	assert.Equal(t, "#00000080", v)
}
