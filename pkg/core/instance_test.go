package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/registry"
	rippletest "github.com/go-ripple/ripple/pkg/testing"
	"github.com/go-ripple/ripple/pkg/vdom"
)

func TestCreateWithoutRenderEntryFails(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("empty").Tag("div").State("n", 0)

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.Runtime().NewInstance("empty", nil, nil)

	assert.Nil(t, inst)
	assert.NotEmpty(t, h.Errors().ByKind(errors.KindDeclaration))
}

func TestCreateUnknownTypeFails(t *testing.T) {
	reg := registry.NewRegistry()
	h := rippletest.NewHarnessWithT(t, reg)

	assert.Nil(t, h.Runtime().NewInstance("ghost", nil, nil))
	assert.NotEmpty(t, h.Errors().ByKind(errors.KindDeclaration))
}

func TestLifecycleHookOrder(t *testing.T) {
	var order []string
	log := func(name string) registry.HookFunc {
		return func(c registry.Component) { order = append(order, name) }
	}

	reg := registry.NewRegistry()
	reg.Define("life").
		Tag("div").
		State("n", 0).
		BeforeMount(log("beforeMount")).
		Mounted(log("mounted")).
		BeforeUpdate(log("beforeUpdate")).
		Updated(log("updated")).
		BeforeUnmount(log("beforeUnmount")).
		Destroyed(log("destroyed")).
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text(c.Get("n"))
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("life", nil)
	require.NotNil(t, inst)
	require.Equal(t, []string{"beforeMount", "mounted"}, order)

	inst.Set("n", 1)
	require.Equal(t, []string{"beforeMount", "mounted", "beforeUpdate", "updated"}, order)

	inst.Destroy()
	assert.Equal(t, []string{
		"beforeMount", "mounted",
		"beforeUpdate", "updated",
		"beforeUnmount", "destroyed",
	}, order)
}

func TestMountedDeferredUntilAttached(t *testing.T) {
	mounted := 0

	reg := registry.NewRegistry()
	reg.Define("lazy").
		Tag("div").
		Mounted(func(c registry.Component) { mounted++ }).
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text("x")
		})

	h := rippletest.NewHarnessWithT(t, reg)

	// Creating the instance directly does not mount it.
	inst := h.Runtime().NewInstance("lazy", nil, nil)
	require.NotNil(t, inst)
	assert.Zero(t, mounted)
	assert.False(t, inst.Mounted())

	// An update before mount is a no-op.
	inst.Update()
	assert.Zero(t, mounted)

	// Manually attaching the host does not mount either; only mount
	// propagation flips the flag and fires the hook.
	host := inst.Host().(*dom.Element)
	h.Body().Append(host)
	assert.False(t, inst.Mounted())

	other := h.MountComponent("lazy", nil)
	require.NotNil(t, other)
	assert.True(t, other.Mounted())
	assert.Equal(t, 1, mounted)
}

func TestRouteParamSeedingStripsBagKeys(t *testing.T) {
	var seenLabel any

	reg := registry.NewRegistry()
	reg.Define("page").
		Tag("div").
		State("userID", "").
		RouteParam("userID", "id").
		Params("label").
		Render(func(c registry.Component, args []any) *vdom.Node {
			seenLabel = args[0]
			return vdom.Text(c.Get("userID"))
		})

	h := rippletest.NewHarnessWithT(t, reg)
	nodes := h.Mount(vdom.El("page", map[string]any{"id": "42", "label": "Profile"}))
	require.Len(t, nodes, 1)
	inst := rippletest.InstanceOf(nodes[0])

	assert.Equal(t, "42", inst.Get("userID"))
	assert.Equal(t, "Profile", seenLabel)
	assert.Equal(t, "42", h.Text())
}

func TestChildrenParamReachesRender(t *testing.T) {
	var got []*vdom.Node

	reg := registry.NewRegistry()
	reg.Define("wrap").
		Tag("section").
		Params("children").
		ChildrenParam("children").
		Render(func(c registry.Component, args []any) *vdom.Node {
			got = args[0].([]*vdom.Node)
			return vdom.Fragment(got)
		})

	h := rippletest.NewHarnessWithT(t, reg)
	h.Mount(vdom.El("wrap", nil, vdom.Text("a"), vdom.Text("b")))

	require.Len(t, got, 2)
	assert.Equal(t, "ab", h.Text())
}

func TestDestroyDetachesListenersAndSubscriptions(t *testing.T) {
	// P5: after Destroy, native events at the detached host trigger no
	// field mutation or callback.
	watches := 0

	reg := registry.NewRegistry()
	reg.Define("counter").
		Tag("button").
		State("count", 0).
		Store("shared", "k", 0).
		Watch("shared", func(c registry.Component, newV, oldV any) { watches++ }).
		Method("inc", func(c registry.Component, e *dom.Event) {
			c.Set("count", c.Get("count").(int)+1)
		}).
		On("click", "inc").
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text(c.Get("count"))
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("counter", nil)
	require.NotNil(t, inst)
	host := inst.Host().(*dom.Element)

	h.Click(host)
	require.Equal(t, 1, inst.Get("count"))

	inst.Destroy()
	assert.Nil(t, host.Parent())
	assert.False(t, inst.Mounted())

	h.Click(host)
	assert.Equal(t, 1, inst.Get("count"))

	// Store writes no longer reach the destroyed instance.
	h.Runtime().Store().Set("k", 5)
	assert.Zero(t, watches)

	// Destroy is idempotent.
	inst.Destroy()
}

func TestFragmentHostedComponent(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("bare").
		State("n", 7).
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Fragment(vdom.Text("n="), vdom.Text(c.Get("n")))
		})

	h := rippletest.NewHarnessWithT(t, reg)
	nodes := h.Mount(vdom.El("bare", nil))
	require.Len(t, nodes, 1)

	_, isFragment := nodes[0].(*dom.Fragment)
	assert.True(t, isFragment)
	assert.Equal(t, "n=7", h.Text())

	inst := rippletest.InstanceOf(nodes[0])
	inst.Set("n", 8)
	assert.Equal(t, "n=8", h.Text())
}

func TestEventBindingMissingMethodSkipped(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("odd").
		Tag("button").
		On("click", "missing").
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text("x")
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("odd", nil)
	require.NotNil(t, inst)

	assert.NotEmpty(t, h.Errors().ByKind(errors.KindBinding))
	// Dispatch at the host must not blow up.
	h.Click(inst.Host().(*dom.Element))
}

func TestEventBindingOnFragmentHostSkipped(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("tagless").
		Method("noop", func(c registry.Component, e *dom.Event) {}).
		On("click", "noop").
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text("x")
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("tagless", nil)
	require.NotNil(t, inst)
	assert.NotEmpty(t, h.Errors().ByKind(errors.KindBinding))
}

func TestInvokeMethodByName(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("m").
		Tag("div").
		State("n", 0).
		Method("bump", func(c registry.Component, e *dom.Event) {
			c.Set("n", c.Get("n").(int)+10)
		}).
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text(c.Get("n"))
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("m", nil)
	require.NotNil(t, inst)

	inst.Invoke("bump", nil)
	assert.Equal(t, 10, inst.Get("n"))
	assert.Equal(t, "10", h.Text())

	inst.Invoke("missing", nil)
	assert.NotEmpty(t, h.Errors().ByKind(errors.KindBinding))
}

func TestSetUndeclaredFieldReported(t *testing.T) {
	reg := registry.NewRegistry()
	reg.Define("s").
		Tag("div").
		Render(func(c registry.Component, args []any) *vdom.Node {
			return vdom.Text("x")
		})

	h := rippletest.NewHarnessWithT(t, reg)
	inst := h.MountComponent("s", nil)
	require.NotNil(t, inst)

	inst.Set("ghost", 1)
	assert.NotEmpty(t, h.Errors().ByKind(errors.KindBinding))
	assert.Nil(t, inst.Get("ghost"))
}
