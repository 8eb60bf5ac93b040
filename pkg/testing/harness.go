// Package testing provides a harness for exercising Ripple components
// against an in-memory document, without any real platform layer.
package testing

import (
	"testing"

	"github.com/go-ripple/ripple/pkg/core"
	"github.com/go-ripple/ripple/pkg/dom"
	"github.com/go-ripple/ripple/pkg/errors"
	"github.com/go-ripple/ripple/pkg/registry"
	"github.com/go-ripple/ripple/pkg/vdom"
)

// Harness owns a document and a runtime, and records every error the
// runtime reports while it is installed.
type Harness struct {
	doc     *dom.Document
	rt      *core.Runtime
	errs    *RecordingHandler
	prev    errors.ErrorHandler
	cleaned bool
}

// NewHarness creates a harness over a fresh document and runtime. Call
// Cleanup when done, or use NewHarnessWithT instead.
func NewHarness(reg *registry.Registry) *Harness {
	h := &Harness{
		doc:  dom.NewDocument(),
		rt:   core.New(reg),
		errs: &RecordingHandler{},
		prev: errors.DefaultHandler,
	}
	errors.SetHandler(h.errs)
	return h
}

// NewHarnessWithT creates a harness that restores the global error handler
// via t.Cleanup. This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T, reg *registry.Registry) *Harness {
	h := NewHarness(reg)
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the global error handler.
func (h *Harness) Cleanup() {
	if h.cleaned {
		return
	}
	h.cleaned = true
	errors.SetHandler(h.prev)
}

// Runtime returns the harness runtime.
func (h *Harness) Runtime() *core.Runtime {
	return h.rt
}

// Body returns the document body the harness mounts into.
func (h *Harness) Body() *dom.Element {
	return h.doc.Body()
}

// Mount realizes a virtual tree into the document body and runs mount
// propagation. It returns the realized top-level nodes.
func (h *Harness) Mount(v *vdom.Node) []dom.Node {
	return h.rt.Mount(v, h.doc.Body())
}

// MountComponent mounts a single component type by name and returns its
// instance, or nil when creation failed.
func (h *Harness) MountComponent(name string, props map[string]any) *core.Instance {
	nodes := h.Mount(vdom.El(name, props))
	if len(nodes) == 0 {
		return nil
	}
	return InstanceOf(nodes[0])
}

// Click dispatches a click event at the element.
func (h *Harness) Click(el *dom.Element) {
	if el != nil {
		el.Dispatch("click")
	}
}

// Text returns the aggregated text content of the document body.
func (h *Harness) Text() string {
	return dom.TextContent(h.doc.Body())
}

// Errors returns the errors recorded since the harness was created.
func (h *Harness) Errors() *RecordingHandler {
	return h.errs
}

// InstanceOf extracts the component instance hosted on a node, or nil.
func InstanceOf(n dom.Node) *core.Instance {
	host, ok := n.(dom.InstanceHost)
	if !ok {
		return nil
	}
	inst, _ := host.InstanceRef().(*core.Instance)
	return inst
}

// RecordingHandler is an errors.ErrorHandler that collects reports.
type RecordingHandler struct {
	Errors []*errors.RuntimeError
	Panics []*errors.PanicError
}

// HandleError records a runtime error.
func (h *RecordingHandler) HandleError(err *errors.RuntimeError) {
	h.Errors = append(h.Errors, err)
}

// HandlePanic records a recovered panic.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.Panics = append(h.Panics, err)
}

// ByKind returns the recorded errors of one kind.
func (h *RecordingHandler) ByKind(kind errors.ErrorKind) []*errors.RuntimeError {
	var out []*errors.RuntimeError
	for _, e := range h.Errors {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
