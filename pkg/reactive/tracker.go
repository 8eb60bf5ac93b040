// Package reactive provides the dependency tracker behind computed fields.
//
// A computed getter runs under a tracking scope; every bound-field read that
// happens while the scope is on top of the stack is recorded as a dependency.
// The tracker also guards computed evaluation against circular dependency
// chains and runaway recursion.
//
// The tracker is an explicit object owned by a runtime, not ambient state:
// every call site receives it through the runtime context, so independent
// runtimes never observe each other's tracking.
package reactive

import "errors"

// DefaultMaxDepth caps nested computed evaluations per owner.
const DefaultMaxDepth = 10

var (
	// ErrCircular signals re-entry into a computed field already being
	// evaluated for the same owner.
	ErrCircular = errors.New("circular computed dependency")
	// ErrDepthExceeded signals that nested computed evaluations for one
	// owner exceeded the configured cap.
	ErrDepthExceeded = errors.New("computed recursion depth exceeded")
)

// Scope collects the fields read during one tracked evaluation.
type Scope struct {
	owner  any
	fields map[string]struct{}
}

// Owner returns the instance the scope tracks reads for.
func (s *Scope) Owner() any {
	return s.owner
}

// Fields returns the set of field names read under the scope.
func (s *Scope) Fields() map[string]struct{} {
	return s.fields
}

// Has reports whether the scope recorded a read of the field.
func (s *Scope) Has(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// Tracker maintains the stack of tracking scopes and the per-owner
// computed-evaluation guards.
type Tracker struct {
	stack     []*Scope
	computing map[any]map[string]struct{}
	depth     map[any]int
	maxDepth  int
}

// NewTracker creates a tracker with the default recursion cap.
func NewTracker() *Tracker {
	return &Tracker{
		computing: make(map[any]map[string]struct{}),
		depth:     make(map[any]int),
		maxDepth:  DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the per-owner nested-computation cap.
// Values below 1 are ignored.
func (t *Tracker) SetMaxDepth(n int) {
	if n >= 1 {
		t.maxDepth = n
	}
}

// StartTracking pushes a fresh scope for the owner and returns it.
func (t *Tracker) StartTracking(owner any) *Scope {
	scope := &Scope{owner: owner, fields: make(map[string]struct{})}
	t.stack = append(t.stack, scope)
	return scope
}

// EndTracking pops and returns the top scope, or nil if the stack is empty.
func (t *Tracker) EndTracking() *Scope {
	if len(t.stack) == 0 {
		return nil
	}
	scope := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	return scope
}

// RecordRead notes a field read against the top scope. The read is recorded
// only when the top scope belongs to the owner and the field is not itself
// mid-computation, which keeps a computed field's dependency set free of
// itself.
func (t *Tracker) RecordRead(owner any, field string) {
	if len(t.stack) == 0 {
		return
	}
	top := t.stack[len(t.stack)-1]
	if top.owner != owner {
		return
	}
	if _, busy := t.computing[owner][field]; busy {
		return
	}
	top.fields[field] = struct{}{}
}

// StartComputing guards entry into a computed evaluation. It returns
// ErrCircular when the field is already being evaluated for the owner, and
// ErrDepthExceeded when nested evaluations for the owner exceed the cap.
// On error the tracker state is unchanged and EndComputing must not be
// called.
func (t *Tracker) StartComputing(owner any, field string) error {
	fields := t.computing[owner]
	if _, busy := fields[field]; busy {
		return ErrCircular
	}
	if t.depth[owner]+1 > t.maxDepth {
		return ErrDepthExceeded
	}
	if fields == nil {
		fields = make(map[string]struct{})
		t.computing[owner] = fields
	}
	fields[field] = struct{}{}
	t.depth[owner]++
	return nil
}

// EndComputing unwinds a successful StartComputing.
func (t *Tracker) EndComputing(owner any, field string) {
	if fields, ok := t.computing[owner]; ok {
		delete(fields, field)
		if len(fields) == 0 {
			delete(t.computing, owner)
		}
	}
	if d := t.depth[owner]; d > 1 {
		t.depth[owner] = d - 1
	} else {
		delete(t.depth, owner)
	}
}

// Depth returns the current nested-computation count for the owner.
func (t *Tracker) Depth(owner any) int {
	return t.depth[owner]
}
