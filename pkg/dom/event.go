package dom

// Event is a dispatched occurrence on a node. Events bubble from the target
// up the parent chain until stopped or the root is reached.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string
	// Target is the node the event was dispatched at.
	Target Node
	// Data carries optional event payload.
	Data any

	stopped bool
}

// StopPropagation prevents the event from bubbling further.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// EventHandler is a callback invoked with a dispatched event.
type EventHandler func(*Event)

// Listener is a handle for a registered event handler.
type Listener struct {
	Type    string
	handler EventHandler
}

// AddListener registers a handler for an event type and returns a handle
// that can be passed to RemoveListener.
func (e *Element) AddListener(eventType string, handler EventHandler) *Listener {
	if handler == nil {
		return nil
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	l := &Listener{Type: eventType, handler: handler}
	e.listeners[eventType] = append(e.listeners[eventType], l)
	return l
}

// RemoveListener unregisters a previously added handler. Removing an unknown
// or nil listener is a no-op.
func (e *Element) RemoveListener(l *Listener) {
	if l == nil || e.listeners == nil {
		return
	}
	registered := e.listeners[l.Type]
	for i, candidate := range registered {
		if candidate == l {
			e.listeners[l.Type] = append(registered[:i], registered[i+1:]...)
			return
		}
	}
}

// Dispatch creates an event of the given type targeted at this element and
// dispatches it with bubbling.
func (e *Element) Dispatch(eventType string) {
	e.DispatchEvent(&Event{Type: eventType, Target: e})
}

// DispatchEvent invokes listeners for the event on this element, then bubbles
// it up the parent chain until stopped.
func (e *Element) DispatchEvent(evt *Event) {
	if evt == nil {
		return
	}
	if evt.Target == nil {
		evt.Target = e
	}
	var current Node = e
	for current != nil && !evt.stopped {
		if el, ok := current.(*Element); ok {
			// Copy so handlers may remove listeners mid-dispatch.
			registered := append([]*Listener(nil), el.listeners[evt.Type]...)
			for _, l := range registered {
				l.handler(evt)
				if evt.stopped {
					break
				}
			}
		}
		current = current.Parent()
	}
}
