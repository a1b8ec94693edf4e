package dom

// Event is a named signal dispatched at an element.
type Event struct {
	Type       string
	Detail     any
	Bubbles    bool
	Cancelable bool

	target           *Element
	currentTarget    *Element
	stopped          bool
	defaultPrevented bool
}

// NewCustomEvent returns a bubbling, cancelable event carrying detail.
func NewCustomEvent(name string, detail any) *Event {
	return &Event{Type: name, Detail: detail, Bubbles: true, Cancelable: true}
}

// Target is the element the event was dispatched at.
func (ev *Event) Target() *Element { return ev.target }

// CurrentTarget is the element whose listener is running.
func (ev *Event) CurrentTarget() *Element { return ev.currentTarget }

// StopPropagation prevents the event reaching further ancestors. Listeners
// on the current element still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault marks a cancelable event as canceled.
func (ev *Event) PreventDefault() {
	if ev.Cancelable {
		ev.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// Listener wraps an event callback. Its pointer is its identity: removing a
// listener requires the same *Listener that was added.
type Listener struct {
	fn func(*Event)
}

// NewListener wraps fn.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{fn: fn}
}

// AddEventListener registers l for events named name. Adding the same
// listener twice for one name is a no-op.
func (e *Element) AddEventListener(name string, l *Listener) {
	if l == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	for _, existing := range e.listeners[name] {
		if existing == l {
			return
		}
	}
	e.listeners[name] = append(e.listeners[name], l)
}

// RemoveEventListener undoes AddEventListener for the same name and
// listener.
func (e *Element) RemoveEventListener(name string, l *Listener) {
	ls := e.listeners[name]
	for i := range ls {
		if ls[i] == l {
			// Fresh slice: a dispatch in progress holds the old one.
			next := make([]*Listener, 0, len(ls)-1)
			next = append(next, ls[:i]...)
			next = append(next, ls[i+1:]...)
			if len(next) == 0 {
				delete(e.listeners, name)
			} else {
				e.listeners[name] = next
			}
			return
		}
	}
}

// ListenerCount returns how many listeners are registered for name.
func (e *Element) ListenerCount(name string) int {
	return len(e.listeners[name])
}

// DispatchEvent delivers ev to e and, if ev bubbles, to each ancestor up to
// the root. It returns false if a listener canceled the event.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.target = e
	for n := e; n != nil; n = n.parent {
		if ls := n.listeners[ev.Type]; len(ls) > 0 {
			ev.currentTarget = n
			for _, l := range ls {
				if n.isListening(ev.Type, l) {
					l.fn(ev)
				}
			}
		}
		if ev.stopped || !ev.Bubbles {
			break
		}
	}
	ev.currentTarget = nil
	return !ev.defaultPrevented
}

// isListening guards against calling a listener that an earlier listener
// removed during the same dispatch.
func (e *Element) isListening(name string, l *Listener) bool {
	for _, x := range e.listeners[name] {
		if x == l {
			return true
		}
	}
	return false
}
