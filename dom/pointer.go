package dom

// Native pointer event names dispatched by Document.Pointer.
const (
	PointerDown = "pointerdown"
	PointerMove = "pointermove"
	PointerUp   = "pointerup"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is the detail of a native pointer event.
type PointerEvent struct {
	Type   string
	X, Y   int
	Button Button
}

// Pointer injects a native pointer event. The event is dispatched at the
// topmost element under (X, Y), falling back to the body, and bubbles up to
// the root.
func (d *Document) Pointer(pe PointerEvent) bool {
	target := d.ElementFromPoint(pe.X, pe.Y)
	if target == nil {
		target = d.body
	}
	return target.DispatchEvent(&Event{
		Type:       pe.Type,
		Detail:     pe,
		Bubbles:    true,
		Cancelable: true,
	})
}
