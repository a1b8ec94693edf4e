// Package dnd implements drag sources and drop targets that coordinate only
// through key-addressed events on a dom.Document.
//
// A Source dispatches {key}DragEnter, {key}DragLeave and {key}Drop at
// whatever element lies under the pointer. A Target listening under the same
// key highlights itself and, on a drop, answers with {key}Dropped at the
// source's container. Neither side holds a reference to the other.
package dnd

import (
	"reflect"

	"github.com/rileylov/dragzone/dom"
)

// DefaultKey is the namespace used when none is configured.
const DefaultKey = "ddc"

// Event names, prefixed by a namespace key on the wire.
const (
	EventDragEnter = "DragEnter"
	EventDragLeave = "DragLeave"
	EventDrop      = "Drop"
	EventDropped   = "Dropped"
)

// DragPayload is the detail of enter, leave and drop events.
type DragPayload struct {
	// TargetKey is the key the receiving listener matched on.
	TargetKey string
	SessionID string
	Data      any

	DragElem      *dom.Element // ghost
	ContainerElem *dom.Element
	SourceElem    *dom.Element
}

// WithTargetKey implements bus.Keyed.
func (p DragPayload) WithTargetKey(key string) any {
	p.TargetKey = key
	return p
}

// HitPayload is a DragPayload plus the pointer position.
type HitPayload struct {
	DragPayload
	X, Y int
}

// WithTargetKey implements bus.Keyed.
func (p HitPayload) WithTargetKey(key string) any {
	p.TargetKey = key
	return p
}

// DropAck is what a Target sends back to the source's container after a
// drop.
type DropAck struct {
	TargetKey string
	DropData  any
	DragData  any
	DropElem  *dom.Element
}

// WithTargetKey implements bus.Keyed.
func (a DropAck) WithTargetKey(key string) any {
	a.TargetKey = key
	return a
}

// DragPayloadOf extracts the drag payload from an enter, leave or drop
// event.
func DragPayloadOf(ev *dom.Event) (DragPayload, bool) {
	switch p := ev.Detail.(type) {
	case DragPayload:
		return p, true
	case HitPayload:
		return p.DragPayload, true
	}
	return DragPayload{}, false
}

// HitPayloadOf extracts the hit payload from a drop event.
func HitPayloadOf(ev *dom.Event) (HitPayload, bool) {
	p, ok := ev.Detail.(HitPayload)
	return p, ok
}

// DropAckOf extracts the acknowledgment from a dropped event.
func DropAckOf(ev *dom.Event) (DropAck, bool) {
	a, ok := ev.Detail.(DropAck)
	return a, ok
}

// sameData reports whether two drag data values are the same value, using
// reference identity for maps, slices, pointers, funcs and channels.
func sameData(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
