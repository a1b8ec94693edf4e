package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(d *Document, parent *Element, id string, r Rect) *Element {
	e := d.CreateElement(id)
	e.SetBounds(r)
	parent.AppendChild(e)
	return e
}

func TestElementFromPointTopmost(t *testing.T) {
	d := NewDocument(80, 24)
	a := box(d, d.Body(), "a", Rect{X: 0, Y: 0, Width: 10, Height: 5})
	b := box(d, d.Body(), "b", Rect{X: 5, Y: 0, Width: 10, Height: 5})
	inner := box(d, a, "inner", Rect{X: 1, Y: 1, Width: 2, Height: 2})

	assert.Equal(t, b, d.ElementFromPoint(6, 1), "later sibling paints over earlier")
	assert.Equal(t, inner, d.ElementFromPoint(1, 1))
	assert.Equal(t, a, d.ElementFromPoint(0, 4))
	assert.Equal(t, d.Body(), d.ElementFromPoint(40, 20))
	assert.Nil(t, d.ElementFromPoint(200, 200))
}

func TestElementFromPointZIndex(t *testing.T) {
	d := NewDocument(80, 24)
	ghost := box(d, d.Body(), "ghost", Rect{X: 0, Y: 0, Width: 10, Height: 5})
	ghostText := box(d, ghost, "ghost-text", Rect{X: 0, Y: 0, Width: 4, Height: 1})
	under := box(d, d.Body(), "under", Rect{X: 0, Y: 0, Width: 10, Height: 5})

	ghost.SetZIndex(10)
	assert.Equal(t, ghostText, d.ElementFromPoint(1, 0))
	assert.Equal(t, ghost, d.ElementFromPoint(8, 3))

	ghost.SetZIndex(-1)
	assert.Equal(t, under, d.ElementFromPoint(1, 0))

	under.SetDisplayNone(true)
	assert.Equal(t, d.Body(), d.ElementFromPoint(1, 0), "negative z paints below the body")
}

func TestElementFromPointSkipsHiddenSubtrees(t *testing.T) {
	d := NewDocument(80, 24)
	outer := box(d, d.Body(), "outer", Rect{Width: 10, Height: 5})
	child := box(d, outer, "child", Rect{Width: 2, Height: 2})

	outer.SetHidden(true)
	assert.Equal(t, d.Body(), d.ElementFromPoint(1, 1))

	outer.SetHidden(false)
	outer.SetDisplayNone(true)
	assert.Equal(t, d.Body(), d.ElementFromPoint(1, 1))

	outer.SetDisplayNone(false)
	assert.Equal(t, child, d.ElementFromPoint(1, 1))
}

func TestContains(t *testing.T) {
	d := NewDocument(10, 10)
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	a.AppendChild(b)
	d.Body().AppendChild(a)

	assert.True(t, a.Contains(a))
	assert.True(t, a.Contains(b))
	assert.False(t, b.Contains(a))
	assert.True(t, d.Root().Contains(b))
	assert.False(t, a.Contains(nil))
}

func TestDispatchBubbles(t *testing.T) {
	d := NewDocument(10, 10)
	parent := d.CreateElement("parent")
	child := d.CreateElement("child")
	parent.AppendChild(child)
	d.Body().AppendChild(parent)

	var seen []string
	record := func(name string) *Listener {
		return NewListener(func(ev *Event) {
			assert.Equal(t, child, ev.Target())
			seen = append(seen, name+"@"+ev.CurrentTarget().ID())
		})
	}
	child.AddEventListener("ping", record("c"))
	parent.AddEventListener("ping", record("p"))
	d.Root().AddEventListener("ping", record("r"))

	require.True(t, child.DispatchEvent(NewCustomEvent("ping", nil)))
	assert.Equal(t, []string{"c@child", "p@parent", "r@html"}, seen)

	seen = nil
	child.DispatchEvent(&Event{Type: "ping"})
	assert.Equal(t, []string{"c@child"}, seen, "non-bubbling events stay on the target")
}

func TestDispatchStopAndCancel(t *testing.T) {
	d := NewDocument(10, 10)
	child := d.CreateElement("child")
	d.Body().AppendChild(child)

	reached := false
	d.Body().AddEventListener("ping", NewListener(func(*Event) { reached = true }))
	child.AddEventListener("ping", NewListener(func(ev *Event) {
		ev.StopPropagation()
		ev.PreventDefault()
	}))

	assert.False(t, child.DispatchEvent(NewCustomEvent("ping", nil)))
	assert.False(t, reached)
}

func TestListenerRemovalDuringDispatch(t *testing.T) {
	d := NewDocument(10, 10)
	el := d.CreateElement("el")

	var calls []string
	var second *Listener
	first := NewListener(func(*Event) {
		calls = append(calls, "first")
		el.RemoveEventListener("ping", second)
	})
	second = NewListener(func(*Event) { calls = append(calls, "second") })
	var once *Listener
	once = NewListener(func(*Event) {
		calls = append(calls, "once")
		el.RemoveEventListener("ping", once)
	})

	el.AddEventListener("ping", once)
	el.AddEventListener("ping", first)
	el.AddEventListener("ping", second)
	el.AddEventListener("ping", first)
	require.Equal(t, 3, el.ListenerCount("ping"))

	el.DispatchEvent(NewCustomEvent("ping", nil))
	el.DispatchEvent(NewCustomEvent("ping", nil))
	assert.Equal(t, []string{"once", "first", "first"}, calls)
	assert.Equal(t, 1, el.ListenerCount("ping"))
}

func TestPointerFallsBackToBody(t *testing.T) {
	d := NewDocument(10, 10)
	var got PointerEvent
	var target *Element
	d.Root().AddEventListener(PointerDown, NewListener(func(ev *Event) {
		got = ev.Detail.(PointerEvent)
		target = ev.Target()
	}))

	d.Pointer(PointerEvent{Type: PointerDown, X: 50, Y: 50, Button: ButtonPrimary})
	assert.Equal(t, d.Body(), target)
	assert.Equal(t, 50, got.X)
	assert.Equal(t, ButtonPrimary, got.Button)
}

func TestReleaseDetaches(t *testing.T) {
	d := NewDocument(10, 10)
	el := box(d, d.Body(), "el", Rect{Width: 3, Height: 3})
	require.Equal(t, el, d.GetElementByID("el"))

	d.Release(el)
	assert.Nil(t, d.GetElementByID("el"))
	assert.Nil(t, el.Parent())
	assert.Equal(t, d.Body(), d.ElementFromPoint(1, 1))
}
