// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dom"
)

// MouseEvent translates a bubbletea mouse message into a native pointer
// event. Wheel events and unknown actions are not pointer events.
func MouseEvent(msg tea.MouseMsg) (dom.PointerEvent, bool) {
	button, ok := pointerButton(msg.Button)
	if !ok {
		return dom.PointerEvent{}, false
	}
	pe := dom.PointerEvent{X: msg.X, Y: msg.Y, Button: button}
	switch msg.Action {
	case tea.MouseActionPress:
		if button == dom.ButtonNone {
			return dom.PointerEvent{}, false
		}
		pe.Type = dom.PointerDown
	case tea.MouseActionMotion:
		pe.Type = dom.PointerMove
	case tea.MouseActionRelease:
		pe.Type = dom.PointerUp
	default:
		return dom.PointerEvent{}, false
	}
	return pe, true
}

func pointerButton(b tea.MouseButton) (dom.Button, bool) {
	switch b {
	case tea.MouseButtonNone:
		return dom.ButtonNone, true
	case tea.MouseButtonLeft:
		return dom.ButtonPrimary, true
	case tea.MouseButtonMiddle:
		return dom.ButtonMiddle, true
	case tea.MouseButtonRight:
		return dom.ButtonSecondary, true
	}
	return dom.ButtonNone, false
}

// BoundsFunc reports the on-screen box of a marked zone.
type BoundsFunc func(id string) (dom.Rect, bool)

// ZoneBounds reads bounds from the global bubblezone manager.
func ZoneBounds(id string) (dom.Rect, bool) {
	z := zone.Get(id)
	if z == nil || z.IsZero() {
		return dom.Rect{}, false
	}
	return dom.Rect{
		X:      z.StartX,
		Y:      z.StartY,
		Width:  z.EndX - z.StartX + 1,
		Height: z.EndY - z.StartY + 1,
	}, true
}

// syncElement copies a zone's box onto an element, clearing it when the
// zone was not rendered.
func syncElement(bounds BoundsFunc, id string, els ...*dom.Element) {
	r, ok := bounds(id)
	if !ok {
		r = dom.Rect{}
	}
	for _, el := range els {
		el.SetBounds(r)
	}
}
