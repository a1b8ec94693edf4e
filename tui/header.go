// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dom"
)

var (
	headerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#333", Dark: "#FFF"}).
			Height(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight).
			Background(subtle)

	headerButtonStyle = lipgloss.NewStyle().
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}).
				Margin(0, 1).
				Padding(0, 1)

	// Locked namespaces are struck through.
	headerButtonLockedStyle = headerButtonStyle.
				Background(muted).
				Strikethrough(true)
)

// header shows the title and one button per target key. Clicking a button
// locks or unlocks dragging for that key.
type header struct {
	id       string
	width    int
	title    string
	buttons  []*headerButton
	onToggle func(key string)
}

type headerButton struct {
	key    string
	locked bool
	el     *dom.Element
}

func newHeader(doc *dom.Document, title string, keys []string, onToggle func(string)) *header {
	h := &header{
		id:       zone.NewPrefix(),
		title:    title,
		onToggle: onToggle,
	}
	for i, key := range keys {
		b := &headerButton{key: key, el: doc.CreateElement(h.buttonID(i))}
		b.el.AddEventListener(dom.PointerDown, dom.NewListener(func(ev *dom.Event) {
			pe, ok := ev.Detail.(dom.PointerEvent)
			if !ok || pe.Button != dom.ButtonPrimary {
				return
			}
			h.toggle(b)
		}))
		doc.Body().AppendChild(b.el)
		h.buttons = append(h.buttons, b)
	}
	return h
}

func (h *header) toggle(b *headerButton) {
	b.locked = !b.locked
	if h.onToggle != nil {
		h.onToggle(b.key)
	}
}

// locked reports whether key is locked.
func (h *header) locked(key string) bool {
	for _, b := range h.buttons {
		if b.key == key {
			return b.locked
		}
	}
	return false
}

func (h *header) Init() tea.Cmd {
	return nil
}

func (h *header) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		h.width = msg.Width
	}
	return h, nil
}

func (h *header) View() string {
	var buttonViews []string
	for i, b := range h.buttons {
		style := headerButtonStyle
		if b.locked {
			style = headerButtonLockedStyle
		}
		buttonViews = append(buttonViews, zone.Mark(h.buttonID(i), style.Render(b.key)))
	}
	buttonsSection := lipgloss.JoinHorizontal(lipgloss.Center, buttonViews...)
	buttonsWidth := lipgloss.Width(buttonsSection)

	// Buttons keep their width; the title gives way.
	titleText := ansi.Truncate(h.title, max(h.width-buttonsWidth-2, 0), "…")
	title := titleStyle.Render(titleText)

	spacingWidth := max(h.width-lipgloss.Width(title)-buttonsWidth-2, 0)
	spacing := lipgloss.NewStyle().Background(subtle).Width(spacingWidth).Render("")
	content := lipgloss.JoinHorizontal(lipgloss.Center, title, spacing, buttonsSection)
	return headerStyle.Width(h.width).Render(content)
}

func (h *header) sync(bounds BoundsFunc) {
	for i, b := range h.buttons {
		syncElement(bounds, h.buttonID(i), b.el)
	}
}

func (h *header) buttonID(index int) string {
	return h.id + "key_" + strconv.Itoa(index)
}
