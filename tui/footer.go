// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var (
	footerStyle = lipgloss.NewStyle().
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#AAA"}).
			Height(1).
			MaxHeight(1)

	debugStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999", Dark: "#666"})
)

type keyMap struct {
	Quit        key.Binding
	ToggleZones key.Binding
	ClearFilter key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleZones, k.ClearFilter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ToggleZones: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "mouse"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
}

type footer struct {
	width  int
	help   help.Model
	x, y   int
	target string
	status string
}

func newFooter() *footer {
	return &footer{help: help.New()}
}

func (f *footer) Init() tea.Cmd {
	return nil
}

func (f *footer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		f.width = msg.Width
		f.help.Width = msg.Width
	}
	return f, nil
}

func (f *footer) View() string {
	mouse := "on"
	if !zone.Enabled() {
		mouse = "off"
	}
	target := f.target
	if target == "" {
		target = "-"
	}
	info := fmt.Sprintf("%d,%d | over: %s | mouse: %s", f.x, f.y, target, mouse)
	if f.status != "" {
		info += " | " + f.status
	}
	content := lipgloss.JoinHorizontal(lipgloss.Top, debugStyle.Render(info+" | "), f.help.View(keys))
	return footerStyle.Width(f.width).MaxWidth(f.width).Render(content)
}
