// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

const (
	handleWidth   = 1    // Width of the drag handle in characters
	minWidthChars = 20   // Minimum width in characters for either pane
	maxProportion = 0.70 // Maximum proportion (70%) for either pane
)

var (
	handleStyle = lipgloss.NewStyle().
			Width(handleWidth).
			Background(subtle).
			Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#585858"})

	// Style for the handle while it is being dragged
	handleActiveStyle = handleStyle.
				Background(highlight).
				Foreground(lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"})
)

// Split lays out two panes side by side with a draggable handle between
// them. The handle is an x-only drag source in a namespace of its own, so
// no drop target ever hears it.
type Split struct {
	id          string
	width       int
	height      int
	left        tea.Model
	right       tea.Model
	share       float64 // Left pane's share of the width
	handle      *dnd.Source
	lastX       int
}

// NewSplit creates a split with the left pane taking leftProportion of the
// width.
func NewSplit(doc *dom.Document, left, right tea.Model, leftProportion float64, base dnd.SourceConfig) *Split {
	s := &Split{
		id:          zone.NewPrefix(),
		left:        left,
		right:       right,
		share:       min(max(leftProportion, 0), 1),
	}

	cfg := base
	cfg.TargetKeys = []string{s.id + "split"}
	cfg.DragData = nil
	cfg.XOnly, cfg.YOnly = true, false
	cfg.DragClone = true
	cfg.OffsetX, cfg.OffsetY, cfg.EdgeMargin = 0, 0, 0
	cfg.OnDragStart = func(any) { s.lastX = s.handle.State().Left }
	cfg.OnDrag = func(_ any, _ *dom.Element, x, _ int, _ func()) {
		if delta := x - s.lastX; delta != 0 {
			s.lastX = x
			s.moveBoundary(delta)
			s.resizeChildren()
		}
	}
	cfg.OnDragEnd = nil
	cfg.OnDrop = nil
	s.handle = dnd.NewSource(doc, s.handleID(), cfg)
	doc.Body().AppendChild(s.handle.Container())
	s.handle.Mount()
	return s
}

// Handle returns the handle's drag source.
func (s *Split) Handle() *dnd.Source { return s.handle }

// Proportions returns the width share of the left and right panes.
func (s *Split) Proportions() (left, right float64) {
	return s.share, 1 - s.share
}

func (s *Split) Init() tea.Cmd {
	return nil
}

func (s *Split) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		cmds = append(cmds, s.resizeChildren()...)
	case tea.MouseMsg:
		// Pointer handling happens on the document.
	default:
		var cmd tea.Cmd
		s.left, cmd = s.left.Update(msg)
		cmds = append(cmds, cmd)
		s.right, cmd = s.right.Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

func (s *Split) View() string {
	leftW, rightW := s.paneWidths()
	leftView := lipgloss.NewStyle().Width(leftW).Height(s.height).MaxHeight(s.height).Render(s.left.View())
	rightView := lipgloss.NewStyle().Width(rightW).Height(s.height).MaxHeight(s.height).Render(s.right.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, leftView, s.renderHandle(), rightView)
}

func (s *Split) sync(bounds BoundsFunc) {
	syncElement(bounds, s.handleID(), s.handle.Container(), s.handle.SourceElement())
}

func (s *Split) paneWidths() (int, int) {
	available := s.width - handleWidth
	if available < 0 {
		available = 0
	}
	leftW := int(float64(available) * s.share)
	return leftW, available - leftW
}

func (s *Split) resizeChildren() []tea.Cmd {
	leftW, rightW := s.paneWidths()
	var lcmd, rcmd tea.Cmd
	s.left, lcmd = s.left.Update(tea.WindowSizeMsg{Width: leftW, Height: s.height})
	s.right, rcmd = s.right.Update(tea.WindowSizeMsg{Width: rightW, Height: s.height})
	return []tea.Cmd{lcmd, rcmd}
}

func (s *Split) handleID() string {
	return s.id + "handle"
}

// renderHandle renders the handle, highlighted while dragged.
func (s *Split) renderHandle() string {
	style := handleStyle
	if s.handle.Active() {
		style = handleActiveStyle
	}
	rows := make([]string, max(s.height, 1))
	for i := range rows {
		rows[i] = "│"
	}
	return zone.Mark(s.handleID(), style.Render(strings.Join(rows, "\n")))
}

// moveBoundary moves the boundary by deltaX cells, keeping each pane at
// least minWidthChars wide and at most maxProportion.
func (s *Split) moveBoundary(deltaX int) {
	available := s.width - handleWidth
	if available <= 0 {
		return
	}
	lo, hi := shareBounds(available)
	s.share = min(max(s.share+float64(deltaX)/float64(available), lo), hi)
}

// shareBounds returns the range the left share may take. Both panes obey the
// same limits, so the right pane's limits mirror onto the left share.
func shareBounds(available int) (lo, hi float64) {
	minShare := float64(minWidthChars) / float64(available)
	lo = max(minShare, 1-maxProportion)
	hi = min(maxProportion, 1-minShare)
	if lo > hi {
		// Too narrow for both minimums; split evenly.
		return 0.5, 0.5
	}
	return lo, hi
}
