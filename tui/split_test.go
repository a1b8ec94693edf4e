package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

// pane records the last size it was given.
type pane struct {
	width, height int
}

func (p *pane) Init() tea.Cmd { return nil }

func (p *pane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.width, p.height = msg.Width, msg.Height
	}
	return p, nil
}

func (p *pane) View() string { return "" }

func newTestSplit(t *testing.T) (*Split, *dom.Document, *pane, *pane) {
	t.Helper()
	doc := dom.NewDocument(81, 10)
	left, right := &pane{}, &pane{}
	s := NewSplit(doc, left, right, 0.5, dnd.DefaultSourceConfig())
	s.Update(tea.WindowSizeMsg{Width: 81, Height: 10})
	s.sync(fakeBounds{s.handleID(): {X: 40, Y: 0, Width: 1, Height: 10}}.get)
	return s, doc, left, right
}

func pointer(doc *dom.Document, typ string, x, y int) {
	doc.Pointer(dom.PointerEvent{Type: typ, X: x, Y: y, Button: dom.ButtonPrimary})
}

func TestSplitInitialSizes(t *testing.T) {
	_, _, left, right := newTestSplit(t)
	assert.Equal(t, 40, left.width)
	assert.Equal(t, 40, right.width)
	assert.Equal(t, 10, left.height)
}

func TestSplitHandleDragResizes(t *testing.T) {
	s, doc, left, right := newTestSplit(t)

	pointer(doc, dom.PointerDown, 40, 5)
	pointer(doc, dom.PointerMove, 50, 7)
	l, r := s.Proportions()
	assert.InDelta(t, 0.625, l, 1e-9)
	assert.InDelta(t, 0.375, r, 1e-9)
	assert.Equal(t, 50, left.width)
	assert.Equal(t, 30, right.width)
	assert.True(t, s.Handle().Active())
	assert.Equal(t, 5, s.Handle().State().Top)

	pointer(doc, dom.PointerMove, 79, 5)
	l, r = s.Proportions()
	assert.InDelta(t, maxProportion, l, 1e-9)
	assert.InDelta(t, 1-maxProportion, r, 1e-9)

	pointer(doc, dom.PointerUp, 79, 5)
	assert.False(t, s.Handle().Active())
}

func TestSplitClampsLeftward(t *testing.T) {
	s, doc, left, _ := newTestSplit(t)

	pointer(doc, dom.PointerDown, 40, 5)
	pointer(doc, dom.PointerMove, 2, 5)
	l, r := s.Proportions()
	// The right pane's cap binds before the left pane's minimum width.
	assert.InDelta(t, 1-maxProportion, l, 1e-9)
	assert.GreaterOrEqual(t, left.width, minWidthChars)
	assert.InDelta(t, 1, l+r, 1e-9)
}

func TestSplitHandleIsPrivate(t *testing.T) {
	s, doc, _, _ := newTestSplit(t)

	tgt := dnd.NewTarget(doc, "bin", dnd.DefaultTargetConfig())
	tgt.Element().SetBounds(dom.Rect{X: 45, Y: 0, Width: 20, Height: 10})
	doc.Body().AppendChild(tgt.Element())
	tgt.Mount()

	pointer(doc, dom.PointerDown, 40, 5)
	pointer(doc, dom.PointerMove, 50, 5)
	require.True(t, s.Handle().Dragging())
	assert.False(t, tgt.Highlighted())
	pointer(doc, dom.PointerUp, 50, 5)
	assert.False(t, tgt.Highlighted())
}

func TestSplitShareBounds(t *testing.T) {
	tests := []struct {
		name      string
		available int
		lo, hi    float64
	}{
		{"cap binds", 80, 1 - maxProportion, maxProportion},
		{"minimum binds", 50, 0.4, 0.6},
		{"too narrow", 30, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := shareBounds(tt.available)
			assert.InDelta(t, tt.lo, lo, 1e-9)
			assert.InDelta(t, tt.hi, hi, 1e-9)
		})
	}
}
