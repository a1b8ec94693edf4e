package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/dragzone/dom"
)

func newTestPalette(t *testing.T, labels ...string) (*Palette, *dom.Document, fakeBounds) {
	t.Helper()
	doc := dom.NewDocument(80, 24)
	bounds := fakeBounds{}
	var items []*Draggable
	for i, l := range labels {
		d := NewDraggable(doc, l, cellSource())
		bounds[d.ID()] = dom.Rect{X: 2, Y: 3 + i, Width: 10, Height: 1}
		items = append(items, d)
	}
	p := NewPalette("Items", items)
	p.sync(bounds.get)
	return p, doc, bounds
}

func labelsOf(ds []*Draggable) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Label())
	}
	return out
}

func TestPaletteShowsEverythingUnfiltered(t *testing.T) {
	p, doc, _ := newTestPalette(t, "apple", "banana", "cherry")
	assert.Equal(t, []string{"apple", "banana", "cherry"}, labelsOf(p.Visible()))

	doc.Pointer(dom.PointerEvent{Type: dom.PointerDown, X: 3, Y: 4, Button: dom.ButtonPrimary})
	assert.True(t, p.items[1].Source().Active())
}

func TestPaletteFilterUnmountsNonMatches(t *testing.T) {
	p, doc, bounds := newTestPalette(t, "apple", "banana", "cherry")

	p.SetQuery("ch")
	require.Equal(t, []string{"cherry"}, labelsOf(p.Visible()))
	banana := p.items[1]
	assert.False(t, banana.Visible())

	p.sync(bounds.get)
	assert.NotEqual(t, banana.Source().SourceElement(), doc.ElementFromPoint(3, 4))

	doc.Pointer(dom.PointerEvent{Type: dom.PointerDown, X: 3, Y: 4, Button: dom.ButtonPrimary})
	assert.False(t, banana.Source().Active())

	p.Reset()
	assert.True(t, banana.Visible())
	doc.Pointer(dom.PointerEvent{Type: dom.PointerDown, X: 3, Y: 4, Button: dom.ButtonPrimary})
	assert.True(t, banana.Source().Active())
}

func TestPaletteFilterAbortsDragOfHiddenItem(t *testing.T) {
	p, doc, _ := newTestPalette(t, "apple", "banana")
	apple := p.items[0]

	doc.Pointer(dom.PointerEvent{Type: dom.PointerDown, X: 3, Y: 3, Button: dom.ButtonPrimary})
	doc.Pointer(dom.PointerEvent{Type: dom.PointerMove, X: 30, Y: 10, Button: dom.ButtonPrimary})
	require.True(t, apple.Source().Dragging())

	p.SetQuery("ban")
	assert.False(t, apple.Source().Active())
	assert.Equal(t, 0, doc.Root().ListenerCount(dom.PointerMove))
}

func TestPaletteTyping(t *testing.T) {
	p, _, _ := newTestPalette(t, "apple", "banana", "cherry")

	for _, r := range "nan" {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "nan", p.Query())
	assert.Equal(t, []string{"banana"}, labelsOf(p.Visible()))
}

func TestPaletteNoMatches(t *testing.T) {
	p, _, _ := newTestPalette(t, "apple")
	p.SetQuery("zzz")
	assert.Empty(t, p.Visible())
	assert.Contains(t, p.View(), "no matches")
}
