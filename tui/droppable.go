package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

// Droppable is a bordered bin that accepts drops.
type Droppable struct {
	id    string
	title string
	items []string
	// session is the drag session whose drop was last recorded.
	session string
	width   int
	height  int
	tgt     *dnd.Target
}

// NewDroppable creates a mounted bin whose element is attached to the
// document body.
func NewDroppable(doc *dom.Document, title string, cfg dnd.TargetConfig) *Droppable {
	d := &Droppable{id: zone.NewPrefix() + "drop", title: title}
	d.tgt = dnd.NewTarget(doc, d.id, cfg)
	doc.Body().AppendChild(d.tgt.Element())
	d.tgt.Mount()
	return d
}

// ID returns the zone and element id.
func (d *Droppable) ID() string { return d.id }

// Title returns the bin title.
func (d *Droppable) Title() string { return d.title }

// Target returns the underlying drop target.
func (d *Droppable) Target() *dnd.Target { return d.tgt }

// Items returns the labels dropped so far, oldest first.
func (d *Droppable) Items() []string { return d.items }

// Add appends a dropped label.
func (d *Droppable) Add(label string) { d.items = append(d.items, label) }

// claim reports whether a drop from session is new to the bin. A drop that
// matches several shared keys arrives once per key.
func (d *Droppable) claim(session string) bool {
	if session != "" && session == d.session {
		return false
	}
	d.session = session
	return true
}

// SetSize sets the outer size of the bin, border included.
func (d *Droppable) SetSize(width, height int) {
	d.width, d.height = width, height
}

func (d *Droppable) View() string {
	style := binStyle
	if d.tgt.Highlighted() {
		style = binActiveStyle
	}
	innerW := max(d.width-2, 1)
	innerH := max(d.height-2, 1)

	lines := []string{binTitleStyle.Render(d.title)}
	items := d.items
	// Keep the newest drops when the bin overflows.
	if room := innerH - 1; len(items) > room {
		items = items[len(items)-max(room, 0):]
	}
	for _, it := range items {
		lines = append(lines, binItemStyle.Render("• "+it))
	}
	content := lipgloss.NewStyle().MaxWidth(innerW).Render(strings.Join(lines, "\n"))
	return zone.Mark(d.id, style.Width(innerW).Height(innerH).Render(content))
}

func (d *Droppable) sync(bounds BoundsFunc) {
	syncElement(bounds, d.id, d.tgt.Element())
}
