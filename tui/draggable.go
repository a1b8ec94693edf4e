package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

// Draggable renders a label as a drag source.
type Draggable struct {
	id    string
	label string
	src   *dnd.Source
}

// NewDraggable creates a draggable whose container is attached to the
// document body. It is not mounted.
func NewDraggable(doc *dom.Document, label string, cfg dnd.SourceConfig) *Draggable {
	d := &Draggable{id: zone.NewPrefix() + "drag", label: label}
	d.src = dnd.NewSource(doc, d.id, cfg)
	doc.Body().AppendChild(d.src.Container())
	return d
}

// ID returns the zone and container element id.
func (d *Draggable) ID() string { return d.id }

// Label returns the displayed text.
func (d *Draggable) Label() string { return d.label }

// Source returns the underlying drag source.
func (d *Draggable) Source() *dnd.Source { return d.src }

// Show mounts the draggable and puts it back in layout.
func (d *Draggable) Show() {
	d.src.Container().SetDisplayNone(false)
	d.src.Mount()
}

// Hide unmounts the draggable and removes it from layout.
func (d *Draggable) Hide() {
	d.src.Unmount()
	d.src.Container().SetDisplayNone(true)
}

// Visible reports whether the draggable is in layout.
func (d *Draggable) Visible() bool {
	return !d.src.Container().DisplayNone()
}

func (d *Draggable) content() string {
	return itemStyle.Render("⋮ " + d.label)
}

// View renders the source content according to the display mode.
func (d *Draggable) View() string {
	content := d.content()
	switch d.src.DisplayMode() {
	case dnd.DisplayDisappeared:
		return ""
	case dnd.DisplayHidden:
		content = blank(lipgloss.Width(content), lipgloss.Height(content))
	}
	return zone.Mark(d.id, content)
}

// GhostView renders what follows the pointer. It is empty unless dragging.
func (d *Draggable) GhostView() string {
	if !d.src.Dragging() {
		return ""
	}
	return d.ghostContent()
}

func (d *Draggable) ghostContent() string {
	cfg := d.src.Config()
	if cfg.CustomGhost != "" {
		return cfg.CustomGhost
	}
	style := ghostStyle
	if cfg.Opacity < 1 {
		style = style.Faint(true)
	}
	return style.Render(d.label)
}

// sync refreshes element bounds from the rendered zone and sizes the ghost
// from its rendered view.
func (d *Draggable) sync(bounds BoundsFunc) {
	syncElement(bounds, d.id, d.src.Container(), d.src.SourceElement())

	ghost := d.src.Ghost()
	b := ghost.Bounds()
	gv := d.ghostContent()
	b.Width, b.Height = lipgloss.Width(gv), lipgloss.Height(gv)
	ghost.SetBounds(b)
}

func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
