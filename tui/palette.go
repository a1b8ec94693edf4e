package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var paletteEmptyStyle = lipgloss.NewStyle().Foreground(muted).PaddingLeft(2)

// Palette is a filterable column of draggables. Only items matching the
// filter are mounted.
type Palette struct {
	title     string
	width     int
	height    int
	textInput textinput.Model
	items     []*Draggable
	visible   []*Draggable
	query     string
}

// NewPalette creates a palette over items with an empty filter.
func NewPalette(title string, items []*Draggable) *Palette {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/ "
	ti.Focus()

	p := &Palette{title: title, textInput: ti, items: items}
	p.filter("")
	return p
}

// Visible returns the draggables that match the current filter, in
// display order.
func (p *Palette) Visible() []*Draggable { return p.visible }

// Query returns the current filter.
func (p *Palette) Query() string { return p.query }

// SetQuery replaces the filter.
func (p *Palette) SetQuery(q string) {
	p.textInput.SetValue(q)
	p.filter(q)
}

// Reset clears the filter.
func (p *Palette) Reset() { p.SetQuery("") }

// filter shows matches ordered by score and hides the rest.
func (p *Palette) filter(q string) {
	p.query = q
	p.visible = nil

	if q == "" {
		p.visible = append(p.visible, p.items...)
	} else {
		labels := make([]string, len(p.items))
		for i, d := range p.items {
			labels[i] = d.Label()
		}
		for _, m := range fuzzy.Find(q, labels) {
			p.visible = append(p.visible, p.items[m.Index])
		}
	}

	shown := make(map[*Draggable]bool, len(p.visible))
	for _, d := range p.visible {
		shown[d] = true
	}
	for _, d := range p.items {
		if shown[d] {
			d.Show()
		} else {
			d.Hide()
		}
	}
}

func (p *Palette) Init() tea.Cmd {
	return textinput.Blink
}

func (p *Palette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.textInput.Width = max(msg.Width-lipgloss.Width(p.textInput.Prompt)-1, 1)
		return p, nil
	case tea.MouseMsg:
		return p, nil
	}

	var cmd tea.Cmd
	p.textInput, cmd = p.textInput.Update(msg)
	if v := p.textInput.Value(); v != p.query {
		p.filter(v)
	}
	return p, cmd
}

func (p *Palette) View() string {
	out := []string{paneHeader(p.title), p.textInput.View()}
	if len(p.visible) == 0 {
		out = append(out, paletteEmptyStyle.Render("no matches"))
	}
	for _, d := range p.visible {
		out = append(out, d.View())
	}
	style := lipgloss.NewStyle()
	if p.width > 0 {
		style = style.Width(p.width).MaxWidth(p.width)
	}
	if p.height > 0 {
		style = style.Height(p.height).MaxHeight(p.height)
	}
	return style.Render(strings.Join(out, "\n"))
}

func (p *Palette) sync(bounds BoundsFunc) {
	for _, d := range p.items {
		d.sync(bounds)
	}
}
