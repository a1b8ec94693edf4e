// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package tui

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rileylov/dragzone/dnd"
	"github.com/rileylov/dragzone/dom"
)

// Item describes a draggable entry. Data defaults to Label.
type Item struct {
	Label string
	Keys  []string
	Data  any
}

// Bin describes a drop target. Clipboard bins copy the dropped data.
type Bin struct {
	Name      string
	Keys      []string
	Clipboard bool
}

// Options configures a Board.
type Options struct {
	Title string
	Items []Item
	Bins  []Bin

	// Source and Target are the base configs for every item and bin. Keys,
	// data and callbacks are filled in per entry.
	Source dnd.SourceConfig
	Target dnd.TargetConfig

	// Bounds resolves rendered zones. Defaults to ZoneBounds.
	Bounds BoundsFunc
	// Clipboard receives the data of items dropped on clipboard bins.
	Clipboard func(string) error

	Logger   *slog.Logger
	Recorder dnd.Recorder
}

// Board is the root model: a header of key toggles, a split with the item
// palette on the left and the bins on the right, and a footer.
type Board struct {
	height int
	width  int

	doc        *dom.Document
	bounds     BoundsFunc
	clipboard  func(string) error
	log        *slog.Logger
	header     *header
	footer     *footer
	palette    *Palette
	bins       *binPane
	split      *Split
	draggables []*Draggable
	byID       map[string]*Draggable
	binByID    map[string]*Droppable
}

// NewBoard builds the document, its sources and targets.
func NewBoard(opts Options) *Board {
	if opts.Title == "" {
		opts.Title = "dragzone"
	}
	if opts.Bounds == nil {
		opts.Bounds = ZoneBounds
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &Board{
		doc:       dom.NewDocument(0, 0),
		bounds:    opts.Bounds,
		clipboard: opts.Clipboard,
		log:       logger,
		footer:    newFooter(),
		byID:      make(map[string]*Draggable),
		binByID:   make(map[string]*Droppable),
	}

	var allKeys []string
	for _, it := range opts.Items {
		cfg := opts.Source
		if len(it.Keys) > 0 {
			cfg.TargetKeys = it.Keys
		}
		cfg.DragData = it.Data
		if cfg.DragData == nil {
			cfg.DragData = it.Label
		}
		cfg.Logger, cfg.Recorder = logger, opts.Recorder
		cfg.OnDrop = b.ackHandler(it.Label, opts.Source.OnDrop)

		d := NewDraggable(b.doc, it.Label, cfg)
		b.draggables = append(b.draggables, d)
		b.byID[d.ID()] = d
		for _, k := range d.Source().Config().TargetKeys {
			if !slices.Contains(allKeys, k) {
				allKeys = append(allKeys, k)
			}
		}
	}

	var bins []*Droppable
	for _, bin := range opts.Bins {
		bin := bin
		cfg := opts.Target
		if len(bin.Keys) > 0 {
			cfg.TargetKeys = bin.Keys
		}
		cfg.DropData = bin.Name
		cfg.Logger, cfg.Recorder = logger, opts.Recorder

		var dr *Droppable
		hit := opts.Target.OnHit
		cfg.OnHit = func(ev *dom.Event) {
			b.handleHit(dr, bin, ev)
			if hit != nil {
				hit(ev)
			}
		}
		dr = NewDroppable(b.doc, bin.Name, cfg)
		bins = append(bins, dr)
		b.binByID[dr.ID()] = dr
	}

	b.header = newHeader(b.doc, opts.Title, allKeys, b.lock)
	b.palette = NewPalette("Items", b.draggables)
	b.bins = &binPane{bins: bins}
	handle := opts.Source
	handle.Logger, handle.Recorder = logger, opts.Recorder
	b.split = NewSplit(b.doc, b.palette, b.bins, 0.5, handle)
	return b
}

// Document returns the board's element tree.
func (b *Board) Document() *dom.Document { return b.doc }

// Draggables returns every item, filtered or not.
func (b *Board) Draggables() []*Draggable { return b.draggables }

// Droppables returns the bins.
func (b *Board) Droppables() []*Droppable { return b.bins.bins }

// Palette returns the item palette.
func (b *Board) Palette() *Palette { return b.palette }

// Split returns the pane split.
func (b *Board) Split() *Split { return b.split }

// Status returns the footer status line.
func (b *Board) Status() string { return b.footer.status }

func (b *Board) ackHandler(label string, next func(*dom.Event)) func(*dom.Event) {
	return func(ev *dom.Event) {
		if ack, ok := dnd.DropAckOf(ev); ok {
			b.footer.status = fmt.Sprintf("%s → %v", label, ack.DropData)
		}
		if next != nil {
			next(ev)
		}
	}
}

func (b *Board) handleHit(dr *Droppable, bin Bin, ev *dom.Event) {
	hit, ok := dnd.HitPayloadOf(ev)
	if !ok || !dr.claim(hit.SessionID) {
		return
	}
	label := fmt.Sprint(hit.Data)
	if hit.ContainerElem != nil {
		if d, ok := b.byID[hit.ContainerElem.ID()]; ok {
			label = d.Label()
		}
	}
	dr.Add(label)

	if !bin.Clipboard || b.clipboard == nil {
		return
	}
	if err := b.clipboard(fmt.Sprint(hit.Data)); err != nil {
		b.log.Error("clipboard write failed", slog.Any("error", err))
		b.footer.status = fmt.Sprintf("couldn't write to clipboard: %v", err)
		return
	}
	b.footer.status = "copied " + label
}

// lock applies a header toggle to the items carrying key. An item cannot
// be dragged while any of its keys is locked.
func (b *Board) lock(key string) {
	for _, d := range b.draggables {
		keys := d.Source().Config().TargetKeys
		if !slices.Contains(keys, key) {
			continue
		}
		d.Source().SetNoDragging(slices.ContainsFunc(keys, b.header.locked))
	}
}

// dragging returns the item with an active session, if any.
func (b *Board) dragging() *Draggable {
	for _, d := range b.draggables {
		if d.Source().Active() {
			return d
		}
	}
	return nil
}

func (b *Board) Init() tea.Cmd {
	return b.palette.Init()
}

func (b *Board) isInitialized() bool {
	return b.height != 0 && b.width != 0
}

func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !b.isInitialized() {
		if _, ok := msg.(tea.WindowSizeMsg); !ok {
			return b, nil
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, keys.ToggleZones):
			zone.SetEnabled(!zone.Enabled())
			return b, nil
		case key.Matches(msg, keys.ClearFilter):
			b.palette.Reset()
			return b, nil
		}
	case tea.WindowSizeMsg:
		b.height = msg.Height
		b.width = msg.Width
		b.doc.Resize(msg.Width, msg.Height)
		// Leave room for the frame border.
		msg.Height -= 2
		msg.Width -= 2
		return b, b.propagate(msg)
	case tea.MouseMsg:
		b.pointer(msg)
		return b, nil
	}
	return b, b.propagate(msg)
}

func (b *Board) pointer(msg tea.MouseMsg) {
	b.sync()
	pe, ok := MouseEvent(msg)
	if !ok {
		return
	}
	b.footer.x, b.footer.y = pe.X, pe.Y
	b.doc.Pointer(pe)

	b.footer.target = ""
	if d := b.dragging(); d != nil && d.Source().Dragging() {
		if el := d.Source().CurrentTarget(); el != nil {
			b.footer.target = el.ID()
			if dr, ok := b.binByID[el.ID()]; ok {
				b.footer.target = dr.Title()
			}
		}
	}
}

func (b *Board) propagate(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if wmsg, ok := msg.(tea.WindowSizeMsg); ok {
		_, cmd = b.header.Update(wmsg)
		cmds = append(cmds, cmd)
		_, cmd = b.footer.Update(wmsg)
		cmds = append(cmds, cmd)

		middle := wmsg
		middle.Height = max(wmsg.Height-lipgloss.Height(b.header.View())-lipgloss.Height(b.footer.View()), 1)
		_, cmd = b.split.Update(middle)
		return tea.Batch(append(cmds, cmd)...)
	}

	_, cmd = b.split.Update(msg)
	return cmd
}

// sync copies the last rendered zone boxes onto the document.
func (b *Board) sync() {
	b.header.sync(b.bounds)
	b.palette.sync(b.bounds)
	b.bins.sync(b.bounds)
	b.split.sync(b.bounds)
}

func (b *Board) View() string {
	if !b.isInitialized() {
		return ""
	}
	view := zone.Scan(frameStyle.
		MaxHeight(b.height).
		MaxWidth(b.width).
		Render(lipgloss.JoinVertical(lipgloss.Top,
			b.header.View(),
			b.split.View(),
			b.footer.View(),
		)))

	if d := b.dragging(); d != nil {
		st := d.Source().State()
		view = Overlay(view, d.GhostView(), st.Left, st.Top)
	}
	return view
}

// binPane stacks the bins vertically.
type binPane struct {
	bins []*Droppable
}

func (p *binPane) Init() tea.Cmd {
	return nil
}

func (p *binPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok && len(p.bins) > 0 {
		h := max(msg.Height/len(p.bins), 3)
		for _, d := range p.bins {
			d.SetSize(msg.Width, h)
		}
	}
	return p, nil
}

func (p *binPane) View() string {
	views := make([]string, 0, len(p.bins))
	for _, d := range p.bins {
		views = append(views, d.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

func (p *binPane) sync(bounds BoundsFunc) {
	for _, d := range p.bins {
		d.sync(bounds)
	}
}
