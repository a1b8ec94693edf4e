package dnd

import (
	"log/slog"

	"github.com/rileylov/dragzone/bus"
	"github.com/rileylov/dragzone/dom"
)

// TargetConfig configures a Target. Start from DefaultTargetConfig.
type TargetConfig struct {
	TargetKeys []string
	// HighlightClass is added to the element's class while a drag is over
	// it. Empty disables highlighting.
	HighlightClass string
	// DropData is sent back to the source in the acknowledgment.
	DropData any

	OnDragEnter func(ev *dom.Event)
	OnDragLeave func(ev *dom.Event)
	OnHit       func(ev *dom.Event)

	Logger   *slog.Logger
	Recorder Recorder
}

// DefaultTargetConfig returns the default target configuration.
func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		TargetKeys:     []string{DefaultKey},
		HighlightClass: "highlighted",
	}
}

// Target is a drop zone.
type Target struct {
	cfg         TargetConfig
	el          *dom.Element
	highlighted bool
	mounted     bool

	log *slog.Logger
	rec Recorder

	onEnter *dom.Listener
	onLeave *dom.Listener
	onDrop  *dom.Listener
}

// NewTarget creates a target and its element. Attach Element() to the tree
// and call Mount to start listening.
func NewTarget(doc *dom.Document, id string, cfg TargetConfig) *Target {
	if len(cfg.TargetKeys) == 0 {
		cfg.TargetKeys = []string{DefaultKey}
	}
	if cfg.OnDragEnter == nil {
		cfg.OnDragEnter = func(*dom.Event) {}
	}
	if cfg.OnDragLeave == nil {
		cfg.OnDragLeave = func(*dom.Event) {}
	}
	if cfg.OnHit == nil {
		cfg.OnHit = func(*dom.Event) {}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rec := cfg.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}

	t := &Target{
		cfg: cfg,
		el:  doc.CreateElement(id),
		log: logger.With(slog.String("target", id)),
		rec: rec,
	}
	t.onEnter = dom.NewListener(t.handleEnter)
	t.onLeave = dom.NewListener(t.handleLeave)
	t.onDrop = dom.NewListener(t.handleDrop)
	t.updateClass()
	return t
}

// Element returns the target's root element.
func (t *Target) Element() *dom.Element { return t.el }

// Config returns the target's configuration.
func (t *Target) Config() TargetConfig { return t.cfg }

// Highlighted reports whether a drag is currently over the target.
func (t *Target) Highlighted() bool { return t.highlighted }

// Mount registers the enter, leave and drop listeners.
func (t *Target) Mount() {
	if t.mounted {
		return
	}
	t.mounted = true
	bus.AddListener(t.el, t.cfg.TargetKeys, EventDragEnter, t.onEnter)
	bus.AddListener(t.el, t.cfg.TargetKeys, EventDragLeave, t.onLeave)
	bus.AddListener(t.el, t.cfg.TargetKeys, EventDrop, t.onDrop)
}

// Unmount removes the listeners added by Mount and clears the highlight.
func (t *Target) Unmount() {
	bus.RemoveListener(t.el, t.cfg.TargetKeys, EventDragEnter, t.onEnter)
	bus.RemoveListener(t.el, t.cfg.TargetKeys, EventDragLeave, t.onLeave)
	bus.RemoveListener(t.el, t.cfg.TargetKeys, EventDrop, t.onDrop)
	t.mounted = false
	t.setHighlighted(false)
}

func (t *Target) handleEnter(ev *dom.Event) {
	if t.cfg.HighlightClass != "" {
		t.setHighlighted(true)
	}
	t.cfg.OnDragEnter(ev)
}

func (t *Target) handleLeave(ev *dom.Event) {
	if t.cfg.HighlightClass != "" {
		t.setHighlighted(false)
	}
	t.cfg.OnDragLeave(ev)
}

// handleDrop acknowledges to the source's container under the key the drop
// arrived on, then reports the hit.
func (t *Target) handleDrop(ev *dom.Event) {
	hit, ok := HitPayloadOf(ev)
	if !ok {
		return
	}
	ack := DropAck{
		DropData: t.cfg.DropData,
		DragData: hit.Data,
		DropElem: t.el,
	}
	for _, key := range bus.Dispatch(hit.ContainerElem, []string{hit.TargetKey}, EventDropped, ack) {
		t.rec.RecordEvent(key, EventDropped)
	}
	t.log.Debug("drop received", slog.String("session", hit.SessionID), slog.String("key", hit.TargetKey),
		slog.Int("x", hit.X), slog.Int("y", hit.Y))

	t.cfg.OnHit(ev)
	t.setHighlighted(false)
}

func (t *Target) setHighlighted(on bool) {
	t.highlighted = on
	t.updateClass()
}

func (t *Target) updateClass() {
	if t.highlighted && t.cfg.HighlightClass != "" {
		t.el.SetClassName("droptarget " + t.cfg.HighlightClass)
		return
	}
	t.el.SetClassName("droptarget")
}
