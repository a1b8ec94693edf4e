package dnd

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/rileylov/dragzone/bus"
	"github.com/rileylov/dragzone/dom"
)

// DisplayMode says how a source's own content is shown.
type DisplayMode int

const (
	// DisplayNormal leaves the source content in place.
	DisplayNormal DisplayMode = iota
	// DisplayHidden keeps the content's layout but does not draw it.
	DisplayHidden
	// DisplayDisappeared removes the content from layout.
	DisplayDisappeared
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayHidden:
		return "hidden"
	case DisplayDisappeared:
		return "disappeared"
	}
	return "normal"
}

// SourceConfig configures a Source. Start from DefaultSourceConfig.
type SourceConfig struct {
	// TargetKeys are the namespaces this source can drop onto.
	TargetKeys []string
	// DragData is attached to every dispatched event.
	DragData any

	// DragClone drags a copy and leaves the source content visible.
	DragClone bool
	// CustomGhost replaces the ghost content. Non-empty implies the source
	// content stays visible.
	CustomGhost string
	// DisappearDraggedElement removes the source content from layout while
	// dragging instead of hiding it.
	DisappearDraggedElement bool
	Opacity                 float64
	ZIndex                  int

	XOnly bool
	YOnly bool
	// NoDragging disables drag initiation and aborts a running session.
	NoDragging bool
	// DragHandle, when set, is the only element a press can start a drag
	// from.
	DragHandle *dom.Element

	// OffsetX and OffsetY place the ghost relative to the pointer.
	OffsetX int
	OffsetY int
	// EdgeMargin is the dead zone at the viewport edges in which the ghost
	// stops following the pointer.
	EdgeMargin int

	OnDragStart func(data any)
	OnDrag      func(data any, target *dom.Element, x, y int, forceUpdate func())
	OnDragEnd   func(data any, target *dom.Element, x, y int)
	OnDrop      func(ev *dom.Event)

	Logger   *slog.Logger
	Recorder Recorder
}

// DefaultSourceConfig returns the default source configuration.
func DefaultSourceConfig() SourceConfig {
	return SourceConfig{
		TargetKeys: []string{DefaultKey},
		Opacity:    1,
		ZIndex:     10,
		OffsetX:    5,
		OffsetY:    15,
		EdgeMargin: 10,
	}
}

// State is the presentation-facing view of a source.
type State struct {
	LeftOffset int
	TopOffset  int
	Left       int
	Top        int
	Clicked    bool
	Dragging   bool
}

// session lives from pointer-down to pointer-up.
type session struct {
	id           string
	current      *dom.Element
	previous     *dom.Element
	previousData any
}

// Source is a draggable region. It owns three elements: a container, the
// source content inside it, and a ghost that follows the pointer.
type Source struct {
	cfg       SourceConfig
	doc       *dom.Document
	container *dom.Element
	source    *dom.Element
	ghost     *dom.Element

	state State
	sess  *session

	log *slog.Logger
	rec Recorder

	onDown    *dom.Listener
	onMove    *dom.Listener
	onUp      *dom.Listener
	onDropped *dom.Listener
	mounted   bool
}

// NewSource creates a source and its elements. Attach Container() to the
// tree and call Mount to start listening.
func NewSource(doc *dom.Document, id string, cfg SourceConfig) *Source {
	if len(cfg.TargetKeys) == 0 {
		cfg.TargetKeys = []string{DefaultKey}
	}
	if cfg.OnDragStart == nil {
		cfg.OnDragStart = func(any) {}
	}
	if cfg.OnDrag == nil {
		cfg.OnDrag = func(any, *dom.Element, int, int, func()) {}
	}
	if cfg.OnDragEnd == nil {
		cfg.OnDragEnd = func(any, *dom.Element, int, int) {}
	}
	if cfg.OnDrop == nil {
		cfg.OnDrop = func(*dom.Event) {}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	rec := cfg.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}

	s := &Source{
		cfg:       cfg,
		doc:       doc,
		container: doc.CreateElement(id),
		source:    doc.CreateElement(id + "/source"),
		ghost:     doc.CreateElement(id + "/ghost"),
		log:       logger.With(slog.String("source", id)),
		rec:       rec,
	}
	s.container.SetClassName("ddcontainer")
	s.source.SetClassName("ddcontainersource")
	s.ghost.SetClassName("ddcontainerghost")
	s.ghost.SetZIndex(cfg.ZIndex)
	s.ghost.SetDisplayNone(true)
	s.container.AppendChild(s.source)
	s.container.AppendChild(s.ghost)

	s.onDown = dom.NewListener(s.handleDown)
	s.onMove = dom.NewListener(s.handleMove)
	s.onUp = dom.NewListener(s.handleUp)
	s.onDropped = dom.NewListener(s.handleDropped)
	return s
}

// Container returns the outer element, the address of drop acknowledgments.
func (s *Source) Container() *dom.Element { return s.container }

// SourceElement returns the element holding the source content.
func (s *Source) SourceElement() *dom.Element { return s.source }

// Ghost returns the element that follows the pointer while dragging.
func (s *Source) Ghost() *dom.Element { return s.ghost }

// Config returns the source's configuration.
func (s *Source) Config() SourceConfig { return s.cfg }

// State returns the current presentation state.
func (s *Source) State() State { return s.state }

// Dragging reports whether the pointer has moved since the press.
func (s *Source) Dragging() bool { return s.state.Dragging }

// Active reports whether a session is in progress.
func (s *Source) Active() bool { return s.sess != nil }

// CurrentTarget returns the element last resolved under the pointer during
// the running session, or nil.
func (s *Source) CurrentTarget() *dom.Element {
	if s.sess == nil {
		return nil
	}
	return s.sess.current
}

// DisplayMode returns how the source content should be drawn right now.
func (s *Source) DisplayMode() DisplayMode {
	if s.state.Dragging && !s.cfg.DragClone && s.cfg.CustomGhost == "" {
		if s.cfg.DisappearDraggedElement {
			return DisplayDisappeared
		}
		return DisplayHidden
	}
	return DisplayNormal
}

// Mount starts listening for presses on the container.
func (s *Source) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.container.AddEventListener(dom.PointerDown, s.onDown)
}

// Unmount aborts any session and removes every listener the source added.
func (s *Source) Unmount() {
	s.abort()
	s.container.RemoveEventListener(dom.PointerDown, s.onDown)
	s.mounted = false
}

// SetDragData replaces the payload. A change of identity during a drag
// re-emits leave and enter on the next move.
func (s *Source) SetDragData(data any) { s.cfg.DragData = data }

// SetNoDragging toggles dragging. Disabling aborts a running session.
func (s *Source) SetNoDragging(disabled bool) {
	s.cfg.NoDragging = disabled
	if disabled {
		s.abort()
	}
}

func (s *Source) handleDown(ev *dom.Event) {
	pe, ok := ev.Detail.(dom.PointerEvent)
	if !ok || pe.Button != dom.ButtonPrimary || s.cfg.NoDragging || s.sess != nil {
		return
	}
	if h := s.cfg.DragHandle; h != nil && !h.Contains(ev.Target()) {
		return
	}

	root := s.doc.Root()
	root.AddEventListener(dom.PointerMove, s.onMove)
	root.AddEventListener(dom.PointerUp, s.onUp)
	bus.AddListener(s.container, s.cfg.TargetKeys, EventDropped, s.onDropped)

	s.sess = &session{id: uuid.NewString()}
	s.state = State{
		LeftOffset: s.cfg.OffsetX,
		TopOffset:  s.cfg.OffsetY,
		Left:       pe.X,
		Top:        pe.Y,
		Clicked:    true,
	}
	s.log.Debug("drag armed", slog.String("session", s.sess.id), slog.Int("x", pe.X), slog.Int("y", pe.Y))
	s.cfg.OnDragStart(s.cfg.DragData)
}

func (s *Source) handleMove(ev *dom.Event) {
	if s.cfg.NoDragging || !s.state.Clicked {
		return
	}
	pe, ok := ev.Detail.(dom.PointerEvent)
	if !ok {
		return
	}
	ev.PreventDefault()
	s.drag(pe.X, pe.Y)
}

func (s *Source) handleUp(ev *dom.Event) {
	pe, ok := ev.Detail.(dom.PointerEvent)
	if !ok || s.sess == nil {
		return
	}
	s.state.Clicked = false
	if !s.state.Dragging {
		s.end(OutcomeReleased)
		return
	}
	s.drop(pe.X, pe.Y)
}

func (s *Source) handleDropped(ev *dom.Event) {
	if s.sess == nil {
		return
	}
	// One acknowledgment per session.
	bus.RemoveListener(s.container, s.cfg.TargetKeys, EventDropped, s.onDropped)
	if ack, ok := DropAckOf(ev); ok {
		s.log.Debug("drop acknowledged", slog.String("session", s.sess.id), slog.String("key", ack.TargetKey))
	}
	s.cfg.OnDrop(ev)
}

func (s *Source) drag(x, y int) {
	if s.sess == nil {
		return
	}
	s.generateEnterLeave(x, y)
	if s.sess == nil {
		return
	}

	s.state.Dragging = true
	if !s.offscreen(x, y) {
		if !s.cfg.YOnly {
			s.state.Left = s.state.LeftOffset + x
		}
		if !s.cfg.XOnly {
			s.state.Top = s.state.TopOffset + y
		}
	}
	s.applyDisplay()
	s.cfg.OnDrag(s.cfg.DragData, s.sess.current, x, y, func() { s.drag(x, y) })
}

func (s *Source) drop(x, y int) {
	sess := s.sess
	target := s.resolveTarget(x, y)
	// The release can land off the last entered element without a move.
	if prev := sess.previous; prev != nil && prev != target {
		s.dispatch(prev, EventDragLeave, s.payload())
		if s.sess != sess {
			return
		}
		sess.previous = target
	}
	s.dispatch(target, EventDrop, HitPayload{DragPayload: s.payload(), X: x, Y: y})
	if s.sess != sess {
		// A drop handler unmounted or disabled us.
		return
	}
	s.end(OutcomeDropped)
	s.cfg.OnDragEnd(s.cfg.DragData, target, x, y)
}

// generateEnterLeave re-resolves the target and, on a change of target or
// payload, sends leave to the old element before enter to the new one.
func (s *Source) generateEnterLeave(x, y int) {
	sess := s.sess
	s.resolveTarget(x, y)

	if sess.current != sess.previous || !sameData(s.cfg.DragData, sess.previousData) {
		if sess.previous != nil {
			s.dispatch(sess.previous, EventDragLeave, s.payload())
		}
		if s.sess != sess {
			return
		}
		if sess.current != nil {
			s.dispatch(sess.current, EventDragEnter, s.payload())
		}
	}
	sess.previousData = s.cfg.DragData
	sess.previous = sess.current
}

// resolveTarget finds the element under (x, y) with the ghost pushed below
// everything, so the ghost never resolves as its own target.
func (s *Source) resolveTarget(x, y int) *dom.Element {
	s.ghost.SetZIndex(-1)
	hit := s.doc.ElementFromPoint(x, y)
	s.ghost.SetZIndex(s.cfg.ZIndex)
	if hit == nil || s.ghost.Contains(hit) {
		hit = s.doc.Body()
	}
	if s.sess != nil {
		s.sess.current = hit
	}
	return hit
}

func (s *Source) offscreen(x, y int) bool {
	w, h := s.doc.Viewport()
	m := s.cfg.EdgeMargin
	return x < m || x > w-m || y < m || y > h-m
}

func (s *Source) payload() DragPayload {
	p := DragPayload{
		Data:          s.cfg.DragData,
		DragElem:      s.ghost,
		ContainerElem: s.container,
		SourceElem:    s.source,
	}
	if s.sess != nil {
		p.SessionID = s.sess.id
	}
	return p
}

func (s *Source) dispatch(el *dom.Element, event string, payload any) {
	for _, key := range bus.Dispatch(el, s.cfg.TargetKeys, event, payload) {
		s.rec.RecordEvent(key, event)
	}
}

// abort ends a running session without a drop. The last resolved element
// gets a leave so its highlight does not outlive the session.
func (s *Source) abort() {
	sess := s.sess
	if sess == nil {
		s.removeListeners()
		return
	}
	if sess.previous != nil {
		s.dispatch(sess.previous, EventDragLeave, s.payload())
	}
	if s.sess == sess {
		s.end(OutcomeAborted)
	}
}

func (s *Source) end(outcome string) {
	s.removeListeners()
	if s.sess == nil {
		return
	}
	id := s.sess.id
	s.sess = nil
	s.state.Clicked = false
	s.state.Dragging = false
	s.applyDisplay()
	s.rec.RecordSession(outcome)
	s.log.Debug("drag ended", slog.String("session", id), slog.String("outcome", outcome))
}

func (s *Source) removeListeners() {
	root := s.doc.Root()
	root.RemoveEventListener(dom.PointerMove, s.onMove)
	root.RemoveEventListener(dom.PointerUp, s.onUp)
	bus.RemoveListener(s.container, s.cfg.TargetKeys, EventDropped, s.onDropped)
}

func (s *Source) applyDisplay() {
	mode := s.DisplayMode()
	s.source.SetDisplayNone(mode == DisplayDisappeared)
	s.source.SetHidden(mode == DisplayHidden)
	s.ghost.SetDisplayNone(!s.state.Dragging)

	b := s.ghost.Bounds()
	if b.Empty() {
		sb := s.source.Bounds()
		b.Width, b.Height = sb.Width, sb.Height
	}
	b.X, b.Y = s.state.Left, s.state.Top
	s.ghost.SetBounds(b)
}
