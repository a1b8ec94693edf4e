// Package dom is a small retained element tree with hit-testing and
// bubbling event dispatch. It models just enough of a browser document for
// drag sources and drop targets to find each other by position and talk
// through events, without holding references to one another.
//
// A Document and its elements are not safe for concurrent use. They are
// meant to be driven from a single UI loop, such as a bubbletea Update.
package dom

import "sort"

// Rect is an axis-aligned box in viewport cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Element is a node in a Document.
type Element struct {
	id        string
	doc       *Document
	parent    *Element
	children  []*Element
	bounds    Rect
	zIndex    int
	zSet      bool
	hidden    bool // visibility: hidden
	none      bool // display: none
	className string
	listeners map[string][]*Listener
}

// ID returns the element id given at creation.
func (e *Element) ID() string { return e.id }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element, or nil when detached or root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list in tree order.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// AppendChild attaches child as the last child of e, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from e. It is a no-op if child is not a
// direct child of e.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			child.parent = nil
			return
		}
	}
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Bounds returns the element's box.
func (e *Element) Bounds() Rect { return e.bounds }

// SetBounds sets the element's box.
func (e *Element) SetBounds(r Rect) { e.bounds = r }

// MoveTo changes the element's position, keeping its size.
func (e *Element) MoveTo(x, y int) {
	e.bounds.X = x
	e.bounds.Y = y
}

// ZIndex returns the element's own stacking order.
func (e *Element) ZIndex() int { return e.zIndex }

// SetZIndex positions the element in the stacking order. Elements without
// an explicit z-index inherit their parent's.
func (e *Element) SetZIndex(z int) {
	e.zIndex = z
	e.zSet = true
}

// Hidden reports whether the element is visibility-hidden.
func (e *Element) Hidden() bool { return e.hidden }

// SetHidden hides the element while keeping its layout.
func (e *Element) SetHidden(hidden bool) { e.hidden = hidden }

// DisplayNone reports whether the element is removed from layout.
func (e *Element) DisplayNone() bool { return e.none }

// SetDisplayNone removes the element (and its subtree) from layout.
func (e *Element) SetDisplayNone(none bool) { e.none = none }

// ClassName returns the element's class string.
func (e *Element) ClassName() string { return e.className }

// SetClassName replaces the element's class string.
func (e *Element) SetClassName(c string) { e.className = c }

// Document is the root of an element tree plus the viewport it is shown in.
type Document struct {
	root   *Element
	body   *Element
	width  int
	height int
	byID   map[string]*Element
}

// NewDocument returns a document with a root and a body element that both
// cover a width×height viewport.
func NewDocument(width, height int) *Document {
	d := &Document{byID: make(map[string]*Element)}
	d.root = d.CreateElement("html")
	d.body = d.CreateElement("body")
	d.root.AppendChild(d.body)
	d.Resize(width, height)
	return d
}

// CreateElement returns a detached element. A later element with the same
// id replaces the earlier one in lookups.
func (d *Document) CreateElement(id string) *Element {
	e := &Element{id: id, doc: d}
	d.byID[id] = e
	return e
}

// GetElementByID returns the most recently created element with id.
func (d *Document) GetElementByID(id string) *Element { return d.byID[id] }

// Release forgets e for id lookups and detaches it from its parent.
func (d *Document) Release(e *Element) {
	if e == nil {
		return
	}
	if d.byID[e.id] == e {
		delete(d.byID, e.id)
	}
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// Viewport returns the viewport size.
func (d *Document) Viewport() (width, height int) { return d.width, d.height }

// Resize changes the viewport, stretching root and body to cover it.
func (d *Document) Resize(width, height int) {
	d.width, d.height = width, height
	full := Rect{Width: width, Height: height}
	d.root.bounds = full
	d.body.bounds = full
}

type paintEntry struct {
	el *Element
	z  int
}

// ElementFromPoint returns the topmost hittable element at (x, y), or nil.
// Hidden and display-none elements are skipped along with their subtrees, as
// are elements with empty bounds.
func (d *Document) ElementFromPoint(x, y int) *Element {
	var entries []paintEntry
	var walk func(e *Element, z int, hidden bool)
	walk = func(e *Element, z int, hidden bool) {
		if e.none {
			return
		}
		if e.zSet {
			z = e.zIndex
		}
		hidden = hidden || e.hidden
		if !hidden && !e.bounds.Empty() {
			entries = append(entries, paintEntry{el: e, z: z})
		}
		for _, c := range e.children {
			walk(c, z, hidden)
		}
	}
	walk(d.root, 0, false)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].z < entries[j].z
	})
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].el.bounds.Contains(x, y) {
			return entries[i].el
		}
	}
	return nil
}
