package surface

import (
	"github.com/google/uuid"

	"github.com/otty-term/otty/internal/escape"
)

// HyperlinkID indexes into a Links table; zero means "no hyperlink".
// Grounded on the teacher's cell.go Hyperlink (there stored as a bare
// *Hyperlink pointer per cell); generalized here into an interned,
// reference-counted table so many cells can share one entry and
// snapshot/resize never need to walk the grid to find live links.
type HyperlinkID uint32

// Hyperlink is the escape package's action-vocabulary type, aliased
// here so this table can refer to it by its bare surface-local name.
type Hyperlink = escape.Hyperlink

// Links interns Hyperlink values so repeated OSC 8 sequences with the
// same id and URI share one table entry; a link without an id is given
// a fresh random id, so id-less links never share an entry. Entries
// carry a reference count and GC removes those whose count is zero.
// Surface interns once per OSC 8 open and releases when the active link
// changes (not per cell), and does not call GC, so entries stay in the
// table for the surface's lifetime.
type Links struct {
	byID   map[HyperlinkID]*linkEntry
	lookup map[Hyperlink]HyperlinkID
	next   HyperlinkID
}

type linkEntry struct {
	link Hyperlink
	refs int
}

func NewLinks() *Links {
	return &Links{
		byID:   make(map[HyperlinkID]*linkEntry),
		lookup: make(map[Hyperlink]HyperlinkID),
	}
}

// Intern returns the id for the given hyperlink, creating a new
// interned entry if this exact (id, uri) pair hasn't been seen. The
// returned id has one reference already counted for the caller.
func (l *Links) Intern(h Hyperlink) HyperlinkID {
	if h.URI == "" {
		return 0
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if id, ok := l.lookup[h]; ok {
		l.byID[id].refs++
		return id
	}
	l.next++
	id := l.next
	l.byID[id] = &linkEntry{link: h, refs: 1}
	l.lookup[h] = id
	return id
}

// Retain adds a reference to an already-interned id.
func (l *Links) Retain(id HyperlinkID) {
	if id == 0 {
		return
	}
	if e, ok := l.byID[id]; ok {
		e.refs++
	}
}

// Release drops a reference; once an entry's count reaches zero it is
// removed on the next GC pass.
func (l *Links) Release(id HyperlinkID) {
	if id == 0 {
		return
	}
	if e, ok := l.byID[id]; ok {
		e.refs--
	}
}

// Lookup resolves an id back to its Hyperlink, reporting false for id
// 0 or an id that has already been garbage-collected.
func (l *Links) Lookup(id HyperlinkID) (Hyperlink, bool) {
	e, ok := l.byID[id]
	if !ok {
		return Hyperlink{}, false
	}
	return e.link, true
}

// GC removes every interned entry with no remaining references.
func (l *Links) GC() {
	for id, e := range l.byID {
		if e.refs <= 0 {
			delete(l.lookup, e.link)
			delete(l.byID, id)
		}
	}
}

// Len reports the number of live interned entries, mainly for tests.
func (l *Links) Len() int { return len(l.byID) }
