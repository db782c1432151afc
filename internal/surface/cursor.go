package surface

import "github.com/otty-term/otty/internal/escape"

// CursorShape, Charset and CharsetIndex are the escape package's
// action-vocabulary types, aliased here so the rest of this package
// can keep referring to them by their bare surface-local names.
type (
	CursorShape  = escape.CursorShape
	Charset      = escape.Charset
	CharsetIndex = escape.CharsetIndex
)

const (
	CursorBlinkingBlock     = escape.CursorBlinkingBlock
	CursorSteadyBlock       = escape.CursorSteadyBlock
	CursorBlinkingUnderline = escape.CursorBlinkingUnderline
	CursorSteadyUnderline   = escape.CursorSteadyUnderline
	CursorBlinkingBar       = escape.CursorBlinkingBar
	CursorSteadyBar         = escape.CursorSteadyBar

	CharsetASCII       = escape.CharsetASCII
	CharsetLineDrawing = escape.CharsetLineDrawing

	G0 = escape.G0
	G1 = escape.G1
	G2 = escape.G2
	G3 = escape.G3
)

// Cursor tracks position (0-based) and rendering style.
type Cursor struct {
	Row, Col int
	Shape    CursorShape
	Visible  bool
}

func NewCursor() Cursor {
	return Cursor{Shape: CursorBlinkingBlock, Visible: true}
}

// SavedCursor is what DECSC/DECRC (and alt-screen switches) push and
// pop: position, pen state, origin mode and charset selection.
// Grounded on the teacher's cursor.go SavedCursor.
type SavedCursor struct {
	Row, Col     int
	Pen          Pen
	OriginMode   bool
	CharsetIndex CharsetIndex
	Charsets     [4]Charset
}
