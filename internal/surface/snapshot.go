package surface

import "fmt"

// SnapshotDetail selects how much per-cell detail a Snapshot carries.
// Grounded on the teacher's snapshot.go SnapshotDetail.
type SnapshotDetail int

const (
	SnapshotDetailText SnapshotDetail = iota
	SnapshotDetailStyled
	SnapshotDetailFull
)

// SnapshotAttrs mirrors a cell's boolean rendition flags, collapsing
// the several underline variants into one bool; neither SnapshotSegment
// nor SnapshotCell carries which underline style or underline color a
// cell uses.
type SnapshotAttrs struct {
	Bold          bool
	Dim           bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// SnapshotLink is a hyperlink resolved out of the Links table for
// inclusion in a segment or cell.
type SnapshotLink struct {
	ID  string
	URI string
}

// SnapshotSegment is a run of cells sharing one style, used at
// SnapshotDetailStyled to avoid re-emitting identical style info per
// cell.
type SnapshotSegment struct {
	Text       string
	Fg         string
	Bg         string
	Attributes SnapshotAttrs
	Hyperlink  *SnapshotLink
}

// SnapshotCell is one cell's full rendition, used at SnapshotDetailFull.
type SnapshotCell struct {
	Char       string
	Fg         string
	Bg         string
	Attributes SnapshotAttrs
	Hyperlink  *SnapshotLink
	Wide       bool
	WideSpacer bool
}

// SnapshotLine is one row of the viewport, rendered at the detail the
// caller asked for. Text is always populated; Segments/Cells are only
// populated at the corresponding detail level.
type SnapshotLine struct {
	Row      int
	Wrapped  bool
	Text     string
	Segments []SnapshotSegment `json:",omitempty"`
	Cells    []SnapshotCell    `json:",omitempty"`
}

// SnapshotCursor is the cursor's position and visual style, in
// viewport-relative coordinates.
type SnapshotCursor struct {
	Row     int
	Col     int
	Visible bool
	Shape   string
}

// SnapshotSize is the viewport's dimensions in character cells.
type SnapshotSize struct {
	Rows int
	Cols int
}

// SnapshotDamage reports which rows changed since the previous
// Snapshot, either as an explicit row list or Full (repaint
// everything). Grounded on §4.3.7's "damage is reported as either
// Full or a list of row ranges", generalizing the teacher's
// snapshot.go (which always re-rendered every row).
type SnapshotDamage struct {
	Full bool
	Rows []int
}

// Snapshot is an immutable, per-frame projection of a Surface: every
// viewport row (SnapshotLine.Row is viewport-relative, 0 being the top
// visible row) plus cursor, selection, resolved hyperlinks, the
// alternate-screen flag, scroll position, scrollback length, the
// current semantic blocks and damage rows. Colors are resolved through
// the live palette into hex strings; the palette itself and mode bits
// other than AltScreen are not included. Grounded on the teacher's
// snapshot.go Snapshot.
type Snapshot struct {
	Size          SnapshotSize
	Cursor        SnapshotCursor
	Lines         []SnapshotLine
	ScrollbackLen int
	ScrollOffset  int
	AltScreen     bool
	Selection     *Selection
	Blocks        []Block
	Damage        SnapshotDamage
}

// Snapshot builds a point-in-time view of the surface at the given
// detail level and clears pending damage, mirroring the teacher's
// Terminal.Snapshot.
func (s *Surface) Snapshot(detail SnapshotDetail) *Snapshot {
	snap := &Snapshot{
		Size: SnapshotSize{Rows: s.grid.Rows(), Cols: s.grid.Cols()},
		Cursor: SnapshotCursor{
			Row:     s.cursor.Row,
			Col:     s.cursor.Col,
			Visible: s.cursor.Visible,
			Shape:   cursorShapeToString(s.cursor.Shape),
		},
		ScrollbackLen: s.grid.ScrollbackLen(),
		ScrollOffset:  s.scrollOffset,
		AltScreen:     s.altScreen,
		Blocks:        s.blocks.Blocks(),
	}
	if s.selection.Active {
		sel := s.selection
		snap.Selection = &sel
	}

	damage := s.grid.Damage()
	if damage.IsFull() {
		snap.Damage = SnapshotDamage{Full: true}
	} else {
		snap.Damage = SnapshotDamage{Rows: damage.DirtyRows()}
	}

	snap.Lines = make([]SnapshotLine, s.grid.Rows())
	for row := 0; row < s.grid.Rows(); row++ {
		snap.Lines[row] = s.snapshotLine(row, detail)
	}
	damage.Clear()

	return snap
}

// snapshotLine renders one viewport row at the requested detail.
func (s *Surface) snapshotLine(row int, detail SnapshotDetail) SnapshotLine {
	cells := s.viewRow(row)
	wrapped := s.scrollOffset == 0 && s.grid.IsWrapped(row)
	line := SnapshotLine{
		Row:     row,
		Wrapped: wrapped,
		Text:    rowText(cells, 0, len(cells)),
	}

	switch detail {
	case SnapshotDetailStyled:
		line.Segments = s.lineToSegments(cells)
	case SnapshotDetailFull:
		line.Cells = s.lineToCells(cells)
	}

	return line
}

// lineToSegments converts a row into runs of cells sharing one style,
// skipping wide-char spacers. Grounded on the teacher's snapshot.go
// lineToSegments.
func (s *Surface) lineToSegments(cells []Cell) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var text []rune

	flush := func() {
		if current != nil && len(text) > 0 {
			current.Text = string(text)
			segments = append(segments, *current)
		}
	}

	for col := range cells {
		cell := &cells[col]
		if cell.IsWideSpacer() {
			continue
		}

		fg := s.colorToHex(cell.Fg, true)
		bg := s.colorToHex(cell.Bg, false)
		attrs := cellAttrsToSnapshot(cell)
		link := s.cellHyperlinkToSnapshot(cell)

		if current == nil || !segmentMatches(current, fg, bg, attrs, link) {
			flush()
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs, Hyperlink: link}
			text = nil
		}

		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		text = append(text, ch)
	}
	flush()

	return segments
}

// lineToCells converts a row into full per-cell rendition data.
// Grounded on the teacher's snapshot.go lineToCells.
func (s *Surface) lineToCells(cells []Cell) []SnapshotCell {
	out := make([]SnapshotCell, 0, len(cells))

	for col := range cells {
		cell := &cells[col]
		ch := cell.Char
		if ch == 0 {
			ch = ' '
		}
		out = append(out, SnapshotCell{
			Char:       string(ch),
			Fg:         s.colorToHex(cell.Fg, true),
			Bg:         s.colorToHex(cell.Bg, false),
			Attributes: cellAttrsToSnapshot(cell),
			Hyperlink:  s.cellHyperlinkToSnapshot(cell),
			Wide:       cell.IsWide(),
			WideSpacer: cell.IsWideSpacer(),
		})
	}

	return out
}

// segmentMatches reports whether seg already carries the given style,
// so lineToSegments can decide whether to extend it or start a new
// run. Grounded on the teacher's snapshot.go segmentMatches.
func segmentMatches(seg *SnapshotSegment, fg, bg string, attrs SnapshotAttrs, link *SnapshotLink) bool {
	if seg.Fg != fg || seg.Bg != bg || seg.Attributes != attrs {
		return false
	}
	if seg.Hyperlink == nil && link == nil {
		return true
	}
	if seg.Hyperlink == nil || link == nil {
		return false
	}
	return *seg.Hyperlink == *link
}

// colorToHex resolves a Color through the surface's live palette into
// a "#rrggbb" string. Grounded on the teacher's snapshot.go
// colorToHex/resolveDefaultColor, generalized to take the
// foreground/background default directly instead of inspecting a
// color.Color interface value.
func (s *Surface) colorToHex(c Color, isForeground bool) string {
	rgba := s.palette.Resolve(c, isForeground)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// cellAttrsToSnapshot flattens a cell's flag bitmask into the boolean
// struct a renderer consumes. Grounded on the teacher's snapshot.go
// cellAttrsToSnapshot.
func cellAttrsToSnapshot(cell *Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:   cell.HasFlag(FlagBold),
		Dim:    cell.HasFlag(FlagDim),
		Italic: cell.HasFlag(FlagItalic),
		Underline: cell.HasFlag(FlagUnderline) || cell.HasFlag(FlagDoubleUnderline) ||
			cell.HasFlag(FlagCurlyUnderline) || cell.HasFlag(FlagDottedUnderline) ||
			cell.HasFlag(FlagDashedUnderline) || cell.HasFlag(FlagUndercurl),
		Blink:         cell.HasFlag(FlagBlinkSlow) || cell.HasFlag(FlagBlinkFast),
		Reverse:       cell.HasFlag(FlagReverse),
		Hidden:        cell.HasFlag(FlagHidden),
		Strikethrough: cell.HasFlag(FlagStrike),
	}
}

// cellHyperlinkToSnapshot resolves a cell's interned HyperlinkID
// through the surface's Links table. Grounded on the teacher's
// snapshot.go cellHyperlinkToSnapshot (there a direct *Hyperlink
// field read; here a table lookup since Cell only stores the id).
func (s *Surface) cellHyperlinkToSnapshot(cell *Cell) *SnapshotLink {
	link, ok := s.links.Lookup(cell.Hyperlink)
	if !ok {
		return nil
	}
	return &SnapshotLink{ID: link.ID, URI: link.URI}
}

// cursorShapeToString renders a CursorShape the way a terminal-UI
// consumer expects to see it, collapsing blink variants into their
// steady shape name. Grounded on the teacher's snapshot.go
// cursorStyleToString.
func cursorShapeToString(shape CursorShape) string {
	switch shape {
	case CursorBlinkingUnderline, CursorSteadyUnderline:
		return "underline"
	case CursorBlinkingBar, CursorSteadyBar:
		return "bar"
	default:
		return "block"
	}
}
