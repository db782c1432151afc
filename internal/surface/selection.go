package surface

import "strings"

// SelectionKind selects how Extract reads text out of a selection
// range. Grounded on the teacher's GetSelectedText (which only ever
// implemented the reading-order case, here SelectionSimple); Block and
// Lines are supplemented per spec.md §3.7/§4.3.4.
type SelectionKind int

const (
	SelectionSimple SelectionKind = iota
	SelectionBlock
	SelectionLines
)

// SelectionDirection records which endpoint last moved, so a drag that
// reverses direction can keep extending the correct end rather than
// restarting the range.
type SelectionDirection int

const (
	ExtendEnd SelectionDirection = iota
	ExtendStart
)

// Selection is a range of absolute grid coordinates (row 0 is the
// oldest surviving scrollback line; see Surface.absoluteRow), the kind
// of text extraction to apply, and whether a selection is currently
// active at all. Grounded on the teacher's terminal.go Selection,
// extended with Kind/Direction per spec.md §3.7.
type Selection struct {
	Start     Position
	End       Position
	Kind      SelectionKind
	Direction SelectionDirection
	Active    bool
}

// normalized returns the selection with Start guaranteed to be at or
// before End in reading order, mirroring the teacher's own Start/End
// normalization comment on Selection.
func (s Selection) normalized() (Position, Position) {
	if s.End.Before(s.Start) {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// rowSource supplies the row of cells at an absolute coordinate,
// abstracting over the scrollback/viewport split so Extract doesn't
// need to know Grid's internal layout.
type rowSource interface {
	rowAt(absRow int) []Cell
}

// Extract reads the text covered by the selection out of src,
// following Kind's trimming rules from spec.md §4.3.4: trailing spaces
// are stripped per line and WIDE_CHAR_SPACER cells are always omitted.
func (s Selection) Extract(src rowSource) string {
	if !s.Active {
		return ""
	}
	start, end := s.normalized()

	switch s.Kind {
	case SelectionBlock:
		return s.extractBlock(src, start, end)
	case SelectionLines:
		return s.extractLines(src, start, end)
	default:
		return s.extractSimple(src, start, end)
	}
}

func (s Selection) extractSimple(src rowSource, start, end Position) string {
	var lines []string
	for row := start.Row; row <= end.Row; row++ {
		cells := src.rowAt(row)
		startCol, endCol := 0, len(cells)
		if row == start.Row {
			startCol = start.Col
		}
		if row == end.Row {
			endCol = end.Col + 1
		}
		lines = append(lines, rowText(cells, startCol, endCol))
	}
	return strings.Join(lines, "\n")
}

func (s Selection) extractBlock(src rowSource, start, end Position) string {
	loCol, hiCol := start.Col, end.Col
	if hiCol < loCol {
		loCol, hiCol = hiCol, loCol
	}
	var lines []string
	for row := start.Row; row <= end.Row; row++ {
		cells := src.rowAt(row)
		lines = append(lines, rowText(cells, loCol, hiCol+1))
	}
	return strings.Join(lines, "\n")
}

func (s Selection) extractLines(src rowSource, start, end Position) string {
	var lines []string
	for row := start.Row; row <= end.Row; row++ {
		cells := src.rowAt(row)
		lines = append(lines, rowText(cells, 0, len(cells)))
	}
	return strings.Join(lines, "\n")
}

// rowText renders cells[startCol:endCol] as text, converting blank
// cells to spaces, skipping wide-char spacers, and trimming trailing
// spaces - mirroring the teacher's GetSelectedText/LineContent rules.
func rowText(cells []Cell, startCol, endCol int) string {
	if startCol < 0 {
		startCol = 0
	}
	if endCol > len(cells) {
		endCol = len(cells)
	}
	if startCol >= endCol {
		return ""
	}
	var b strings.Builder
	for col := startCol; col < endCol; col++ {
		c := &cells[col]
		if c.IsWideSpacer() {
			continue
		}
		if c.Char == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteRune(c.Char)
		}
	}
	return strings.TrimRight(b.String(), " ")
}
