package surface

// CellFlags is a bitmask of cell rendering attributes. Grounded on the
// teacher's cell.go CellFlags, expanded with the leading-wide-char
// spacer and per-cell wrap marker a full rendition needs.
type CellFlags uint32

const (
	FlagBold CellFlags = 1 << iota
	FlagDim
	FlagItalic
	FlagUnderline
	FlagDoubleUnderline
	FlagCurlyUnderline
	FlagDottedUnderline
	FlagDashedUnderline
	FlagUndercurl
	FlagBlinkSlow
	FlagBlinkFast
	FlagReverse
	FlagHidden
	FlagStrike
	FlagWideChar
	FlagWideCharSpacer
	FlagLeadingWideCharSpacer
	FlagWrapped
	FlagDirty
)

// Cell stores the character, colors, formatting attributes and
// hyperlink reference for one grid position. Wide characters occupy
// two columns: the leading cell carries FlagWideChar, the trailing
// cell carries FlagWideCharSpacer. Grounded on the teacher's cell.go.
type Cell struct {
	Char           rune
	Fg             Color
	Bg             Color
	UnderlineColor Color
	Flags          CellFlags
	Hyperlink      HyperlinkID
	// Extra holds zero-width codepoints (combining marks, variation
	// selectors) attached after Char, in arrival order.
	Extra []rune
}

// NewCell returns a cell holding a space with default pen colors.
func NewCell() Cell {
	return Cell{Char: ' ', Fg: DefaultColor, Bg: DefaultColor}
}

// Reset restores the cell to its default, empty state.
func (c *Cell) Reset() {
	*c = NewCell()
}

func (c *Cell) HasFlag(f CellFlags) bool { return c.Flags&f != 0 }
func (c *Cell) SetFlag(f CellFlags)      { c.Flags |= f }
func (c *Cell) ClearFlag(f CellFlags)    { c.Flags &^= f }

func (c *Cell) IsWide() bool       { return c.HasFlag(FlagWideChar) }
func (c *Cell) IsWideSpacer() bool { return c.HasFlag(FlagWideCharSpacer) }

// Copy returns an independent copy of the cell (Extra is cloned so
// mutating one cell's combining marks never aliases another's).
func (c Cell) Copy() Cell {
	cp := c
	if len(c.Extra) > 0 {
		cp.Extra = append([]rune(nil), c.Extra...)
	}
	return cp
}

// Pen is the current graphic-rendition state accumulated by SGR,
// applied to every newly written cell. Grounded on the teacher's
// CellTemplate (terminal.go's `template CellTemplate` field).
type Pen struct {
	Fg             Color
	Bg             Color
	UnderlineColor Color
	Flags          CellFlags
}

// NewPen returns the SGR-reset pen state.
func NewPen() Pen { return Pen{Fg: DefaultColor, Bg: DefaultColor} }

func (p *Pen) SetFlag(f CellFlags)   { p.Flags |= f }
func (p *Pen) ClearFlag(f CellFlags) { p.Flags &^= f }

// Apply stamps the pen's current attributes onto a cell, preserving
// the cell's character and hyperlink.
func (p *Pen) Apply(c *Cell) {
	c.Fg = p.Fg
	c.Bg = p.Bg
	c.UnderlineColor = p.UnderlineColor
	c.Flags = (c.Flags &^ penMask) | (p.Flags & penMask)
}

// penMask is every flag SGR controls; FlagWideChar/FlagWideCharSpacer/
// FlagLeadingWideCharSpacer/FlagWrapped/FlagDirty are grid-structural
// and never touched by Apply.
const penMask = FlagBold | FlagDim | FlagItalic | FlagUnderline |
	FlagDoubleUnderline | FlagCurlyUnderline | FlagDottedUnderline |
	FlagDashedUnderline | FlagUndercurl | FlagBlinkSlow | FlagBlinkFast |
	FlagReverse | FlagHidden | FlagStrike
