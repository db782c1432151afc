package surface

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/otty-term/otty/internal/escape"
)

// modeBits is this package's internal encoding of the subset of
// escape.Mode values a Surface tracks, one bit per mode rather than
// the raw CSI numeric value - mirroring the teacher's single
// TerminalMode bitmask (terminal.go's `modes uint32` field) rather
// than the teacher's mode-value-as-bit-position shortcut, since the
// escape package's mode values (1, 1049, 2026, ...) don't pack into a
// dense bitmask on their own.
type modeBits uint32

const (
	modeCursorKeys modeBits = 1 << iota
	modeInsert
	modeColumn132
	modeOrigin
	modeLineWrap
	modeBlinkingCursor
	modeLineFeedNewLine
	modeShowCursor
	modeReportMouseClicks
	modeReportCellMouseMotion
	modeReportAllMouseMotion
	modeReportFocusInOut
	modeUtf8Mouse
	modeSgrMouse
	modeAlternateScroll
	modeUrgencyHints
	modeSwapScreenAndSetRestoreCursor
	modeBracketedPaste
	modeSyncUpdate
	modeKeypadApplication
)

// modeBit maps a CSI mode value onto its tracked bit, reporting false
// for any mode this surface doesn't distinguish (mouse-reporting and
// urgency-hint modes are tracked only so ReportMode/DECRQM can answer
// truthfully; no component currently reads them back out).
func modeBit(value int) (modeBits, bool) {
	switch value {
	case escape.ModeCursorKeys:
		return modeCursorKeys, true
	case escape.ModeInsert:
		return modeInsert, true
	case escape.ModeColumn132:
		return modeColumn132, true
	case escape.ModeOrigin:
		return modeOrigin, true
	case escape.ModeLineWrap:
		return modeLineWrap, true
	case escape.ModeBlinkingCursor:
		return modeBlinkingCursor, true
	case escape.ModeLineFeedNewLine:
		return modeLineFeedNewLine, true
	case escape.ModeShowCursor:
		return modeShowCursor, true
	case escape.ModeReportMouseClicks:
		return modeReportMouseClicks, true
	case escape.ModeReportCellMouseMotion:
		return modeReportCellMouseMotion, true
	case escape.ModeReportAllMouseMotion:
		return modeReportAllMouseMotion, true
	case escape.ModeReportFocusInOut:
		return modeReportFocusInOut, true
	case escape.ModeUtf8Mouse:
		return modeUtf8Mouse, true
	case escape.ModeSgrMouse:
		return modeSgrMouse, true
	case escape.ModeAlternateScroll:
		return modeAlternateScroll, true
	case escape.ModeUrgencyHints:
		return modeUrgencyHints, true
	case escape.ModeSwapScreenAndSetRestoreCursor:
		return modeSwapScreenAndSetRestoreCursor, true
	case escape.ModeBracketedPaste:
		return modeBracketedPaste, true
	case escape.ModeSyncUpdate:
		return modeSyncUpdate, true
	default:
		return 0, false
	}
}

// Option configures a Surface at construction. Grounded on the
// teacher's terminal.go `Option func(*Terminal)`/With* constructors.
type Option func(*Surface)

func WithScrollbackLimit(max int) Option {
	return func(s *Surface) { s.primaryGrid.SetMaxScrollback(max) }
}

func WithResponseProvider(p ResponseProvider) Option {
	return func(s *Surface) { s.response = p }
}

func WithBellProvider(p BellProvider) Option { return func(s *Surface) { s.bell = p } }

func WithTitleProvider(p TitleProvider) Option { return func(s *Surface) { s.titleProvider = p } }

func WithClipboardProvider(p ClipboardProvider) Option {
	return func(s *Surface) { s.clipboard = p }
}

func WithCursorIconProvider(p CursorIconProvider) Option {
	return func(s *Surface) { s.cursorIcon = p }
}

func WithApcProvider(p ApcProvider) Option { return func(s *Surface) { s.apc = p } }
func WithPmProvider(p PmProvider) Option   { return func(s *Surface) { s.pm = p } }
func WithSosProvider(p SosProvider) Option { return func(s *Surface) { s.sos = p } }

func WithBlockProvider(p BlockProvider) Option {
	return func(s *Surface) { s.blockProvider = p }
}

// Surface is a terminal's complete rendering state: the primary and
// alternate grids, cursor and pen, scroll region, mode bits, the
// hyperlink/block/selection side tables, and every pluggable provider
// a VT operation can reach out to. It implements escape.Actor and owns
// no mutex of its own - callers serialize access the way the teacher's
// Terminal.mu does one layer up. Grounded on the teacher's terminal.go
// Terminal struct and handler.go's method bodies throughout.
type Surface struct {
	parser *escape.Parser

	primaryGrid *Grid
	altGrid     *Grid
	grid        *Grid // active buffer: primaryGrid or altGrid

	rows, cols int

	cursor      Cursor
	savedCursor *SavedCursor

	scrollTop, scrollBottom int
	altScreen               bool
	scrollOffset            int

	modes         modeBits
	pen           Pen
	charsets      [4]Charset
	activeCharset CharsetIndex

	keyboardModes   []escape.KeyboardModes
	modifyOtherKeys int

	title      string
	titleStack []string
	workingDir string

	currentHyperlink HyperlinkID

	palette   *Palette
	links     *Links
	blocks    *blockTracker
	selection Selection

	lastError error

	response      ResponseProvider
	bell          BellProvider
	titleProvider TitleProvider
	clipboard     ClipboardProvider
	cursorIcon    CursorIconProvider
	apc           ApcProvider
	pm            PmProvider
	sos           SosProvider
	blockProvider BlockProvider
}

// New builds a Surface sized rows x cols with the default scrollback
// and every provider set to its no-op default, then applies opts.
func New(rows, cols int, opts ...Option) *Surface {
	s := &Surface{
		parser:        escape.NewParser(),
		primaryGrid:   NewGrid(rows, cols, NewRingScrollback(1000)),
		altGrid:       NewGrid(rows, cols, NoopScrollback{}),
		rows:          rows,
		cols:          cols,
		cursor:        NewCursor(),
		scrollTop:     0,
		scrollBottom:  rows,
		modes:         modeLineWrap | modeShowCursor,
		pen:           NewPen(),
		activeCharset: G0,
		palette:       NewPalette(),
		links:         NewLinks(),
		blocks:        newBlockTracker(),
		response:      NoopResponse{},
		bell:          NoopBell{},
		titleProvider: NoopTitle{},
		clipboard:     NoopClipboard{},
		cursorIcon:    NoopCursorIcon{},
		apc:           NoopApc{},
		pm:            NoopPm{},
		sos:           NoopSos{},
		blockProvider: NoopBlockProvider{},
	}
	s.grid = s.primaryGrid
	for i := range s.charsets {
		s.charsets[i] = CharsetASCII
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write feeds PTY output bytes through the escape parser, which
// dispatches every resulting operation back onto this Surface.
// Grounded on the teacher's terminal.go Write (`t.decoder.Write(data)`).
func (s *Surface) Write(data []byte) (int, error) {
	s.parser.Advance(s, data)
	return len(data), nil
}

func (s *Surface) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// FlushPendingSync force-drains a synchronized-update block that has
// sat open past its timeout, so a stalled BSU/ESU pair never wedges
// rendering indefinitely. The runtime layer calls this on a timer.
func (s *Surface) FlushPendingSync() {
	if s.parser.PendingSyncTimeout() {
		s.parser.FlushSync(s)
	}
}

func (s *Surface) LastError() error { return s.lastError }

// Rows, Cols and Cursor give read-only access to layout state a
// renderer or the block/selection machinery needs without going
// through Snapshot.
func (s *Surface) Rows() int      { return s.rows }
func (s *Surface) Cols() int      { return s.cols }
func (s *Surface) CursorPos() Cursor { return s.cursor }
func (s *Surface) AltScreen() bool { return s.altScreen }

// Dirty reports whether the active grid has accumulated damage since
// the last Snapshot, letting a runtime decide whether a poll iteration
// is worth turning into a Frame event.
func (s *Surface) Dirty() bool { return s.grid.Damage().Any() }

// SetScrollOffset sets how far into scrollback the viewport is
// scrolled for Snapshot purposes - 0 shows the live grid, up to
// ScrollbackLen() shows the oldest surviving line at the top. Driven
// by the runtime's ScrollDisplay request.
func (s *Surface) SetScrollOffset(n int) {
	if max := s.grid.ScrollbackLen(); n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	if n == s.scrollOffset {
		return
	}
	s.scrollOffset = n
	s.grid.Damage().MarkFull()
}

func (s *Surface) ScrollOffset() int { return s.scrollOffset }

// viewRow returns the row Snapshot should render at viewport row
// `row`, honoring scrollOffset by substituting scrollback lines for
// the live grid the same way gridRowSource does for selections.
func (s *Surface) viewRow(row int) []Cell {
	if s.scrollOffset == 0 {
		return s.grid.Row(row)
	}
	sbLen := s.grid.ScrollbackLen()
	abs := sbLen - s.scrollOffset + row
	if abs < 0 {
		return newBlankRow(s.grid.Cols())
	}
	if abs < sbLen {
		return s.grid.ScrollbackLine(abs)
	}
	return s.grid.Row(abs - sbLen)
}

func (s *Surface) respond(str string) {
	if s.response == nil {
		return
	}
	io.WriteString(s.response, str)
}

// absoluteRow converts a viewport-relative row into the absolute
// coordinate space Selection and blockTracker use (0 is the oldest
// surviving scrollback line).
func (s *Surface) absoluteRow(row int) int {
	return row + s.grid.ScrollbackLen()
}

// gridRowSource bridges Selection.Extract's rowSource interface onto
// the live grid plus scrollback, splitting an absolute row into
// whichever of the two backs it.
type gridRowSource struct{ s *Surface }

func (g gridRowSource) rowAt(absRow int) []Cell {
	sbLen := g.s.grid.ScrollbackLen()
	if absRow < sbLen {
		return g.s.grid.ScrollbackLine(absRow)
	}
	return g.s.grid.Row(absRow - sbLen)
}

// StartSelection begins a new selection at pos.
func (s *Surface) StartSelection(kind SelectionKind, pos Position) {
	s.selection = Selection{Active: true, Kind: kind, Start: pos, End: pos, Direction: ExtendEnd}
}

// ExtendSelection moves the selection's moving endpoint to pos.
func (s *Surface) ExtendSelection(pos Position) {
	if !s.selection.Active {
		return
	}
	if s.selection.Direction == ExtendStart {
		s.selection.Start = pos
	} else {
		s.selection.End = pos
	}
}

func (s *Surface) ClearSelection() { s.selection = Selection{} }

// SetSelectionDirection overrides which endpoint ExtendSelection moves
// next, letting a caller that tracks drag direction itself (e.g. a
// runtime translating pointer events) drive it explicitly instead of
// relying on StartSelection's ExtendEnd default.
func (s *Surface) SetSelectionDirection(d SelectionDirection) { s.selection.Direction = d }

// SelectedText reads the current selection out of the live grid plus
// scrollback.
func (s *Surface) SelectedText() string {
	return s.selection.Extract(gridRowSource{s})
}

// BlockText returns the text spanned by the block with the given id,
// reading through the same grid+scrollback rowSource SelectedText
// uses. A closed block's text is cached on the Block itself so a
// second copy of the same block doesn't re-walk its rows; a block
// still open (still accumulating lines) is never cached.
func (s *Surface) BlockText(id string) (string, bool) {
	b := s.blocks.Find(id)
	if b == nil {
		return "", false
	}
	if b.CachedText != "" {
		return b.CachedText, true
	}
	sel := Selection{
		Active: true,
		Kind:   SelectionLines,
		Start:  Position{Row: b.StartLine},
		End:    Position{Row: b.StartLine + b.LineCount - 1},
	}
	text := sel.Extract(gridRowSource{s})
	if !s.blocks.isOpen(b) {
		b.CachedText = text
	}
	return text, true
}

func (s *Surface) markDirty(row int) { s.grid.Damage().MarkRow(row) }

// Resize changes the viewport's dimensions. When the primary screen
// shrinks below the cursor's row, excess top rows are first scrolled
// into scrollback so the cursor's row survives; then both grids are
// resized, and a column-width change reflows WRAPLINE-joined logical
// lines at the new width (Grid.Resize/reflowRows). Grounded on the teacher's terminal.go Resize, extended per
// spec with the reflow step the teacher didn't need (fixed-width host).
func (s *Surface) Resize(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		return
	}
	if !s.altScreen && rows < s.rows && s.cursor.Row >= rows {
		n := s.cursor.Row - rows + 1
		oldRows := s.rows
		before := s.grid.ScrollbackLen()
		s.grid.ScrollUp(0, oldRows, n)
		after := s.grid.ScrollbackLen()
		if evicted := n - (after - before); evicted > 0 {
			s.blocks.OnScrollbackEvicted(evicted)
		}
		s.cursor.Row -= n
		if s.cursor.Row < 0 {
			s.cursor.Row = 0
		}
	}

	s.primaryGrid.Resize(rows, cols)
	s.altGrid.Resize(rows, cols)
	s.rows = rows
	s.cols = cols
	s.scrollTop = 0
	s.scrollBottom = rows
	s.clampCursor()
}

// scrollUpRegion scrolls [scrollTop, scrollBottom) up by n, pushing
// evicted lines to scrollback only when the region is the full screen
// and the alternate screen isn't active (spec: scroll-to-scrollback
// happens "only when region equals screen and alt screen is off").
// Grid.ScrollUp itself is region-agnostic about scrollback eligibility,
// so this policy lives here rather than in Grid.
func (s *Surface) scrollUpRegion(n int) {
	if n <= 0 {
		return
	}
	full := s.scrollTop == 0 && s.scrollBottom == s.grid.Rows()
	if !full || s.altScreen {
		orig := s.grid.ScrollbackProvider()
		s.grid.SetScrollbackProvider(NoopScrollback{})
		s.grid.ScrollUp(s.scrollTop, s.scrollBottom, n)
		s.grid.SetScrollbackProvider(orig)
		return
	}
	before := s.grid.ScrollbackLen()
	s.grid.ScrollUp(s.scrollTop, s.scrollBottom, n)
	after := s.grid.ScrollbackLen()
	if evicted := n - (after - before); evicted > 0 {
		s.blocks.OnScrollbackEvicted(evicted)
	}
}

// scrollIfNeeded brings the cursor back inside the scroll region after
// a line-feed-like movement, scrolling the region rather than letting
// the cursor leave its bounds. Grounded on the teacher's
// terminal.go scrollIfNeeded (autoResize growth omitted - out of
// scope per DESIGN.md).
func (s *Surface) scrollIfNeeded() {
	if s.cursor.Row >= s.scrollBottom {
		n := s.cursor.Row - s.scrollBottom + 1
		s.scrollUpRegion(n)
		s.cursor.Row = s.scrollBottom - 1
	} else if s.cursor.Row < s.scrollTop {
		n := s.scrollTop - s.cursor.Row
		s.grid.ScrollDown(s.scrollTop, s.scrollBottom, n)
		s.cursor.Row = s.scrollTop
	}
}

// effectiveRow translates a cursor-positioning row argument into
// absolute grid-row space when origin mode is active, mirroring the
// teacher's terminal.go effectiveRow.
func (s *Surface) effectiveRow(row int) int {
	if s.modes&modeOrigin != 0 {
		return row + s.scrollTop
	}
	return row
}

func (s *Surface) clampCursor() {
	if s.cursor.Row < 0 {
		s.cursor.Row = 0
	}
	if s.cursor.Row >= s.rows {
		s.cursor.Row = s.rows - 1
	}
	if s.cursor.Col < 0 {
		s.cursor.Col = 0
	}
	if s.cursor.Col >= s.cols {
		s.cursor.Col = s.cols - 1
	}
}

var lineDrawingMap = map[rune]rune{
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼',
	'q': '─', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬', 'x': '│',
}

// translateLineDrawing maps the VT100 line-drawing charset's ASCII
// code points onto the box-drawing characters they represent.
// Grounded verbatim on the teacher's handler.go translateLineDrawing.
func translateLineDrawing(r rune) rune {
	if mapped, ok := lineDrawingMap[r]; ok {
		return mapped
	}
	return r
}

const maxCombining = 8

// appendCombining attaches a zero-width rune to the previous cell's
// Extra list, per spec.md's "append to the previous cell's
// extra-codepoints list (bounded)" - the teacher's inputInternal
// instead just drops zero-width runes outright.
func (s *Surface) appendCombining(r rune) {
	if s.cursor.Col == 0 {
		return
	}
	cell := s.grid.Cell(s.cursor.Row, s.cursor.Col-1)
	if cell == nil || len(cell.Extra) >= maxCombining {
		return
	}
	cell.Extra = append(cell.Extra, r)
	s.markDirty(s.cursor.Row)
}

// Input writes one printable rune at the cursor, handling line-drawing
// charset translation, wide-character spacers, autowrap, and
// insert-mode shifting. With LineWrap on, writing the last column
// leaves the cursor one past it (Col == Cols) so the next printable
// rune wraps; cursor motion clamps it back onto the grid. Grounded on
// the teacher's handler.go Input/inputInternal.
func (s *Surface) Input(r rune) {
	if s.charsets[s.activeCharset] == CharsetLineDrawing {
		r = translateLineDrawing(r)
	}

	width := runeWidth(r)
	if width == 0 {
		s.appendCombining(r)
		return
	}

	if s.cursor.Col+width > s.cols {
		switch {
		case s.modes&modeLineWrap != 0:
			s.grid.SetWrapped(s.cursor.Row, true)
			s.cursor.Col = 0
			s.cursor.Row++
			s.scrollIfNeeded()
		case width == 2:
			return
		default:
			s.cursor.Col = s.cols - 1
		}
	}

	if s.modes&modeInsert != 0 {
		s.grid.InsertBlanks(s.cursor.Row, s.cursor.Col, width)
	}

	if width == 2 && s.cursor.Col+1 >= s.cols {
		if s.modes&modeLineWrap == 0 {
			return
		}
		if cell := s.grid.Cell(s.cursor.Row, s.cursor.Col); cell != nil {
			cell.Reset()
			s.pen.Apply(cell)
			cell.SetFlag(FlagLeadingWideCharSpacer)
			s.markDirty(s.cursor.Row)
		}
		s.grid.SetWrapped(s.cursor.Row, true)
		s.cursor.Col = 0
		s.cursor.Row++
		s.scrollIfNeeded()
	}

	if cell := s.grid.Cell(s.cursor.Row, s.cursor.Col); cell != nil {
		cell.Char = r
		cell.Extra = nil
		s.pen.Apply(cell)
		cell.Hyperlink = s.currentHyperlink
		if width == 2 {
			cell.SetFlag(FlagWideChar)
			cell.ClearFlag(FlagWideCharSpacer)
		} else {
			cell.ClearFlag(FlagWideChar | FlagWideCharSpacer)
		}
		s.markDirty(s.cursor.Row)
	}
	s.cursor.Col++

	if width == 2 && s.cursor.Col < s.cols {
		if spacer := s.grid.Cell(s.cursor.Row, s.cursor.Col); spacer != nil {
			spacer.Reset()
			spacer.Fg = s.pen.Fg
			spacer.Bg = s.pen.Bg
			spacer.SetFlag(FlagWideCharSpacer)
			s.markDirty(s.cursor.Row)
		}
		s.cursor.Col++
	}

	if s.cursor.Col >= s.cols && s.modes&modeLineWrap == 0 {
		s.cursor.Col = s.cols - 1
	}
}

func (s *Surface) LineFeed() {
	s.grid.SetWrapped(s.cursor.Row, false)
	if s.modes&modeLineFeedNewLine != 0 {
		s.cursor.Col = 0
	}
	s.cursor.Row++
	s.scrollIfNeeded()
	s.blocks.OnLineFeed()
}

func (s *Surface) CarriageReturn() { s.cursor.Col = 0 }

func (s *Surface) Backspace() {
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
}

func (s *Surface) Tab(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Col = s.grid.NextTabStop(s.cursor.Col)
	}
}

func (s *Surface) MoveBackwardTabs(n int) {
	for i := 0; i < n; i++ {
		s.cursor.Col = s.grid.PrevTabStop(s.cursor.Col)
	}
}

func (s *Surface) HorizontalTabSet() { s.grid.SetTabStop(s.cursor.Col) }

func (s *Surface) ClearTabs(mode escape.TabClearMode) {
	switch mode {
	case escape.TabClearCurrent:
		s.grid.ClearTabStop(s.cursor.Col)
	case escape.TabClearAll:
		s.grid.ClearAllTabStops()
	}
}

func (s *Surface) Goto(row, col int) {
	s.cursor.Row = s.effectiveRow(row)
	s.cursor.Col = col
	s.clampCursor()
}

func (s *Surface) GotoLine(row int) {
	s.cursor.Row = s.effectiveRow(row)
	s.clampCursor()
}

func (s *Surface) GotoCol(col int) {
	s.cursor.Col = col
	s.clampCursor()
}

func (s *Surface) MoveUp(n int)       { s.cursor.Row -= n; s.clampCursor() }
func (s *Surface) MoveDown(n int)     { s.cursor.Row += n; s.clampCursor() }
func (s *Surface) MoveForward(n int)  { s.cursor.Col += n; s.clampCursor() }
func (s *Surface) MoveBackward(n int) { s.cursor.Col -= n; s.clampCursor() }

func (s *Surface) MoveUpCr(n int) {
	s.cursor.Row -= n
	s.cursor.Col = 0
	s.clampCursor()
}

func (s *Surface) MoveDownCr(n int) {
	s.cursor.Row += n
	s.cursor.Col = 0
	s.clampCursor()
}

// SaveCursorPosition and RestoreCursorPosition implement DECSC/DECRC
// and double as the alt-screen swap's position save/restore (mode
// 1049), mirroring the teacher's saveCursorPositionLocked/
// restoreCursorPositionLocked, which the same two code paths share.
func (s *Surface) SaveCursorPosition() {
	s.savedCursor = &SavedCursor{
		Row:          s.cursor.Row,
		Col:          s.cursor.Col,
		Pen:          s.pen,
		OriginMode:   s.modes&modeOrigin != 0,
		CharsetIndex: s.activeCharset,
		Charsets:     s.charsets,
	}
}

func (s *Surface) RestoreCursorPosition() {
	sc := s.savedCursor
	if sc == nil {
		return
	}
	s.cursor.Row = sc.Row
	s.cursor.Col = sc.Col
	s.pen = sc.Pen
	if sc.OriginMode {
		s.modes |= modeOrigin
	} else {
		s.modes &^= modeOrigin
	}
	s.activeCharset = sc.CharsetIndex
	s.charsets = sc.Charsets
	s.clampCursor()
}

func (s *Surface) ReverseIndex() {
	if s.cursor.Row == s.scrollTop {
		s.grid.ScrollDown(s.scrollTop, s.scrollBottom, 1)
	} else if s.cursor.Row > 0 {
		s.cursor.Row--
	}
}

func (s *Surface) InsertBlank(n int) { s.grid.InsertBlanks(s.cursor.Row, s.cursor.Col, n) }

func (s *Surface) InsertBlankLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row >= s.scrollBottom {
		return
	}
	s.grid.InsertLines(s.cursor.Row, n, s.scrollBottom)
}

func (s *Surface) DeleteChars(n int) { s.grid.DeleteChars(s.cursor.Row, s.cursor.Col, n) }

func (s *Surface) DeleteLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row >= s.scrollBottom {
		return
	}
	s.grid.DeleteLines(s.cursor.Row, n, s.scrollBottom)
}

func (s *Surface) EraseChars(n int) {
	s.grid.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cursor.Col+n)
}

func (s *Surface) ClearLine(mode escape.LineClearMode) {
	switch mode {
	case escape.LineClearRight:
		s.grid.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols)
	case escape.LineClearLeft:
		s.grid.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1)
	case escape.LineClearAll:
		s.grid.ClearRow(s.cursor.Row)
	}
}

func (s *Surface) ClearScreen(mode escape.ClearMode) {
	switch mode {
	case escape.ClearBelow:
		s.grid.ClearRowRange(s.cursor.Row, s.cursor.Col, s.cols)
		for row := s.cursor.Row + 1; row < s.rows; row++ {
			s.grid.ClearRow(row)
		}
	case escape.ClearAbove:
		s.grid.ClearRowRange(s.cursor.Row, 0, s.cursor.Col+1)
		for row := 0; row < s.cursor.Row; row++ {
			s.grid.ClearRow(row)
		}
	case escape.ClearAll:
		s.grid.ClearAll()
		s.grid.Damage().MarkFull()
	case escape.ClearSaved:
		s.grid.ClearScrollback()
	}
}

func (s *Surface) ScrollUp(n int)   { s.scrollUpRegion(n) }
func (s *Surface) ScrollDown(n int) { s.grid.ScrollDown(s.scrollTop, s.scrollBottom, n) }

// Decaln implements DECALN, filling the screen with 'E' for alignment
// testing.
func (s *Surface) Decaln() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cell := NewCell()
			cell.Char = 'E'
			s.grid.SetCell(row, col, cell)
		}
	}
}

func (s *Surface) Substitute() {
	cell := s.grid.Cell(s.cursor.Row, s.cursor.Col)
	if cell == nil {
		return
	}
	cell.Char = ' '
	s.pen.Apply(cell)
	s.markDirty(s.cursor.Row)
}

func (s *Surface) SetMode(m escape.Mode)   { s.applyMode(m, true) }
func (s *Surface) UnsetMode(m escape.Mode) { s.applyMode(m, false) }

// applyMode mirrors the teacher's handler.go setModeLocked: most modes
// are a plain bit set/clear, three carry a side effect.
func (s *Surface) applyMode(m escape.Mode, set bool) {
	bit, ok := modeBit(m.Value)
	if !ok {
		return
	}
	switch m.Value {
	case escape.ModeOrigin:
		if set {
			s.cursor.Row = s.scrollTop
			s.cursor.Col = 0
		}
	case escape.ModeShowCursor:
		s.cursor.Visible = set
	case escape.ModeSwapScreenAndSetRestoreCursor:
		s.setAltScreen(set)
	}
	if set {
		s.modes |= bit
	} else {
		s.modes &^= bit
	}
}

// setAltScreen switches the active grid, saving/restoring the cursor
// the same way DECSC/DECRC does and notifying the block tracker that a
// full-screen program has taken over (or given back) the primary
// screen.
func (s *Surface) setAltScreen(enter bool) {
	if enter == s.altScreen {
		return
	}
	if enter {
		s.SaveCursorPosition()
		if b := s.blocks.MarkFullScreen(true); b != nil {
			s.blockProvider.BlockChanged(*b)
		}
		s.altScreen = true
		s.grid = s.altGrid
		s.grid.ClearAll()
	} else {
		s.altScreen = false
		s.grid = s.primaryGrid
		s.RestoreCursorPosition()
	}
	s.grid.Damage().MarkFull()
}

func (s *Surface) ReportMode(m escape.Mode) {
	state := 0
	if bit, ok := modeBit(m.Value); ok {
		if s.modes&bit != 0 {
			state = 1
		} else {
			state = 2
		}
	}
	prefix := ""
	if m.Private {
		prefix = "?"
	}
	s.respond(fmt.Sprintf("\x1b[%s%d;%d$y", prefix, m.Value, state))
}

func (s *Surface) SetScrollingRegion(top, bottom int) {
	top--
	bottom--
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom > s.rows {
		bottom = s.rows
	}
	if top >= bottom {
		return
	}
	s.scrollTop = top
	s.scrollBottom = bottom
	if s.modes&modeOrigin != 0 {
		s.cursor.Row = s.scrollTop
	} else {
		s.cursor.Row = 0
	}
	s.cursor.Col = 0
}

// SetKeyboardMode, PushKeyboardMode and PopKeyboardMode implement the
// Kitty keyboard protocol's stack of *combined* mode values - a stack
// entry is one KeyboardModes bitset, not one individual toggle.
// Grounded on the teacher's handler.go setKeyboardModeInternal.
func (s *Surface) SetKeyboardMode(mode escape.KeyboardModes, behavior escape.KeyboardModesApplyBehavior) {
	if len(s.keyboardModes) == 0 {
		s.keyboardModes = append(s.keyboardModes, 0)
	}
	top := len(s.keyboardModes) - 1
	switch behavior {
	case escape.KeyboardModesReplace:
		s.keyboardModes[top] = mode
	case escape.KeyboardModesUnion:
		s.keyboardModes[top] |= mode
	case escape.KeyboardModesDifference:
		s.keyboardModes[top] &^= mode
	}
}

func (s *Surface) PushKeyboardMode(mode escape.KeyboardModes) {
	s.keyboardModes = append(s.keyboardModes, mode)
}

func (s *Surface) PopKeyboardMode(n int) {
	if n <= 0 {
		return
	}
	if n > len(s.keyboardModes) {
		n = len(s.keyboardModes)
	}
	s.keyboardModes = s.keyboardModes[:len(s.keyboardModes)-n]
}

func (s *Surface) ReportKeyboardMode() {
	var mode escape.KeyboardModes
	if len(s.keyboardModes) > 0 {
		mode = s.keyboardModes[len(s.keyboardModes)-1]
	}
	s.respond(fmt.Sprintf("\x1b[?%du", mode))
}

func (s *Surface) SetModifyOtherKeys(v int) { s.modifyOtherKeys = v }

func (s *Surface) ReportModifyOtherKeys() {
	s.respond(fmt.Sprintf("\x1b[>4;%dm", s.modifyOtherKeys))
}

func (s *Surface) SetCursorStyle(style escape.CursorShape) { s.cursor.Shape = style }

func (s *Surface) ConfigureCharset(index escape.CharsetIndex, charset escape.Charset) {
	if i := int(index); i >= 0 && i < len(s.charsets) {
		s.charsets[i] = charset
	}
}

func (s *Surface) SetActiveCharset(index escape.CharsetIndex) {
	if i := int(index); i >= 0 && i < len(s.charsets) {
		s.activeCharset = index
	}
}

func (s *Surface) SetKeypadApplicationMode()   { s.modes |= modeKeypadApplication }
func (s *Surface) UnsetKeypadApplicationMode() { s.modes &^= modeKeypadApplication }

// SetAttribute applies one SGR directive to the pen template every
// subsequently written cell picks up. Grounded on the teacher's
// handler.go setTerminalCharAttributeInternal.
func (s *Surface) SetAttribute(attr escape.Attribute) {
	switch attr.Kind {
	case escape.AttrReset:
		s.pen = NewPen()
	case escape.AttrBold:
		s.pen.SetFlag(FlagBold)
	case escape.AttrDim:
		s.pen.SetFlag(FlagDim)
	case escape.AttrItalic:
		s.pen.SetFlag(FlagItalic)
	case escape.AttrUnderline:
		s.pen.ClearFlag(FlagDoubleUnderline | FlagCurlyUnderline | FlagDottedUnderline | FlagDashedUnderline)
		s.pen.SetFlag(FlagUnderline)
	case escape.AttrDoubleUnderline:
		s.pen.ClearFlag(FlagUnderline | FlagCurlyUnderline | FlagDottedUnderline | FlagDashedUnderline)
		s.pen.SetFlag(FlagDoubleUnderline)
	case escape.AttrCurlyUnderline:
		s.pen.ClearFlag(FlagUnderline | FlagDoubleUnderline | FlagDottedUnderline | FlagDashedUnderline)
		s.pen.SetFlag(FlagCurlyUnderline)
	case escape.AttrDottedUnderline:
		s.pen.ClearFlag(FlagUnderline | FlagDoubleUnderline | FlagCurlyUnderline | FlagDashedUnderline)
		s.pen.SetFlag(FlagDottedUnderline)
	case escape.AttrDashedUnderline:
		s.pen.ClearFlag(FlagUnderline | FlagDoubleUnderline | FlagCurlyUnderline | FlagDottedUnderline)
		s.pen.SetFlag(FlagDashedUnderline)
	case escape.AttrBlinkSlow:
		s.pen.SetFlag(FlagBlinkSlow)
	case escape.AttrBlinkFast:
		s.pen.SetFlag(FlagBlinkFast)
	case escape.AttrReverse:
		s.pen.SetFlag(FlagReverse)
	case escape.AttrHidden:
		s.pen.SetFlag(FlagHidden)
	case escape.AttrStrike:
		s.pen.SetFlag(FlagStrike)
	case escape.AttrCancelBold:
		s.pen.ClearFlag(FlagBold)
	case escape.AttrCancelBoldDim:
		s.pen.ClearFlag(FlagBold | FlagDim)
	case escape.AttrCancelItalic:
		s.pen.ClearFlag(FlagItalic)
	case escape.AttrCancelUnderline:
		s.pen.ClearFlag(FlagUnderline | FlagDoubleUnderline | FlagCurlyUnderline | FlagDottedUnderline | FlagDashedUnderline)
	case escape.AttrCancelBlink:
		s.pen.ClearFlag(FlagBlinkSlow | FlagBlinkFast)
	case escape.AttrCancelReverse:
		s.pen.ClearFlag(FlagReverse)
	case escape.AttrCancelHidden:
		s.pen.ClearFlag(FlagHidden)
	case escape.AttrCancelStrike:
		s.pen.ClearFlag(FlagStrike)
	case escape.AttrForeground:
		if attr.HasColor {
			s.pen.Fg = attr.Color
		}
	case escape.AttrBackground:
		if attr.HasColor {
			s.pen.Bg = attr.Color
		}
	case escape.AttrUnderlineColor:
		if attr.HasColor {
			s.pen.UnderlineColor = attr.Color
		}
	case escape.AttrCancelUnderlineColor:
		s.pen.UnderlineColor = DefaultColor
	}
}

// ResetState implements RIS: clears the active screen, resets cursor,
// pen, scroll region, modes, charsets and the keyboard-mode stack, and
// drops every palette override. Grounded on the teacher's handler.go
// ResetState.
func (s *Surface) ResetState() {
	s.grid.ClearAll()
	s.grid.Damage().MarkFull()
	s.cursor = NewCursor()
	s.savedCursor = nil
	s.pen = NewPen()
	s.scrollTop = 0
	s.scrollBottom = s.rows
	s.modes = modeLineWrap | modeShowCursor
	for i := range s.charsets {
		s.charsets[i] = CharsetASCII
	}
	s.activeCharset = G0
	s.keyboardModes = nil
	s.modifyOtherKeys = 0
	s.currentHyperlink = 0
	for i := 0; i < 256; i++ {
		s.palette.ResetIndexed(uint8(i))
	}
	s.palette.ResetForeground()
	s.palette.ResetBackground()
	s.palette.ResetCursor()
}

func (s *Surface) IdentifyTerminal(intermediate byte) { s.respond("\x1b[?6c") }

func (s *Surface) DeviceStatus(n int) {
	switch n {
	case 5:
		s.respond("\x1b[0n")
	case 6:
		s.respond(fmt.Sprintf("\x1b[%d;%dR", s.cursor.Row+1, s.cursor.Col+1))
	}
}

func (s *Surface) TextAreaSizeChars() {
	s.respond(fmt.Sprintf("\x1b[8;%d;%dt", s.rows, s.cols))
}

func (s *Surface) TextAreaSizePixels() {
	s.respond(fmt.Sprintf("\x1b[4;%d;%dt", s.rows*20, s.cols*10))
}

// CellSizePixels reports a fixed 10x20 pixel cell, matching the
// teacher's handler.go CellSizePixels default (no size provider is
// wired in - pixel-accurate sizing is out of scope, see DESIGN.md).
func (s *Surface) CellSizePixels() {
	s.respond(fmt.Sprintf("\x1b[6;%d;%dt", 20, 10))
}

func (s *Surface) SetTitle(title string) {
	s.title = title
	s.titleProvider.SetTitle(title)
}

func (s *Surface) PushTitle() {
	s.titleStack = append(s.titleStack, s.title)
	s.titleProvider.PushTitle()
}

func (s *Surface) PopTitle() {
	if len(s.titleStack) == 0 {
		return
	}
	s.title = s.titleStack[len(s.titleStack)-1]
	s.titleStack = s.titleStack[:len(s.titleStack)-1]
	s.titleProvider.PopTitle()
}

func (s *Surface) Title() string { return s.title }

func (s *Surface) SetWorkingDirectory(uri string) { s.workingDir = uri }

func (s *Surface) WorkingDirectory() string { return s.workingDir }

// WorkingDirectoryPath extracts the filesystem path out of a file://
// URI set via OSC 7, mirroring the teacher's handler.go
// WorkingDirectoryPath.
func (s *Surface) WorkingDirectoryPath() string {
	const prefix = "file://"
	if !strings.HasPrefix(s.workingDir, prefix) {
		return ""
	}
	rest := s.workingDir[len(prefix):]
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[idx:]
	}
	return ""
}

func (s *Surface) SetHyperlink(link *escape.Hyperlink) {
	if s.currentHyperlink != 0 {
		s.links.Release(s.currentHyperlink)
	}
	if link == nil {
		s.currentHyperlink = 0
		return
	}
	s.currentHyperlink = s.links.Intern(*link)
}

// parseColorSpec decodes the "rgb:rr/gg/bb" or "#rrggbb" color-spec
// strings xterm's OSC 10/11/12 set commands carry.
func parseColorSpec(spec string) (color.RGBA, bool) {
	if strings.HasPrefix(spec, "#") {
		hex := spec[1:]
		if len(hex) != 6 {
			return color.RGBA{}, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, false
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, true
	}
	spec = strings.TrimPrefix(spec, "rgb:")
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return color.RGBA{}, false
	}
	var vals [3]uint8
	for i, p := range parts {
		if len(p) > 2 {
			p = p[:2]
		}
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		vals[i] = uint8(v)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, true
}

func (s *Surface) SetDynamicColor(kind escape.DynamicColorKind, index int, spec string) {
	rgb, ok := parseColorSpec(spec)
	if !ok {
		return
	}
	switch kind {
	case escape.DynamicColorForeground:
		s.palette.SetForeground(rgb)
	case escape.DynamicColorBackground:
		s.palette.SetBackground(rgb)
	case escape.DynamicColorCursor:
		s.palette.SetCursor(rgb)
	}
}

func (s *Surface) ResetDynamicColor(kind escape.DynamicColorKind, index int) {
	switch kind {
	case escape.DynamicColorForeground:
		s.palette.ResetForeground()
	case escape.DynamicColorBackground:
		s.palette.ResetBackground()
	case escape.DynamicColorCursor:
		s.palette.ResetCursor()
	}
}

// SetColor, ResetColor and QueryColor share one "index" parameter
// space between OSC 4's 0-255 palette slots and OSC 10/11/12's
// Foreground/Background/Cursor sentinels (64/65/66, per the escape
// package's StdColor layout) - the sentinels are checked first, which
// shadows the rarely-used palette entries 64-66 in favor of the
// dynamic-color slots; see DESIGN.md.
func (s *Surface) SetColor(index int, c escape.Color) {
	switch index {
	case int(Foreground):
		s.palette.SetForeground(s.palette.Resolve(c, true))
		return
	case int(Background):
		s.palette.SetBackground(s.palette.Resolve(c, false))
		return
	case int(Cursor):
		s.palette.SetCursor(s.palette.Resolve(c, true))
		return
	}
	if index >= 0 && index < 256 {
		s.palette.SetIndexed(uint8(index), s.palette.Resolve(c, true))
	}
}

func (s *Surface) ResetColor(index int) {
	switch index {
	case int(Foreground):
		s.palette.ResetForeground()
		return
	case int(Background):
		s.palette.ResetBackground()
		return
	case int(Cursor):
		s.palette.ResetCursor()
		return
	}
	if index >= 0 && index < 256 {
		s.palette.ResetIndexed(uint8(index))
	}
}

func (s *Surface) QueryColor(index int) {
	var c escape.Color
	var prefix string
	switch index {
	case int(Foreground):
		c, prefix = NewStdColor(Foreground), "10"
	case int(Background):
		c, prefix = NewStdColor(Background), "11"
	case int(Cursor):
		c, prefix = NewStdColor(Cursor), "12"
	default:
		if index < 0 || index >= 256 {
			return
		}
		c, prefix = NewIndexedColor(uint8(index)), fmt.Sprintf("4;%d", index)
	}
	rgba := s.palette.Resolve(c, true)
	s.respond(fmt.Sprintf("\x1b]%s;rgb:%02x/%02x/%02x\x1b\\", prefix, rgba.R, rgba.G, rgba.B))
}

func (s *Surface) SetCursorIcon(name string) { s.cursorIcon.SetCursorIcon(name) }

// ClipboardLoad answers an OSC 52 "?" query with the provider's
// current content, base64-encoded. Grounded on the teacher's
// handler.go ClipboardLoad.
func (s *Surface) ClipboardLoad(selection byte, terminator string) {
	data := s.clipboard.Read(selection)
	if data == "" {
		return
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(data))
	s.respond("\x1b]52;" + string(selection) + ";" + encoded + terminator)
}

// ClipboardStore forwards an OSC 52 store's already-decoded payload
// (the escape package's OSC dispatcher base64-decodes before calling
// this) to the clipboard provider.
func (s *Surface) ClipboardStore(selection byte, data []byte) {
	s.clipboard.Write(selection, data)
}

func (s *Surface) ApcDispatch(data []byte) { s.apc.Receive(data) }
func (s *Surface) PmDispatch(data []byte)  { s.pm.Receive(data) }
func (s *Surface) SosDispatch(data []byte) { s.sos.Receive(data) }

func (s *Surface) Bell() { s.bell.Ring() }

// BlockEvent applies one shell-integration DCS event to the block
// tracker, at the cursor's current absolute row, and notifies the
// block provider if a block actually changed.
func (s *Surface) BlockEvent(ev escape.BlockEvent) {
	abs := s.absoluteRow(s.cursor.Row)
	if b := s.blocks.HandleEvent(ev, abs, s.altScreen); b != nil {
		s.blockProvider.BlockChanged(*b)
	}
}

// Blocks returns every tracked semantic block, oldest first.
func (s *Surface) Blocks() []Block { return s.blocks.Blocks() }

func (s *Surface) ReportError(err error) { s.lastError = err }

var _ escape.Actor = (*Surface)(nil)
