// Package escape implements the semantic VT actor: it sits on top of
// internal/vtparser's byte-level classification and turns each event
// into one of the operations in the Actor interface below - SGR/CSI/
// OSC/DCS dispatch, mode changes, scrolling, cursor movement - plus
// the synchronized-update coalescer and the private DCS block-event
// protocol.
package escape

// Actor receives every semantic terminal operation. It is the
// Go-idiomatic rendering of the reference engine's tagged Action
// union, following the teacher's own accept-an-interface dispatch
// style (handler.go's Terminal method surface).
type Actor interface {
	// Text
	Input(r rune)
	LineFeed()
	CarriageReturn()
	Backspace()
	Tab(n int)
	MoveBackwardTabs(n int)
	HorizontalTabSet()
	ClearTabs(mode TabClearMode)

	// Cursor movement
	Goto(row, col int)
	GotoLine(row int)
	GotoCol(col int)
	MoveUp(n int)
	MoveDown(n int)
	MoveForward(n int)
	MoveBackward(n int)
	MoveUpCr(n int)
	MoveDownCr(n int)
	SaveCursorPosition()
	RestoreCursorPosition()
	ReverseIndex()

	// Editing
	InsertBlank(n int)
	InsertBlankLines(n int)
	DeleteChars(n int)
	DeleteLines(n int)
	EraseChars(n int)
	ClearLine(mode LineClearMode)
	ClearScreen(mode ClearMode)
	ScrollUp(n int)
	ScrollDown(n int)
	Decaln()
	Substitute()

	// Modes and terminal state
	SetMode(m Mode)
	UnsetMode(m Mode)
	ReportMode(m Mode)
	SetScrollingRegion(top, bottom int)
	SetKeyboardMode(mode KeyboardModes, behavior KeyboardModesApplyBehavior)
	PopKeyboardMode(n int)
	PushKeyboardMode(mode KeyboardModes)
	ReportKeyboardMode()
	SetModifyOtherKeys(v int)
	ReportModifyOtherKeys()
	SetCursorStyle(style CursorShape)
	ConfigureCharset(index CharsetIndex, charset Charset)
	SetActiveCharset(index CharsetIndex)
	SetKeypadApplicationMode()
	UnsetKeypadApplicationMode()

	// Rendition
	SetAttribute(attr Attribute)
	ResetState()

	// Reporting
	IdentifyTerminal(intermediate byte)
	DeviceStatus(n int)
	TextAreaSizeChars()
	TextAreaSizePixels()
	CellSizePixels()

	// Title/OSC-adjacent
	SetTitle(title string)
	PushTitle()
	PopTitle()
	SetWorkingDirectory(uri string)
	SetHyperlink(link *Hyperlink)
	SetDynamicColor(kind DynamicColorKind, index int, spec string)
	ResetDynamicColor(kind DynamicColorKind, index int)
	SetColor(index int, c Color)
	ResetColor(index int)
	QueryColor(index int)
	SetCursorIcon(name string)
	ClipboardLoad(selection byte, terminator string)
	ClipboardStore(selection byte, data []byte)

	// Out-of-band strings
	ApcDispatch(data []byte)
	PmDispatch(data []byte)
	SosDispatch(data []byte)

	// Bell
	Bell()

	// Private DCS block protocol
	BlockEvent(ev BlockEvent)

	// Errors / overflow surfaced up from the byte-level parser or this
	// actor's own bounds.
	ReportError(err error)
}
