package escape

// Mode is a public (ANSI) or DEC-private terminal mode toggled by
// CSI h/l. Grounded on
// _examples/original_source/otty-escape/src/mode.rs's NamedMode/
// NamedPrivateMode raw-value tables. Kept as plain integer constants
// (no bitflags-equivalent needed here - stdlib suffices, each mode is
// set/unset independently) as `Mode{Private bool; Value int}`.
type Mode struct {
	Private bool
	Value   int
}

const (
	ModeInsert           = 4
	ModeLineFeedNewLine  = 20
)

const (
	ModeCursorKeys        = 1
	ModeColumn132         = 3
	ModeOrigin            = 6
	ModeLineWrap          = 7
	ModeBlinkingCursor    = 12
	ModeShowCursor        = 25
	ModeReportMouseClicks = 1000
	ModeReportCellMouseMotion = 1002
	ModeReportAllMouseMotion  = 1003
	ModeReportFocusInOut      = 1004
	ModeSgrMouse              = 1006
	ModeUtf8Mouse             = 1005
	ModeAlternateScroll       = 1007
	ModeUrgencyHints          = 1042
	ModeSwapScreenAndSetRestoreCursor = 1049
	ModeBracketedPaste                = 2004
	ModeSyncUpdate                    = 2026
)

func PublicMode(v int) Mode  { return Mode{Private: false, Value: v} }
func PrivateMode(v int) Mode { return Mode{Private: true, Value: v} }

// LineClearMode selects which part of a line CSI K clears.
type LineClearMode int

const (
	LineClearRight LineClearMode = iota
	LineClearLeft
	LineClearAll
)

// ClearMode selects which part of the screen CSI J clears.
type ClearMode int

const (
	ClearBelow ClearMode = iota
	ClearAbove
	ClearAll
	ClearSaved
)

// TabClearMode selects which tab stops CSI g clears.
type TabClearMode int

const (
	TabClearCurrent TabClearMode = iota
	TabClearAll
)

// KeyboardModes is the Kitty keyboard-protocol progressive-enhancement
// bitset (CSI > u / CSI = u / CSI ? u). Grounded on mode.rs's
// KeyboardModes bitflags.
type KeyboardModes uint8

const (
	KeyboardModeNone KeyboardModes = 0
	DisambiguateEscCodes KeyboardModes = 1 << (iota - 1)
	ReportEventTypes
	ReportAlternateKeys
	ReportAllKeysAsEsc
	ReportAssociatedText
)

// KeyboardModesApplyBehavior selects how a new KeyboardModes value
// combines with the currently active one.
type KeyboardModesApplyBehavior int

const (
	KeyboardModesReplace KeyboardModesApplyBehavior = iota
	KeyboardModesUnion
	KeyboardModesDifference
)

// DynamicColorKind names which OSC 10/11/12/104/110/111/112 dynamic
// color slot is being set or reset.
type DynamicColorKind int

const (
	DynamicColorForeground DynamicColorKind = iota
	DynamicColorBackground
	DynamicColorCursor
)

// ScpCharPath / ScpUpdateMode are DECSCPP-adjacent select-character-
// path parameters (CSI ... k), carried for completeness though no
// component currently acts on the path itself beyond recording it.
type ScpCharPath int

const (
	ScpCharPathDefault ScpCharPath = iota
	ScpCharPathLTR
	ScpCharPathRTL
)

type ScpUpdateMode int

const (
	ScpUpdateModeDefault ScpUpdateMode = iota
	ScpUpdateModeImplicit
	ScpUpdateModeDataToPresentation
)
