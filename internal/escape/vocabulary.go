package escape

// This file holds the plain value types the Actor action vocabulary is
// expressed in - color, cursor shape, charset selection, hyperlinks.
// They live here rather than in internal/surface because the surface
// model depends on the actor's vocabulary, not the other way around
// (internal/surface imports this package; this package imports
// nothing from internal/surface). Grounded on the same reference
// sources as the teacher's cell.go/cursor.go/colors.go, moved one
// layer up so csi.go/osc.go/sgr.go can use them directly.

// ColorKind tags which form a Color value holds.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorStd
	ColorIndexed
	ColorTrueColor
)

// Color is a tagged union of every color form a cell can carry: the
// default pen color, one of the sixteen/semantic named colors, a
// palette index (0-255), or a direct 24-bit RGB value.
type Color struct {
	Kind    ColorKind
	Std     StdColor
	Indexed uint8
	RGB     Rgb
}

// Rgb is a direct 24-bit color component triple.
type Rgb struct {
	R, G, B uint8
}

// String renders an Rgb as a "#rrggbb" hex triple, mirroring
// color.rs's Display impl for Rgb.
func (c Rgb) String() string {
	const hex = "0123456789abcdef"
	buf := [7]byte{'#'}
	put := func(i int, v uint8) {
		buf[i] = hex[v>>4]
		buf[i+1] = hex[v&0xf]
	}
	put(1, c.R)
	put(3, c.G)
	put(5, c.B)
	return string(buf[:])
}

var DefaultColor = Color{Kind: ColorDefault}

func NewStdColor(s StdColor) Color     { return Color{Kind: ColorStd, Std: s} }
func NewIndexedColor(i uint8) Color    { return Color{Kind: ColorIndexed, Indexed: i} }
func NewTrueColor(r, g, b uint8) Color { return Color{Kind: ColorTrueColor, RGB: Rgb{r, g, b}} }

// StdColor names one of the terminal's sixteen ANSI colors plus the
// semantic slots (foreground/background/cursor and their dim/bright
// variants) that SGR and OSC 10/11/12 address by name rather than by
// RGB value. Grounded on
// _examples/original_source/otty-escape/src/color.rs's StdColor enum.
type StdColor uint8

const (
	Black StdColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

const (
	Foreground StdColor = 64 + iota
	Background
	Cursor
	DimBlack
	DimRed
	DimGreen
	DimYellow
	DimBlue
	DimMagenta
	DimCyan
	DimWhite
	BrightForeground
	DimForeground
)

// ToBright returns the bright variant of a standard or dim color,
// mirroring color.rs's StdColor::to_bright.
func (s StdColor) ToBright() StdColor {
	switch s {
	case Foreground:
		return BrightForeground
	case Black:
		return BrightBlack
	case Red:
		return BrightRed
	case Green:
		return BrightGreen
	case Yellow:
		return BrightYellow
	case Blue:
		return BrightBlue
	case Magenta:
		return BrightMagenta
	case Cyan:
		return BrightCyan
	case White:
		return BrightWhite
	case DimForeground:
		return Foreground
	case DimBlack:
		return Black
	case DimRed:
		return Red
	case DimGreen:
		return Green
	case DimYellow:
		return Yellow
	case DimBlue:
		return Blue
	case DimMagenta:
		return Magenta
	case DimCyan:
		return Cyan
	case DimWhite:
		return White
	default:
		return s
	}
}

// ToDim returns the dim variant of a standard or bright color,
// mirroring color.rs's StdColor::to_dim.
func (s StdColor) ToDim() StdColor {
	switch s {
	case Black:
		return DimBlack
	case Red:
		return DimRed
	case Green:
		return DimGreen
	case Yellow:
		return DimYellow
	case Blue:
		return DimBlue
	case Magenta:
		return DimMagenta
	case Cyan:
		return DimCyan
	case White:
		return DimWhite
	case Foreground:
		return DimForeground
	case BrightBlack:
		return Black
	case BrightRed:
		return Red
	case BrightGreen:
		return Green
	case BrightYellow:
		return Yellow
	case BrightBlue:
		return Blue
	case BrightMagenta:
		return Magenta
	case BrightCyan:
		return Cyan
	case BrightWhite:
		return White
	case BrightForeground:
		return Foreground
	default:
		return s
	}
}

// CursorShape determines how the cursor is rendered (DECSCUSR / OSC 50
// CursorShape=). Grounded on the teacher's cursor.go CursorStyle.
type CursorShape int

const (
	CursorBlinkingBlock CursorShape = iota
	CursorSteadyBlock
	CursorBlinkingUnderline
	CursorSteadyUnderline
	CursorBlinkingBar
	CursorSteadyBar
)

// Charset selects a character-encoding variant for a G0-G3 slot.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetLineDrawing
)

// CharsetIndex selects one of the four character-set slots.
type CharsetIndex int

const (
	G0 CharsetIndex = iota
	G1
	G2
	G3
)

// Hyperlink is the payload OSC 8 attaches to a run of cells: an
// optional caller-supplied id= key (used to group non-adjacent runs
// of the same link) and the URI itself.
type Hyperlink struct {
	ID  string
	URI string
}
