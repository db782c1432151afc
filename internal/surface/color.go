package surface

import (
	"image/color"

	"github.com/otty-term/otty/internal/escape"
)

// StdColor, Color, Rgb and ColorKind are the escape package's action
// vocabulary, aliased here so the rendering-specific code below (the
// palette, RGBA resolution) can refer to them by their bare
// surface-local names without this package owning their definition.
type (
	StdColor  = escape.StdColor
	Color     = escape.Color
	Rgb       = escape.Rgb
	ColorKind = escape.ColorKind
)

const (
	Black   = escape.Black
	Red     = escape.Red
	Green   = escape.Green
	Yellow  = escape.Yellow
	Blue    = escape.Blue
	Magenta = escape.Magenta
	Cyan    = escape.Cyan
	White   = escape.White

	BrightBlack   = escape.BrightBlack
	BrightRed     = escape.BrightRed
	BrightGreen   = escape.BrightGreen
	BrightYellow  = escape.BrightYellow
	BrightBlue    = escape.BrightBlue
	BrightMagenta = escape.BrightMagenta
	BrightCyan    = escape.BrightCyan
	BrightWhite   = escape.BrightWhite

	Foreground = escape.Foreground
	Background = escape.Background
	Cursor     = escape.Cursor

	DimBlack   = escape.DimBlack
	DimRed     = escape.DimRed
	DimGreen   = escape.DimGreen
	DimYellow  = escape.DimYellow
	DimBlue    = escape.DimBlue
	DimMagenta = escape.DimMagenta
	DimCyan    = escape.DimCyan
	DimWhite   = escape.DimWhite

	BrightForeground = escape.BrightForeground
	DimForeground    = escape.DimForeground

	ColorDefault   = escape.ColorDefault
	ColorStd       = escape.ColorStd
	ColorIndexed   = escape.ColorIndexed
	ColorTrueColor = escape.ColorTrueColor
)

var DefaultColor = escape.DefaultColor

func NewStdColor(s StdColor) Color     { return escape.NewStdColor(s) }
func NewIndexedColor(i uint8) Color    { return escape.NewIndexedColor(i) }
func NewTrueColor(r, g, b uint8) Color { return escape.NewTrueColor(r, g, b) }

// DefaultPalette is the standard 256-color palette: 16 named colors
// (0-15), a 216 color cube (16-231), and 24 grayscale steps (232-255).
// Grounded on the teacher's colors.go DefaultPalette.
var DefaultPalette [256]color.RGBA

func init() {
	base := [16]color.RGBA{
		{0, 0, 0, 255}, {205, 49, 49, 255}, {13, 188, 121, 255}, {229, 229, 16, 255},
		{36, 114, 200, 255}, {188, 63, 188, 255}, {17, 168, 205, 255}, {229, 229, 229, 255},
		{102, 102, 102, 255}, {241, 76, 76, 255}, {35, 209, 139, 255}, {245, 245, 67, 255},
		{59, 142, 234, 255}, {214, 112, 214, 255}, {41, 184, 219, 255}, {255, 255, 255, 255},
	}
	copy(DefaultPalette[:16], base[:])

	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

var (
	DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DefaultCursorRGBA = color.RGBA{R: 229, G: 229, B: 229, A: 255}
)

// Palette holds the live 0-255 indexed colors plus the dynamic
// foreground/background/cursor overrides set via OSC 4/10/11/12,
// falling back to DefaultPalette for anything not overridden.
// Grounded on the teacher's Terminal.colors map[int]color.Color.
type Palette struct {
	indexed  [256]*color.RGBA
	fg       *color.RGBA
	bg       *color.RGBA
	cursor   *color.RGBA
}

func NewPalette() *Palette { return &Palette{} }

func (p *Palette) SetIndexed(i uint8, c color.RGBA) { p.indexed[i] = &c }
func (p *Palette) SetForeground(c color.RGBA)       { p.fg = &c }
func (p *Palette) SetBackground(c color.RGBA)       { p.bg = &c }
func (p *Palette) SetCursor(c color.RGBA)           { p.cursor = &c }

func (p *Palette) ResetForeground() { p.fg = nil }
func (p *Palette) ResetBackground() { p.bg = nil }
func (p *Palette) ResetCursor()     { p.cursor = nil }
func (p *Palette) ResetIndexed(i uint8) { p.indexed[i] = nil }

// Resolve converts a Color into a concrete RGBA using this palette,
// falling back to DefaultPalette/DefaultForeground/DefaultBackground.
// Grounded on the teacher's resolveDefaultColor/resolveNamedColor.
func (p *Palette) Resolve(c Color, isForeground bool) color.RGBA {
	switch c.Kind {
	case ColorIndexed:
		if v := p.indexed[c.Indexed]; v != nil {
			return *v
		}
		return DefaultPalette[c.Indexed]
	case ColorTrueColor:
		return color.RGBA{R: c.RGB.R, G: c.RGB.G, B: c.RGB.B, A: 255}
	case ColorStd:
		return p.resolveStd(c.Std, isForeground)
	default:
		if isForeground {
			if p.fg != nil {
				return *p.fg
			}
			return DefaultForeground
		}
		if p.bg != nil {
			return *p.bg
		}
		return DefaultBackground
	}
}

func (p *Palette) resolveStd(s StdColor, isForeground bool) color.RGBA {
	switch {
	case s < 16:
		if v := p.indexed[s]; v != nil {
			return *v
		}
		return DefaultPalette[s]
	case s == Foreground:
		if p.fg != nil {
			return *p.fg
		}
		return DefaultForeground
	case s == Background:
		if p.bg != nil {
			return *p.bg
		}
		return DefaultBackground
	case s == Cursor:
		if p.cursor != nil {
			return *p.cursor
		}
		return DefaultCursorRGBA
	case s >= DimBlack && s <= DimWhite:
		base := p.resolveStd(StdColor(s-DimBlack), isForeground)
		return dim(base)
	case s == BrightForeground:
		return DefaultPalette[15]
	case s == DimForeground:
		fg := p.resolveStd(Foreground, isForeground)
		return dim(fg)
	default:
		if isForeground {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: 255,
	}
}
