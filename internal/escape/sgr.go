package escape

// AttrKind enumerates the SGR (Select Graphic Rendition) operations.
// Grounded on the teacher's handler.go setTerminalCharAttributeInternal
// switch, which is the fullest account of SGR semantics available in
// the corpus (no csi.rs exists in original_source/ to check this
// against - see DESIGN.md).
type AttrKind int

const (
	AttrReset AttrKind = iota
	AttrBold
	AttrDim
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
	AttrBlinkSlow
	AttrBlinkFast
	AttrReverse
	AttrHidden
	AttrStrike
	AttrCancelBold
	AttrCancelBoldDim
	AttrCancelItalic
	AttrCancelUnderline
	AttrCancelBlink
	AttrCancelReverse
	AttrCancelHidden
	AttrCancelStrike
	AttrForeground
	AttrBackground
	AttrUnderlineColor
	AttrCancelUnderlineColor
)

// Attribute is one SGR directive, with an optional explicit color for
// the Foreground/Background/UnderlineColor kinds.
type Attribute struct {
	Kind  AttrKind
	Color Color
	HasColor bool
}

// ParseSGR walks a CSI `m`-terminated parameter list and returns the
// sequence of Attribute directives it encodes, consuming colon/
// semicolon sub-parameter groups for the extended 38/48/58 color
// forms. An empty parameter list means CSI m with no arguments, which
// is a single implicit reset.
func ParseSGR(groups [][]int64) []Attribute {
	if len(groups) == 0 {
		return []Attribute{{Kind: AttrReset}}
	}
	var out []Attribute
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		if len(g) == 0 {
			continue
		}
		code := g[0]
		switch {
		case code == 0:
			out = append(out, Attribute{Kind: AttrReset})
		case code == 1:
			out = append(out, Attribute{Kind: AttrBold})
		case code == 2:
			out = append(out, Attribute{Kind: AttrDim})
		case code == 3:
			out = append(out, Attribute{Kind: AttrItalic})
		case code == 4:
			out = append(out, underlineAttr(g))
		case code == 5:
			out = append(out, Attribute{Kind: AttrBlinkSlow})
		case code == 6:
			out = append(out, Attribute{Kind: AttrBlinkFast})
		case code == 7:
			out = append(out, Attribute{Kind: AttrReverse})
		case code == 8:
			out = append(out, Attribute{Kind: AttrHidden})
		case code == 9:
			out = append(out, Attribute{Kind: AttrStrike})
		case code == 21:
			out = append(out, Attribute{Kind: AttrDoubleUnderline})
		case code == 22:
			out = append(out, Attribute{Kind: AttrCancelBoldDim})
		case code == 23:
			out = append(out, Attribute{Kind: AttrCancelItalic})
		case code == 24:
			out = append(out, Attribute{Kind: AttrCancelUnderline})
		case code == 25:
			out = append(out, Attribute{Kind: AttrCancelBlink})
		case code == 27:
			out = append(out, Attribute{Kind: AttrCancelReverse})
		case code == 28:
			out = append(out, Attribute{Kind: AttrCancelHidden})
		case code == 29:
			out = append(out, Attribute{Kind: AttrCancelStrike})
		case code >= 30 && code <= 37:
			out = append(out, Attribute{Kind: AttrForeground, Color: NewStdColor(StdColor(code - 30)), HasColor: true})
		case code == 38:
			if c, ok := extendedColor(groups, &i); ok {
				out = append(out, Attribute{Kind: AttrForeground, Color: c, HasColor: true})
			}
		case code == 39:
			out = append(out, Attribute{Kind: AttrForeground, Color: NewStdColor(Foreground), HasColor: true})
		case code >= 40 && code <= 47:
			out = append(out, Attribute{Kind: AttrBackground, Color: NewStdColor(StdColor(code - 40)), HasColor: true})
		case code == 48:
			if c, ok := extendedColor(groups, &i); ok {
				out = append(out, Attribute{Kind: AttrBackground, Color: c, HasColor: true})
			}
		case code == 49:
			out = append(out, Attribute{Kind: AttrBackground, Color: NewStdColor(Background), HasColor: true})
		case code == 58:
			if c, ok := extendedColor(groups, &i); ok {
				out = append(out, Attribute{Kind: AttrUnderlineColor, Color: c, HasColor: true})
			}
		case code == 59:
			out = append(out, Attribute{Kind: AttrCancelUnderlineColor})
		case code >= 90 && code <= 97:
			out = append(out, Attribute{Kind: AttrForeground, Color: NewStdColor(StdColor(code-90).ToBright()), HasColor: true})
		case code >= 100 && code <= 107:
			out = append(out, Attribute{Kind: AttrBackground, Color: NewStdColor(StdColor(code-100).ToBright()), HasColor: true})
		}
	}
	return out
}

// underlineAttr distinguishes plain SGR 4 from its colon-qualified
// style variants (4:0 none, 4:1 single, 4:2 double, 4:3 curly, 4:4
// dotted, 4:5 dashed).
func underlineAttr(g []int64) Attribute {
	if len(g) < 2 {
		return Attribute{Kind: AttrUnderline}
	}
	switch g[1] {
	case 0:
		return Attribute{Kind: AttrCancelUnderline}
	case 2:
		return Attribute{Kind: AttrDoubleUnderline}
	case 3:
		return Attribute{Kind: AttrCurlyUnderline}
	case 4:
		return Attribute{Kind: AttrDottedUnderline}
	case 5:
		return Attribute{Kind: AttrDashedUnderline}
	default:
		return Attribute{Kind: AttrUnderline}
	}
}

// extendedColor parses the 38/48/58 extended color forms, both the
// semicolon-separated classic form (38;5;n or 38;2;r;g;b as distinct
// top-level groups) and the colon sub-parameter form (38:5:n or
// 38:2::r:g:b, with an optional empty color-space id before r/g/b).
// *i is advanced past any extra semicolon-separated groups consumed.
func extendedColor(groups [][]int64, i *int) (Color, bool) {
	g := groups[*i]
	if len(g) >= 2 {
		// colon form: group already holds [38, space, ...]
		switch g[1] {
		case 5:
			if len(g) >= 3 {
				return NewIndexedColor(uint8(g[2])), true
			}
		case 2:
			// 38:2:r:g:b or 38:2::r:g:b (empty color-space id)
			vals := g[2:]
			if len(vals) == 4 {
				vals = vals[1:]
			}
			if len(vals) == 3 {
				return NewTrueColor(uint8(vals[0]), uint8(vals[1]), uint8(vals[2])), true
			}
		}
		return Color{}, false
	}

	// classic semicolon form: consume subsequent top-level groups.
	if *i+1 >= len(groups) {
		return Color{}, false
	}
	mode := groups[*i+1]
	if len(mode) == 0 {
		return Color{}, false
	}
	switch mode[0] {
	case 5:
		if *i+2 >= len(groups) || len(groups[*i+2]) == 0 {
			return Color{}, false
		}
		*i += 2
		return NewIndexedColor(uint8(groups[*i][0])), true
	case 2:
		if *i+4 >= len(groups) {
			return Color{}, false
		}
		r, g2, b := groups[*i+2], groups[*i+3], groups[*i+4]
		if len(r) == 0 || len(g2) == 0 || len(b) == 0 {
			return Color{}, false
		}
		*i += 4
		return NewTrueColor(uint8(r[0]), uint8(g2[0]), uint8(b[0])), true
	}
	return Color{}, false
}
