package escape

import "github.com/otty-term/otty/internal/vtparser"

// DispatchCSI decodes one complete CSI sequence - its accumulated
// parameters, DEC marker byte and final byte - into the matching
// Actor call. Grounded on the CSI final-byte table (cursor motion,
// scroll, erase, insert/delete, tabs, modes, SGR, DA/DSR, scroll
// region, save/restore, window ops, keyboard protocol, sync update)
// together with the teacher's handler.go method surface for exact
// argument shapes (1-based row/col in CUP/CHA/VPA; count parameters
// default to 1, and an explicit 0 counts as 1).
func DispatchCSI(actor Actor, params *vtparser.Params, final byte) {
	marker := params.Marker()

	switch final {
	case 'A':
		actor.MoveUp(n1(params, 0))
	case 'B':
		actor.MoveDown(n1(params, 0))
	case 'C':
		actor.MoveForward(n1(params, 0))
	case 'D':
		actor.MoveBackward(n1(params, 0))
	case 'E':
		actor.MoveDownCr(n1(params, 0))
	case 'F':
		actor.MoveUpCr(n1(params, 0))
	case 'G', '`':
		actor.GotoCol(n1(params, 0) - 1)
	case 'd':
		actor.GotoLine(n1(params, 0) - 1)
	case 'H', 'f':
		actor.Goto(n1(params, 0)-1, n1(params, 1)-1)

	case 'S':
		actor.ScrollUp(n1(params, 0))
	case 'T':
		actor.ScrollDown(n1(params, 0))

	case 'J':
		actor.ClearScreen(ClearMode(n0(params, 0)))
	case 'K':
		actor.ClearLine(LineClearMode(n0(params, 0)))

	case '@':
		actor.InsertBlank(n1(params, 0))
	case 'P':
		actor.DeleteChars(n1(params, 0))
	case 'X':
		actor.EraseChars(n1(params, 0))
	case 'L':
		actor.InsertBlankLines(n1(params, 0))
	case 'M':
		actor.DeleteLines(n1(params, 0))

	case 'g':
		if n0(params, 0) == 3 {
			actor.ClearTabs(TabClearAll)
		} else {
			actor.ClearTabs(TabClearCurrent)
		}
	case 'Z':
		actor.MoveBackwardTabs(n1(params, 0))
	case 'I':
		actor.Tab(n1(params, 0))

	case 'h':
		dispatchModeChange(actor, params, marker, true)
	case 'l':
		dispatchModeChange(actor, params, marker, false)

	case 'm':
		dispatchSGR(actor, params)

	case 'c':
		dispatchDA(actor, params)
	case 'n':
		actor.DeviceStatus(n0(params, 0))

	case 'r':
		dispatchScrollingRegion(actor, params)

	case 's':
		if marker == 0 {
			actor.SaveCursorPosition()
		}
	case 'u':
		dispatchU(actor, params, marker)

	case 't':
		dispatchWindowOp(actor, params)
	}
}

func dispatchSGR(actor Actor, params *vtparser.Params) {
	groups := params.Groups()
	raw := make([][]int64, len(groups))
	for i, g := range groups {
		vals := make([]int64, len(g))
		for j, p := range g {
			vals[j] = p.Value
		}
		raw[i] = vals
	}
	for _, attr := range ParseSGR(raw) {
		actor.SetAttribute(attr)
	}
}

func dispatchModeChange(actor Actor, params *vtparser.Params, marker byte, set bool) {
	for _, v := range groupValues(params) {
		m := Mode{Private: marker == '?', Value: int(v)}
		if set {
			actor.SetMode(m)
		} else {
			actor.UnsetMode(m)
		}
	}
}

func dispatchDA(actor Actor, params *vtparser.Params) {
	var intermediate byte
	if ints := params.Intermediates(); len(ints) > 0 {
		intermediate = ints[0]
	}
	actor.IdentifyTerminal(intermediate)
}

// dispatchScrollingRegion passes 1-based top/bottom straight through;
// SetScrollingRegion itself does the 1-based-to-0-based conversion
// and the "0 means full height" clamping, matching DECSTBM.
func dispatchScrollingRegion(actor Actor, params *vtparser.Params) {
	actor.SetScrollingRegion(n1(params, 0), n0(params, 1))
}

// dispatchU handles CSI u (plain restore-cursor), and the kitty
// keyboard-protocol family distinguished by DEC marker: `>u` push,
// `<u` pop, `=u` set, `?u` report/query.
func dispatchU(actor Actor, params *vtparser.Params, marker byte) {
	switch marker {
	case '>':
		actor.PushKeyboardMode(KeyboardModes(n0(params, 0)))
	case '<':
		actor.PopKeyboardMode(n1(params, 0))
	case '=':
		behavior := KeyboardModesApplyBehavior(n0(params, 1))
		actor.SetKeyboardMode(KeyboardModes(n0(params, 0)), behavior)
	case '?':
		actor.ReportKeyboardMode()
	default:
		actor.RestoreCursorPosition()
	}
}

func dispatchWindowOp(actor Actor, params *vtparser.Params) {
	switch n0(params, 0) {
	case 22:
		actor.PushTitle()
	case 23:
		actor.PopTitle()
	case 18:
		actor.TextAreaSizeChars()
	case 14:
		actor.TextAreaSizePixels()
	}
}

// groupValues returns each top-level CSI parameter's value (ignoring
// colon sub-parameters), defaulting absent values to 0 - the
// convention CSI h/l mode lists use for each element.
func groupValues(params *vtparser.Params) []int64 {
	groups := params.Groups()
	if len(groups) == 0 {
		return nil
	}
	out := make([]int64, len(groups))
	for i, g := range groups {
		if len(g) > 0 && g[0].HasValue {
			out[i] = g[0].Value
		}
	}
	return out
}

// n1 returns the i-th top-level parameter, defaulting to 1 (and
// treating an explicit 0 as 1, the common CSI "count" convention).
func n1(params *vtparser.Params, i int) int {
	v := int(params.Int(i, 1))
	if v == 0 {
		v = 1
	}
	return v
}

// n0 returns the i-th top-level parameter, defaulting to 0.
func n0(params *vtparser.Params, i int) int {
	return int(params.Int(i, 0))
}
