package escape

// dispatchControl maps a single C0/C1 control byte, as reported by
// vtparser's Execute action, onto the semantic Actor. Grounded on
// _examples/original_source/otty-escape/src/control.rs's
// ControlCode::perform match, translated onto the teacher's
// handler.go method names (Backspace/CarriageReturn/LineFeed/Tab/
// Bell/Substitute/SetActiveCharset).
func dispatchControl(actor Actor, b byte) {
	switch b {
	case 0x09: // HT
		actor.Tab(1)
	case 0x08: // BS
		actor.Backspace()
	case 0x0d: // CR
		actor.CarriageReturn()
	case 0x0a, 0x0c, 0x0b: // LF, FF, VT
		actor.LineFeed()
	case 0x07: // BEL
		actor.Bell()
	case 0x1a: // SUB
		actor.Substitute()
	case 0x0e: // SO
		actor.SetActiveCharset(G1)
	case 0x0f: // SI
		actor.SetActiveCharset(G0)
	case 0x84: // IND
		actor.LineFeed()
	case 0x85: // NEL
		actor.LineFeed()
		actor.CarriageReturn()
	case 0x88: // HTS
		actor.HorizontalTabSet()
	case 0x8d: // RI
		actor.ReverseIndex()
	default:
		// Every other C0/C1 code (NUL and the various transmission-
		// control codes) carries no terminal-rendering effect here.
	}
}
