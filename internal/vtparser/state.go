// Package vtparser implements the byte-level ECMA-48/DEC VT state
// machine: it classifies every incoming byte into print/execute/
// escape/CSI/DCS/OSC events and reports them to an Actor. It never
// interprets the semantics of a sequence - that is the job of the
// escape package one layer up.
package vtparser

// State is one node of the VT/ECMA-48 state diagram.
type State uint8

const (
	Ground State = iota
	Escape
	EscapeIntermediate
	CsiEntry
	CsiParam
	CsiIntermediate
	CsiIgnore
	DcsEntry
	DcsParam
	DcsIntermediate
	DcsPassthrough
	DcsIgnore
	OscString
	SosPmApcString
	Utf8Sequence
)

// action is the internal effect a transition carries, consumed by
// Parser.Advance before the byte-classification is reported to the Actor.
type action uint8

const (
	actionNone action = iota
	actionPrint
	actionExecute
	actionClear
	actionCollect
	actionParam
	actionIgnore
	actionHook
	actionPut
	actionUnhook
	actionOscStart
	actionOscPut
	actionOscEnd
	actionCsiDispatch
	actionEscDispatch
	actionUtf8
)

// anywhere handles the bytes whose meaning does not depend on the
// current state (C1 controls, and the state-entering bytes ESC, CSI,
// DCS, OSC, SOS/PM/APC).
func anywhere(state State, b byte) (State, action) {
	switch {
	case b == 0x18 || b == 0x1a || (b >= 0x80 && b <= 0x8f) || (b >= 0x91 && b <= 0x97) || b == 0x99 || b == 0x9a:
		return Ground, actionExecute
	case b == 0x9c:
		return Ground, actionNone
	case b == 0x1b:
		return Escape, actionNone
	case b == 0x98 || b == 0x9e || b == 0x9f:
		return SosPmApcString, actionNone
	case b == 0x90:
		return DcsEntry, actionNone
	case b == 0x9d:
		return OscString, actionNone
	case b == 0x9b:
		return CsiEntry, actionNone
	default:
		return state, actionNone
	}
}

func ground(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return Ground, actionExecute
	case b >= 0x20 && b <= 0x7f:
		return Ground, actionPrint
	case (b >= 0xc2 && b <= 0xdf) || (b >= 0xe0 && b <= 0xef) || (b >= 0xf0 && b <= 0xf4):
		return Utf8Sequence, actionUtf8
	default:
		return anywhere(Ground, b)
	}
}

func escape(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return Escape, actionExecute
	case b == 0x7f:
		return Escape, actionIgnore
	case b >= 0x20 && b <= 0x2f:
		return EscapeIntermediate, actionCollect
	case (b >= 0x30 && b <= 0x4f) || (b >= 0x51 && b <= 0x57) || b == 0x59 || b == 0x5a || b == 0x5c || (b >= 0x60 && b <= 0x7e):
		return Ground, actionEscDispatch
	case b == 0x5b:
		return CsiEntry, actionNone
	case b == 0x5d:
		return OscString, actionNone
	case b == 0x50:
		return DcsEntry, actionNone
	case b == 0x58 || b == 0x5e || b == 0x5f:
		return SosPmApcString, actionNone
	default:
		return anywhere(Escape, b)
	}
}

func escapeIntermediate(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return EscapeIntermediate, actionExecute
	case b >= 0x20 && b <= 0x2f:
		return EscapeIntermediate, actionCollect
	case b == 0x7f:
		return EscapeIntermediate, actionIgnore
	case b >= 0x30 && b <= 0x7e:
		return Ground, actionEscDispatch
	default:
		return anywhere(EscapeIntermediate, b)
	}
}

func csiEntry(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return CsiEntry, actionExecute
	case b == 0x7f:
		return CsiEntry, actionIgnore
	case b >= 0x20 && b <= 0x2f:
		return CsiIntermediate, actionCollect
	// Deviation from the narrowly-scoped reference engine (which sends
	// 0x3a straight to CsiIgnore): SGR sub-parameters (38:2:r:g:b) must
	// be accepted, so a colon here starts a sub-parameter of the
	// parameter list instead of aborting the sequence.
	case b == 0x3a:
		return CsiParam, actionParam
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return CsiParam, actionParam
	case b >= 0x3c && b <= 0x3f:
		return CsiParam, actionCollect
	case b >= 0x40 && b <= 0x7e:
		return Ground, actionCsiDispatch
	default:
		return anywhere(CsiEntry, b)
	}
}

func csiParam(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return CsiParam, actionExecute
	case b == 0x3a:
		return CsiParam, actionParam
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return CsiParam, actionParam
	case b == 0x7f:
		return CsiParam, actionIgnore
	case b >= 0x3c && b <= 0x3f:
		return CsiIgnore, actionNone
	case b >= 0x20 && b <= 0x2f:
		return CsiIntermediate, actionCollect
	case b >= 0x40 && b <= 0x7e:
		return Ground, actionCsiDispatch
	default:
		return anywhere(CsiParam, b)
	}
}

func csiIntermediate(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return CsiIntermediate, actionExecute
	case b >= 0x20 && b <= 0x2f:
		return CsiIntermediate, actionCollect
	case b == 0x7f:
		return CsiIntermediate, actionIgnore
	case b >= 0x30 && b <= 0x3f:
		return CsiIntermediate, actionNone
	case b >= 0x40 && b <= 0x7e:
		return Ground, actionCsiDispatch
	default:
		return anywhere(CsiIntermediate, b)
	}
}

func csiIgnore(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return CsiIgnore, actionExecute
	case (b >= 0x20 && b <= 0x3f) || b == 0x7f:
		return CsiIgnore, actionIgnore
	case b >= 0x40 && b <= 0x7e:
		return Ground, actionNone
	default:
		return anywhere(CsiIgnore, b)
	}
}

func dcsEntry(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return DcsEntry, actionExecute
	case b == 0x7f:
		return DcsEntry, actionIgnore
	case b == 0x3a:
		return DcsIgnore, actionNone
	case b >= 0x20 && b <= 0x2f:
		return DcsIntermediate, actionCollect
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return DcsParam, actionParam
	case b >= 0x3c && b <= 0x3f:
		return DcsParam, actionCollect
	case b >= 0x40 && b <= 0x7e:
		return DcsPassthrough, actionNone
	default:
		return anywhere(DcsEntry, b)
	}
}

func dcsParam(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f) || b == 0x7f:
		return DcsParam, actionIgnore
	case (b >= 0x30 && b <= 0x39) || b == 0x3b:
		return DcsParam, actionParam
	case b == 0x3a || (b >= 0x3c && b <= 0x3f):
		return DcsIgnore, actionNone
	case b >= 0x20 && b <= 0x2f:
		return DcsIntermediate, actionCollect
	case b >= 0x40 && b <= 0x7e:
		return DcsPassthrough, actionNone
	default:
		return anywhere(DcsParam, b)
	}
}

func dcsIntermediate(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f) || b == 0x7f:
		return DcsIntermediate, actionIgnore
	case b >= 0x20 && b <= 0x2f:
		return DcsIntermediate, actionCollect
	case b >= 0x30 && b <= 0x3f:
		return DcsIgnore, actionNone
	case b >= 0x40 && b <= 0x7e:
		return DcsPassthrough, actionNone
	default:
		return anywhere(DcsIntermediate, b)
	}
}

func dcsPassthrough(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f) || (b >= 0x20 && b <= 0x7e):
		return DcsPassthrough, actionPut
	case b == 0x7f:
		return DcsPassthrough, actionIgnore
	default:
		return anywhere(DcsPassthrough, b)
	}
}

func dcsIgnore(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f) || (b >= 0x20 && b <= 0x7f):
		return DcsIgnore, actionIgnore
	default:
		return anywhere(DcsIgnore, b)
	}
}

func oscString(b byte) (State, action) {
	switch {
	case (b <= 0x06) || (b >= 0x08 && b <= 0x17) || b == 0x19 || (b >= 0x1c && b <= 0x1f):
		return OscString, actionIgnore
	case b == 0x07:
		return Ground, actionIgnore
	case b >= 0x20 && b <= 0x7f:
		return OscString, actionOscPut
	case (b >= 0xc2 && b <= 0xdf) || (b >= 0xe0 && b <= 0xef) || (b >= 0xf0 && b <= 0xf4):
		return Utf8Sequence, actionUtf8
	default:
		return anywhere(OscString, b)
	}
}

func sosPmApcString(b byte) (State, action) {
	switch {
	case b <= 0x17 || b == 0x19 || (b >= 0x1c && b <= 0x1f) || (b >= 0x20 && b <= 0x7f):
		return SosPmApcString, actionIgnore
	default:
		return anywhere(SosPmApcString, b)
	}
}

func entryAction(s State) action {
	switch s {
	case Escape, CsiEntry, DcsEntry:
		return actionClear
	case DcsPassthrough:
		return actionHook
	case OscString:
		return actionOscStart
	default:
		return actionNone
	}
}

func exitAction(s State) action {
	switch s {
	case DcsPassthrough:
		return actionUnhook
	case OscString:
		return actionOscEnd
	default:
		return actionNone
	}
}

// transit is the pure (state, byte) -> (next_state, action) function
// that drives the whole parser (Testable Property 1: determinism).
func transit(state State, b byte) (State, action) {
	switch state {
	case Ground:
		return ground(b)
	case Escape:
		return escape(b)
	case EscapeIntermediate:
		return escapeIntermediate(b)
	case CsiEntry:
		return csiEntry(b)
	case CsiParam:
		return csiParam(b)
	case CsiIntermediate:
		return csiIntermediate(b)
	case CsiIgnore:
		return csiIgnore(b)
	case DcsEntry:
		return dcsEntry(b)
	case DcsParam:
		return dcsParam(b)
	case DcsIntermediate:
		return dcsIntermediate(b)
	case DcsPassthrough:
		return dcsPassthrough(b)
	case DcsIgnore:
		return dcsIgnore(b)
	case OscString:
		return oscString(b)
	case SosPmApcString:
		return sosPmApcString(b)
	default:
		return Ground, actionNone
	}
}
