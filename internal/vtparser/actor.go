package vtparser

// Actor receives the classified events of the byte stream. It is the
// Go-idiomatic rendering of the reference engine's Actor trait: one
// method per ECMA-48 event kind, dispatched synchronously from
// Parser.Advance so an implementation never needs its own buffering.
type Actor interface {
	// Print is called for a single printable rune in Ground state.
	Print(r rune)
	// Execute is called for a single C0/C1 control byte.
	Execute(b byte)
	// EscDispatch is called when an ESC sequence completes; intermediates
	// holds any collected 0x20-0x2f bytes and final is the dispatch byte.
	EscDispatch(intermediates []byte, final byte)
	// CsiDispatch is called when a CSI sequence completes.
	CsiDispatch(params *Params, final byte)
	// Hook is called when a DCS sequence's parameters are complete and
	// payload bytes are about to start arriving via Put.
	Hook(params *Params, final byte)
	// Put delivers one payload byte of an open DCS sequence.
	Put(b byte)
	// Unhook is called when a DCS sequence's payload is complete.
	Unhook()
	// OscDispatch is called when an OSC string completes; fields holds
	// the ';'-separated raw byte slices (not further decoded).
	OscDispatch(fields [][]byte)
	// Overflow reports that a bound was exceeded: a CSI sequence's
	// parameter or intermediate bound (reported just before its
	// CsiDispatch, which still follows), the DCS payload bound (the
	// excess byte is not Put), or the OSC field-count bound (the extra
	// fields are dropped before OscDispatch). OSC bytes beyond MaxOscRaw
	// and ESC intermediates beyond MaxIntermediates are dropped without
	// an Overflow report.
	Overflow(state State)
}
