package escape

import (
	"fmt"

	"github.com/otty-term/otty/internal/vtparser"
)

// Parser ties the byte-level vtparser.Parser to the semantic Actor
// above it: it wraps a Coalescer (synchronized-update buffering) in
// front of a vtparser.Parser, and itself implements vtparser.Actor so
// every byte-level event is translated into the matching Actor call -
// control dispatch, CSI/OSC dispatch, and the private DCS block-event
// accumulator.
type Parser struct {
	inner *vtparser.Parser
	sync  *Coalescer
	dcs   *dcsAccumulator
}

func NewParser() *Parser {
	return &Parser{
		inner: vtparser.New(),
		sync:  NewCoalescer(),
		dcs:   newDcsAccumulator(vtparser.MaxDcsPayload),
	}
}

// Advance feeds data through the synchronized-update coalescer and,
// for whatever chunks survive it, through the byte-level state
// machine, reporting every resulting event to actor.
func (p *Parser) Advance(actor Actor, data []byte) {
	p.sync.Submit(data, func(chunk []byte) {
		p.inner.AdvanceAll(&bridge{actor: actor, dcs: p.dcs}, chunk)
	})
}

// PendingSyncTimeout reports whether an open synchronized-update block
// has exceeded its timeout and should be force-flushed even though no
// ESU has arrived.
func (p *Parser) PendingSyncTimeout() bool { return p.sync.PendingTimeout() }

// FlushSync force-drains a timed-out synchronized-update buffer.
func (p *Parser) FlushSync(actor Actor) {
	p.sync.ForceFlush(func(chunk []byte) {
		p.inner.AdvanceAll(&bridge{actor: actor, dcs: p.dcs}, chunk)
	})
}

// bridge implements vtparser.Actor, translating each byte-level event
// into the corresponding escape.Actor call.
type bridge struct {
	actor Actor
	dcs   *dcsAccumulator
}

func (b *bridge) Print(r rune) { b.actor.Input(r) }

func (b *bridge) Execute(c byte) { dispatchControl(b.actor, c) }

func (b *bridge) EscDispatch(intermediates []byte, final byte) {
	dispatchEsc(b.actor, intermediates, final)
}

func (b *bridge) CsiDispatch(params *vtparser.Params, final byte) {
	DispatchCSI(b.actor, params, final)
}

// Hook fires on entry into DCS passthrough, with final carrying the
// byte that triggered the transition - here, the first payload byte
// (this private protocol has no real DCS parameter header, so its
// message starts immediately after the DCS introducer).
func (b *bridge) Hook(params *vtparser.Params, final byte) {
	b.dcs.reset()
	b.dcs.put(final)
}

func (b *bridge) Put(c byte) { b.dcs.put(c) }

func (b *bridge) Unhook() { b.dcs.finish(b.actor) }

func (b *bridge) OscDispatch(fields [][]byte) { dispatchOSC(b.actor, fields) }

func (b *bridge) Overflow(state vtparser.State) {
	b.actor.ReportError(fmt.Errorf("escape: parser bound exceeded in state %d", state))
}

// dispatchEsc maps a completed ESC sequence (used for the handful of
// operations that have no CSI form: DECSC/DECRC, charset designation,
// DECALN, the C1-equivalent single-letter codes, and keypad mode) onto
// the Actor. Grounded on
// _examples/original_source/otty-escape/src/control.rs's ESC handling
// and the teacher's handler.go charset/keypad methods.
func dispatchEsc(actor Actor, intermediates []byte, final byte) {
	if len(intermediates) > 0 {
		switch intermediates[0] {
		case '(':
			actor.ConfigureCharset(G0, charsetFor(final))
		case ')':
			actor.ConfigureCharset(G1, charsetFor(final))
		case '*':
			actor.ConfigureCharset(G2, charsetFor(final))
		case '+':
			actor.ConfigureCharset(G3, charsetFor(final))
		case '#':
			if final == '8' {
				actor.Decaln()
			}
		}
		return
	}

	switch final {
	case 'D': // IND
		actor.LineFeed()
	case 'E': // NEL
		actor.LineFeed()
		actor.CarriageReturn()
	case 'M': // RI
		actor.ReverseIndex()
	case 'H': // HTS
		actor.HorizontalTabSet()
	case '7': // DECSC
		actor.SaveCursorPosition()
	case '8': // DECRC
		actor.RestoreCursorPosition()
	case 'c': // RIS
		actor.ResetState()
	case '=': // DECKPAM
		actor.SetKeypadApplicationMode()
	case '>': // DECKPNM
		actor.UnsetKeypadApplicationMode()
	}
}

func charsetFor(final byte) Charset {
	if final == '0' {
		return CharsetLineDrawing
	}
	return CharsetASCII
}
