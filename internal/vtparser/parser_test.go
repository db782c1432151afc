package vtparser

import "testing"

func run(s string) *Trace {
	p := New()
	tr := &Trace{}
	p.AdvanceAll(tr, []byte(s))
	return tr
}

func TestPrintAscii(t *testing.T) {
	tr := run("hi")
	if len(tr.Events) != 2 || tr.Events[0].Text != "h" || tr.Events[1].Text != "i" {
		t.Fatalf("unexpected events: %+v", tr.Events)
	}
}

func TestCsiCursorUp(t *testing.T) {
	tr := run("\x1b[5A")
	if len(tr.Events) != 1 || tr.Events[0].Kind != "csi" {
		t.Fatalf("unexpected events: %+v", tr.Events)
	}
}

func TestSgrColonSubparamsAccepted(t *testing.T) {
	// Deviation documented in DESIGN.md: colon sub-parameters are
	// collected rather than aborting into CsiIgnore.
	p := New()
	tr := &Trace{}
	p.AdvanceAll(tr, []byte("\x1b[38:2:10:20:30m"))
	if len(tr.Events) != 1 || tr.Events[0].Kind != "csi" {
		t.Fatalf("expected a single csi dispatch, got %+v", tr.Events)
	}
}

func TestCsiParamGroups(t *testing.T) {
	p := New()
	var got [][]Param
	capture := &capturingActor{onCsi: func(params *Params, final byte) {
		got = params.Groups()
	}}
	p.AdvanceAll(capture, []byte("\x1b[38:2:10:20:30m"))
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d: %v", len(got), got)
	}
	if len(got[0]) != 5 {
		t.Fatalf("expected 5 sub-values in group, got %d", len(got[0]))
	}
	if got[0][0].Value != 38 || got[0][4].Value != 30 {
		t.Fatalf("unexpected group values: %+v", got[0])
	}
}

func TestSemicolonStartsNewGroup(t *testing.T) {
	p := New()
	var got [][]Param
	capture := &capturingActor{onCsi: func(params *Params, final byte) {
		got = params.Groups()
	}}
	p.AdvanceAll(capture, []byte("\x1b[1;31m"))
	if len(got) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(got))
	}
}

func TestOscDispatch(t *testing.T) {
	tr := run("\x1b]0;hello\x07")
	if len(tr.Events) != 1 || tr.Events[0].Kind != "osc" || tr.Events[0].Text != "0;hello" {
		t.Fatalf("unexpected events: %+v", tr.Events)
	}
}

func TestDcsHookPutUnhook(t *testing.T) {
	tr := run("\x1bPotty;block;{}\x1b\\")
	if len(tr.Events) == 0 {
		t.Fatal("expected dcs events")
	}
	if tr.Events[0].Kind != "hook" {
		t.Fatalf("expected first event hook, got %+v", tr.Events[0])
	}
	// ESC ends the passthrough (Unhook on exit); the '\' completing the
	// 7-bit ST is then dispatched as an ordinary ESC sequence.
	n := len(tr.Events)
	if n < 2 || tr.Events[n-2].Kind != "unhook" {
		t.Fatalf("expected unhook just before the ST's ESC dispatch, got %+v", tr.Events)
	}
	if last := tr.Events[n-1]; last.Kind != "esc" || last.Text != "\\" {
		t.Fatalf("expected last event to be the ST's ESC \\ dispatch, got %+v", last)
	}
}

func TestUtf8Decoding(t *testing.T) {
	tr := run("caf\xc3\xa9")
	if len(tr.Events) != 4 {
		t.Fatalf("expected 4 print events, got %+v", tr.Events)
	}
	if tr.Events[3].Text != "é" {
		t.Fatalf("expected final rune e-acute, got %q", tr.Events[3].Text)
	}
}

func TestParamOverflowDoesNotPanic(t *testing.T) {
	p := New()
	tr := &Trace{}
	seq := "\x1b["
	for i := 0; i < 400; i++ {
		seq += "1;"
	}
	seq += "1m"
	p.AdvanceAll(tr, []byte(seq))
	// Must complete without panicking; overflow should be reported.
	foundOverflow := false
	for _, e := range tr.Events {
		if e.Kind == "overflow" {
			foundOverflow = true
		}
	}
	if !foundOverflow {
		t.Fatal("expected an overflow event for a 400-parameter sequence")
	}
}

type capturingActor struct {
	Trace
	onCsi func(params *Params, final byte)
}

func (c *capturingActor) CsiDispatch(params *Params, final byte) {
	c.Trace.CsiDispatch(params, final)
	if c.onCsi != nil {
		c.onCsi(params, final)
	}
}

// terminatingActor stops AdvanceUntilTerminated as soon as it sees the
// CSI final byte it is watching for.
type terminatingActor struct {
	capturingActor
	want byte
	done bool
}

func (a *terminatingActor) CsiDispatch(params *Params, final byte) {
	a.capturingActor.CsiDispatch(params, final)
	if final == a.want {
		a.done = true
	}
}

func (a *terminatingActor) Terminated() bool { return a.done }

func TestAdvanceUntilTerminatedStopsAtBoundary(t *testing.T) {
	p := New()
	actor := &terminatingActor{want: 'h'}
	data := []byte("plain\x1b[?2026hmore text after")
	n := p.AdvanceUntilTerminated(actor, data)
	if n != len("plain\x1b[?2026h") {
		t.Fatalf("expected consumption to stop right after the watched CSI, got %d", n)
	}
	if len(actor.Events) == 0 || actor.Events[len(actor.Events)-1].Kind != "csi" {
		t.Fatalf("expected the terminating CSI to have been dispatched, got %+v", actor.Events)
	}
}

func TestAdvanceUntilTerminatedConsumesAllWhenNeverTerminated(t *testing.T) {
	p := New()
	actor := &terminatingActor{want: 'z'}
	data := []byte("no matching sequence here")
	n := p.AdvanceUntilTerminated(actor, data)
	if n != len(data) {
		t.Fatalf("expected full consumption, got %d of %d", n, len(data))
	}
}
