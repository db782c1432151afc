package escape

import (
	"testing"
)

type recordingActor struct {
	noopActor
	calls []string
}

func (r *recordingActor) LineFeed()         { r.calls = append(r.calls, "lf") }
func (r *recordingActor) CarriageReturn()   { r.calls = append(r.calls, "cr") }
func (r *recordingActor) Backspace()        { r.calls = append(r.calls, "bs") }
func (r *recordingActor) Tab(n int)         { r.calls = append(r.calls, "tab") }
func (r *recordingActor) Bell()             { r.calls = append(r.calls, "bell") }
func (r *recordingActor) Substitute()       { r.calls = append(r.calls, "sub") }
func (r *recordingActor) ReverseIndex()     { r.calls = append(r.calls, "ri") }
func (r *recordingActor) HorizontalTabSet() { r.calls = append(r.calls, "hts") }
func (r *recordingActor) SetActiveCharset(idx CharsetIndex) {
	if idx == G1 {
		r.calls = append(r.calls, "so")
	} else {
		r.calls = append(r.calls, "si")
	}
}

func TestDispatchControlBasics(t *testing.T) {
	cases := []struct {
		b    byte
		want string
	}{
		{0x09, "tab"},
		{0x08, "bs"},
		{0x0d, "cr"},
		{0x0a, "lf"},
		{0x07, "bell"},
		{0x1a, "sub"},
		{0x0e, "so"},
		{0x0f, "si"},
		{0x88, "hts"},
		{0x8d, "ri"},
	}
	for _, c := range cases {
		r := &recordingActor{}
		dispatchControl(r, c.b)
		if len(r.calls) != 1 || r.calls[0] != c.want {
			t.Errorf("byte %#x: expected %q, got %v", c.b, c.want, r.calls)
		}
	}
}

func TestDispatchControlNextLineIsLineFeedThenCr(t *testing.T) {
	r := &recordingActor{}
	dispatchControl(r, 0x85)
	if len(r.calls) != 2 || r.calls[0] != "lf" || r.calls[1] != "cr" {
		t.Fatalf("unexpected NEL dispatch: %v", r.calls)
	}
}
