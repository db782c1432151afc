package escape

import (
	"testing"
)

type oscRecorder struct {
	noopActor
	title       string
	cwd         string
	link        *Hyperlink
	colors      map[int]Color
	queried     []int
	resetColors []int
	icon        string
	cursorShape *CursorShape
}

func newOscRecorder() *oscRecorder {
	return &oscRecorder{colors: map[int]Color{}}
}

func (r *oscRecorder) SetTitle(title string)            { r.title = title }
func (r *oscRecorder) SetWorkingDirectory(uri string)    { r.cwd = uri }
func (r *oscRecorder) SetHyperlink(l *Hyperlink) { r.link = l }
func (r *oscRecorder) SetColor(index int, c Color) {
	r.colors[index] = c
}
func (r *oscRecorder) QueryColor(index int)    { r.queried = append(r.queried, index) }
func (r *oscRecorder) ResetColor(index int)    { r.resetColors = append(r.resetColors, index) }
func (r *oscRecorder) SetCursorIcon(name string) { r.icon = name }
func (r *oscRecorder) SetCursorStyle(s CursorShape) { r.cursorShape = &s }

func fields(parts ...string) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = []byte(p)
	}
	return out
}

func TestOSCSetWindowTitleTrimsAndJoins(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("0", "  First Title  "))
	if r.title != "First Title" {
		t.Fatalf("unexpected title: %q", r.title)
	}

	r2 := newOscRecorder()
	dispatchOSC(r2, fields("2", "Part1", "Part2"))
	if r2.title != "Part1;Part2" {
		t.Fatalf("unexpected title: %q", r2.title)
	}
}

func TestOSCHyperlinkOpenAndClose(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("8", "id=session", "https://example.com", "foo=bar"))
	if r.link == nil || r.link.ID != "session" || r.link.URI != "https://example.com;foo=bar" {
		t.Fatalf("unexpected link: %+v", r.link)
	}

	r2 := newOscRecorder()
	r2.link = &Hyperlink{URI: "placeholder"}
	dispatchOSC(r2, fields("8", "", ""))
	if r2.link != nil {
		t.Fatalf("expected hyperlink cleared, got %+v", r2.link)
	}
}

func TestOSCSetIndexedColorsAndQuery(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("4", "1", "#112233", "2", "#445566"))
	if r.colors[1] != NewTrueColor(0x11, 0x22, 0x33) {
		t.Errorf("unexpected color 1: %+v", r.colors[1])
	}
	if r.colors[2] != NewTrueColor(0x44, 0x55, 0x66) {
		t.Errorf("unexpected color 2: %+v", r.colors[2])
	}

	r2 := newOscRecorder()
	dispatchOSC(r2, fields("4", "7", "?"))
	if len(r2.queried) != 1 || r2.queried[0] != 7 {
		t.Fatalf("expected query for index 7, got %v", r2.queried)
	}
}

func TestOSCDynamicStandardColors(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("10", "#010203"))
	if r.colors[int(Foreground)] != NewTrueColor(1, 2, 3) {
		t.Fatalf("unexpected foreground: %+v", r.colors[int(Foreground)])
	}

	r2 := newOscRecorder()
	dispatchOSC(r2, fields("11", "rgb:aa/bb/cc"))
	if r2.colors[int(Background)] != NewTrueColor(0xaa, 0xbb, 0xcc) {
		t.Fatalf("unexpected background: %+v", r2.colors[int(Background)])
	}

	r3 := newOscRecorder()
	dispatchOSC(r3, fields("10", "?"))
	if len(r3.queried) != 1 || r3.queried[0] != int(Foreground) {
		t.Fatalf("expected foreground query, got %v", r3.queried)
	}
}

func TestOSCResetIndexedColorsAllAndSubset(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("104"))
	if len(r.resetColors) != 256 {
		t.Fatalf("expected all 256 reset, got %d", len(r.resetColors))
	}

	r2 := newOscRecorder()
	dispatchOSC(r2, fields("104", "1", "3"))
	if len(r2.resetColors) != 2 || r2.resetColors[0] != 1 || r2.resetColors[1] != 3 {
		t.Fatalf("unexpected subset reset: %v", r2.resetColors)
	}
}

func TestOSCSetCursorShapeVariants(t *testing.T) {
	cases := map[string]CursorShape{
		"0": CursorSteadyBlock,
		"1": CursorSteadyBar,
		"2": CursorSteadyUnderline,
	}
	for code, want := range cases {
		r := newOscRecorder()
		dispatchOSC(r, fields("50", "CursorShape="+code))
		if r.cursorShape == nil || *r.cursorShape != want {
			t.Errorf("code %s: expected %v, got %v", code, want, r.cursorShape)
		}
	}

	r := newOscRecorder()
	dispatchOSC(r, fields("50", "CursorShape=9"))
	if r.cursorShape != nil {
		t.Fatalf("expected no change for unknown shape, got %v", r.cursorShape)
	}
}

func TestOSCSetWorkingDirectory(t *testing.T) {
	r := newOscRecorder()
	dispatchOSC(r, fields("7", "file://host/home/user"))
	if r.cwd != "file://host/home/user" {
		t.Fatalf("unexpected cwd: %q", r.cwd)
	}
}
