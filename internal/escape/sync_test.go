package escape

import "testing"

func TestCoalescerPassesThroughWithoutSync(t *testing.T) {
	c := NewCoalescer()
	var got []byte
	c.Submit([]byte("hello"), func(b []byte) { got = append(got, b...) })
	if string(got) != "hello" {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if c.Active() {
		t.Fatal("expected not active")
	}
}

func TestCoalescerBuffersBetweenBsuAndEsu(t *testing.T) {
	c := NewCoalescer()
	var chunks [][]byte
	deliver := func(b []byte) { chunks = append(chunks, append([]byte(nil), b...)) }

	c.Submit([]byte("before\x1b[?2026h"), deliver)
	if !c.Active() {
		t.Fatal("expected sync active after BSU")
	}
	c.Submit([]byte("mid-update-bytes"), deliver)
	if len(chunks) != 1 {
		t.Fatalf("expected only the pre-BSU chunk delivered so far, got %d", len(chunks))
	}

	c.Submit([]byte("\x1b[?2026ltail"), deliver)
	if c.Active() {
		t.Fatal("expected sync closed after ESU")
	}
	if len(chunks) != 3 {
		t.Fatalf("expected 3 delivered chunks, got %d: %q", len(chunks), chunks)
	}
	if string(chunks[1]) != "\x1b[?2026hmid-update-bytes\x1b[?2026l" {
		t.Fatalf("unexpected sync block contents: %q", chunks[1])
	}
	if string(chunks[2]) != "tail" {
		t.Fatalf("unexpected trailing chunk: %q", chunks[2])
	}
}
