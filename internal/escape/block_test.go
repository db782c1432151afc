package escape

import "testing"

func TestParseBlockEventPreexec(t *testing.T) {
	ev, err := ParseBlockEvent([]byte(`otty;block;{"id":"a1","phase":"preexec","cmd":"ls","cwd":"/tmp","time":100,"shell":"zsh"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Kind != BlockKindCommand || ev.Phase != PhasePreexec || ev.Cmd != "ls" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestParseBlockEventExitWithCode(t *testing.T) {
	ev, err := ParseBlockEvent([]byte(`otty;block;{"id":"a1","phase":"exit","exit_code":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Kind != BlockKindCommand || ev.ExitCode == nil || *ev.ExitCode != 2 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestParseBlockEventPrecmdIsPrompt(t *testing.T) {
	ev, err := ParseBlockEvent([]byte(`otty;block;{"id":"a1","phase":"precmd"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Kind != BlockKindPrompt {
		t.Fatalf("expected prompt kind, got %+v", ev)
	}
}

func TestParseBlockEventRejectsWrongPrefix(t *testing.T) {
	if _, err := ParseBlockEvent([]byte(`nototty;block;{}`)); err != ErrDcsPrefixMissed {
		t.Fatalf("expected prefix error, got %v", err)
	}
}

func TestParseBlockEventRejectsUnsupportedKind(t *testing.T) {
	_, err := ParseBlockEvent([]byte(`otty;sixel;{}`))
	if _, ok := err.(ErrDcsUnsupportedKind); !ok {
		t.Fatalf("expected unsupported-kind error, got %v", err)
	}
}

func TestParseBlockEventRejectsEmptyPayload(t *testing.T) {
	if _, err := ParseBlockEvent([]byte(`otty;block;`)); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestParseBlockEventRejectsMissingSeparator(t *testing.T) {
	if _, err := ParseBlockEvent([]byte(`otty;block`)); err != ErrDcsKindSeparatorMissed {
		t.Fatalf("expected separator error, got %v", err)
	}
}
