package surface

import (
	"testing"

	"github.com/otty-term/otty/internal/escape"
)

func intPtr(v int) *int { return &v }

func TestBlockTrackerPromptThenCommandThenExit(t *testing.T) {
	bt := newBlockTracker()

	opened := bt.HandleEvent(escape.BlockEvent{ID: "p1", Phase: escape.PhasePrecmd, Cwd: "/home"}, 0, false)
	if opened == nil || opened.Kind != BlockKindPrompt || opened.StartLine != 0 {
		t.Fatalf("expected prompt block opened at line 0, got %+v", opened)
	}
	bt.OnLineFeed()

	cmd := bt.HandleEvent(escape.BlockEvent{ID: "c1", Phase: escape.PhasePreexec, Cmd: "ls -la"}, 1, false)
	if cmd == nil || cmd.Kind != BlockKindCommand || cmd.StartLine != 2 {
		t.Fatalf("expected command block opened at line 2, got %+v", cmd)
	}
	if len(bt.Blocks()) != 2 {
		t.Fatalf("expected 2 blocks total, got %d", len(bt.Blocks()))
	}

	bt.OnLineFeed()
	bt.OnLineFeed()

	closed := bt.HandleEvent(escape.BlockEvent{ID: "c1", Phase: escape.PhaseExit, ExitCode: intPtr(0), Time: 99}, 5, false)
	if closed == nil || closed.ExitCode == nil || *closed.ExitCode != 0 || closed.FinishedAt != 99 {
		t.Fatalf("expected closed command block with exit code 0, got %+v", closed)
	}
	if closed.LineCount != 2 {
		t.Fatalf("expected line count 2, got %d", closed.LineCount)
	}

	blocks := bt.Blocks()
	if blocks[0].Kind != BlockKindPrompt || blocks[1].Kind != BlockKindCommand {
		t.Fatalf("unexpected block order: %+v", blocks)
	}
}

func TestBlockTrackerPrecmdClosesDanglingCommand(t *testing.T) {
	bt := newBlockTracker()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePreexec, Cmd: "vim"}, 0, false)
	bt.OnLineFeed()

	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePrecmd}, 1, false)

	blocks := bt.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].ExitCode != nil {
		t.Fatalf("expected dangling command closed with no exit code, got %+v", blocks[0].ExitCode)
	}
}

func TestBlockTrackerAltScreenSuppressesNewBlocks(t *testing.T) {
	bt := newBlockTracker()
	ev := bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePrecmd}, 0, true)
	if ev != nil {
		t.Fatalf("expected no block opened on alt screen, got %+v", ev)
	}
	if len(bt.Blocks()) != 0 {
		t.Fatalf("expected no tracked blocks, got %d", len(bt.Blocks()))
	}
}

func TestBlockTrackerMarkFullScreen(t *testing.T) {
	bt := newBlockTracker()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePreexec, Cmd: "top"}, 0, false)

	changed := bt.MarkFullScreen(true)
	if changed == nil || changed.Kind != BlockKindFullScreen || !changed.IsAltScreen {
		t.Fatalf("expected command block reclassified as full screen, got %+v", changed)
	}

	if bt.MarkFullScreen(true) == nil || bt.MarkFullScreen(false) != nil {
		t.Fatalf("MarkFullScreen should be idempotent and return nil when altScreen is false")
	}
}

func TestBlockTrackerScrollbackEvictionRemovesFullyEvicted(t *testing.T) {
	bt := newBlockTracker()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePrecmd}, 0, false)
	bt.OnLineFeed()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePreexec}, 1, false)
	bt.OnLineFeed()
	bt.OnLineFeed()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhaseExit, ExitCode: intPtr(0)}, 4, false)

	// Prompt block spans [0,1), command block spans [2,4).
	bt.OnScrollbackEvicted(2)

	blocks := bt.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected prompt block fully evicted, leaving 1, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != BlockKindCommand || blocks[0].StartLine != 0 {
		t.Fatalf("expected surviving command block trimmed to start line 0, got %+v", blocks[0])
	}
}

func TestBlockTrackerScrollbackEvictionTrimsStraddlingBlock(t *testing.T) {
	bt := newBlockTracker()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhasePreexec, Cmd: "cmd"}, 0, false)
	bt.OnLineFeed()
	bt.OnLineFeed()
	bt.OnLineFeed()
	bt.HandleEvent(escape.BlockEvent{Phase: escape.PhaseExit, ExitCode: intPtr(0)}, 3, false)

	// Command block spans [0,3). Evict 2 lines: should trim to [0,1).
	bt.OnScrollbackEvicted(2)

	blocks := bt.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("expected block to survive eviction, got %d", len(blocks))
	}
	if blocks[0].StartLine != 0 || blocks[0].LineCount != 1 {
		t.Fatalf("expected trimmed block {start:0 count:1}, got %+v", blocks[0])
	}
}
