package surface

import (
	"github.com/google/uuid"

	"github.com/otty-term/otty/internal/escape"
)

// BlockKind classifies a semantic block's origin. Command and Prompt
// come directly from the DCS block protocol's phases (escape.BlockKind);
// FullScreen is surface-local, assigned to a Command block that is
// still open when the primary screen switches to the alternate screen
// (a full-screen program such as an editor or pager took over before
// the shell ever reported its exit).
type BlockKind int

const (
	BlockKindCommand BlockKind = iota
	BlockKindPrompt
	BlockKindFullScreen
)

func blockKindFromEvent(k escape.BlockKind) BlockKind {
	if k == escape.BlockKindPrompt {
		return BlockKindPrompt
	}
	return BlockKindCommand
}

// Block is a semantic region of the scrollback+viewport: a shell
// prompt or the command it ran, bounded by DCS block events (OSC-133-
// style shell integration). Grounded on the teacher's shell_integration.go
// PromptMark, generalized per block_text.rs's block record from a
// single mark+row into a full open/close range with metadata.
type Block struct {
	ID          string
	Kind        BlockKind
	Cmd         string
	Cwd         string
	Shell       string
	ExitCode    *int
	StartedAt   int64
	FinishedAt  int64
	StartLine   int
	LineCount   int
	IsAltScreen bool
	CachedText  string
}

// blockTracker maintains the ordered list of blocks (closed and the
// zero, one, or two currently open) and applies the state machine from
// a stream of BlockEvents plus line-feed/scrollback-eviction notices.
// It holds no reference to a Grid; Surface supplies the cursor's
// absolute row and drives text extraction separately.
type blockTracker struct {
	blocks      []*Block
	openPrompt  *Block
	openCommand *Block
}

func newBlockTracker() *blockTracker {
	return &blockTracker{}
}

// HandleEvent applies one DCS block event at the given absolute cursor
// row (row + scrollback length), returning the block that changed (for
// notifying a BlockProvider) or nil if the event produced no change -
// per §4.3.3, no blocks are opened while the alternate screen is
// active.
func (t *blockTracker) HandleEvent(ev escape.BlockEvent, absRow int, altScreen bool) *Block {
	if altScreen {
		return nil
	}
	switch ev.Phase {
	case escape.PhasePrecmd:
		t.closeCommand(ev.ExitCode, ev.Time)
		return t.openPromptBlock(ev, absRow)
	case escape.PhasePreexec:
		prompt := t.closePrompt()
		return t.openCommandBlock(ev, absRow, prompt)
	case escape.PhaseExit:
		return t.closeCommand(ev.ExitCode, ev.Time)
	default:
		return nil
	}
}

func (t *blockTracker) openPromptBlock(ev escape.BlockEvent, absRow int) *Block {
	id := ev.ID
	if id == "" {
		id = uuid.NewString()
	}
	b := &Block{
		ID:        id,
		Kind:      BlockKindPrompt,
		Cwd:       ev.Cwd,
		Shell:     ev.Shell,
		StartedAt: ev.Time,
		StartLine: absRow,
	}
	t.blocks = append(t.blocks, b)
	t.openPrompt = b
	return b
}

func (t *blockTracker) closePrompt() *Block {
	b := t.openPrompt
	if b == nil {
		return nil
	}
	t.openPrompt = nil
	return b
}

func (t *blockTracker) openCommandBlock(ev escape.BlockEvent, absRow int, closedPrompt *Block) *Block {
	start := absRow
	if closedPrompt != nil {
		start = closedPrompt.StartLine + closedPrompt.LineCount + 1
	}
	id := ev.ID
	if id == "" {
		id = uuid.NewString()
	}
	b := &Block{
		ID:        id,
		Kind:      blockKindFromEvent(ev.Kind),
		Cmd:       ev.Cmd,
		Cwd:       ev.Cwd,
		Shell:     ev.Shell,
		StartedAt: ev.Time,
		StartLine: start,
	}
	t.blocks = append(t.blocks, b)
	t.openCommand = b
	return b
}

func (t *blockTracker) closeCommand(exitCode *int, finishedAt int64) *Block {
	b := t.openCommand
	if b == nil {
		return nil
	}
	b.FinishedAt = finishedAt
	b.ExitCode = exitCode
	t.openCommand = nil
	return b
}

// MarkFullScreen reclassifies the currently open command block (if
// any) as a full-screen program taking over the primary screen, used
// when Surface switches to the alternate screen without having first
// seen an exit event.
func (t *blockTracker) MarkFullScreen(altScreen bool) *Block {
	if !altScreen || t.openCommand == nil {
		return nil
	}
	t.openCommand.Kind = BlockKindFullScreen
	t.openCommand.IsAltScreen = true
	return t.openCommand
}

// OnLineFeed extends the line count of every block still open,
// covering both the case where a prompt is still being drawn and the
// case where a command is producing output.
func (t *blockTracker) OnLineFeed() {
	if t.openPrompt != nil {
		t.openPrompt.LineCount++
	}
	if t.openCommand != nil {
		t.openCommand.LineCount++
	}
}

// OnScrollbackEvicted shifts every block's StartLine down by n (the
// number of lines pushed out of the scrollback ring entirely), per
// §4.3.6: a block whose whole range leaves scrollback is removed, and
// one straddling the boundary has its StartLine/LineCount trimmed to
// its surviving portion.
func (t *blockTracker) OnScrollbackEvicted(n int) {
	if n <= 0 {
		return
	}
	kept := t.blocks[:0]
	for _, b := range t.blocks {
		b.StartLine -= n
		if b.StartLine+b.LineCount <= 0 {
			continue
		}
		if b.StartLine < 0 {
			overflow := -b.StartLine
			b.LineCount -= overflow
			b.StartLine = 0
		}
		kept = append(kept, b)
	}
	t.blocks = kept
}

// Blocks returns a snapshot copy of every tracked block, ordered by
// StartLine (oldest first).
func (t *blockTracker) Blocks() []Block {
	out := make([]Block, len(t.blocks))
	for i, b := range t.blocks {
		out[i] = *b
	}
	return out
}

// Find returns the tracked block with the given id, or nil.
func (t *blockTracker) Find(id string) *Block {
	for _, b := range t.blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// isOpen reports whether b is still the open prompt or command block,
// meaning its LineCount is still growing and its text must not be
// cached yet.
func (t *blockTracker) isOpen(b *Block) bool {
	return b == t.openPrompt || b == t.openCommand
}
