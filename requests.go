package otty

import "github.com/otty-term/otty/internal/surface"

// Request is something an embedder asks the runtime to do. It is
// applied on the runtime's own goroutine in arrival order (spec.md
// §4.4.4); sending on the request channel from any other goroutine is
// the one safe way to reach into a running Runtime.
type Request interface{ isRequest() }

// WriteBytes forwards input bytes to the child (keystrokes, pasted
// text, mouse reports the embedder already encoded).
type WriteBytes struct{ Data []byte }

func (WriteBytes) isRequest() {}

// Resize changes both the PTY's window size and the surface's
// viewport dimensions.
type Resize struct{ Rows, Cols int }

func (Resize) isRequest() {}

// ScrollMode selects how ScrollDisplay moves the viewport's scroll
// offset into scrollback.
type ScrollMode int

const (
	ScrollBottom ScrollMode = iota
	ScrollTop
	ScrollDelta
	ScrollPageUp
	ScrollPageDown
)

// ScrollDisplay moves the scrollback viewing offset. Delta is only
// meaningful when Mode is ScrollDelta, positive scrolling back into
// history and negative scrolling toward the bottom.
type ScrollDisplay struct {
	Mode  ScrollMode
	Delta int
}

func (ScrollDisplay) isRequest() {}

// StartSelection begins a new selection at Point. Direction is almost
// always ExtendEnd (the common case of starting a fresh drag); it
// exists so a caller restoring a previously-reversed drag can start
// already extending the other end.
type StartSelection struct {
	Kind      surface.SelectionKind
	Point     surface.Position
	Direction surface.SelectionDirection
}

func (StartSelection) isRequest() {}

// UpdateSelection moves the selection's Direction endpoint to Point as
// a drag continues, flipping Direction first if the drag reversed.
type UpdateSelection struct {
	Point     surface.Position
	Direction surface.SelectionDirection
}

func (UpdateSelection) isRequest() {}

// ClearSelection drops any active selection.
type ClearSelection struct{}

func (ClearSelection) isRequest() {}

// Shutdown closes the PTY (the child sees SIGHUP/EOF) and stops the
// poll loop after draining pending reads.
type Shutdown struct{}

func (Shutdown) isRequest() {}

// SetHyperlinkFocus tells the runtime which hyperlink (by its OSC 8
// id, or "" for none) is currently under the pointer, so it can emit
// CursorIconChanged when focus enters or leaves a link.
type SetHyperlinkFocus struct{ ID string }

func (SetHyperlinkFocus) isRequest() {}

// BlockCommandKind selects what a BlockCommand request does with the
// block it names.
type BlockCommandKind int

const (
	BlockCommandCopy BlockCommandKind = iota
	BlockCommandSelect
)

// BlockCommand asks the runtime to act on a semantic block (from the
// most recent Frame's Snapshot.Blocks): Copy extracts its text and
// emits BlockCopied/CopyToClipboard, Select turns it into the active
// selection and emits BlockSelected.
type BlockCommand struct {
	Kind    BlockCommandKind
	BlockID string
}

func (BlockCommand) isRequest() {}
