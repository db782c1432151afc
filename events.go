package otty

import (
	"github.com/otty-term/otty/internal/ptysession"
	"github.com/otty-term/otty/internal/surface"
)

// Event is something the runtime reports to an embedder. Events are
// delivered on the event channel in generation order (spec.md §4.4.4);
// Frame is emitted at most once per poll iteration and coalesces every
// bit of damage accumulated since the previous one.
type Event interface{ isEvent() }

// Frame carries a point-in-time snapshot of the surface, taken once
// per iteration that accumulated damage.
type Frame struct{ Snapshot *surface.Snapshot }

func (Frame) isEvent() {}

// TitleChanged reports the child's requested window/tab title.
type TitleChanged struct{ Title string }

func (TitleChanged) isEvent() {}

// ResetTitle reports that the title stack popped back to empty - there
// is no longer a child-requested title, and the embedder should fall
// back to its own default.
type ResetTitle struct{}

func (ResetTitle) isEvent() {}

// Bell reports a BEL control code.
type Bell struct{}

func (Bell) isEvent() {}

// ChildExit reports that the child process has terminated. The poll
// loop stops driving PTY reads once this is delivered.
type ChildExit struct{ Status *ptysession.ExitStatus }

func (ChildExit) isEvent() {}

// CursorIconChanged reports the pointer icon a renderer should show,
// either because the child requested one (DECSCUSR-adjacent OSC) or
// because SetHyperlinkFocus entered/left a link.
type CursorIconChanged struct{ Icon string }

func (CursorIconChanged) isEvent() {}

// CopyToClipboard reports an OSC 52 clipboard write the child
// requested.
type CopyToClipboard struct{ Text string }

func (CopyToClipboard) isEvent() {}

// QueryClipboard reports an OSC 52 clipboard read the child requested;
// selection is the OSC 52 Pc parameter byte ('c' clipboard, 'p'
// primary, ...). The runtime answers the child with whatever
// ClipboardProvider.Read already had on hand; this event exists so an
// embedder that owns the real system clipboard can keep that provider
// current.
type QueryClipboard struct{ Selection byte }

func (QueryClipboard) isEvent() {}

// BlockSelected reports that a BlockCommand{Kind: BlockCommandSelect}
// request turned the named block into the active selection.
type BlockSelected struct{ BlockID string }

func (BlockSelected) isEvent() {}

// BlockCopied reports that a BlockCommand{Kind: BlockCommandCopy}
// request extracted the named block's text (also delivered via a
// paired CopyToClipboard).
type BlockCopied struct{ BlockID string }

func (BlockCopied) isEvent() {}
