package surface

import "io"

// ResponseProvider writes terminal responses (DA/DSR/cursor position
// reports, keyboard-mode reports) back towards the PTY input side.
// Grounded verbatim on the teacher's providers.go ResponseProvider
// (a plain io.Writer alias).
type ResponseProvider = io.Writer

// NoopResponse discards all response bytes.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// BellProvider handles BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider is notified of window-title changes (OSC 0/1/2) and
// title-stack operations (CSI t 22/23).
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores all title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(title string) {}
func (NoopTitle) PushTitle()            {}
func (NoopTitle) PopTitle()             {}

// ClipboardProvider handles OSC 52 clipboard access. Read is called
// synchronously to answer a "?" query; Write is called with the
// decoded payload of a store.
type ClipboardProvider interface {
	Read(selection byte) string
	Write(selection byte, data []byte)
}

// NoopClipboard discards writes and answers every read with "".
type NoopClipboard struct{}

func (NoopClipboard) Read(selection byte) string       { return "" }
func (NoopClipboard) Write(selection byte, data []byte) {}

// CursorIconProvider is notified when OSC 22 names a mouse-cursor icon.
type CursorIconProvider interface {
	SetCursorIcon(name string)
}

// NoopCursorIcon ignores the icon name.
type NoopCursorIcon struct{}

func (NoopCursorIcon) SetCursorIcon(name string) {}

// ApcProvider, PmProvider and SosProvider receive the raw payload of
// APC/PM/SOS strings, out-of-band channels this surface does not
// interpret itself.
type ApcProvider interface{ Receive(data []byte) }
type PmProvider interface{ Receive(data []byte) }
type SosProvider interface{ Receive(data []byte) }

type NoopApc struct{}

func (NoopApc) Receive(data []byte) {}

type NoopPm struct{}

func (NoopPm) Receive(data []byte) {}

type NoopSos struct{}

func (NoopSos) Receive(data []byte) {}

// BlockProvider is notified every time a semantic block opens, is
// extended, or closes, so an embedder can react without polling
// Surface.Blocks() on every frame.
type BlockProvider interface {
	BlockChanged(b Block)
}

// NoopBlockProvider ignores block lifecycle notifications.
type NoopBlockProvider struct{}

func (NoopBlockProvider) BlockChanged(b Block) {}

var (
	_ ResponseProvider  = NoopResponse{}
	_ BellProvider       = NoopBell{}
	_ TitleProvider      = NoopTitle{}
	_ ClipboardProvider  = NoopClipboard{}
	_ CursorIconProvider = NoopCursorIcon{}
	_ ApcProvider        = NoopApc{}
	_ PmProvider         = NoopPm{}
	_ SosProvider        = NoopSos{}
	_ BlockProvider      = NoopBlockProvider{}
)
