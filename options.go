package otty

import (
	"log/slog"
	"time"

	"github.com/otty-term/otty/internal/surface"
)

// Options configures a Runtime at Open time. Grounded on the teacher's
// terminal.go functional-option pattern; Logger follows SPEC_FULL.md
// §6.1's ambient-stack choice of log/slog over the Rust original's
// log crate, since no example in the pack pulls in a third-party
// structured logger for this kind of library-internal diagnostic.
type Options struct {
	Logger *slog.Logger

	// SnapshotDetail controls how much per-cell styling a Frame's
	// Snapshot carries; see surface.SnapshotDetail.
	SnapshotDetail surface.SnapshotDetail

	// ScrollbackLimit bounds the primary grid's scrollback ring.
	ScrollbackLimit int

	// ReadBufferSize is the buffer the PTY-reader goroutine reads
	// into; spec.md §4.4.3 step 2 requires at least 4KiB, default
	// 64KiB.
	ReadBufferSize int

	// PollInterval caps how long PollOnce waits when it has no I/O to
	// report, so a stalled synchronized-update block's timeout (step
	// 6) is checked promptly even with no new PTY bytes arriving -
	// the Go rendering of step 1's
	// min(user_timeout, next_sync_timeout_deadline).
	PollInterval time.Duration

	// RequestBatchLimit bounds how many queued requests a single
	// PollOnce drains after its first one, so a burst of requests
	// can't starve PTY I/O (step 4).
	RequestBatchLimit int
}

// Option configures a Runtime at Open time.
type Option func(*Options)

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func WithSnapshotDetail(d surface.SnapshotDetail) Option {
	return func(o *Options) { o.SnapshotDetail = d }
}

func WithScrollbackLimit(n int) Option {
	return func(o *Options) { o.ScrollbackLimit = n }
}

func WithReadBufferSize(n int) Option {
	return func(o *Options) { o.ReadBufferSize = n }
}

func WithPollInterval(d time.Duration) Option {
	return func(o *Options) { o.PollInterval = d }
}

func WithRequestBatchLimit(n int) Option {
	return func(o *Options) { o.RequestBatchLimit = n }
}

func defaultOptions() Options {
	return Options{
		Logger:            slog.Default(),
		SnapshotDetail:    surface.SnapshotDetailText,
		ScrollbackLimit:   1000,
		ReadBufferSize:    64 * 1024,
		PollInterval:      50 * time.Millisecond,
		RequestBatchLimit: 64,
	}
}
