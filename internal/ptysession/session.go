// Package ptysession implements the narrow PTY contract the terminal
// runtime drives a child process through, grounded on
// _examples/dcosson-h2/internal/session/virtualterminal/vt.go's
// StartPTY/PipeOutput/WritePTY idiom and on spec.md §6.3's
// register/read/write/resize/try_get_child_exit_status/close contract
// - minus register, which has no Go equivalent: the runtime drives
// Read from a dedicated goroutine that blocks on it directly instead
// of polling a readiness token (SPEC_FULL.md §4.4's translation note).
package ptysession

import "time"

// ExitStatus reports how a child process terminated.
type ExitStatus struct {
	Code   int
	Signal string
}

// Session is the narrow contract the runtime uses to drive a PTY-
// attached child, whether backed by a local fork+exec or a remote SSH
// channel. Grounded on spec.md §6.3.
type Session interface {
	// Read blocks until output is available, the session closes, or an
	// error occurs. Grounded on vt.go's PipeOutput (vt.Ptm.Read).
	Read(buf []byte) (int, error)

	// Write sends input bytes to the child, blocking only as long as
	// the underlying transport does. Grounded on vt.go's WritePTY, minus
	// the timeout wrapper - the runtime's poll loop owns pacing.
	Write(buf []byte) (int, error)

	// Resize updates the child's terminal geometry.
	Resize(rows, cols int) error

	// TryGetChildExitStatus reports the child's exit status without
	// blocking, returning (nil, nil) while it is still running.
	TryGetChildExitStatus() (*ExitStatus, error)

	// Close tears down the session, causing a blocked Read to return
	// promptly. Safe to call more than once.
	Close() error
}

// pollExitInterval is how often a Session implementation that has no
// native exit notification (a blocking os.Process.Wait) should be
// polled by its own background goroutine before caching a result for
// TryGetChildExitStatus to pick up without blocking.
const pollExitInterval = 20 * time.Millisecond
