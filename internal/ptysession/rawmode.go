package ptysession

import "golang.org/x/term"

// RawMode puts the host's own controlling terminal (not the child PTY)
// into raw mode for the duration of an interactive session, restoring
// it on Restore. Grounded on dcosson-h2's VT.Restore *term.State
// field: that terminal's CLI front-end runs attached to a real tty and
// must stop the host shell doing line buffering/echo while the child
// PTY has focus; this package's own Session implementations never
// touch the host's terminal themselves.
type RawMode struct {
	fd    int
	saved *term.State
}

// EnterRawMode saves fd's current terminal state and switches it to
// raw mode. fd is typically os.Stdin.Fd(). Returns an error if fd is
// not a terminal.
func EnterRawMode(fd int) (*RawMode, error) {
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &RawMode{fd: fd, saved: saved}, nil
}

// Restore returns the terminal to the state it had before EnterRawMode.
func (r *RawMode) Restore() error {
	return term.Restore(r.fd, r.saved)
}

// Size reports fd's current terminal size in character cells.
func Size(fd int) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	return rows, cols, err
}
