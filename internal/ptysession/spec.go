package ptysession

import "golang.org/x/crypto/ssh"

// Spec is the tagged union spec.md §6.3 calls pty_spec: either a local
// program to fork+exec under a PTY, or a remote host to open a PTY
// channel over SSH. The Go rendering uses a sealed interface instead
// of an enum, matching the teacher's preference for small concrete
// types over a discriminated struct.
type Spec interface {
	open(rows, cols int) (Session, error)
}

// LocalSpec launches program under a local PTY. Grounded on
// dcosson-h2's StartPTY(command, args, ...) parameters.
type LocalSpec struct {
	Program        string
	Args           []string
	Env            map[string]string
	Cwd            string
	ControllingTTY bool
}

func (s LocalSpec) open(rows, cols int) (Session, error) {
	return newLocalSession(s, rows, cols)
}

// SshSpec opens a PTY-backed shell on a remote host over SSH. Grounded
// on the SSH-PTY idiom surveyed across
// _examples/other_examples/manifests/* (eugeniofciuvasile-ssh-x-term,
// gravitational-teleport, Gaurav-Gosain-tuios): dial, handshake,
// NewSession, RequestPty, Shell.
type SshSpec struct {
	Host string
	User string
	Auth []ssh.AuthMethod

	// Term is the TERM value requested for the remote PTY; defaults to
	// "xterm-256color" when empty.
	Term string
}

func (s SshSpec) open(rows, cols int) (Session, error) {
	return newSSHSession(s, rows, cols)
}

// Open resolves spec into a live Session sized rows x cols.
func Open(spec Spec, rows, cols int) (Session, error) {
	return spec.open(rows, cols)
}
