package ptysession

import (
	"errors"
	"io"
	"sync"

	"golang.org/x/crypto/ssh"
)

// sshSession is a PTY-backed shell on a remote host. Grounded on the
// dial/handshake/NewSession/RequestPty/Shell idiom surveyed across
// _examples/other_examples/manifests' SSH-PTY examples
// (eugeniofciuvasile-ssh-x-term, gravitational-teleport,
// Gaurav-Gosain-tuios).
type sshSession struct {
	client  *ssh.Client
	session *ssh.Session
	stdin   io.WriteCloser
	stdout  io.Reader

	mu     sync.Mutex
	status *ExitStatus
	waited bool
}

func newSSHSession(spec SshSpec, rows, cols int) (Session, error) {
	term := spec.Term
	if term == "" {
		term = "xterm-256color"
	}

	client, err := ssh.Dial("tcp", spec.Host, &ssh.ClientConfig{
		User:            spec.User,
		Auth:            spec.Auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	})
	if err != nil {
		return nil, err
	}

	sess, err := client.NewSession()
	if err != nil {
		client.Close()
		return nil, err
	}

	modes := ssh.TerminalModes{
		ssh.ECHO:         1,
		ssh.TTY_OP_ISPEED: 14400,
		ssh.TTY_OP_OSPEED: 14400,
	}
	if err := sess.RequestPty(term, rows, cols, modes); err != nil {
		sess.Close()
		client.Close()
		return nil, err
	}

	stdin, err := sess.StdinPipe()
	if err != nil {
		sess.Close()
		client.Close()
		return nil, err
	}
	stdout, err := sess.StdoutPipe()
	if err != nil {
		sess.Close()
		client.Close()
		return nil, err
	}

	if err := sess.Shell(); err != nil {
		sess.Close()
		client.Close()
		return nil, err
	}

	s := &sshSession{client: client, session: sess, stdin: stdin, stdout: stdout}
	go s.reap()
	return s, nil
}

// reap waits for the remote shell to exit in the background, the same
// role localSession.reap plays for a local child.
func (s *sshSession) reap() {
	err := s.session.Wait()
	status := ExitStatus{}
	if err != nil {
		var exitErr *ssh.ExitError
		if errors.As(err, &exitErr) {
			status.Code = exitErr.ExitStatus()
			status.Signal = string(exitErr.Signal())
		} else {
			status.Code = -1
		}
	}
	s.mu.Lock()
	s.status = &status
	s.waited = true
	s.mu.Unlock()
}

func (s *sshSession) Read(buf []byte) (int, error) { return s.stdout.Read(buf) }

func (s *sshSession) Write(buf []byte) (int, error) { return s.stdin.Write(buf) }

func (s *sshSession) Resize(rows, cols int) error {
	return s.session.WindowChange(rows, cols)
}

func (s *sshSession) TryGetChildExitStatus() (*ExitStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waited {
		return nil, nil
	}
	st := *s.status
	return &st, nil
}

func (s *sshSession) Close() error {
	err := s.session.Close()
	if cerr := s.client.Close(); err == nil {
		err = cerr
	}
	return err
}
