package ptysession

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// localSession is a PTY-attached local child process. Grounded
// verbatim on dcosson-h2's VT.StartPTY (pty.StartWithSize) and
// VT.Resize (pty.Setsize), generalized behind the Session interface
// instead of a struct with exported fields.
type localSession struct {
	cmd *exec.Cmd
	ptm *os.File

	mu     sync.Mutex
	status *ExitStatus
	waited bool
}

func newLocalSession(spec LocalSpec, rows, cols int) (Session, error) {
	cmd := exec.Command(spec.Program, spec.Args...)
	if spec.Cwd != "" {
		cmd.Dir = spec.Cwd
	}
	if len(spec.Env) > 0 {
		env := make([]string, 0, len(os.Environ())+len(spec.Env))
		for _, e := range os.Environ() {
			key := e
			if idx := strings.IndexByte(e, '='); idx >= 0 {
				key = e[:idx]
			}
			if _, override := spec.Env[key]; !override {
				env = append(env, e)
			}
		}
		for k, v := range spec.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	if spec.ControllingTTY {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	}

	ptm, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	s := &localSession{cmd: cmd, ptm: ptm}
	go s.reap()
	return s, nil
}

// reap waits for the child in the background so TryGetChildExitStatus
// never blocks; exec.Cmd.Wait may only be called once, and must be
// called by someone or the child leaks as a zombie.
func (s *localSession) reap() {
	err := s.cmd.Wait()
	status := ExitStatus{}
	if err == nil {
		status.Code = 0
	} else {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			status.Code = exitErr.ExitCode()
			if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				status.Signal = ws.Signal().String()
			}
		} else {
			status.Code = -1
		}
	}
	s.mu.Lock()
	s.status = &status
	s.waited = true
	s.mu.Unlock()
}

func (s *localSession) Read(buf []byte) (int, error) { return s.ptm.Read(buf) }

func (s *localSession) Write(buf []byte) (int, error) { return s.ptm.Write(buf) }

func (s *localSession) Resize(rows, cols int) error {
	return pty.Setsize(s.ptm, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
}

func (s *localSession) TryGetChildExitStatus() (*ExitStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.waited {
		return nil, nil
	}
	st := *s.status
	return &st, nil
}

func (s *localSession) Close() error {
	err := s.ptm.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(syscall.SIGHUP)
	}
	return err
}
