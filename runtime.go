package otty

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/otty-term/otty/internal/ptysession"
	"github.com/otty-term/otty/internal/surface"
)

// PollOutcome reports what one PollOnce iteration did, mirroring
// spec.md §6.3's PollOutcome{surface_changed, exit_status}.
type PollOutcome struct {
	SurfaceChanged bool
	ExitStatus     *ptysession.ExitStatus
}

// Runtime owns a PTY-attached child's lifecycle: it drives PTY bytes
// through the escape parser into a Surface, answers embedder requests,
// and reports Events. A Runtime is driven by exactly one goroutine
// (the one calling PollOnce/Run); the Surface it owns must never be
// touched from anywhere else. Grounded on
// _examples/original_source/otty-libterm/src/terminal.rs's Terminal<S>,
// translated per SPEC_FULL.md §4.4's note that Go has no mio::Poll
// equivalent: a background goroutine does blocking PTY reads and feeds
// them to the coordinator (this type) over a channel, which multiplexes
// PTY bytes, requests, and a timer with select instead of registering
// readiness tokens.
type Runtime struct {
	session ptysession.Session
	surf    *surface.Surface
	opts    Options
	log     *slog.Logger

	requests chan Request
	events   chan Event

	ptyCh    chan []byte
	readErr  chan error
	stopOnce sync.Once
	stop     chan struct{}

	running          bool
	exitStatus       *ptysession.ExitStatus
	focusedHyperlink string
}

// Open launches spec under a PTY sized rows x cols and starts its
// background reader goroutine, returning the Runtime along with the
// channel ends an embedder uses to drive it: send Requests in, receive
// Events out. Grounded on spec.md §6.3's
// open(pty_spec, terminal_size, options) -> (Runtime, RequestSender,
// EventReceiver).
func Open(spec ptysession.Spec, rows, cols int, opts ...Option) (*Runtime, chan<- Request, <-chan Event, error) {
	session, err := ptysession.Open(spec, rows, cols)
	if err != nil {
		return nil, nil, nil, err
	}
	r := newRuntime(session, rows, cols, opts...)
	return r, r.requests, r.events, nil
}

// newRuntime builds a Runtime around an already-open session, the
// seam Open uses for a real ptysession.Spec and tests use for a fake
// in-memory Session.
func newRuntime(session ptysession.Session, rows, cols int, opts ...Option) *Runtime {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	surf := surface.New(rows, cols, surface.WithScrollbackLimit(o.ScrollbackLimit))

	r := &Runtime{
		session:  session,
		surf:     surf,
		opts:     o,
		log:      o.Logger,
		requests: make(chan Request, o.RequestBatchLimit),
		events:   make(chan Event, 64),
		ptyCh:    make(chan []byte, 16),
		readErr:  make(chan error, 1),
		stop:     make(chan struct{}),
		running:  true,
	}
	r.wireProviders()
	go r.readLoop()
	return r
}

// wireProviders installs Surface providers that translate VT actions
// into Events, the inverse of how ptysession.Session feeds the parser.
func (r *Runtime) wireProviders() {
	opts := []surface.Option{
		surface.WithResponseProvider(responderFunc(func(p []byte) (int, error) {
			return r.session.Write(p)
		})),
		surface.WithBellProvider(bellFunc(func() {
			r.emit(Bell{})
		})),
		surface.WithTitleProvider(&runtimeTitle{r: r}),
		surface.WithClipboardProvider(&runtimeClipboard{r: r}),
		surface.WithCursorIconProvider(cursorIconFunc(func(name string) {
			r.emit(CursorIconChanged{Icon: name})
		})),
	}
	for _, opt := range opts {
		opt(r.surf)
	}
}

// responderFunc adapts a function to surface.ResponseProvider (io.Writer).
type responderFunc func([]byte) (int, error)

func (f responderFunc) Write(p []byte) (int, error) { return f(p) }

type bellFunc func()

func (f bellFunc) Ring() { f() }

type cursorIconFunc func(name string)

func (f cursorIconFunc) SetCursorIcon(name string) { f(name) }

// runtimeTitle adapts title-stack operations onto TitleChanged/ResetTitle
// events - there is no dedicated surface hook for "title reset", so it
// is inferred from SetTitle("") and from a PopTitle that empties the
// title entirely.
type runtimeTitle struct{ r *Runtime }

func (t *runtimeTitle) SetTitle(title string) {
	if title == "" {
		t.r.emit(ResetTitle{})
		return
	}
	t.r.emit(TitleChanged{Title: title})
}

func (t *runtimeTitle) PushTitle() {}

func (t *runtimeTitle) PopTitle() {
	if title := t.r.surf.Title(); title != "" {
		t.r.emit(TitleChanged{Title: title})
	} else {
		t.r.emit(ResetTitle{})
	}
}

// runtimeClipboard answers OSC 52 reads with whatever was last copied
// (so a roundtrip the child performs on its own content succeeds) and
// reports every access to the embedder via events - a real system
// clipboard is the embedder's to own, reached only through those
// events, since ClipboardProvider.Read must answer synchronously and
// the embedder lives on the far side of a channel.
type runtimeClipboard struct {
	r      *Runtime
	stored string
}

func (c *runtimeClipboard) Read(selection byte) string {
	c.r.emit(QueryClipboard{Selection: selection})
	return c.stored
}

func (c *runtimeClipboard) Write(selection byte, data []byte) {
	c.stored = string(data)
	c.r.emit(CopyToClipboard{Text: c.stored})
}

// emit delivers ev on the event channel, giving up only if the
// Runtime is shutting down so a slow/absent consumer can never wedge
// the poll loop forever.
func (r *Runtime) emit(ev Event) {
	select {
	case r.events <- ev:
	case <-r.stop:
	}
}

// readLoop blocks on session.Read in its own goroutine - the Go
// rendering of registering PTY_IO_TOKEN for readiness in
// terminal.rs's mio::Poll - copying each chunk before handing it to
// the coordinator so the reused read buffer is never shared across
// goroutines.
func (r *Runtime) readLoop() {
	buf := make([]byte, r.opts.ReadBufferSize)
	for {
		n, err := r.session.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case r.ptyCh <- chunk:
			case <-r.stop:
				return
			}
		}
		if err != nil {
			select {
			case r.readErr <- err:
			case <-r.stop:
			}
			return
		}
	}
}

// PollOnce drives one iteration of the poll loop, waiting up to
// timeout for PTY output or a request before giving up and checking
// the other step-ordered conditions anyway (child exit, a stalled sync
// block, accumulated damage). Grounded step-for-step on spec.md
// §4.4.3; steps 1-3 and the request-channel check collapse into one
// select since Go's channels already give non-blocking multiplexing.
func (r *Runtime) PollOnce(timeout time.Duration) (PollOutcome, error) {
	if !r.running {
		return PollOutcome{ExitStatus: r.exitStatus}, nil
	}

	wait := timeout
	if r.opts.PollInterval > 0 && (wait <= 0 || r.opts.PollInterval < wait) {
		wait = r.opts.PollInterval
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case chunk := <-r.ptyCh:
		r.surf.Write(chunk)
	case err := <-r.readErr:
		r.log.Debug("pty read ended", "error", err)
	case req := <-r.requests:
		r.handleRequest(req)
	case <-timer.C:
	}

	r.drainRequests()

	if r.exitStatus == nil {
		if status, err := r.session.TryGetChildExitStatus(); err != nil {
			r.log.Debug("try_get_child_exit_status failed", "error", err)
		} else if status != nil {
			r.exitStatus = status
			r.running = false
			r.emit(ChildExit{Status: status})
		}
	}

	r.surf.FlushPendingSync()

	outcome := PollOutcome{ExitStatus: r.exitStatus}
	if r.surf.Dirty() {
		outcome.SurfaceChanged = true
		r.emit(Frame{Snapshot: r.surf.Snapshot(r.opts.SnapshotDetail)})
	}
	return outcome, nil
}

// drainRequests applies up to RequestBatchLimit additional queued
// requests without blocking, step 4's bound against starving PTY I/O.
func (r *Runtime) drainRequests() {
	for i := 0; i < r.opts.RequestBatchLimit; i++ {
		select {
		case req := <-r.requests:
			r.handleRequest(req)
		default:
			return
		}
	}
}

func (r *Runtime) handleRequest(req Request) {
	switch v := req.(type) {
	case WriteBytes:
		if _, err := r.session.Write(v.Data); err != nil {
			r.log.Debug("write to child failed", "error", err)
		}
	case Resize:
		if err := r.session.Resize(v.Rows, v.Cols); err != nil {
			r.log.Debug("pty resize failed", "error", err)
		}
		r.surf.Resize(v.Rows, v.Cols)
	case ScrollDisplay:
		r.applyScroll(v)
	case StartSelection:
		r.surf.StartSelection(v.Kind, v.Point)
		r.surf.SetSelectionDirection(v.Direction)
	case UpdateSelection:
		r.surf.SetSelectionDirection(v.Direction)
		r.surf.ExtendSelection(v.Point)
	case ClearSelection:
		r.surf.ClearSelection()
	case SetHyperlinkFocus:
		r.applyHyperlinkFocus(v.ID)
	case BlockCommand:
		r.applyBlockCommand(v)
	case Shutdown:
		r.running = false
		for drained := false; !drained; {
			select {
			case chunk := <-r.ptyCh:
				r.surf.Write(chunk)
			default:
				drained = true
			}
		}
		_ = r.session.Close()
	}
}

func (r *Runtime) applyScroll(req ScrollDisplay) {
	switch req.Mode {
	case ScrollBottom:
		r.surf.SetScrollOffset(0)
	case ScrollTop:
		r.surf.SetScrollOffset(1 << 30)
	case ScrollDelta:
		r.surf.SetScrollOffset(r.surf.ScrollOffset() + req.Delta)
	case ScrollPageUp:
		r.surf.SetScrollOffset(r.surf.ScrollOffset() + r.surf.Rows())
	case ScrollPageDown:
		r.surf.SetScrollOffset(r.surf.ScrollOffset() - r.surf.Rows())
	}
}

func (r *Runtime) applyHyperlinkFocus(id string) {
	if id == r.focusedHyperlink {
		return
	}
	r.focusedHyperlink = id
	if id == "" {
		r.emit(CursorIconChanged{Icon: "default"})
	} else {
		r.emit(CursorIconChanged{Icon: "pointer"})
	}
}

func (r *Runtime) applyBlockCommand(cmd BlockCommand) {
	switch cmd.Kind {
	case BlockCommandCopy:
		text, ok := r.surf.BlockText(cmd.BlockID)
		if !ok {
			return
		}
		r.emit(CopyToClipboard{Text: text})
		r.emit(BlockCopied{BlockID: cmd.BlockID})
	case BlockCommandSelect:
		if !r.selectBlock(cmd.BlockID) {
			return
		}
		r.emit(BlockSelected{BlockID: cmd.BlockID})
	}
}

// selectBlock turns a named block's row range into the active
// selection, mirroring BlockText's use of the block's StartLine/
// LineCount.
func (r *Runtime) selectBlock(id string) bool {
	for _, b := range r.surf.Blocks() {
		if b.ID != id {
			continue
		}
		start := surface.Position{Row: b.StartLine}
		end := surface.Position{Row: b.StartLine + b.LineCount - 1}
		r.surf.StartSelection(surface.SelectionLines, start)
		r.surf.SetSelectionDirection(surface.ExtendEnd)
		r.surf.ExtendSelection(end)
		return true
	}
	return false
}

// Write is a synchronous convenience equivalent to sending a
// WriteBytes request from the same goroutine that drives PollOnce.
func (r *Runtime) Write(data []byte) (int, error) {
	return r.session.Write(data)
}

var _ io.Writer = (*Runtime)(nil)

// IsRunning reports whether the poll loop is still servicing the
// child (false once Shutdown has been requested or the child exited).
func (r *Runtime) IsRunning() bool { return r.running }

// ExitStatus reports the child's exit status once known, or nil while
// it is still running.
func (r *Runtime) ExitStatus() *ptysession.ExitStatus { return r.exitStatus }

// Close shuts the runtime down: closes the PTY (the child sees
// SIGHUP/EOF) and stops the reader goroutine. Safe to call more than
// once; per spec.md §4.4.5, dropping a Runtime without an explicit
// Shutdown request must still close the PTY and reap the child, which
// this guarantees by never requiring Shutdown to have been sent first.
func (r *Runtime) Close() error {
	var err error
	r.stopOnce.Do(func() {
		close(r.stop)
		err = r.session.Close()
		r.running = false
	})
	return err
}

// Client receives callbacks from Run's drive loop, the Go rendering of
// spec.md §6.3's run(&mut Runtime, client) convenience driver.
type Client interface {
	// BeforePoll is called before each PollOnce, so a client can push
	// queued requests first.
	BeforePoll()
	// OnEvent is called for every Event a PollOnce iteration produced.
	OnEvent(Event)
	// OnChildExit is called once, after ChildExit has been delivered.
	OnChildExit(status *ptysession.ExitStatus)
}

// Run drives PollOnce in a loop with the given per-iteration timeout
// until the child exits or client requests Shutdown, delivering every
// Event to client synchronously in generation order.
func (r *Runtime) Run(timeout time.Duration, client Client) error {
	for r.running {
		client.BeforePoll()
		outcome, err := r.PollOnce(timeout)
		if err != nil {
			return err
		}
		r.drainEvents(client)
		if outcome.ExitStatus != nil {
			client.OnChildExit(outcome.ExitStatus)
			return nil
		}
	}
	return nil
}

// drainEvents forwards every event queued so far to client without
// blocking, so Run's synchronous callback driver sees them in order
// immediately after the PollOnce call that produced them.
func (r *Runtime) drainEvents(client Client) {
	for {
		select {
		case ev := <-r.events:
			client.OnEvent(ev)
		default:
			return
		}
	}
}
