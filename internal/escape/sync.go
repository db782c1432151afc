package escape

import (
	"time"

	"github.com/otty-term/otty/internal/vtparser"
)

// Synchronized-update coalescing (DEC private mode 2026, "BSU"/"ESU":
// CSI ? 2026 h / CSI ? 2026 l) buffers the byte stream between BSU and
// ESU so a client update never observes a half-drawn frame. Grounded
// verbatim on
// _examples/original_source/otty-escape/src/parser.rs (SyncState,
// stop_sync/advance_sync/advance_sync_csi, SYNC_UPDATE_TIMEOUT,
// SYNC_BUFFER_SIZE) and on spec.md §9's "terminated() query ...
// rechecked after every complete dispatch" re-entry contract: boundary
// detection below runs the actual vtparser state machine via
// vtparser.Parser.AdvanceUntilTerminated rather than scanning raw
// bytes for a literal escape string, so text or payload content that
// merely looks like a BSU/ESU sequence never misfires.
const (
	syncTimeout    = 150 * time.Millisecond
	syncBufferSize = 0x20_0000 // 2 MiB
)

// syncCSILen is the byte length of the fixed "\x1b[?2026h"/
// "\x1b[?2026l" form (both BSU and ESU are this length).
const syncCSILen = 8

// syncScanActor is a throwaway vtparser.Actor that does nothing but
// watch for a CSI ?2026h and/or CSI ?2026l dispatch, implementing
// vtparser.Terminator so AdvanceUntilTerminated can stop exactly at
// the dispatch that matters to the caller.
type syncScanActor struct {
	watchOpen  bool
	watchClose bool
	final      byte
}

func (a *syncScanActor) Print(r rune)                                {}
func (a *syncScanActor) Execute(b byte)                              {}
func (a *syncScanActor) EscDispatch(intermediates []byte, final byte) {}
func (a *syncScanActor) Hook(params *vtparser.Params, final byte)     {}
func (a *syncScanActor) Put(b byte)                                   {}
func (a *syncScanActor) Unhook()                                      {}
func (a *syncScanActor) OscDispatch(fields [][]byte)                  {}
func (a *syncScanActor) Overflow(state vtparser.State)                {}

func (a *syncScanActor) CsiDispatch(params *vtparser.Params, final byte) {
	if params.Marker() != '?' || params.Int(0, 0) != 2026 {
		return
	}
	if final == 'h' && a.watchOpen {
		a.final = final
	}
	if final == 'l' && a.watchClose {
		a.final = final
	}
}

func (a *syncScanActor) Terminated() bool { return a.final != 0 }

// scanForBSU looks for the next CSI ?2026h dispatch in data, returning
// the offset immediately after it.
func scanForBSU(data []byte) (offset int, found bool) {
	scanner := vtparser.New()
	actor := &syncScanActor{watchOpen: true}
	n := scanner.AdvanceUntilTerminated(actor, data)
	return n, actor.final == 'h'
}

// scanForBoundary looks for the next CSI ?2026h (re-open) or ?2026l
// (close) dispatch in data, returning the offset immediately after it
// and which one was found.
func scanForBoundary(data []byte) (offset int, final byte, found bool) {
	scanner := vtparser.New()
	actor := &syncScanActor{watchOpen: true, watchClose: true}
	n := scanner.AdvanceUntilTerminated(actor, data)
	if actor.final == 0 {
		return len(data), 0, false
	}
	return n, actor.final, true
}

// syncState is the buffering half of Coalescer: while active, incoming
// bytes accumulate here instead of reaching the parser directly.
type syncState struct {
	active   bool
	buf      []byte
	deadline time.Time
	now      func() time.Time
}

func newSyncState(now func() time.Time) *syncState {
	if now == nil {
		now = time.Now
	}
	return &syncState{now: now}
}

func (s *syncState) start() {
	s.active = true
	s.buf = s.buf[:0]
	s.deadline = s.now().Add(syncTimeout)
}

func (s *syncState) stop() []byte {
	out := s.buf
	s.active = false
	s.buf = nil
	return out
}

// feed appends data to the sync buffer and scans the accumulated block
// for a boundary. A nested BSU (a sync block reopened before its
// matching ESU arrived) extends the timeout and marks a new boundary
// per spec.md §4.2.5, then scanning continues for a later ESU in the
// same feed; it never stops buffering. An ESU drains the whole
// accumulated block - the opening BSU included - as one chunk, so it
// replays through the real parser atomically instead of piecemeal.
// drain is the sync block to replay through the parser with sync mode
// already turned off; rest is any bytes following an embedded ESU that
// still need normal (non-sync) processing.
func (s *syncState) feed(data []byte) (drain, rest []byte, shouldFlush bool) {
	s.buf = append(s.buf, data...)

	offset := 0
	for offset < len(s.buf) {
		n, final, found := scanForBoundary(s.buf[offset:])
		offset += n
		if !found {
			break
		}
		if final == 'l' {
			drain = append([]byte(nil), s.buf[:offset]...)
			rest = append([]byte(nil), s.buf[offset:]...)
			s.active = false
			s.buf = nil
			return drain, rest, true
		}
		s.deadline = s.now().Add(syncTimeout)
	}

	if len(s.buf) >= syncBufferSize-1 || s.now().After(s.deadline) {
		return s.stop(), nil, true
	}
	return nil, nil, false
}

// Coalescer wraps byte delivery to an escape Parser, intercepting the
// BSU/ESU pair and holding the stream until the synchronized block
// closes, times out, or overflows its bound.
type Coalescer struct {
	sync *syncState
}

func NewCoalescer() *Coalescer {
	return &Coalescer{sync: newSyncState(nil)}
}

// Active reports whether a synchronized-update block is in progress.
func (c *Coalescer) Active() bool { return c.sync.active }

// PendingTimeout reports whether an active sync block's timeout has
// elapsed, so the caller can force a flush even with no new bytes.
func (c *Coalescer) PendingTimeout() bool {
	return c.sync.active && c.sync.now().After(c.sync.deadline)
}

// Submit feeds data through the coalescer, invoking deliver with each
// chunk that should be parsed immediately (i.e. outside of an active
// sync block, or once one closes/overflows/times out).
func (c *Coalescer) Submit(data []byte, deliver func([]byte)) {
	for len(data) > 0 {
		if !c.sync.active {
			n, found := scanForBSU(data)
			if !found {
				deliver(data)
				return
			}
			bsuStart := n - syncCSILen
			if bsuStart > 0 {
				deliver(data[:bsuStart])
			}
			data = data[bsuStart:]
			c.sync.start()
			continue
		}

		drain, rest, flush := c.sync.feed(data)
		if !flush {
			return
		}
		if len(drain) > 0 {
			deliver(drain)
		}
		data = rest
	}
}

// ForceFlush drains a timed-out sync buffer even with no new input.
func (c *Coalescer) ForceFlush(deliver func([]byte)) {
	if !c.sync.active {
		return
	}
	drain := c.sync.stop()
	if len(drain) > 0 {
		deliver(drain)
	}
}
