package escape

import "errors"

// errDcsOverflow is reported when a private DCS message exceeds its
// payload bound before Unhook.
var errDcsOverflow = errors.New("escape: dcs payload exceeds bound")

// dcsAccumulator buffers DCS passthrough bytes between Hook and
// Unhook, bounded to MaxDcsPayload so a runaway or malformed sequence
// cannot grow the buffer without limit.
type dcsAccumulator struct {
	buf      []byte
	overflow bool
	maxLen   int
}

func newDcsAccumulator(maxLen int) *dcsAccumulator {
	return &dcsAccumulator{maxLen: maxLen}
}

func (d *dcsAccumulator) reset() {
	d.buf = d.buf[:0]
	d.overflow = false
}

func (d *dcsAccumulator) put(b byte) {
	if len(d.buf) >= d.maxLen {
		d.overflow = true
		return
	}
	d.buf = append(d.buf, b)
}

// finish parses the accumulated bytes as an "otty;<kind>;<payload>"
// message and reports the result to actor: a BlockEvent on success, a
// ReportError otherwise. An overflowed accumulation is reported as
// errDcsOverflow; an empty accumulation is dropped without a report.
func (d *dcsAccumulator) finish(actor Actor) {
	defer d.reset()

	if d.overflow {
		actor.ReportError(errDcsOverflow)
		return
	}
	if len(d.buf) == 0 {
		return
	}

	ev, err := ParseBlockEvent(d.buf)
	if err != nil {
		actor.ReportError(err)
		return
	}
	actor.BlockEvent(ev)
}
