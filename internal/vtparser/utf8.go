package vtparser

// utf8Decoder accumulates the continuation bytes of a multi-byte UTF-8
// sequence entered from Ground/OscString on seeing a lead byte. The VT
// state machine only needs to know how many continuation bytes remain
// and reassemble the rune; malformed sequences fall back to the
// replacement rune rather than wedging the parser.
type utf8Decoder struct {
	rest   int
	needed int
	value  rune
	ret    State // state to return to once the sequence completes
}

func (d *utf8Decoder) start(lead byte, ret State) {
	d.ret = ret
	switch {
	case lead >= 0xc2 && lead <= 0xdf:
		d.needed = 1
		d.value = rune(lead & 0x1f)
	case lead >= 0xe0 && lead <= 0xef:
		d.needed = 2
		d.value = rune(lead & 0x0f)
	case lead >= 0xf0 && lead <= 0xf4:
		d.needed = 3
		d.value = rune(lead & 0x07)
	default:
		d.needed = 0
		d.value = 0xfffd
	}
	d.rest = d.needed
}

// feed consumes one continuation byte, returning the decoded rune and
// true once the sequence is complete. On a malformed continuation byte
// it aborts early and returns the replacement rune.
func (d *utf8Decoder) feed(b byte) (rune, bool, State) {
	if b < 0x80 || b > 0xbf {
		return 0xfffd, true, d.ret
	}
	d.value = (d.value << 6) | rune(b&0x3f)
	d.rest--
	if d.rest == 0 {
		return d.value, true, d.ret
	}
	return 0, false, Utf8Sequence
}
