package escape

import (
	"strconv"
	"strings"
)

// ParseColorSpec parses an XParseColor-style color specification, the
// form used by OSC 4/10/11/12/104/110/111/112's color argument:
// "#rgb", "#rrggbb", "#rrrrggggbbbb", "rgb:r/g/b" (1-4 hex digits per
// channel) and the xterm "0xRRGGBB" shorthand. Grounded verbatim on
// _examples/original_source/otty-escape/src/color.rs's xparse_color,
// parse_legacy_color and parse_rgb_color.
func ParseColorSpec(s string) (Rgb, bool) {
	switch {
	case strings.HasPrefix(s, "#"):
		return parseLegacyColor(s[1:])
	case strings.HasPrefix(s, "rgb:"):
		return parseRgbColor(s[4:])
	case strings.HasPrefix(s, "0x") && len(s) == 8:
		return parseLegacyColor(s[2:])
	default:
		return Rgb{}, false
	}
}

func parseLegacyColor(s string) (Rgb, bool) {
	n := len(s) / 3
	if n == 0 || len(s)%3 != 0 {
		return Rgb{}, false
	}
	component := func(chunk string) (uint8, bool) {
		v, err := strconv.ParseUint(chunk, 16, 32)
		if err != nil {
			return 0, false
		}
		normalized := v << 4
		shift := 4 * uint(len(chunk)-1)
		return uint8(normalized >> shift), true
	}
	r, ok1 := component(s[0:n])
	g, ok2 := component(s[n : 2*n])
	b, ok3 := component(s[2*n : 3*n])
	if !ok1 || !ok2 || !ok3 {
		return Rgb{}, false
	}
	return Rgb{R: r, G: g, B: b}, true
}

func parseRgbColor(s string) (Rgb, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return Rgb{}, false
	}
	scale := func(hex string) (uint8, bool) {
		if hex == "" || len(hex) > 4 {
			return 0, false
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, false
		}
		max := uint64(1)
		for i := 0; i < len(hex); i++ {
			max *= 16
		}
		max--
		return uint8(255 * uint64(v) / max), true
	}
	r, ok1 := scale(parts[0])
	g, ok2 := scale(parts[1])
	b, ok3 := scale(parts[2])
	if !ok1 || !ok2 || !ok3 {
		return Rgb{}, false
	}
	return Rgb{R: r, G: g, B: b}, true
}
