package escape

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"
)

// oscCommand names the first OSC field, selecting which handler below
// decodes the remaining fields. Grounded on
// _examples/original_source/otty-escape/src/osc.rs's OSC enum and its
// From<&[u8]> raw-code table.
type oscCommand int

const (
	oscUnhandled oscCommand = iota
	oscSetWindowTitle
	oscSetColorIndex
	oscHyperlink
	oscSetTextForegroundColor
	oscSetTextBackgroundColor
	oscSetTextCursorColor
	oscSetMouseCursorIcon
	oscSetCursorShape
	oscClipboard
	oscResetIndexedColors
	oscResetForegroundColor
	oscResetBackgroundColor
	oscResetCursorColor
	oscSetWorkingDirectory
)

func classifyOSC(code []byte) oscCommand {
	switch string(code) {
	case "0", "2":
		return oscSetWindowTitle
	case "4":
		return oscSetColorIndex
	case "7":
		return oscSetWorkingDirectory
	case "8":
		return oscHyperlink
	case "10":
		return oscSetTextForegroundColor
	case "11":
		return oscSetTextBackgroundColor
	case "12":
		return oscSetTextCursorColor
	case "22":
		return oscSetMouseCursorIcon
	case "50":
		return oscSetCursorShape
	case "52":
		return oscClipboard
	case "104":
		return oscResetIndexedColors
	case "110":
		return oscResetForegroundColor
	case "111":
		return oscResetBackgroundColor
	case "112":
		return oscResetCursorColor
	default:
		return oscUnhandled
	}
}

// dispatchOSC decodes one complete OSC payload (already split on ';'
// by the byte-level parser) and invokes the matching Actor method.
// Grounded on osc.rs's perform().
func dispatchOSC(actor Actor, fields [][]byte) {
	if len(fields) == 0 || len(fields[0]) == 0 {
		return
	}

	switch classifyOSC(fields[0]) {
	case oscHyperlink:
		if len(fields) > 2 {
			oscHyperlinkDispatch(actor, fields)
		}
	case oscSetColorIndex:
		oscSetIndexedColor(actor, fields)
	case oscSetWindowTitle:
		oscSetTitle(actor, fields)
	case oscSetWorkingDirectory:
		oscSetWorkingDir(actor, fields)
	case oscSetMouseCursorIcon:
		if len(fields) >= 2 {
			actor.SetCursorIcon(string(fields[1]))
		}
	case oscSetCursorShape:
		oscSetCursorStyle(actor, fields)
	case oscClipboard:
		oscClipboardDispatch(actor, fields)
	case oscResetIndexedColors:
		oscResetIndexed(actor, fields)
	case oscResetForegroundColor:
		actor.ResetColor(int(Foreground))
	case oscResetBackgroundColor:
		actor.ResetColor(int(Background))
	case oscResetCursorColor:
		actor.ResetColor(int(Cursor))
	case oscSetTextForegroundColor:
		oscSetDynamicStdColor(actor, fields, DynamicColorForeground, Foreground)
	case oscSetTextBackgroundColor:
		oscSetDynamicStdColor(actor, fields, DynamicColorBackground, Background)
	case oscSetTextCursorColor:
		oscSetDynamicStdColor(actor, fields, DynamicColorCursor, Cursor)
	default:
		// Unrecognized OSC codes are silently dropped, matching xterm's
		// tolerance for private/unknown sequences.
	}
}

func oscSetTitle(actor Actor, fields [][]byte) {
	if len(fields) < 2 {
		return
	}
	parts := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		parts = append(parts, string(f))
	}
	actor.SetTitle(strings.TrimSpace(strings.Join(parts, ";")))
}

func oscSetWorkingDir(actor Actor, fields [][]byte) {
	if len(fields) < 2 {
		return
	}
	actor.SetWorkingDirectory(string(bytes.Join(fields[1:], []byte(";"))))
}

// oscHyperlinkDispatch handles OSC 8 ; params ; URI. The URI may
// itself contain unescaped ';' bytes, so everything after the params
// field is rejoined with ';'.
func oscHyperlinkDispatch(actor Actor, fields [][]byte) {
	linkParams := fields[1]
	uri := string(bytes.Join(fields[2:], []byte(";")))

	if uri == "" {
		actor.SetHyperlink(nil)
		return
	}

	id := ""
	for _, kv := range bytes.Split(linkParams, []byte(":")) {
		if rest, ok := bytes.CutPrefix(kv, []byte("id=")); ok {
			id = string(rest)
			break
		}
	}
	actor.SetHyperlink(&Hyperlink{ID: id, URI: uri})
}

func oscSetIndexedColor(actor Actor, fields [][]byte) {
	if len(fields) <= 1 || len(fields[1:])%2 != 0 {
		return
	}
	rest := fields[1:]
	for i := 0; i < len(rest); i += 2 {
		index, err := strconv.ParseInt(string(rest[i]), 10, 32)
		if err != nil {
			continue
		}
		spec := rest[i+1]
		if rgb, ok := ParseColorSpec(string(spec)); ok {
			actor.SetColor(int(index), NewTrueColor(rgb.R, rgb.G, rgb.B))
		} else if string(spec) == "?" {
			actor.QueryColor(int(index))
		}
	}
}

func oscResetIndexed(actor Actor, fields [][]byte) {
	if len(fields) == 1 || len(fields[1]) == 0 {
		for i := 0; i < 256; i++ {
			actor.ResetColor(i)
		}
		return
	}
	for _, f := range fields[1:] {
		index, err := strconv.ParseInt(string(f), 10, 32)
		if err == nil {
			actor.ResetColor(int(index))
		}
	}
}

func oscSetDynamicStdColor(actor Actor, fields [][]byte, kind DynamicColorKind, slot StdColor) {
	if len(fields) < 2 {
		return
	}
	spec := fields[1]
	if string(spec) == "?" {
		actor.QueryColor(int(slot))
		return
	}
	if rgb, ok := ParseColorSpec(string(spec)); ok {
		actor.SetColor(int(slot), NewTrueColor(rgb.R, rgb.G, rgb.B))
		return
	}
	actor.SetDynamicColor(kind, int(slot), string(spec))
}

func oscSetCursorStyle(actor Actor, fields [][]byte) {
	if len(fields) < 2 {
		return
	}
	const prefix = "CursorShape="
	s := string(fields[1])
	if !strings.HasPrefix(s, prefix) || len(s) <= len(prefix) {
		return
	}
	var shape CursorShape
	switch s[len(prefix)] {
	case '0':
		shape = CursorSteadyBlock
	case '1':
		shape = CursorSteadyBar
	case '2':
		shape = CursorSteadyUnderline
	default:
		return
	}
	actor.SetCursorStyle(shape)
}

func oscClipboardDispatch(actor Actor, fields [][]byte) {
	if len(fields) < 3 {
		return
	}
	selection := byte('c')
	if len(fields[1]) > 0 {
		selection = fields[1][0]
	}
	data := fields[2]
	if string(data) == "?" {
		actor.ClipboardLoad(selection, "\x1b\\")
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return
	}
	actor.ClipboardStore(selection, decoded)
}
