package escape

import (
	"bytes"
	"encoding/json"
	"errors"
)

// dcsPrefix and the kind separator define the private DCS protocol
// this actor accepts: "otty;" <kind> ";" <json-payload>. Grounded
// verbatim on
// _examples/original_source/otty-escape/src/dcs/mod.rs (DCS_PREFIX,
// DcsMessage::parse, DcsMessageKind). encoding/json is used for the
// payload (stdlib; no pack example prefers a third-party JSON library
// over encoding/json for a payload this small).
var dcsPrefix = []byte("otty;")

const maxDcsKindLen = 32

// ErrDcsPrefixMissed is returned when the payload does not start with
// the "otty;" prefix.
var ErrDcsPrefixMissed = errors.New("escape: dcs message missing otty prefix")

// ErrDcsKindSeparatorMissed is returned when no ';' follows the kind.
var ErrDcsKindSeparatorMissed = errors.New("escape: dcs message missing kind separator")

// ErrDcsUnsupportedKind is returned for any kind other than "block".
type ErrDcsUnsupportedKind struct{ Kind string }

func (e ErrDcsUnsupportedKind) Error() string {
	return "escape: unsupported dcs kind: " + e.Kind
}

// BlockPhase names the shell-integration lifecycle point a block
// event reports.
type BlockPhase string

const (
	PhasePreexec BlockPhase = "preexec"
	PhaseExit    BlockPhase = "exit"
	PhasePrecmd  BlockPhase = "precmd"
)

// BlockKind classifies the resulting semantic block.
type BlockKind int

const (
	BlockKindCommand BlockKind = iota
	BlockKindPrompt
)

// BlockEvent is the decoded payload of an "otty;block;{...}" DCS
// message, reported to Actor.BlockEvent. Grounded on dcs/mod.rs's
// block-event JSON schema (id/phase/cmd/cwd/time/exit_code/shell).
type BlockEvent struct {
	ID       string
	Kind     BlockKind
	Phase    BlockPhase
	Cmd      string
	Cwd      string
	Time     int64
	ExitCode *int
	Shell    string
}

type blockPayload struct {
	ID       string `json:"id"`
	Phase    string `json:"phase"`
	Cmd      string `json:"cmd"`
	Cwd      string `json:"cwd"`
	Time     int64  `json:"time"`
	ExitCode *int   `json:"exit_code"`
	Shell    string `json:"shell"`
}

// parseDcsMessage splits "otty;<kind>;<payload>" into its kind and
// raw payload bytes, failing closed on any malformed prefix.
func parseDcsMessage(raw []byte) (kind string, payload []byte, err error) {
	if !bytes.HasPrefix(raw, dcsPrefix) {
		return "", nil, ErrDcsPrefixMissed
	}
	rest := raw[len(dcsPrefix):]
	sep := bytes.IndexByte(rest, ';')
	if sep < 0 {
		return "", nil, ErrDcsKindSeparatorMissed
	}
	kind = string(rest[:sep])
	if len(kind) > maxDcsKindLen {
		return "", nil, ErrDcsUnsupportedKind{Kind: kind}
	}
	return kind, rest[sep+1:], nil
}

// ParseBlockEvent decodes a complete private DCS payload into a
// BlockEvent, or reports why it was rejected.
func ParseBlockEvent(raw []byte) (BlockEvent, error) {
	kind, payload, err := parseDcsMessage(raw)
	if err != nil {
		return BlockEvent{}, err
	}
	if kind != "block" {
		return BlockEvent{}, ErrDcsUnsupportedKind{Kind: kind}
	}
	if len(payload) == 0 {
		return BlockEvent{}, errors.New("escape: empty block payload")
	}

	var p blockPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return BlockEvent{}, err
	}

	ev := BlockEvent{
		ID:       p.ID,
		Phase:    BlockPhase(p.Phase),
		Cmd:      p.Cmd,
		Cwd:      p.Cwd,
		Time:     p.Time,
		ExitCode: p.ExitCode,
		Shell:    p.Shell,
	}
	switch ev.Phase {
	case PhasePreexec, PhaseExit:
		ev.Kind = BlockKindCommand
	case PhasePrecmd:
		ev.Kind = BlockKindPrompt
	default:
		return BlockEvent{}, errors.New("escape: unknown block phase: " + p.Phase)
	}
	return ev, nil
}
