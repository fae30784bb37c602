// Package explore provides command parsing, tunable hooks, and error
// definitions for the exploration engine.
package explore

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/sleuth/mansion"
)

// Sentinel errors for Engine construction and lifecycle.
var (
	// ErrMansionNil is returned if a nil mansion is passed to New.
	ErrMansionNil = errors.New("explore: mansion is nil")

	// ErrLedgerNil is returned if a nil ledger is passed to New.
	ErrLedgerNil = errors.New("explore: ledger is nil")

	// ErrClueFuncNil is returned if a nil clue source is passed to New.
	ErrClueFuncNil = errors.New("explore: clue source is nil")

	// ErrNotStarted is returned by Step before Start has run.
	ErrNotStarted = errors.New("explore: engine not started")

	// ErrFinished is returned by Step after the visit has ended.
	ErrFinished = errors.New("explore: exploration already finished")
)

// Command is one visitor instruction.
type Command int

// Visitor commands. Unknown covers every unrecognized token.
const (
	Unknown Command = iota
	Left
	Right
	Stop
)

// String returns the lower-case command word, "unknown" for Unknown.
func (c Command) String() string {
	switch c {
	case Left:
		return "left"
	case Right:
		return "right"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// ParseCommand maps raw input to a Command. Only the first rune matters,
// case-insensitively: e→Left, d→Right, s→Stop ("esquerda", "direita",
// "sair"). Everything else, including empty input, is Unknown.
func ParseCommand(input string) Command {
	s := strings.TrimSpace(input)
	if s == "" {
		return Unknown
	}
	r, _ := utf8.DecodeRuneInString(s)
	switch unicode.ToLower(r) {
	case 'e':
		return Left
	case 'd':
		return Right
	case 's':
		return Stop
	default:
		return Unknown
	}
}

// ClueFunc resolves the clue waiting in a room. Returning ok == false
// (or an empty clue) marks the room as bare.
type ClueFunc func(room string) (clue string, ok bool)

// Option configures Engine behavior via functional arguments.
type Option func(*EngineOptions)

// EngineOptions holds the observer hooks fired during exploration.
// All hooks run synchronously on the goroutine driving the Engine.
type EngineOptions struct {
	// OnEnter is called at every visit, including re-visits after a
	// blocked or unknown command.
	OnEnter func(room *mansion.Room)

	// OnClue is called after OnEnter when the room bears a clue.
	// recorded is true when the ledger took the clue for the first time.
	OnClue func(room *mansion.Room, clue string, recorded bool)

	// OnNoClue is called after OnEnter when the room bears no clue.
	OnNoClue func(room *mansion.Room)

	// OnBlocked is called when dir (Left or Right) has no door.
	OnBlocked func(room *mansion.Room, dir Command)

	// OnUnknown is called when an Unknown command is stepped.
	OnUnknown func(room *mansion.Room)

	// OnStop is called once when the visit ends.
	OnStop func(room *mansion.Room)
}

// DefaultOptions returns an EngineOptions with no-op hooks.
func DefaultOptions() EngineOptions {
	return EngineOptions{
		OnEnter:   func(*mansion.Room) {},
		OnClue:    func(*mansion.Room, string, bool) {},
		OnNoClue:  func(*mansion.Room) {},
		OnBlocked: func(*mansion.Room, Command) {},
		OnUnknown: func(*mansion.Room) {},
		OnStop:    func(*mansion.Room) {},
	}
}

// WithOnEnter registers a callback for every room visit.
func WithOnEnter(fn func(room *mansion.Room)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnEnter = fn
		}
	}
}

// WithOnClue registers a callback for clue announcements.
func WithOnClue(fn func(room *mansion.Room, clue string, recorded bool)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnClue = fn
		}
	}
}

// WithOnNoClue registers a callback for clueless rooms.
func WithOnNoClue(fn func(room *mansion.Room)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnNoClue = fn
		}
	}
}

// WithOnBlocked registers a callback for moves through missing doors.
func WithOnBlocked(fn func(room *mansion.Room, dir Command)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnBlocked = fn
		}
	}
}

// WithOnUnknown registers a callback for unrecognized commands.
func WithOnUnknown(fn func(room *mansion.Room)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnUnknown = fn
		}
	}
}

// WithOnStop registers a callback for the end of the visit.
func WithOnStop(fn func(room *mansion.Room)) Option {
	return func(o *EngineOptions) {
		if fn != nil {
			o.OnStop = fn
		}
	}
}
