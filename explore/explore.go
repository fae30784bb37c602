// Package explore walks a mansion.Mansion under visitor commands,
// recording discovered clues into a ledger.Ledger and reporting
// progress through hooks.
package explore

import (
	"github.com/katalvlaran/sleuth/ledger"
	"github.com/katalvlaran/sleuth/mansion"
)

// Engine encapsulates the mutable exploration state: the visitor's
// position plus the started/finished lifecycle flags.
//
// Engine is not safe for concurrent use; one goroutine drives it.
type Engine struct {
	opts    EngineOptions
	led     *ledger.Ledger
	clueAt  ClueFunc
	current *mansion.Room
	started bool
	done    bool
}

// New prepares an Engine positioned at the mansion entrance,
// applying any number of functional Options.
// Returns ErrMansionNil, ErrLedgerNil or ErrClueFuncNil for nil
// collaborators; the first visit does not happen until Start.
func New(m *mansion.Mansion, led *ledger.Ledger, clueAt ClueFunc, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrMansionNil
	}
	if led == nil {
		return nil, ErrLedgerNil
	}
	if clueAt == nil {
		return nil, ErrClueFuncNil
	}
	// Merge defaults with caller options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		opts:    o,
		led:     led,
		clueAt:  clueAt,
		current: m.Root(),
	}, nil
}

// Start performs the first visit of the entrance room (enter and clue
// hooks fire). Calling Start again is a no-op.
func (e *Engine) Start() {
	if e.started {
		return
	}
	e.started = true
	e.visit()
}

// Step applies one command.
//
//   - Left/Right move to the adjacent room when the door exists;
//     otherwise OnBlocked fires and the current room is visited again.
//   - Unknown fires OnUnknown and visits the current room again.
//   - Stop ends the visit and fires OnStop; the position no longer moves.
//
// Step returns ErrNotStarted before Start and ErrFinished after Stop.
func (e *Engine) Step(cmd Command) error {
	if !e.started {
		return ErrNotStarted
	}
	if e.done {
		return ErrFinished
	}

	switch cmd {
	case Left, Right:
		next := e.current.Left()
		if cmd == Right {
			next = e.current.Right()
		}
		if next == nil {
			e.opts.OnBlocked(e.current, cmd)
			e.visit()
			return nil
		}
		e.current = next
		e.visit()
	case Stop:
		e.done = true
		e.opts.OnStop(e.current)
	default:
		e.opts.OnUnknown(e.current)
		e.visit()
	}

	return nil
}

// visit announces the current room, then collects and announces its clue.
// Re-visits re-announce; the ledger insert stays idempotent.
func (e *Engine) visit() {
	e.opts.OnEnter(e.current)
	clue, ok := e.clueAt(e.current.Name())
	if !ok || clue == "" {
		e.opts.OnNoClue(e.current)
		return
	}
	recorded := e.led.Insert(clue)
	e.opts.OnClue(e.current, clue, recorded)
}

// Current returns the room the visitor is in.
func (e *Engine) Current() *mansion.Room { return e.current }

// Started reports whether Start has run.
func (e *Engine) Started() bool { return e.started }

// Finished reports whether the visit has ended.
func (e *Engine) Finished() bool { return e.done }
