// Package explore drives an interactive descent through a mansion tree,
// collecting clues into a ledger as rooms are visited.
//
// What
//
//   - Engine holds the visitor's position and the finished flag; commands
//     (Left, Right, Stop) move it, everything else counts as Unknown.
//   - Every visit announces the room through OnEnter, then consults the
//     clue source: a found clue is recorded in the ledger (idempotently)
//     and announced through OnClue; a bare room fires OnNoClue.
//   - A move through a missing door does not change the position: the
//     engine fires OnBlocked and re-visits the current room, so the room
//     and its clue are announced again, exactly like the prompt loop it
//     models. Unknown commands behave the same way via OnUnknown.
//   - Stop is the only way to finish, even in a leaf room; dead ends
//     merely limit movement, they do not end the visit.
//
// Why
//
//   - The engine is deliberately UI-free: front ends (a terminal prompt,
//     a TUI, a test harness) own the read loop and feed commands in,
//     observing progress through hooks. That keeps the walk testable
//     without capturing stdout.
//
// Lifecycle
//
//	New → Start (first visit of the entrance) → Step* → Stop.
//	Start is idempotent; Step before Start returns ErrNotStarted and
//	Step after Stop returns ErrFinished.
//
// Usage
//
//	eng, err := explore.New(m, led, clueAt,
//		explore.WithOnEnter(func(r *mansion.Room) { fmt.Println("in", r.Name()) }),
//		explore.WithOnClue(func(_ *mansion.Room, clue string, _ bool) { fmt.Println("clue:", clue) }),
//	)
//	if err != nil { ... }
//	eng.Start()
//	for !eng.Finished() {
//		_ = eng.Step(explore.ParseCommand(readLine()))
//	}
//
// Options
//
//   - WithOnEnter, WithOnClue, WithOnNoClue, WithOnBlocked, WithOnUnknown,
//     WithOnStop: observer hooks, all no-ops by default.
//
// Errors
//
//   - ErrMansionNil, ErrLedgerNil, ErrClueFuncNil for nil collaborators.
//   - ErrNotStarted, ErrFinished for out-of-lifecycle Steps.
//
// Engine is single-threaded by contract: one goroutine drives Start and
// Step, and hooks run synchronously on that goroutine.
package explore
