package verdict

import (
	"errors"

	"github.com/katalvlaran/sleuth/evidence"
	"github.com/katalvlaran/sleuth/ledger"
)

// ConvictionThreshold is the number of corroborating clues required to
// sustain an accusation.
const ConvictionThreshold = 2

// Sentinel errors for Judge.
var (
	// ErrLedgerNil is returned if a nil ledger is passed.
	ErrLedgerNil = errors.New("verdict: ledger is nil")

	// ErrIndexNil is returned if a nil evidence index is passed.
	ErrIndexNil = errors.New("verdict: evidence index is nil")

	// ErrNoEvidence is returned when the ledger holds no clues at all;
	// with nothing recorded there are no grounds for any accusation.
	ErrNoEvidence = errors.New("verdict: no clues recorded")

	// ErrNoAccused is returned when the accused name is empty.
	ErrNoAccused = errors.New("verdict: no suspect named")
)

// Verdict is the outcome of weighing a tally against the threshold.
type Verdict int

const (
	// Weak means the evidence does not sustain the accusation.
	Weak Verdict = iota
	// Valid means enough clues corroborate the accusation.
	Valid
)

// String returns "weak" or "valid".
func (v Verdict) String() string {
	if v == Valid {
		return "valid"
	}

	return "weak"
}

// Result is the outcome of a completed judgment.
type Result struct {
	Accused string
	Count   int
	Verdict Verdict
}

// Tally counts the recorded clues that implicate accused, replaying the
// ledger in lexicographic order and resolving each clue through the
// index. Clues absent from the index implicate nobody and are skipped.
// A nil ledger or index tallies zero.
func Tally(led *ledger.Ledger, ix *evidence.Index, accused string) int {
	if led == nil || ix == nil {
		return 0
	}
	count := 0
	led.Walk(func(clue string) {
		if suspect, ok := ix.Get(clue); ok && suspect == accused {
			count++
		}
	})

	return count
}

// Decide maps a tally to a Verdict using ConvictionThreshold.
func Decide(count int) Verdict {
	if count >= ConvictionThreshold {
		return Valid
	}

	return Weak
}

// Judge runs the full judgment: evidence check, accusation check, tally,
// decision. The empty-ledger check comes first, so an exploration that
// recorded nothing yields ErrNoEvidence no matter who is accused.
func Judge(led *ledger.Ledger, ix *evidence.Index, accused string) (Result, error) {
	if led == nil {
		return Result{}, ErrLedgerNil
	}
	if ix == nil {
		return Result{}, ErrIndexNil
	}
	if led.Empty() {
		return Result{}, ErrNoEvidence
	}
	if accused == "" {
		return Result{}, ErrNoAccused
	}

	count := Tally(led, ix, accused)

	return Result{Accused: accused, Count: count, Verdict: Decide(count)}, nil
}
