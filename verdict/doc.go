// Package verdict weighs the collected evidence against an accusation.
//
// What
//
//   - Tally replays the clue ledger in order and counts how many clues
//     the evidence index attributes to the accused. Matching is exact
//     and case-sensitive; clues that implicate nobody are skipped.
//   - Decide converts a tally into a Verdict: Valid when the count
//     reaches ConvictionThreshold (two corroborating clues), Weak
//     otherwise.
//   - Judge wires the two together and enforces the accusation rules:
//     an empty ledger means there are no grounds to accuse anyone
//     (ErrNoEvidence, checked first), and an accusation needs a name
//     (ErrNoAccused).
//
// Why
//
//   - One clue can be coincidence; the game convicts only on
//     corroboration. Keeping the threshold a package constant makes the
//     rule visible where it is enforced.
//   - Names are never normalized. "sr. verde" does not accuse
//     "Sr. Verde"; the player is expected to name the suspect exactly.
//
// Usage
//
//	res, err := verdict.Judge(led, ix, "Sra. Rosa")
//	switch {
//	case errors.Is(err, verdict.ErrNoEvidence):
//		// explored nothing; no accusation possible
//	case errors.Is(err, verdict.ErrNoAccused):
//		// empty name; accusation aborted
//	case err == nil && res.Verdict == verdict.Valid:
//		// case closed
//	}
//
// Complexity: Tally is O(n) ledger entries, each with an O(1) expected
// index lookup.
package verdict
