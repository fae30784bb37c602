// Package ledger provides the detective's notebook: an ordered,
// duplicate-free collection of clue texts backed by a binary search
// tree.
//
// What
//
//   - Ledger stores clue strings, each at most once.
//   - Ordering is byte-wise lexicographic (strings.Compare), so the
//     in-order walk always reproduces the same sorted sequence
//     regardless of collection order.
//   - Insert reports whether the clue was new; re-recording a clue is
//     harmless and changes nothing.
//
// Why
//
//   - Rooms can be revisited, so the same clue may be announced many
//     times; the notebook must record it once.
//   - The judgment phase replays every recorded clue in a stable order,
//     which makes tallies and transcripts reproducible.
//
// Complexity (n = recorded clues)
//
//   - Insert/Contains: O(h), h = tree height (O(n) worst case; the tree
//     is not rebalanced).
//   - Walk/InOrder:    O(n).
//   - Memory:          O(n).
//
// Usage
//
//	led := ledger.New()
//	led.Insert("Retrato rasgado")
//	led.Insert("Pegadas lamacentas")
//	led.Insert("Retrato rasgado") // duplicate, ignored
//	for _, clue := range led.InOrder() {
//		fmt.Println(clue) // "Pegadas lamacentas", then "Retrato rasgado"
//	}
//
// Empty clue texts are ignored by Insert; the Ledger never holds "".
package ledger
