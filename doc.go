// Package sleuth is an in-memory toolkit for text-driven mystery games:
// a fixed mansion of rooms to explore, an ordered notebook of collected
// clues, and an evidence index that ties every clue to a suspect.
//
// 🔎 What is sleuth?
//
//	A small, deterministic library plus a console front end:
//		• Evidence index: chained hash table mapping clue → suspect
//		• Clue ledger: duplicate-free BST, in-order listing of findings
//		• Mansion: immutable binary tree of rooms, built from a blueprint
//		• Exploration: command-driven descent with observer hooks
//		• Verdict: tallies the evidence against the accused and rules the case
//		• Scenario: YAML game data, with the classic nine-room mansion embedded
//
// ✨ Why sleuth?
//
//   - Deterministic – same commands, same transcript, every run
//   - Pure Go core – no cgo, no global state, structures own their nodes
//   - Hookable – OnEnter, OnClue, OnBlocked… inject narration or tests
//   - Playable – `sleuth play` ships an interactive mansion out of the box
//
// Under the hood, everything is organized under six subpackages:
//
//	evidence/ — clue → suspect index with collision chaining
//	ledger/   — lexicographic BST of collected clues
//	mansion/  — room tree construction and read-only traversal
//	explore/  — the exploration state machine (left / right / stop)
//	verdict/  — evidence tally and the conviction threshold
//	scenario/ — injected game data: rooms, clues, suspects
//
// Quick ASCII example (the classic mansion):
//
//	            Entrada
//	           /       \
//	       Salão       Cozinha
//	      /     \      /     \
//	 Biblioteca  Escritório  …
//
//	every room may hold one clue; every clue points at one suspect.
//
// Dive into the package docs for contracts, options, and error policy,
// or run the game:
//
//	go run github.com/katalvlaran/sleuth/cmd/sleuth play
package sleuth
