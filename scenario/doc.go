// Package scenario loads mystery definitions from YAML and adapts them
// into the domain structures the game runs on.
//
// What
//
//   - Scenario is the declarative case file: a named mansion layout, a
//     clue per room (optional), and the suspect each clue implicates
//     (also optional; an unattributed clue simply never counts at judgment).
//   - Load/LoadFile parse and validate; Default returns the embedded
//     classic case (nine rooms, four suspects).
//   - Adapters hand the pieces to the rest of the system: Mansion()
//     builds the validated room tree, Index() bulk-loads the evidence
//     table, ClueAt is pluggable wherever a clue source is expected,
//     SuspectNames lists the cast.
//
// Validation
//
//	Three layers, all at Load time so a playing session never sees a
//	half-broken case:
//	  1. schema tags (go-playground/validator): scenario and room names
//	     required, at least one room;
//	  2. cross-field checks: clues must belong to declared rooms, clue
//	     and suspect texts must be non-empty;
//	  3. structure: the room list must build into a valid mansion
//	     (single entrance, no shared rooms, everything reachable);
//	     mansion.Build sentinels pass through unchanged.
//
// Usage
//
//	s, err := scenario.Default()
//	if err != nil { ... }
//	m, _ := s.Mansion()
//	ix, _ := s.Index()
//	eng, _ := explore.New(m, ledger.New(), s.ClueAt)
//
// File format
//
//	name: classic
//	start: Entrada
//	rooms:
//	  - name: Entrada
//	    left: Salão
//	    right: Cozinha
//	  - name: Salão
//	  - name: Cozinha
//	clues:
//	  Entrada: Pegadas lamacentas
//	suspects:
//	  Pegadas lamacentas: Sr. Verde
package scenario
