// Package evidence provides the clue → suspect index for a mystery game:
// a chained hash table with deterministic bucket placement and
// replace-in-place semantics for repeated keys.
//
// What
//
//   - Index maps a clue string to exactly one suspect string.
//   - Buckets are owned slices of records; collisions chain within a bucket.
//   - Put(clue, suspect) appends a new record or replaces the suspect of an
//     existing record in place, so a key never occupies two chain slots.
//   - Get(clue) scans the key's bucket for an exact match and reports
//     absence with a boolean, never an error.
//
// Why
//
//   - Resolving a collected clue to the suspect it implicates is the heart
//     of the judgment phase; misses mean "this clue implicates no one".
//   - A fixed, seedless string hash keeps bucket placement reproducible
//     across runs, so tests can rely on chain behavior.
//
// Determinism
//
//	The hash is the classic DJB2 polynomial (h = 5381; h = h*33 + byte,
//	per byte), reduced modulo the table size. No per-process seed.
//
// Complexity (n = records, b = table size)
//
//   - Put/Get: O(1) expected, O(n/b) worst case per bucket chain.
//   - Memory:  O(n + b).
//
// Usage
//
//	ix, err := evidence.NewIndex()
//	if err != nil {
//		// only option violations can fail construction
//	}
//	ix.Put("Pegadas lamacentas", "Sr. Verde")
//	if suspect, ok := ix.Get("Pegadas lamacentas"); ok {
//		// suspect == "Sr. Verde"
//	}
//
// Options
//
//   - DefaultOptions(): table of DefaultTableSize (101) buckets.
//   - WithTableSize(n): override the bucket count (n ≥ 1).
//
// Errors
//
//   - ErrOptionViolation if an invalid Option (e.g. non-positive table
//     size) is supplied to NewIndex.
//
// Empty keys or values are ignored by Put and never match in Get; emptiness
// is not an error condition.
package evidence
