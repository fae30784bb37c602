package evidence

// record is one clue → suspect association stored in a bucket chain.
type record struct {
	clue    string
	suspect string
}

// Index is a chained hash table mapping each clue to the single suspect
// it implicates. Buckets are owned by the Index; callers interact only
// through Put/Get and never see chain internals.
//
// Index is not safe for concurrent use.
type Index struct {
	size    int        // bucket count, fixed at construction
	buckets [][]record // chain per bucket
	count   int        // distinct clues stored
}

// NewIndex constructs an empty Index.
// Returns ErrOptionViolation if any supplied Option is invalid.
func NewIndex(opts ...Option) (*Index, error) {
	// 1) Merge defaults with caller options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 2) Surface any violation recorded during option parsing.
	if o.err != nil {
		return nil, o.err
	}
	// 3) Allocate the bucket table.
	return &Index{
		size:    o.TableSize,
		buckets: make([][]record, o.TableSize),
	}, nil
}

// bucket reduces the DJB2 hash of key to a bucket position.
// DJB2: h starts at 5381 and folds each byte as h = h*33 + byte.
func (ix *Index) bucket(key string) int {
	var h uint64 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}

	return int(h % uint64(ix.size))
}

// Put associates clue with suspect.
// If the clue is already present its suspect is replaced in place, so a
// clue never occupies two chain slots. Empty clue or suspect is a no-op.
func (ix *Index) Put(clue, suspect string) {
	if clue == "" || suspect == "" {
		return
	}
	b := ix.bucket(clue)
	for i := range ix.buckets[b] {
		if ix.buckets[b][i].clue == clue {
			ix.buckets[b][i].suspect = suspect
			return
		}
	}
	ix.buckets[b] = append(ix.buckets[b], record{clue: clue, suspect: suspect})
	ix.count++
}

// Get returns the suspect implicated by clue and whether the clue is
// present. Matching is exact and case-sensitive; absence is reported by
// the boolean, never by an error.
func (ix *Index) Get(clue string) (string, bool) {
	if clue == "" {
		return "", false
	}
	for _, rec := range ix.buckets[ix.bucket(clue)] {
		if rec.clue == clue {
			return rec.suspect, true
		}
	}

	return "", false
}

// Len reports the number of distinct clues stored.
func (ix *Index) Len() int { return ix.count }

// TableSize reports the fixed bucket count of this Index.
func (ix *Index) TableSize() int { return ix.size }
