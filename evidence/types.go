// Package evidence provides tunable options and error definitions
// for the clue → suspect hash index.
package evidence

import (
	"errors"
	"fmt"
)

// DefaultTableSize is the bucket count used when no WithTableSize
// option is supplied. 101 is prime, which spreads the DJB2 residues
// evenly for small record counts.
const DefaultTableSize = 101

// Sentinel errors for Index construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("evidence: invalid option supplied")
)

// Option configures Index behavior via functional arguments.
// If an Option is invalid (e.g. non-positive table size), it will be
// recorded internally and surfaced as ErrOptionViolation when
// NewIndex is invoked.
type Option func(*IndexOptions)

// IndexOptions holds parameters to customize Index construction.
type IndexOptions struct {
	// TableSize is the number of buckets; fixed for the Index lifetime.
	TableSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an IndexOptions with sane defaults:
//   - DefaultTableSize (101) buckets
//   - error channel clear.
func DefaultOptions() IndexOptions {
	return IndexOptions{
		TableSize: DefaultTableSize,
		err:       nil,
	}
}

// WithTableSize overrides the bucket count.
//
//	n >= 1: use n buckets
//	n <  1: invalid option → ErrOptionViolation
func WithTableSize(n int) Option {
	return func(o *IndexOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: TableSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.TableSize = n
	}
}
