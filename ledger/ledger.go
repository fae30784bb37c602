package ledger

import "strings"

// entry is one node of the clue tree.
type entry struct {
	text  string
	left  *entry
	right *entry
}

// walk visits the subtree rooted at e in-order. Safe on a nil subtree.
func (e *entry) walk(fn func(string)) {
	if e == nil {
		return
	}
	e.left.walk(fn)
	fn(e.text)
	e.right.walk(fn)
}

// Ledger is a duplicate-free, lexicographically ordered set of clue
// texts. The zero value is NOT ready to use; construct with New.
//
// Ledger is not safe for concurrent use.
type Ledger struct {
	root *entry
	size int
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// Insert records a clue and reports whether it was new.
// Duplicates and empty texts leave the Ledger unchanged and return false.
// Comparison is byte-wise (strings.Compare), hence case-sensitive.
func (l *Ledger) Insert(text string) bool {
	if text == "" {
		return false
	}
	if l.root == nil {
		l.root = &entry{text: text}
		l.size++
		return true
	}
	cur := l.root
	for {
		switch c := strings.Compare(text, cur.text); {
		case c == 0:
			// already recorded
			return false
		case c < 0:
			if cur.left == nil {
				cur.left = &entry{text: text}
				l.size++
				return true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = &entry{text: text}
				l.size++
				return true
			}
			cur = cur.right
		}
	}
}

// Contains reports whether text has been recorded.
func (l *Ledger) Contains(text string) bool {
	cur := l.root
	for cur != nil {
		switch c := strings.Compare(text, cur.text); {
		case c == 0:
			return true
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return false
}

// Walk calls fn for every recorded clue in lexicographic order.
// A nil fn is a no-op.
func (l *Ledger) Walk(fn func(clue string)) {
	if fn == nil {
		return
	}
	l.root.walk(fn)
}

// InOrder returns all recorded clues in lexicographic order.
// The returned slice is owned by the caller.
func (l *Ledger) InOrder() []string {
	out := make([]string, 0, l.size)
	l.root.walk(func(s string) { out = append(out, s) })

	return out
}

// Len reports the number of distinct clues recorded.
func (l *Ledger) Len() int { return l.size }

// Empty reports whether nothing has been recorded yet.
func (l *Ledger) Empty() bool { return l.size == 0 }
