package ledger_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/sleuth/ledger"
)

// TestLedger_Empty verifies zero-state accessors on a fresh Ledger.
func TestLedger_Empty(t *testing.T) {
	led := ledger.New()
	if !led.Empty() {
		t.Error("fresh ledger should be empty")
	}
	if got := led.Len(); got != 0 {
		t.Errorf("Len() = %d; want 0", got)
	}
	if got := led.InOrder(); len(got) != 0 {
		t.Errorf("InOrder() = %v; want empty", got)
	}
	if led.Contains("Pegadas lamacentas") {
		t.Error("empty ledger must not contain anything")
	}
}

// TestLedger_InsertReportsNew checks the new-vs-duplicate return value.
func TestLedger_InsertReportsNew(t *testing.T) {
	led := ledger.New()
	if !led.Insert("Retrato rasgado") {
		t.Error("first insert should report new")
	}
	if led.Insert("Retrato rasgado") {
		t.Error("duplicate insert should report false")
	}
	if got := led.Len(); got != 1 {
		t.Errorf("Len() = %d; want 1 after duplicate", got)
	}
}

// TestLedger_IgnoresEmptyText ensures "" never enters the tree.
func TestLedger_IgnoresEmptyText(t *testing.T) {
	led := ledger.New()
	if led.Insert("") {
		t.Error("empty text should not be inserted")
	}
	if !led.Empty() {
		t.Error("ledger should stay empty after Insert(\"\")")
	}
}

// TestLedger_InOrderSorted verifies lexicographic replay regardless of
// collection order.
func TestLedger_InOrderSorted(t *testing.T) {
	clues := []string{
		"Pegadas lamacentas",
		"Retrato rasgado",
		"Livro raro aberto",
		"Caneta de tinteiro",
		"Conta de vinho",
		"Mapa do porão",
	}
	led := ledger.New()
	for _, c := range clues {
		led.Insert(c)
	}

	want := append([]string(nil), clues...)
	sort.Strings(want)
	if got := led.InOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("InOrder() = %v; want %v", got, want)
	}
}

// TestLedger_CaseSensitive checks that byte-wise comparison keeps
// differently-cased texts as distinct clues.
func TestLedger_CaseSensitive(t *testing.T) {
	led := ledger.New()
	led.Insert("Pegadas")
	led.Insert("pegadas")
	if got := led.Len(); got != 2 {
		t.Errorf("Len() = %d; want 2 distinct entries", got)
	}
	if !led.Contains("Pegadas") || !led.Contains("pegadas") {
		t.Error("both casings must be present")
	}
}

// TestLedger_WalkMatchesInOrder ensures Walk and InOrder agree, and that
// a nil callback is harmless.
func TestLedger_WalkMatchesInOrder(t *testing.T) {
	led := ledger.New()
	for _, c := range []string{"c", "a", "b"} {
		led.Insert(c)
	}

	var walked []string
	led.Walk(func(clue string) { walked = append(walked, clue) })
	if want := led.InOrder(); !reflect.DeepEqual(walked, want) {
		t.Errorf("Walk order = %v; want %v", walked, want)
	}

	led.Walk(nil) // must not panic
}

// TestLedger_RandomizedAgainstSort cross-checks the tree against
// sort.Strings on shuffled input with duplicates.
func TestLedger_RandomizedAgainstSort(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	led := ledger.New()
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		c := fmt.Sprintf("clue-%02d", rnd.Intn(60))
		led.Insert(c)
		seen[c] = true
	}

	want := make([]string, 0, len(seen))
	for c := range seen {
		want = append(want, c)
	}
	sort.Strings(want)

	if got := led.Len(); got != len(want) {
		t.Fatalf("Len() = %d; want %d", got, len(want))
	}
	if got := led.InOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("InOrder() diverged from sorted set")
	}
	for _, c := range want {
		if !led.Contains(c) {
			t.Errorf("Contains(%q) = false; want true", c)
		}
	}
}
