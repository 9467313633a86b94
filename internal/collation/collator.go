// Package collation implements the stroke-order name comparator and the
// stable sort driver built on top of it.
//
// Names are ranked surname-first: each name is split into surname and given
// name, surnames are compared character by character against the code table,
// and the given names decide ties. Per character, the shorter ordering code
// always sorts before the longer one; equal-length codes are compared
// lexicographically. When every compared character ties, the shorter
// character sequence sorts first.
package collation

import (
	"sort"

	"github.com/muyun-chen/stroke-sort/internal/collation/codetable"
	"github.com/muyun-chen/stroke-sort/internal/collation/surname"
	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

// Collator orders names against an immutable code table and compound surname
// set. It holds no mutable state, so a single Collator is safe for use from
// multiple goroutines.
type Collator struct {
	table    *codetable.Table
	surnames *surname.Set
}

// New creates a Collator over the given table and compound surname set.
func New(table *codetable.Table, surnames *surname.Set) *Collator {
	return &Collator{table: table, surnames: surnames}
}

// CompareNames returns a negative value when a orders before b, a positive
// value when b orders before a, and zero when the comparator considers them
// equal. Surnames are compared first; the given-name comparison is final when
// surnames tie. Both names must be non-empty.
func (c *Collator) CompareNames(a, b string) int {
	surA, givenA := c.split(a)
	surB, givenB := c.split(b)
	if ord := c.compareChars(surA, surB); ord != 0 {
		return ord
	}
	return c.compareChars(givenA, givenB)
}

// CompareChars orders two raw character sequences by their ordering codes,
// without surname segmentation. It is the comparison primitive underlying
// CompareNames.
func (c *Collator) CompareChars(a, b string) int {
	return c.compareChars([]rune(a), []rune(b))
}

// Sort validates, reverses, and stably sorts names in place. The reversal
// before the stable sort means that among names the comparator ranks as
// equal, the later-listed name ends up earlier in the result. Any empty name
// aborts the sort with ErrEmptyName before names is touched.
func (c *Collator) Sort(names []string) error {
	for i, name := range names {
		if len([]rune(name)) == 0 {
			return apperrors.Newf(apperrors.ErrEmptyName, 400, "name at index %d is empty", i)
		}
	}
	reverse(names)
	sort.SliceStable(names, func(i, j int) bool {
		return c.CompareNames(names[i], names[j]) < 0
	})
	return nil
}

// Split exposes the surname segmentation for callers outside the comparator.
func (c *Collator) Split(name string) (string, string, error) {
	return surname.Split(name, c.surnames)
}

// split is the non-failing segmentation used inside comparisons. Sort rejects
// empty names up front; should one slip through, it compares as an empty
// surname and given name rather than failing.
func (c *Collator) split(name string) ([]rune, []rune) {
	sur, given, err := surname.Split(name, c.surnames)
	if err != nil {
		return nil, nil
	}
	return []rune(sur), []rune(given)
}

// compareChars walks both sequences up to the shorter length. Per position
// it compares ordering codes by length, then lexicographically, returning on
// the first inequality. A full tie falls back to the sequence lengths.
func (c *Collator) compareChars(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		codeA := c.table.Lookup(a[i])
		codeB := c.table.Lookup(b[i])
		if len(codeA) != len(codeB) {
			return len(codeA) - len(codeB)
		}
		if codeA != codeB {
			if codeA < codeB {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

func reverse(names []string) {
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
}
