// Package codetable holds the immutable character-to-code lookup used as the
// primary sort key. Each character carries an external ordering code; codes
// are compared first by length, then lexicographically. Characters absent
// from the table fall back to a sentinel default code.
package codetable

// DefaultCode is the sentinel ordering code substituted for any character
// absent from the table. It participates in comparisons identically to a
// real code.
const DefaultCode = "66666"

// Record is the raw external shape of one code-table entry.
type Record struct {
	Word  string `json:"word"`
	Order string `json:"order"`
}

// Table maps a single character to its ordering code. It is built once and
// never mutated afterwards, so it is safe to share across concurrent
// comparisons.
type Table struct {
	codes       map[string]string
	defaultCode string
}

// Build constructs a Table from raw records. Duplicate words are
// last-write-wins; records whose word is not a single character are stored
// as-is and simply never match a single-rune lookup. An empty defaultCode
// selects DefaultCode.
func Build(records []Record, defaultCode string) *Table {
	if defaultCode == "" {
		defaultCode = DefaultCode
	}
	codes := make(map[string]string, len(records))
	for _, rec := range records {
		codes[rec.Word] = rec.Order
	}
	return &Table{codes: codes, defaultCode: defaultCode}
}

// Lookup returns the ordering code for r, or the default code when r has no
// entry.
func (t *Table) Lookup(r rune) string {
	if code, ok := t.codes[string(r)]; ok {
		return code
	}
	return t.defaultCode
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.codes)
}
