// Package surname splits a personal name into surname and given name.
// Two-character compound surnames are recognised via an explicit allow-list;
// everything else is treated as a single-character surname.
package surname

import (
	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
)

// Set is an immutable collection of two-character compound surnames.
type Set struct {
	members map[string]struct{}
}

// NewSet builds a Set from the given surnames.
func NewSet(surnames []string) *Set {
	members := make(map[string]struct{}, len(surnames))
	for _, s := range surnames {
		members[s] = struct{}{}
	}
	return &Set{members: members}
}

// Contains reports whether s is a known compound surname.
func (s *Set) Contains(candidate string) bool {
	_, ok := s.members[candidate]
	return ok
}

// Len returns the number of compound surnames in the set.
func (s *Set) Len() int {
	return len(s.members)
}

// Split divides name into (surname, given name). A two-rune prefix matching
// the set is taken as a compound surname; otherwise the surname is the first
// rune alone. A single-rune name always yields an empty given name. An empty
// name is rejected with ErrEmptyName rather than indexing past the end.
func Split(name string, set *Set) (string, string, error) {
	runes := []rune(name)
	if len(runes) == 0 {
		return "", "", apperrors.ErrEmptyName
	}
	if len(runes) >= 2 {
		prefix := string(runes[:2])
		if set.Contains(prefix) {
			return prefix, string(runes[2:]), nil
		}
	}
	return string(runes[:1]), string(runes[1:]), nil
}
