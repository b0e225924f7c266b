// Package runeset provides an immutable rune set.
package runeset

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an immutable rune set.
type Set struct {
	items map[rune]struct{}
}

// New constructs a new Set. Duplicates are discarded.
func New(items ...rune) *Set {
	s := &Set{items: make(map[rune]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// Contains checks if the given item is in the set.
func (s *Set) Contains(item rune) bool {
	_, ok := s.items[item]
	return ok
}

// Len returns the number of items in the set.
func (s *Set) Len() int {
	return len(s.items)
}

// Items returns the items in the set ascending by code point. It's safe for
// the caller to mutate the returned slice.
func (s *Set) Items() []rune {
	items := make([]rune, 0, len(s.items))
	for item := range s.items {
		items = append(items, item)
	}
	slices.Sort(items)
	return items
}

// String implements Stringer.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteRune('{')
	for i, item := range s.Items() {
		if i > 0 {
			b.WriteRune(',')
			b.WriteRune(' ')
		}
		b.WriteString(strconv.QuoteRune(item))
	}
	b.WriteRune('}')
	return b.String()
}
