// Package charclass builds compact regular-expression fragments that match
// exactly one character from a set of characters, or (inverted) exactly one
// character outside the set.
//
// The emitted fragment is plain RE2 syntax, suitable for embedding into a
// larger pattern compiled with the standard regexp package. Duplicate input
// characters are discarded, runs of three or more consecutive code points
// collapse into lo-hi ranges, and the bracket-special characters ']', '^',
// and '-' are placed (and escaped where needed) so they read as literals.
package charclass

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/antithesishq/charclass/internal/runeset"
)

// ErrInvalidChar is returned when a non-inverted set reduces to a single
// element that is not a valid character. Larger sets are not validated
// element by element; invalid members pass through as the replacement
// character.
var ErrInvalidChar = errors.New("invalid character")

// AnyChar is the fragment emitted for an inverted empty set. It matches any
// single character, including a line terminator.
const AnyChar = `(?:.|\n)`

// Build returns the most compact fragment matching exactly one character
// from chars. With inverse set, the fragment instead matches exactly one
// character NOT in chars.
//
// The output is deterministic: it does not depend on the order of chars or
// on repeated members. An empty set yields the empty fragment, or AnyChar
// when inverted.
func Build(chars []rune, inverse bool) (string, error) {
	var hasClose, hasCaret, hasDash bool
	rest := make([]rune, 0, len(chars))
	for _, r := range chars {
		switch r {
		case ']':
			hasClose = true
		case '^':
			hasCaret = true
		case '-':
			hasDash = true
		default:
			rest = append(rest, r)
		}
	}
	members := runeset.New(rest...).Items()

	size := len(members)
	for _, present := range []bool{hasClose, hasCaret, hasDash} {
		if present {
			size++
		}
	}

	if size == 0 {
		if inverse {
			return AnyChar, nil
		}
		return "", nil
	}

	// A lone character needs no brackets, just escaping. Inverted sets skip
	// this path: the negation marker only exists inside brackets.
	if !inverse && size == 1 {
		r := lone(members, hasClose, hasCaret, hasDash)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %d", ErrInvalidChar, r)
		}
		return regexp.QuoteMeta(string(r)), nil
	}

	var b strings.Builder
	b.WriteByte('[')
	if inverse {
		b.WriteByte('^')
	}
	// RE2 has no "literal ] in first position" rule, so the close bracket is
	// escaped. It still leads, ahead of any ranges.
	if hasClose {
		b.WriteString(`\]`)
	}
	writeTokens(&b, members)
	// A trailing caret can't be misread as negation, and a trailing dash
	// can't be misread as a range. The one exception: a caret with nothing
	// in front of it sits in the negation slot, so it gets an escape.
	if hasCaret {
		if !inverse && !hasClose && len(members) == 0 {
			b.WriteByte('\\')
		}
		b.WriteByte('^')
	}
	if hasDash {
		b.WriteByte('-')
	}
	b.WriteByte(']')
	return b.String(), nil
}

// BuildString is Build on the characters of s.
func BuildString(s string, inverse bool) (string, error) {
	return Build([]rune(s), inverse)
}

// BuildChar is Build on a one-character set.
func BuildChar(r rune, inverse bool) (string, error) {
	return Build([]rune{r}, inverse)
}

// lone returns the single member of a size-1 set.
func lone(members []rune, hasClose, hasCaret, hasDash bool) rune {
	switch {
	case hasClose:
		return ']'
	case hasCaret:
		return '^'
	case hasDash:
		return '-'
	}
	return members[0]
}

// writeTokens emits the sorted members as literals and lo-hi ranges. A run
// of consecutive code points collapses only at three or more characters:
// "a-b" is no shorter than "ab", and a one-character range is pointless.
func writeTokens(b *strings.Builder, members []rune) {
	i := 0
	for i < len(members) {
		j := i + 1
		for j < len(members) && members[j] == members[j-1]+1 {
			j++
		}
		if j-i >= 3 {
			writeMember(b, members[i])
			b.WriteByte('-')
			writeMember(b, members[j-1])
		} else {
			for k := i; k < j; k++ {
				writeMember(b, members[k])
			}
		}
		i = j
	}
}

// writeMember writes one member character. RE2 treats a backslash as an
// escape lead even inside brackets, so it is the one general member that
// needs escaping here.
func writeMember(b *strings.Builder, r rune) {
	if r == '\\' {
		b.WriteString(`\\`)
		return
	}
	b.WriteRune(r)
}
