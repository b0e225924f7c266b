// Package classtest provides utilities for randomized verification of
// generated character-class patterns.
//
// The core property is membership equivalence: a pattern built from a set
// must, when compiled by the standard regexp package, match exactly the
// single characters that are members of the set (or, inverted, exactly the
// non-members). Rather than hard-coding examples, callers generate random
// charsets with GenCharset and check them with Verify.
package classtest

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/antithesishq/charclass"
	"github.com/antithesishq/charclass/internal/classes"
	"github.com/antithesishq/charclass/internal/runeset"
)

// Mismatch is returned from Verify when a compiled pattern disagrees with
// set membership for some probe character.
type Mismatch struct {
	Pattern string
	Probe   rune
	Inverse bool
	Want    bool
}

// Error implements error.
func (m *Mismatch) Error() string {
	return fmt.Sprintf("pattern %q (inverse=%v): probe %s: match=%v, want %v",
		m.Pattern, m.Inverse, strconv.QuoteRune(m.Probe), !m.Want, m.Want)
}

// GenCharset generates a random charset. To exercise the interesting paths
// it mixes contiguous slices of the named ASCII classes (which must collapse
// into ranges), the bracket-special characters, scattered printable ASCII,
// the occasional non-ASCII rune, and deliberate duplicates.
func GenCharset(r *rand.Rand) []rune {
	picks := r.IntN(48) // 0 picks gives the empty set
	chars := make([]rune, 0, picks*4)
	specials := []rune{']', '^', '-'}
	for range picks {
		switch r.IntN(5) {
		case 0:
			chars = append(chars, window(r, pickClass(r))...)
		case 1:
			chars = append(chars, specials[r.IntN(len(specials))])
		case 2:
			chars = append(chars, rune(' '+r.IntN(95))) // printable ASCII, '\\' included
		case 3:
			chars = append(chars, rune(0x80+r.IntN(0x2000)))
		case 4:
			if len(chars) > 0 {
				chars = append(chars, chars[r.IntN(len(chars))])
			}
		}
	}
	return chars
}

// Verify builds the pattern for chars, compiles it, and probes membership:
// every member, each member's immediate neighbors, and a fixed spread of
// tricky characters. The pattern and the set must agree on every probe.
func Verify(chars []rune, inverse bool) error {
	pattern, err := charclass.Build(chars, inverse)
	if err != nil {
		return err
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return fmt.Errorf("compile %q: %v", pattern, err)
	}

	set := runeset.New(chars...)
	probes := set.Items()
	for _, m := range set.Items() {
		probes = append(probes, m-1, m+1)
	}
	probes = append(probes, 'a', 'Z', '0', ' ', '\n', ']', '^', '-', '\\', '世')

	for _, p := range probes {
		if !utf8.ValidRune(p) {
			continue
		}
		want := set.Contains(p) != inverse
		if got := re.MatchString(string(p)); got != want {
			return &Mismatch{Pattern: pattern, Probe: p, Inverse: inverse, Want: want}
		}
	}
	return nil
}

func pickClass(r *rand.Rand) []rune {
	names := classes.Names()
	class, err := classes.Lookup(names[r.IntN(len(names))])
	if err != nil {
		panic(err) // Names and Lookup disagree
	}
	return class
}

// window returns a random contiguous slice of class.
func window(r *rand.Rand, class []rune) []rune {
	lo := r.IntN(len(class))
	hi := lo + r.IntN(len(class)-lo) + 1
	return class[lo:hi]
}
