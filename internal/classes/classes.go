// Package classes provides named ASCII character classes.
package classes

import (
	"fmt"
	"strings"
	"unicode"
)

// Digits returns ASCII digits 0-9.
func Digits() []rune {
	return span('0', '9')
}

// Lower returns ASCII letters a-z.
func Lower() []rune {
	return span('a', 'z')
}

// Upper returns ASCII letters A-Z.
func Upper() []rune {
	return span('A', 'Z')
}

// Letters returns ASCII letters a-zA-Z.
func Letters() []rune {
	return append(Lower(), Upper()...)
}

// Alnum returns ASCII letters and digits.
func Alnum() []rune {
	return append(Letters(), Digits()...)
}

// Whitespace returns the ASCII whitespace characters.
func Whitespace() []rune {
	return []rune{' ', '\t', '\r', '\n', '\f', '\v'}
}

// Punct returns the printable ASCII punctuation characters.
func Punct() []rune {
	out := make([]rune, 0, 32)
	for r := rune('!'); r <= '~'; r++ {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

var byName = map[string]func() []rune{
	"digit":  Digits,
	"lower":  Lower,
	"upper":  Upper,
	"letter": Letters,
	"alnum":  Alnum,
	"space":  Whitespace,
	"punct":  Punct,
}

// Names returns the recognized class names, sorted.
func Names() []string {
	return []string{"alnum", "digit", "letter", "lower", "punct", "space", "upper"}
}

// Lookup returns the characters of the named class.
func Lookup(name string) ([]rune, error) {
	f, ok := byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown class %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return f(), nil
}

func span(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}
