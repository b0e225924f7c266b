package classes

import (
	"testing"

	"go.akshayshah.org/attest"
)

func TestLookup(t *testing.T) {
	digits, err := Lookup("digit")
	attest.Ok(t, err)
	attest.Equal(t, string(digits), "0123456789")

	// Lookup is case-insensitive.
	upper, err := Lookup("UPPER")
	attest.Ok(t, err)
	attest.Equal(t, string(upper), "ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	_, err = Lookup("bogus")
	attest.Error(t, err)
}

func TestNamesAreResolvable(t *testing.T) {
	names := Names()
	attest.Equal(t, len(names), len(byName))
	for _, name := range names {
		class, err := Lookup(name)
		attest.Ok(t, err, attest.Sprintf("class %q", name))
		attest.True(t, len(class) > 0)
	}
}

func TestSizes(t *testing.T) {
	attest.Equal(t, len(Letters()), 52)
	attest.Equal(t, len(Alnum()), 62)
	attest.Equal(t, len(Whitespace()), 6)
	attest.Equal(t, len(Punct()), 32) // '!'..'~' is 94 characters, 62 of them alnum
}
