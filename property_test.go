package charclass_test

import (
	"math/rand/v2"
	"regexp"
	"slices"
	"testing"

	"github.com/antithesishq/charclass"
	"github.com/antithesishq/charclass/internal/classtest"
	"go.akshayshah.org/attest"
	"pgregory.net/rapid"
)

func TestOrderIndependence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chars := rapid.SliceOf(rapid.Rune()).Draw(t, "chars")
		inverse := rapid.Bool().Draw(t, "inverse")

		want, err := charclass.Build(chars, inverse)
		attest.Ok(t, err)

		shuffled := slices.Clone(chars)
		r := rand.New(rand.NewPCG(rapid.Uint64().Draw(t, "seed"), 0))
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		got, err := charclass.Build(shuffled, inverse)
		attest.Ok(t, err)
		attest.Equal(t, got, want)
	})
}

func TestDuplicatesIgnored(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chars := rapid.SliceOfN(rapid.Rune(), 1, -1).Draw(t, "chars")
		inverse := rapid.Bool().Draw(t, "inverse")
		extra := rapid.SliceOf(rapid.SampledFrom(chars)).Draw(t, "extra")

		want, err := charclass.Build(chars, inverse)
		attest.Ok(t, err)
		got, err := charclass.Build(append(slices.Clone(chars), extra...), inverse)
		attest.Ok(t, err)
		attest.Equal(t, got, want)
	})
}

func TestPatternsCompile(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chars := rapid.SliceOf(rapid.Rune()).Draw(t, "chars")
		inverse := rapid.Bool().Draw(t, "inverse")

		pattern, err := charclass.Build(chars, inverse)
		attest.Ok(t, err)
		_, err = regexp.Compile("^(?:" + pattern + ")$")
		attest.Ok(t, err, attest.Sprintf("pattern %q", pattern))
	})
}

func TestMembershipEquivalence(t *testing.T) {
	// This is a property-based test. Rather than testing with hard-coded
	// example inputs, we generate random charsets and check each generated
	// pattern against an independent model: the standard regexp engine,
	// probing one character at a time. It's less legible than TestBuild, but
	// far more thorough.
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	for range 2000 {
		chars := classtest.GenCharset(r)
		for _, inverse := range []bool{false, true} {
			err := classtest.Verify(chars, inverse)
			attest.Ok(t, err, attest.Sprintf("charset %q inverse %v", string(chars), inverse))
		}
	}
}
