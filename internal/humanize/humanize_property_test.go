package humanize

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestGroupDigits_RoundTrip_PropertyBased verifies that removing the
// separators inserted by GroupDigits reproduces the input, and that
// separators sit exactly every third digit from the right.
func TestGroupDigits_RoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("separators removed reproduce the digits", prop.ForAll(
		func(n uint64) bool {
			s := strconv.FormatUint(n, 10)
			return strings.ReplaceAll(GroupDigits(s), ",", "") == s
		},
		gen.UInt64(),
	))

	properties.Property("groups are three digits except a shorter leading group", prop.ForAll(
		func(n uint64) bool {
			groups := strings.Split(GroupDigits(strconv.FormatUint(n, 10)), ",")
			if len(groups[0]) < 1 || len(groups[0]) > 3 {
				return false
			}
			for _, g := range groups[1:] {
				if len(g) != 3 {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestIntWord_Monotonic_PropertyBased verifies that a larger magnitude never
// selects a smaller scale word, and that the rendered number stays within
// [1, 1000) of its bucket.
func TestIntWord_Monotonic_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)
	f := NewIntWord(DefaultFormat)

	properties.Property("bucket index is monotonic in magnitude", prop.ForAll(
		func(a, b float64) bool {
			if a > b {
				a, b = b, a
			}
			_, ba := f.scale(a)
			_, bb := f.scale(b)
			return ba <= bb
		},
		gen.Float64Range(0, 1e36),
		gen.Float64Range(0, 1e36),
	))

	properties.Property("scaled value lies in [1, 1000)", prop.ForAll(
		func(x float64) bool {
			text, bucket := f.scale(x)
			if bucket < 0 || bucket >= len(scaleWords) {
				return true
			}
			v, err := strconv.ParseFloat(text, 64)
			return err == nil && v >= 1 && v < 1000
		},
		gen.Float64Range(1000, 1e33),
	))

	properties.TestingRun(t)
}

// TestIntComma_Sign_PropertyBased verifies that negation only adds a
// leading minus sign.
func TestIntComma_Sign_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	f := IntComma{Precision: Digits(0)}

	properties.Property("intcomma(-x) == \"-\" + intcomma(x)", prop.ForAll(
		func(n int64) bool {
			if n <= 0 {
				return true
			}
			return f.Format(FromNumber(-n)) == "-"+f.Format(FromNumber(n))
		},
		gen.Int64Range(1, 1<<52),
	))

	properties.TestingRun(t)
}
