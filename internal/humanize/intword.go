package humanize

import (
	"math"
	"strconv"
)

// IntWord scales a number down by the largest power of 1000 it reaches and
// names the power: 1_200_000_000 becomes "1.2 billion".
type IntWord struct {
	Precision Precision
}

var _ Formatter = IntWord{}

// NewIntWord returns an IntWord using the printf-style directive format.
func NewIntWord(format string) IntWord {
	return IntWord{Precision: ParseFormatSpec(format)}
}

// Name implements Formatter.
func (IntWord) Name() string { return NameIntWord }

// Format implements Formatter.
func (f IntWord) Format(v Value) string {
	num, rendered, ok := finite(v)
	if !ok {
		return rendered
	}
	sign := ""
	if num < 0 {
		sign, num = "-", -num
	}
	text, bucket := f.scale(num)
	if bucket < 0 || bucket >= len(scaleWords) {
		return sign + text
	}
	return sign + text + " " + scaleWords[bucket]
}

// scale renders a non-negative magnitude and returns the index of the scale
// word it belongs to. Below 1000 the bucket is -1 and the text is a plain
// grouped integer; at or past the last threshold the bucket is
// len(scaleWords) and the text is the raw magnitude.
func (f IntWord) scale(num float64) (string, int) {
	if num < scalePowers[0] {
		return GroupDigits(strconv.FormatFloat(math.Trunc(num), 'f', -1, 64)), -1
	}
	for i := 1; i < len(scalePowers); i++ {
		if num >= scalePowers[i] {
			continue
		}
		chopped := f.Precision.Render(num / scalePowers[i-1])
		// Rounding may carry the value up to the next threshold, e.g.
		// "1000.0 thousand"; report it in the next bucket instead.
		ratio := scalePowers[i] / scalePowers[i-1]
		if back, err := strconv.ParseFloat(chopped, 64); err == nil && back == ratio {
			return f.Precision.Render(num / scalePowers[i]), i
		}
		return chopped, i - 1
	}
	return Natural.Render(num), len(scaleWords)
}
