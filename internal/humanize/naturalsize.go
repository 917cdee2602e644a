package humanize

import (
	"math"
	"strconv"
)

// NaturalSize renders a byte count with a unit suffix. The decimal scheme
// uses powers of 1000 ("3.0 kB"), Binary uses powers of 1024 ("2.9 KiB") and
// GNU uses powers of 1024 with a single letter ("2.9K"). GNU wins when both
// flags are set.
//
// Unlike IntWord there is no promotion when rounding reaches the next unit:
// 1048575 bytes in binary at "%.0f" renders "1024 KiB", not "1 MiB".
type NaturalSize struct {
	Binary    bool
	GNU       bool
	Precision Precision
}

var _ Formatter = NaturalSize{}

// NewNaturalSize returns a NaturalSize using the printf-style directive
// format.
func NewNaturalSize(binary, gnu bool, format string) NaturalSize {
	return NaturalSize{Binary: binary, GNU: gnu, Precision: ParseFormatSpec(format)}
}

// Name implements Formatter.
func (NaturalSize) Name() string { return NameNaturalSize }

func (f NaturalSize) base() float64 {
	if f.GNU || f.Binary {
		return 1024
	}
	return 1000
}

// Format implements Formatter.
func (f NaturalSize) Format(v Value) string {
	bytes, rendered, ok := finite(v)
	if !ok {
		return rendered
	}

	base := f.base()
	abs := math.Abs(bytes)

	if abs == 1 && !f.GNU {
		return strconv.FormatInt(int64(bytes), 10) + " Byte"
	}
	if abs < base {
		if f.GNU {
			return strconv.FormatInt(int64(bytes), 10) + "B"
		}
		return strconv.FormatInt(int64(bytes), 10) + " Bytes"
	}

	exp := f.exponent(abs)
	scaled := f.Precision.Render(bytes / math.Pow(base, float64(exp)))
	switch {
	case f.GNU:
		return scaled + string(gnuLetters[exp-1])
	case f.Binary:
		return scaled + binarySuffixes[exp-1]
	default:
		return scaled + decimalSuffixes[exp-1]
	}
}

// exponent picks the unit index for abs >= base, clamped to [1, table size].
func (f NaturalSize) exponent(abs float64) int {
	exp := math.Floor(math.Log(abs) / math.Log(f.base()))
	switch {
	case exp < 1:
		return 1
	case exp > float64(len(decimalSuffixes)):
		return len(decimalSuffixes)
	}
	return int(exp)
}
