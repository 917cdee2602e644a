package humanize

import (
	"regexp"
	"strconv"
)

// DefaultFormat is the precision directive used by IntWord and NaturalSize
// when the caller does not choose one.
const DefaultFormat = "%.1f"

var formatSpecRe = regexp.MustCompile(`%\.(\d+)f`)

// Precision is an optional fractional-digit count. The zero value means
// natural precision: the shortest decimal that round-trips, with no
// truncation.
type Precision struct {
	digits int
	set    bool
}

// Natural is the Precision with no directive.
var Natural = Precision{}

// Digits returns a Precision rendering exactly n fractional digits.
// Negative n is treated as zero.
func Digits(n int) Precision {
	if n < 0 {
		n = 0
	}
	return Precision{digits: n, set: true}
}

// ParseFormatSpec extracts the first "%.<N>f" directive from spec. Any other
// spec yields Natural.
func ParseFormatSpec(spec string) Precision {
	m := formatSpecRe.FindStringSubmatch(spec)
	if m == nil {
		return Natural
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Natural
	}
	return Digits(n)
}

// Digits reports the fractional-digit count and whether one is set.
func (p Precision) Digits() (int, bool) {
	return p.digits, p.set
}

// Render formats a finite f. With a directive the value is correctly rounded
// (ties to even) to exactly that many fractional digits, trailing zeros
// included. Without one it uses the shortest round-trippable decimal and
// never an exponent.
func (p Precision) Render(f float64) string {
	if p.set {
		return strconv.FormatFloat(f, 'f', p.digits, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// String returns the printf-style directive, or "natural".
func (p Precision) String() string {
	if !p.set {
		return "natural"
	}
	return "%." + strconv.Itoa(p.digits) + "f"
}
