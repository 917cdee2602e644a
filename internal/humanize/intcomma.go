package humanize

// IntComma groups the whole part of a number with commas, optionally after
// rounding to a fixed number of fractional digits.
//
//	IntComma{}.Format(ClassifyText("1234567"))             // "1,234,567"
//	IntComma{Digits(2)}.Format(Numeric(12345.6789))        // "12,345.68"
type IntComma struct {
	Precision Precision
}

var _ Formatter = IntComma{}

// Name implements Formatter.
func (IntComma) Name() string { return NameIntComma }

// Format implements Formatter.
func (f IntComma) Format(v Value) string {
	num, rendered, ok := finite(v)
	if !ok {
		return rendered
	}
	return groupDecimal(f.Precision.Render(num))
}
