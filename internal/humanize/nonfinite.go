package humanize

import "math"

// ExplicitPlusInf selects the rendering of positive infinity. All formatters
// share this single rule: "+Inf", "-Inf" and "NaN".
const ExplicitPlusInf = true

// FormatNonFinite renders NaN and the infinities. Finite input is not
// expected here; it is rendered with natural precision.
func FormatNonFinite(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, -1):
		return "-Inf"
	case math.IsInf(f, 1):
		if ExplicitPlusInf {
			return "+Inf"
		}
		return "Inf"
	}
	return Natural.Render(f)
}

// finite extracts a finite number from v. When v is not a finite number the
// returned string is its final rendering and ok is false.
func finite(v Value) (f float64, rendered string, ok bool) {
	switch v.kind {
	case KindSpecial:
		return 0, v.special.String(), false
	case KindOpaque:
		if sp, isSpecial := ParseSpecial(v.text); isSpecial {
			return 0, sp.String(), false
		}
		return 0, v.text, false
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return 0, FormatNonFinite(v.num), false
	}
	return v.num, "", true
}
