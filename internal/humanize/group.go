package humanize

import "strings"

// GroupSeparator is inserted between digit groups.
const GroupSeparator = ','

// GroupDigits inserts GroupSeparator every three digits of an unsigned digit
// string, counting from the least significant digit. It is purely textual
// and does not look at signs.
func GroupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	lead := n % 3
	if lead == 0 {
		lead = 3
	}

	var b strings.Builder
	b.Grow(n + (n-1)/3)
	b.WriteString(digits[:lead])
	for i := lead; i < n; i += 3 {
		b.WriteByte(GroupSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// groupDecimal groups the whole part of a rendered decimal, keeping a single
// leading '-' and any fractional part untouched.
func groupDecimal(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")
	out := sign + GroupDigits(whole)
	if hasFrac {
		out += "." + frac
	}
	return out
}
