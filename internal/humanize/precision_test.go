package humanize

import "testing"

func TestParseFormatSpec(t *testing.T) {
	t.Parallel()
	tests := []struct {
		spec   string
		digits int
		set    bool
	}{
		{"%.1f", 1, true},
		{"%.3f", 3, true},
		{"%.10f", 10, true},
		{"value: %.2f units", 2, true},
		{"%0.3f", 0, false},
		{"%d", 0, false},
		{"%.f", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()
			digits, set := ParseFormatSpec(tt.spec).Digits()
			if digits != tt.digits || set != tt.set {
				t.Errorf("ParseFormatSpec(%q) = (%d, %v), want (%d, %v)", tt.spec, digits, set, tt.digits, tt.set)
			}
		})
	}
}

func TestPrecisionRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		p    Precision
		in   float64
		want string
	}{
		{"two digits", Digits(2), 12345.6789, "12345.68"},
		{"trailing zeros kept", Digits(3), 1, "1.000"},
		{"zero digits ties to even", Digits(0), 2.5, "2"},
		{"binary tie rounds to even", Digits(1), 0.25, "0.2"},
		{"negative digits clamp to zero", Digits(-4), 7.6, "8"},
		{"natural integer", Natural, 1234567, "1234567"},
		{"natural fraction", Natural, 0.1, "0.1"},
		{"natural never uses exponent", Natural, 1e21, "1000000000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.Render(tt.in); got != tt.want {
				t.Errorf("%v.Render(%v) = %q, want %q", tt.p, tt.in, got, tt.want)
			}
		})
	}
}

func TestPrecisionString(t *testing.T) {
	t.Parallel()
	if got := Digits(2).String(); got != "%.2f" {
		t.Errorf("Digits(2).String() = %q", got)
	}
	if got := Natural.String(); got != "natural" {
		t.Errorf("Natural.String() = %q", got)
	}
}
