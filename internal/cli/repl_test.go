package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/parallel"
	"github.com/agbru/humanize/internal/ui"
)

func runREPL(t *testing.T, script string) string {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })

	r := NewREPL(batch.New(batch.WithMapper(parallel.Sequential{})), REPLConfig{NDigits: -1})
	var out bytes.Buffer
	r.SetInput(strings.NewReader(script))
	r.SetOutput(&out)
	r.Start()
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		contains []string
	}{
		{"intcomma", "comma 1234567\nexit\n", []string{"1,234,567", "Goodbye!"}},
		{"intcomma list", "intcomma 1234567 -inf nan\n", []string{"1,234,567, -Inf, NaN"}},
		{"ndigits", "ndigits 2\ncomma 12345.6789\n", []string{"intcomma precision: 2", "12,345.68"}},
		{"ndigits off", "ndigits 2\nndigits off\ncomma 1.5\n", []string{"natural", "1.5"}},
		{"bad ndigits", "ndigits -1\n", []string{"Invalid digit count: -1"}},
		{"intword", "word 1200000000\n", []string{"1.2 billion"}},
		{"format", "format %.2f\nword 12400\n", []string{"precision: %.2f", "12.40 thousand"}},
		{"naturalsize gnu", "gnu\nsize 3000\n", []string{"GNU suffixes: on", "2.9K"}},
		{"theme", "theme NONE\ntheme\n", []string{"theme: none", "Usage: theme"}},
		{"naturalsize binary", "binary\nsize 3000\n", []string{"Binary units: on", "2.9 KiB"}},
		{"bare value shows all", "3000\n", []string{"3,000", "3.0 thousand", "3.0 kB"}},
		{"usage", "intword\n", []string{"Usage: intword <value> ..."}},
		{"status", "status\n", []string{"ndigits: natural", "format:  %.1f"}},
		{"eof without newline", "comma 1000", []string{"1,000", "Goodbye!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runREPL(t, tt.script)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}
