package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/humanize/internal/batch"
	"github.com/agbru/humanize/internal/parallel"
)

func newTestEngine() *batch.Engine {
	return batch.New(batch.WithMapper(parallel.Sequential{}))
}

func newTestModel(initial string) Model {
	return NewModel(context.Background(), newTestEngine(), Options{Digits: 1}, "dev", initial)
}

// runPreview executes the pending preview of m and feeds the result back.
func runPreview(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.previewCmd()
	if cmd == nil {
		t.Fatal("expected a preview command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestOptionsFromFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format string
		want   int
	}{
		{"%.1f", 1},
		{"%.0f", 0},
		{"", -1},
		{"%d", -1},
		{"about %.3f units", 3},
		{"%.25f", MaxDigits},
	}
	for _, tt := range tests {
		if got := OptionsFromFormat(tt.format, true, false); got.Digits != tt.want || !got.Binary || got.GNU {
			t.Errorf("OptionsFromFormat(%q) = %+v, want Digits %d", tt.format, got, tt.want)
		}
	}
}

func TestOptionsAdjust(t *testing.T) {
	t.Parallel()
	o := Options{Digits: 0}
	if got := o.adjust(-1).Digits; got != -1 {
		t.Errorf("0 - 1 = %d, want natural (-1)", got)
	}
	if got := o.adjust(-1).adjust(-1).Digits; got != -1 {
		t.Errorf("natural should be the lower bound, got %d", got)
	}
	if got := (Options{Digits: MaxDigits}).adjust(1).Digits; got != MaxDigits {
		t.Errorf("upper bound = %d, want %d", got, MaxDigits)
	}
	if got := (Options{Digits: -1}).Precision().String(); got != "natural" {
		t.Errorf("Precision() = %q, want natural", got)
	}
}

func TestComputePreview(t *testing.T) {
	t.Parallel()
	rows, err := computePreview(context.Background(), newTestEngine(), " 1234567  3000 abc ", Options{Digits: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Row{
		{"1234567", "1,234,567.0", "1.2 million", "1.2 MB"},
		{"3000", "3,000.0", "3.0 thousand", "3.0 kB"},
		{"abc", "abc", "abc", "abc"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestComputePreview_Options(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rows, err := computePreview(ctx, newTestEngine(), "3000", Options{Binary: true, Digits: 1})
	if err != nil || rows[0].NaturalSize != "2.9 KiB" {
		t.Errorf("binary: %+v, %v", rows, err)
	}
	rows, err = computePreview(ctx, newTestEngine(), "3000", Options{GNU: true, Digits: 1})
	if err != nil || rows[0].NaturalSize != "2.9K" {
		t.Errorf("gnu: %+v, %v", rows, err)
	}
	rows, err = computePreview(ctx, newTestEngine(), "1234.5", Options{Digits: -1})
	if err != nil || rows[0].IntComma != "1,234.5" {
		t.Errorf("natural: %+v, %v", rows, err)
	}
	rows, err = computePreview(ctx, newTestEngine(), "   ", Options{})
	if err != nil || rows != nil {
		t.Errorf("blank input: %+v, %v", rows, err)
	}
}

func TestModel_TypingSchedulesPreview(t *testing.T) {
	t.Parallel()
	m := newTestModel("")
	if m.previewCmd() != nil {
		t.Error("empty input should not schedule a preview")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3000")})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("typing should return a command")
	}
	if m.input.Value() != "3000" {
		t.Fatalf("input = %q", m.input.Value())
	}
	if m.generation != 1 {
		t.Errorf("generation = %d, want 1", m.generation)
	}

	m = runPreview(t, m)
	if len(m.rows) != 1 || m.rows[0].NaturalSize != "3.0 kB" {
		t.Errorf("rows = %+v", m.rows)
	}
}

func TestModel_Toggles(t *testing.T) {
	t.Parallel()
	m := newTestModel("3000")

	m = press(m, tea.KeyCtrlB)
	if !m.opts.Binary {
		t.Error("ctrl+b should enable binary")
	}
	m = runPreview(t, m)
	if m.rows[0].NaturalSize != "2.9 KiB" {
		t.Errorf("binary preview = %q", m.rows[0].NaturalSize)
	}

	m = press(m, tea.KeyCtrlG)
	if !m.opts.GNU {
		t.Error("ctrl+g should enable gnu")
	}

	m = press(m, tea.KeyUp)
	if m.opts.Digits != 2 {
		t.Errorf("up: Digits = %d, want 2", m.opts.Digits)
	}
	m = press(press(press(m, tea.KeyDown), tea.KeyDown), tea.KeyDown)
	if m.opts.Digits != -1 {
		t.Errorf("down: Digits = %d, want -1", m.opts.Digits)
	}
	if m.generation != 6 {
		t.Errorf("generation = %d, want 6", m.generation)
	}
}

func TestModel_IgnoresStalePreview(t *testing.T) {
	t.Parallel()
	m := newTestModel("1")
	m = press(m, tea.KeyCtrlB)
	next, _ := m.Update(PreviewMsg{Rows: []Row{{Input: "old"}}, Generation: 0})
	if rows := next.(Model).rows; len(rows) != 0 {
		t.Errorf("stale preview applied: %+v", rows)
	}
}

func TestModel_Clear(t *testing.T) {
	t.Parallel()
	m := runPreview(t, newTestModel("1234"))
	if len(m.rows) != 1 {
		t.Fatalf("rows = %+v", m.rows)
	}
	m = press(m, tea.KeyCtrlX)
	if m.input.Value() != "" || m.rows != nil {
		t.Errorf("clear left input %q rows %+v", m.input.Value(), m.rows)
	}
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := newTestModel("").Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%v: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected tea.QuitMsg", k)
		}
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()
	m := newTestModel("1234567 nan")
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = runPreview(t, next.(Model))
	view := m.View()
	for _, want := range []string{"humanize preview", "naturalsize", "1,234,567.0", "1.2 million", "NaN", "binary"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m = press(m, tea.KeyF1)
	if !strings.Contains(m.View(), "clear") {
		t.Error("full help should list the clear binding")
	}
}

func TestModel_ViewError(t *testing.T) {
	t.Parallel()
	m := newTestModel("1")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m = next.(Model)
	next, _ = m.Update(PreviewMsg{Err: context.Canceled})
	if view := next.(Model).View(); !strings.Contains(view, "context canceled") {
		t.Errorf("error not rendered:\n%s", view)
	}
}
