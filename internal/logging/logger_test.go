package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldConstructors(t *testing.T) {
	t.Parallel()
	cause := errors.New("sequence ended early")
	tests := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("formatter", "intword"), "formatter", "intword"},
		{"Int", Int("items", 3), "items", 3},
		{"Uint64", Uint64("bytes", 1<<40), "bytes", uint64(1 << 40)},
		{"Float64", Float64("value", 1.5e9), "value", 1.5e9},
		{"Duration", Duration("elapsed", time.Second), "elapsed", time.Second},
		{"Err", Err(cause), "error", cause},
		{"Err nil", Err(nil), "error", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.key {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.key)
			}
			if tt.field.Value != tt.value {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.value)
			}
		})
	}
}

func TestNewLoggerTagsComponent(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "batch")
	logger.Info("formatted batch", Int("items", 4))

	out := buf.String()
	for _, want := range []string{`"component":"batch"`, "formatted batch", `"items":4`, `"level":"info"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

func TestZerologAdapterLevels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("iteration failed", errors.New("bad index"), Int("index", 2)) },
			contains: []string{`"level":"error"`, "iteration failed", "bad index", `"index":2`},
		},
		{
			name:     "error without cause",
			log:      func(l Logger) { l.Error("request rejected", nil) },
			contains: []string{`"level":"error"`, "request rejected"},
		},
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("classified", String("kind", "special")) },
			contains: []string{`"level":"debug"`, "classified", "special"},
		},
		{
			name:     "printf",
			log:      func(l Logger) { l.Printf("listening on %s", ":8080") },
			contains: []string{"listening on :8080"},
		},
		{
			name:     "println",
			log:      func(l Logger) { l.Println("shutdown", "complete") },
			contains: []string{"shutdown complete"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel)))
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q: %s", want, out)
				}
			}
		})
	}
}

func TestZerologAdapterFieldTypes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		field    Field
		contains string
	}{
		{Field{Key: "s", Value: "KiB"}, `"s":"KiB"`},
		{Field{Key: "i64", Value: int64(-9223372036854775808)}, "-9223372036854775808"},
		{Field{Key: "u64", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{Field{Key: "f", Value: 0.5}, `"f":0.5`},
		{Field{Key: "b", Value: true}, `"b":true`},
		{Field{Key: "d", Value: 1500 * time.Millisecond}, `"d":1500`},
		{Field{Key: "cause", Value: errors.New("oops")}, `"cause":"oops"`},
		{Field{Key: "obj", Value: struct{ Digits int }{Digits: 2}}, `"Digits":2`},
	}
	for _, tt := range tests {
		t.Run(tt.field.Key, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("field", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output missing %q: %s", tt.contains, buf.String())
			}
		})
	}
}

func TestWithLevelFilters(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test").WithLevel(zerolog.ErrorLevel)
	logger.Info("dropped")
	logger.Debug("dropped too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below error level, got %s", buf.String())
	}
	logger.Error("kept", nil)
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error entry should pass the filter: %s", buf.String())
	}
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()
	var l Logger = Nop()
	l.Info("nothing")
	l.Error("nothing", errors.New("x"))
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		log      func(Logger)
		contains []string
	}{
		{"info", func(l Logger) { l.Info("started", String("addr", ":8080")) }, []string{"[INFO] started", "addr=:8080"}},
		{"error", func(l Logger) { l.Error("failed", errors.New("boom"), Int("code", 3)) }, []string{"[ERROR] failed: boom", "code=3"}},
		{"debug", func(l Logger) { l.Debug("trace") }, []string{"[DEBUG] trace"}},
		{"printf", func(l Logger) { l.Printf("value is %d", 123) }, []string{"value is 123"}},
		{"println", func(l Logger) { l.Println("a", "b") }, []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.log(NewStdLoggerAdapter(log.New(&buf, "", 0)))
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q: %s", want, buf.String())
				}
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerInterface(t *testing.T) {
	t.Parallel()
	var _ Logger = (*ZerologAdapter)(nil)
	var _ Logger = (*StdLoggerAdapter)(nil)
}
