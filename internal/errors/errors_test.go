package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config literal", ConfigError{Message: "invalid flag value"}, "invalid flag value"},
		{"config formatted", NewConfigError("invalid value %d for flag %s", -2, "--ndigits"), "invalid value -2 for flag --ndigits"},
		{"timeout seconds", TimeoutError{Operation: "intword", Limit: 30 * time.Second}, `operation "intword" timed out after 30s`},
		{"timeout subsecond", TimeoutError{Operation: "batch format", Limit: 500 * time.Millisecond}, `operation "batch format" timed out after 500ms`},
		{"validation", ValidationError{Field: "ndigits", Message: "must be non-negative"}, `validation error for "ndigits": must be non-negative`},
		{"iteration", &IterationError{Index: 3, Cause: errors.New("row unreadable")}, "error iterating value at index 3: row unreadable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsAsKeepsFields(t *testing.T) {
	t.Parallel()

	var configErr ConfigError
	if !errors.As(fmt.Errorf("parse: %w", NewConfigError("bad")), &configErr) || configErr.Message != "bad" {
		t.Errorf("ConfigError not recovered: %+v", configErr)
	}

	var timeoutErr TimeoutError
	err := WrapError(TimeoutError{Operation: "naturalsize", Limit: 10 * time.Second}, "run")
	if !errors.As(err, &timeoutErr) || timeoutErr.Operation != "naturalsize" || timeoutErr.Limit != 10*time.Second {
		t.Errorf("TimeoutError not recovered: %+v", timeoutErr)
	}

	var validationErr ValidationError
	err = WrapError(ValidationError{Field: "formatter", Message: "unknown formatter"}, "request")
	if !errors.As(err, &validationErr) || validationErr.Field != "formatter" {
		t.Errorf("ValidationError not recovered: %+v", validationErr)
	}
}

func TestIterationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("sequence mutated during iteration")
	var err error = &IterationError{Index: 3, Cause: cause}

	if got, want := err.Error(), "error iterating value at index 3: sequence mutated during iteration"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through IterationError")
	}

	var iterErr *IterationError
	if !errors.As(WrapError(err, "intcomma"), &iterErr) {
		t.Fatal("errors.As should find IterationError through WrapError")
	}
	if iterErr.Index != 3 {
		t.Errorf("expected Index 3, got %d", iterErr.Index)
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to load config",
			expectedMsg: "failed to load config: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("connection reset"),
			format:      "failed to connect to %s:%d",
			args:        []any{"localhost", 8080},
			expectedMsg: "failed to connect to localhost:8080: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}

			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}

			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}

			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := IsContextError(tt.err)
			if result != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	// Verify exit codes are distinct and match expected values
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorInput":    ExitErrorInput,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	// Check expected values
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	// Check all codes are unique
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"validation", ValidationError{Field: "ndigits", Message: "negative"}, ExitErrorConfig},
		{"iteration", WrapError(&IterationError{Index: 1, Cause: errors.New("x")}, "ctx"), ExitErrorInput},
		{"timeout", TimeoutError{Operation: "format", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
