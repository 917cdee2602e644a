package server

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDefaultSecurityConfig(t *testing.T) {
	t.Parallel()
	c := DefaultSecurityConfig()
	if !c.EnableCORS {
		t.Error("EnableCORS should be true by default")
	}
	if len(c.AllowedOrigins) != 1 || c.AllowedOrigins[0] != "*" {
		t.Errorf("AllowedOrigins = %v, want [*]", c.AllowedOrigins)
	}
	if strings.Join(c.AllowedMethods, ",") != "GET,POST,OPTIONS" {
		t.Errorf("AllowedMethods = %v", c.AllowedMethods)
	}
	if c.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d, want 1 MiB", c.MaxBodyBytes)
	}
}

func TestSecurityMiddleware_Headers(t *testing.T) {
	t.Parallel()
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			t.Parallel()
			called := false
			handler := SecurityMiddleware(DefaultSecurityConfig(), func(w http.ResponseWriter, r *http.Request) { called = true })
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(method, "/v1/intcomma", http.NoBody))

			if !called {
				t.Error("next handler was not called")
			}
			for header, want := range map[string]string{
				"X-Content-Type-Options":  "nosniff",
				"X-Frame-Options":         "DENY",
				"Referrer-Policy":         "no-referrer",
				"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
				"Cache-Control":           "no-store",
			} {
				if got := rec.Header().Get(header); got != want {
					t.Errorf("%s = %q, want %q", header, got, want)
				}
			}
		})
	}
}

func TestSecurityMiddleware_CORS(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		config     SecurityConfig
		origin     string
		wantOrigin string
	}{
		{"disabled", SecurityConfig{}, "http://example.com", ""},
		{"wildcard", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"*"}}, "http://example.com", "*"},
		{"wildcard without origin", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"*"}}, "", "*"},
		{"listed origin", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"http://a.test", "http://b.test"}}, "http://b.test", "http://b.test"},
		{"unlisted origin", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"http://a.test"}}, "http://c.test", ""},
		{"no origin with list", SecurityConfig{EnableCORS: true, AllowedOrigins: []string{"http://a.test"}}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			handler := SecurityMiddleware(tt.config, func(http.ResponseWriter, *http.Request) {})
			req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.wantOrigin != "" && rec.Header().Get("Access-Control-Max-Age") == "" {
				t.Error("Access-Control-Max-Age should be set")
			}
		})
	}
}

func TestSecurityMiddleware_Preflight(t *testing.T) {
	t.Parallel()
	called := false
	handler := SecurityMiddleware(DefaultSecurityConfig(), func(http.ResponseWriter, *http.Request) { called = true })
	req := httptest.NewRequest(http.MethodOptions, "/v1/intword", http.NoBody)
	req.Header.Set("Origin", "http://example.com")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if called {
		t.Error("preflight must not reach the next handler")
	}
	if rec.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight should carry the allowed methods")
	}
}

func TestSecurityMiddleware_BodyLimit(t *testing.T) {
	t.Parallel()
	config := DefaultSecurityConfig()
	config.MaxBodyBytes = 8
	var readErr error
	handler := SecurityMiddleware(config, func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/intcomma", strings.NewReader(`{"value": 123456}`)))

	var tooLarge *http.MaxBytesError
	if readErr == nil || !errors.As(readErr, &tooLarge) {
		t.Errorf("expected MaxBytesError, got %v", readErr)
	}
}
