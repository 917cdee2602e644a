package server

import (
	"net/http"
	"slices"
	"strings"
)

// DefaultMaxBodyBytes caps request bodies.
const DefaultMaxBodyBytes = 1 << 20

// SecurityConfig controls response hardening and CORS.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
	// MaxBodyBytes is the largest accepted request body.
	MaxBodyBytes int64
}

// DefaultSecurityConfig allows cross-origin calls from anywhere and bodies up
// to DefaultMaxBodyBytes.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxBodyBytes:   DefaultMaxBodyBytes,
	}
}

func (c SecurityConfig) allowedOrigin(origin string) (string, bool) {
	if slices.Contains(c.AllowedOrigins, "*") {
		return "*", true
	}
	if origin != "" && slices.Contains(c.AllowedOrigins, origin) {
		return origin, true
	}
	return "", false
}

// SecurityMiddleware sets security headers on every response, adds CORS
// headers for allowed origins, answers preflight requests with 204 and caps
// the request body size.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	methods := strings.Join(config.AllowedMethods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")

		if config.EnableCORS {
			if origin, ok := config.allowedOrigin(r.Header.Get("Origin")); ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Set("Access-Control-Max-Age", "86400")
				if origin != "*" {
					h.Add("Vary", "Origin")
				}
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if config.MaxBodyBytes > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, config.MaxBodyBytes)
		}
		next(w, r)
	}
}
