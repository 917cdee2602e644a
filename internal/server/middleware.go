package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/agbru/humanize/internal/logging"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func wrapWriter(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// route collapses request paths to a bounded set of metric labels.
func route(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/") && humanizeName(strings.TrimPrefix(path, "/v1/")) != "":
		return path
	case path == "/healthz", path == "/metrics":
		return path
	}
	return "other"
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		rec := wrapWriter(w)
		next(rec, r)
		s.metrics.ObserveRequest(route(r.URL.Path), rec.status, time.Since(start))
	}
}

func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := wrapWriter(w)
		next(rec, r)
		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.Duration("elapsed", time.Since(start)),
		)
	}
}
