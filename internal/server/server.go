package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/agbru/humanize/internal/batch"
	apperrors "github.com/agbru/humanize/internal/errors"
	"github.com/agbru/humanize/internal/humanize"
	"github.com/agbru/humanize/internal/logging"
	"github.com/agbru/humanize/internal/metrics"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves the formatting API.
type Server struct {
	addr     string
	engine   *batch.Engine
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
	timeout  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithRequestTimeout bounds the formatting work of one request.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New creates a Server listening on addr. rec receives both engine and HTTP
// metrics and should be the Recorder the engine was built with.
func New(addr string, engine *batch.Engine, rec *metrics.Recorder, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		engine:   engine,
		metrics:  NewMetrics(rec),
		logger:   logging.Nop(),
		security: DefaultSecurityConfig(),
		timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/{formatter}", s.handleFormat)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/metrics", s.handleMetrics)
	return SecurityMiddleware(s.security, s.metricsMiddleware(s.loggingMiddleware(mux.ServeHTTP)))
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type formatRequest struct {
	Value   any     `json:"value"`
	NDigits *int    `json:"ndigits,omitempty"`
	Format  *string `json:"format,omitempty"`
	Binary  bool    `json:"binary,omitempty"`
	GNU     bool    `json:"gnu,omitempty"`
	Tuple   bool    `json:"tuple,omitempty"`
}

type formatResponse struct {
	Result batch.Result `json:"result"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" is not supported")
		return
	}

	name := r.PathValue("formatter")
	var req formatRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request too large", err.Error())
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	input := req.Value
	if items, ok := input.([]any); ok && req.Tuple {
		input = batch.Tuple(items)
	}
	format := humanize.DefaultFormat
	if req.Format != nil {
		format = *req.Format
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	var (
		result batch.Result
		err    error
	)
	switch humanizeName(name) {
	case humanize.NameIntComma:
		if req.NDigits != nil {
			result, err = s.engine.IntComma(ctx, input, *req.NDigits)
		} else {
			result, err = s.engine.IntComma(ctx, input)
		}
	case humanize.NameIntWord:
		result, err = s.engine.IntWord(ctx, input, format)
	case humanize.NameNaturalSize:
		result, err = s.engine.NaturalSize(ctx, input, req.Binary, req.GNU, format)
	default:
		s.writeError(w, http.StatusNotFound, "unknown formatter",
			fmt.Sprintf("%q is not one of %s", name, humanize.NaturalList(humanize.Names())))
		return
	}
	if err != nil {
		s.writeEngineError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, formatResponse{Result: result})
}

func humanizeName(name string) string {
	for _, n := range humanize.Names() {
		if n == name {
			return n
		}
	}
	return ""
}

func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var validationErr apperrors.ValidationError
	var iterationErr *apperrors.IterationError
	switch {
	case errors.As(err, &validationErr):
		s.writeError(w, http.StatusBadRequest, "invalid parameter", err.Error())
	case errors.As(err, &iterationErr):
		s.writeError(w, http.StatusUnprocessableEntity, "invalid value", err.Error())
	case apperrors.IsContextError(err):
		s.writeError(w, http.StatusServiceUnavailable, "timeout", err.Error())
	default:
		s.logger.Error("formatting failed", err)
		s.writeError(w, http.StatusInternalServerError, "internal error", "formatting failed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" is not supported")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" is not supported")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.logger != nil {
		s.logger.Error("writing response failed", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, code int, errText, message string) {
	s.writeJSON(w, code, errorResponse{Error: errText, Message: message})
}
