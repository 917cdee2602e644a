package batch

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/humanize/internal/errors"
	"github.com/agbru/humanize/internal/humanize"
	"github.com/agbru/humanize/internal/logging"
	"github.com/agbru/humanize/internal/metrics"
	"github.com/agbru/humanize/internal/parallel"
)

const tracerName = "github.com/agbru/humanize/internal/batch"

// Engine formats values and collections. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	mapper  parallel.Mapper
	logger  logging.Logger
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

// Option configures an Engine.
type Option func(*Engine)

// WithMapper sets the work distributor. The default is a parallel.Pool sized
// to GOMAXPROCS.
func WithMapper(m parallel.Mapper) Option {
	return func(e *Engine) {
		if m != nil {
			e.mapper = m
		}
	}
}

// WithLogger sets the logger used for per-call debug entries.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = r }
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		mapper: parallel.Pool{},
		logger: logging.Nop(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply formats input with f and returns a result of the same shape.
//
// Unrecognised items never fail; they are carried through as text. The only
// error from the data itself is an *apperrors.IterationError from a Sequence
// whose elements cannot be read. Cancellation of ctx and panics inside f are
// reported as errors too.
func (e *Engine) Apply(ctx context.Context, input any, f humanize.Formatter) (Result, error) {
	name := f.Name()
	ctx, span := e.tracer.Start(ctx, "batch.Apply",
		trace.WithAttributes(attribute.String("humanize.formatter", name)),
	)
	defer span.End()
	start := time.Now()

	shape, items, err := collect(input)
	if err != nil {
		e.metrics.IterationFailed(name)
		span.RecordError(err)
		span.SetStatus(codes.Error, "iteration failed")
		e.logger.Error("reading input sequence failed", err, logging.String("formatter", name))
		return Result{}, apperrors.WrapError(err, "%s", name)
	}
	span.SetAttributes(
		attribute.String("humanize.shape", shape.String()),
		attribute.Int("humanize.items", len(items)),
	)

	values := make([]humanize.Value, len(items))
	for i, item := range items {
		values[i] = humanize.Classify(item)
	}

	out := make([]string, len(values))
	if shape == ShapeScalar {
		out[0] = f.Format(values[0])
	} else if err := e.mapper.Map(ctx, len(values), func(i int) {
		out[i] = f.Format(values[i])
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "formatting aborted")
		return Result{}, apperrors.WrapError(err, "%s", name)
	}

	elapsed := time.Since(start)
	for _, v := range values {
		e.metrics.ObserveValue(name, v.Kind().String())
	}
	e.metrics.ObserveBatch(name, len(values), elapsed)
	e.logger.Debug("formatted input",
		logging.String("formatter", name),
		logging.String("shape", shape.String()),
		logging.Int("items", len(values)),
		logging.Duration("elapsed", elapsed),
	)
	return Result{Shape: shape, Values: out}, nil
}

// IntComma groups digits with commas. At most one ndigits may be given; when
// present it must be non-negative and fixes the number of fractional digits.
func (e *Engine) IntComma(ctx context.Context, value any, ndigits ...int) (Result, error) {
	precision := humanize.Natural
	switch len(ndigits) {
	case 0:
	case 1:
		if ndigits[0] < 0 {
			return Result{}, apperrors.ValidationError{Field: "ndigits", Message: "must be non-negative"}
		}
		precision = humanize.Digits(ndigits[0])
	default:
		return Result{}, apperrors.ValidationError{Field: "ndigits", Message: "at most one value may be given"}
	}
	return e.Apply(ctx, value, humanize.IntComma{Precision: precision})
}

// IntWord converts values to scale words using the "%.<N>f" directive in
// format, if any.
func (e *Engine) IntWord(ctx context.Context, value any, format string) (Result, error) {
	return e.Apply(ctx, value, humanize.NewIntWord(format))
}

// NaturalSize renders values as byte sizes.
func (e *Engine) NaturalSize(ctx context.Context, value any, binary, gnu bool, format string) (Result, error) {
	return e.Apply(ctx, value, humanize.NewNaturalSize(binary, gnu, format))
}
