// Package validation runs CPF validation for the CLI: single inputs, batches
// fanned out over a bounded worker pool, and check digit visualizations.
// Outcomes are logged without the raw input and counted through a
// MetricsRecorder.
package validation

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks MetricsRecorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"cpfcheck/pkg/cpf"
)

const tracerName = "cpfcheck/internal/validation"

// OutcomeValid labels accepted inputs; rejected inputs use their reason code.
const OutcomeValid = "valid"

// ErrInvalidWorkers is returned by New when the worker limit is below one.
var ErrInvalidWorkers = errors.New("workers must be at least 1")

// MetricsRecorder receives one outcome per validated input and one duration
// per batch.
type MetricsRecorder interface {
	IncrementOutcome(outcome string)
	ObserveBatchDuration(d time.Duration)
}

type Service struct {
	logger      *slog.Logger
	metrics     MetricsRecorder
	tracer      trace.Tracer
	provider    trace.TracerProvider
	development bool
	workers     int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(metrics MetricsRecorder) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// WithDevelopment attaches check digit diagnostics to every result.
func WithDevelopment(enabled bool) Option {
	return func(s *Service) {
		s.development = enabled
	}
}

// WithWorkers bounds how many inputs of a batch are validated at once.
func WithWorkers(n int) Option {
	return func(s *Service) {
		s.workers = n
	}
}

// WithTracerProvider sets where batch spans are recorded. Defaults to the
// global provider.
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(s *Service) {
		s.provider = provider
	}
}

func New(opts ...Option) (*Service, error) {
	svc := &Service{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		provider: otel.GetTracerProvider(),
		workers:  1,
	}

	for _, opt := range opts {
		opt(svc)
	}

	if svc.workers < 1 {
		return nil, ErrInvalidWorkers
	}
	if svc.logger == nil {
		return nil, errors.New("logger is required")
	}
	if svc.provider == nil {
		return nil, errors.New("tracer provider is required")
	}
	svc.tracer = svc.provider.Tracer(tracerName)

	return svc, nil
}

// Outcome pairs a batch input with its result. Index is the input position.
type Outcome struct {
	Index  int        `json:"index" yaml:"index"`
	Input  string     `json:"input" yaml:"input"`
	Result cpf.Result `json:"result" yaml:"result"`
}

// BatchReport summarizes one ValidateBatch call.
type BatchReport struct {
	BatchID  uuid.UUID      `json:"batch_id" yaml:"batch_id"`
	Outcomes []Outcome      `json:"outcomes" yaml:"outcomes"`
	Counts   map[string]int `json:"counts" yaml:"counts"`
	Elapsed  time.Duration  `json:"elapsed" yaml:"elapsed"`
}

// Invalid returns how many inputs were rejected.
func (r *BatchReport) Invalid() int {
	return len(r.Outcomes) - r.Counts[OutcomeValid]
}

// Validate validates a single input and records its outcome.
func (s *Service) Validate(ctx context.Context, raw string) cpf.Result {
	return s.ValidateWith(ctx, cpf.New(raw, s.validatorOptions()...))
}

// ValidateWith runs an already built validator, keeping its own development
// flag, and records the outcome.
func (s *Service) ValidateWith(ctx context.Context, v *cpf.Validator) cpf.Result {
	result := v.Validate()
	s.record(ctx, result)
	return result
}

// ValidateBatch validates inputs concurrently. Outcomes keep input order.
// If ctx is cancelled before every input is processed the context error is
// returned and no report is produced.
func (s *Service) ValidateBatch(ctx context.Context, inputs []string) (*BatchReport, error) {
	ctx, span := s.tracer.Start(ctx, "validation.ValidateBatch",
		trace.WithAttributes(attribute.Int("cpf.batch_size", len(inputs))))
	defer span.End()

	start := time.Now()
	batchID := uuid.New()
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	stopped := false
	for i, raw := range inputs {
		if gctx.Err() != nil {
			stopped = true
			break
		}
		i, raw := i, raw
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = Outcome{Index: i, Input: raw, Result: s.Validate(gctx, raw)}
			return nil
		})
	}

	err := g.Wait()
	if err == nil && stopped {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch cancelled")
		s.logger.WarnContext(ctx, "cpf batch cancelled", "batch_id", batchID, "size", len(inputs), "error", err)
		return nil, fmt.Errorf("validate batch: %w", err)
	}

	report := &BatchReport{
		BatchID:  batchID,
		Outcomes: outcomes,
		Counts:   make(map[string]int),
		Elapsed:  time.Since(start),
	}
	for _, o := range outcomes {
		report.Counts[outcomeLabel(o.Result)]++
	}

	if s.metrics != nil {
		s.metrics.ObserveBatchDuration(report.Elapsed)
	}
	span.SetAttributes(attribute.Int("cpf.valid_count", report.Counts[OutcomeValid]))
	s.logger.InfoContext(ctx, "cpf batch validated",
		"batch_id", batchID,
		"size", len(inputs),
		"invalid", report.Invalid(),
		"elapsed", report.Elapsed,
	)

	return report, nil
}

// Visualize returns both check digit calculations for raw.
func (s *Service) Visualize(ctx context.Context, raw string) (cpf.Visualization, error) {
	v := cpf.New(raw)
	vis, err := v.Visualize()
	if err != nil {
		s.logger.DebugContext(ctx, "cpf visualization rejected", "digits", v.Analysis().Length)
		return cpf.Visualization{}, fmt.Errorf("visualize: %w", err)
	}
	return vis, nil
}

func (s *Service) validatorOptions() []cpf.Option {
	if s.development {
		return []cpf.Option{cpf.WithDevelopment()}
	}
	return nil
}

func (s *Service) record(ctx context.Context, result cpf.Result) {
	outcome := outcomeLabel(result)
	if s.metrics != nil {
		s.metrics.IncrementOutcome(outcome)
	}
	// Raw input is personal data; log its shape only.
	s.logger.DebugContext(ctx, "cpf validated",
		"outcome", outcome,
		"digits", result.Analysis.Length,
		"formatted", result.Analysis.IsFormatted,
		"invalid_chars", result.Analysis.HasInvalidChars,
	)
}

func outcomeLabel(result cpf.Result) string {
	if result.Valid {
		return OutcomeValid
	}
	return result.Reason.String()
}
