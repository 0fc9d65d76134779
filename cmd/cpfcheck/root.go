package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"cpfcheck/internal/platform/config"
	"cpfcheck/internal/platform/logger"
	"cpfcheck/internal/render"
	"cpfcheck/internal/validation"
	"cpfcheck/internal/validation/metrics"
)

// errInvalidFound makes `validate` exit non-zero when any input is rejected.
var errInvalidFound = errors.New("invalid CPF found")

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg         config.Config
	showMetrics bool
	showTrace   bool
	invalid     bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger   *slog.Logger
	registry *prometheus.Registry
	tracing  *sdktrace.TracerProvider
	service  *validation.Service
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.FromEnv(), in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "cpfcheck",
		Short: "Validate Brazilian CPF numbers",
		Long: `cpfcheck normalizes CPF input, checks its shape and verifies both
modulo-11 check digits. Without a subcommand it runs the demo.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.tracing != nil {
				if err := a.tracing.Shutdown(context.WithoutCancel(cmd.Context())); err != nil {
					return fmt.Errorf("shutdown tracing: %w", err)
				}
			}
			if a.showMetrics {
				if err := a.writeMetrics(); err != nil {
					return err
				}
			}
			if a.invalid {
				return errInvalidFound
			}
			return nil
		},
		RunE: a.runDemo,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&a.cfg.Development, "dev", a.cfg.Development, "Attach check digit diagnostics to results (env CPF_DEVELOPMENT)")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "Output format: yaml or json (env CPF_OUTPUT)")
	flags.StringVar(&a.cfg.Logging.Level, "log-level", a.cfg.Logging.Level, "Log level (env CPF_LOG_LEVEL)")
	flags.StringVar(&a.cfg.Logging.Format, "log-format", a.cfg.Logging.Format, "Log format: text or json (env CPF_LOG_FORMAT)")
	flags.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "Concurrent validations per batch (env CPF_WORKERS)")
	flags.BoolVar(&a.showMetrics, "metrics", false, "Print validation counters to stderr on exit")
	flags.BoolVar(&a.showTrace, "trace", false, "Print batch trace spans to stderr")

	root.AddCommand(
		a.demoCmd(),
		a.validateCmd(),
		a.visualizeCmd(),
		a.checkDigitsCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := render.CheckFormat(a.cfg.Output); err != nil {
		return err
	}

	log, err := logger.New(a.errOut, a.cfg.Logging)
	if err != nil {
		return err
	}
	a.logger = log

	a.registry = prometheus.NewRegistry()
	opts := []validation.Option{
		validation.WithLogger(log),
		validation.WithMetrics(metrics.New(a.registry)),
		validation.WithDevelopment(a.cfg.Development),
		validation.WithWorkers(a.cfg.Workers),
	}
	if a.showTrace {
		if a.tracing, err = newTracerProvider(a.errOut); err != nil {
			return err
		}
		opts = append(opts, validation.WithTracerProvider(a.tracing))
	}

	svc, err := validation.New(opts...)
	if err != nil {
		return fmt.Errorf("build validation service: %w", err)
	}
	a.service = svc
	return nil
}

func (a *app) writeMetrics() error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(a.errOut, family); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}

// newTracerProvider exports every ended span to w as soon as it ends.
func newTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("create trace exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter)), nil
}
