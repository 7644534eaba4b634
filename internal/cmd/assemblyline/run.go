package assemblyline

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	platformotel "github.com/ib-77/assembly/internal/platform/otel"
	"github.com/ib-77/assembly/pkg/assembly"
	"github.com/ib-77/assembly/pkg/assembly/core"
	"github.com/ib-77/assembly/pkg/assembly/crew"
	"github.com/ib-77/assembly/pkg/assembly/monitor"
)

const (
	ServiceName           = "assembly"
	otelShutdownTimeout   = 5 * time.Second
	tracerInstrumentation = "github.com/ib-77/assembly"
)

// Run builds cfg.Items items with the configured crew, prints one verdict line
// per item to stdout, and logs to stderr.
func Run(ctx context.Context, cfg Config, stdout, stderr io.Writer) error {
	logger, err := NewLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	shutdown, err := platformotel.Setup(ctx, ServiceName)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", ServiceName, err)
		}
	}()

	ctx, span := otel.Tracer(tracerInstrumentation).Start(ctx, "assembly.run",
		trace.WithAttributes(
			attribute.Int("assembly.items", cfg.Items),
			attribute.Int("assembly.primaries", cfg.Primaries),
			attribute.Int("assembly.secondaries", cfg.Secondaries),
			attribute.Int("assembly.inspectors", cfg.Inspectors),
		))
	defer span.End()

	m, err := monitor.New(cfg.Items,
		monitor.WithLogger(logger),
		monitor.WithHandlers(monitor.Handlers{
			OnInspected: func(r assembly.Report) {
				span.AddEvent("item.inspected", trace.WithAttributes(
					attribute.String("report.id", r.Id().String()),
					attribute.Int("item.index", r.Index()),
					attribute.String("item.parts", r.Item().String()),
					attribute.Bool("item.good", r.IsGood()),
				))
			},
		}))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create monitor")
		return fmt.Errorf("create monitor: %w", err)
	}

	ctx = core.WithCrewOptions(ctx, cfg.Primaries, cfg.Secondaries, cfg.Inspectors)
	if cfg.MaxDelay > 0 {
		ctx = core.WithPaceOptions(ctx, cfg.MaxDelay)
	}

	handlers := core.StepHandlers{
		OnDone: func(_ context.Context, role string, steps int) {
			logger.Debug("assembly: role finished", "role", role, "steps", steps)
			span.AddEvent("role.done", trace.WithAttributes(
				attribute.String("role", role),
				attribute.Int("steps", steps),
			))
		},
	}

	reports, err := crew.Drain(ctx, m, handlers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "run crew")
		return fmt.Errorf("run crew: %w", err)
	}

	stats := m.Stats()
	if err := m.Close(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "close monitor")
		return err
	}

	slices.SortFunc(reports, func(a, b assembly.Report) int { return a.Index() - b.Index() })
	for _, r := range reports {
		if _, err := fmt.Fprintln(stdout, r.String()); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	span.SetAttributes(
		attribute.Int("assembly.good", stats.Good),
		attribute.Int("assembly.defective", stats.Defective),
	)
	logger.Info("assembly: finished",
		"items", stats.Items,
		"built", stats.Built,
		"inspected", stats.Inspected,
		"good", stats.Good,
		"defective", stats.Defective,
		"stopped", stats.Stopped)
	return nil
}
