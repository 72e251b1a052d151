package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records parser metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordParse records a parse with its duration. errKind classifies the
	// error, or is empty if the parse succeeded.
	RecordParse(ctx context.Context, duration time.Duration, errKind string)

	// RecordResult records the kind of a successful result, e.g. "exact" or
	// "real".
	RecordResult(ctx context.Context, kind string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	parses  metric.Int64Counter
	errors  metric.Int64Counter
	latency metric.Float64Histogram
	results metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("exactcalc")

	parses, err := meter.Int64Counter("exactcalc.parses",
		metric.WithDescription("Number of parsed expressions"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter("exactcalc.parse.errors",
		metric.WithDescription("Number of expressions that failed to parse or evaluate"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("exactcalc.parse.latency_ms",
		metric.WithDescription("Parse and evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	results, err := meter.Int64Counter("exactcalc.results",
		metric.WithDescription("Number of results by kind"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		parses:  parses,
		errors:  errs,
		latency: latency,
		results: results,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordParse records a parse.
func (m *otelMetrics) RecordParse(ctx context.Context, duration time.Duration, errKind string) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", errKind == ""),
	}
	m.parses.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.latency.Record(ctx, Milliseconds(duration), metric.WithAttributes(attrs...))
	if errKind != "" {
		m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", errKind)))
	}
}

// RecordResult records a result kind.
func (m *otelMetrics) RecordResult(ctx context.Context, kind string) {
	m.results.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
