// Package observe provides application-wide observability primitives for
// Cadence: OpenTelemetry metrics, distributed tracing, structured logging,
// and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Cadence metrics.
const meterName = "github.com/podiumlabs/cadence"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms ---

	// AnalysisDuration tracks end-to-end report generation latency.
	AnalysisDuration metric.Float64Histogram

	// AnalyzerDuration tracks per-analyzer latency. Use with attribute:
	//   attribute.String("analyzer", ...)
	AnalyzerDuration metric.Float64Histogram

	// --- Counters ---

	// ReportsGenerated counts performance reports. Use with attribute:
	//   attribute.String("source", ...) — "http", "stream", or "cli"
	ReportsGenerated metric.Int64Counter

	// AnalysisErrors counts failed report generations (decode failures,
	// cancelled contexts). Use with attribute:
	//   attribute.String("source", ...)
	AnalysisErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveStreams tracks the number of open report-stream WebSocket
	// connections.
	ActiveStreams metric.Int64UpDownCounter

	// --- HTTP middleware ---

	// HTTPRequestDuration tracks HTTP request processing time. The middleware
	// records it with attributes:
	//   attribute.String("method", ...), attribute.String("route", ...),
	//   attribute.Int("status", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds). Analysis
// is pure in-memory computation, so the buckets skew far smaller than typical
// request-latency defaults.
var latencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.AnalysisDuration, err = m.Float64Histogram("cadence.analysis.duration",
		metric.WithDescription("End-to-end performance report generation latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.AnalyzerDuration, err = m.Float64Histogram("cadence.analyzer.duration",
		metric.WithDescription("Per-analyzer latency by analyzer name."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.ReportsGenerated, err = m.Int64Counter("cadence.reports.generated",
		metric.WithDescription("Total performance reports generated by source."),
	); err != nil {
		return nil, err
	}
	if met.AnalysisErrors, err = m.Int64Counter("cadence.analysis.errors",
		metric.WithDescription("Total failed report generations by source."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveStreams, err = m.Int64UpDownCounter("cadence.active_streams",
		metric.WithDescription("Number of open report-stream connections."),
	); err != nil {
		return nil, err
	}

	// HTTP middleware histogram.
	if met.HTTPRequestDuration, err = m.Float64Histogram("cadence.http.request.duration",
		metric.WithDescription("HTTP request latency by method, route, and status."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordAnalyzer records one analyzer's execution time.
func (m *Metrics) RecordAnalyzer(ctx context.Context, analyzer string, seconds float64) {
	m.AnalyzerDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("analyzer", analyzer)),
	)
}

// RecordReport records a completed report generation with its latency.
func (m *Metrics) RecordReport(ctx context.Context, source string, seconds float64) {
	m.AnalysisDuration.Record(ctx, seconds,
		metric.WithAttributes(attribute.String("source", source)),
	)
	m.ReportsGenerated.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}

// RecordAnalysisError records a failed report generation.
func (m *Metrics) RecordAnalysisError(ctx context.Context, source string) {
	m.AnalysisErrors.Add(ctx, 1,
		metric.WithAttributes(attribute.String("source", source)),
	)
}
