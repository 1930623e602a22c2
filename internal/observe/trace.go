package observe

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name for the Cadence tracer.
const tracerName = "github.com/podiumlabs/cadence"

// Span attribute keys specific to report analysis.
const (
	attrReportID = attribute.Key("cadence.report.id")
	attrAnalyzer = attribute.Key("cadence.analyzer")
)

// Tracer returns the Cadence [trace.Tracer] from the globally registered
// provider.
func Tracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

// StartSpan starts a new span. The caller must call span.End() when done.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return Tracer().Start(ctx, name, opts...)
}

// StartAnalyzerSpan starts a child span covering one analyzer run inside
// report generation. The analyzer name ("fillers", "pauses", "fluency", ...)
// is recorded as a span attribute so a trace of one report shows where the
// analysis time went.
func StartAnalyzerSpan(ctx context.Context, analyzer string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "analyze."+analyzer,
		trace.WithAttributes(attrAnalyzer.String(analyzer)))
}

// TagReportID records a generated report's ID on the active span in ctx, so
// a report found in client storage can be matched to the trace (and the
// correlation ID) of the request that produced it. No-op without an active
// span.
func TagReportID(ctx context.Context, id string) {
	trace.SpanFromContext(ctx).SetAttributes(attrReportID.String(id))
}

// CorrelationID extracts the trace ID from the OTel span context in ctx.
// Returns the empty string when no active span with a valid trace ID exists.
// The trace ID doubles as the correlation identifier exposed to clients.
func CorrelationID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

// Logger returns an [slog.Logger] enriched with trace_id and span_id from
// the OTel span context in ctx. When no active span is present, the returned
// logger is the default slog logger without extra attributes.
func Logger(ctx context.Context) *slog.Logger {
	l := slog.Default()
	sc := trace.SpanContextFromContext(ctx)
	if sc.HasTraceID() {
		l = l.With(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return l
}
