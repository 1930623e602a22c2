// Package api exposes the Cadence analysis engine over HTTP.
//
// The package serves four endpoint groups:
//
//   - POST /v1/reports        — analyze one recording, respond with the report
//   - GET  /v1/reports/stream — WebSocket: one report per inbound input message
//   - GET  /metrics           — Prometheus scrape endpoint
//   - GET  /healthz, /readyz  — liveness and readiness checks
//
// All routes run behind [observe.Middleware], so every request carries a trace
// span, a correlation ID, and a latency measurement.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/podiumlabs/cadence/internal/health"
	"github.com/podiumlabs/cadence/internal/observe"
	"github.com/podiumlabs/cadence/internal/report"
	"github.com/podiumlabs/cadence/pkg/speech"
)

// maxBodyBytes caps the request body for the analyze endpoint. Transcripts
// and word timings for an hour-long recording fit comfortably within it.
const maxBodyBytes = 16 << 20 // 16 MiB

// Server handles the Cadence HTTP API. The generator can be swapped at
// runtime via [Server.SetGenerator] when the lexicon config changes; all
// other state is fixed at construction.
type Server struct {
	metrics *observe.Metrics
	health  *health.Handler

	mu  sync.RWMutex
	gen *report.Generator
}

// Option is a functional option for [NewServer].
type Option func(*Server)

// WithHealth attaches a health handler whose /healthz and /readyz routes are
// registered alongside the API routes. Without it a checker-less handler is
// used, so both endpoints always pass.
func WithHealth(h *health.Handler) Option {
	return func(s *Server) { s.health = h }
}

// NewServer creates a Server that generates reports with gen and records
// telemetry through metrics.
func NewServer(gen *report.Generator, metrics *observe.Metrics, opts ...Option) *Server {
	s := &Server{
		gen:     gen,
		metrics: metrics,
	}
	for _, o := range opts {
		o(s)
	}
	if s.health == nil {
		s.health = health.New()
	}
	return s
}

// SetGenerator replaces the report generator. In-flight requests finish with
// the generator they started with; subsequent requests use the new one.
func (s *Server) SetGenerator(gen *report.Generator) {
	s.mu.Lock()
	s.gen = gen
	s.mu.Unlock()
}

// generator returns the current report generator.
func (s *Server) generator() *report.Generator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Handler returns the fully wired http.Handler for the API, including the
// observability middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/reports", s.handleAnalyze)
	mux.HandleFunc("GET /v1/reports/stream", s.handleStream)
	mux.Handle("GET /metrics", promhttp.Handler())
	s.health.Register(mux)

	return observe.Middleware(s.metrics)(mux)
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze handles POST /v1/reports: it decodes one [speech.AnalysisInput]
// and responds with the generated [report.PerformanceReport].
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var in speech.AnalysisInput
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil {
		s.metrics.RecordAnalysisError(ctx, "http")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	started := time.Now()
	rep, err := s.generator().Generate(ctx, in)
	if err != nil {
		s.metrics.RecordAnalysisError(ctx, "http")
		if errors.Is(err, ctx.Err()) {
			// Client went away; nothing useful to write.
			return
		}
		slog.ErrorContext(ctx, "report generation failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "analysis failed"})
		return
	}
	s.metrics.RecordReport(ctx, "http", time.Since(started).Seconds())

	// The engine keeps its output a pure function of the input; the
	// correlation ID is stamped here, where the report leaves the process.
	rep.ReportID = uuid.NewString()
	observe.TagReportID(ctx, rep.ReportID)

	slog.InfoContext(ctx, "report generated",
		"report_id", rep.ReportID,
		"words", rep.Speech.WordCount,
		"overall_score", rep.Summary.OverallScore,
	)
	writeJSON(w, http.StatusOK, rep)
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}
