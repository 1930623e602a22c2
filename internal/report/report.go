// Package report implements the Cadence aggregator: it runs every analyzer
// over one finished recording and composes the results into a single
// immutable [PerformanceReport].
//
// The analyzers are mutually independent, so the generator may execute them
// sequentially or concurrently with identical output — the report is a pure
// function of its input. Generating a report twice from the same input
// produces identical output; the generator holds no hidden state and draws
// no randomness.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/podiumlabs/cadence/internal/fluency"
	"github.com/podiumlabs/cadence/internal/habits"
	"github.com/podiumlabs/cadence/internal/lexicon"
	"github.com/podiumlabs/cadence/internal/observe"
	"github.com/podiumlabs/cadence/pkg/speech"
)

// Summary holds the composite scores of a report.
type Summary struct {
	OverallScore float64 `json:"overallScore"`
	HabitsScore  float64 `json:"habitsScore"`
	ClarityScore float64 `json:"clarityScore"`
	FluencyScore float64 `json:"fluencyScore"`
}

// Speech holds transcript-level delivery measurements.
type Speech struct {
	WordsPerMinute float64             `json:"wordsPerMinute"`
	WordCount      int                 `json:"wordCount"`
	DurationMs     int64               `json:"durationMs"`
	Fillers        habits.FillerResult `json:"fillers"`
}

// DeliveryHabits groups the timing-driven habit results.
type DeliveryHabits struct {
	Pauses habits.PauseResult `json:"pauses"`
	Rate   habits.RateResult  `json:"rate"`
}

// VocalHabits groups the loudness-driven habit results.
type VocalHabits struct {
	Volume habits.VolumeResult `json:"volume"`
}

// CognitiveHabits groups the language-driven habit results.
type CognitiveHabits struct {
	Declarative       habits.HedgeResult      `json:"declarative"`
	ThoughtCompletion habits.CompletionResult `json:"thoughtCompletion"`
	Framework         habits.FrameworkResult  `json:"framework"`
	Analogy           habits.AnalogyResult    `json:"analogy"`
}

// Habits groups all seven habit results.
type Habits struct {
	Delivery  DeliveryHabits  `json:"delivery"`
	Vocal     VocalHabits     `json:"vocal"`
	Cognitive CognitiveHabits `json:"cognitive"`
}

// Visual echoes the externally computed visual scores.
type Visual struct {
	EyeContactPercentage float64 `json:"eyeContactPercentage"`
	PostureScore         float64 `json:"postureScore"`
}

// PerformanceReport is the aggregate result of one analysis run. It is
// recomputed from scratch on every call and never mutated afterwards.
type PerformanceReport struct {
	// ReportID correlates the report across logs and telemetry. The engine
	// leaves it empty — its output is a pure function of the input — and the
	// service boundary (HTTP handler, stream loop, one-shot CLI) stamps it.
	ReportID string `json:"reportId"`

	Summary Summary `json:"summary"`
	Speech  Speech  `json:"speech"`
	Habits  Habits  `json:"habits"`
	Visual  Visual  `json:"visual"`

	Stuttering *fluency.Report `json:"stuttering"`

	Transcript string `json:"transcript"`

	// Recommendations holds up to eight merged suggestions across all
	// analyzers.
	Recommendations []string `json:"recommendations"`
}

// Option is a functional option for [NewGenerator].
type Option func(*Generator)

// WithVocabularies replaces the default analyzer vocabularies, typically
// with the output of [lexicon.Build].
func WithVocabularies(v lexicon.Vocabularies) Option {
	return func(g *Generator) { g.vocab = v }
}

// WithMetrics attaches an [observe.Metrics] instance so per-analyzer
// durations are recorded. When nil (the default), no metrics are emitted.
func WithMetrics(m *observe.Metrics) Option {
	return func(g *Generator) { g.metrics = m }
}

// WithSequential forces the analyzers to run one at a time instead of
// concurrently. Output is identical either way; sequential mode exists for
// deterministic profiling.
func WithSequential() Option {
	return func(g *Generator) { g.sequential = true }
}

// Generator runs all analyzers and assembles performance reports. It holds
// no per-call state and is safe for concurrent use.
type Generator struct {
	vocab      lexicon.Vocabularies
	metrics    *observe.Metrics
	sequential bool
}

// NewGenerator constructs a [Generator] with the supplied options. By
// default it uses the built-in vocabularies, runs analyzers concurrently,
// and emits no metrics.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{vocab: lexicon.Default()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Generate analyzes one finished recording and returns its performance
// report. Data-quality problems never fail the report — every analyzer
// degrades to a neutral default. The only error path is context
// cancellation.
func (g *Generator) Generate(ctx context.Context, in speech.AnalysisInput) (*PerformanceReport, error) {
	return g.GenerateWith(ctx, in, nil)
}

// GenerateWith is [Generator.Generate] with an optional precomputed
// stuttering report. When stuttering is nil the fluency profile is computed
// here; otherwise the supplied one is merged into the report unchanged.
func (g *Generator) GenerateWith(ctx context.Context, in speech.AnalysisInput, stuttering *fluency.Report) (*PerformanceReport, error) {
	var (
		fillers    habits.FillerResult
		pauses     habits.PauseResult
		hedging    habits.HedgeResult
		rate       habits.RateResult
		volume     habits.VolumeResult
		completion habits.CompletionResult
		framework  habits.FrameworkResult
		analogy    habits.AnalogyResult
	)

	eg, egCtx := errgroup.WithContext(ctx)
	if g.sequential {
		eg.SetLimit(1)
	}

	// Each analyzer writes to its own variable, so concurrent execution
	// shares nothing.
	run := func(name string, fn func()) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			spanCtx, span := observe.StartAnalyzerSpan(egCtx, name)
			started := time.Now()
			fn()
			span.End()
			if g.metrics != nil {
				g.metrics.RecordAnalyzer(spanCtx, name, time.Since(started).Seconds())
			}
			return nil
		})
	}

	run("fillers", func() { fillers = habits.DetectFillerWordsIn(in.Transcript, g.vocab.Fillers) })
	run("pauses", func() { pauses = habits.AnalyzeStrategicPauses(in.Words) })
	run("hedging", func() { hedging = habits.DetectHedgingIn(in.Transcript, g.vocab.Hedges) })
	run("rate", func() { rate = habits.AnalyzeRateVariability(in.Words) })
	run("volume", func() { volume = habits.AnalyzeVolumePatterns(in.VolumeHistory) })
	run("completion", func() { completion = habits.AnalyzeThoughtCompletion(in.Transcript) })
	run("framework", func() { framework = habits.DetectFrameworkIn(in.Transcript, g.vocab.Framework) })
	run("analogy", func() { analogy = habits.DetectAnalogiesIn(in.Transcript, g.vocab.AnalogyMarkers) })
	if stuttering == nil {
		run("fluency", func() { stuttering = fluency.GenerateReport(in.Transcript, in.Words) })
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("report: analysis cancelled: %w", err)
	}

	rep := &PerformanceReport{
		Speech: Speech{
			WordsPerMinute: overallWPM(in),
			WordCount:      in.WordCount(),
			DurationMs:     in.DurationMs,
			Fillers:        fillers,
		},
		Habits: Habits{
			Delivery: DeliveryHabits{Pauses: pauses, Rate: rate},
			Vocal:    VocalHabits{Volume: volume},
			Cognitive: CognitiveHabits{
				Declarative:       hedging,
				ThoughtCompletion: completion,
				Framework:         framework,
				Analogy:           analogy,
			},
		},
		Visual: Visual{
			EyeContactPercentage: in.EyeContactPercentage,
			PostureScore:         in.PostureScore,
		},
		Stuttering: stuttering,
		Transcript: in.Transcript,
	}

	rep.Summary = summarize(rep)
	rep.Recommendations = buildRecommendations(rep)

	return rep, nil
}

// overallWPM computes the whole-recording speaking rate from the word count
// and recording duration. Returns 0 when the duration is unknown.
func overallWPM(in speech.AnalysisInput) float64 {
	if in.DurationMs <= 0 {
		return 0
	}
	minutes := float64(in.DurationMs) / 60000
	return float64(in.WordCount()) / minutes
}
