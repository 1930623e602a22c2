// Package fluency implements the stuttering/fluency profile of the Cadence
// engine: speech blocks, word and syllable repetitions, windowed pace
// consistency, and the composite fluency score.
//
// The package runs on the same word timings as the habit analyzers but keeps
// its own thresholds throughout — block detection is not strategic-pause
// classification, and windowed pace is not phrase-rate variability. The two
// systems answer different questions (clinical fluency vs coaching habits)
// and must not be merged silently.
//
// Like the habit analyzers, everything here is pure and synchronous and
// degrades to defaults instead of returning errors.
package fluency

import "github.com/podiumlabs/cadence/pkg/speech"

// Fluency score penalties.
const (
	blockPenalty       = 5
	severeBlockPenalty = 10
	repetitionPenalty  = 8
	highVariancePace   = 15
	mildVariancePace   = 8
)

// maxRecommendations caps the fluency recommendation list.
const maxRecommendations = 4

// Report is the complete stuttering/fluency profile for one recording.
type Report struct {
	Blocks        []Block `json:"blocks"`
	BlockSeverity string  `json:"blockSeverity"`

	Repetitions []Repetition `json:"repetitions"`

	Pace PaceVariation `json:"pace"`

	// Score is the 0–100 fluency score; higher means fewer stutter patterns.
	Score float64 `json:"score"`

	// OverallSeverity grades the score: significant, moderate, mild, minimal.
	OverallSeverity string `json:"overallSeverity"`

	// Recommendations holds up to four targeted suggestions, never empty.
	Recommendations []string `json:"recommendations"`
}

// GenerateReport builds the fluency profile from the word timings and the
// transcript text.
func GenerateReport(transcript string, words []speech.WordTiming) *Report {
	rep := &Report{
		Blocks:      DetectBlocks(words),
		Repetitions: DetectRepetitions(words, transcript),
		Pace:        AnalyzePaceConsistency(words),
	}
	rep.BlockSeverity = blockSeverity(rep.Blocks)

	score := 100.0
	for _, b := range rep.Blocks {
		if b.IsSevere {
			score -= severeBlockPenalty
		} else {
			score -= blockPenalty
		}
	}
	score -= float64(len(rep.Repetitions)) * repetitionPenalty
	switch {
	case rep.Pace.CV > highlyVariableCV:
		score -= highVariancePace
	case rep.Pace.CV > somewhatVariableCV:
		score -= mildVariancePace
	}
	if score < 0 {
		score = 0
	}
	rep.Score = score

	switch {
	case score < 50:
		rep.OverallSeverity = "significant"
	case score < 70:
		rep.OverallSeverity = "moderate"
	case score < 85:
		rep.OverallSeverity = "mild"
	default:
		rep.OverallSeverity = "minimal"
	}

	rep.Recommendations = buildRecommendations(rep)
	return rep
}

// buildRecommendations derives up to four suggestions from the block
// severity, repetition count, and pace profile. When nothing was flagged it
// returns a single encouraging note so the list is never empty.
func buildRecommendations(rep *Report) []string {
	var recs []string

	switch rep.BlockSeverity {
	case "high":
		recs = append(recs,
			"Long silent blocks interrupted your speech often. Practice easing into the first sound of a word with a gentle exhale.")
	case "moderate":
		recs = append(recs,
			"A few silent blocks appeared. Slowing your overall rate slightly can reduce them.")
	}

	if len(rep.Repetitions) > 2 {
		recs = append(recs,
			"Repeated words and sounds came up several times. Pausing to plan the next phrase reduces repetitions.")
	}

	switch {
	case rep.Pace.Consistency == "highly variable":
		recs = append(recs,
			"Your pace swung widely between passages. Practicing with a steady rhythm will smooth it out.")
	case rep.Pace.AverageWPM > 180:
		recs = append(recs,
			"Your average pace was very fast. Slowing down gives each word room and reduces stumbles.")
	case rep.Pace.AverageWPM > 0 && rep.Pace.AverageWPM < 100 && rep.Pace.Consistency != "unknown":
		recs = append(recs,
			"Your average pace was quite slow. A slightly brisker rate keeps listeners engaged.")
	}

	if len(recs) == 0 {
		recs = append(recs, "Fluent delivery — no stutter patterns stood out. Keep it up.")
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
