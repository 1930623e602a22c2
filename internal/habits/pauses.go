package habits

import (
	"sort"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// Pause classification thresholds, in seconds. A gap below minPauseGap is
// ordinary articulation spacing and is not recorded at all. These thresholds
// are intentionally distinct from the block thresholds in the fluency
// package — strategic pausing is a coaching habit, blocks are a clinical
// fluency indicator.
const (
	minPauseGap       = 0.3
	strategicPauseGap = 0.8
	tooLongPauseGap   = 4.0
)

// minPauseWords is the minimum word count needed for a meaningful pause
// profile.
const minPauseWords = 5

// topPausesShown caps the number of longest pauses returned for display.
const topPausesShown = 5

// PauseKind labels one recorded pause bucket.
type PauseKind string

const (
	PauseShort     PauseKind = "short"
	PauseStrategic PauseKind = "strategic"
	PauseTooLong   PauseKind = "too_long"
)

// Pause is one recorded inter-word gap.
type Pause struct {
	// WordIndex is the index of the word that follows the gap.
	WordIndex int `json:"wordIndex"`

	// Duration is the gap length in seconds.
	Duration float64 `json:"duration"`

	// Kind is the threshold bucket the gap falls into.
	Kind PauseKind `json:"kind"`
}

// PauseResult reports strategic-pause usage.
type PauseResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	ShortCount     int `json:"shortCount"`
	StrategicCount int `json:"strategicCount"`
	TooLongCount   int `json:"tooLongCount"`
	TotalPauses    int `json:"totalPauses"`

	// TopPauses lists the longest recorded pauses, up to five, longest first.
	TopPauses []Pause `json:"topPauses"`
}

// AnalyzeStrategicPauses classifies inter-word gaps into short, strategic,
// and too-long buckets and scores pause usage. Fewer than five words yields
// the neutral default.
func AnalyzeStrategicPauses(words []speech.WordTiming) PauseResult {
	if len(words) < minPauseWords {
		return PauseResult{
			Score:     50,
			Feedback:  "Not enough data to analyze pausing yet — try a longer answer.",
			TopPauses: []Pause{},
		}
	}

	var pauses []Pause
	for i := 1; i < len(words); i++ {
		gap := words[i].Start - words[i-1].End
		if gap < minPauseGap {
			continue
		}
		p := Pause{WordIndex: i, Duration: gap}
		switch {
		case gap >= tooLongPauseGap:
			p.Kind = PauseTooLong
		case gap >= strategicPauseGap:
			p.Kind = PauseStrategic
		default:
			p.Kind = PauseShort
		}
		pauses = append(pauses, p)
	}

	result := PauseResult{TotalPauses: len(pauses)}
	for _, p := range pauses {
		switch p.Kind {
		case PauseShort:
			result.ShortCount++
		case PauseStrategic:
			result.StrategicCount++
		case PauseTooLong:
			result.TooLongCount++
		}
	}

	score := 70.0
	strategicRatio := float64(result.StrategicCount) / float64(len(words))
	if strategicRatio > 0.05 {
		score += 15
	}
	// Both adjustments can apply: a ratio above 0.15 lands at net +10,
	// a narrow "slightly too choppy but still good" band.
	if strategicRatio > 0.15 {
		score -= 5
	}
	score -= 10 * float64(result.TooLongCount)
	if len(pauses) == 0 {
		score = 30
	}
	result.Score = clampScore(score)

	switch {
	case len(pauses) == 0:
		result.Feedback = "You spoke without any noticeable pauses. Slow down and let key points land."
	case result.StrategicCount == 0:
		result.Feedback = "Your pauses are all very brief. Hold a pause a little longer for emphasis."
	case result.TooLongCount > 1:
		result.Feedback = "Several pauses ran past four seconds — those read as awkward silences rather than emphasis."
	case result.ShortCount > 3*result.StrategicCount:
		result.Feedback = "Mostly short pauses. Stretch a few of them into deliberate, strategic beats."
	default:
		result.Feedback = "Good pause discipline — you're using silence for emphasis."
	}

	sorted := make([]Pause, len(pauses))
	copy(sorted, pauses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	if len(sorted) > topPausesShown {
		sorted = sorted[:topPausesShown]
	}
	result.TopPauses = sorted

	return result
}
