package fluency

import (
	"math"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// paceWindowSec is the fixed wall-clock window width used for pace
// bucketing, measured from recording start. This windowed computation is
// independent of the phrase-based rate variability in the habits package.
const paceWindowSec = 10.0

// Pace-consistency bands over the coefficient of variation.
const (
	highlyVariableCV   = 40.0
	somewhatVariableCV = 25.0
)

// minPaceWords is the minimum word count for a pace profile.
const minPaceWords = 5

// PaceVariation reports speaking-rate consistency over fixed time windows.
type PaceVariation struct {
	// AverageWPM is the mean rate over windows that contained speech.
	AverageWPM float64 `json:"averageWpm"`

	// CV is the coefficient of variation over non-empty windows, as a
	// percentage.
	CV float64 `json:"cv"`

	// Consistency is "consistent", "somewhat variable", "highly variable",
	// or "unknown" when there were too few words to measure.
	Consistency string `json:"consistency"`

	// WindowWPMs holds the local rate of every non-empty window, in order.
	WindowWPMs []float64 `json:"windowWpms"`
}

// AnalyzePaceConsistency buckets words into fixed ten-second windows from
// recording start and measures how much the local rate varies between them.
func AnalyzePaceConsistency(words []speech.WordTiming) PaceVariation {
	if len(words) < minPaceWords {
		return PaceVariation{Consistency: "unknown", WindowWPMs: []float64{}}
	}

	lastWindow := int(words[len(words)-1].Start / paceWindowSec)
	counts := make([]int, lastWindow+1)
	for _, w := range words {
		counts[int(w.Start/paceWindowSec)]++
	}

	var rates []float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		rates = append(rates, float64(c)*60/paceWindowSec)
	}

	pv := PaceVariation{
		AverageWPM: meanOf(rates),
		CV:         cvOf(rates),
		WindowWPMs: rates,
	}
	switch {
	case pv.CV > highlyVariableCV:
		pv.Consistency = "highly variable"
	case pv.CV > somewhatVariableCV:
		pv.Consistency = "somewhat variable"
	default:
		pv.Consistency = "consistent"
	}
	return pv
}

// meanOf returns the arithmetic mean of vs, or 0 for an empty slice.
func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// cvOf returns the population coefficient of variation of vs as a
// percentage, or 0 when the mean is 0 or fewer than two values exist.
func cvOf(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	m := meanOf(vs)
	if m == 0 {
		return 0
	}
	var sq float64
	for _, v := range vs {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq/float64(len(vs))) / m * 100
}
