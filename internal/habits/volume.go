package habits

import (
	"github.com/podiumlabs/cadence/pkg/speech"
)

// Volume analysis thresholds, on the collaborator's 0–100 loudness scale.
const (
	quietVolume     = 15.0 // below this average the speaker is barely audible
	idealVolumeLow  = 25.0
	idealVolumeHigh = 60.0
	loudVolume      = 80.0 // above this average the capture may be clipping
)

// minVolumeSamples is the minimum trace length for a volume profile.
const minVolumeSamples = 5

// trailOffSplit is the fraction of the trace treated as the "body" when
// checking for trailing off; the remainder is the tail.
const trailOffSplit = 0.8

// VolumeResult reports loudness level, consistency, and trail-off.
type VolumeResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	// Average is the mean loudness over the whole trace.
	Average float64 `json:"average"`

	// Variation is stdDev/average as a percentage (0 when average is 0).
	Variation float64 `json:"variation"`

	// HasTrailingOff is true when the final fifth of the recording is
	// markedly quieter than the body.
	HasTrailingOff bool `json:"hasTrailingOff"`

	// Levels is the raw loudness history, returned for charting.
	Levels []float64 `json:"levels"`
}

// AnalyzeVolumePatterns scores loudness level and consistency over the
// recording's volume trace. Fewer than five samples yields the neutral
// default.
func AnalyzeVolumePatterns(history []speech.VolumeSample) VolumeResult {
	if len(history) < minVolumeSamples {
		return VolumeResult{
			Score:    50,
			Feedback: "Not enough volume data to analyze yet.",
			Levels:   []float64{},
		}
	}

	levels := make([]float64, len(history))
	for i, s := range history {
		levels[i] = s.Level
	}

	result := VolumeResult{
		Average:   mean(levels),
		Variation: coefficientOfVariation(levels),
		Levels:    levels,
	}

	split := int(trailOffSplit * float64(len(levels)))
	avgBody := mean(levels[:split])
	avgTail := mean(levels[split:])
	result.HasTrailingOff = avgBody > quietVolume && avgTail < avgBody*0.6

	score := 70.0
	switch {
	case result.Average < quietVolume:
		score = 40 + result.Average
	case result.Average >= idealVolumeLow && result.Average <= idealVolumeHigh:
		score = 90
	case result.Average > loudVolume:
		score = 75
	}
	if result.HasTrailingOff {
		score -= 15
	}
	if result.Variation > 50 {
		score -= 10
	}
	result.Score = clampScore(score)

	switch {
	case result.Average < quietVolume:
		result.Feedback = "You're speaking very quietly — project more so every word is audible."
	case result.HasTrailingOff:
		result.Feedback = "Your volume trails off toward the end. Keep your energy up through the final sentence."
	case result.Variation > 50:
		result.Feedback = "Your volume swings a lot. Aim for a steadier level with deliberate emphasis."
	default:
		result.Feedback = "Solid, consistent volume throughout."
	}

	return result
}
