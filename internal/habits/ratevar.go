package habits

import (
	"github.com/podiumlabs/cadence/pkg/speech"
)

// Phrase segmentation and rate thresholds. The phrase-break gap is deliberately
// independent of the pause buckets in pauses.go: segmentation needs a single
// cut point, not a coaching classification.
const (
	phraseBreakGap    = 0.4 // seconds of silence that end a phrase
	minPhraseWords    = 2
	minPhraseDuration = 0.2   // seconds
	maxPlausibleWPM   = 300.0 // faster local rates are treated as timing noise
)

// minRateWords is the minimum word count for a rate-variability profile.
const minRateWords = 10

// minPhraseRates is the minimum number of valid phrase rates required before
// variability statistics are meaningful.
const minPhraseRates = 3

// maxPhrasesShown caps the number of phrase segments returned for display.
const maxPhrasesShown = 20

// PhraseRate is one measured phrase segment with its local speaking rate.
type PhraseRate struct {
	StartSec  float64 `json:"start"`
	EndSec    float64 `json:"end"`
	WordCount int     `json:"wordCount"`
	WPM       float64 `json:"wpm"`
}

// RateResult reports phrase-level speaking-rate variability.
type RateResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	MeanWPM float64 `json:"meanWpm"`
	MinWPM  float64 `json:"minWpm"`
	MaxWPM  float64 `json:"maxWpm"`
	StdDev  float64 `json:"stdDev"`

	// CV is the coefficient of variation of phrase rates, as a percentage.
	CV float64 `json:"cv"`

	// HasGoodVariation is true when CV falls in the 15–40% band.
	HasGoodVariation bool `json:"hasGoodVariation"`

	// Phrases lists up to twenty measured phrase segments for display.
	Phrases []PhraseRate `json:"phrases"`
}

// AnalyzeRateVariability segments the word timings into phrases and scores
// how much the local speaking rate varies between them. Fewer than ten words
// yields the neutral default; fewer than three measurable phrases falls back
// to a whole-transcript estimate.
func AnalyzeRateVariability(words []speech.WordTiming) RateResult {
	if len(words) < minRateWords {
		return RateResult{
			Score:    50,
			Feedback: "Not enough speech to measure pace variety yet.",
			Phrases:  []PhraseRate{},
		}
	}

	phrases := measurePhraseRates(words)

	if len(phrases) < minPhraseRates {
		span := words[len(words)-1].End - words[0].Start
		var wpm float64
		if span > 0 {
			wpm = float64(len(words)) / span * 60
		}
		return RateResult{
			Score:    70,
			Feedback: "Phrasing was too continuous to measure local pace — overall rate only.",
			MeanWPM:  wpm,
			MinWPM:   wpm,
			MaxWPM:   wpm,
			Phrases:  phrases,
		}
	}

	rates := make([]float64, len(phrases))
	minRate, maxRate := phrases[0].WPM, phrases[0].WPM
	for i, p := range phrases {
		rates[i] = p.WPM
		if p.WPM < minRate {
			minRate = p.WPM
		}
		if p.WPM > maxRate {
			maxRate = p.WPM
		}
	}

	result := RateResult{
		MeanWPM: mean(rates),
		MinWPM:  minRate,
		MaxWPM:  maxRate,
		StdDev:  stdDev(rates),
		Phrases: phrases,
	}
	result.CV = coefficientOfVariation(rates)
	result.HasGoodVariation = result.CV >= 15 && result.CV <= 40

	// The score does not distinguish too-monotone from too-erratic; only the
	// feedback text does.
	if result.HasGoodVariation {
		result.Score = 95
	} else {
		result.Score = 60
	}

	switch {
	case result.CV < 15:
		result.Feedback = "Your pace barely changes. Vary it — speed up through detail, slow down on key points."
	case result.CV > 40:
		result.Feedback = "Your pace is erratic. Aim for deliberate shifts rather than constant swings."
	default:
		result.Feedback = "Nice pace variety — the changes in speed give your delivery shape."
	}

	if len(result.Phrases) > maxPhrasesShown {
		result.Phrases = result.Phrases[:maxPhrasesShown]
	}

	return result
}

// measurePhraseRates splits words into maximal runs whose internal gaps never
// exceed phraseBreakGap and returns local rates for runs that are long enough
// to measure. Implausibly fast rates are discarded as timing noise.
func measurePhraseRates(words []speech.WordTiming) []PhraseRate {
	var phrases []PhraseRate

	flush := func(start, end int) {
		count := end - start
		if count < minPhraseWords {
			return
		}
		duration := words[end-1].End - words[start].Start
		if duration < minPhraseDuration {
			return
		}
		wpm := float64(count) / duration * 60
		if wpm >= maxPlausibleWPM {
			return
		}
		phrases = append(phrases, PhraseRate{
			StartSec:  words[start].Start,
			EndSec:    words[end-1].End,
			WordCount: count,
			WPM:       wpm,
		})
	}

	start := 0
	for i := 1; i < len(words); i++ {
		if words[i].Start-words[i-1].End > phraseBreakGap {
			flush(start, i)
			start = i
		}
	}
	flush(start, len(words))

	if phrases == nil {
		phrases = []PhraseRate{}
	}
	return phrases
}
