package habits

import (
	"regexp"
	"strings"
)

// Sentence-length thresholds, in words.
const (
	longSentenceWords     = 25
	veryLongSentenceWords = 40
	shortAvgSentenceWords = 5
)

// minCompletionChars is the minimum transcript length for a thought-completion
// profile.
const minCompletionChars = 20

// sentenceSplit matches runs of sentence-ending punctuation.
var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// CompletionResult reports sentence-length structure and rambling tendency.
type CompletionResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	SentenceCount int `json:"sentenceCount"`

	// AvgWords is the mean sentence length in words.
	AvgWords float64 `json:"avgWords"`

	// LongCount is the number of sentences over 25 words; VeryLongCount the
	// number over 40. A 45-word sentence increments both.
	LongCount     int `json:"longCount"`
	VeryLongCount int `json:"veryLongCount"`
}

// AnalyzeThoughtCompletion scores sentence discipline: long, unbroken
// sentences suggest rambling, very short ones an unfinished thought.
// Transcripts under twenty characters yield the neutral default.
func AnalyzeThoughtCompletion(transcript string) CompletionResult {
	if len(transcript) < minCompletionChars {
		return CompletionResult{
			Score:    50,
			Feedback: "Not enough speech to judge sentence structure yet.",
		}
	}

	var lengths []float64
	result := CompletionResult{}
	for _, raw := range sentenceSplit.Split(transcript, -1) {
		n := len(strings.Fields(raw))
		if n == 0 {
			continue
		}
		result.SentenceCount++
		lengths = append(lengths, float64(n))
		if n > longSentenceWords {
			result.LongCount++
		}
		if n > veryLongSentenceWords {
			result.VeryLongCount++
		}
	}
	result.AvgWords = mean(lengths)

	result.Score = clampScore(90 - float64(result.LongCount)*5 - float64(result.VeryLongCount)*10)

	switch {
	case result.VeryLongCount > 0:
		result.Feedback = "Some sentences run past forty words — break them up so each thought finishes cleanly."
	case result.LongCount > 2:
		result.Feedback = "Several long sentences in a row. Finish each thought sooner before starting the next."
	case result.AvgWords < shortAvgSentenceWords:
		result.Feedback = "Your sentences are very short — expand on your points to complete each thought."
	default:
		result.Feedback = "Well-formed sentences — your thoughts come through complete."
	}

	return result
}
