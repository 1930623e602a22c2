package habits

// defaultAnalogySet holds the built-in analogy-marker patterns, compiled
// once at package init.
var defaultAnalogySet = CompilePhrases(DefaultAnalogyMarkers())

// DefaultAnalogyMarkers returns the built-in comparative/metaphorical marker
// phrases checked by [DetectAnalogies].
func DefaultAnalogyMarkers() []string {
	return []string{
		"like a", "as if", "imagine", "picture this", "think of it as",
		"similar to", "it's like", "as though", "reminds me of",
		"in the same way", "metaphorically", "just like",
	}
}

// AnalogyResult reports comparative and metaphorical language use.
type AnalogyResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	// Count is the total number of analogy-marker hits.
	Count int `json:"count"`

	// Markers lists each matched marker with its count, most frequent first.
	Markers []PhraseCount `json:"markers"`
}

// DetectAnalogies counts analogy markers in transcript with the default list.
func DetectAnalogies(transcript string) AnalogyResult {
	return DetectAnalogiesIn(transcript, defaultAnalogySet)
}

// DetectAnalogiesIn is [DetectAnalogies] with an explicit marker set.
// Matching is case-insensitive and whitespace-tolerant. The score rewards
// analogy use with diminishing returns above five hits.
func DetectAnalogiesIn(transcript string, markers PhraseSet) AnalogyResult {
	result := AnalogyResult{Markers: []PhraseCount{}}

	for _, e := range markers.entries {
		n := len(e.pattern.FindAllStringIndex(transcript, -1))
		if n == 0 {
			continue
		}
		result.Count += n
		result.Markers = append(result.Markers, PhraseCount{Phrase: e.phrase, Count: n})
	}
	sortPhraseCounts(result.Markers)

	switch {
	case result.Count == 0:
		result.Score = 50
	case result.Count > 5:
		result.Score = 90
	case result.Count >= 3:
		result.Score = 95
	case result.Count >= 2:
		result.Score = 85
	default:
		result.Score = 70
	}

	switch {
	case result.Count == 0:
		result.Feedback = "Try an analogy — comparing an idea to something familiar makes it stick."
	case result.Count <= 2:
		result.Feedback = "Nice use of comparison. Keep reaching for analogies on your key points."
	default:
		result.Feedback = "Excellent use of analogies — your explanations paint a picture."
	}

	return result
}
