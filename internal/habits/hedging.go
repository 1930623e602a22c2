package habits

import (
	"strings"
)

// defaultHedgeSet holds the built-in hedge patterns, compiled once at
// package init.
var defaultHedgeSet = CompilePhrases(DefaultHedgePhrases())

// DefaultHedgePhrases returns the built-in list of confidence-undermining
// phrases checked by [DetectHedging].
func DefaultHedgePhrases() []string {
	return []string{
		"kind of", "sort of", "i think maybe", "i think", "i guess",
		"maybe", "probably", "possibly", "perhaps", "i feel like",
		"it seems like", "i'm not sure", "i suppose", "a little bit",
		"i could be wrong", "to be honest",
	}
}

// directReplacements suggests a declarative rewording for the most frequent
// hedges. Phrases without an entry fall back to generic advice.
var directReplacements = map[string]string{
	"kind of":          "it is",
	"sort of":          "it is",
	"i think maybe":    "I recommend",
	"i think":          "I'm confident that",
	"i guess":          "I know",
	"maybe":            "definitely",
	"probably":         "will",
	"possibly":         "can",
	"perhaps":          "certainly",
	"i feel like":      "I've found that",
	"it seems like":    "it is",
	"i'm not sure":     "here's what I'd do",
	"i suppose":        "I expect",
	"a little bit":     "significantly",
	"i could be wrong": "in my experience",
	"to be honest":     "",
}

// HedgeResult reports hedging-phrase usage and the resulting declarative
// confidence score.
type HedgeResult struct {
	// Score is the declarative score: higher means more direct speech.
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	// Count is the total number of hedge hits.
	Count int `json:"count"`

	// Phrases lists each matched hedge with its count, most frequent first.
	Phrases []PhraseCount `json:"phrases"`
}

// DetectHedging counts hedging phrases in transcript with the default list.
func DetectHedging(transcript string) HedgeResult {
	return DetectHedgingIn(transcript, defaultHedgeSet)
}

// DetectHedgingIn is [DetectHedging] with an explicit phrase set. Matching
// is case-insensitive and tolerates any run of whitespace between phrase
// words. Overlapping phrases (e.g. "i think" inside "i think maybe") each
// count independently.
func DetectHedgingIn(transcript string, phrases PhraseSet) HedgeResult {
	result := HedgeResult{Phrases: []PhraseCount{}}

	wordCount := len(strings.Fields(transcript))
	for _, e := range phrases.entries {
		n := len(e.pattern.FindAllStringIndex(transcript, -1))
		if n == 0 {
			continue
		}
		result.Count += n
		result.Phrases = append(result.Phrases, PhraseCount{Phrase: e.phrase, Count: n})
	}
	sortPhraseCounts(result.Phrases)

	score := 100.0
	if wordCount > 0 {
		score -= float64(result.Count) / float64(wordCount) * 400
	}
	score -= float64(result.Count) * 3
	result.Score = clampScore(score)

	switch {
	case result.Count == 0:
		result.Feedback = "Declarative and direct — no hedging detected."
	case result.Count <= 2:
		result.Feedback = "Only minor hedging. Your statements mostly land with confidence."
	case result.Count <= 5:
		top := result.Phrases[0].Phrase
		if repl := directReplacements[top]; repl != "" {
			result.Feedback = "You lean on \"" + top + "\" — try \"" + repl + "\" instead to sound more decisive."
		} else {
			result.Feedback = "You lean on \"" + top + "\" — drop it and state the point directly."
		}
	default:
		result.Feedback = "Frequent hedging is softening your message. Use more declarative statements."
	}

	return result
}
