// Package habits implements the per-habit delivery analyzers of the Cadence
// engine: filler words, strategic pausing, hedging, rate variability, volume,
// thought completion, framework structure, and analogy use.
//
// Every analyzer is a pure function over its slice of the recording input.
// None of them share state or depend on another's output, so callers may run
// them in any order, or concurrently, with identical results. Analyzers never
// return errors: missing or insufficient input degrades to a neutral default
// score plus an explanatory feedback string.
//
// All scores are on a 0–100 scale.
package habits

import (
	"regexp"
	"sort"
	"strings"
)

// PhraseCount pairs a matched vocabulary phrase with its occurrence count.
type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// PhraseSet is a phrase vocabulary with its match patterns compiled up front.
// The phrase analyzers run on every recording, so the regexes are built once
// when the vocabulary is assembled, never per call.
type PhraseSet struct {
	entries []phraseEntry
}

type phraseEntry struct {
	phrase  string
	pattern *regexp.Regexp
}

// CompilePhrases builds a [PhraseSet] from a list of phrases. Each phrase
// matches case-insensitively at word boundaries, tolerating any whitespace
// run between its words.
func CompilePhrases(phrases []string) PhraseSet {
	entries := make([]phraseEntry, len(phrases))
	for i, p := range phrases {
		entries[i] = phraseEntry{
			phrase:  strings.ToLower(p),
			pattern: phrasePattern(p),
		}
	}
	return PhraseSet{entries: entries}
}

// Phrases returns the set's phrases, lower-cased, in insertion order.
func (s PhraseSet) Phrases() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.phrase
	}
	return out
}

// phrasePattern compiles a case-insensitive, whitespace-tolerant,
// word-bounded regex for one vocabulary phrase.
func phrasePattern(phrase string) *regexp.Regexp {
	words := strings.Fields(strings.ToLower(phrase))
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\s+`) + `\b`)
}

// clampScore bounds a score to the 0–100 scale.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// tokenize splits a transcript into lower-cased whitespace tokens with
// trailing punctuation removed. Leading punctuation is preserved — the
// transcription collaborators only attach punctuation at token ends.
func tokenize(transcript string) []string {
	fields := strings.Fields(transcript)
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.TrimRight(strings.ToLower(f), ".,!?;:'\"()-")
	}
	return tokens
}

// normalizeToken lower-cases a single word and strips punctuation from both
// ends. Used where tokens are compared for identity rather than looked up in
// a vocabulary.
func normalizeToken(w string) string {
	return strings.Trim(strings.ToLower(w), ".,!?;:'\"()-")
}

// sortPhraseCounts orders counts descending, breaking ties alphabetically so
// repeated runs produce identical output.
func sortPhraseCounts(counts []PhraseCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Phrase < counts[j].Phrase
	})
}
