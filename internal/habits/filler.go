package habits

import "strings"

// FillerVocab is the vocabulary consulted by [DetectFillerWords]. Single
// words are matched token-by-token; multi-word phrases are matched by
// sequential non-overlapping substring search over the whole transcript.
type FillerVocab struct {
	Single []string
	Multi  []string
}

// DefaultFillerVocab returns the built-in filler vocabulary.
func DefaultFillerVocab() FillerVocab {
	return FillerVocab{
		Single: []string{
			"um", "uh", "er", "ah", "like", "basically", "actually",
			"literally", "honestly", "so", "well", "right", "okay",
		},
		Multi: []string{"you know", "i mean"},
	}
}

// FillerResult reports filler-word usage across a transcript.
type FillerResult struct {
	// Count is the total number of filler hits, single and multi-word.
	Count int `json:"count"`

	// Occurrences lists each matched filler with its count, most frequent
	// first.
	Occurrences []PhraseCount `json:"occurrences"`

	// Positions holds the word index of every single-word filler hit, in
	// transcript order. Multi-word hits carry no word position.
	Positions []int `json:"positions"`
}

// DetectFillerWords counts filler words in transcript using the default
// vocabulary. An empty transcript yields an all-zero result.
func DetectFillerWords(transcript string) FillerResult {
	return DetectFillerWordsIn(transcript, DefaultFillerVocab())
}

// DetectFillerWordsIn is [DetectFillerWords] with an explicit vocabulary.
// Single-word fillers match a lower-cased token exactly after trailing
// punctuation is stripped. Multi-word fillers are counted by scanning the
// lower-cased transcript left to right without overlap.
func DetectFillerWordsIn(transcript string, vocab FillerVocab) FillerResult {
	result := FillerResult{
		Occurrences: []PhraseCount{},
		Positions:   []int{},
	}
	if strings.TrimSpace(transcript) == "" {
		return result
	}

	single := make(map[string]struct{}, len(vocab.Single))
	for _, w := range vocab.Single {
		single[strings.ToLower(w)] = struct{}{}
	}

	counts := make(map[string]int)

	for i, token := range tokenize(transcript) {
		if _, ok := single[token]; !ok {
			continue
		}
		counts[token]++
		result.Count++
		result.Positions = append(result.Positions, i)
	}

	lower := strings.ToLower(transcript)
	for _, phrase := range vocab.Multi {
		p := strings.ToLower(phrase)
		n := countNonOverlapping(lower, p)
		if n > 0 {
			counts[p] += n
			result.Count += n
		}
	}

	for phrase, n := range counts {
		result.Occurrences = append(result.Occurrences, PhraseCount{Phrase: phrase, Count: n})
	}
	sortPhraseCounts(result.Occurrences)

	return result
}

// countNonOverlapping counts left-to-right non-overlapping occurrences of
// substr in s.
func countNonOverlapping(s, substr string) int {
	if substr == "" {
		return 0
	}
	count := 0
	for {
		idx := strings.Index(s, substr)
		if idx < 0 {
			return count
		}
		count++
		s = s[idx+len(substr):]
	}
}
