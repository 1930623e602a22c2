package fluency

import (
	"regexp"
	"strings"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// RepetitionType distinguishes the two repetition detectors.
type RepetitionType string

const (
	// RepetitionWord is a run of identical consecutive word tokens.
	RepetitionWord RepetitionType = "word"

	// RepetitionSyllable is a textual stutter pattern such as "b-b-ball".
	RepetitionSyllable RepetitionType = "syllable"
)

// Repetition is one detected repetition event.
type Repetition struct {
	// Word is the repeated token, or the full matched text for syllable
	// stutters.
	Word string `json:"word"`

	// Count is how many times the token (or onset) was produced.
	Count int `json:"count"`

	// TimestampSec is when the repetition started. Syllable repetitions are
	// matched on the flat transcript text and carry no real timestamp:
	// TimestampSec is 0 and HasTimestamp is false for them.
	TimestampSec float64 `json:"timestamp"`

	// HasTimestamp is false when no word-level timing could be attributed.
	HasTimestamp bool `json:"hasTimestamp"`

	Type RepetitionType `json:"type"`
}

// syllableStutter matches a stutter onset: one letter, repeated with hyphens,
// finished by a word ("b-b-ball"). RE2 has no backreferences, so the
// same-letter constraint is verified separately in isStutterOnset.
var syllableStutter = regexp.MustCompile(`\b[A-Za-z](?:-[A-Za-z])*-[A-Za-z]+\b`)

// DetectRepetitions finds word-level and syllable-level repetitions.
//
// Word repetitions are runs of two or more identical consecutive tokens
// (case-insensitive, punctuation-stripped) in the timed word sequence.
// Syllable repetitions are matched textually across the whole transcript.
func DetectRepetitions(words []speech.WordTiming, transcript string) []Repetition {
	var reps []Repetition

	// Word-level: greedy grouping of consecutive duplicates.
	for i := 0; i < len(words); {
		token := normalizeWord(words[i].Word)
		j := i + 1
		for j < len(words) && token != "" && normalizeWord(words[j].Word) == token {
			j++
		}
		if run := j - i; run >= 2 {
			reps = append(reps, Repetition{
				Word:         token,
				Count:        run,
				TimestampSec: words[i].Start,
				HasTimestamp: true,
				Type:         RepetitionWord,
			})
		}
		i = j
	}

	// Syllable-level: textual stutter onsets.
	for _, match := range syllableStutter.FindAllString(transcript, -1) {
		if !isStutterOnset(match) {
			continue
		}
		reps = append(reps, Repetition{
			Word:  match,
			Count: strings.Count(match, "-") + 1,
			Type:  RepetitionSyllable,
		})
	}

	return reps
}

// isStutterOnset reports whether a hyphenated match is a genuine stutter:
// every leading segment must be a single letter equal to the final word's
// first letter, case-insensitively.
func isStutterOnset(match string) bool {
	parts := strings.Split(strings.ToLower(match), "-")
	if len(parts) < 2 {
		return false
	}
	final := parts[len(parts)-1]
	if len(final) < 2 {
		return false
	}
	for _, p := range parts[:len(parts)-1] {
		if len(p) != 1 || p[0] != final[0] {
			return false
		}
	}
	return true
}

// normalizeWord lower-cases a token and strips surrounding punctuation.
func normalizeWord(w string) string {
	return strings.Trim(strings.ToLower(w), ".,!?;:'\"()-")
}
