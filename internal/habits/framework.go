package habits

import "strings"

// FrameworkVocab holds the marker phrases for each part of the
// Context→Core→Connect answer structure. Matching is case-insensitive
// substring containment against the whole transcript.
type FrameworkVocab struct {
	Context []string
	Core    []string
	Connect []string
}

// DefaultFrameworkVocab returns the built-in Context→Core→Connect markers.
func DefaultFrameworkVocab() FrameworkVocab {
	return FrameworkVocab{
		Context: []string{
			"the context", "some background", "to set the stage",
			"let me start with", "the situation", "at the time", "originally",
		},
		Core: []string{
			"the core", "the main point", "the key thing", "most importantly",
			"the heart of", "fundamentally", "what really matters",
		},
		Connect: []string{
			"this connects", "this relates", "which means", "the takeaway",
			"what this means", "in other words", "bringing it back",
		},
	}
}

// FrameworkResult reports Context→Core→Connect structure detection.
type FrameworkResult struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`

	HasContext bool `json:"hasContext"`
	HasCore    bool `json:"hasCore"`
	HasConnect bool `json:"hasConnect"`

	// PartsFound is how many of the three parts were detected (0–3).
	PartsFound int `json:"partsFound"`
}

// DetectFramework checks the transcript for Context→Core→Connect structure
// using the default markers.
func DetectFramework(transcript string) FrameworkResult {
	return DetectFrameworkIn(transcript, DefaultFrameworkVocab())
}

// DetectFrameworkIn is [DetectFramework] with an explicit marker vocabulary.
// The score is the fraction of parts found, scaled to 0–100.
func DetectFrameworkIn(transcript string, vocab FrameworkVocab) FrameworkResult {
	lower := strings.ToLower(transcript)

	result := FrameworkResult{
		HasContext: containsAny(lower, vocab.Context),
		HasCore:    containsAny(lower, vocab.Core),
		HasConnect: containsAny(lower, vocab.Connect),
	}
	for _, found := range []bool{result.HasContext, result.HasCore, result.HasConnect} {
		if found {
			result.PartsFound++
		}
	}
	result.Score = float64(result.PartsFound) / 3 * 100

	switch result.PartsFound {
	case 3:
		result.Feedback = "Full Context→Core→Connect structure — your answer had a clear arc."
	case 2:
		result.Feedback = "Good structure — just add the " + missingFrameworkPart(result) + " part to complete the arc."
	case 1:
		result.Feedback = "Try the Context→Core→Connect structure: set the scene, make your point, then tie it back."
	default:
		result.Feedback = "No clear structure detected. Open with context, state your core point, " +
			"then connect it back to why it matters — the Context→Core→Connect framework."
	}

	return result
}

// missingFrameworkPart names the single absent part when exactly two were
// found.
func missingFrameworkPart(r FrameworkResult) string {
	switch {
	case !r.HasContext:
		return "Context"
	case !r.HasCore:
		return "Core"
	default:
		return "Connect"
	}
}

// containsAny reports whether s contains any of the lower-cased phrases.
func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
