// Package lexicon assembles the vocabularies consulted by the habit
// analyzers and validates user-supplied extensions from configuration.
//
// Extensions are screened for near duplicates with Jaro-Winkler string
// similarity so that a config typo like "basicly" doesn't silently create a
// second vocabulary entry that never matches alongside "basically".
package lexicon

import (
	"fmt"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/podiumlabs/cadence/internal/habits"
)

// nearDuplicateThreshold is the Jaro-Winkler similarity at or above which a
// new entry is treated as a near duplicate of an existing one.
const nearDuplicateThreshold = 0.92

// Vocabularies bundles every vocabulary the habit analyzers consult. The
// phrase sets carry their patterns precompiled, so assembling a Vocabularies
// value pays the regex cost once for the lifetime of a generator.
type Vocabularies struct {
	Fillers        habits.FillerVocab
	Hedges         habits.PhraseSet
	Framework      habits.FrameworkVocab
	AnalogyMarkers habits.PhraseSet
}

// Default returns the built-in vocabularies.
func Default() Vocabularies {
	return Vocabularies{
		Fillers:        habits.DefaultFillerVocab(),
		Hedges:         habits.CompilePhrases(habits.DefaultHedgePhrases()),
		Framework:      habits.DefaultFrameworkVocab(),
		AnalogyMarkers: habits.CompilePhrases(habits.DefaultAnalogyMarkers()),
	}
}

// Extensions holds user-supplied vocabulary additions, typically from the
// lexicon section of the config file.
type Extensions struct {
	// Fillers may contain single words or multi-word phrases; phrases with
	// spaces join the multi-word filler set.
	Fillers []string

	Hedges         []string
	AnalogyMarkers []string
}

// Build merges ext into the default vocabularies. Entries that duplicate or
// nearly duplicate an existing entry are skipped; each skip is reported as a
// human-readable warning for the caller to log. Build never fails — a fully
// rejected extension list just yields the defaults.
func Build(ext Extensions) (Vocabularies, []string) {
	vocab := Vocabularies{
		Fillers:   habits.DefaultFillerVocab(),
		Framework: habits.DefaultFrameworkVocab(),
	}
	var warnings []string

	existingFillers := append(append([]string{}, vocab.Fillers.Single...), vocab.Fillers.Multi...)
	for _, raw := range ext.Fillers {
		entry, warn := screen(raw, "filler", existingFillers)
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		if strings.Contains(entry, " ") {
			vocab.Fillers.Multi = append(vocab.Fillers.Multi, entry)
		} else {
			vocab.Fillers.Single = append(vocab.Fillers.Single, entry)
		}
		existingFillers = append(existingFillers, entry)
	}

	hedges := habits.DefaultHedgePhrases()
	for _, raw := range ext.Hedges {
		entry, warn := screen(raw, "hedge", hedges)
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		hedges = append(hedges, entry)
	}
	vocab.Hedges = habits.CompilePhrases(hedges)

	markers := habits.DefaultAnalogyMarkers()
	for _, raw := range ext.AnalogyMarkers {
		entry, warn := screen(raw, "analogy marker", markers)
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		markers = append(markers, entry)
	}
	vocab.AnalogyMarkers = habits.CompilePhrases(markers)

	return vocab, warnings
}

// screen normalises a candidate entry and checks it against the existing
// vocabulary. It returns the normalised entry, or a non-empty warning when
// the entry must be skipped.
func screen(raw, kind string, existing []string) (string, string) {
	entry := strings.ToLower(strings.TrimSpace(raw))
	if entry == "" {
		return "", fmt.Sprintf("lexicon: ignoring empty %s entry", kind)
	}

	for _, have := range existing {
		if entry == have {
			return "", fmt.Sprintf("lexicon: %s %q already present, skipping", kind, entry)
		}
		if matchr.JaroWinkler(entry, have, false) >= nearDuplicateThreshold {
			return "", fmt.Sprintf("lexicon: %s %q looks like a near duplicate of %q, skipping", kind, entry, have)
		}
	}
	return entry, ""
}
