package config

import "slices"

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked; changing the
// listen address or TLS material requires a restart.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	// LexiconChanged is true when any vocabulary extension list changed.
	// The server rebuilds its generator vocabularies in response.
	LexiconChanged bool

	// SequentialChanged is true when the analyzer execution mode changed.
	SequentialChanged bool
}

// Any reports whether the diff contains at least one change.
func (d ConfigDiff) Any() bool {
	return d.LogLevelChanged || d.LexiconChanged || d.SequentialChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Server.LogLevel != new.Server.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Server.LogLevel
	}

	if !slices.Equal(old.Lexicon.ExtraFillers, new.Lexicon.ExtraFillers) ||
		!slices.Equal(old.Lexicon.ExtraHedges, new.Lexicon.ExtraHedges) ||
		!slices.Equal(old.Lexicon.ExtraAnalogyMarkers, new.Lexicon.ExtraAnalogyMarkers) {
		d.LexiconChanged = true
	}

	if old.Analysis.Sequential != new.Analysis.Sequential {
		d.SequentialChanged = true
	}

	return d
}
