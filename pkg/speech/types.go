// Package speech defines the shared input types for the Cadence analysis
// engine.
//
// These types form the lingua franca between the recording collaborators
// (capture, transcription, face/pose tracking) and the analyzers. Cadence
// never produces them itself — a finished recording arrives fully assembled
// as one [AnalysisInput] and is analyzed in a single synchronous pass.
package speech

// WordTiming is one transcribed word with its start and end time, in seconds
// from the beginning of the recording.
//
// Sequences of WordTiming are expected to be chronological: Start <= End for
// each word, and each word's Start at or after the previous word's End. This
// is an unenforced precondition — the transcription collaborator owns timing
// quality, and the analyzers trust it. Behaviour on non-monotonic input is
// unspecified.
type WordTiming struct {
	// Word is the transcribed token, possibly carrying punctuation.
	Word string `json:"word"`

	// Start is the word onset in seconds from recording start.
	Start float64 `json:"start"`

	// End is the word offset in seconds from recording start.
	End float64 `json:"end"`
}

// VolumeSample is one loudness observation from the recording collaborator.
// Samples arrive at roughly fixed intervals.
type VolumeSample struct {
	// TimestampMs is the sample time in milliseconds from recording start.
	TimestampMs float64 `json:"timestamp"`

	// Level is the loudness on a 0–100 scale.
	Level float64 `json:"level"`
}

// AnalysisInput is the complete signal bundle for one finished recording.
// All fields are produced by external collaborators; the engine reads them
// and never mutates them.
type AnalysisInput struct {
	// Transcript is the full UTF-8 transcript text.
	Transcript string `json:"transcript"`

	// Words holds word-level timings, chronological (see [WordTiming]).
	// May be empty when the transcriber produced no word detail.
	Words []WordTiming `json:"words"`

	// VolumeHistory holds the loudness trace. May be empty.
	VolumeHistory []VolumeSample `json:"volumeHistory"`

	// DurationMs is the total recording length in milliseconds.
	DurationMs int64 `json:"durationMs"`

	// EyeContactPercentage is an externally computed visual score, 0–100.
	EyeContactPercentage float64 `json:"eyeContactPercentage"`

	// PostureScore is an externally computed visual score, 0–100.
	PostureScore float64 `json:"postureScore"`
}

// WordCount returns the number of timed words in the input.
func (in AnalysisInput) WordCount() int {
	return len(in.Words)
}

// DurationSeconds returns the recording length in seconds.
func (in AnalysisInput) DurationSeconds() float64 {
	return float64(in.DurationMs) / 1000
}
