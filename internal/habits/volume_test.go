package habits

import (
	"strings"
	"testing"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// volumeTrace builds a trace with one sample every 500ms at the given levels.
func volumeTrace(levels ...float64) []speech.VolumeSample {
	trace := make([]speech.VolumeSample, len(levels))
	for i, l := range levels {
		trace[i] = speech.VolumeSample{TimestampMs: float64(i) * 500, Level: l}
	}
	return trace
}

func TestAnalyzeVolumePatterns_TooFewSamples(t *testing.T) {
	t.Parallel()

	got := AnalyzeVolumePatterns(volumeTrace(40, 42, 38))
	if got.Score != 50 {
		t.Errorf("Score = %.1f, want neutral 50", got.Score)
	}
	if got.Levels == nil || len(got.Levels) != 0 {
		t.Errorf("Levels = %v, want empty", got.Levels)
	}
}

func TestAnalyzeVolumePatterns_IdealSteadyVolume(t *testing.T) {
	t.Parallel()

	got := AnalyzeVolumePatterns(volumeTrace(40, 42, 38, 41, 39, 40, 43, 40))
	if got.Score != 90 {
		t.Errorf("Score = %.1f, want 90", got.Score)
	}
	if got.HasTrailingOff {
		t.Error("HasTrailingOff = true, want false for a steady trace")
	}
	if !strings.Contains(got.Feedback, "consistent") {
		t.Errorf("Feedback = %q, want praise", got.Feedback)
	}
}

func TestAnalyzeVolumePatterns_Quiet(t *testing.T) {
	t.Parallel()

	got := AnalyzeVolumePatterns(volumeTrace(10, 11, 9, 10, 10))
	if got.Score != 50 {
		t.Errorf("Score = %.1f, want 40+avg = 50", got.Score)
	}
	if !strings.Contains(got.Feedback, "quietly") {
		t.Errorf("Feedback = %q, want projection advice", got.Feedback)
	}
}

func TestAnalyzeVolumePatterns_TrailingOff(t *testing.T) {
	t.Parallel()

	// Body at 40, final fifth collapsing to 10: trail-off penalty applies on
	// top of the ideal-band score.
	got := AnalyzeVolumePatterns(volumeTrace(40, 40, 40, 40, 40, 40, 40, 40, 10, 10))

	if !got.HasTrailingOff {
		t.Fatal("HasTrailingOff = false, want true")
	}
	if got.Score != 75 {
		t.Errorf("Score = %.1f, want 90-15 = 75", got.Score)
	}
	if !strings.Contains(got.Feedback, "trails off") {
		t.Errorf("Feedback = %q, want trail-off advice", got.Feedback)
	}
}

func TestAnalyzeVolumePatterns_ErraticVolume(t *testing.T) {
	t.Parallel()

	got := AnalyzeVolumePatterns(volumeTrace(10, 80, 12, 85, 11, 78, 13, 82))
	if got.Variation <= 50 {
		t.Fatalf("Variation = %.1f, want > 50 for this trace", got.Variation)
	}
	if !strings.Contains(got.Feedback, "swings") {
		t.Errorf("Feedback = %q, want consistency advice", got.Feedback)
	}
}
