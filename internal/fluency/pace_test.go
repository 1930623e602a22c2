package fluency

import (
	"math"
	"testing"

	"github.com/podiumlabs/cadence/pkg/speech"
)

// wordsAtRate spreads count words evenly across [start, end) seconds.
func wordsAtRate(start, end float64, count int) []speech.WordTiming {
	step := (end - start) / float64(count)
	words := make([]speech.WordTiming, count)
	for i := range words {
		s := start + float64(i)*step
		words[i] = speech.WordTiming{Word: "w", Start: s, End: s + step*0.8}
	}
	return words
}

func TestAnalyzePaceConsistency_TooFewWords(t *testing.T) {
	t.Parallel()

	got := AnalyzePaceConsistency(wordsAtRate(0, 2, 4))
	if got.Consistency != "unknown" {
		t.Errorf("Consistency = %q, want %q", got.Consistency, "unknown")
	}
	if len(got.WindowWPMs) != 0 {
		t.Errorf("WindowWPMs = %v, want empty", got.WindowWPMs)
	}
}

func TestAnalyzePaceConsistency_SteadyRate(t *testing.T) {
	t.Parallel()

	// Six words in each of three consecutive ten-second windows.
	var words []speech.WordTiming
	words = append(words, wordsAtRate(0, 10, 6)...)
	words = append(words, wordsAtRate(10, 20, 6)...)
	words = append(words, wordsAtRate(20, 30, 6)...)

	got := AnalyzePaceConsistency(words)

	if got.Consistency != "consistent" {
		t.Errorf("Consistency = %q (CV %.2f), want consistent", got.Consistency, got.CV)
	}
	if math.Abs(got.AverageWPM-36) > 1e-9 {
		t.Errorf("AverageWPM = %.2f, want 36", got.AverageWPM)
	}
	if len(got.WindowWPMs) != 3 {
		t.Errorf("WindowWPMs = %v, want 3 windows", got.WindowWPMs)
	}
}

func TestAnalyzePaceConsistency_HighlyVariable(t *testing.T) {
	t.Parallel()

	// 2 words in the first window, 12 in the second: rates 12 and 72 wpm,
	// CV ≈ 71%.
	var words []speech.WordTiming
	words = append(words, wordsAtRate(0, 10, 2)...)
	words = append(words, wordsAtRate(10, 20, 12)...)

	got := AnalyzePaceConsistency(words)

	if got.Consistency != "highly variable" {
		t.Errorf("Consistency = %q (CV %.2f), want highly variable", got.Consistency, got.CV)
	}
}

func TestAnalyzePaceConsistency_SkipsEmptyWindows(t *testing.T) {
	t.Parallel()

	// Speech in windows 0 and 3; windows 1 and 2 are silent and must not
	// drag the average to zero.
	var words []speech.WordTiming
	words = append(words, wordsAtRate(0, 10, 6)...)
	words = append(words, wordsAtRate(30, 40, 6)...)

	got := AnalyzePaceConsistency(words)

	if len(got.WindowWPMs) != 2 {
		t.Fatalf("WindowWPMs = %v, want 2 non-empty windows", got.WindowWPMs)
	}
	if math.Abs(got.AverageWPM-36) > 1e-9 {
		t.Errorf("AverageWPM = %.2f, want 36", got.AverageWPM)
	}
	if got.Consistency != "consistent" {
		t.Errorf("Consistency = %q, want consistent", got.Consistency)
	}
}
