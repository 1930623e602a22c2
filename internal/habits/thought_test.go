package habits

import (
	"strings"
	"testing"
)

func TestAnalyzeThoughtCompletion_TooShort(t *testing.T) {
	t.Parallel()

	got := AnalyzeThoughtCompletion("Hi there.")
	if got.Score != 50 {
		t.Errorf("Score = %.1f, want neutral 50", got.Score)
	}
}

func TestAnalyzeThoughtCompletion_WellFormed(t *testing.T) {
	t.Parallel()

	got := AnalyzeThoughtCompletion(
		"The migration finished over the weekend without incident. " +
			"Query latency dropped by roughly forty percent. " +
			"We will monitor the dashboards through the end of the week.")

	if got.SentenceCount != 3 {
		t.Errorf("SentenceCount = %d, want 3", got.SentenceCount)
	}
	if got.LongCount != 0 || got.VeryLongCount != 0 {
		t.Errorf("LongCount/VeryLongCount = %d/%d, want 0/0", got.LongCount, got.VeryLongCount)
	}
	if got.Score != 90 {
		t.Errorf("Score = %.1f, want 90", got.Score)
	}
	if !strings.Contains(got.Feedback, "complete") {
		t.Errorf("Feedback = %q, want praise", got.Feedback)
	}
}

func TestAnalyzeThoughtCompletion_VeryLongSentenceCountsTwice(t *testing.T) {
	t.Parallel()

	// One 45-word sentence increments both the long and very-long counters.
	sentence := strings.TrimSpace(strings.Repeat("word ", 45)) + "."
	got := AnalyzeThoughtCompletion(sentence)

	if got.LongCount != 1 {
		t.Errorf("LongCount = %d, want 1", got.LongCount)
	}
	if got.VeryLongCount != 1 {
		t.Errorf("VeryLongCount = %d, want 1", got.VeryLongCount)
	}
	if got.Score != 75 {
		t.Errorf("Score = %.1f, want 90-5-10 = 75", got.Score)
	}
	if !strings.Contains(got.Feedback, "forty words") {
		t.Errorf("Feedback = %q, want rambling advice", got.Feedback)
	}
}

func TestAnalyzeThoughtCompletion_ChoppyFragments(t *testing.T) {
	t.Parallel()

	got := AnalyzeThoughtCompletion("Yes. It works. Very fast. Ship it. No issues. Done now. All good.")

	if got.AvgWords >= 5 {
		t.Fatalf("AvgWords = %.2f, want < 5", got.AvgWords)
	}
	if !strings.Contains(got.Feedback, "short") {
		t.Errorf("Feedback = %q, want expansion advice", got.Feedback)
	}
	// Fragments carry no length penalty; only the feedback flags them.
	if got.Score != 90 {
		t.Errorf("Score = %.1f, want 90", got.Score)
	}
}
