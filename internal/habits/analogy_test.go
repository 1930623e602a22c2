package habits

import (
	"strings"
	"testing"
)

func TestDetectAnalogies_NoneDetected(t *testing.T) {
	t.Parallel()

	got := DetectAnalogies("The service restarts every night at midnight.")
	if got.Count != 0 {
		t.Fatalf("Count = %d, want 0 (%+v)", got.Count, got.Markers)
	}
	if got.Score != 50 {
		t.Errorf("Score = %.1f, want 50", got.Score)
	}
	if !strings.Contains(got.Feedback, "analogy") {
		t.Errorf("Feedback = %q, want encouragement to use analogies", got.Feedback)
	}
}

func TestDetectAnalogies_SingleMarker(t *testing.T) {
	t.Parallel()

	got := DetectAnalogies("The scheduler works like a traffic controller for jobs.")
	if got.Count != 1 {
		t.Fatalf("Count = %d, want 1 (%+v)", got.Count, got.Markers)
	}
	if got.Score != 70 {
		t.Errorf("Score = %.1f, want 70", got.Score)
	}
}

func TestDetectAnalogies_RichUsage(t *testing.T) {
	t.Parallel()

	got := DetectAnalogies(
		"Imagine a post office. The queue is like a mailbag, " +
			"and the workers empty it in the same way couriers do. " +
			"Think of it as batch delivery.")

	if got.Count < 3 {
		t.Fatalf("Count = %d, want at least 3 (%+v)", got.Count, got.Markers)
	}
	if got.Score != 95 && got.Score != 90 {
		t.Errorf("Score = %.1f, want 95 (3–5 hits) or 90 (>5)", got.Score)
	}
	if !strings.Contains(got.Feedback, "paint a picture") {
		t.Errorf("Feedback = %q, want strong praise", got.Feedback)
	}
}

func TestDetectAnalogies_SortsMarkersByFrequency(t *testing.T) {
	t.Parallel()

	got := DetectAnalogies("It's like a cache. It's like a ledger. Imagine the cleanup.")

	if len(got.Markers) == 0 {
		t.Fatal("no markers detected")
	}
	for i := 1; i < len(got.Markers); i++ {
		if got.Markers[i].Count > got.Markers[i-1].Count {
			t.Errorf("Markers not sorted by count: %+v", got.Markers)
		}
	}
}
