package fluency

import (
	"math"
	"testing"

	"github.com/podiumlabs/cadence/pkg/speech"
)

func TestDetectBlocks_ClassifiesGaps(t *testing.T) {
	t.Parallel()

	// Gaps: 0.3 (ignored), 0.7 (block), 1.0 (severe block).
	words := []speech.WordTiming{
		{Word: "it", Start: 0.0, End: 0.3},
		{Word: "was", Start: 0.6, End: 0.9},
		{Word: "really", Start: 1.6, End: 2.0},
		{Word: "hard", Start: 3.0, End: 3.4},
	}
	blocks := DetectBlocks(words)

	if len(blocks) != 2 {
		t.Fatalf("blocks = %+v, want 2", blocks)
	}

	if blocks[0].WordIndex != 2 {
		t.Errorf("blocks[0].WordIndex = %d, want 2", blocks[0].WordIndex)
	}
	if blocks[0].IsSevere {
		t.Error("blocks[0].IsSevere = true, want false for a 0.7s gap")
	}
	if math.Abs(blocks[0].StartSec-0.9) > 1e-9 {
		t.Errorf("blocks[0].StartSec = %.3f, want 0.9", blocks[0].StartSec)
	}

	// A gap of exactly one second is severe.
	if !blocks[1].IsSevere {
		t.Error("blocks[1].IsSevere = false, want true for a 1.0s gap")
	}
	if math.Abs(blocks[1].Duration-1.0) > 1e-9 {
		t.Errorf("blocks[1].Duration = %.3f, want 1.0", blocks[1].Duration)
	}
}

func TestDetectBlocks_NoWords(t *testing.T) {
	t.Parallel()

	if blocks := DetectBlocks(nil); len(blocks) != 0 {
		t.Errorf("blocks = %+v, want none", blocks)
	}
}

func TestBlockSeverity(t *testing.T) {
	t.Parallel()

	mild := []Block{{Duration: 0.6}}
	moderate := []Block{{Duration: 0.6}, {Duration: 1.2, IsSevere: true}}
	high := []Block{
		{Duration: 1.1, IsSevere: true},
		{Duration: 1.3, IsSevere: true},
		{Duration: 1.5, IsSevere: true},
	}

	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{"none", nil, "none"},
		{"mild", mild, "mild"},
		{"moderate", moderate, "moderate"},
		{"high", high, "high"},
		{"many non-severe", make([]Block, 6), "high"},
	}
	for _, tt := range tests {
		if got := blockSeverity(tt.blocks); got != tt.want {
			t.Errorf("blockSeverity(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
