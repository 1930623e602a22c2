package fluency

import "github.com/podiumlabs/cadence/pkg/speech"

// Block thresholds, in seconds. These are deliberately distinct from the
// strategic-pause buckets in the habits package: a block is a clinical
// fluency indicator, not a rhetorical device.
const (
	blockGap       = 0.5
	severeBlockGap = 1.0
)

// Block is one speech block — an abnormally long silence between two words.
type Block struct {
	// WordIndex is the index of the word that follows the silence.
	WordIndex int `json:"wordIndex"`

	// StartSec is when the silence began (the previous word's end).
	StartSec float64 `json:"start"`

	// Duration is the silence length in seconds.
	Duration float64 `json:"duration"`

	// IsSevere is true for silences of one second or longer.
	IsSevere bool `json:"isSevere"`
}

// DetectBlocks finds inter-word silences of half a second or longer.
func DetectBlocks(words []speech.WordTiming) []Block {
	var blocks []Block
	for i := 1; i < len(words); i++ {
		gap := words[i].Start - words[i-1].End
		if gap < blockGap {
			continue
		}
		blocks = append(blocks, Block{
			WordIndex: i,
			StartSec:  words[i-1].End,
			Duration:  gap,
			IsSevere:  gap >= severeBlockGap,
		})
	}
	return blocks
}

// blockSeverity grades a block set: high, moderate, mild, or none.
func blockSeverity(blocks []Block) string {
	severe := 0
	for _, b := range blocks {
		if b.IsSevere {
			severe++
		}
	}
	switch {
	case len(blocks) > 5 || severe > 2:
		return "high"
	case len(blocks) > 2 || severe > 0:
		return "moderate"
	case len(blocks) > 0:
		return "mild"
	default:
		return "none"
	}
}
