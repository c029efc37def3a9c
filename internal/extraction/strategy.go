// Package extraction runs a prioritized pipeline of skill-extraction
// strategies over normalized document text and unions their findings.
package extraction

import (
	"context"

	"github.com/jonathan/skillscope/internal/types"
)

// Confidence assigned by each strategy. Exact pattern and multi-word matches
// are certain; contextual cue-phrase matches are not. The semantic strategy
// reports its similarity score directly.
const (
	patternConfidence    = 1.0
	contextualConfidence = 0.7
	multiwordConfidence  = 1.0
)

// Strategy finds skill candidates in normalized text. Implementations must
// be safe for concurrent use: they only read the shared ontology.
type Strategy interface {
	// Method identifies the strategy in extraction results.
	Method() types.ExtractionMethod
	// Extract returns the candidates found in the normalized text. A nil
	// slice with nil error means the strategy found nothing.
	Extract(ctx context.Context, text string) ([]types.SkillCandidate, error)
}
