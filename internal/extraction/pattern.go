package extraction

import (
	"context"

	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

// PatternStrategy matches ontology pattern variants against the text using
// word-boundary-aware regular expressions. Single-letter skills like "R"
// never match inside unrelated words such as "HR" or "for".
type PatternStrategy struct {
	ont *ontology.Ontology
}

// NewPatternStrategy creates the exact-pattern strategy.
func NewPatternStrategy(ont *ontology.Ontology) *PatternStrategy {
	return &PatternStrategy{ont: ont}
}

// Method identifies this strategy in extraction results.
func (s *PatternStrategy) Method() types.ExtractionMethod {
	return types.MethodPattern
}

// Extract scans the text with every compiled pattern variant.
func (s *PatternStrategy) Extract(_ context.Context, text string) ([]types.SkillCandidate, error) {
	if text == "" {
		return nil, nil
	}

	var found []types.SkillCandidate
	for _, skill := range s.ont.Skills() {
		for _, re := range skill.Patterns {
			if re.MatchString(text) {
				found = append(found, types.SkillCandidate{
					Name:       skill.Name,
					Method:     types.MethodPattern,
					Confidence: patternConfidence,
					Category:   skill.Category,
				})
				break
			}
		}
	}
	return found, nil
}
