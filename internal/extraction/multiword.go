package extraction

import (
	"context"
	"strings"

	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

// MultiwordStrategy matches the ontology's curated multi-word phrase list by
// exact case-insensitive substring. Phrases are specific enough that a plain
// substring check does not produce boundary false positives.
type MultiwordStrategy struct {
	ont *ontology.Ontology
}

// NewMultiwordStrategy creates the multi-word phrase strategy.
func NewMultiwordStrategy(ont *ontology.Ontology) *MultiwordStrategy {
	return &MultiwordStrategy{ont: ont}
}

// Method identifies this strategy in extraction results.
func (s *MultiwordStrategy) Method() types.ExtractionMethod {
	return types.MethodMultiword
}

// Extract checks every curated phrase against the lower-cased text.
func (s *MultiwordStrategy) Extract(_ context.Context, text string) ([]types.SkillCandidate, error) {
	if text == "" {
		return nil, nil
	}
	lower := strings.ToLower(text)

	var found []types.SkillCandidate
	for _, phrase := range s.ont.MultiwordPhrases() {
		if !strings.Contains(lower, phrase) {
			continue
		}
		name := s.ont.DisplayForm(phrase)
		found = append(found, types.SkillCandidate{
			Name:       name,
			Method:     types.MethodMultiword,
			Confidence: multiwordConfidence,
			Category:   s.ont.CategoryOf(name),
		})
	}
	return found, nil
}
