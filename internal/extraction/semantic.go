package extraction

import (
	"context"
	"fmt"

	"github.com/jonathan/skillscope/internal/embedding"
	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

// DefaultSemanticThreshold accepts skills whose phrase embedding is at least
// this similar to the document embedding. Useful values sit in 0.3-0.4.
const DefaultSemanticThreshold = 0.35

// SemanticStrategy finds skills that are implied rather than named, by
// comparing the document embedding against each ontology skill phrase.
// The document and all skill phrases are encoded in a single batch call.
type SemanticStrategy struct {
	ont       *ontology.Ontology
	embedder  embedding.Embedder
	threshold float64
}

// NewSemanticStrategy creates the embedding-similarity strategy. A zero or
// negative threshold selects DefaultSemanticThreshold.
func NewSemanticStrategy(ont *ontology.Ontology, embedder embedding.Embedder, threshold float64) *SemanticStrategy {
	if threshold <= 0 {
		threshold = DefaultSemanticThreshold
	}
	return &SemanticStrategy{ont: ont, embedder: embedder, threshold: threshold}
}

// Method identifies this strategy in extraction results.
func (s *SemanticStrategy) Method() types.ExtractionMethod {
	return types.MethodSemantic
}

// Extract encodes the document together with every skill name and accepts
// skills above the similarity threshold. Confidence is the similarity score.
func (s *SemanticStrategy) Extract(ctx context.Context, text string) ([]types.SkillCandidate, error) {
	if text == "" {
		return nil, nil
	}

	names := s.ont.SkillNames()
	batch := make([]string, 0, len(names)+1)
	batch = append(batch, text)
	batch = append(batch, names...)

	vectors, err := s.embedder.EncodeBatch(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("semantic extraction failed: %w", err)
	}
	if len(vectors) != len(batch) {
		return nil, fmt.Errorf("semantic extraction failed: got %d vectors for %d texts", len(vectors), len(batch))
	}

	docVec := vectors[0]
	var found []types.SkillCandidate
	for i, name := range names {
		sim := embedding.Cosine(docVec, vectors[i+1])
		if sim < s.threshold {
			continue
		}
		found = append(found, types.SkillCandidate{
			Name:       name,
			Method:     types.MethodSemantic,
			Confidence: sim,
			Category:   s.ont.CategoryOf(name),
		})
	}
	return found, nil
}
