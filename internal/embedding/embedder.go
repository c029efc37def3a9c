// Package embedding defines the embedding-provider contract used by the
// semantic extraction strategy, plus vector similarity helpers.
package embedding

import (
	"context"
	"math"
)

// Embedder converts texts into fixed-length numeric vectors. Implementations
// should batch-encode many texts per call rather than encoding one at a time;
// model invocation dominates the cost of semantic extraction.
type Embedder interface {
	// EncodeBatch returns one vector per input text, in input order.
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}

// Cosine returns the cosine similarity of two vectors, or 0 when either
// vector is empty, zero, or the lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
