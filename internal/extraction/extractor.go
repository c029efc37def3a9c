package extraction

import (
	"context"
	"log/slog"
	"sort"

	"github.com/jonathan/skillscope/internal/embedding"
	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/textnorm"
	"github.com/jonathan/skillscope/internal/types"
)

// Extractor unions the findings of all configured strategies, keeping the
// highest-confidence candidate per canonical skill name. Extraction never
// fails: a strategy error degrades the result instead of propagating.
type Extractor struct {
	strategies []Strategy
	semantic   bool
	logger     *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithEmbedder enables the semantic strategy using the given provider and
// similarity threshold. Pass threshold <= 0 for the default.
func WithEmbedder(embedder embedding.Embedder, ont *ontology.Ontology, threshold float64) Option {
	return func(e *Extractor) {
		if embedder == nil {
			return
		}
		e.strategies = append(e.strategies, NewSemanticStrategy(ont, embedder, threshold))
		e.semantic = true
	}
}

// WithLogger sets the logger used to report degraded strategies.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor creates an extractor with the pattern, contextual, and
// multi-word strategies; the semantic strategy is added by WithEmbedder.
func NewExtractor(ont *ontology.Ontology, opts ...Option) *Extractor {
	e := &Extractor{
		strategies: []Strategy{
			NewPatternStrategy(ont),
			NewContextualStrategy(ont),
			NewMultiwordStrategy(ont),
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract normalizes the text, runs every strategy, and returns the
// de-duplicated skill set. Empty or unusable input yields an empty result,
// never an error.
func (e *Extractor) Extract(ctx context.Context, text string) types.ExtractionResult {
	result := types.ExtractionResult{Status: types.ExtractionOk}

	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return result
	}

	best := make(map[string]types.SkillCandidate)
	for _, strategy := range e.strategies {
		candidates, err := strategy.Extract(ctx, normalized)
		if err != nil {
			e.logger.Warn("extraction strategy degraded",
				"method", strategy.Method(), "error", err)
			result.Status = types.ExtractionDegraded
			continue
		}
		for _, c := range candidates {
			if existing, ok := best[c.Name]; !ok || c.Confidence > existing.Confidence {
				best[c.Name] = c
			}
		}
	}

	result.Skills = make([]types.SkillCandidate, 0, len(best))
	for _, c := range best {
		result.Skills = append(result.Skills, c)
	}
	// Stable output order for callers and tests; the set itself is unordered.
	sort.Slice(result.Skills, func(i, j int) bool {
		if result.Skills[i].Confidence != result.Skills[j].Confidence {
			return result.Skills[i].Confidence > result.Skills[j].Confidence
		}
		return result.Skills[i].Name < result.Skills[j].Name
	})
	return result
}

// SemanticEnabled reports whether the semantic strategy is configured.
func (e *Extractor) SemanticEnabled() bool {
	return e.semantic
}
