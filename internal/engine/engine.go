// Package engine wires the extraction, classification, market, gap, and
// recommendation components behind one facade.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jonathan/skillscope/internal/classify"
	"github.com/jonathan/skillscope/internal/extraction"
	"github.com/jonathan/skillscope/internal/gap"
	"github.com/jonathan/skillscope/internal/market"
	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/recommend"
	"github.com/jonathan/skillscope/internal/types"
)

// Engine is the facade over the analysis pipeline. All dependencies are
// injected at construction; every method is safe for concurrent use.
type Engine struct {
	ont        *ontology.Ontology
	extractor  *extraction.Extractor
	classifier *classify.Classifier
	aggregator *market.Aggregator
	cache      *market.ProfileCache
	logger     *slog.Logger
}

// New assembles an engine from its components. A nil logger falls back to
// slog.Default.
func New(ont *ontology.Ontology, extractor *extraction.Extractor, classifier *classify.Classifier, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		ont:        ont,
		extractor:  extractor,
		classifier: classifier,
		aggregator: market.NewAggregator(extractor, logger),
		cache:      market.NewProfileCache(),
		logger:     logger,
	}
}

// OntologyVersion reports the taxonomy version the engine was built with.
func (e *Engine) OntologyVersion() string {
	return e.ont.Version()
}

// ExtractSkills runs the extraction strategies over a single document.
func (e *Engine) ExtractSkills(ctx context.Context, text string) types.ExtractionResult {
	return e.extractor.Extract(ctx, text)
}

// ClassifyDocument runs every classification task over the document.
func (e *Engine) ClassifyDocument(text string) []types.ClassificationResult {
	return e.classifier.ClassifyAll(text)
}

// BuildMarketProfile aggregates a demand profile from the given postings.
func (e *Engine) BuildMarketProfile(ctx context.Context, role string, postings []market.Posting) (*types.MarketProfile, error) {
	return e.aggregator.BuildProfile(ctx, role, postings)
}

// MarketProfile returns the cached demand profile for a role, fetching
// postings from the source and building it on first use.
func (e *Engine) MarketProfile(ctx context.Context, role, locale string, source market.DocumentSource) (*types.MarketProfile, error) {
	key := market.CacheKey{Role: role, Locale: locale}
	return e.cache.Get(ctx, key, func(ctx context.Context) (*types.MarketProfile, error) {
		return e.aggregator.BuildProfileFromSource(ctx, role, source)
	})
}

// RefreshMarketProfile rebuilds and replaces the cached profile for a role.
func (e *Engine) RefreshMarketProfile(ctx context.Context, role, locale string, source market.DocumentSource) (*types.MarketProfile, error) {
	key := market.CacheKey{Role: role, Locale: locale}
	return e.cache.Refresh(ctx, key, func(ctx context.Context) (*types.MarketProfile, error) {
		return e.aggregator.BuildProfileFromSource(ctx, role, source)
	})
}

// AnalyzeGap compares candidate skills against a market profile.
func (e *Engine) AnalyzeGap(candidateSkills []string, profile *types.MarketProfile) *types.GapReport {
	return gap.Analyze(candidateSkills, profile)
}

// Recommend builds a learning path for the highest-demand missing skills.
func (e *Engine) Recommend(missing []types.MissingSkill, limit int) []types.LearningPathEntry {
	return recommend.LearningPath(missing, limit)
}

// Roadmap groups a learning path by market priority.
func (e *Engine) Roadmap(entries []types.LearningPathEntry) *types.LearningRoadmap {
	return recommend.Roadmap(entries)
}

func newRunID() string {
	return uuid.NewString()
}
