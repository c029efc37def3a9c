package classify

import (
	"log/slog"
	"strings"

	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/textnorm"
	"github.com/jonathan/skillscope/internal/types"
)

// Tasks lists every classification task in evaluation order.
var Tasks = []types.ClassificationTask{
	types.TaskCategory,
	types.TaskExperience,
	types.TaskMatchScore,
}

// Classifier predicts category, experience level, and match score from
// document text. Each task independently uses its trained ensemble when the
// store supplied one and the deterministic keyword fallback otherwise.
// Classification never fails regardless of model availability.
type Classifier struct {
	models map[types.ClassificationTask]*TaskModel
	ont    *ontology.Ontology
	logger *slog.Logger
}

// NewClassifier builds a classifier, loading whatever task models the store
// can supply. A nil store configures fallback-only classification. Load
// failures are logged and the affected task degrades to the heuristic.
func NewClassifier(store ModelStore, ont *ontology.Ontology, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Classifier{
		models: make(map[types.ClassificationTask]*TaskModel),
		ont:    ont,
		logger: logger,
	}

	if store == nil {
		return c
	}
	for _, task := range Tasks {
		model, err := store.Load(task)
		if err != nil {
			logger.Warn("trained model unavailable, using heuristic fallback",
				"task", task, "error", err)
			continue
		}
		c.models[task] = model
	}
	return c
}

// Classify predicts one task for the given text. Empty or malformed input
// resolves to the fallback prediction; it is never surfaced as an error.
func (c *Classifier) Classify(text string, task types.ClassificationTask) types.ClassificationResult {
	normalized := textnorm.Normalize(text)

	if model, ok := c.models[task]; ok && normalized != "" {
		return c.classifyTrained(model, normalized, task)
	}
	return c.classifyFallback(normalized, task)
}

// ClassifyAll runs every task against the text.
func (c *Classifier) ClassifyAll(text string) []types.ClassificationResult {
	results := make([]types.ClassificationResult, 0, len(Tasks))
	for _, task := range Tasks {
		results = append(results, c.Classify(text, task))
	}
	return results
}

func (c *Classifier) classifyTrained(model *TaskModel, normalized string, task types.ClassificationTask) types.ClassificationResult {
	probs := model.PredictProba(normalized)

	bestIdx := 0
	for i, p := range probs {
		if p > probs[bestIdx] {
			bestIdx = i
		}
	}

	result := types.ClassificationResult{
		Task:       task,
		Label:      model.Classes[bestIdx],
		Confidence: probs[bestIdx],
		Source:     types.SourceTrained,
	}

	if task == types.TaskMatchScore && model.ClassValues != nil {
		// Blend band midpoints by probability for a smooth numeric score.
		var value float64
		for i, p := range probs {
			value += p * model.ClassValues[i]
		}
		result.Value = clamp(value, 0, 100)
	}
	return result
}

func (c *Classifier) classifyFallback(normalized string, task types.ClassificationTask) types.ClassificationResult {
	result := types.ClassificationResult{
		Task:       task,
		Confidence: fallbackConfidence,
		Source:     types.SourceFallback,
	}

	switch task {
	case types.TaskCategory:
		result.Label = fallbackCategory(normalized)
	case types.TaskExperience:
		result.Label = fallbackExperience(normalized)
	case types.TaskMatchScore:
		result.Value = fallbackMatchScore(normalized, c.vocabularyHits(normalized))
	}
	return result
}

// QualityScore blends three signals into an overall document score in
// [0,100]: mean task confidence (40%), content-richness tiers (30%), and the
// fraction of tasks answered by a trained model (30%).
func (c *Classifier) QualityScore(text string, extraction types.ExtractionResult, results []types.ClassificationResult) float64 {
	if len(results) == 0 {
		return 0
	}

	var confidenceSum float64
	trained := 0
	for _, r := range results {
		confidenceSum += r.Confidence
		if r.Source == types.SourceTrained {
			trained++
		}
	}
	meanConfidence := confidenceSum / float64(len(results))

	normalized := textnorm.Normalize(text)
	richness := lengthTier(len(text)) +
		countTier(len(extraction.Skills)) +
		countTier(c.vocabularyHits(normalized))

	score := meanConfidence*40 +
		richness +
		float64(trained)/float64(len(results))*30

	return clamp(score, 0, 100)
}

// lengthTier scores document length on a 0-10 scale.
func lengthTier(chars int) float64 {
	switch {
	case chars > 1000:
		return 10
	case chars > 500:
		return 7
	case chars > 200:
		return 5
	default:
		return 0
	}
}

// countTier scores a skill or keyword count on a 0-10 scale.
func countTier(n int) float64 {
	switch {
	case n > 15:
		return 10
	case n > 10:
		return 7
	case n > 5:
		return 5
	default:
		return 0
	}
}

// vocabularyHits counts distinct ontology vocabulary tokens in the text.
func (c *Classifier) vocabularyHits(normalized string) int {
	seen := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		if name, ok := c.ont.CanonicalName(token); ok {
			seen[name] = true
		}
	}
	return len(seen)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
