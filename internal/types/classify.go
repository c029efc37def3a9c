package types

// ClassificationTask names one prediction the document classifier performs.
type ClassificationTask string

const (
	TaskCategory   ClassificationTask = "category"
	TaskExperience ClassificationTask = "experience"
	TaskMatchScore ClassificationTask = "match_score"
)

// ClassificationSource records whether a prediction came from a trained
// ensemble or the deterministic keyword fallback.
type ClassificationSource string

const (
	SourceTrained  ClassificationSource = "trained"
	SourceFallback ClassificationSource = "fallback"
)

// ClassificationResult is the outcome of one classification task.
// Label carries the predicted class for category and experience tasks;
// Value carries the numeric prediction for the match-score task.
// Confidence is the ensemble's maximum class probability, or a fixed 0.5
// when the fallback heuristic produced the result.
type ClassificationResult struct {
	Task       ClassificationTask   `json:"task"`
	Label      string               `json:"label,omitempty"`
	Value      float64              `json:"value,omitempty"`
	Confidence float64              `json:"confidence"`
	Source     ClassificationSource `json:"source"`
}
