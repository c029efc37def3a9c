// Package classify predicts document category, experience level, and match
// score using a trained ensemble when model artifacts are available and a
// deterministic keyword fallback when they are not.
package classify

import (
	"fmt"
	"math"
	"strings"
)

// TFIDF is a pre-fit text vectorizer: a token vocabulary plus inverse
// document frequencies, serialized alongside each task model.
type TFIDF struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// Transform converts normalized text into an L2-normalized tf-idf vector.
func (v *TFIDF) Transform(text string) []float64 {
	vec := make([]float64, len(v.IDF))
	for _, token := range strings.Fields(text) {
		if idx, ok := v.Vocabulary[token]; ok && idx < len(vec) {
			vec[idx]++
		}
	}

	var norm float64
	for i := range vec {
		vec[i] *= v.IDF[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *TFIDF) validate() error {
	if len(v.IDF) == 0 {
		return fmt.Errorf("vectorizer has no features")
	}
	for token, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("vocabulary index for %q out of range", token)
		}
	}
	return nil
}

// TreeNode is one node of a serialized decision tree. Interior nodes split
// on Feature <= Threshold; leaf nodes (Left == -1) carry a class
// probability distribution.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Probs     []float64 `json:"probs,omitempty"`
}

// DecisionTree is a tree-structured ensemble member.
type DecisionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

// PredictProba walks the tree from the root and returns the leaf's class
// distribution.
func (t *DecisionTree) PredictProba(vec []float64) []float64 {
	idx := 0
	for {
		node := t.Nodes[idx]
		if node.Left < 0 {
			return node.Probs
		}
		if node.Feature < len(vec) && vec[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
}

func (t *DecisionTree) validate(classes int) error {
	if len(t.Nodes) == 0 {
		return fmt.Errorf("tree has no nodes")
	}
	for i, node := range t.Nodes {
		if node.Left < 0 {
			if len(node.Probs) != classes {
				return fmt.Errorf("leaf %d has %d probabilities for %d classes", i, len(node.Probs), classes)
			}
			continue
		}
		if node.Left >= len(t.Nodes) || node.Right < 0 || node.Right >= len(t.Nodes) {
			return fmt.Errorf("node %d has child index out of range", i)
		}
		if node.Left <= i || node.Right <= i {
			return fmt.Errorf("node %d has non-forward child reference", i)
		}
	}
	return nil
}

// LinearModel is a kernel-style ensemble member: per-class weight vectors
// with a softmax over the resulting logits. It also serves as the logistic
// meta-combiner when stacking.
type LinearModel struct {
	Weights [][]float64 `json:"weights"`
	Bias    []float64   `json:"bias"`
}

// PredictProba computes softmax(W·x + b).
func (m *LinearModel) PredictProba(vec []float64) []float64 {
	logits := make([]float64, len(m.Weights))
	for c, weights := range m.Weights {
		sum := m.Bias[c]
		for i, w := range weights {
			if i < len(vec) {
				sum += w * vec[i]
			}
		}
		logits[c] = sum
	}
	return softmax(logits)
}

func (m *LinearModel) validate(classes int) error {
	if len(m.Weights) != classes || len(m.Bias) != classes {
		return fmt.Errorf("linear model shape mismatch: %d weight rows, %d biases for %d classes",
			len(m.Weights), len(m.Bias), classes)
	}
	return nil
}

// Member is one heterogeneous ensemble member.
type Member struct {
	Kind   string        `json:"kind"` // "tree" or "linear"
	Tree   *DecisionTree `json:"tree,omitempty"`
	Linear *LinearModel  `json:"linear,omitempty"`
}

// PredictProba dispatches to the member's model kind.
func (m *Member) PredictProba(vec []float64) []float64 {
	switch m.Kind {
	case "tree":
		return m.Tree.PredictProba(vec)
	default:
		return m.Linear.PredictProba(vec)
	}
}

func (m *Member) validate(classes int) error {
	switch m.Kind {
	case "tree":
		if m.Tree == nil {
			return fmt.Errorf("tree member missing tree data")
		}
		return m.Tree.validate(classes)
	case "linear":
		if m.Linear == nil {
			return fmt.Errorf("linear member missing model data")
		}
		return m.Linear.validate(classes)
	default:
		return fmt.Errorf("unknown member kind %q", m.Kind)
	}
}

// TaskModel is a complete trained artifact for one classification task:
// a vectorizer, a heterogeneous member ensemble, and an optional logistic
// meta-combiner. Without the meta-combiner, member probabilities are
// soft-voted; with it, they are stacked.
type TaskModel struct {
	Task        string       `json:"task"`
	Classes     []string     `json:"classes"`
	ClassValues []float64    `json:"class_values,omitempty"` // numeric value per class, for score tasks
	Vectorizer  *TFIDF       `json:"vectorizer"`
	Members     []Member     `json:"members"`
	Meta        *LinearModel `json:"meta,omitempty"`
}

// PredictProba vectorizes the text and combines member predictions.
func (tm *TaskModel) PredictProba(text string) []float64 {
	vec := tm.Vectorizer.Transform(text)

	memberProbs := make([][]float64, len(tm.Members))
	for i := range tm.Members {
		memberProbs[i] = tm.Members[i].PredictProba(vec)
	}

	if tm.Meta != nil {
		stacked := make([]float64, 0, len(tm.Members)*len(tm.Classes))
		for _, probs := range memberProbs {
			stacked = append(stacked, probs...)
		}
		return tm.Meta.PredictProba(stacked)
	}

	// Soft vote: average the member distributions.
	avg := make([]float64, len(tm.Classes))
	for _, probs := range memberProbs {
		for c, p := range probs {
			avg[c] += p
		}
	}
	for c := range avg {
		avg[c] /= float64(len(tm.Members))
	}
	return avg
}

// Validate checks structural consistency of a loaded artifact.
func (tm *TaskModel) Validate() error {
	if len(tm.Classes) < 2 {
		return fmt.Errorf("model needs at least two classes")
	}
	if tm.Vectorizer == nil {
		return fmt.Errorf("model missing vectorizer")
	}
	if err := tm.Vectorizer.validate(); err != nil {
		return err
	}
	if len(tm.Members) == 0 {
		return fmt.Errorf("model has no ensemble members")
	}
	for i := range tm.Members {
		if err := tm.Members[i].validate(len(tm.Classes)); err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
	}
	if tm.Meta != nil {
		if len(tm.Meta.Weights) != len(tm.Classes) {
			return fmt.Errorf("meta-combiner shape mismatch")
		}
	}
	if tm.ClassValues != nil && len(tm.ClassValues) != len(tm.Classes) {
		return fmt.Errorf("class values count does not match classes")
	}
	return nil
}

func softmax(logits []float64) []float64 {
	maxLogit := math.Inf(-1)
	for _, l := range logits {
		if l > maxLogit {
			maxLogit = l
		}
	}

	probs := make([]float64, len(logits))
	var sum float64
	for i, l := range logits {
		probs[i] = math.Exp(l - maxLogit)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
