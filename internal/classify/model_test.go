package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDF_Transform(t *testing.T) {
	v := &TFIDF{
		Vocabulary: map[string]int{"sql": 0, "python": 1, "excel": 2},
		IDF:        []float64{1.0, 2.0, 1.5},
	}

	vec := v.Transform("sql python sql")

	require.Len(t, vec, 3)
	// tf(sql)=2, tf(python)=1, weighted then L2-normalized.
	assert.Greater(t, vec[0], vec[1])
	assert.Equal(t, 0.0, vec[2])

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestTFIDF_TransformUnknownTokensIgnored(t *testing.T) {
	v := &TFIDF{Vocabulary: map[string]int{"sql": 0}, IDF: []float64{1.0}}
	vec := v.Transform("nothing known here")
	assert.Equal(t, []float64{0}, vec)
}

func TestDecisionTree_PredictProba(t *testing.T) {
	tree := &DecisionTree{Nodes: []TreeNode{
		{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Left: -1, Probs: []float64{0.9, 0.1}},
		{Left: -1, Probs: []float64{0.2, 0.8}},
	}}

	assert.Equal(t, []float64{0.9, 0.1}, tree.PredictProba([]float64{0.3}))
	assert.Equal(t, []float64{0.2, 0.8}, tree.PredictProba([]float64{0.7}))
}

func TestLinearModel_PredictProbaSumsToOne(t *testing.T) {
	m := &LinearModel{
		Weights: [][]float64{{1, 0}, {0, 1}},
		Bias:    []float64{0, 0},
	}

	probs := m.PredictProba([]float64{2, 0})

	require.Len(t, probs, 2)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-9)
	assert.Greater(t, probs[0], probs[1])
}

func TestTaskModel_SoftVoteAveragesMembers(t *testing.T) {
	model := &TaskModel{
		Task:       "category",
		Classes:    []string{"a", "b"},
		Vectorizer: &TFIDF{Vocabulary: map[string]int{"x": 0}, IDF: []float64{1}},
		Members: []Member{
			{Kind: "tree", Tree: &DecisionTree{Nodes: []TreeNode{{Left: -1, Probs: []float64{1, 0}}}}},
			{Kind: "tree", Tree: &DecisionTree{Nodes: []TreeNode{{Left: -1, Probs: []float64{0, 1}}}}},
		},
	}

	probs := model.PredictProba("x")
	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.5, probs[1], 1e-9)
}

func TestTaskModel_MetaCombinerStacksMembers(t *testing.T) {
	model := &TaskModel{
		Task:       "category",
		Classes:    []string{"a", "b"},
		Vectorizer: &TFIDF{Vocabulary: map[string]int{"x": 0}, IDF: []float64{1}},
		Members: []Member{
			{Kind: "tree", Tree: &DecisionTree{Nodes: []TreeNode{{Left: -1, Probs: []float64{1, 0}}}}},
		},
		// Meta input is the concatenated member distributions (2 values);
		// weight class b on the first member's class-a probability.
		Meta: &LinearModel{
			Weights: [][]float64{{0, 0}, {5, 0}},
			Bias:    []float64{0, 0},
		},
	}

	probs := model.PredictProba("x")
	require.Len(t, probs, 2)
	assert.Greater(t, probs[1], probs[0])
}

func TestTaskModel_Validate(t *testing.T) {
	valid := &TaskModel{
		Task:       "category",
		Classes:    []string{"a", "b"},
		Vectorizer: &TFIDF{Vocabulary: map[string]int{"x": 0}, IDF: []float64{1}},
		Members: []Member{
			{Kind: "tree", Tree: &DecisionTree{Nodes: []TreeNode{{Left: -1, Probs: []float64{1, 0}}}}},
		},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*TaskModel)
	}{
		{"single class", func(m *TaskModel) { m.Classes = []string{"a"} }},
		{"missing vectorizer", func(m *TaskModel) { m.Vectorizer = nil }},
		{"no members", func(m *TaskModel) { m.Members = nil }},
		{"leaf probability shape", func(m *TaskModel) {
			m.Members[0].Tree.Nodes[0].Probs = []float64{1}
		}},
		{"class values shape", func(m *TaskModel) { m.ClassValues = []float64{1} }},
		{"unknown member kind", func(m *TaskModel) { m.Members[0].Kind = "forest" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := *valid
			m.Members = []Member{
				{Kind: "tree", Tree: &DecisionTree{Nodes: []TreeNode{{Left: -1, Probs: []float64{1, 0}}}}},
			}
			tt.mutate(&m)
			assert.Error(t, m.Validate())
		})
	}
}

func TestDecisionTree_ValidateRejectsBackwardReferences(t *testing.T) {
	tree := &DecisionTree{Nodes: []TreeNode{
		{Feature: 0, Threshold: 0.5, Left: 1, Right: 0},
		{Left: -1, Probs: []float64{1, 0}},
	}}
	assert.Error(t, tree.validate(2))
}
