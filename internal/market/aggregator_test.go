package market

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillscope/internal/extraction"
	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

func testAggregator(t *testing.T) *Aggregator {
	t.Helper()
	ont, err := ontology.Load()
	require.NoError(t, err)
	return NewAggregator(extraction.NewExtractor(ont), nil)
}

// scenarioPostings builds 20 postings where SQL appears in 12 and Tableau
// in 4.
func scenarioPostings() []Posting {
	postings := make([]Posting, 20)
	for i := range postings {
		desc := "general analyst duties and reporting"
		if i < 12 {
			desc += " with sql queries"
		}
		if i < 4 {
			desc += " and tableau dashboards"
		}
		postings[i] = Posting{Title: "Data Analyst", Description: desc}
	}
	return postings
}

func findSkill(t *testing.T, profile *types.MarketProfile, name string) types.MarketSkill {
	t.Helper()
	for _, s := range profile.Skills {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("skill %q not in profile", name)
	return types.MarketSkill{}
}

func TestBuildProfile_FrequenciesAndPriorities(t *testing.T) {
	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", scenarioPostings())
	require.NoError(t, err)

	assert.Equal(t, 20, profile.JobsAnalyzed)
	assert.Equal(t, types.ProfileOk, profile.Status)

	sql := findSkill(t, profile, "SQL")
	assert.Equal(t, 12, sql.Frequency)
	assert.InDelta(t, 60.0, sql.Percentage, 1e-9)
	assert.Equal(t, types.PriorityCritical, sql.Priority)

	tableau := findSkill(t, profile, "Tableau")
	assert.Equal(t, 4, tableau.Frequency)
	assert.InDelta(t, 20.0, tableau.Percentage, 1e-9)
	assert.Equal(t, types.PriorityMedium, tableau.Priority)
}

func TestBuildProfile_SortedByFrequencyDescending(t *testing.T) {
	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", scenarioPostings())
	require.NoError(t, err)
	require.NotEmpty(t, profile.Skills)

	for i := 1; i < len(profile.Skills); i++ {
		prev, cur := profile.Skills[i-1], profile.Skills[i]
		if prev.Frequency == cur.Frequency {
			assert.Less(t, prev.Name, cur.Name)
		} else {
			assert.Greater(t, prev.Frequency, cur.Frequency)
		}
	}
}

func TestBuildProfile_PercentagesWithinRange(t *testing.T) {
	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", scenarioPostings())
	require.NoError(t, err)

	for _, s := range profile.Skills {
		assert.GreaterOrEqual(t, s.Percentage, 0.0)
		assert.LessOrEqual(t, s.Percentage, 100.0)
		assert.LessOrEqual(t, s.Frequency, profile.JobsAnalyzed)
		assert.GreaterOrEqual(t, s.Frequency, 1)
	}
}

func TestBuildProfile_EmptyBatch(t *testing.T) {
	_, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", nil)
	assert.ErrorIs(t, err, ErrNoPostings)
}

func TestBuildProfile_NoQualifyingSkillsIsInsufficient(t *testing.T) {
	postings := []Posting{{Title: "Gardener", Description: "prune hedges and water plants"}}

	profile, err := testAggregator(t).BuildProfile(context.Background(), "Gardener", postings)
	require.NoError(t, err)

	assert.Equal(t, types.ProfileInsufficient, profile.Status)
	assert.Empty(t, profile.Skills)
	assert.Equal(t, 1, profile.JobsAnalyzed)
}

func TestBuildProfile_FrequencyFloorScalesWithBatch(t *testing.T) {
	// 40 postings give a floor of 2: a skill in a single posting must not
	// qualify.
	postings := make([]Posting, 40)
	for i := range postings {
		postings[i] = Posting{Description: "sql work"}
	}
	postings[0].Description = "sql work and some scala"

	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Engineer", postings)
	require.NoError(t, err)

	names := profile.SkillNames()
	assert.Contains(t, names, "SQL")
	assert.NotContains(t, names, "Scala")
}

func TestPriorityFor_TierBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want types.PriorityTier
	}{
		{100, types.PriorityCritical},
		{50, types.PriorityCritical},
		{49.9, types.PriorityHigh},
		{30, types.PriorityHigh},
		{29.9, types.PriorityMedium},
		{15, types.PriorityMedium},
		{14.9, types.PriorityLow},
		{0, types.PriorityLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityFor(tt.pct), "pct %.1f", tt.pct)
	}
}

func TestBuildProfile_CategorizesSkills(t *testing.T) {
	postings := []Posting{
		{Description: "sql and python with tableau, strong communication"},
	}

	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", postings)
	require.NoError(t, err)

	assert.Contains(t, profile.Categories[types.CategoryTechnical], findSkill(t, profile, "SQL"))
	assert.Contains(t, profile.Categories[types.CategoryTools], findSkill(t, profile, "Tableau"))
	assert.Contains(t, profile.Categories[types.CategorySoftSkills], findSkill(t, profile, "Communication"))
}

// fixtureSource serves a fixed batch or error.
type fixtureSource struct {
	postings []Posting
	err      error
}

func (s *fixtureSource) FetchPostings(context.Context, string) ([]Posting, error) {
	return s.postings, s.err
}

func TestBuildProfileFromSource_WrapsFetchFailure(t *testing.T) {
	cause := errors.New("upstream 502")
	_, err := testAggregator(t).BuildProfileFromSource(context.Background(), "Data Analyst", &fixtureSource{err: cause})

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "Data Analyst", fetchErr.Role)
	assert.ErrorIs(t, err, cause)
}

func TestBuildProfileFromSource_EmptyFetchIsNoPostings(t *testing.T) {
	_, err := testAggregator(t).BuildProfileFromSource(context.Background(), "Data Analyst", &fixtureSource{})
	assert.ErrorIs(t, err, ErrNoPostings)
}

func TestBuildProfile_Deterministic(t *testing.T) {
	// Concurrent extraction must not leak into the output ordering.
	agg := testAggregator(t)
	postings := scenarioPostings()

	first, err := agg.BuildProfile(context.Background(), "Data Analyst", postings)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := agg.BuildProfile(context.Background(), "Data Analyst", postings)
		require.NoError(t, err)
		assert.Equal(t, first, next, "run %d", i)
	}
}

func TestBuildProfile_LargeBatch(t *testing.T) {
	postings := make([]Posting, 200)
	for i := range postings {
		postings[i] = Posting{Description: fmt.Sprintf("posting %d needs sql and excel", i)}
	}

	profile, err := testAggregator(t).BuildProfile(context.Background(), "Data Analyst", postings)
	require.NoError(t, err)

	sql := findSkill(t, profile, "SQL")
	assert.Equal(t, 200, sql.Frequency)
	assert.InDelta(t, 100.0, sql.Percentage, 1e-9)
	assert.Equal(t, types.PriorityCritical, sql.Priority)
}
