package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/skillscope/internal/classify"
	"github.com/jonathan/skillscope/internal/extraction"
	"github.com/jonathan/skillscope/internal/market"
	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

const sampleResume = `Jane Smith
jane.smith@example.com | 555-123-4567

Senior Data Analyst with 8 years of experience. Expert in SQL and Python.
Built Tableau dashboards and Excel reports. Applied machine learning to
churn prediction. Strong communication and stakeholder management skills.`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	ont, err := ontology.Load()
	require.NoError(t, err)
	extractor := extraction.NewExtractor(ont)
	classifier := classify.NewClassifier(nil, ont, nil)
	return New(ont, extractor, classifier, nil)
}

func TestAnalyzeResume_FullReport(t *testing.T) {
	eng := testEngine(t)

	report := eng.AnalyzeResume(context.Background(), sampleResume)

	_, err := uuid.Parse(report.RunID)
	assert.NoError(t, err, "run ID must be a valid UUID")
	assert.False(t, report.AnalyzedAt.IsZero())

	assert.True(t, report.Extraction.Has("SQL"))
	assert.True(t, report.Extraction.Has("Python"))
	assert.True(t, report.Extraction.Has("Tableau"))
	assert.True(t, report.Extraction.Has("Machine Learning"))

	require.Len(t, report.Classifications, 3)
	assert.Greater(t, report.QualityScore, 0.0)
	assert.LessOrEqual(t, report.QualityScore, 100.0)
}

func TestAnalyzeResume_ContactRecovery(t *testing.T) {
	eng := testEngine(t)

	report := eng.AnalyzeResume(context.Background(), sampleResume)

	assert.Equal(t, "jane.smith@example.com", report.Contact.Email)
	assert.Equal(t, "555-123-4567", report.Contact.Phone)
}

func TestAnalyzeResume_ParenthesizedPhone(t *testing.T) {
	eng := testEngine(t)

	report := eng.AnalyzeResume(context.Background(), "Call (555) 987-6543 about SQL work.")
	assert.Equal(t, "(555) 987-6543", report.Contact.Phone)
}

func TestAnalyzeResume_TextStats(t *testing.T) {
	eng := testEngine(t)

	report := eng.AnalyzeResume(context.Background(), "one two three\nfour five")

	assert.Equal(t, 5, report.Stats.Words)
	assert.Equal(t, 2, report.Stats.Lines)
	assert.Equal(t, len("one two three\nfour five"), report.Stats.Characters)
}

func TestAnalyzeResume_EmptyInputNeverFails(t *testing.T) {
	eng := testEngine(t)

	report := eng.AnalyzeResume(context.Background(), "")

	assert.NotEmpty(t, report.RunID)
	assert.Empty(t, report.Extraction.Skills)
	assert.Empty(t, report.Contact.Email)
	assert.Equal(t, 0, report.Stats.Words)
	require.Len(t, report.Classifications, 3)
}

func TestAnalyzeResume_RunIDsAreUnique(t *testing.T) {
	eng := testEngine(t)

	first := eng.AnalyzeResume(context.Background(), sampleResume)
	second := eng.AnalyzeResume(context.Background(), sampleResume)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestEngine_EndToEndGapFlow(t *testing.T) {
	eng := testEngine(t)
	ctx := context.Background()

	postings := make([]market.Posting, 20)
	for i := range postings {
		desc := "analyst duties"
		if i < 12 {
			desc += " with sql"
		}
		if i < 4 {
			desc += " and tableau"
		}
		postings[i] = market.Posting{Title: "Data Analyst", Description: desc}
	}

	profile, err := eng.BuildMarketProfile(ctx, "Data Analyst", postings)
	require.NoError(t, err)

	extracted := eng.ExtractSkills(ctx, sampleResume)
	report := eng.AnalyzeGap(extracted.Names(), profile)

	assert.Greater(t, report.ReadinessScore, 0.0)
	for _, m := range report.Matched {
		assert.Contains(t, profile.SkillNames(), m.Name)
	}

	entries := eng.Recommend(report.Missing, 0)
	assert.LessOrEqual(t, len(entries), 5)
}

func TestEngine_MarketProfileCaching(t *testing.T) {
	eng := testEngine(t)
	ctx := context.Background()

	calls := 0
	source := sourceFunc(func(context.Context, string) ([]market.Posting, error) {
		calls++
		return []market.Posting{{Description: "sql and excel"}}, nil
	})

	first, err := eng.MarketProfile(ctx, "Data Analyst", "us", source)
	require.NoError(t, err)
	second, err := eng.MarketProfile(ctx, "Data Analyst", "us", source)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)

	refreshed, err := eng.RefreshMarketProfile(ctx, "Data Analyst", "us", source)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NotSame(t, first, refreshed)
}

func TestEngine_GapSeverityReflectsDemand(t *testing.T) {
	eng := testEngine(t)

	profile := &types.MarketProfile{
		Role: "Data Analyst",
		Skills: []types.MarketSkill{
			{Name: "SQL", Percentage: 80, Priority: types.PriorityCritical},
		},
	}

	report := eng.AnalyzeGap(nil, profile)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, types.SeverityCritical, report.Missing[0].Severity)
}

// sourceFunc adapts a function to market.DocumentSource.
type sourceFunc func(context.Context, string) ([]market.Posting, error)

func (f sourceFunc) FetchPostings(ctx context.Context, role string) ([]market.Posting, error) {
	return f(ctx, role)
}
