package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCategory(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"data scientist with statistics background", "Data Science"},
		{"analytics and data analysis for reporting", "Data Science"},
		{"react and vue frontend work", "Frontend Development"},
		{"kubernetes and terraform pipelines", "DevOps Engineering"},
		{"api and database server development", "Backend Development"},
		{"generalist position", "Software Engineering"},
		{"", "Software Engineering"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackCategory(tt.text), "text: %q", tt.text)
	}
}

func TestFallbackExperience(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"10 years of sql", "Senior"},
		{"lead data analyst", "Senior"},
		{"5 yrs experience", "Mid"},
		{"software engineer position", "Mid"},
		{"2 years with excel", "Junior"},
		{"junior role", "Junior"},
		{"intern opening", "Junior"},
		{"no experience needed", "Entry"},
		{"", "Entry"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, fallbackExperience(tt.text), "text: %q", tt.text)
	}
}

func TestFallbackExperience_PicksLargestYearMention(t *testing.T) {
	// 2 years in one place, 9 in another: the larger mention wins.
	assert.Equal(t, "Senior", fallbackExperience("2 years of python, 9 years of sql"))
}

func TestFallbackMatchScore(t *testing.T) {
	// Base of 30 with no skills or content.
	assert.InDelta(t, 30, fallbackMatchScore("", 0), 1e-9)

	// Skills raise the score 8 points each.
	assert.InDelta(t, 46, fallbackMatchScore("", 2), 1e-9)

	// Capped at 95 no matter the input.
	assert.InDelta(t, 95, fallbackMatchScore("", 20), 1e-9)
}

func TestFallbackMatchScore_LengthBonusCaps(t *testing.T) {
	long := ""
	for i := 0; i < 2000; i++ {
		long += "word "
	}
	// 2000 words would give an 80-point bonus uncapped; it stops at 30.
	assert.InDelta(t, 60, fallbackMatchScore(long, 0), 1e-9)
}
