package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// fallbackConfidence is the fixed conservative confidence reported whenever
// a heuristic, rather than a trained model, produced the prediction.
const fallbackConfidence = 0.5

var yearsRe = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)

var (
	seniorKeywords = []string{"senior", "lead", "manager", "director", "architect", "principal", "head of"}
	midKeywords    = []string{"specialist", "developer", "engineer", "analyst"}
	juniorKeywords = []string{"junior", "associate", "assistant", "trainee", "intern"}
)

// fallbackCategory assigns a job category from keyword membership.
func fallbackCategory(text string) string {
	switch {
	case containsAny(text, "data scientist", "machine learning", "analytics", "data analysis", "statistics"):
		return "Data Science"
	case containsAny(text, "frontend", "react", "vue", "angular", "ui"):
		return "Frontend Development"
	case containsAny(text, "devops", "kubernetes", "docker", "ci/cd", "terraform"):
		return "DevOps Engineering"
	case containsAny(text, "backend", "api", "server", "database"):
		return "Backend Development"
	default:
		return "Software Engineering"
	}
}

// fallbackExperience assigns a seniority band from explicit year mentions
// and title keywords.
func fallbackExperience(text string) string {
	years := maxYearsMentioned(text)

	switch {
	case years >= 8 || containsAny(text, seniorKeywords...):
		return "Senior"
	case years >= 4 || containsAny(text, midKeywords...):
		return "Mid"
	case years >= 1 || containsAny(text, juniorKeywords...):
		return "Junior"
	default:
		return "Entry"
	}
}

// fallbackMatchScore estimates fit from skill density and document length.
// Capped at 95; a trained model is required to score higher.
func fallbackMatchScore(text string, skillCount int) float64 {
	wordCount := len(strings.Fields(text))

	lengthBonus := float64(wordCount) / 25
	if lengthBonus > 30 {
		lengthBonus = 30
	}

	score := 30 + float64(skillCount)*8 + lengthBonus
	if score > 95 {
		score = 95
	}
	return score
}

func maxYearsMentioned(text string) int {
	years := 0
	for _, match := range yearsRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil && n > years {
			years = n
		}
	}
	return years
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
