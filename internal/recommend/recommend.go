// Package recommend turns the missing skills from a gap report into
// templated learning-path suggestions.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillscope/internal/types"
)

// DefaultLimit is the number of learning-path entries produced when the
// caller does not specify one.
const DefaultLimit = 5

type template struct {
	family     string
	time       string
	difficulty string
	resources  []string
}

var databaseTemplate = template{
	family:     "database",
	time:       "2-4 weeks",
	difficulty: "beginner to intermediate",
	resources: []string{
		"SQL Tutorial on W3Schools",
		"SQLBolt interactive lessons",
		"Coursera SQL courses",
	},
}

var visualizationTemplate = template{
	family:     "visualization",
	time:       "3-6 weeks",
	difficulty: "intermediate",
	resources: []string{
		"Official Tableau/Power BI training",
		"YouTube tutorials",
		"Udemy visualization courses",
	},
}

var programmingTemplate = template{
	family:     "programming",
	time:       "4-8 weeks",
	difficulty: "beginner to advanced",
	resources: []string{
		"Python.org tutorial",
		"Codecademy Python course",
		"Real Python articles",
	},
}

// LearningPath maps the highest-demand missing skills to study suggestions.
// Input order is preserved, so callers that pass gap-report output get
// entries sorted by demand. A non-positive limit falls back to DefaultLimit.
func LearningPath(missing []types.MissingSkill, limit int) []types.LearningPathEntry {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(missing) > limit {
		missing = missing[:limit]
	}

	entries := make([]types.LearningPathEntry, 0, len(missing))
	for _, skill := range missing {
		entries = append(entries, entryFor(skill))
	}
	return entries
}

// Roadmap buckets learning-path entries by their market priority so a
// candidate can sequence critical skills before nice-to-haves.
func Roadmap(entries []types.LearningPathEntry) *types.LearningRoadmap {
	roadmap := &types.LearningRoadmap{}
	for _, entry := range entries {
		switch entry.Priority {
		case types.PriorityCritical, types.PriorityHigh:
			roadmap.HighPriority = append(roadmap.HighPriority, entry)
		case types.PriorityMedium:
			roadmap.MediumPriority = append(roadmap.MediumPriority, entry)
		default:
			roadmap.LowPriority = append(roadmap.LowPriority, entry)
		}
	}
	return roadmap
}

func entryFor(skill types.MissingSkill) types.LearningPathEntry {
	tpl := templateFor(skill.Name)
	return types.LearningPathEntry{
		Skill:          skill.Name,
		TemplateFamily: tpl.family,
		EstimatedTime:  tpl.time,
		Difficulty:     tpl.difficulty,
		Resources:      tpl.resources,
		Priority:       skill.Priority,
		DemandPct:      skill.DemandPct,
	}
}

// templateFor picks a resource family by keyword. Unrecognized skills get a
// generic template with the skill name substituted into the resources.
func templateFor(name string) template {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "sql") || strings.Contains(lower, "database"):
		return databaseTemplate
	case strings.Contains(lower, "tableau") || strings.Contains(lower, "power bi") || strings.Contains(lower, "visualization"):
		return visualizationTemplate
	case strings.Contains(lower, "python") || strings.Contains(lower, "programming"):
		return programmingTemplate
	default:
		return template{
			family:     "generic",
			time:       "2-6 weeks",
			difficulty: "varies",
			resources: []string{
				fmt.Sprintf("%s documentation", name),
				fmt.Sprintf("Online %s courses", name),
				fmt.Sprintf("%s community tutorials", name),
			},
		}
	}
}
