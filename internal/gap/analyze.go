// Package gap compares a candidate's skills against a market demand profile
// and produces a quantitative readiness report.
package gap

import (
	"fmt"
	"strings"

	"github.com/jonathan/skillscope/internal/types"
)

// presentationCap limits the matched and missing lists in a report; the
// full counts are retained in TotalMatched and TotalMissing.
const presentationCap = 10

// Analyze splits every profile skill into matched or missing for the given
// candidate skill list and computes the demand-weighted readiness score.
// The union of matched and missing always covers the profile's skill set
// exactly: no duplication, no omission. Analysis is a pure function of its
// inputs.
func Analyze(candidateSkills []string, profile *types.MarketProfile) *types.GapReport {
	report := &types.GapReport{
		TargetRole:   profile.Role,
		JobsAnalyzed: profile.JobsAnalyzed,
	}

	candidates := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			candidates = append(candidates, s)
		}
	}

	var matched []types.MatchedSkill
	var missing []types.MissingSkill
	var totalDemand, matchedDemand float64

	for _, skill := range profile.Skills {
		totalDemand += skill.Percentage

		if candidateHas(candidates, skill.Name) {
			matchedDemand += skill.Percentage
			matched = append(matched, types.MatchedSkill{
				Name:      skill.Name,
				DemandPct: skill.Percentage,
				Priority:  skill.Priority,
			})
		} else {
			missing = append(missing, types.MissingSkill{
				Name:      skill.Name,
				DemandPct: skill.Percentage,
				Priority:  skill.Priority,
				Severity:  severityFor(skill.Priority, skill.Percentage),
			})
		}
	}

	if totalDemand > 0 {
		report.ReadinessScore = matchedDemand / totalDemand * 100
	}

	report.TotalMatched = len(matched)
	report.TotalMissing = len(missing)
	report.Matched = capMatched(matched)
	report.Missing = capMissing(missing)
	report.Insight = insight(report.ReadinessScore, report.TotalMatched, report.TotalMissing)
	return report
}

// candidateHas applies the deliberately lenient matching rule: a candidate
// entry matches a market skill when one string contains the other,
// case-insensitively, so "Basic SQL" covers "SQL". The tradeoff is known:
// very short skill names can match inside unrelated candidate entries.
func candidateHas(candidates []string, marketSkill string) bool {
	market := strings.ToLower(marketSkill)
	for _, candidate := range candidates {
		if strings.Contains(candidate, market) || strings.Contains(market, candidate) {
			return true
		}
	}
	return false
}

// severityFor grades a missing skill by its priority tier and prevalence.
func severityFor(priority types.PriorityTier, pct float64) types.GapSeverity {
	switch {
	case priority == types.PriorityCritical || pct >= 70:
		return types.SeverityCritical
	case priority == types.PriorityHigh || pct >= 40:
		return types.SeverityHigh
	case priority == types.PriorityMedium || pct >= 20:
		return types.SeverityMedium
	default:
		return types.SeverityLow
	}
}

// insight produces the readiness narrative for the report.
func insight(readiness float64, matched, missing int) string {
	switch {
	case readiness >= 80:
		return fmt.Sprintf("Excellent! You're %.0f%% ready for this role. You have %d key skills mastered. Focus on the remaining %d skills to become a top candidate.", readiness, matched, missing)
	case readiness >= 60:
		return fmt.Sprintf("Good progress! You're %.0f%% ready with %d skills covered. Learning the %d missing skills will raise your readiness significantly.", readiness, matched, missing)
	case readiness >= 40:
		return fmt.Sprintf("You're on the right track with %d skills. Focus on the %d missing skills, starting with the high-priority ones.", matched, missing)
	default:
		return fmt.Sprintf("You have a foundation with %d skills. Build core competencies in the %d missing skills, starting with beginner-friendly ones to build momentum.", matched, missing)
	}
}

func capMatched(matched []types.MatchedSkill) []types.MatchedSkill {
	if len(matched) > presentationCap {
		return matched[:presentationCap]
	}
	return matched
}

func capMissing(missing []types.MissingSkill) []types.MissingSkill {
	if len(missing) > presentationCap {
		return missing[:presentationCap]
	}
	return missing
}
