package types

// GapSeverity classifies how urgent a missing skill is, combining its
// prevalence percentage with its priority tier.
type GapSeverity string

const (
	SeverityCritical GapSeverity = "critical"
	SeverityHigh     GapSeverity = "high"
	SeverityMedium   GapSeverity = "medium"
	SeverityLow      GapSeverity = "low"
)

// MatchedSkill is a market skill the candidate already covers.
type MatchedSkill struct {
	Name      string       `json:"name"`
	DemandPct float64      `json:"demand_pct"`
	Priority  PriorityTier `json:"priority"`
}

// MissingSkill is a market skill the candidate lacks.
type MissingSkill struct {
	Name      string       `json:"name"`
	DemandPct float64      `json:"demand_pct"`
	Priority  PriorityTier `json:"priority"`
	Severity  GapSeverity  `json:"severity"`
}

// GapReport compares a candidate's skills against a market profile.
// Matched and Missing together cover every profile skill exactly once;
// the presentation slices are capped at 10 entries each while TotalMatched
// and TotalMissing retain the full counts.
type GapReport struct {
	TargetRole     string         `json:"target_role"`
	JobsAnalyzed   int            `json:"jobs_analyzed"`
	ReadinessScore float64        `json:"readiness_score"`
	Matched        []MatchedSkill `json:"matched"`
	Missing        []MissingSkill `json:"missing"`
	TotalMatched   int            `json:"total_matched"`
	TotalMissing   int            `json:"total_missing"`
	Insight        string         `json:"insight,omitempty"`
}
