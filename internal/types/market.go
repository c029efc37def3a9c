package types

// PriorityTier is the discrete demand bucket derived from a skill's
// prevalence across analyzed postings.
type PriorityTier string

const (
	PriorityCritical PriorityTier = "critical"
	PriorityHigh     PriorityTier = "high"
	PriorityMedium   PriorityTier = "medium"
	PriorityLow      PriorityTier = "low"
)

// ProfileStatus tags a market profile so callers can distinguish a healthy
// aggregation from intentional degradation without parsing log output.
type ProfileStatus string

const (
	ProfileOk           ProfileStatus = "ok"
	ProfileDegraded     ProfileStatus = "degraded"
	ProfileInsufficient ProfileStatus = "insufficient"
)

// MarketSkill is one ranked entry in a market demand profile.
// Percentage is always Frequency/JobsAnalyzed*100 and lands in [0,100].
type MarketSkill struct {
	Name       string        `json:"name"`
	Frequency  int           `json:"frequency"`
	Percentage float64       `json:"percentage"`
	Priority   PriorityTier  `json:"priority"`
	Category   SkillCategory `json:"category"`
}

// MarketProfile is an aggregated skill-frequency snapshot for a target role.
// Skills are sorted by frequency descending and capped at 50 entries.
type MarketProfile struct {
	Role         string                          `json:"role"`
	JobsAnalyzed int                             `json:"jobs_analyzed"`
	Skills       []MarketSkill                   `json:"skills"`
	Categories   map[SkillCategory][]MarketSkill `json:"categories"`
	Status       ProfileStatus                   `json:"status"`
}

// SkillNames returns the canonical names of all profile skills in rank order.
func (p *MarketProfile) SkillNames() []string {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return names
}
