package types

// LearningPathEntry is a templated learning suggestion for one missing skill.
type LearningPathEntry struct {
	Skill          string       `json:"skill"`
	TemplateFamily string       `json:"template_family"`
	EstimatedTime  string       `json:"estimated_time"`
	Difficulty     string       `json:"difficulty"`
	Resources      []string     `json:"resources"`
	Priority       PriorityTier `json:"priority"`
	DemandPct      float64      `json:"demand_pct"`
}

// LearningRoadmap groups learning-path entries into priority buckets so a
// candidate can sequence their study plan.
type LearningRoadmap struct {
	HighPriority   []LearningPathEntry `json:"high_priority"`
	MediumPriority []LearningPathEntry `json:"medium_priority"`
	LowPriority    []LearningPathEntry `json:"low_priority"`
}
