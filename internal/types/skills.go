// Package types contains the shared data model for the skill extraction
// and market-gap analysis engine.
package types

// SkillCategory buckets skills for market profiles.
type SkillCategory string

const (
	CategoryTechnical    SkillCategory = "technical"
	CategoryTools        SkillCategory = "tools"
	CategorySoftSkills   SkillCategory = "soft_skills"
	CategoryDataAnalysis SkillCategory = "data_analysis"
	CategoryBusiness     SkillCategory = "business"
)

// ExtractionMethod identifies which strategy produced a skill candidate.
type ExtractionMethod string

const (
	MethodPattern    ExtractionMethod = "pattern"
	MethodContextual ExtractionMethod = "contextual"
	MethodSemantic   ExtractionMethod = "semantic"
	MethodMultiword  ExtractionMethod = "multiword"
)

// ExtractionStatus distinguishes a full extraction from one where an optional
// strategy (semantic) was configured but could not run.
type ExtractionStatus string

const (
	ExtractionOk       ExtractionStatus = "ok"
	ExtractionDegraded ExtractionStatus = "degraded"
)

// SkillCandidate is a single skill found in a document. Name is the
// ontology's canonical display form.
type SkillCandidate struct {
	Name       string           `json:"name"`
	Method     ExtractionMethod `json:"method"`
	Confidence float64          `json:"confidence"`
	Category   SkillCategory    `json:"category"`
}

// ExtractionResult is the de-duplicated skill set for one document. When the
// same skill is found by multiple methods, the highest-confidence candidate
// is kept.
type ExtractionResult struct {
	Skills []SkillCandidate `json:"skills"`
	Status ExtractionStatus `json:"status"`
}

// Names returns the canonical names of all extracted skills.
func (r *ExtractionResult) Names() []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// Has reports whether a skill with the given canonical name was extracted.
func (r *ExtractionResult) Has(name string) bool {
	for _, s := range r.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}
