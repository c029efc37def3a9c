package extraction

import (
	"context"
	"regexp"
	"strings"

	"github.com/jonathan/skillscope/internal/ontology"
	"github.com/jonathan/skillscope/internal/types"
)

// cuePatterns capture the text span immediately following a proficiency cue
// phrase. The span runs to the next comma or period.
var cuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`experience\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`proficient\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`knowledge\s+(?:of|in)\s+([^,.]+)`),
	regexp.MustCompile(`skilled\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`familiar\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`expertise\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`working\s+(?:with|knowledge|experience)\s+(?:of\s+)?([^,.]+)`),
	regexp.MustCompile(`background\s+(?:with|in|using)\s+([^,.]+)`),
	regexp.MustCompile(`hands[- ]on\s+(?:with|experience)\s+(?:with\s+|in\s+)?([^,.]+)`),
	regexp.MustCompile(`strong\s+(?:knowledge|skills|experience)\s+(?:of|in|with)\s+([^,.]+)`),
}

var spanSeparatorRe = regexp.MustCompile(`[,;&/\s]+`)

// ContextualStrategy finds skills named right after proficiency cue phrases
// ("experience with", "proficient in", ...). Tokens in the captured span are
// matched against the ontology's flat vocabulary; matches carry a reduced
// confidence because the span may name things that are not skills.
type ContextualStrategy struct {
	ont *ontology.Ontology
}

// NewContextualStrategy creates the cue-phrase strategy.
func NewContextualStrategy(ont *ontology.Ontology) *ContextualStrategy {
	return &ContextualStrategy{ont: ont}
}

// Method identifies this strategy in extraction results.
func (s *ContextualStrategy) Method() types.ExtractionMethod {
	return types.MethodContextual
}

// Extract scans all cue patterns and resolves span tokens through the
// ontology vocabulary.
func (s *ContextualStrategy) Extract(_ context.Context, text string) ([]types.SkillCandidate, error) {
	if text == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var found []types.SkillCandidate

	for _, cue := range cuePatterns {
		for _, match := range cue.FindAllStringSubmatch(text, -1) {
			for _, token := range s.spanTokens(match[1]) {
				name, ok := s.ont.CanonicalName(token)
				if !ok || seen[name] {
					continue
				}
				seen[name] = true
				found = append(found, types.SkillCandidate{
					Name:       name,
					Method:     types.MethodContextual,
					Confidence: contextualConfidence,
					Category:   s.ont.CategoryOf(name),
				})
			}
		}
	}
	return found, nil
}

// spanTokens splits a captured span into candidate tokens: single words plus
// adjacent pairs, so multi-word vocabulary entries like "power bi" resolve.
func (s *ContextualStrategy) spanTokens(span string) []string {
	words := spanSeparatorRe.Split(strings.TrimSpace(span), -1)

	tokens := make([]string, 0, len(words)*2)
	for i, w := range words {
		if w == "" {
			continue
		}
		tokens = append(tokens, w)
		if i+1 < len(words) && words[i+1] != "" {
			tokens = append(tokens, w+" "+words[i+1])
		}
	}
	return tokens
}
