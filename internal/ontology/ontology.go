// Package ontology provides the static, versioned skill taxonomy shared by
// all extraction strategies. The data is embedded at compile time, validated
// against a JSON Schema, and never mutated after loading.
package ontology

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/skillscope/internal/schemas"
	"github.com/jonathan/skillscope/internal/types"
)

//go:embed ontology.json
var ontologyData string

//go:embed ontology.schema.json
var ontologySchema string

// Skill is one taxonomy entry: a canonical display name plus the compiled
// pattern variants that recognize it in normalized text.
type Skill struct {
	Name     string
	Category types.SkillCategory
	Patterns []*regexp.Regexp
}

// Ontology is the immutable skill taxonomy. Construct it once with Load and
// share it by reference; all accessors are safe for concurrent use.
type Ontology struct {
	version    string
	skills     []Skill
	byName     map[string]int    // lower(display name) -> index into skills
	vocabulary map[string]string // lower token or alias -> display name
	multiword  []string
}

// rawOntology mirrors the embedded JSON document.
type rawOntology struct {
	Version    string                `json:"version"`
	Categories map[string][]rawSkill `json:"categories"`
	Multiword  []string              `json:"multiword"`
}

type rawSkill struct {
	Name     string   `json:"name"`
	Patterns []string `json:"patterns"`
	Aliases  []string `json:"aliases"`
}

// Load parses, validates, and compiles the embedded taxonomy.
func Load() (*Ontology, error) {
	if err := schemas.ValidateJSONString(ontologySchema, ontologyData); err != nil {
		return nil, fmt.Errorf("ontology data failed schema validation: %w", err)
	}

	var raw rawOntology
	if err := json.Unmarshal([]byte(ontologyData), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ontology JSON: %w", err)
	}

	ont := &Ontology{
		version:    raw.Version,
		byName:     make(map[string]int),
		vocabulary: make(map[string]string),
		multiword:  raw.Multiword,
	}

	for category, entries := range raw.Categories {
		for _, entry := range entries {
			skill := Skill{
				Name:     entry.Name,
				Category: types.SkillCategory(category),
			}
			for _, pat := range entry.Patterns {
				re, err := compilePattern(pat)
				if err != nil {
					return nil, fmt.Errorf("invalid pattern %q for skill %q: %w", pat, entry.Name, err)
				}
				skill.Patterns = append(skill.Patterns, re)
			}

			ont.byName[strings.ToLower(entry.Name)] = len(ont.skills)
			ont.vocabulary[strings.ToLower(entry.Name)] = entry.Name
			for _, alias := range entry.Aliases {
				ont.vocabulary[strings.ToLower(alias)] = entry.Name
			}
			ont.skills = append(ont.skills, skill)
		}
	}

	return ont, nil
}

// MustLoad is Load for initialization paths where a broken embedded taxonomy
// is unrecoverable.
func MustLoad() *Ontology {
	ont, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load skill ontology: %v", err))
	}
	return ont
}

// Version returns the taxonomy version string.
func (o *Ontology) Version() string {
	return o.version
}

// Skills returns all taxonomy entries. Callers must not mutate the result.
func (o *Ontology) Skills() []Skill {
	return o.skills
}

// SkillNames returns the canonical display names of every taxonomy entry.
func (o *Ontology) SkillNames() []string {
	names := make([]string, 0, len(o.skills))
	for _, s := range o.skills {
		names = append(names, s.Name)
	}
	return names
}

// MultiwordPhrases returns the curated multi-word phrase list.
// Callers must not mutate the result.
func (o *Ontology) MultiwordPhrases() []string {
	return o.multiword
}

// CanonicalName maps a raw token to the taxonomy's display form. The second
// return value reports whether the token is part of the flat vocabulary.
func (o *Ontology) CanonicalName(raw string) (string, bool) {
	name, ok := o.vocabulary[strings.ToLower(strings.TrimSpace(raw))]
	return name, ok
}

// CategoryOf returns the category for a canonical skill name, defaulting to
// technical when the skill is not in the taxonomy.
func (o *Ontology) CategoryOf(name string) types.SkillCategory {
	if idx, ok := o.byName[strings.ToLower(name)]; ok {
		return o.skills[idx].Category
	}
	return types.CategoryTechnical
}

// DisplayForm returns the canonical display form for a phrase: the taxonomy
// spelling when the phrase is known, title case otherwise.
func (o *Ontology) DisplayForm(phrase string) string {
	if name, ok := o.CanonicalName(phrase); ok {
		return name
	}
	return titleCase(phrase)
}

// compilePattern wraps a pattern fragment with word-boundary assertions so
// short names cannot match inside unrelated words ("r" in "hr"). Boundaries
// are only added next to word characters; \b after "+" or "#" never matches.
func compilePattern(fragment string) (*regexp.Regexp, error) {
	expr := fragment
	if startsWithWordChar(fragment) {
		expr = `\b` + expr
	}
	if endsWithWordChar(fragment) {
		expr += `\b`
	}
	return regexp.Compile(`(?i)` + expr)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	// A trailing unescaped quantifier ("tables?", "qlik\w*") still ends at a
	// word boundary; an escaped metacharacter ("c\+\+") does not.
	if (c == '*' || c == '?' || c == '+') && len(s) >= 2 {
		return s[len(s)-2] != '\\'
	}
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func titleCase(phrase string) string {
	words := strings.Fields(strings.ToLower(phrase))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
