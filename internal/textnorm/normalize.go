// Package textnorm cleans raw document text for downstream skill extraction
// and classification.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]+>`)
	disallowedRe = regexp.MustCompile(`[^a-z0-9+#.\-\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases, strips markup, and collapses whitespace while
// preserving characters that carry meaning inside skill tokens (+ # . -).
// It never fails; empty or invalid input yields an empty string.
func Normalize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	if looksLikeHTML(s) {
		s = stripMarkup(s)
	}

	s = strings.ToLower(s)
	s = disallowedRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// looksLikeHTML reports whether the text contains tag-like markup worth
// parsing. A bare "<" in prose (e.g. "5 < 10") does not qualify.
func looksLikeHTML(s string) bool {
	return htmlTagRe.MatchString(s)
}

// stripMarkup extracts the visible text from HTML. Job-board descriptions
// often arrive as markup fragments; goquery handles nesting and entities
// better than tag-stripping regexes. Falls back to a regex strip when the
// fragment cannot be parsed.
func stripMarkup(s string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return htmlTagRe.ReplaceAllString(s, " ")
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body").Contents().Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
		sb.WriteString(" ")
	})
	if sb.Len() == 0 {
		return htmlTagRe.ReplaceAllString(s, " ")
	}
	return sb.String()
}
