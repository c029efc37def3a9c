package engine

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/skillscope/internal/types"
)

// ContactInfo holds contact details recovered from resume text.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// TextStats summarizes the size of the analyzed document.
type TextStats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Lines      int `json:"lines"`
}

// ResumeReport is the combined output of a full resume analysis run.
type ResumeReport struct {
	RunID           string                       `json:"run_id"`
	AnalyzedAt      time.Time                    `json:"analyzed_at"`
	Extraction      types.ExtractionResult       `json:"extraction"`
	Classifications []types.ClassificationResult `json:"classifications"`
	QualityScore    float64                      `json:"quality_score"`
	Contact         ContactInfo                  `json:"contact"`
	Stats           TextStats                    `json:"stats"`
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b|\(\d{3}\)\s*\d{3}[-.]?\d{4}`)
)

// AnalyzeResume runs the full single-document pipeline: skill extraction,
// all classification tasks, the quality score, contact recovery, and text
// statistics. It never fails; degraded components are reflected in the
// report's status fields.
func (e *Engine) AnalyzeResume(ctx context.Context, text string) *ResumeReport {
	report := &ResumeReport{
		RunID:      newRunID(),
		AnalyzedAt: time.Now().UTC(),
	}

	report.Extraction = e.extractor.Extract(ctx, text)
	report.Classifications = e.classifier.ClassifyAll(text)
	report.QualityScore = e.classifier.QualityScore(text, report.Extraction, report.Classifications)
	report.Contact = extractContact(text)
	report.Stats = textStats(text)

	e.logger.Info("resume analyzed",
		"run_id", report.RunID,
		"skills", len(report.Extraction.Skills),
		"quality", report.QualityScore)
	return report
}

// extractContact scans the raw text, not the normalized form, since
// normalization strips the punctuation these formats depend on.
func extractContact(text string) ContactInfo {
	return ContactInfo{
		Email: emailRe.FindString(text),
		Phone: strings.TrimSpace(phoneRe.FindString(text)),
	}
}

func textStats(text string) TextStats {
	stats := TextStats{
		Characters: len(text),
		Words:      len(strings.Fields(text)),
	}
	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}
	return stats
}
