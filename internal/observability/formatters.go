// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillscope/internal/engine"
	"github.com/jonathan/skillscope/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMarketProfile outputs a human-readable summary of a demand profile.
func (p *Printer) PrintMarketProfile(profile *types.MarketProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:      %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Postings:  %d\n", profile.JobsAnalyzed))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", profile.Status))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Top skills in demand:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := profile.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s  %.1f%% (%s)\n", s.Name, s.Percentage, s.Priority))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("MARKET DEMAND PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapReport outputs the readiness score with the matched and missing
// skill lists.
func (p *Printer) PrintGapReport(report *types.GapReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:  %s\n", report.TargetRole))
	sb.WriteString(fmt.Sprintf("Readiness:    %.1f%%\n", report.ReadinessScore))
	sb.WriteString("\n")

	if len(report.Matched) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", report.TotalMatched))
		count := min(len(report.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.Matched[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s  %.1f%%\n", m.Name, m.DemandPct))
		}
		if report.TotalMatched > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", report.TotalMatched-count))
		}
		sb.WriteString("\n")
	}

	if len(report.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", report.TotalMissing))
		count := min(len(report.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s  %.1f%% [%s]\n", m.Name, m.DemandPct, m.Severity))
		}
		if report.TotalMissing > count {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", report.TotalMissing-count))
		}
	}

	p.printBox("SKILL GAP REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResumeReport outputs the extraction, classification, and quality
// summary for a single document.
func (p *Printer) PrintResumeReport(report *engine.ResumeReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Quality:  %.1f/100\n", report.QualityScore))
	sb.WriteString(fmt.Sprintf("Length:   %d words, %d lines\n", report.Stats.Words, report.Stats.Lines))
	if report.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", report.Contact.Email))
	}
	if report.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", report.Contact.Phone))
	}
	sb.WriteString("\n")

	for _, r := range report.Classifications {
		if r.Task == types.TaskMatchScore {
			sb.WriteString(fmt.Sprintf("%-12s %.1f (%.0f%% conf, %s)\n", r.Task+":", r.Value, r.Confidence*100, r.Source))
		} else {
			sb.WriteString(fmt.Sprintf("%-12s %s (%.0f%% conf, %s)\n", r.Task+":", r.Label, r.Confidence*100, r.Source))
		}
	}
	sb.WriteString("\n")

	skills := report.Extraction.Skills
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills found (%d):\n", len(skills)))
		count := min(len(skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := skills[i]
			sb.WriteString(fmt.Sprintf("  • %s  %.2f (%s)\n", s.Name, s.Confidence, s.Method))
		}
		if len(skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPath outputs the recommended study plan.
func (p *Printer) PrintLearningPath(entries []types.LearningPathEntry) {
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO SKILL GAPS TO ADDRESS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("#%d  %s (%.1f%% demand, %s)\n", i+1, entry.Skill, entry.DemandPct, entry.Priority))
		sb.WriteString(fmt.Sprintf("    %s, %s\n", entry.EstimatedTime, entry.Difficulty))
		for _, res := range entry.Resources {
			if len(res) > 45 {
				res = res[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    • %s\n", res))
		}
		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LEARNING PATH", strings.TrimSuffix(sb.String(), "\n"))
}
