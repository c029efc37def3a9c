package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillscope/internal/engine"
	"github.com/jonathan/skillscope/internal/observability"
	"github.com/jonathan/skillscope/internal/types"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Compare candidate skills against market demand",
	Long:  "Match a candidate's skills against a market demand profile and report readiness, matched skills, and prioritized gaps.",
	RunE:  runGap,
}

var (
	gapSkills       []string
	gapResumeFile   string
	gapProfileFile  string
	gapPostingsFile string
	gapRole         string
	gapOutputFile   string
)

func init() {
	gapCmd.Flags().StringSliceVarP(&gapSkills, "skills", "s", nil, "Candidate skills, comma separated")
	gapCmd.Flags().StringVar(&gapResumeFile, "resume", "", "Resume file to extract candidate skills from")
	gapCmd.Flags().StringVar(&gapProfileFile, "profile", "", "Saved market profile JSON (from the market command)")
	gapCmd.Flags().StringVarP(&gapPostingsFile, "postings", "p", "", "Path to JSON file of job postings (alternative to --profile)")
	gapCmd.Flags().StringVarP(&gapRole, "role", "r", "", "Target role name (required with --postings)")
	gapCmd.Flags().StringVarP(&gapOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")

	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	if len(gapSkills) == 0 && gapResumeFile == "" {
		return fmt.Errorf("must provide --skills or --resume")
	}
	if gapProfileFile == "" && gapPostingsFile == "" {
		return fmt.Errorf("must provide --profile or --postings")
	}
	if gapProfileFile != "" && gapPostingsFile != "" {
		return fmt.Errorf("cannot use --profile with --postings")
	}
	if gapPostingsFile != "" && gapRole == "" {
		return fmt.Errorf("--role is required with --postings")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	eng, cleanup, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	profile, err := resolveProfile(ctx, eng)
	if err != nil {
		return err
	}

	skills := gapSkills
	if gapResumeFile != "" {
		extracted, err := resumeSkills(ctx, eng, gapResumeFile)
		if err != nil {
			return err
		}
		skills = append(skills, extracted...)
	}

	report := eng.AnalyzeGap(skills, profile)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintGapReport(report)
	}

	return writeJSON(gapOutputFile, report)
}

func resolveProfile(ctx context.Context, eng *engine.Engine) (*types.MarketProfile, error) {
	if gapProfileFile != "" {
		data, err := os.ReadFile(gapProfileFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file: %w", err)
		}
		var profile types.MarketProfile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
		}
		return &profile, nil
	}

	postings, err := loadPostings(gapPostingsFile)
	if err != nil {
		return nil, err
	}
	profile, err := eng.BuildMarketProfile(ctx, gapRole, postings)
	if err != nil {
		return nil, fmt.Errorf("failed to build market profile: %w", err)
	}
	return profile, nil
}

func resumeSkills(ctx context.Context, eng *engine.Engine, path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	extraction := eng.ExtractSkills(ctx, string(content))
	return extraction.Names(), nil
}
