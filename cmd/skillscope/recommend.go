package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillscope/internal/observability"
	"github.com/jonathan/skillscope/internal/recommend"
	"github.com/jonathan/skillscope/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Build a learning path from a gap report",
	Long:  "Turn the missing skills in a gap report into a prioritized learning path with templated resources and time estimates.",
	RunE:  runRecommend,
}

var (
	recommendGapFile    string
	recommendLimit      int
	recommendAsRoadmap  bool
	recommendOutputFile string
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendGapFile, "gap", "g", "", "Saved gap report JSON (from the gap command, required)")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Maximum learning-path entries (default 5)")
	recommendCmd.Flags().BoolVar(&recommendAsRoadmap, "roadmap", false, "Group entries into priority buckets")
	recommendCmd.Flags().StringVarP(&recommendOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = recommendCmd.MarkFlagRequired("gap")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(recommendGapFile)
	if err != nil {
		return fmt.Errorf("failed to read gap report: %w", err)
	}
	var report types.GapReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("failed to parse gap report JSON: %w", err)
	}

	limit := recommendLimit
	if limit == 0 {
		limit = cfg.Recommendations
	}
	entries := recommend.LearningPath(report.Missing, limit)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintLearningPath(entries)
	}

	if recommendAsRoadmap {
		return writeJSON(recommendOutputFile, recommend.Roadmap(entries))
	}
	return writeJSON(recommendOutputFile, entries)
}
