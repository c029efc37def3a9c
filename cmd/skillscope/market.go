package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillscope/internal/observability"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Build a market demand profile from job postings",
	Long:  "Aggregate skill frequencies across a batch of job postings into a ranked demand profile for a target role.",
	RunE:  runMarket,
}

var (
	marketPostingsFile string
	marketRole         string
	marketOutputFile   string
)

func init() {
	marketCmd.Flags().StringVarP(&marketPostingsFile, "postings", "p", "", "Path to JSON file of job postings (required)")
	marketCmd.Flags().StringVarP(&marketRole, "role", "r", "", "Target role name (required)")
	marketCmd.Flags().StringVarP(&marketOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = marketCmd.MarkFlagRequired("postings")
	_ = marketCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(marketCmd)
}

func runMarket(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	postings, err := loadPostings(marketPostingsFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	eng, cleanup, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	profile, err := eng.BuildMarketProfile(ctx, marketRole, postings)
	if err != nil {
		return fmt.Errorf("failed to build market profile: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMarketProfile(profile)
	}

	return writeJSON(marketOutputFile, profile)
}
