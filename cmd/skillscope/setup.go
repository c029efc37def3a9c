package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonathan/skillscope/internal/classify"
	"github.com/jonathan/skillscope/internal/config"
	"github.com/jonathan/skillscope/internal/embedding"
	"github.com/jonathan/skillscope/internal/engine"
	"github.com/jonathan/skillscope/internal/extraction"
	"github.com/jonathan/skillscope/internal/market"
	"github.com/jonathan/skillscope/internal/ontology"
)

// loadSettings merges the optional config file with environment variables.
func loadSettings() (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	if verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildEngine assembles the analysis engine. The semantic strategy is added
// only when an API key is configured; the trained classifier degrades to
// heuristics when no models directory is set.
func buildEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*engine.Engine, func(), error) {
	ont, err := ontology.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load skill ontology: %w", err)
	}

	opts := []extraction.Option{extraction.WithLogger(logger)}
	cleanup := func() {}
	if cfg.APIKey != "" {
		embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, extraction.WithEmbedder(embedder, ont, cfg.SemanticThreshold))
		cleanup = func() { _ = embedder.Close() }
	}
	extractor := extraction.NewExtractor(ont, opts...)

	var store classify.ModelStore
	if cfg.ModelsDir != "" {
		store = classify.NewFileModelStore(cfg.ModelsDir)
	}
	classifier := classify.NewClassifier(store, ont, logger)

	return engine.New(ont, extractor, classifier, logger), cleanup, nil
}

// loadPostings reads a JSON array of postings from a file.
func loadPostings(path string) ([]market.Posting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings file: %w", err)
	}
	var postings []market.Posting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to parse postings JSON: %w", err)
	}
	return postings, nil
}

// writeJSON marshals v with indentation to the given path, or stdout when
// the path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
