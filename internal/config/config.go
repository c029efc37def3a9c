// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file
// and overridden by environment variables. All fields are optional; missing
// values use defaults or CLI flags.
type Config struct {
	// Paths
	ModelsDir string `json:"models_dir,omitempty" validate:"omitempty,dir"` // Directory holding trained model files
	Postings  string `json:"postings,omitempty"`                            // Path to a JSON file of job postings

	// Market analysis
	Role        string `json:"role,omitempty"`                                // Target role for market analysis
	Locale      string `json:"locale,omitempty"`                              // Posting locale, used as a cache dimension
	Parallelism int    `json:"parallelism,omitempty" validate:"gte=0,lte=64"` // Concurrent posting extractions

	// Semantic matching
	APIKey            string  `json:"api_key,omitempty"`                                   // Embedding provider API key
	EmbeddingModel    string  `json:"embedding_model,omitempty"`                           // Embedding model name
	SemanticThreshold float64 `json:"semantic_threshold,omitempty" validate:"gte=0,lte=1"` // Cosine similarity cutoff

	// Output
	Recommendations int  `json:"recommendations,omitempty" validate:"gte=0,lte=50"` // Learning-path entries to produce
	Verbose         bool `json:"verbose,omitempty"`                                 // Print detailed debug information
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv overlays environment variables onto the config. Environment values
// win over file values; flags are merged later and win over both.
func (c *Config) FromEnv() {
	if v := os.Getenv("SKILLSCOPE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("SKILLSCOPE_MODELS_DIR"); v != "" {
		c.ModelsDir = v
	}
	if v := os.Getenv("SKILLSCOPE_EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
	if v := os.Getenv("SKILLSCOPE_SEMANTIC_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.SemanticThreshold = f
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field %s failed rule %q", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Postings != "" {
		if _, err := os.Stat(c.Postings); os.IsNotExist(err) {
			return fmt.Errorf("config error: postings file not found: %s", c.Postings)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ModelsDir == "" {
		result.ModelsDir = defaults.ModelsDir
	}
	if result.Postings == "" {
		result.Postings = defaults.Postings
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}
	if result.Recommendations == 0 {
		result.Recommendations = defaults.Recommendations
	}
	if result.SemanticThreshold == 0 {
		result.SemanticThreshold = defaults.SemanticThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
