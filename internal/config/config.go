// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the vector store

	// Retrieval
	RetrievalK      int `json:"retrieval_k,omitempty"`       // Documents returned per query
	RetrievalFetchK int `json:"retrieval_fetch_k,omitempty"` // Candidate pool size before MMR

	// Refinement
	ScoreThreshold int `json:"score_threshold,omitempty"` // Minimum accepted score (0-100)
	MaxRefinements int `json:"max_refinements,omitempty"` // Extra generation calls allowed

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for serve mode

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed progress information
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		RetrievalK:      5,
		RetrievalFetchK: 15,
		ScoreThreshold:  75,
		MaxRefinements:  2,
		Port:            8080,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// after merging with flags and environment variables.
func (c *Config) Validate() error {
	if c.RetrievalK < 0 {
		return fmt.Errorf("config error: 'retrieval_k' must be non-negative")
	}
	if c.RetrievalFetchK < 0 {
		return fmt.Errorf("config error: 'retrieval_fetch_k' must be non-negative")
	}
	if c.RetrievalK > 0 && c.RetrievalFetchK > 0 && c.RetrievalFetchK < c.RetrievalK {
		return fmt.Errorf("config error: 'retrieval_fetch_k' must be >= 'retrieval_k'")
	}
	if c.ScoreThreshold < 0 || c.ScoreThreshold > 100 {
		return fmt.Errorf("config error: 'score_threshold' must be between 0 and 100")
	}
	if c.MaxRefinements < 0 {
		return fmt.Errorf("config error: 'max_refinements' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values on top of the built-in
// defaults before CLI flags are considered.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.RetrievalK == 0 {
		result.RetrievalK = defaults.RetrievalK
	}
	if result.RetrievalFetchK == 0 {
		result.RetrievalFetchK = defaults.RetrievalFetchK
	}
	if result.ScoreThreshold == 0 {
		result.ScoreThreshold = defaults.ScoreThreshold
	}
	if result.MaxRefinements == 0 {
		result.MaxRefinements = defaults.MaxRefinements
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}
