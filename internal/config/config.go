// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment variables.
type Config struct {
	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address

	// Matching
	MaxResults int     `json:"max_results,omitempty"` // Maximum matches returned per request
	MinScore   float64 `json:"min_score,omitempty"`   // Score threshold for returned matches
	PoolSize   int     `json:"pool_size,omitempty"`   // Similarity pre-selection pool size

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	JSONLogs    bool   `json:"json_logs,omitempty"`    // Emit JSON-encoded logs
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// Environment variable names recognized by FromEnv.
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvDatabaseURL = "DATABASE_URL"
	EnvListenAddr  = "LISTEN_ADDR"
)

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

// FromEnv fills unset fields from environment variables. Explicit config
// file values win over the environment.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
	if c.ListenAddr == "" {
		c.ListenAddr = os.Getenv(EnvListenAddr)
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("config error: 'pool_size' must be non-negative")
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("config error: 'min_score' must be within [0,1]")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. CLI flags always win for booleans, so those are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}
	if result.PoolSize == 0 {
		result.PoolSize = defaults.PoolSize
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	return result
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		ListenAddr: ":8080",
		MaxResults: 20,
		MinScore:   0.3,
		PoolSize:   50,
	}
}
