// Package config provides run configuration loading and validation for the
// CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents tool-level defaults that can be loaded from a JSON
// file. All fields are optional; command-line flags take priority over
// config values.
type Config struct {
	OutDir         string `json:"out_dir,omitempty"`         // Directory the output JSON is written to
	UserAgent      string `json:"user_agent,omitempty"`      // User-Agent for generic website fetches
	SECUserAgent   string `json:"sec_user_agent,omitempty"`  // User-Agent for SEC fetches (empty sends none)
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"` // HTTP timeout in seconds
	WithMetadata   bool   `json:"with_metadata,omitempty"`   // Write the .meta.json sidecar
	UseBrowser     bool   `json:"use_browser,omitempty"`     // Use headless browser for SPA sites
	Strict         bool   `json:"strict,omitempty"`          // Abort on any read error instead of embedding it
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
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
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	return nil
}

// ApplyTo fills unset request fields from the config values. Bool fields
// cannot distinguish unset from false, so a true in either the config or
// the request wins; the CLI layer applies explicit flag overrides first.
func (c *Config) ApplyTo(r *Request) {
	if r.OutDir == "" {
		r.OutDir = c.OutDir
	}
	if r.UserAgent == "" {
		r.UserAgent = c.UserAgent
	}
	if r.SECUserAgent == "" {
		r.SECUserAgent = c.SECUserAgent
	}
	if r.Timeout == 0 && c.TimeoutSeconds > 0 {
		r.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	r.WithMetadata = r.WithMetadata || c.WithMetadata
	r.UseBrowser = r.UseBrowser || c.UseBrowser
	r.Strict = r.Strict || c.Strict
	r.Verbose = r.Verbose || c.Verbose
}
