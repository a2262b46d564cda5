package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"out_dir": "/tmp/scrapes",
		"user_agent": "doc-scraper/1.0",
		"sec_user_agent": "Example Corp admin@example.com",
		"timeout_seconds": 45,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/scrapes", cfg.OutDir)
	assert.Equal(t, "doc-scraper/1.0", cfg.UserAgent)
	assert.Equal(t, "Example Corp admin@example.com", cfg.SECUserAgent)
	assert.Equal(t, 45, cfg.TimeoutSeconds)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Strict)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestConfigValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{TimeoutSeconds: -5}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timeout_seconds")
}

func TestConfigValidate_Valid(t *testing.T) {
	cfg := &Config{
		OutDir:         "out",
		TimeoutSeconds: 30,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestApplyTo_FillsUnsetFields(t *testing.T) {
	cfg := &Config{
		OutDir:         "/data/scrapes",
		UserAgent:      "doc-scraper/1.0",
		SECUserAgent:   "Example Corp admin@example.com",
		TimeoutSeconds: 45,
		WithMetadata:   true,
	}

	req := &Request{}
	cfg.ApplyTo(req)

	assert.Equal(t, "/data/scrapes", req.OutDir)
	assert.Equal(t, "doc-scraper/1.0", req.UserAgent)
	assert.Equal(t, "Example Corp admin@example.com", req.SECUserAgent)
	assert.Equal(t, 45*time.Second, req.Timeout)
	assert.True(t, req.WithMetadata)
}

func TestApplyTo_RequestValuesWin(t *testing.T) {
	cfg := &Config{
		OutDir:         "/data/scrapes",
		UserAgent:      "config-agent",
		TimeoutSeconds: 45,
	}

	req := &Request{
		OutDir:    "cli-out",
		UserAgent: "cli-agent",
		Timeout:   10 * time.Second,
	}
	cfg.ApplyTo(req)

	assert.Equal(t, "cli-out", req.OutDir)
	assert.Equal(t, "cli-agent", req.UserAgent)
	assert.Equal(t, 10*time.Second, req.Timeout)
}

func TestApplyTo_BoolsAreSticky(t *testing.T) {
	cfg := &Config{Verbose: true}

	req := &Request{Strict: true}
	cfg.ApplyTo(req)

	// A true on either side survives the merge.
	assert.True(t, req.Verbose)
	assert.True(t, req.Strict)
	assert.False(t, req.UseBrowser)
}
