// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"adshare/internal/logging"
)

// Env variable names recognized for credentials. A .env file in the working
// directory is loaded first, so tokens never need to live in the config file.
const (
	EnvAccessToken = "ADSHARE_ACCESS_TOKEN"
	EnvOrgID       = "ADSHARE_ORG_ID"
	EnvBaseURL     = "ADSHARE_API_URL"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// API contains Search Ads API connection settings
	API APIConfig `json:"api"`

	// Report contains report generation settings
	Report ReportConfig `json:"report"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// APIConfig contains Search Ads API connection settings
type APIConfig struct {
	// BaseURL is the API endpoint
	BaseURL string `json:"base_url"`

	// OrgID is the ad account organization ID
	OrgID string `json:"org_id"`

	// AccessToken authenticates requests. Usually supplied via env,
	// not the config file.
	AccessToken string `json:"access_token,omitempty"`

	// PageLimit is the page size for list calls
	PageLimit int `json:"page_limit"`
}

// ReportConfig contains report generation settings
type ReportConfig struct {
	// PollIntervalSeconds is the wait between report status polls
	PollIntervalSeconds float64 `json:"poll_interval_seconds"`

	// TimeoutSeconds bounds report generation
	TimeoutSeconds float64 `json:"timeout_seconds"`

	// DefaultDays is the default lookback window
	DefaultDays int `json:"default_days"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// NoColor disables colored terminal output
	NoColor bool `json:"no_color"`

	// TableLimit caps rows rendered in summary tables
	TableLimit int `json:"table_limit"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		API: APIConfig{
			BaseURL:   "https://api.searchads.apple.com/api/v5",
			PageLimit: 1000,
		},
		Report: ReportConfig{
			PollIntervalSeconds: 3.0,
			TimeoutSeconds:      120.0,
			DefaultDays:         7,
		},
		Output: OutputConfig{
			NoColor:    false,
			TableLimit: 50,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".adshare.json")
}

// Load loads configuration from a file, layering env credentials on top
func Load(path string) (*Config, error) {
	// Missing .env is fine; credentials may come from the real environment.
	_ = godotenv.Load()

	config := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(data, config); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if v := os.Getenv(EnvAccessToken); v != "" {
		config.API.AccessToken = v
	}
	if v := os.Getenv(EnvOrgID); v != "" {
		config.API.OrgID = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		config.API.BaseURL = v
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
