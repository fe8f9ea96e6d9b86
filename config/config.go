package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	API    APIConfig    `json:"api" yaml:"api"`
	Store  StoreConfig  `json:"store" yaml:"store"`
	Report ReportConfig `json:"report" yaml:"report"`
	Log    LogConfig    `json:"log" yaml:"log"`
}

// APIConfig contains the exchange endpoint parameters
type APIConfig struct {
	BaseURL  string `json:"base_url" yaml:"base_url"`
	Language string `json:"language" yaml:"language"`
	Timeout  string `json:"timeout" yaml:"timeout"` // e.g., "30s"
	Limit    int    `json:"limit" yaml:"limit"`
}

// ParseTimeout converts the timeout string to time.Duration
func (a APIConfig) ParseTimeout() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(a.Timeout)
}

// StoreConfig selects where fetched trades are kept
type StoreConfig struct {
	Type string `json:"type" yaml:"type"` // "csv" or "sqlite"
	Path string `json:"path" yaml:"path"`
}

// ReportConfig contains presentation parameters
type ReportConfig struct {
	RecentTrades int    `json:"recent_trades" yaml:"recent_trades"`
	ChartPath    string `json:"chart_path" yaml:"chart_path"` // empty disables the chart
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"` // "text" or "json"
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Start from defaults so a partial file only overrides what it names.
	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Limit < 1 || c.API.Limit > MaxLimit {
		return fmt.Errorf("api.limit must be between 1 and %d", MaxLimit)
	}
	d, err := c.API.ParseTimeout()
	if err != nil {
		return fmt.Errorf("api.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	if c.Store.Type != "csv" && c.Store.Type != "sqlite" {
		return fmt.Errorf("store.type must be 'csv' or 'sqlite'")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	if c.Report.RecentTrades <= 0 {
		return fmt.Errorf("report.recent_trades must be positive")
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json'")
	}
	return nil
}

// MaxLimit is the largest page the history endpoint will return.
const MaxLimit = 100

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "https://fapi.bitunix.com",
			Language: "en-US",
			Timeout:  "30s",
			Limit:    50,
		},
		Store: StoreConfig{
			Type: "csv",
			Path: "./bitunix_futures_trades.csv",
		},
		Report: ReportConfig{
			RecentTrades: 10,
			ChartPath:    "./pnl_chart.png",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
