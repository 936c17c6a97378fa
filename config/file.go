// Package config loads optional file configuration for the scraping
// engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wearscout/wearscout/scraper"
)

// FileConfig represents the structure of ~/.wearscout/config.yaml.
// Pointer fields distinguish "not set" from zero values; unset fields
// defer to the stored settings.
type FileConfig struct {
	// StorePath overrides where the SQLite state database lives.
	StorePath string `yaml:"store_path"`
	// ScrapeIntervalHours overrides the stored auto-scrape interval.
	// Zero disables automatic scraping.
	ScrapeIntervalHours *int `yaml:"scrape_interval_hours,omitempty"`
	// NotificationsEnabled overrides the stored notification toggle.
	NotificationsEnabled *bool `yaml:"notifications_enabled,omitempty"`
	// NewsSites and ProductSites extend the compiled-in site lists.
	NewsSites    []scraper.SiteProfile        `yaml:"news_sites,omitempty"`
	ProductSites []scraper.ProductSiteProfile `yaml:"product_sites,omitempty"`
}

// LoadConfigFile loads configuration from ~/.wearscout/config.yaml.
// Returns nil if the file doesn't exist (not an error). Returns error if
// the file exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	return LoadConfigFrom(filepath.Join(homeDir, ".wearscout", "config.yaml"))
}

// LoadConfigFrom loads configuration from an explicit path, with the
// same missing-file semantics as LoadConfigFile.
func LoadConfigFrom(path string) (*FileConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil // File doesn't exist -- not an error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
