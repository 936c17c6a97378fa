package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfigFrom_Missing verifies a missing file is not an error
func TestLoadConfigFrom_Missing(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Nil(t, cfg)
}

// TestLoadConfigFrom_Full verifies parsing of every section
func TestLoadConfigFrom_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
store_path: /tmp/wearscout.db
scrape_interval_hours: 6
notifications_enabled: false
news_sites:
  - url: https://example.com/wearables
    selectors:
      articles: article
      title: h2
      description: p
      link: a
  - url: https://example.com/feed.xml
    kind: feed
product_sites:
  - url: https://example.com/band
    name: Aura Band
    category: Health Monitor
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFrom(path)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "/tmp/wearscout.db", cfg.StorePath)
	require.NotNil(t, cfg.ScrapeIntervalHours)
	assert.Equal(t, 6, *cfg.ScrapeIntervalHours)
	require.NotNil(t, cfg.NotificationsEnabled)
	assert.False(t, *cfg.NotificationsEnabled)

	require.Len(t, cfg.NewsSites, 2)
	assert.Equal(t, "h2", cfg.NewsSites[0].Selectors.Title)
	assert.Equal(t, "feed", cfg.NewsSites[1].Kind)

	require.Len(t, cfg.ProductSites, 1)
	assert.Equal(t, "Aura Band", cfg.ProductSites[0].Name)
}

// TestLoadConfigFrom_PartialDefaults verifies unset optional fields stay
// nil so stored settings win
func TestLoadConfigFrom_PartialDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: data.db\n"), 0o600))

	cfg, err := LoadConfigFrom(path)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Nil(t, cfg.ScrapeIntervalHours)
	assert.Nil(t, cfg.NotificationsEnabled)
	assert.Empty(t, cfg.NewsSites)
}

// TestLoadConfigFrom_Malformed verifies parse errors surface
func TestLoadConfigFrom_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_path: [broken"), 0o600))

	_, err := LoadConfigFrom(path)

	assert.Error(t, err)
}
