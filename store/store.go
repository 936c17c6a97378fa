// Package store persists the product catalog, the seen-URL set, the
// last-scrape timestamp and user settings in SQLite. Every collection is
// read and written whole, as a JSON value under a fixed key; there is no
// partial-update contract.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wearscout/wearscout/catalog"
)

// Keys for the state table.
const (
	keyProducts   = "products"
	keySeenURLs   = "scrapedUrls"
	keyLastScrape = "lastScrape"
	keySettings   = "settings"
)

// Settings holds the user preferences the scraping engine consults.
type Settings struct {
	AutoScrapeIntervalHours int  `json:"autoScrapeIntervalHours"`
	NotificationsEnabled    bool `json:"notificationsEnabled"`
}

// DefaultSettings returns the settings used before the user has saved
// any.
func DefaultSettings() Settings {
	return Settings{
		AutoScrapeIntervalHours: 24,
		NotificationsEnabled:    true,
	}
}

// Store manages engine state using SQLite.
type Store struct {
	db *sql.DB
}

// Open creates a store backed by the database at the given path, creating
// the schema if needed.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// initSchema creates the state table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetProducts returns the full catalog. An empty database yields an
// empty catalog, not an error.
func (s *Store) GetProducts() ([]catalog.Product, error) {
	var products []catalog.Product
	ok, err := s.getJSON(keyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []catalog.Product{}, nil
	}
	return products, nil
}

// SetProducts replaces the full catalog.
func (s *Store) SetProducts(products []catalog.Product) error {
	return s.setJSON(keyProducts, products)
}

// GetSeenURLs returns the set of already-processed article links.
func (s *Store) GetSeenURLs() (map[string]bool, error) {
	var urls []string
	ok, err := s.getJSON(keySeenURLs, &urls)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(urls))
	if !ok {
		return seen, nil
	}
	for _, u := range urls {
		seen[u] = true
	}
	return seen, nil
}

// SetSeenURLs replaces the seen-URL set. URLs are stored sorted so the
// persisted value is deterministic.
func (s *Store) SetSeenURLs(seen map[string]bool) error {
	urls := make([]string, 0, len(seen))
	for u := range seen {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return s.setJSON(keySeenURLs, urls)
}

// GetLastScrapeTime returns when the last cycle completed, or nil if no
// cycle has run yet.
func (s *Store) GetLastScrapeTime() (*time.Time, error) {
	var ts time.Time
	ok, err := s.getJSON(keyLastScrape, &ts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &ts, nil
}

// SetLastScrapeTime records the completion time of a cycle.
func (s *Store) SetLastScrapeTime(ts time.Time) error {
	return s.setJSON(keyLastScrape, ts)
}

// GetSettings returns the saved settings, or the defaults when none have
// been saved.
func (s *Store) GetSettings() (Settings, error) {
	var settings Settings
	ok, err := s.getJSON(keySettings, &settings)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return DefaultSettings(), nil
	}
	return settings, nil
}

// SetSettings replaces the saved settings.
func (s *Store) SetSettings(settings Settings) error {
	return s.setJSON(keySettings, settings)
}

// getJSON reads and unmarshals the value under key. The second return
// value reports whether the key was present.
func (s *Store) getJSON(key string, v any) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

// setJSON marshals v and writes it under key.
func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = s.db.Exec("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)", key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
