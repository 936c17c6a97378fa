// Package catalog defines the product record and the reconciliation
// logic that decides whether a freshly scraped candidate inserts a new
// catalog entry or updates an existing one.
package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is one cataloged wearable-AI product or product mention.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	URL           string    `json:"url"`
	Source        string    `json:"source"`
	Category      string    `json:"category"`
	BodyPlacement string    `json:"bodyPlacement"`
	SensoryInputs []string  `json:"sensoryInputs"`
	Features      []string  `json:"features"`
	Price         string    `json:"price,omitempty"`
	PricingModel  string    `json:"pricingModel,omitempty"`
	IsAlwaysOn    bool      `json:"isAlwaysOn"`
	// Headings is only populated by ad-hoc single-URL scrapes.
	Headings []string `json:"headings,omitempty"`
	// Timestamp is the creation time; it never changes after the first
	// insertion, even when the record is updated.
	Timestamp time.Time `json:"timestamp"`
	// LastUpdated is refreshed on every write.
	LastUpdated time.Time `json:"lastUpdated"`
}

// NewID generates a product identifier. IDs are stable for the life of a
// catalog entry.
func NewID() string {
	return "product-" + uuid.New().String()
}

// NormalizeTitle lower-cases and trims a title for identity comparison.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// SameEntity reports whether a candidate and an existing product refer to
// the same entity: their normalized titles are equal, or their URLs are
// equal. Near-duplicate titles (trailing punctuation, "Pro" suffixes)
// are deliberately distinct entities.
func SameEntity(existing, candidate Product) bool {
	if NormalizeTitle(existing.Title) == NormalizeTitle(candidate.Title) {
		return true
	}
	return existing.URL != "" && existing.URL == candidate.URL
}
