package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
)

// ExtractFeedListing parses fetched RSS or Atom bytes into listing
// tuples. Feed entries already carry the three listing fields, so a feed
// profile needs no selectors; gofeed detects and normalizes both feed
// formats. Entries with an empty title are skipped, matching the HTML
// listing rule.
func ExtractFeedListing(body []byte, profile SiteProfile) ([]Listing, error) {
	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	var listings []Listing
	for _, item := range feed.Items {
		if item.Title == "" {
			continue
		}
		listings = append(listings, Listing{
			Title:       item.Title,
			Description: item.Description,
			Link:        resolveLink(item.Link, profile.URL),
		})
	}

	return listings, nil
}

// ReadableExcerpt runs readability extraction over raw page markup and
// returns a short description of the page's main content. Used as a
// description fallback for ad-hoc pages that carry no meta description.
// Returns "" when the page has no extractable article content.
func ReadableExcerpt(body []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		parsed = nil
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return ""
	}

	excerpt := strings.TrimSpace(article.Excerpt)
	if excerpt == "" {
		excerpt = strings.TrimSpace(article.TextContent)
	}
	if len(excerpt) > 500 {
		excerpt = excerpt[:500] + "..."
	}

	return excerpt
}
