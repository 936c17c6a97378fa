// Package scraper fetches web pages and extracts structured values from
// their markup. It knows two extraction shapes: listing pages that carry
// repeated article blocks, and single product pages described by their
// own title, meta description and headings.
package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Pages are requested with a browser-like user agent; several of the
// configured news sites serve stripped markup to obvious bots.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// fetchTimeout bounds every page request. There is no retry; a slow site
// simply fails its slot in the cycle.
const fetchTimeout = 10 * time.Second

// FetchError reports a failed page fetch: network error, timeout, or a
// non-2xx response. It is recoverable at single-site granularity -- a
// cycle logs it and moves on to the next site.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves raw page bodies over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with the standard timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// NewFetcherWithClient creates a fetcher with a custom HTTP client (for
// testing).
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch performs a GET against the URL and returns the raw response
// body. Any failure -- transport error, timeout, or a status outside the
// 2xx range -- is returned as a *FetchError.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	return body, nil
}
