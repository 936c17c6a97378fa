package scraper

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// priceRe matches currency-prefixed ("$199", "$24.99") or
// currency-suffixed ("199 $") amounts. The first match in a page's body
// text is taken as the price.
var priceRe = regexp.MustCompile(`(\$\d+(\.\d{2})?)|(\d+\s*\$)`)

// PriceUnknown is the price recorded when no amount was found.
const PriceUnknown = "Unknown"

// Listing is one (title, description, link) tuple extracted from a news
// listing page.
type Listing struct {
	Title       string
	Description string
	Link        string
}

// Page holds the fields extracted from a single product or ad-hoc page.
// Absent fields degrade to zero values; only a fetch failure is an
// error.
type Page struct {
	Title       string
	Description string
	Headings    []string
	// BodyText is the page's visible text, lower-cased for
	// classification.
	BodyText string
	Price    string
}

// ParseHTML parses raw markup into a document. goquery tolerates badly
// malformed HTML, so in practice this only fails on reader errors.
func ParseHTML(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

// ExtractListing walks the profile's repeating article blocks and pulls
// a listing tuple out of each. Blocks with an empty title are skipped.
// Root-relative links are resolved against the profile URL's scheme and
// host.
func ExtractListing(doc *goquery.Document, profile SiteProfile) []Listing {
	var listings []Listing

	doc.Find(profile.Selectors.Articles).Each(func(_ int, block *goquery.Selection) {
		title := strings.TrimSpace(block.Find(profile.Selectors.Title).First().Text())
		if title == "" {
			return
		}

		description := strings.TrimSpace(block.Find(profile.Selectors.Description).First().Text())

		link, _ := block.Find(profile.Selectors.Link).First().Attr("href")
		link = resolveLink(link, profile.URL)

		listings = append(listings, Listing{
			Title:       title,
			Description: description,
			Link:        link,
		})
	})

	return listings
}

// ExtractPage pulls the single-page shape out of a document: document
// title, meta description, h1/h2 headings in document order, lower-cased
// body text, and a best-effort price.
func ExtractPage(doc *goquery.Document) Page {
	page := Page{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
	}

	doc.Find("h1, h2").Each(func(_ int, heading *goquery.Selection) {
		text := strings.TrimSpace(heading.Text())
		if text != "" {
			page.Headings = append(page.Headings, text)
		}
	})

	page.BodyText = strings.ToLower(doc.Find("body").Text())
	page.Price = extractPrice(page.BodyText)

	return page
}

// extractPrice returns the first price-looking token in the text, or
// PriceUnknown.
func extractPrice(text string) string {
	if match := priceRe.FindString(text); match != "" {
		return match
	}
	return PriceUnknown
}

// resolveLink turns a root-relative link into an absolute URL on the
// site's own scheme and host. Absolute and empty links pass through
// unchanged, as do links on sites whose own URL does not parse.
func resolveLink(link, siteURL string) string {
	if !strings.HasPrefix(link, "/") {
		return link
	}

	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return link
	}

	return base.Scheme + "://" + base.Host + link
}
