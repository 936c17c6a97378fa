// Package discovery drives scraping cycles over the configured news and
// product sites, classifies what they yield, and reconciles the results
// into the persistent catalog. It also owns the recurring-cycle
// scheduler and the ad-hoc single-URL scrape used by the manual trigger
// surface.
package discovery

import (
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/wearscout/wearscout/catalog"
	"github.com/wearscout/wearscout/classify"
	"github.com/wearscout/wearscout/scraper"
	"github.com/wearscout/wearscout/store"
)

// State is the orchestrator's cycle state. It is per-instance, so
// multiple services (e.g. under test) never interfere.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Store is the persistence boundary the engine depends on. All reads and
// writes are whole-collection.
type Store interface {
	GetProducts() ([]catalog.Product, error)
	SetProducts([]catalog.Product) error
	GetSeenURLs() (map[string]bool, error)
	SetSeenURLs(map[string]bool) error
	SetLastScrapeTime(time.Time) error
	GetSettings() (store.Settings, error)
}

// Config holds the service's site lists and collaborators. Zero fields
// fall back to the compiled-in defaults.
type Config struct {
	NewsSites    []scraper.SiteProfile
	ProductSites []scraper.ProductSiteProfile
	Classifier   *classify.Classifier
	Fetcher      *scraper.Fetcher
}

// Service orchestrates scraping cycles.
type Service struct {
	store        Store
	notifier     Notifier
	fetcher      *scraper.Fetcher
	classifier   *classify.Classifier
	newsSites    []scraper.SiteProfile
	productSites []scraper.ProductSiteProfile

	// now is the clock; replaced in tests.
	now func() time.Time

	// mu guards state. writeMu serializes every read-modify-write of the
	// catalog and seen-URL collections, shared between background cycles
	// and ad-hoc scrapes.
	mu      sync.Mutex
	state   State
	writeMu sync.Mutex
}

// NewService creates a scraping service. A nil config uses the
// compiled-in site lists, the default classifier tables and a standard
// fetcher; a nil notifier logs discoveries.
func NewService(st Store, notifier Notifier, cfg *Config) *Service {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.NewsSites == nil {
		cfg.NewsSites = scraper.DefaultNewsSites()
	}
	if cfg.ProductSites == nil {
		cfg.ProductSites = scraper.DefaultProductSites()
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classify.Default()
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = scraper.NewFetcher()
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}

	return &Service{
		store:        st,
		notifier:     notifier,
		fetcher:      cfg.Fetcher,
		classifier:   cfg.Classifier,
		newsSites:    cfg.NewsSites,
		productSites: cfg.ProductSites,
		now:          time.Now,
	}
}

// State returns the current cycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// TryRunCycle runs one full scraping cycle unless one is already in
// progress, in which case the trigger is dropped and false returned. The
// cycle state is always released, even when a site panics midway.
func (s *Service) TryRunCycle() bool {
	s.mu.Lock()
	if s.state == Running {
		s.mu.Unlock()
		log.Println("INFO: scraping already in progress, skipping this cycle")
		return false
	}
	s.state = Running
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = Idle
		s.mu.Unlock()
	}()

	s.runCycle()
	return true
}

// runCycle performs one pass over every configured site. Site failures
// are logged and never abort the cycle.
func (s *Service) runCycle() {
	log.Println("INFO: running scraping cycle")

	for _, site := range s.newsSites {
		if err := s.scrapeNewsSite(site); err != nil {
			log.Printf("ERROR: failed to scrape %s: %v", site.URL, err)
		}
	}

	for _, site := range s.productSites {
		if err := s.scrapeProductSite(site); err != nil {
			log.Printf("ERROR: failed to scrape %s: %v", site.URL, err)
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if err := s.store.SetLastScrapeTime(s.now()); err != nil {
		log.Printf("ERROR: failed to record last scrape time: %v", err)
	}
}

// scrapeNewsSite fetches one listing source and processes its article
// tuples. Links are marked seen only once they were relevant and fully
// processed; irrelevant links may be revisited on a later cycle.
func (s *Service) scrapeNewsSite(site scraper.SiteProfile) error {
	body, err := s.fetcher.Fetch(site.URL)
	if err != nil {
		return err
	}

	var listings []scraper.Listing
	if site.Kind == scraper.KindFeed {
		listings, err = scraper.ExtractFeedListing(body, site)
		if err != nil {
			return err
		}
	} else {
		doc, err := scraper.ParseHTML(body)
		if err != nil {
			return fmt.Errorf("failed to parse HTML: %w", err)
		}
		listings = scraper.ExtractListing(doc, site)
	}

	log.Printf("INFO: found %d articles on %s", len(listings), site.URL)

	// One site's tuples are reconciled and persisted as a unit.
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	products, err := s.store.GetProducts()
	if err != nil {
		return err
	}
	seen, err := s.store.GetSeenURLs()
	if err != nil {
		return err
	}

	source := hostname(site.URL)
	newProducts := 0

	for _, listing := range listings {
		if listing.Link == "" || seen[listing.Link] {
			continue
		}

		combined := listing.Title + " " + listing.Description
		if !s.classifier.Relevant(combined) {
			continue
		}

		candidate := s.classifyCandidate(listing.Title, listing.Description, combined, listing.Link, source)

		var isNew bool
		products, isNew = catalog.Reconcile(candidate, products, s.now())
		seen[listing.Link] = true

		if isNew {
			newProducts++
			s.notify(Notification{
				Title:   "New Wearable AI Product Discovered",
				Message: "Found new product: " + listing.Title,
				Source:  source,
				URL:     listing.Link,
			})
		}
	}

	if err := s.store.SetProducts(products); err != nil {
		return err
	}
	if err := s.store.SetSeenURLs(seen); err != nil {
		return err
	}

	log.Printf("INFO: scraped %s, found %d new products", site.URL, newProducts)
	return nil
}

// classifyCandidate builds a news-path product record from a listing
// tuple's combined text.
func (s *Service) classifyCandidate(title, description, text, link, source string) catalog.Product {
	if description == "" {
		description = "No description available"
	}

	return catalog.Product{
		Title:         title,
		Description:   description,
		URL:           link,
		Source:        source,
		Category:      s.classifier.Category(text),
		BodyPlacement: s.classifier.BodyPlacement(text),
		SensoryInputs: s.classifier.SensoryInputs(text),
		Features:      s.classifier.Features(text),
		Price:         scraper.PriceUnknown,
		PricingModel:  s.classifier.PricingModel(text),
		IsAlwaysOn:    s.classifier.AlwaysOn(text),
	}
}

// scrapeProductSite fetches one product home page. The profile's fixed
// display name and category take precedence over the page's own title;
// the name is what the identity rule matches on.
func (s *Service) scrapeProductSite(site scraper.ProductSiteProfile) error {
	body, err := s.fetcher.Fetch(site.URL)
	if err != nil {
		return err
	}

	doc, err := scraper.ParseHTML(body)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	page := scraper.ExtractPage(doc)

	title := site.Name
	if title == "" {
		title = page.Title
	}

	candidate := catalog.Product{
		Title:         title,
		Description:   page.Description,
		URL:           site.URL,
		Source:        hostname(site.URL),
		Category:      site.Category,
		BodyPlacement: s.classifier.BodyPlacement(page.BodyText),
		SensoryInputs: s.classifier.SensoryInputs(page.BodyText),
		Features:      s.classifier.Features(page.BodyText),
		Price:         page.Price,
		PricingModel:  s.classifier.PricingModel(page.BodyText),
		IsAlwaysOn:    s.classifier.AlwaysOn(page.BodyText),
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	products, err := s.store.GetProducts()
	if err != nil {
		return err
	}

	products, isNew := catalog.Reconcile(candidate, products, s.now())
	if err := s.store.SetProducts(products); err != nil {
		return err
	}

	if isNew {
		log.Printf("INFO: added new product: %s", candidate.Title)
		s.notify(Notification{
			Title:   "New Wearable AI Product Added",
			Message: fmt.Sprintf("Added %s to the database", candidate.Title),
			Source:  hostname(site.URL),
			URL:     site.URL,
		})
	} else {
		log.Printf("INFO: updated product: %s", candidate.Title)
	}

	return nil
}

// ScrapeURL scrapes a single user-supplied URL synchronously and returns
// the resulting catalog record. Fetch and parse failures propagate to
// the caller; this is the one path where a scrape error is user-visible.
// It may run concurrently with a background cycle; catalog and seen-URL
// writes serialize on the same writer lock.
func (s *Service) ScrapeURL(pageURL string) (catalog.Product, error) {
	log.Printf("INFO: scraping URL: %s", pageURL)

	body, err := s.fetcher.Fetch(pageURL)
	if err != nil {
		return catalog.Product{}, err
	}

	doc, err := scraper.ParseHTML(body)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}
	page := scraper.ExtractPage(doc)

	description := page.Description
	if description == "" && len(page.Headings) > 0 {
		description = page.Headings[0]
	}
	if description == "" {
		description = scraper.ReadableExcerpt(body, pageURL)
	}
	if description == "" {
		description = "No description available"
	}

	candidate := catalog.Product{
		Title:         page.Title,
		Description:   description,
		URL:           pageURL,
		Source:        hostname(pageURL),
		Category:      s.classifier.Category(page.Title + " " + description + " " + page.BodyText),
		BodyPlacement: s.classifier.BodyPlacement(page.BodyText),
		SensoryInputs: s.classifier.SensoryInputs(page.BodyText),
		Features:      s.classifier.Features(page.BodyText),
		Price:         page.Price,
		PricingModel:  s.classifier.PricingModel(page.BodyText),
		IsAlwaysOn:    s.classifier.AlwaysOn(page.BodyText),
		Headings:      page.Headings,
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	products, err := s.store.GetProducts()
	if err != nil {
		return catalog.Product{}, err
	}
	seen, err := s.store.GetSeenURLs()
	if err != nil {
		return catalog.Product{}, err
	}

	products, isNew := catalog.Reconcile(candidate, products, s.now())
	seen[pageURL] = true

	if err := s.store.SetProducts(products); err != nil {
		return catalog.Product{}, err
	}
	if err := s.store.SetSeenURLs(seen); err != nil {
		return catalog.Product{}, err
	}
	if err := s.store.SetLastScrapeTime(s.now()); err != nil {
		return catalog.Product{}, err
	}

	if isNew {
		s.notify(Notification{
			Title:   "New Wearable AI Product Added",
			Message: fmt.Sprintf("Added %s to the database", candidate.Title),
			Source:  hostname(pageURL),
			URL:     pageURL,
		})
	}

	result, ok := findEntity(products, candidate)
	if !ok {
		// Unreachable: Reconcile always leaves the candidate's entity in
		// the catalog.
		return catalog.Product{}, fmt.Errorf("reconciled product not found for %s", pageURL)
	}
	return result, nil
}

// notify forwards a notification if the user has them enabled. Failures
// to read settings suppress the notification rather than the scrape.
func (s *Service) notify(n Notification) {
	settings, err := s.store.GetSettings()
	if err != nil {
		log.Printf("WARN: failed to read settings, dropping notification: %v", err)
		return
	}
	if !settings.NotificationsEnabled {
		return
	}
	s.notifier.Notify(n)
}

// findEntity returns the catalog entry that is the same entity as the
// candidate.
func findEntity(products []catalog.Product, candidate catalog.Product) (catalog.Product, bool) {
	for _, p := range products {
		if catalog.SameEntity(p, candidate) {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// hostname extracts the host from a URL for the product's source field.
func hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
