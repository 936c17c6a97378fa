package scraper

// Profile kinds. HTML profiles are scraped with CSS selectors; feed
// profiles are RSS or Atom feeds whose entries already carry the listing
// tuple fields.
const (
	KindHTML = "html"
	KindFeed = "feed"
)

// Selectors names the sub-elements inside a repeating article block that
// hold each listing field. The first match within a block wins for each
// field.
type Selectors struct {
	Articles    string `yaml:"articles" json:"articles"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link"`
}

// SiteProfile describes one news listing source.
type SiteProfile struct {
	URL  string `yaml:"url" json:"url"`
	Kind string `yaml:"kind,omitempty" json:"kind,omitempty"` // defaults to "html"
	// Selectors is ignored for feed profiles.
	Selectors Selectors `yaml:"selectors,omitempty" json:"selectors,omitempty"`
}

// ProductSiteProfile describes a page that is itself a product's home
// page. The fixed name and category take precedence over anything the
// page says about itself.
type ProductSiteProfile struct {
	URL      string `yaml:"url" json:"url"`
	Name     string `yaml:"name" json:"name"`
	Category string `yaml:"category" json:"category"`
}

// DefaultNewsSites returns the compiled-in news listing profiles.
func DefaultNewsSites() []SiteProfile {
	return []SiteProfile{
		{
			URL: "https://www.wired.com/tag/wearables/",
			Selectors: Selectors{
				Articles:    "article",
				Title:       "h2, h3",
				Description: "p",
				Link:        "a",
			},
		},
		{
			URL: "https://techcrunch.com/tag/wearables/",
			Selectors: Selectors{
				Articles:    "article",
				Title:       "h2",
				Description: ".post-block__content",
				Link:        "a.post-block__title__link",
			},
		},
		{
			URL: "https://www.theverge.com/wearables",
			Selectors: Selectors{
				Articles:    ".c-entry-box--compact",
				Title:       "h2",
				Description: ".c-entry-box--compact__dek",
				Link:        "a.c-entry-box--compact__image-wrapper",
			},
		},
		{
			URL: "https://www.cnet.com/topics/wearable-tech/",
			Selectors: Selectors{
				Articles:    ".c-storiesListItem",
				Title:       "h3",
				Description: "p",
				Link:        "a",
			},
		},
	}
}

// DefaultProductSites returns the compiled-in product page profiles.
func DefaultProductSites() []ProductSiteProfile {
	return []ProductSiteProfile{
		{URL: "https://hu.ma.ne/", Name: "Humane AI Pin", Category: "AI Assistant"},
		{URL: "https://www.meta.com/smart-glasses/", Name: "Meta Ray-Ban Smart Glasses", Category: "Smart Glasses"},
		{URL: "https://www.apple.com/apple-watch-ultra/", Name: "Apple Watch Ultra", Category: "Smartwatch"},
		{URL: "https://ouraring.com/", Name: "Oura Ring", Category: "Health Monitor"},
		{URL: "https://www.rabbit.tech/", Name: "Rabbit R1", Category: "AI Assistant"},
	}
}
