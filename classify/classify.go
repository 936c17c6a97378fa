// Package classify turns free text about wearable devices into typed
// product attributes using ordered keyword tables. All matching is
// case-insensitive substring matching with no word-boundary requirement,
// so short keywords can match inside longer words; callers accept that
// trade-off in exchange for zero parsing machinery.
package classify

import "strings"

// Rule associates a label with the keywords that imply it. Rules are
// evaluated in slice order, so earlier rules shadow later ones wherever
// the matching strategy is first-match-wins.
type Rule struct {
	Label    string
	Keywords []string
}

// Classifier holds the keyword tables driving classification. A zero
// Classifier matches nothing; use Default for the production tables.
type Classifier struct {
	// RelevanceKeywords gate whether text is about wearable AI at all.
	RelevanceKeywords []string
	// CategoryRules map keywords to a product category, first match wins.
	CategoryRules []Rule
	// DefaultCategory is returned when no category rule matches.
	DefaultCategory string
	// PlacementRules map keywords to a body placement, first match wins.
	PlacementRules []Rule
	// SensoryRules map keywords to sensory-input modalities. Unlike the
	// placement rules, every matching rule contributes its label.
	SensoryRules []Rule
	// FeatureKeywords are scanned in order; each present keyword yields
	// one title-cased feature tag.
	FeatureKeywords []string
	// AlwaysOnPhrases mark a device as always-on when any is present.
	AlwaysOnPhrases []string
	// PricingRules map keywords to a pricing model, first match wins.
	PricingRules []Rule
}

// Relevant reports whether the text mentions wearable AI, i.e. whether
// any relevance keyword appears in it.
func (c *Classifier) Relevant(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range c.RelevanceKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Category returns the product category for the text. Rules are scanned
// in order and the first rule with any matching keyword wins; text
// matching no rule gets the default category.
func (c *Classifier) Category(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range c.CategoryRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Label
		}
	}
	return c.DefaultCategory
}

// BodyPlacement returns where on the body the device is worn, or
// "Unknown" when no placement keyword matches. First match wins.
func (c *Classifier) BodyPlacement(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range c.PlacementRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Label
		}
	}
	return Unknown
}

// SensoryInputs returns every sensory modality the text mentions, in
// table order. Returns ["Unknown"] when nothing matches, never an empty
// slice.
func (c *Classifier) SensoryInputs(text string) []string {
	lower := strings.ToLower(text)
	var inputs []string
	for _, rule := range c.SensoryRules {
		if containsAny(lower, rule.Keywords) {
			inputs = append(inputs, rule.Label)
		}
	}
	if len(inputs) == 0 {
		return []string{Unknown}
	}
	return inputs
}

// Features returns a title-cased tag for each feature keyword present in
// the text, preserving the keyword table's order. Each keyword
// contributes at most one tag.
func (c *Classifier) Features(text string) []string {
	lower := strings.ToLower(text)
	features := []string{}
	for _, kw := range c.FeatureKeywords {
		if strings.Contains(lower, kw) {
			features = append(features, titleCase(kw))
		}
	}
	return features
}

// AlwaysOn reports whether the text describes an always-on device.
func (c *Classifier) AlwaysOn(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range c.AlwaysOnPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// PricingModel returns the pricing model implied by the text, or
// "Unknown" when no pricing keyword matches. First match wins.
func (c *Classifier) PricingModel(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range c.PricingRules {
		if containsAny(lower, rule.Keywords) {
			return rule.Label
		}
	}
	return Unknown
}

// containsAny reports whether any keyword appears in the already
// lower-cased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// titleCase upper-cases only the first byte of the keyword, leaving the
// rest untouched ("heart rate" -> "Heart rate").
func titleCase(kw string) string {
	if kw == "" {
		return kw
	}
	return strings.ToUpper(kw[:1]) + kw[1:]
}
