package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRelevant verifies relevance gating against the default tables
func TestRelevant(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"wearable keyword", "New wearable announced at CES", true},
		{"smart glasses keyword", "Hands on with the latest Smart Glasses", true},
		{"neural interface keyword", "A neural interface you can wear", true},
		{"case insensitive", "WEARABLE TECH roundup", true},
		{"no keywords", "Best budget desktops of the year", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Relevant(tt.text))
		})
	}
}

// TestCategory verifies first-match-wins category rules
func TestCategory(t *testing.T) {
	c := Default()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"glasses", "AR glasses with a display", "Smart Glasses"},
		{"watch", "a watch for runners", "Smartwatch"},
		{"ring shadowed by glasses", "smart glasses and a ring", "Smart Glasses"},
		{"ring", "a sleep-tracking ring", "Smart Ring"},
		{"headphones", "wireless headphones with builtin assistant", "Smart Earwear"},
		{"pin", "an ai pin you wield on stage", "AI Assistant"},
		{"health", "a medical-grade monitor", "Health Monitor"},
		{"fallback", "some unnamed gizmo", "Wearable AI"},
		// Substring matching has no word boundaries, so "smartwatch"
		// contains "ar" and lands in the glasses rule first. Documented
		// trade-off of the keyword tables.
		{"smartwatch false positive", "a smartwatch for runners", "Smart Glasses"},
		{"earbuds false positive", "translation earbuds", "Smart Glasses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Category(tt.text))
		})
	}
}

// TestBodyPlacement verifies first-match-wins placement ordering
func TestBodyPlacement(t *testing.T) {
	c := Default()

	// Text matching both Head-Mounted and Wrist-Worn keywords resolves to
	// the placement scanned first.
	assert.Equal(t, "Head-Mounted", c.BodyPlacement("smart glasses paired with a watch"))
	assert.Equal(t, "Wrist-Worn", c.BodyPlacement("a wristband tracker"))
	assert.Equal(t, "Finger-Worn", c.BodyPlacement("worn on the finger"))
	// "heart" must not trip the Head-Mounted rule via an "ar" substring.
	assert.Equal(t, "Finger-Worn", c.BodyPlacement("smart ring with heart rate monitor"))
	assert.Equal(t, Unknown, c.BodyPlacement("a mysterious gizmo"))
	assert.Equal(t, Unknown, c.BodyPlacement(""))
}

// TestSensoryInputs verifies accumulation across all modality groups
func TestSensoryInputs(t *testing.T) {
	c := Default()

	// Both a Visual and an Audio keyword present: both modalities returned.
	inputs := c.SensoryInputs("a camera and voice control built in")
	assert.Contains(t, inputs, "Visual")
	assert.Contains(t, inputs, "Audio")
	assert.Len(t, inputs, 2)

	// Modalities accumulate in table order regardless of keyword order in
	// the text.
	inputs = c.SensoryInputs("voice control first, then a camera")
	require.Len(t, inputs, 2)
	assert.Equal(t, []string{"Visual", "Audio"}, inputs)

	// The literal word "microphone" also trips the Chemical group via the
	// "ph" substring. Known false positive of boundary-free matching.
	inputs = c.SensoryInputs("a camera and a microphone")
	assert.Equal(t, []string{"Visual", "Audio", "Chemical"}, inputs)

	// No modality keyword: the Unknown sentinel, never an empty set.
	assert.Equal(t, []string{Unknown}, c.SensoryInputs("nothing to see"))
}

// TestFeatures verifies ordered, de-duplicated feature extraction
func TestFeatures(t *testing.T) {
	c := Default()

	features := c.Features("gps and bluetooth, with more bluetooth and heart rate tracking")
	assert.Equal(t, []string{"Heart rate", "Gps", "Bluetooth"}, features)

	assert.Empty(t, c.Features("no recognizable hardware"))
	assert.Empty(t, c.Features(""))
}

// TestAlwaysOn verifies the always-on phrase set
func TestAlwaysOn(t *testing.T) {
	c := Default()

	assert.True(t, c.AlwaysOn("an always-on display"))
	assert.True(t, c.AlwaysOn("continuous monitoring of vitals"))
	assert.True(t, c.AlwaysOn("tracks you 24/7"))
	assert.False(t, c.AlwaysOn("turns off at night"))
}

// TestPricingModel verifies pricing classification and its fallback
func TestPricingModel(t *testing.T) {
	c := Default()

	assert.Equal(t, "Subscription", c.PricingModel("requires a $24 monthly subscription"))
	assert.Equal(t, "One-time purchase", c.PricingModel("MSRP of $299"))
	assert.Equal(t, Unknown, c.PricingModel("tbd"))
}

// TestTotality verifies every classifier returns a defined result on
// arbitrary input, including an empty Classifier with no tables
func TestTotality(t *testing.T) {
	inputs := []string{"", "   ", "!!!", "ユビキタス wearable", "a\x00b"}

	for _, c := range []*Classifier{Default(), {}} {
		for _, text := range inputs {
			assert.NotPanics(t, func() {
				c.Relevant(text)
				c.Category(text)
				c.BodyPlacement(text)
				c.Features(text)
				c.AlwaysOn(text)
				c.PricingModel(text)
				require.NotEmpty(t, c.SensoryInputs(text))
			})
		}
	}

	// Zero classifier falls through to its zero-value defaults.
	empty := &Classifier{}
	assert.Equal(t, "", empty.Category("anything"))
	assert.Equal(t, Unknown, empty.BodyPlacement("anything"))
	assert.Equal(t, []string{Unknown}, empty.SensoryInputs("anything"))
}

// TestCustomTables verifies the tables are configuration, not hardwired
func TestCustomTables(t *testing.T) {
	c := &Classifier{
		RelevanceKeywords: []string{"gizmo"},
		CategoryRules:     []Rule{{Label: "Gizmo", Keywords: []string{"gizmo"}}},
		DefaultCategory:   "Gadget",
	}

	assert.True(t, c.Relevant("a gizmo appeared"))
	assert.Equal(t, "Gizmo", c.Category("a gizmo appeared"))
	assert.Equal(t, "Gadget", c.Category("something else"))
}
