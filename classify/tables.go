package classify

// Unknown is the label returned by classifiers that found no match.
const Unknown = "Unknown"

// Default returns the production keyword tables. The tables are data,
// not behavior: extending them does not change the classification
// contract, and tests may build a Classifier with their own tables.
func Default() *Classifier {
	return &Classifier{
		RelevanceKeywords: []string{
			"ai", "artificial intelligence", "machine learning", "neural", "smart glasses",
			"smartwatch", "wearable", "wearable tech", "wearable ai", "smart ring",
			"health monitor", "fitness tracker", "always-on", "always listening",
			"voice assistant", "augmented reality", "ar glasses", "smart earbuds",
			"biometric", "sensor", "neural interface", "brain-computer interface",
			"bci", "eeg", "emg", "smart clothing", "smart jewelry",
		},
		CategoryRules: []Rule{
			{Label: "Smart Glasses", Keywords: []string{"glasses", "ar", "vr"}},
			{Label: "Smartwatch", Keywords: []string{"watch"}},
			{Label: "Smart Ring", Keywords: []string{"ring"}},
			{Label: "Smart Earwear", Keywords: []string{"earbuds", "headphones"}},
			{Label: "AI Assistant", Keywords: []string{"pin", "clip", "badge"}},
			{Label: "Health Monitor", Keywords: []string{"health", "fitness", "medical"}},
		},
		DefaultCategory: "Wearable AI",
		PlacementRules: []Rule{
			// "ar" stays a category keyword but is too short for placement
			// matching: it appears inside "heart", "wearable" and most
			// placement-relevant prose, which would pin every device to
			// Head-Mounted. Placement uses the two-word forms instead.
			{Label: "Head-Mounted", Keywords: []string{"glasses", "headset", "earbuds", "headphones", "ar glasses", "vr"}},
			{Label: "Wrist-Worn", Keywords: []string{"watch", "wristband", "bracelet"}},
			{Label: "Neck/Torso", Keywords: []string{"necklace", "pendant", "pin", "clip", "badge"}},
			{Label: "Finger-Worn", Keywords: []string{"ring", "finger"}},
			{Label: "Face-Mounted", Keywords: []string{"mask", "face"}},
			{Label: "Foot/Ankle", Keywords: []string{"shoe", "insole", "sock", "ankle"}},
		},
		SensoryRules: []Rule{
			{Label: "Visual", Keywords: []string{"camera", "vision", "image", "photo", "video", "sight", "eye tracking"}},
			{Label: "Audio", Keywords: []string{"microphone", "voice", "sound", "hearing", "listen", "speech"}},
			{Label: "Touch/Haptic", Keywords: []string{"touch", "haptic", "vibration", "pressure", "accelerometer", "gyroscope"}},
			{Label: "Biometric", Keywords: []string{"heart rate", "pulse", "temperature", "blood", "sweat", "eeg", "emg", "ecg"}},
			{Label: "Chemical", Keywords: []string{"glucose", "oxygen", "ph", "hormone", "chemical"}},
		},
		FeatureKeywords: []string{
			"voice assistant", "health monitoring", "fitness tracking", "sleep tracking",
			"heart rate", "camera", "microphone", "gps", "bluetooth", "wifi",
			"waterproof", "battery life", "always-on", "touch control", "gesture control",
			"notification", "app", "ai assistant", "machine learning", "neural",
			"augmented reality", "virtual reality", "mixed reality",
		},
		AlwaysOnPhrases: []string{
			"always on", "always-on", "continuous monitoring", "24/7", "all day",
		},
		PricingRules: []Rule{
			{Label: "Subscription", Keywords: []string{"subscription", "per month", "monthly", "/month", "membership"}},
			{Label: "One-time purchase", Keywords: []string{"one-time", "buy now", "purchase", "msrp", "retail price"}},
		},
	}
}
