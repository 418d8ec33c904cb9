package models

// ViewerProfile describes how a simulated viewer behaves inside a story.
// Propensities are probabilities in [0,1].
type ViewerProfile struct {
	Curiosity        float64 `json:"curiosity"`         // taps hotspots
	Customization    float64 `json:"customization"`     // opens the panel and edits
	Purchase         float64 `json:"purchase"`          // adds to cart
	Patience         float64 `json:"patience"`          // lets media play instead of skipping
	ExtraPreference  float64 `json:"extra_preference"`  // buys extras from the detail card
	RemovePreference float64 `json:"remove_preference"` // removes removable ingredients
}

type Viewer struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Segment     string        `json:"segment"` // "foodie", "regular", "browser"
	Profile     ViewerProfile `json:"profile"`
	Preferences []string      `json:"preferences"` // restaurant ids, most preferred first
}
