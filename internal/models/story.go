package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Hotspot is a tappable marker over a media frame. X and Y are percentages
// of the frame width and height.
type Hotspot struct {
	ID           string  `json:"id" yaml:"id"`
	IngredientID string  `json:"ingredientId" yaml:"ingredientId"`
	X            float64 `json:"x" yaml:"x"`
	Y            float64 `json:"y" yaml:"y"`
}

type Media struct {
	Type     MediaType `json:"type" yaml:"type"`
	URL      string    `json:"url" yaml:"url"`
	Duration float64   `json:"duration" yaml:"duration"` // seconds
	Hotspots []Hotspot `json:"hotspots" yaml:"hotspots"`
}

// DurationTime returns the media duration as a time.Duration. Non-positive
// durations come back as zero.
func (m *Media) DurationTime() time.Duration {
	if m.Duration <= 0 {
		return 0
	}
	return time.Duration(m.Duration * float64(time.Second))
}

// DishStory is one dish's full-screen presentation.
type DishStory struct {
	ID             string       `json:"id" yaml:"id"`
	RestaurantID   string       `json:"restaurantId" yaml:"restaurantId"`
	RestaurantName string       `json:"restaurantName" yaml:"restaurantName"`
	DishName       string       `json:"dishName" yaml:"dishName"`
	Price          float64      `json:"price" yaml:"price"`
	BasePrice      float64      `json:"basePrice" yaml:"basePrice"`
	Media          []Media      `json:"media" yaml:"media"`
	Ingredients    []Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Ingredient looks up an ingredient by id.
func (s *DishStory) Ingredient(id string) (*Ingredient, bool) {
	for i := range s.Ingredients {
		if s.Ingredients[i].ID == id {
			return &s.Ingredients[i], true
		}
	}
	return nil, false
}

// Hotspot looks up a hotspot of the given media item by id.
func (s *DishStory) Hotspot(mediaIndex int, id string) (*Hotspot, bool) {
	if mediaIndex < 0 || mediaIndex >= len(s.Media) {
		return nil, false
	}
	for i := range s.Media[mediaIndex].Hotspots {
		if s.Media[mediaIndex].Hotspots[i].ID == id {
			return &s.Media[mediaIndex].Hotspots[i], true
		}
	}
	return nil, false
}

// DefaultCustomizations seeds a customization map with every ingredient's
// catalog quantity.
func (s *DishStory) DefaultCustomizations() Customizations {
	c := make(Customizations, len(s.Ingredients))
	for _, ing := range s.Ingredients {
		c[ing.ID] = ing.Quantity
	}
	return c
}
