package models

import "time"

// CartEntry is a snapshot of a dish taken when it was added to the cart.
type CartEntry struct {
	ID             string         `json:"id"`
	StoryID        string         `json:"story_id"`
	Customizations Customizations `json:"customizations"`
	Price          float64        `json:"price"`
	AddedAt        time.Time      `json:"added_at"`
}
