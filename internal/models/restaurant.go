package models

type Restaurant struct {
	ID       string      `json:"id" yaml:"id"`
	Name     string      `json:"name" yaml:"name"`
	ImageURL string      `json:"imageUrl" yaml:"imageUrl"`
	Stories  []DishStory `json:"stories" yaml:"stories"`
}

// FlattenStories returns every story of every restaurant, in catalog order.
func FlattenStories(restaurants []Restaurant) []DishStory {
	var stories []DishStory
	for _, r := range restaurants {
		stories = append(stories, r.Stories...)
	}
	return stories
}
