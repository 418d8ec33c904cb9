package factories

import (
	"fmt"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/lucsky/cuid"
)

type StoryFactory struct {
	ingredients IngredientFactory
}

func (sf *StoryFactory) CreateStory(restaurant *models.Restaurant, cuisine string) models.DishStory {
	ingredients := sf.ingredients.CreateIngredients(fake.IntBetween(3, 5))
	price := fake.Float64(2, 8, 25)

	mediaCount := fake.IntBetween(1, 3)
	media := make([]models.Media, mediaCount)
	for i := range media {
		media[i] = sf.createMedia(restaurant, i, ingredients)
	}

	return models.DishStory{
		ID:             cuid.New(),
		RestaurantID:   restaurant.ID,
		RestaurantName: restaurant.Name,
		DishName:       generateRandomDish(cuisine),
		Price:          price,
		BasePrice:      price,
		Media:          media,
		Ingredients:    ingredients,
	}
}

func (sf *StoryFactory) createMedia(restaurant *models.Restaurant, index int, ingredients []models.Ingredient) models.Media {
	mediaType := models.MediaImage
	ext := "jpg"
	if fake.IntBetween(0, 3) == 0 {
		mediaType, ext = models.MediaVideo, "mp4"
	}

	hotspotCount := fake.IntBetween(2, 4)
	if hotspotCount > len(ingredients) {
		hotspotCount = len(ingredients)
	}
	hotspots := make([]models.Hotspot, 0, hotspotCount)
	for _, i := range rng.Perm(len(ingredients))[:hotspotCount] {
		hotspots = append(hotspots, models.Hotspot{
			ID:           cuid.New(),
			IngredientID: ingredients[i].ID,
			X:            fake.Float64(0, 20, 80),
			Y:            fake.Float64(0, 20, 80),
		})
	}

	return models.Media{
		Type:     mediaType,
		URL:      fmt.Sprintf("%s/media-%d.%s", restaurant.ImageURL, index, ext),
		Duration: float64(fake.IntBetween(4, 8)),
		Hotspots: hotspots,
	}
}

func generateRandomDish(cuisine string) string {
	items := map[string][]string{
		"Burgers":       {"Classic Burger", "Veggie Burger", "BBQ Bacon Burger", "Mushroom Swiss Burger"},
		"Salad":         {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
		"Italian":       {"Margherita Pizza", "Spaghetti Carbonara", "Lasagna", "Pepperoni Pizza"},
		"Indian":        {"Chicken Tikka Masala", "Vegetable Curry", "Biryani", "Paneer Butter Masala"},
		"American":      {"Cheeseburger", "Hot Dog", "BBQ Ribs", "Chicken Sandwich"},
		"Japanese":      {"Sushi Roll", "Ramen", "Tempura Bowl", "Teriyaki Chicken"},
		"Mexican":       {"Tacos", "Burrito", "Quesadilla", "Nachos"},
		"Chinese":       {"Kung Pao Chicken", "Fried Rice", "Dumplings", "Mapo Tofu"},
		"Thai":          {"Pad Thai", "Green Curry", "Tom Yum Noodles", "Basil Chicken"},
		"Mediterranean": {"Falafel Wrap", "Halloumi Bowl", "Chicken Shawarma", "Mezze Plate"},
	}
	if dishes, ok := items[cuisine]; ok {
		return pick(dishes)
	}
	return "Special of the Day"
}
