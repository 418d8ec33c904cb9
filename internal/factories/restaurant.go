package factories

import (
	"fmt"
	"strings"
	"sync"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/lucsky/cuid"
)

var cuisines = []string{"Burgers", "Salad", "Italian", "Indian", "American", "Japanese", "Mexican", "Chinese", "Thai", "Mediterranean"}

type RestaurantFactory struct {
	slugCache sync.Map // to track used slugs
	stories   StoryFactory
}

// CreateRestaurant builds a restaurant with storyCount generated stories.
func (rf *RestaurantFactory) CreateRestaurant(storyCount int) *models.Restaurant {
	name := fake.Company().Name()
	restaurant := &models.Restaurant{
		ID:       cuid.New(),
		Name:     name,
		ImageURL: "https://cdn.foodstories.dev/" + rf.createUniqueSlug(name),
	}

	cuisine := pick(cuisines)
	for i := 0; i < storyCount; i++ {
		restaurant.Stories = append(restaurant.Stories, rf.stories.CreateStory(restaurant, cuisine))
	}
	return restaurant
}

// CreateCatalog generates a full catalog as configured.
func (rf *RestaurantFactory) CreateCatalog(config *models.Config) []models.Restaurant {
	restaurants := make([]models.Restaurant, 0, config.GeneratedRestaurants)
	for i := 0; i < config.GeneratedRestaurants; i++ {
		restaurants = append(restaurants, *rf.CreateRestaurant(config.GeneratedStoriesPerRestaurant))
	}
	return restaurants
}

func (rf *RestaurantFactory) createUniqueSlug(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, base)

	slug := base
	counter := 1

	for {
		if _, exists := rf.slugCache.LoadOrStore(slug, true); !exists {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
		counter++
	}
}
