// Package catalog supplies the ordered restaurant list the story viewer is
// built on, from a built-in mock, a file, S3, Postgres or a generator.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/chrisdamba/foodstories/internal/models"
)

var (
	ErrStoryNotFound      = errors.New("story not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// Provider loads a catalog. Callers must treat the result as read-only.
type Provider interface {
	Restaurants(ctx context.Context) ([]models.Restaurant, error)
}

// Load reads the catalog from p and validates it.
func Load(ctx context.Context, p Provider) ([]models.Restaurant, error) {
	restaurants, err := p.Restaurants(ctx)
	if err != nil {
		return nil, err
	}
	if err := Validate(restaurants); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return restaurants, nil
}

func FindRestaurant(restaurants []models.Restaurant, id string) (*models.Restaurant, error) {
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRestaurantNotFound, id)
}

func FindStory(restaurants []models.Restaurant, id string) (*models.DishStory, error) {
	for i := range restaurants {
		for j := range restaurants[i].Stories {
			if restaurants[i].Stories[j].ID == id {
				return &restaurants[i].Stories[j], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
}

// Static serves a fixed catalog.
type Static []models.Restaurant

func (s Static) Restaurants(context.Context) ([]models.Restaurant, error) {
	return s, nil
}
