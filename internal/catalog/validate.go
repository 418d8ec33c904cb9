package catalog

import (
	"errors"
	"fmt"

	"github.com/chrisdamba/foodstories/internal/models"
)

// Validate checks the catalog invariants and returns every violation
// joined into one error.
func Validate(restaurants []models.Restaurant) error {
	var errs []error
	restaurantIDs := make(map[string]bool)
	storyIDs := make(map[string]bool)

	for _, r := range restaurants {
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("restaurant %q has no id", r.Name))
		} else if restaurantIDs[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate restaurant id %s", r.ID))
		}
		restaurantIDs[r.ID] = true

		for i := range r.Stories {
			s := &r.Stories[i]
			if storyIDs[s.ID] {
				errs = append(errs, fmt.Errorf("duplicate story id %s", s.ID))
			}
			storyIDs[s.ID] = true
			if s.RestaurantID != r.ID {
				errs = append(errs, fmt.Errorf("story %s: restaurant id %s does not match owner %s", s.ID, s.RestaurantID, r.ID))
			}
			errs = append(errs, validateStory(s)...)
		}
	}
	return errors.Join(errs...)
}

func validateStory(s *models.DishStory) []error {
	var errs []error
	if s.BasePrice < 0 {
		errs = append(errs, fmt.Errorf("story %s: negative base price %v", s.ID, s.BasePrice))
	}
	if len(s.Media) == 0 {
		errs = append(errs, fmt.Errorf("story %s: no media", s.ID))
	}

	ingredientIDs := make(map[string]bool)
	for _, ing := range s.Ingredients {
		if ingredientIDs[ing.ID] {
			errs = append(errs, fmt.Errorf("story %s: duplicate ingredient id %s", s.ID, ing.ID))
		}
		ingredientIDs[ing.ID] = true
		if ing.Price < 0 || ing.Quantity < 0 || ing.Calories < 0 || ing.Protein < 0 || ing.Carbs < 0 {
			errs = append(errs, fmt.Errorf("story %s: ingredient %s has a negative value", s.ID, ing.ID))
		}
	}

	for i, m := range s.Media {
		if m.Duration <= 0 {
			errs = append(errs, fmt.Errorf("story %s: media %d has non-positive duration %v", s.ID, i, m.Duration))
		}
		hotspotIDs := make(map[string]bool)
		for _, h := range m.Hotspots {
			if hotspotIDs[h.ID] {
				errs = append(errs, fmt.Errorf("story %s: media %d: duplicate hotspot id %s", s.ID, i, h.ID))
			}
			hotspotIDs[h.ID] = true
			if !ingredientIDs[h.IngredientID] {
				errs = append(errs, fmt.Errorf("story %s: hotspot %s references unknown ingredient %s", s.ID, h.ID, h.IngredientID))
			}
			if h.X < 0 || h.X > 100 || h.Y < 0 || h.Y > 100 {
				errs = append(errs, fmt.Errorf("story %s: hotspot %s outside the frame (%v, %v)", s.ID, h.ID, h.X, h.Y))
			}
		}
	}
	return errs
}
