// Package pricing derives a dish's price and modification count from its
// ingredients and a customization map. Results are computed on every call.
package pricing

import "github.com/chrisdamba/foodstories/internal/models"

// EffectivePrice adds the cost of every unit above an ingredient's default
// quantity to basePrice. Quantities below the default are not refunded.
func EffectivePrice(basePrice float64, ingredients []models.Ingredient, c models.Customizations) float64 {
	total := basePrice
	for i := range ingredients {
		ing := &ingredients[i]
		qty := c.Quantity(ing)
		if qty > ing.Quantity {
			total += float64(qty-ing.Quantity) * ing.Price
		}
	}
	return total
}

// ModificationCount counts ingredients whose effective quantity differs
// from the default.
func ModificationCount(ingredients []models.Ingredient, c models.Customizations) int {
	count := 0
	for i := range ingredients {
		if c.Quantity(&ingredients[i]) != ingredients[i].Quantity {
			count++
		}
	}
	return count
}

// Adjustment is the running extra cost over the base price.
func Adjustment(basePrice float64, ingredients []models.Ingredient, c models.Customizations) float64 {
	return EffectivePrice(basePrice, ingredients, c) - basePrice
}

// StoryPrice is EffectivePrice for a whole story.
func StoryPrice(story *models.DishStory, c models.Customizations) float64 {
	return EffectivePrice(story.BasePrice, story.Ingredients, c)
}

// StoryModifications is ModificationCount for a whole story.
func StoryModifications(story *models.DishStory, c models.Customizations) int {
	return ModificationCount(story.Ingredients, c)
}

// ModifiedHotspots returns the ids of the hotspots on media whose
// ingredient quantity differs from its default. Missing map keys and
// unknown ingredients both count as quantity 1.
func ModifiedHotspots(story *models.DishStory, media *models.Media, c models.Customizations) []string {
	var ids []string
	for _, h := range media.Hotspots {
		original := 1
		if ing, ok := story.Ingredient(h.IngredientID); ok {
			original = ing.Quantity
		}
		if c.QuantityOr(h.IngredientID, 1) != original {
			ids = append(ids, h.ID)
		}
	}
	return ids
}
