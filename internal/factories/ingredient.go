package factories

import (
	"math"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/lucsky/cuid"
)

type ingredientTemplate struct {
	name          string
	glyph         string
	calories      float64
	protein       float64
	carbs         float64
	price         float64
	allergens     []string
	substitutions []string
	removable     bool
}

// base ingredients anchor a dish and cannot be removed
var ingredientPool = map[string][]ingredientTemplate{
	"base": {
		{name: "Beef Patty", glyph: "🥩", calories: 250, protein: 26, price: 3.0},
		{name: "Grilled Chicken", glyph: "🍗", calories: 165, protein: 31, price: 2.5},
		{name: "Romaine", glyph: "🥬", calories: 17, protein: 1.2, carbs: 3.3, price: 0.8},
		{name: "Mozzarella", glyph: "🧀", calories: 280, protein: 22, carbs: 3, price: 2.0, allergens: []string{"Dairy"}},
		{name: "Rice", glyph: "🍚", calories: 206, protein: 4.3, carbs: 45, price: 1.0},
		{name: "Noodles", glyph: "🍜", calories: 190, protein: 7, carbs: 38, price: 1.2, allergens: []string{"Gluten"}},
		{name: "Tofu", glyph: "🧈", calories: 94, protein: 10, carbs: 2.3, price: 1.5, allergens: []string{"Soy"}},
	},
	"topping": {
		{name: "Cheddar Cheese", glyph: "🧀", calories: 113, protein: 7, carbs: 1, price: 1.0, allergens: []string{"Dairy"}, substitutions: []string{"Swiss", "Vegan Cheese"}, removable: true},
		{name: "Lettuce", glyph: "🥬", calories: 5, protein: 0.5, carbs: 1, price: 0.5, removable: true},
		{name: "Tomato", glyph: "🍅", calories: 22, protein: 1, carbs: 5, price: 0.5, removable: true},
		{name: "Parmesan", glyph: "🧀", calories: 110, protein: 10, carbs: 1, price: 1.5, allergens: []string{"Dairy"}, removable: true},
		{name: "Croutons", glyph: "🍞", calories: 122, protein: 3.6, carbs: 22, price: 0.5, allergens: []string{"Gluten"}, substitutions: []string{"Gluten-free Croutons"}, removable: true},
		{name: "Tomato Sauce", glyph: "🍅", calories: 29, protein: 1.5, carbs: 7, price: 0.5, removable: true},
		{name: "Fresh Basil", glyph: "🌿", calories: 1, protein: 0.2, carbs: 0.1, price: 0.3, removable: true},
		{name: "Avocado", glyph: "🥑", calories: 160, protein: 2, carbs: 9, price: 1.8, removable: true},
		{name: "Fried Egg", glyph: "🍳", calories: 90, protein: 6, carbs: 0.4, price: 1.2, allergens: []string{"Egg"}, removable: true},
		{name: "Peanuts", glyph: "🥜", calories: 161, protein: 7, carbs: 4.6, price: 0.7, allergens: []string{"Peanuts"}, substitutions: []string{"Cashews"}, removable: true},
		{name: "Onion", glyph: "🧅", calories: 11, protein: 0.3, carbs: 2.6, price: 0, removable: true},
		{name: "Chili", glyph: "🌶️", calories: 6, protein: 0.3, carbs: 1.3, price: 0, substitutions: []string{"Mild Pepper"}, removable: true},
	},
}

type IngredientFactory struct{}

// CreateIngredients returns one non-removable base ingredient followed by
// count-1 distinct removable toppings.
func (f *IngredientFactory) CreateIngredients(count int) []models.Ingredient {
	if count < 1 {
		count = 1
	}
	bases := ingredientPool["base"]
	toppings := ingredientPool["topping"]

	ingredients := []models.Ingredient{f.fromTemplate(bases[rng.Intn(len(bases))])}
	for _, i := range rng.Perm(len(toppings)) {
		if len(ingredients) == count {
			break
		}
		ingredients = append(ingredients, f.fromTemplate(toppings[i]))
	}
	return ingredients
}

func (f *IngredientFactory) fromTemplate(t ingredientTemplate) models.Ingredient {
	quantity := 1
	if t.removable && fake.IntBetween(0, 4) == 0 {
		quantity = fake.IntBetween(2, 5)
	}
	price := t.price
	if price > 0 {
		// ±20%, kept to cents
		price = math.Round(price*(0.8+rng.Float64()*0.4)*100) / 100
	}
	return models.Ingredient{
		ID:            cuid.New(),
		Name:          t.name,
		Image:         t.glyph,
		Calories:      t.calories,
		Protein:       t.protein,
		Carbs:         t.carbs,
		Price:         price,
		Quantity:      quantity,
		Allergens:     append([]string(nil), t.allergens...),
		Substitutions: append([]string(nil), t.substitutions...),
		CanRemove:     t.removable,
	}
}
