package catalog

import "github.com/chrisdamba/foodstories/internal/models"

// Mock returns the built-in three restaurant catalog.
func Mock() Static {
	return Static{
		{
			ID:       "r1",
			Name:     "Burger House",
			ImageURL: "https://images.unsplash.com/photo-1571091718767-18b5b1457add",
			Stories: []models.DishStory{{
				ID:             "s1",
				RestaurantID:   "r1",
				RestaurantName: "Burger House",
				DishName:       "Classic Burger",
				Price:          12.99,
				BasePrice:      12.99,
				Media: []models.Media{{
					Type:     models.MediaImage,
					URL:      "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
					Duration: 5,
					Hotspots: []models.Hotspot{
						{ID: "h1", IngredientID: "i1", X: 50, Y: 45},
						{ID: "h2", IngredientID: "i2", X: 50, Y: 35},
						{ID: "h3", IngredientID: "i3", X: 35, Y: 40},
						{ID: "h4", IngredientID: "i4", X: 65, Y: 40},
					},
				}},
				Ingredients: []models.Ingredient{
					{ID: "i1", Name: "Beef Patty", Image: "🥩", Calories: 250, Protein: 26, Carbs: 0, Price: 3.0, Quantity: 1, CanRemove: false},
					{ID: "i2", Name: "Cheddar Cheese", Image: "🧀", Calories: 113, Protein: 7, Carbs: 1, Price: 1.0, Quantity: 1, Allergens: []string{"Dairy"}, CanRemove: true},
					{ID: "i3", Name: "Lettuce", Image: "🥬", Calories: 5, Protein: 0.5, Carbs: 1, Price: 0.5, Quantity: 1, CanRemove: true},
					{ID: "i4", Name: "Tomato", Image: "🍅", Calories: 22, Protein: 1, Carbs: 5, Price: 0.5, Quantity: 2, CanRemove: true},
				},
			}},
		},
		{
			ID:       "r2",
			Name:     "Green Bowl",
			ImageURL: "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			Stories: []models.DishStory{{
				ID:             "s2",
				RestaurantID:   "r2",
				RestaurantName: "Green Bowl",
				DishName:       "Caesar Salad",
				Price:          9.99,
				BasePrice:      9.99,
				Media: []models.Media{{
					Type:     models.MediaImage,
					URL:      "https://images.unsplash.com/photo-1546793665-c74683f339c1",
					Duration: 5,
					Hotspots: []models.Hotspot{
						{ID: "h5", IngredientID: "i5", X: 45, Y: 50},
						{ID: "h6", IngredientID: "i6", X: 60, Y: 35},
						{ID: "h7", IngredientID: "i7", X: 40, Y: 60},
					},
				}},
				Ingredients: []models.Ingredient{
					{ID: "i5", Name: "Romaine", Image: "🥬", Calories: 17, Protein: 1.2, Carbs: 3.3, Price: 0.8, Quantity: 1, CanRemove: false},
					{ID: "i6", Name: "Parmesan", Image: "🧀", Calories: 110, Protein: 10, Carbs: 1, Price: 1.5, Quantity: 1, Allergens: []string{"Dairy"}, CanRemove: true},
					{ID: "i7", Name: "Croutons", Image: "🍞", Calories: 122, Protein: 3.6, Carbs: 22, Price: 0.5, Quantity: 1, Allergens: []string{"Gluten"}, CanRemove: true},
				},
			}},
		},
		{
			ID:       "r3",
			Name:     "Pizza Palace",
			ImageURL: "https://images.unsplash.com/photo-1513104890138-7c749659a591",
			Stories: []models.DishStory{{
				ID:             "s3",
				RestaurantID:   "r3",
				RestaurantName: "Pizza Palace",
				DishName:       "Margherita Pizza",
				Price:          14.99,
				BasePrice:      14.99,
				Media: []models.Media{{
					Type:     models.MediaImage,
					URL:      "https://images.unsplash.com/photo-1574071318508-1cdbab80d002",
					Duration: 5,
					Hotspots: []models.Hotspot{
						{ID: "h8", IngredientID: "i8", X: 50, Y: 50},
						{ID: "h9", IngredientID: "i9", X: 35, Y: 45},
						{ID: "h10", IngredientID: "i10", X: 65, Y: 55},
					},
				}},
				Ingredients: []models.Ingredient{
					{ID: "i8", Name: "Mozzarella", Image: "🧀", Calories: 280, Protein: 22, Carbs: 3, Price: 2.0, Quantity: 1, Allergens: []string{"Dairy"}, CanRemove: false},
					{ID: "i9", Name: "Tomato Sauce", Image: "🍅", Calories: 29, Protein: 1.5, Carbs: 7, Price: 0.5, Quantity: 1, CanRemove: true},
					{ID: "i10", Name: "Fresh Basil", Image: "🌿", Calories: 1, Protein: 0.2, Carbs: 0.1, Price: 0.3, Quantity: 5, CanRemove: true},
				},
			}},
		},
	}
}
