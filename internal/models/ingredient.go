package models

// Ingredient is a catalog-defined component of a dish. Price is the cost of
// each unit above the included Quantity.
type Ingredient struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Image         string   `json:"image" yaml:"image"` // display glyph
	Calories      float64  `json:"calories" yaml:"calories"`
	Protein       float64  `json:"protein" yaml:"protein"`
	Carbs         float64  `json:"carbs" yaml:"carbs"`
	Price         float64  `json:"price" yaml:"price"`
	Quantity      int      `json:"quantity" yaml:"quantity"`
	Allergens     []string `json:"allergens,omitempty" yaml:"allergens,omitempty"`
	Substitutions []string `json:"substitutions,omitempty" yaml:"substitutions,omitempty"`
	CanRemove     bool     `json:"canRemove,omitempty" yaml:"canRemove,omitempty"`
}

// HasAllergens reports whether any allergen is declared.
func (i *Ingredient) HasAllergens() bool {
	return len(i.Allergens) > 0
}

// Extra reports whether an extra unit can be bought from the detail card.
func (i *Ingredient) Extra() bool {
	return i.Price > 0
}
