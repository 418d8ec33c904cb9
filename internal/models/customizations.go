package models

// Customizations maps an ingredient id to its effective quantity. A missing
// key means the ingredient's default quantity.
type Customizations map[string]int

// Quantity returns the effective quantity of ing.
func (c Customizations) Quantity(ing *Ingredient) int {
	if q, ok := c[ing.ID]; ok {
		return q
	}
	return ing.Quantity
}

// QuantityOr returns the stored quantity for id, or fallback when absent.
func (c Customizations) QuantityOr(id string, fallback int) int {
	if q, ok := c[id]; ok {
		return q
	}
	return fallback
}

// Clone returns an independent copy. Cloning a nil map yields an empty one.
func (c Customizations) Clone() Customizations {
	out := make(Customizations, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
