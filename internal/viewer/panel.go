package viewer

import (
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/pricing"
)

// Panel is the customization panel. It edits a working copy of the
// session's customizations; nothing reaches the session until the owner
// commits Working().
type Panel struct {
	story   *models.DishStory
	working models.Customizations
}

// NewPanel seeds the working copy from committed.
func NewPanel(story *models.DishStory, committed models.Customizations) *Panel {
	return &Panel{story: story, working: committed.Clone()}
}

// Quantity is the working quantity of an ingredient. Unknown ids read 0.
func (p *Panel) Quantity(ingredientID string) int {
	ing, ok := p.story.Ingredient(ingredientID)
	if !ok {
		return 0
	}
	return p.working.Quantity(ing)
}

// CanDecrement reports whether the minus control is enabled.
func (p *Panel) CanDecrement(ingredientID string) bool {
	ing, ok := p.story.Ingredient(ingredientID)
	if !ok {
		return false
	}
	qty := p.working.Quantity(ing)
	if !ing.CanRemove && qty <= 1 {
		return false
	}
	return qty > 0
}

func (p *Panel) Increment(ingredientID string) bool {
	ing, ok := p.story.Ingredient(ingredientID)
	if !ok {
		return false
	}
	p.working[ing.ID] = p.working.Quantity(ing) + 1
	return true
}

// Decrement lowers a quantity by one. It refuses to go below 0, and below 1
// for ingredients that cannot be removed.
func (p *Panel) Decrement(ingredientID string) bool {
	if !p.CanDecrement(ingredientID) {
		return false
	}
	ing, _ := p.story.Ingredient(ingredientID)
	p.working[ing.ID] = p.working.Quantity(ing) - 1
	return true
}

// Remove sets a removable ingredient's quantity to 0.
func (p *Panel) Remove(ingredientID string) bool {
	ing, ok := p.story.Ingredient(ingredientID)
	if !ok || !ing.CanRemove {
		return false
	}
	p.working[ing.ID] = 0
	return true
}

// Reset restores every ingredient's catalog quantity.
func (p *Panel) Reset() {
	p.working = p.story.DefaultCustomizations()
}

// Substitute validates a substitution choice. Substitutions are recorded as
// events only and never change the working copy.
func (p *Panel) Substitute(ingredientID, substitution string) bool {
	ing, ok := p.story.Ingredient(ingredientID)
	if !ok {
		return false
	}
	for _, s := range ing.Substitutions {
		if s == substitution {
			return true
		}
	}
	return false
}

// Working returns a copy of the working customizations.
func (p *Panel) Working() models.Customizations {
	return p.working.Clone()
}

func (p *Panel) Price() float64 {
	return pricing.StoryPrice(p.story, p.working)
}

func (p *Panel) Adjustment() float64 {
	return pricing.Adjustment(p.story.BasePrice, p.story.Ingredients, p.working)
}

func (p *Panel) Modifications() int {
	return pricing.StoryModifications(p.story, p.working)
}

// PanelState is a read-only snapshot of an open panel.
type PanelState struct {
	DishName      string
	BasePrice     float64
	Quantities    models.Customizations
	Price         float64
	Adjustment    float64
	Modifications int
}

func (p *Panel) State() PanelState {
	return PanelState{
		DishName:      p.story.DishName,
		BasePrice:     p.story.BasePrice,
		Quantities:    p.Working(),
		Price:         p.Price(),
		Adjustment:    p.Adjustment(),
		Modifications: p.Modifications(),
	}
}
