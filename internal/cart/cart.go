// Package cart accumulates dishes added from story sessions.
package cart

import (
	"sync"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/lucsky/cuid"
)

// Accumulator counts add-to-cart calls and keeps a snapshot of each one.
// It does no validation or deduplication.
type Accumulator struct {
	mu      sync.Mutex
	entries []models.CartEntry
	now     func() time.Time
}

func NewAccumulator() *Accumulator {
	return &Accumulator{now: time.Now}
}

// Add records one entry. The customizations are copied, so later changes to
// the caller's map do not reach the cart.
func (a *Accumulator) Add(storyID string, customizations models.Customizations, price float64) models.CartEntry {
	entry := models.CartEntry{
		ID:             cuid.New(),
		StoryID:        storyID,
		Customizations: customizations.Clone(),
		Price:          price,
		AddedAt:        a.now(),
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()

	return cloneEntry(entry)
}

// Count is the number of entries added so far.
func (a *Accumulator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entries)
}

// Entries returns copies of every recorded entry in insertion order.
func (a *Accumulator) Entries() []models.CartEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]models.CartEntry, len(a.entries))
	for i, e := range a.entries {
		out[i] = cloneEntry(e)
	}
	return out
}

// Total sums the recorded prices.
func (a *Accumulator) Total() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	var total float64
	for _, e := range a.entries {
		total += e.Price
	}
	return total
}

func cloneEntry(e models.CartEntry) models.CartEntry {
	e.Customizations = e.Customizations.Clone()
	return e
}
