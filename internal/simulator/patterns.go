package simulator

import (
	"math/rand"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/playback"
)

// scriptBuilder lays out a viewer's actions on a virtual timeline.
type scriptBuilder struct {
	queue *models.EventQueue
	rng   *rand.Rand
	think time.Duration
	at    time.Time
	count int

	// tap positions, in percent of the frame width
	backX, centerX, forwardX float64
}

func (b *scriptBuilder) add(actionType string, data interface{}) {
	b.at = b.at.Add(thinkTime(b.rng, b.think))
	b.queue.Enqueue(&models.Event{Time: b.at, Type: actionType, Data: data})
	b.count++
}

// BuildScript returns the timed actions a viewer performs, starting at
// start. The viewer opens a preferred restaurant and then acts according
// to its profile until about maxActions actions are scheduled; the script
// always ends with a close.
func BuildScript(viewer models.Viewer, restaurants []models.Restaurant, start time.Time, rng *rand.Rand, config *models.Config) *models.EventQueue {
	b := &scriptBuilder{
		queue: models.NewEventQueue(),
		rng:   rng,
		think: config.ThinkTime,
		at:    start,
	}
	b.backX, b.centerX, b.forwardX = tapTargets(config)
	if len(restaurants) == 0 {
		return b.queue
	}

	restaurantID := restaurants[rng.Intn(len(restaurants))].ID
	if len(viewer.Preferences) > 0 {
		restaurantID = viewer.Preferences[0]
	}
	b.add(models.ActionOpenRestaurant, models.TargetData{ID: restaurantID})

	p := viewer.Profile
	for steps := 0; b.count < config.MaxActions-1 && steps < 4*config.MaxActions; steps++ {
		switch {
		case chance(rng, p.Curiosity*0.5):
			b.inspectIngredient(p)
		case chance(rng, p.Customization*0.4):
			b.customize(p)
		case chance(rng, p.Purchase*0.3):
			b.add(models.ActionAddToCart, nil)
		case !chance(rng, p.Patience):
			b.skip()
		default:
			// keep watching; the timer advances on its own
			b.at = b.at.Add(thinkTime(rng, b.think))
		}
	}
	b.add(models.ActionClose, nil)
	return b.queue
}

func (b *scriptBuilder) inspectIngredient(p models.ViewerProfile) {
	b.add(models.ActionTapHotspot, nil)
	switch {
	case chance(b.rng, p.ExtraPreference):
		b.add(models.ActionAddExtra, nil)
	case chance(b.rng, p.Customization):
		b.customize(p)
	default:
		b.add(models.ActionCloseDetail, nil)
	}
}

func (b *scriptBuilder) customize(p models.ViewerProfile) {
	b.add(models.ActionOpenPanel, nil)
	edits := int(normalizedRate(b.rng, 2, 1, 1, 4))
	for i := 0; i < edits; i++ {
		switch {
		case chance(b.rng, p.RemovePreference):
			b.add(models.ActionPanelRemove, nil)
		case chance(b.rng, 0.3):
			b.add(models.ActionPanelDecrement, nil)
		default:
			b.add(models.ActionPanelIncrement, nil)
		}
	}
	switch {
	case chance(b.rng, 0.1):
		b.add(models.ActionPanelReset, nil)
		b.add(models.ActionPanelDismiss, nil)
	case chance(b.rng, 0.8):
		b.add(models.ActionPanelConfirm, nil)
		if chance(b.rng, p.Purchase) {
			b.add(models.ActionAddToCart, nil)
		}
	default:
		b.add(models.ActionPanelDismiss, nil)
	}
}

func (b *scriptBuilder) skip() {
	switch r := b.rng.Float64(); {
	case r < 0.6:
		b.add(models.ActionTap, models.TapData{X: b.forwardX})
	case r < 0.8:
		b.add(models.ActionTap, models.TapData{X: b.backX})
	case r < 0.9:
		b.add(models.ActionTap, models.TapData{X: b.centerX})
		b.add(models.ActionTap, models.TapData{X: b.centerX})
	default:
		b.add(models.ActionPrevious, nil)
	}
}

// tapTargets returns the middle of the back, toggle and forward zones.
func tapTargets(config *models.Config) (back, center, forward float64) {
	z := playback.Zoning{Back: config.TapBackZone, Forward: config.TapForwardZone}
	if z == (playback.Zoning{}) {
		z = playback.DefaultZoning
	}
	return z.Back / 2, (z.Back + z.Forward) / 2, (z.Forward + 100) / 2
}
