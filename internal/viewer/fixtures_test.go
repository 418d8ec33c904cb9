package viewer

import (
	"sync"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/playback"
)

type fakeTimer struct {
	interval time.Duration
	fire     func()
	stopped  bool
}

// fakeTimers records every started timer; tests fire them by hand.
type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (f *fakeTimers) Start(interval time.Duration, fire func()) playback.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{interval: interval, fire: fire}
	f.timers = append(f.timers, t)
	return fakeHandle{f: f, t: t}
}

type fakeHandle struct {
	f *fakeTimers
	t *fakeTimer
}

func (h fakeHandle) Stop() {
	h.f.mu.Lock()
	defer h.f.mu.Unlock()
	h.t.stopped = true
}

func (f *fakeTimers) live() []*fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*fakeTimer
	for _, t := range f.timers {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

func (f *fakeTimers) started() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// tick fires the single live timer n times. It stops early when no timer
// is live.
func (f *fakeTimers) tick(n int) {
	for i := 0; i < n; i++ {
		live := f.live()
		if len(live) != 1 {
			return
		}
		live[0].fire()
	}
}

type note struct {
	message     string
	description string
}

type fakeNotifier struct {
	mu    sync.Mutex
	notes []note
}

func (n *fakeNotifier) Success(message, description string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note{message, description})
}

type fakePublisher struct {
	mu     sync.Mutex
	events []models.InteractionEvent
}

func (p *fakePublisher) Publish(e models.InteractionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType
	}
	return out
}

func (p *fakePublisher) has(eventType string) bool {
	for _, t := range p.types() {
		if t == eventType {
			return true
		}
	}
	return false
}

func burgerStory() models.DishStory {
	return models.DishStory{
		ID:             "s1",
		RestaurantID:   "r1",
		RestaurantName: "Burger House",
		DishName:       "Classic Burger",
		Price:          12.99,
		BasePrice:      12.99,
		Media: []models.Media{
			{
				Type:     models.MediaImage,
				URL:      "burger.jpg",
				Duration: 5,
				Hotspots: []models.Hotspot{
					{ID: "h1", IngredientID: "i1", X: 50, Y: 45},
					{ID: "h2", IngredientID: "i2", X: 50, Y: 35},
					{ID: "h3", IngredientID: "i3", X: 35, Y: 40},
					{ID: "h4", IngredientID: "i4", X: 65, Y: 40},
				},
			},
			{
				Type:     models.MediaVideo,
				URL:      "burger.mp4",
				Duration: 5,
				Hotspots: []models.Hotspot{
					{ID: "h5", IngredientID: "ghost", X: 10, Y: 10},
				},
			},
		},
		Ingredients: []models.Ingredient{
			{ID: "i1", Name: "Beef Patty", Price: 3.0, Quantity: 1},
			{ID: "i2", Name: "Cheddar Cheese", Price: 1.0, Quantity: 1, Allergens: []string{"Dairy"}, CanRemove: true, Substitutions: []string{"Swiss"}},
			{ID: "i3", Name: "Lettuce", Price: 0, Quantity: 1, CanRemove: true},
			{ID: "i4", Name: "Tomato", Price: 0.5, Quantity: 2, CanRemove: true},
		},
	}
}

func singleMediaStory(id, restaurantID string) models.DishStory {
	return models.DishStory{
		ID:           id,
		RestaurantID: restaurantID,
		DishName:     "Dish " + id,
		Price:        9.99,
		BasePrice:    9.99,
		Media:        []models.Media{{Type: models.MediaImage, Duration: 1}},
		Ingredients:  []models.Ingredient{{ID: id + "-i", Name: "Base", Price: 1, Quantity: 1}},
	}
}

func testCatalog() []models.Restaurant {
	return []models.Restaurant{
		{ID: "r1", Name: "Burger House", Stories: []models.DishStory{burgerStory()}},
		{ID: "r2", Name: "Green Bowl", Stories: []models.DishStory{singleMediaStory("s2", "r2")}},
		{ID: "r3", Name: "Pizza Palace", Stories: []models.DishStory{singleMediaStory("s3", "r3")}},
	}
}

type harness struct {
	timers    *fakeTimers
	notifier  *fakeNotifier
	publisher *fakePublisher
	cart      *recordingCart
}

func newHarness() *harness {
	return &harness{
		timers:    &fakeTimers{},
		notifier:  &fakeNotifier{},
		publisher: &fakePublisher{},
		cart:      &recordingCart{},
	}
}

func (h *harness) options() Options {
	return Options{
		TickInterval: 50 * time.Millisecond,
		Timers:       h.timers,
		Notifier:     h.notifier,
		Publisher:    h.publisher,
		Cart:         h.cart,
		Now:          func() time.Time { return time.Unix(1700000000, 0) },
	}
}

type recordingCart struct {
	mu      sync.Mutex
	entries []models.CartEntry
}

func (c *recordingCart) Add(storyID string, custom models.Customizations, price float64) models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := models.CartEntry{ID: "entry", StoryID: storyID, Customizations: custom, Price: price}
	c.entries = append(c.entries, e)
	return e
}
