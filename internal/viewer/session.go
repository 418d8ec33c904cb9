package viewer

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/playback"
	"github.com/chrisdamba/foodstories/internal/pricing"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

// Options configures a Session.
type Options struct {
	TickInterval time.Duration // progress added per tick
	WallInterval time.Duration // real time between ticks, defaults to TickInterval
	Zoning       playback.Zoning
	Timers       playback.TimerFactory
	Cart         CartAdder
	Notifier     Notifier
	Publisher    Publisher
	ViewerID     string
	Now          func() time.Time
}

func (o Options) withDefaults() Options {
	if o.TickInterval <= 0 {
		o.TickInterval = playback.DefaultInterval
	}
	if o.WallInterval <= 0 {
		o.WallInterval = o.TickInterval
	}
	if o.Zoning == (playback.Zoning{}) {
		o.Zoning = playback.DefaultZoning
	}
	if o.Timers == nil {
		o.Timers = playback.NewTickerFactory()
	}
	if o.Notifier == nil {
		o.Notifier = LogNotifier{}
	}
	if o.Publisher == nil {
		o.Publisher = nopPublisher{}
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// timerKey is what the running timer depends on. A change of either field
// replaces the timer.
type timerKey struct {
	mediaIndex int
	running    bool
}

// Session is one open story. All methods are safe for concurrent use; user
// actions and timer ticks are applied one at a time.
type Session struct {
	mu sync.Mutex

	id             string
	story          *models.DishStory
	opts           Options
	player         *playback.Player
	overlay        Overlay
	panel          *Panel
	customizations models.Customizations

	timer    playback.Timer
	timerKey timerKey
	gen      uint64
	closed   bool

	// leaving is set once a tick raised a signal for the owner; the session
	// takes no more input until the owner replaces or closes it.
	leaving bool

	onSignal func(*Session, playback.Signal)
}

// Open starts a session on story in Playing(0, 0) with customizations
// seeded from the catalog defaults. onSignal receives the advance/retreat
// signals raised by the timer; it is called without the session lock held.
func Open(story *models.DishStory, opts Options, onSignal func(*Session, playback.Signal)) *Session {
	opts = opts.withDefaults()
	s := &Session{
		id:             cuid.New(),
		story:          story,
		opts:           opts,
		player:         playback.NewPlayer(story.Media, opts.TickInterval),
		customizations: story.DefaultCustomizations(),
		onSignal:       onSignal,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.publish(models.EventStoryOpened, nil)
	s.syncTimer()
	logger.Debug("story session opened", zap.String("session_id", s.id), zap.String("story_id", story.ID))
	return s
}

func (s *Session) ID() string                { return s.id }
func (s *Session) Story() *models.DishStory { return s.story }

// Close stops the timer. Ticks still in flight are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.overlay = Overlay{}
	s.panel = nil
	s.syncTimer()
	s.publish(models.EventStoryClosed, nil)
	logger.Debug("story session closed", zap.String("session_id", s.id))
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// syncTimer keeps exactly one live timer while playing and none otherwise.
// Callers hold s.mu.
func (s *Session) syncTimer() {
	want := timerKey{
		mediaIndex: s.player.MediaIndex(),
		running:    !s.closed && !s.leaving && !s.player.Paused(),
	}
	if s.timer != nil && want == s.timerKey {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.timerKey = want
	if !want.running {
		return
	}
	gen := s.gen
	s.timer = s.opts.Timers.Start(s.opts.WallInterval, func() { s.tick(gen) })
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	if s.closed || s.leaving || gen != s.gen {
		s.mu.Unlock()
		return
	}
	before := s.player.MediaIndex()
	sig := s.player.Tick()
	if s.player.MediaIndex() != before {
		s.publish(models.EventMediaAdvanced, nil)
	}
	if sig != playback.SignalNone && s.onSignal != nil {
		s.leaving = true
	}
	s.syncTimer()
	s.mu.Unlock()

	if sig != playback.SignalNone && s.onSignal != nil {
		s.onSignal(s, sig)
	}
}

// Tap routes a tap at horizontal position x (percent of the frame width).
// Taps are ignored while an overlay is open.
func (s *Session) Tap(x float64) playback.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.leaving || s.overlay.Open() {
		return playback.SignalNone
	}

	zone := s.opts.Zoning.Classify(x)
	before := s.player.Cursor()
	sig := s.player.Tap(zone)
	after := s.player.Cursor()

	switch {
	case after.MediaIndex > before.MediaIndex:
		s.publish(models.EventMediaAdvanced, nil)
	case after.MediaIndex < before.MediaIndex:
		s.publish(models.EventMediaRetreated, nil)
	case after.Paused && !before.Paused:
		s.publish(models.EventPlaybackPaused, nil)
	case !after.Paused && before.Paused:
		s.publish(models.EventPlaybackResumed, nil)
	}
	s.syncTimer()
	return sig
}

// TapHotspot opens the detail overlay for the hotspot's ingredient and
// pauses playback. Hotspots are hidden while an overlay is open, and a
// hotspot whose ingredient is missing opens nothing.
func (s *Session) TapHotspot(hotspotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.leaving || s.overlay.Open() {
		return false
	}
	h, ok := s.story.Hotspot(s.player.MediaIndex(), hotspotID)
	if !ok {
		return false
	}
	if _, ok := s.story.Ingredient(h.IngredientID); !ok {
		logger.Warn("hotspot references unknown ingredient",
			zap.String("story_id", s.story.ID),
			zap.String("hotspot_id", h.ID),
			zap.String("ingredient_id", h.IngredientID))
		return false
	}

	s.player.Pause()
	s.overlay = detailOverlay(h.IngredientID)
	s.publish(models.EventDetailOpened, func(e *models.InteractionEvent) {
		e.HotspotID = h.ID
		e.IngredientID = h.IngredientID
	})
	s.syncTimer()
	return true
}

// CloseDetail closes the detail overlay and resumes playback.
func (s *Session) CloseDetail() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayDetail {
		return false
	}
	s.closeOverlay(models.EventDetailClosed)
	return true
}

// AddExtra adds one unit of the ingredient shown in the detail overlay,
// closes the overlay and resumes playback. Free ingredients have no extra.
func (s *Session) AddExtra() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayDetail {
		return false
	}
	ing, ok := s.story.Ingredient(s.overlay.IngredientID)
	if !ok || !ing.Extra() {
		return false
	}

	s.customizations[ing.ID] = s.customizations.QuantityOr(ing.ID, 1) + 1
	s.opts.Notifier.Success("Extra added!", ing.Name)
	s.publish(models.EventExtraAdded, func(e *models.InteractionEvent) {
		e.IngredientID = ing.ID
	})
	s.closeOverlay(models.EventDetailClosed)
	return true
}

// OpenPanel opens the customization panel, replacing the detail overlay if
// it is shown, and pauses playback.
func (s *Session) OpenPanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.leaving || s.overlay.Kind == OverlayPanel {
		return false
	}
	s.player.Pause()
	s.overlay = panelOverlay()
	s.panel = NewPanel(s.story, s.customizations)
	s.publish(models.EventPanelOpened, nil)
	s.syncTimer()
	return true
}

// ConfirmPanel replaces the session customizations with the panel's working
// copy, closes the panel and resumes playback.
func (s *Session) ConfirmPanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayPanel {
		return false
	}
	s.customizations = s.panel.Working()
	s.closeOverlay(models.EventPanelConfirmed)
	return true
}

// DismissPanel closes the panel and discards its working copy.
func (s *Session) DismissPanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayPanel {
		return false
	}
	s.closeOverlay(models.EventPanelDismissed)
	return true
}

// closeOverlay returns to no overlay and resumes from the same progress.
// Callers hold s.mu.
func (s *Session) closeOverlay(eventType string) {
	s.overlay = Overlay{}
	s.panel = nil
	s.player.Resume()
	s.publish(eventType, nil)
	s.syncTimer()
}

// WithPanel runs fn against the open panel. It reports false when the panel
// is not open.
func (s *Session) WithPanel(fn func(p *Panel)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayPanel {
		return false
	}
	fn(s.panel)
	return true
}

func (s *Session) PanelIncrement(ingredientID string) bool {
	var ok bool
	s.WithPanel(func(p *Panel) { ok = p.Increment(ingredientID) })
	return ok
}

func (s *Session) PanelDecrement(ingredientID string) bool {
	var ok bool
	s.WithPanel(func(p *Panel) { ok = p.Decrement(ingredientID) })
	return ok
}

func (s *Session) PanelRemove(ingredientID string) bool {
	var ok bool
	s.WithPanel(func(p *Panel) { ok = p.Remove(ingredientID) })
	return ok
}

func (s *Session) PanelReset() bool {
	return s.WithPanel(func(p *Panel) { p.Reset() })
}

// PanelSubstitute records a substitution choice for an ingredient.
func (s *Session) PanelSubstitute(ingredientID, substitution string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayPanel || !s.panel.Substitute(ingredientID, substitution) {
		return false
	}
	logger.Info("ingredient substitution selected",
		zap.String("story_id", s.story.ID),
		zap.String("ingredient_id", ingredientID),
		zap.String("substitution", substitution))
	s.publish(models.EventIngredientSubstituted, func(e *models.InteractionEvent) {
		e.IngredientID = ingredientID
		e.Substitution = substitution
	})
	return true
}

// PanelState returns a snapshot of the open panel.
func (s *Session) PanelState() (PanelState, bool) {
	var st PanelState
	ok := s.WithPanel(func(p *Panel) { st = p.State() })
	return st, ok
}

// AddToCart records the dish with a snapshot of the current customizations
// and price.
func (s *Session) AddToCart() (models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return models.CartEntry{}, ErrNoActiveSession
	}
	if s.leaving {
		return models.CartEntry{}, ErrSessionEnding
	}
	if s.opts.Cart == nil {
		return models.CartEntry{}, fmt.Errorf("session %s has no cart", s.id)
	}

	price := pricing.StoryPrice(s.story, s.customizations)
	entry := s.opts.Cart.Add(s.story.ID, s.customizations.Clone(), price)
	s.opts.Notifier.Success("Added to cart!", fmt.Sprintf("$%.2f - Customizations applied", price))
	s.publish(models.EventCartAdded, func(e *models.InteractionEvent) {
		e.EntryID = entry.ID
		e.Price = entry.Price
		if raw, err := json.Marshal(entry.Customizations); err == nil {
			e.Customizations = string(raw)
		}
	})
	return entry, nil
}

func (s *Session) Cursor() playback.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Cursor()
}

func (s *Session) Segments() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player.Segments()
}

func (s *Session) Overlay() Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlay
}

// DetailIngredient returns the ingredient shown in the detail overlay.
func (s *Session) DetailIngredient() (models.Ingredient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay.Kind != OverlayDetail {
		return models.Ingredient{}, false
	}
	ing, ok := s.story.Ingredient(s.overlay.IngredientID)
	if !ok {
		return models.Ingredient{}, false
	}
	return *ing, true
}

// Customizations returns a copy of the committed customizations.
func (s *Session) Customizations() models.Customizations {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customizations.Clone()
}

func (s *Session) Price() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.StoryPrice(s.story, s.customizations)
}

func (s *Session) ModificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.StoryModifications(s.story, s.customizations)
}

// VisibleHotspots returns the current media's hotspots, or none while an
// overlay is open.
func (s *Session) VisibleHotspots() []models.Hotspot {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.player.Current()
	if m == nil || s.overlay.Open() {
		return nil
	}
	return append([]models.Hotspot(nil), m.Hotspots...)
}

// ModifiedHotspots returns the ids of the current media's hotspots whose
// ingredient has been customized.
func (s *Session) ModifiedHotspots() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.player.Current()
	if m == nil {
		return nil
	}
	return pricing.ModifiedHotspots(s.story, m, s.customizations)
}

// CartLabel renders the add-to-cart button text.
func (s *Session) CartLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	b.WriteString("Add to Cart")
	if n := pricing.StoryModifications(s.story, s.customizations); n > 0 {
		fmt.Fprintf(&b, " - %d modifications", n)
	}
	fmt.Fprintf(&b, " - $%.2f", pricing.StoryPrice(s.story, s.customizations))
	return b.String()
}

// publish emits an event stamped with the session's position. Callers hold
// s.mu.
func (s *Session) publish(eventType string, fill func(*models.InteractionEvent)) {
	e := models.NewInteractionEvent(eventType, s.opts.Now())
	e.SessionID = s.id
	e.ViewerID = s.opts.ViewerID
	e.StoryID = s.story.ID
	e.RestaurantID = s.story.RestaurantID
	e.MediaIndex = int32(s.player.MediaIndex())
	e.Progress = s.player.Progress()
	e.Price = pricing.StoryPrice(s.story, s.customizations)
	e.Modifications = int32(pricing.StoryModifications(s.story, s.customizations))
	if fill != nil {
		fill(&e)
	}
	s.opts.Publisher.Publish(e)
}

func (s *Session) publishNavigation(eventType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.publish(eventType, nil)
}
