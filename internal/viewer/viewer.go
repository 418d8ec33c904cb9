package viewer

import (
	"fmt"
	"sync"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/playback"
	"go.uber.org/zap"
)

// waiter is implemented by timer factories that can wait for their
// goroutines to exit.
type waiter interface {
	Wait()
}

// Viewer owns the list of stories and decides which one is open. Sessions
// only raise advance/retreat signals; the viewer turns them into
// navigation.
type Viewer struct {
	mu sync.Mutex

	stories []models.DishStory
	opts    Options

	active  int
	session *Session
	closed  bool
}

// New builds a viewer over every story of restaurants, in catalog order.
func New(restaurants []models.Restaurant, opts Options) *Viewer {
	return &Viewer{
		stories: models.FlattenStories(restaurants),
		opts:    opts.withDefaults(),
		active:  -1,
	}
}

func (v *Viewer) Stories() []models.DishStory {
	return v.stories
}

// OpenRestaurant opens the first story of a restaurant.
func (v *Viewer) OpenRestaurant(restaurantID string) (*Session, error) {
	for i := range v.stories {
		if v.stories[i].RestaurantID == restaurantID {
			return v.OpenStory(i)
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownRestaurant, restaurantID)
}

// OpenStory ends any open session and opens the story at index.
func (v *Viewer) OpenStory(index int) (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return nil, ErrViewerClosed
	}
	if index < 0 || index >= len(v.stories) {
		return nil, fmt.Errorf("%w: %d", ErrStoryOutOfRange, index)
	}
	v.open(index)
	return v.session, nil
}

// open replaces the current session. Callers hold v.mu.
func (v *Viewer) open(index int) {
	if v.session != nil {
		v.session.Close()
	}
	v.active = index
	v.session = Open(&v.stories[index], v.opts, v.handleTimerSignal)
}

// closeSession ends the open session without opening another. Callers hold
// v.mu.
func (v *Viewer) closeSession() {
	if v.session != nil {
		v.session.Close()
	}
	v.session = nil
	v.active = -1
}

// Session returns the open session, or nil.
func (v *Viewer) Session() *Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session
}

// Active returns the index of the open story.
func (v *Viewer) Active() (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active, v.session != nil
}

// Tap forwards a frame tap to the open session and applies the resulting
// navigation.
func (v *Viewer) Tap(x float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.session == nil {
		return ErrNoActiveSession
	}
	v.apply(v.session.Tap(x))
	return nil
}

// Next opens the following story, or closes the viewer after the last one.
func (v *Viewer) Next() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.apply(playback.SignalAdvanceStory)
}

// Previous opens the preceding story. It does nothing on the first story.
func (v *Viewer) Previous() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.apply(playback.SignalRetreatStory)
}

// Close ends the open session.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closeSession()
}

// Shutdown closes the viewer and waits for every timer goroutine to exit.
// It must not be called from a timer callback.
func (v *Viewer) Shutdown() {
	v.mu.Lock()
	v.closeSession()
	v.closed = true
	v.mu.Unlock()

	if w, ok := v.opts.Timers.(waiter); ok {
		w.Wait()
	}
}

func (v *Viewer) handleTimerSignal(s *Session, sig playback.Signal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.session != s {
		// the user navigated away before this tick was handled
		return
	}
	v.apply(sig)
}

// apply turns a session signal into navigation. Callers hold v.mu.
func (v *Viewer) apply(sig playback.Signal) {
	if v.closed || v.session == nil {
		return
	}
	switch sig {
	case playback.SignalAdvanceStory:
		v.session.publishNavigation(models.EventStoryAdvanced)
		if v.active < len(v.stories)-1 {
			v.open(v.active + 1)
			return
		}
		logger.Debug("last story finished, closing viewer", zap.Int("index", v.active))
		v.closeSession()
	case playback.SignalRetreatStory:
		if v.active > 0 {
			v.session.publishNavigation(models.EventStoryRetreated)
			v.open(v.active - 1)
		}
	}
}
