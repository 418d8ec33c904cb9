package viewer

import (
	"errors"
	"testing"

	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/playback"
)

func TestViewerOpenRestaurant(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())

	s, err := v.OpenRestaurant("r2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Story().ID != "s2" {
		t.Fatalf("expected s2, got %s", s.Story().ID)
	}
	if idx, ok := v.Active(); !ok || idx != 1 {
		t.Fatalf("expected active index 1, got %d (%v)", idx, ok)
	}

	if _, err := v.OpenRestaurant("r9"); !errors.Is(err, ErrUnknownRestaurant) {
		t.Fatalf("expected ErrUnknownRestaurant, got %v", err)
	}
	if _, err := v.OpenStory(7); !errors.Is(err, ErrStoryOutOfRange) {
		t.Fatalf("expected ErrStoryOutOfRange, got %v", err)
	}
}

func TestViewerReplacesSession(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())

	first, _ := v.OpenStory(0)
	second, _ := v.OpenStory(2)
	if !first.Closed() || second.Closed() {
		t.Fatalf("opening a story must close the previous session")
	}
	if n := len(h.timers.live()); n != 1 {
		t.Fatalf("expected one live timer across sessions, got %d", n)
	}
}

func TestViewerTimerAdvancesStories(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())
	if _, err := v.OpenStory(1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	h.timers.tick(20)
	idx, ok := v.Active()
	if !ok || idx != 2 {
		t.Fatalf("expected story 2 after the timer ran out, got %d (%v)", idx, ok)
	}
	if !h.publisher.has(models.EventStoryAdvanced) {
		t.Fatalf("expected story_advanced event")
	}

	h.timers.tick(20)
	if _, ok := v.Active(); ok {
		t.Fatalf("finishing the last story must close the viewer")
	}
	if v.Session() != nil || len(h.timers.live()) != 0 {
		t.Fatalf("expected no session and no timer after the last story")
	}
}

func TestViewerTapNavigation(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())
	v.OpenStory(0)

	if err := v.Tap(90); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.Session().Cursor().MediaIndex != 1 {
		t.Fatalf("expected media 1")
	}
	v.Tap(90)
	if idx, _ := v.Active(); idx != 1 {
		t.Fatalf("forward tap on the last media must open the next story, got %d", idx)
	}
	v.Tap(10)
	if idx, _ := v.Active(); idx != 0 {
		t.Fatalf("back tap on the first media must open the previous story, got %d", idx)
	}
	if c := v.Session().Cursor(); c.MediaIndex != 0 || c.Progress != 0 {
		t.Fatalf("a reopened story starts at Playing(0,0), got %+v", c)
	}
}

func TestViewerPreviousOnFirstStory(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())
	s, _ := v.OpenStory(0)

	v.Previous()
	if v.Session() != s || s.Closed() {
		t.Fatalf("previous on the first story must keep the session open")
	}

	v.Next()
	if idx, _ := v.Active(); idx != 1 {
		t.Fatalf("expected next to open story 1, got %d", idx)
	}
}

func TestViewerStaleSignalIgnored(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())
	old, _ := v.OpenStory(1)
	current, _ := v.OpenStory(0)

	v.handleTimerSignal(old, playback.SignalAdvanceStory)
	if v.Session() != current {
		t.Fatalf("signal from a replaced session changed navigation")
	}
}

func TestViewerShutdown(t *testing.T) {
	h := newHarness()
	v := New(testCatalog(), h.options())
	v.OpenStory(0)

	v.Shutdown()
	if len(h.timers.live()) != 0 {
		t.Fatalf("shutdown must stop every timer")
	}
	if _, err := v.OpenStory(0); !errors.Is(err, ErrViewerClosed) {
		t.Fatalf("expected ErrViewerClosed, got %v", err)
	}
	if err := v.Tap(50); !errors.Is(err, ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}
