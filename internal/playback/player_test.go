package playback

import (
	"math"
	"testing"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
)

func twoClips() []models.Media {
	return []models.Media{
		{Type: models.MediaImage, URL: "a.jpg", Duration: 5},
		{Type: models.MediaVideo, URL: "b.mp4", Duration: 5},
	}
}

// ticksFor is the number of ticks needed to play d at the given interval.
func ticksFor(d, interval time.Duration) int {
	return int(d / interval)
}

func TestPlayerAdvancesThroughMedia(t *testing.T) {
	p := NewPlayer(twoClips(), 50*time.Millisecond)
	if c := p.Cursor(); c != (Cursor{}) {
		t.Fatalf("expected Playing(0,0), got %+v", c)
	}

	n := ticksFor(5*time.Second, 50*time.Millisecond)
	for i := 0; i < n-1; i++ {
		if sig := p.Tick(); sig != SignalNone {
			t.Fatalf("tick %d: unexpected signal %v", i, sig)
		}
	}
	if p.MediaIndex() != 0 {
		t.Fatalf("advanced too early")
	}
	if sig := p.Tick(); sig != SignalNone {
		t.Fatalf("expected no signal on media change, got %v", sig)
	}
	if c := p.Cursor(); c.MediaIndex != 1 || c.Progress != 0 || c.Paused {
		t.Fatalf("expected Playing(1,0), got %+v", c)
	}

	for i := 0; i < n-1; i++ {
		p.Tick()
	}
	if sig := p.Tick(); sig != SignalAdvanceStory {
		t.Fatalf("expected advance story, got %v", sig)
	}
	if p.Progress() != 0 {
		t.Fatalf("expected progress reset, got %v", p.Progress())
	}
}

func TestPlayerPauseKeepsProgress(t *testing.T) {
	p := NewPlayer(twoClips(), 50*time.Millisecond)
	for i := 0; i < 40; i++ {
		p.Tick()
	}
	if math.Abs(p.Progress()-0.4) > 1e-9 {
		t.Fatalf("expected progress 0.4, got %v", p.Progress())
	}

	p.Pause()
	for i := 0; i < 100; i++ {
		if sig := p.Tick(); sig != SignalNone {
			t.Fatalf("paused player emitted %v", sig)
		}
	}
	if math.Abs(p.Progress()-0.4) > 1e-9 {
		t.Fatalf("paused ticks changed progress to %v", p.Progress())
	}

	p.Resume()
	p.Tick()
	if math.Abs(p.Progress()-0.41) > 1e-9 {
		t.Fatalf("expected to resume from 0.4, got %v", p.Progress())
	}
}

func TestPlayerTapZones(t *testing.T) {
	t.Run("back on first media retreats story", func(t *testing.T) {
		p := NewPlayer(twoClips(), 0)
		if sig := p.Tap(ZoneBack); sig != SignalRetreatStory {
			t.Fatalf("expected retreat, got %v", sig)
		}
		if p.MediaIndex() != 0 {
			t.Fatalf("index changed")
		}
	})

	t.Run("forward skips without full progress", func(t *testing.T) {
		p := NewPlayer(twoClips(), 0)
		p.Tick()
		if sig := p.Tap(ZoneForward); sig != SignalNone {
			t.Fatalf("unexpected signal %v", sig)
		}
		if c := p.Cursor(); c.MediaIndex != 1 || c.Progress != 0 {
			t.Fatalf("expected (1,0), got %+v", c)
		}
		if sig := p.Tap(ZoneForward); sig != SignalAdvanceStory {
			t.Fatalf("expected advance on last media, got %v", sig)
		}
	})

	t.Run("back from second media", func(t *testing.T) {
		p := NewPlayer(twoClips(), 0)
		p.Forward()
		p.Tick()
		if sig := p.Tap(ZoneBack); sig != SignalNone {
			t.Fatalf("unexpected signal %v", sig)
		}
		if c := p.Cursor(); c.MediaIndex != 0 || c.Progress != 0 {
			t.Fatalf("expected (0,0), got %+v", c)
		}
	})

	t.Run("center toggles pause only", func(t *testing.T) {
		p := NewPlayer(twoClips(), 0)
		p.Tick()
		before := p.Cursor()
		p.Tap(ZoneToggle)
		after := p.Cursor()
		if !after.Paused || after.MediaIndex != before.MediaIndex || after.Progress != before.Progress {
			t.Fatalf("toggle changed more than pause: %+v -> %+v", before, after)
		}
		p.Tap(ZoneToggle)
		if p.Paused() {
			t.Fatalf("expected playing after second toggle")
		}
	})
}

func TestPlayerNonPositiveDuration(t *testing.T) {
	media := []models.Media{{Duration: 0}, {Duration: -3}}
	p := NewPlayer(media, 50*time.Millisecond)

	if sig := p.Tick(); sig != SignalNone || p.MediaIndex() != 1 {
		t.Fatalf("expected immediate move to media 1, got index %d sig %v", p.MediaIndex(), sig)
	}
	if sig := p.Tick(); sig != SignalAdvanceStory {
		t.Fatalf("expected immediate advance, got %v", sig)
	}
	if p.Progress() != 0 {
		t.Fatalf("progress must stay finite and zero, got %v", p.Progress())
	}
}

func TestPlayerEmptyStory(t *testing.T) {
	p := NewPlayer(nil, 0)
	if p.Current() != nil {
		t.Fatalf("expected no current media")
	}
	if sig := p.Tick(); sig != SignalAdvanceStory {
		t.Fatalf("expected advance for empty story, got %v", sig)
	}
}

func TestSegments(t *testing.T) {
	media := []models.Media{{Duration: 1}, {Duration: 1}, {Duration: 1}}
	p := NewPlayer(media, 250*time.Millisecond)
	p.Forward()
	p.Tick()
	p.Tick()

	got := p.Segments()
	want := []float64{1, 0.5, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("segment %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
