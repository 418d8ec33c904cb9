// Package playback advances a story's media sequence on a timer and routes
// taps on the media frame.
package playback

import (
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
)

const DefaultInterval = 50 * time.Millisecond

// Signal asks the owner of a player to leave the current story.
type Signal int

const (
	SignalNone Signal = iota
	SignalAdvanceStory
	SignalRetreatStory
)

func (s Signal) String() string {
	switch s {
	case SignalAdvanceStory:
		return "advance_story"
	case SignalRetreatStory:
		return "retreat_story"
	default:
		return "none"
	}
}

// Cursor is the playback position within a story.
type Cursor struct {
	MediaIndex int
	Progress   float64 // fraction of the current media in [0,1)
	Paused     bool
}

// Player is the playback state machine for one open story. It is not safe
// for concurrent use; the owning session serializes access.
type Player struct {
	media    []models.Media
	interval time.Duration

	index   int
	elapsed time.Duration // time played of the current media
	paused  bool
}

// NewPlayer starts in Playing(0, 0). A non-positive interval falls back to
// DefaultInterval.
func NewPlayer(media []models.Media, interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{media: media, interval: interval}
}

func (p *Player) Cursor() Cursor {
	return Cursor{MediaIndex: p.index, Progress: p.Progress(), Paused: p.paused}
}

func (p *Player) MediaIndex() int         { return p.index }
func (p *Player) Paused() bool            { return p.paused }
func (p *Player) Len() int                { return len(p.media) }
func (p *Player) Interval() time.Duration { return p.interval }

// Progress is the played fraction of the current media.
func (p *Player) Progress() float64 {
	m := p.Current()
	if m == nil {
		return 0
	}
	d := m.DurationTime()
	if d <= 0 {
		return 0
	}
	return float64(p.elapsed) / float64(d)
}

// Current returns the media item being shown, or nil for an empty story.
func (p *Player) Current() *models.Media {
	if p.index < 0 || p.index >= len(p.media) {
		return nil
	}
	return &p.media[p.index]
}

// Tick advances progress by one interval. It does nothing while paused.
// Media with a non-positive duration is exhausted on the first tick.
func (p *Player) Tick() Signal {
	if p.paused {
		return SignalNone
	}
	m := p.Current()
	if m == nil {
		return SignalAdvanceStory
	}
	d := m.DurationTime()
	if d <= 0 {
		return p.Forward()
	}
	p.elapsed += p.interval
	if p.elapsed >= d {
		return p.Forward()
	}
	return SignalNone
}

// Forward moves to the next media item, or asks for the next story when the
// current item is the last one. Progress is reset either way.
func (p *Player) Forward() Signal {
	p.elapsed = 0
	if p.index < len(p.media)-1 {
		p.index++
		return SignalNone
	}
	return SignalAdvanceStory
}

// Back moves to the previous media item, or asks for the previous story
// from the first one.
func (p *Player) Back() Signal {
	if p.index > 0 {
		p.index--
		p.elapsed = 0
		return SignalNone
	}
	return SignalRetreatStory
}

// Tap routes a tap on the given zone.
func (p *Player) Tap(z Zone) Signal {
	switch z {
	case ZoneBack:
		return p.Back()
	case ZoneForward:
		return p.Forward()
	default:
		p.paused = !p.paused
		return SignalNone
	}
}

func (p *Player) Pause()  { p.paused = true }
func (p *Player) Resume() { p.paused = false }

// Segments returns the fill of every progress bar segment: full before the
// current item, partial at it, empty after it.
func (p *Player) Segments() []float64 {
	fill := make([]float64, len(p.media))
	for i := range fill {
		switch {
		case i < p.index:
			fill[i] = 1
		case i == p.index:
			fill[i] = p.Progress()
		}
	}
	return fill
}
