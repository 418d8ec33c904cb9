package viewer

import (
	"testing"
	"time"

	"github.com/chrisdamba/foodstories/internal/output"
)

// stalledOutput never finishes a write until released.
type stalledOutput struct {
	release chan struct{}
}

func (o *stalledOutput) WriteMessage(string, []byte) error {
	<-o.release
	return nil
}

func (o *stalledOutput) Close() error { return nil }

func TestSessionTapsWithStalledOutput(t *testing.T) {
	h := newHarness()
	dest := &stalledOutput{release: make(chan struct{})}
	rec := output.NewRecorder(dest, 1)
	defer func() {
		close(dest.release)
		rec.Close()
	}()

	opts := h.options()
	opts.Publisher = rec
	story := burgerStory()
	s := Open(&story, opts, nil)

	done := make(chan struct{})
	go func() {
		s.Tap(50)
		s.Tap(50)
		s.Tap(50)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("taps blocked behind a stalled output")
	}

	if c := s.Cursor(); !c.Paused {
		t.Fatalf("expected three toggles to leave playback paused, got %+v", c)
	}
	if rec.Failed() == 0 {
		t.Fatal("expected events dropped by the full recorder to be counted")
	}
}
