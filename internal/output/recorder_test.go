package output

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chrisdamba/foodstories/internal/models"
)

type memDest struct {
	mu       sync.Mutex
	messages []models.EventMessage
	fail     map[string]bool
	closed   bool
}

func (m *memDest) WriteMessage(topic string, msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var e models.InteractionEvent
	if err := json.Unmarshal(msg, &e); err != nil {
		return err
	}
	if m.fail[e.EventType] {
		return errors.New("sink unavailable")
	}
	m.messages = append(m.messages, models.EventMessage{Topic: topic, Message: msg})
	return nil
}

func (m *memDest) Close() error {
	m.closed = true
	return nil
}

func TestRecorderRoutesTopics(t *testing.T) {
	dest := &memDest{}
	r := NewRecorder(dest, 4)

	types := []string{models.EventStoryOpened, models.EventDetailOpened, models.EventCartAdded, models.EventStoryAdvanced}
	for _, et := range types {
		r.Publish(testEvent(et))
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	want := []string{models.TopicStoryEvents, models.TopicInteractionEvents, models.TopicCartEvents, models.TopicStoryEvents}
	if len(dest.messages) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(dest.messages))
	}
	for i, topic := range want {
		if dest.messages[i].Topic != topic {
			t.Fatalf("message %d: expected topic %s, got %s", i, topic, dest.messages[i].Topic)
		}
	}
	if !dest.closed || r.Written() != 4 || r.Failed() != 0 {
		t.Fatalf("unexpected recorder state: closed=%v written=%d failed=%d", dest.closed, r.Written(), r.Failed())
	}
}

func TestRecorderCountsFailures(t *testing.T) {
	dest := &memDest{fail: map[string]bool{models.EventPanelOpened: true}}
	r := NewRecorder(dest, 0)

	r.Publish(testEvent(models.EventPanelOpened))
	r.Publish(testEvent(models.EventPanelConfirmed))
	r.Close()
	r.Publish(testEvent(models.EventStoryClosed))

	if r.Written() != 1 || r.Failed() != 2 {
		t.Fatalf("expected 1 written and 2 failed, got %d/%d", r.Written(), r.Failed())
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
}

// blockingDest holds every write until release is closed.
type blockingDest struct {
	release chan struct{}
	written atomic.Int64
}

func (b *blockingDest) WriteMessage(string, []byte) error {
	<-b.release
	b.written.Add(1)
	return nil
}

func (b *blockingDest) Close() error { return nil }

func TestRecorderPublishNeverBlocks(t *testing.T) {
	dest := &blockingDest{release: make(chan struct{})}
	r := NewRecorder(dest, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			r.Publish(testEvent(models.EventPlaybackPaused))
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a stalled destination")
	}

	close(dest.release)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if r.Failed() < 3 {
		t.Fatalf("expected at least 3 dropped events, got %d", r.Failed())
	}
	if r.Written()+r.Failed() != 5 || r.Written() != dest.written.Load() {
		t.Fatalf("unexpected counts: written=%d failed=%d dest=%d", r.Written(), r.Failed(), dest.written.Load())
	}
}
