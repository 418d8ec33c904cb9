package output

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"go.uber.org/zap"
)

const DefaultRecorderBuffer = 1024

// Recorder serializes interaction events and writes them to a destination
// from a single goroutine, in publish order. Write failures are logged and
// counted; they never reach the publisher.
type Recorder struct {
	dest   OutputDestination
	events chan models.EventMessage
	done   chan struct{}

	mu     sync.RWMutex
	closed bool

	written atomic.Int64
	failed  atomic.Int64
}

func NewRecorder(dest OutputDestination, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = DefaultRecorderBuffer
	}
	r := &Recorder{
		dest:   dest,
		events: make(chan models.EventMessage, buffer),
		done:   make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) run() {
	defer close(r.done)
	for msg := range r.events {
		if err := r.dest.WriteMessage(msg.Topic, msg.Message); err != nil {
			r.failed.Add(1)
			logger.Error("failed to write event", zap.String("topic", msg.Topic), zap.Error(err))
			continue
		}
		r.written.Add(1)
	}
}

// Publish queues e without blocking. Events that find the buffer full, or
// arrive after Close, are dropped and counted as failed.
func (r *Recorder) Publish(e models.InteractionEvent) {
	data, err := json.Marshal(e)
	if err != nil {
		r.failed.Add(1)
		logger.Error("failed to encode event", zap.String("event_type", e.EventType), zap.Error(err))
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.failed.Add(1)
		logger.Warn("event dropped", zap.String("event_type", e.EventType), zap.Error(ErrProducerClosed))
		return
	}
	select {
	case r.events <- models.EventMessage{Topic: models.TopicFor(e.EventType), Message: data}:
	default:
		r.failed.Add(1)
		logger.Warn("event dropped, output is falling behind", zap.String("event_type", e.EventType))
	}
}

// Close drains queued events and closes the destination.
func (r *Recorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.events)
	r.mu.Unlock()

	<-r.done
	return r.dest.Close()
}

func (r *Recorder) Written() int64 { return r.written.Load() }
func (r *Recorder) Failed() int64  { return r.failed.Load() }
