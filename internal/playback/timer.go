package playback

import (
	"sync"
	"time"
)

// Timer is a running tick source. Stop is idempotent. A fire call already
// in flight when Stop is called may still complete, so owners must discard
// ticks from timers they have replaced.
type Timer interface {
	Stop()
}

// TimerFactory starts timers that call fire every interval.
type TimerFactory interface {
	Start(interval time.Duration, fire func()) Timer
}

// TickerFactory runs each timer on its own goroutine backed by a
// time.Ticker. Wait blocks until every started timer has exited.
type TickerFactory struct {
	wg sync.WaitGroup
}

func NewTickerFactory() *TickerFactory {
	return &TickerFactory{}
}

func (f *TickerFactory) Start(interval time.Duration, fire func()) Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &tickerTimer{done: make(chan struct{})}
	ticker := time.NewTicker(interval)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-t.done:
				return
			case <-ticker.C:
				// Stop may race with the ticker; re-check before firing.
				select {
				case <-t.done:
					return
				default:
				}
				fire()
			}
		}
	}()
	return t
}

// Wait blocks until all timer goroutines have returned.
func (f *TickerFactory) Wait() {
	f.wg.Wait()
}

type tickerTimer struct {
	once sync.Once
	done chan struct{}
}

func (t *tickerTimer) Stop() {
	t.once.Do(func() { close(t.done) })
}
