// Package simulator drives simulated viewers through the story viewer and
// records every interaction event they cause.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync/atomic"
	"time"

	"github.com/chrisdamba/foodstories/internal/cart"
	"github.com/chrisdamba/foodstories/internal/factories"
	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"github.com/chrisdamba/foodstories/internal/output"
	"github.com/chrisdamba/foodstories/internal/playback"
	"github.com/chrisdamba/foodstories/internal/viewer"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Simulator struct {
	Config      *models.Config
	Restaurants []models.Restaurant
	Viewers     []models.Viewer
	Cart        *cart.Accumulator

	// Output defaults to the destination named by the config.
	Output output.OutputDestination
	// NewTimers builds the timer factory of one viewer. Each viewer waits
	// for its own timers on shutdown, so factories are never shared.
	NewTimers func() playback.TimerFactory
	// Progress receives the progress bar; nil means stderr.
	Progress io.Writer

	sessions atomic.Int64
	actions  atomic.Int64
}

type Summary struct {
	Viewers      int
	Sessions     int64
	Actions      int64
	CartAdds     int
	CartTotal    float64
	Events       int64
	FailedEvents int64
	Elapsed      time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("%d viewers, %d sessions, %d actions, %d cart adds ($%.2f), %d events written (%d failed) in %s",
		s.Viewers, s.Sessions, s.Actions, s.CartAdds, s.CartTotal, s.Events, s.FailedEvents, s.Elapsed.Round(time.Millisecond))
}

func NewSimulator(config *models.Config, restaurants []models.Restaurant) *Simulator {
	return &Simulator{
		Config:      config,
		Restaurants: restaurants,
		Cart:        cart.NewAccumulator(),
	}
}

func (s *Simulator) initializeViewers() {
	if len(s.Viewers) > 0 {
		return
	}
	factories.Seed(s.Config.Seed)
	viewerFactory := &factories.ViewerFactory{}
	s.Viewers = make([]models.Viewer, s.Config.Viewers)
	for i := range s.Viewers {
		s.Viewers[i] = viewerFactory.CreateViewer(s.Restaurants)
	}
}

// Run plays every viewer's script, at most Config.Concurrency at a time,
// and returns once all of them finished or ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (Summary, error) {
	started := time.Now()
	s.initializeViewers()

	dest := s.Output
	if dest == nil {
		var err error
		if dest, err = output.New(ctx, s.Config); err != nil {
			return Summary{}, err
		}
	}
	recorder := output.NewRecorder(dest, 0)
	publisher := &countingPublisher{next: recorder, sessions: &s.sessions}

	progress := s.Progress
	if progress == nil {
		progress = os.Stderr
	}
	bar := progressbar.NewOptions(len(s.Viewers),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("viewers"),
		progressbar.OptionShowCount(),
	)

	logger.Info("simulation started",
		zap.Int("viewers", len(s.Viewers)),
		zap.Int("stories", len(models.FlattenStories(s.Restaurants))),
		zap.Float64("speed", s.Config.Speed))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Config.Concurrency)
	for i := range s.Viewers {
		i := i
		g.Go(func() error {
			defer bar.Add(1)
			return s.runViewer(gctx, i, publisher)
		})
	}
	runErr := g.Wait()
	_ = bar.Finish()

	if err := recorder.Close(); err != nil {
		logger.Error("failed to close output", zap.Error(err))
	}

	summary := Summary{
		Viewers:      len(s.Viewers),
		Sessions:     s.sessions.Load(),
		Actions:      s.actions.Load(),
		CartAdds:     s.Cart.Count(),
		CartTotal:    s.Cart.Total(),
		Events:       recorder.Written(),
		FailedEvents: recorder.Failed(),
		Elapsed:      time.Since(started),
	}
	logger.Info("simulation completed", zap.Stringer("summary", summary))
	if runErr != nil && ctx.Err() == nil {
		return summary, runErr
	}
	return summary, ctx.Err()
}

// runViewer replays one script. Script time runs Config.Speed times faster
// than the wall clock, like the playback timer.
func (s *Simulator) runViewer(ctx context.Context, index int, publisher viewer.Publisher) error {
	v := s.Viewers[index]
	rng := rand.New(rand.NewSource(s.Config.Seed + int64(index)))
	start := time.Now()
	script := BuildScript(v, s.Restaurants, start, rng, s.Config)

	var timers playback.TimerFactory
	if s.NewTimers != nil {
		timers = s.NewTimers()
	} else {
		timers = playback.NewTickerFactory()
	}
	vw := viewer.New(s.Restaurants, viewer.Options{
		TickInterval: s.Config.TickInterval,
		WallInterval: s.Config.WallInterval(),
		Zoning:       playback.Zoning{Back: s.Config.TapBackZone, Forward: s.Config.TapForwardZone},
		Timers:       timers,
		Cart:         s.Cart,
		Publisher:    publisher,
		ViewerID:     v.ID,
	})
	defer vw.Shutdown()

	ticker := time.NewTicker(s.Config.WallInterval())
	defer ticker.Stop()

	for !script.IsEmpty() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			virtual := start.Add(time.Duration(float64(now.Sub(start)) * s.Config.Speed))
			for _, event := range script.DequeueDue(virtual) {
				s.processEvent(vw, event, rng)
				s.actions.Add(1)
			}
		}
	}
	logger.Debug("viewer finished", zap.String("viewer_id", v.ID), zap.String("segment", v.Segment))
	return nil
}

func (s *Simulator) processEvent(vw *viewer.Viewer, event *models.Event, rng *rand.Rand) {
	switch event.Type {
	case models.ActionOpenRestaurant:
		target := event.Data.(models.TargetData)
		if _, err := vw.OpenRestaurant(target.ID); err != nil {
			logger.Warn("cannot open restaurant", zap.String("restaurant_id", target.ID), zap.Error(err))
		}
		return
	case models.ActionTap:
		_ = vw.Tap(event.Data.(models.TapData).X)
		return
	case models.ActionPrevious:
		vw.Previous()
		return
	case models.ActionClose:
		vw.Close()
		return
	}

	session := vw.Session()
	if session == nil {
		return
	}
	switch event.Type {
	case models.ActionTapHotspot:
		if hotspots := session.VisibleHotspots(); len(hotspots) > 0 {
			session.TapHotspot(hotspots[rng.Intn(len(hotspots))].ID)
		}
	case models.ActionCloseDetail:
		session.CloseDetail()
	case models.ActionAddExtra:
		if !session.AddExtra() {
			session.CloseDetail()
		}
	case models.ActionOpenPanel:
		session.OpenPanel()
	case models.ActionPanelIncrement:
		session.PanelIncrement(randomIngredient(session, rng))
	case models.ActionPanelDecrement:
		session.PanelDecrement(randomIngredient(session, rng))
	case models.ActionPanelRemove:
		session.PanelRemove(randomIngredient(session, rng))
	case models.ActionPanelReset:
		session.PanelReset()
	case models.ActionPanelConfirm:
		session.ConfirmPanel()
	case models.ActionPanelDismiss:
		session.DismissPanel()
	case models.ActionAddToCart:
		if _, err := session.AddToCart(); err != nil {
			logger.Debug("add to cart skipped", zap.Error(err))
		}
	default:
		logger.Warn("unknown action", zap.String("type", event.Type))
	}
}

func randomIngredient(session *viewer.Session, rng *rand.Rand) string {
	ingredients := session.Story().Ingredients
	if len(ingredients) == 0 {
		return ""
	}
	return ingredients[rng.Intn(len(ingredients))].ID
}

// countingPublisher counts opened sessions on the way to the recorder.
type countingPublisher struct {
	next     viewer.Publisher
	sessions *atomic.Int64
}

func (c *countingPublisher) Publish(e models.InteractionEvent) {
	if e.EventType == models.EventStoryOpened {
		c.sessions.Add(1)
	}
	c.next.Publish(e)
}
