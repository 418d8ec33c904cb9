package viewer

import (
	"github.com/chrisdamba/foodstories/internal/logger"
	"github.com/chrisdamba/foodstories/internal/models"
	"go.uber.org/zap"
)

// Notifier shows fire-and-forget success messages.
type Notifier interface {
	Success(message, description string)
}

// Publisher receives interaction events. Sessions publish while holding
// their lock, so implementations must not block.
type Publisher interface {
	Publish(event models.InteractionEvent)
}

// CartAdder is the cart the session adds dishes to.
type CartAdder interface {
	Add(storyID string, customizations models.Customizations, price float64) models.CartEntry
}

// LogNotifier writes notifications to the global logger.
type LogNotifier struct{}

func (LogNotifier) Success(message, description string) {
	logger.Info(message, zap.String("description", description))
}

type nopPublisher struct{}

func (nopPublisher) Publish(models.InteractionEvent) {}
