package models

const (
	TopicStoryEvents       = "story_events"
	TopicInteractionEvents = "interaction_events"
	TopicCartEvents        = "cart_events"

	EventStoryOpened    = "story_opened"
	EventStoryClosed    = "story_closed"
	EventMediaAdvanced  = "media_advanced"
	EventMediaRetreated = "media_retreated"
	EventStoryAdvanced  = "story_advanced"
	EventStoryRetreated = "story_retreated"

	EventPlaybackPaused        = "playback_paused"
	EventPlaybackResumed       = "playback_resumed"
	EventDetailOpened          = "detail_opened"
	EventDetailClosed          = "detail_closed"
	EventPanelOpened           = "panel_opened"
	EventPanelConfirmed        = "panel_confirmed"
	EventPanelDismissed        = "panel_dismissed"
	EventExtraAdded            = "extra_added"
	EventIngredientSubstituted = "ingredient_substituted"

	EventCartAdded = "cart_added"

	CatalogSourceMock      = "mock"
	CatalogSourceFile      = "file"
	CatalogSourceS3        = "s3"
	CatalogSourcePostgres  = "postgres"
	CatalogSourceGenerated = "generated"
)

// TopicFor returns the output topic an event type is published on.
func TopicFor(eventType string) string {
	switch eventType {
	case EventStoryOpened, EventStoryClosed, EventMediaAdvanced, EventMediaRetreated,
		EventStoryAdvanced, EventStoryRetreated:
		return TopicStoryEvents
	case EventCartAdded:
		return TopicCartEvents
	default:
		return TopicInteractionEvents
	}
}

// EventMessage is a serialized event ready for an output destination.
type EventMessage struct {
	Topic   string
	Message []byte
}
