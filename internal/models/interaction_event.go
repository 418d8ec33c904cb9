package models

import "time"

// InteractionEvent is the record published for every story session
// transition. Fields that do not apply to an event type are left empty.
type InteractionEvent struct {
	Timestamp      int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType      string  `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	SessionID      string  `json:"sessionId" parquet:"name=sessionId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ViewerID       string  `json:"viewerId" parquet:"name=viewerId,type=BYTE_ARRAY,convertedtype=UTF8"`
	StoryID        string  `json:"storyId" parquet:"name=storyId,type=BYTE_ARRAY,convertedtype=UTF8"`
	RestaurantID   string  `json:"restaurantId" parquet:"name=restaurantId,type=BYTE_ARRAY,convertedtype=UTF8"`
	MediaIndex     int32   `json:"mediaIndex" parquet:"name=mediaIndex,type=INT32"`
	Progress       float64 `json:"progress" parquet:"name=progress,type=DOUBLE"`
	IngredientID   string  `json:"ingredientId" parquet:"name=ingredientId,type=BYTE_ARRAY,convertedtype=UTF8"`
	HotspotID      string  `json:"hotspotId" parquet:"name=hotspotId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Substitution   string  `json:"substitution" parquet:"name=substitution,type=BYTE_ARRAY,convertedtype=UTF8"`
	EntryID        string  `json:"entryId" parquet:"name=entryId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Price          float64 `json:"price" parquet:"name=price,type=DOUBLE"`
	Modifications  int32   `json:"modifications" parquet:"name=modifications,type=INT32"`
	Customizations string  `json:"customizations" parquet:"name=customizations,type=BYTE_ARRAY,convertedtype=UTF8"`
}

func NewInteractionEvent(eventType string, at time.Time) InteractionEvent {
	return InteractionEvent{
		Timestamp: at.Unix(),
		EventType: eventType,
	}
}
