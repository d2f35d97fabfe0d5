package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "MOVIE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation used across services.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes emitted by this service.
const (
	TypeMovieCreated = "MOVIE_CREATED"
	TypeMovieDeleted = "MOVIE_DELETED"
	TypeMoodSearched = "MOOD_SEARCHED"
)

// NewMovieCreated builds the catalog-change event consumed by downstream
// indexers.
func NewMovieCreated(movieId int64, title string) BaseEvent {
	return BaseEvent{
		Type: TypeMovieCreated,
		Data: map[string]interface{}{
			"movie_id": movieId,
			"title":    title,
		},
		OccurredAt: time.Now(),
	}
}

// NewMovieDeleted tells downstream indexers to drop the movie.
func NewMovieDeleted(movieId int64) BaseEvent {
	return BaseEvent{
		Type: TypeMovieDeleted,
		Data: map[string]interface{}{
			"movie_id": movieId,
		},
		OccurredAt: time.Now(),
	}
}

// NewMoodSearched records a mood query for cross-service analytics.
func NewMoodSearched(query string, emotions []string, results int) BaseEvent {
	return BaseEvent{
		Type: TypeMoodSearched,
		Data: map[string]interface{}{
			"query":    query,
			"emotions": emotions,
			"results":  results,
		},
		OccurredAt: time.Now(),
	}
}
