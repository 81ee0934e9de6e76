package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType discriminates the change notifications emitted on the write path.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventDelete EventType = "DELETE"
)

// Event is a typed change notification for one aggregate. Key is always the
// product id and doubles as the routing key, so every consumer of a topic
// observes the events of one aggregate in dispatch order.
type Event[T any] struct {
	EventID   string    `json:"eventId"`
	Type      EventType `json:"type"`
	Key       int       `json:"key"`
	Payload   *T        `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCreateEvent builds a CREATE event carrying the written entity. The
// constructors are the only way to build an event, which rules out a CREATE
// without a payload or a DELETE with one.
func NewCreateEvent[T any](key int, payload T) Event[T] {
	return Event[T]{
		EventID:   uuid.NewString(),
		Type:      EventCreate,
		Key:       key,
		Payload:   &payload,
		CreatedAt: time.Now().UTC(),
	}
}

// NewDeleteEvent builds a DELETE event; its payload is always null.
func NewDeleteEvent[T any](key int) Event[T] {
	return Event[T]{
		EventID:   uuid.NewString(),
		Type:      EventDelete,
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
}
