package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when an identifier does not resolve to a record.
var ErrNotFound = errors.New("not found")

// Event represents a university event. Name and location are stored already
// sanitized; they never contain literal markup characters.
// swagger:model Event
type Event struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(name, location string, date, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:      name,
		Location:  location,
		Date:      date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns events ordered by date descending. A non-empty nameFilter
	// restricts results to names containing it as a literal,
	// case-insensitive substring.
	List(ctx context.Context, nameFilter string) ([]*Event, error)
	// Update applies the non-nil fields and returns the updated row.
	Update(ctx context.Context, id string, name, location *string, date *time.Time) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the event CRUD workflows.
type EventService interface {
	Create(ctx context.Context, name, location, date string) (*Event, error)
	List(ctx context.Context, nameFilter string) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, name, location, date *string) (*Event, error)
	Delete(ctx context.Context, id string) error
}
