package events

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hysteriagg/muster/internal/repositories/events Repository

import (
	"context"
)

// Repository defines the interface for the event-type point table
type Repository interface {
	// GetPoints retrieves the point value for a normalized event name
	GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error)

	// SetPoints creates or overwrites the point value for an event
	SetPoints(ctx context.Context, input *SetPointsInput) error

	// ListEvents retrieves the full event-type point table
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// EnsureDefaults seeds the starter point table when the table is empty
	EnsureDefaults(ctx context.Context) error
}
