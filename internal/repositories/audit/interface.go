package audit

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hysteriagg/muster/internal/repositories/audit Repository

import (
	"context"
)

// Repository defines the interface for the append-only audit log
type Repository interface {
	// AppendEntry appends an audit log entry
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// ListEntries retrieves audit log entries in append order
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)
}
