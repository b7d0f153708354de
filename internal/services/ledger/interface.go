package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hysteriagg/muster/internal/services/ledger Service

import "context"

// Service defines the interface for points, profiles, and admin operations
type Service interface {
	// Register upserts a member's IGN and class, last write wins
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Profile retrieves a member's profile and totals
	Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error)

	// Points retrieves a member's total and rank by Discord user ID
	Points(ctx context.Context, input *PointsInput) (*PointsOutput, error)

	// PointsByIGN retrieves a member's total and rank by in-game name
	PointsByIGN(ctx context.Context, input *PointsByIGNInput) (*PointsOutput, error)

	// PointsAll retrieves every member's standing in rank order
	PointsAll(ctx context.Context, input *PointsAllInput) (*PointsAllOutput, error)

	// Leaderboard retrieves the top members by total points
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// SetEvent creates or overwrites an event's point value
	SetEvent(ctx context.Context, input *SetEventInput) error

	// ListEvents retrieves the event-type point table
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// AddPoints grants points to a member resolved by IGN
	AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error)

	// AddPointsBatch grants points from CSV lines of ign,points
	AddPointsBatch(ctx context.Context, input *AddPointsBatchInput) (*AddPointsBatchOutput, error)

	// ResetPoints deletes one member record or all of them
	ResetPoints(ctx context.Context, input *ResetPointsInput) (*ResetPointsOutput, error)

	// ExportCSV renders every member record as CSV
	ExportCSV(ctx context.Context, input *ExportCSVInput) (*ExportCSVOutput, error)

	// AuditLog retrieves audit entries, optionally filtered by civil date
	AuditLog(ctx context.Context, input *AuditLogInput) (*AuditLogOutput, error)
}
