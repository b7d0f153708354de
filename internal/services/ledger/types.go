package ledger

import (
	"github.com/hysteriagg/muster/internal/common/civiltime"
	"github.com/hysteriagg/muster/internal/common/clock"
	"github.com/hysteriagg/muster/internal/common/uuid"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
)

// EventTypeManual tags history entries created by addpoints rather than
// a CTA window
const EventTypeManual = "MANUAL"

// ResetScope selects what a reset removes
type ResetScope string

const (
	// ResetScopeAll removes every member record
	ResetScopeAll ResetScope = "all"

	// ResetScopeUser removes a single member record
	ResetScopeUser ResetScope = "user"
)

// Config holds configuration for the ledger service
type Config struct {
	// Repository dependencies
	MemberRepo memberRepo.Repository
	EventRepo  eventsRepo.Repository
	AuditRepo  auditRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	CivilTime     *civiltime.Formatter
}

// RegisterInput contains parameters for registering a member
type RegisterInput struct {
	MemberID string
	Name     string
	Tag      string
	IGN      string
	Class    string
}

// RegisterOutput contains the result of registering a member
type RegisterOutput struct {
	// Updated is true when the member had registered before
	Updated bool

	// Profile is the profile as stored
	Profile models.Profile
}

// ProfileInput contains parameters for retrieving a member's profile
type ProfileInput struct {
	MemberID string
}

// ProfileOutput contains a member's profile and totals
type ProfileOutput struct {
	Profile     models.Profile
	TotalPoints int
	GrantCount  int
}

// PointsInput contains parameters for a points lookup by user ID
type PointsInput struct {
	MemberID string
}

// PointsByIGNInput contains parameters for a points lookup by IGN
type PointsByIGNInput struct {
	IGN string
}

// PointsOutput contains a member's standing
type PointsOutput struct {
	MemberID    string
	Profile     models.Profile
	TotalPoints int

	// Rank is 1-based, members with equal totals share a rank
	Rank int

	// LastGrant is the most recent history entry, nil when none
	LastGrant *models.PointGrant
}

// PointsAllInput contains parameters for listing every member's standing
type PointsAllInput struct {
	// Limit caps the number of entries, zero means no cap
	Limit int
}

// Standing is one member's row in an ordered points listing
type Standing struct {
	MemberID    string
	DisplayName string
	IGN         string
	Class       string
	TotalPoints int
	Rank        int
}

// PointsAllOutput contains every member's standing in rank order
type PointsAllOutput struct {
	Standings []*Standing
}

// LeaderboardInput contains parameters for the leaderboard query
type LeaderboardInput struct {
	// Limit caps the number of entries, zero means the default
	Limit int
}

// LeaderboardOutput contains the top members in rank order
type LeaderboardOutput struct {
	Standings []*Standing
}

// SetEventInput contains parameters for setting an event's point value
type SetEventInput struct {
	EventName string
	Points    int
	ActorID   string
	ActorName string
}

// ListEventsInput contains parameters for listing the event table
type ListEventsInput struct{}

// ListEventsOutput contains the event-type point table
type ListEventsOutput struct {
	Events map[string]int
}

// AddPointsInput contains parameters for a manual point grant
type AddPointsInput struct {
	IGN       string
	Points    int
	ActorID   string
	ActorName string
}

// AddPointsOutput contains the result of a manual point grant
type AddPointsOutput struct {
	MemberID    string
	DisplayName string
	TotalPoints int
}

// AddPointsBatchInput contains parameters for a batched manual grant
type AddPointsBatchInput struct {
	// CSVData holds ign,points lines, an optional header is skipped
	CSVData   string
	ActorID   string
	ActorName string
}

// BatchLineResult reports the outcome of one batch line
type BatchLineResult struct {
	Line        int
	IGN         string
	Points      int
	TotalPoints int

	// Err is empty on success
	Err string
}

// AddPointsBatchOutput contains the per-line batch report
type AddPointsBatchOutput struct {
	Results   []*BatchLineResult
	Succeeded int
	Failed    int
}

// ResetPointsInput contains parameters for resetting member records
type ResetPointsInput struct {
	Scope     ResetScope
	MemberID  string
	ActorID   string
	ActorName string
}

// ResetPointsOutput contains the result of a reset
type ResetPointsOutput struct {
	// Removed is how many member records were deleted
	Removed int
}

// ExportCSVInput contains parameters for the CSV export
type ExportCSVInput struct {
	ActorID   string
	ActorName string
}

// ExportCSVOutput contains the rendered CSV document
type ExportCSVOutput struct {
	CSV         string
	MemberCount int
}

// AuditLogInput contains parameters for reading the audit log
type AuditLogInput struct {
	// Date filters entries to one civil date when set, MM/DD/YYYY
	Date string
}

// AuditLogOutput contains audit entries in append order
type AuditLogOutput struct {
	Entries []*models.AuditLogEntry
}
