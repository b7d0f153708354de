package cta

import (
	"time"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	"github.com/hysteriagg/muster/internal/common/clock"
	"github.com/hysteriagg/muster/internal/common/codegen"
	"github.com/hysteriagg/muster/internal/common/uuid"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	ctaRepo "github.com/hysteriagg/muster/internal/repositories/cta"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
)

// Config holds configuration for the CTA service
type Config struct {
	// Default window duration when the opener does not pass one
	DefaultDuration time.Duration

	// Length of generated attendance codes
	CodeLength int

	// Repository dependencies
	CTARepo    ctaRepo.Repository
	MemberRepo memberRepo.Repository
	EventRepo  eventsRepo.Repository
	AuditRepo  auditRepo.Repository

	// Service dependencies
	CodeGenerator codegen.Generator
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	CivilTime     *civiltime.Formatter
}

// OpenInput contains parameters for opening an attendance window
type OpenInput struct {
	// GuildID is the Discord server the window belongs to
	GuildID string

	// ChannelID is the Discord channel the window is scoped to
	ChannelID string

	// CreatorID is the Discord user ID opening the window
	CreatorID string

	// CreatorName is the opener's tag, used for audit entries
	CreatorName string

	// EventName is the raw event name, normalized before lookup
	EventName string

	// Description names an ad-hoc OTHERS event
	Description string

	// Points is the point value for an ad-hoc OTHERS event
	Points int

	// Duration overrides the default window duration when positive
	Duration time.Duration
}

// OpenOutput contains the result of opening an attendance window
type OpenOutput struct {
	// CTA is the opened window
	CTA *models.CTA

	// ReplacedExpired is true when an expired window was closed first
	ReplacedExpired bool
}

// SetMessageInput contains parameters for recording the announcement message
type SetMessageInput struct {
	ChannelID string
	MessageID string
}

// JoinInput contains parameters for joining a window
type JoinInput struct {
	// ChannelID is the channel the member is joining in
	ChannelID string

	// MemberID is the Discord user ID of the joiner
	MemberID string

	// MemberName is the joiner's current display name
	MemberName string

	// MemberTag is the joiner's current tag
	MemberTag string

	// Code is the submitted attendance code
	Code string
}

// JoinOutput contains the result of a successful join
type JoinOutput struct {
	// EventType is the window's normalized event name
	EventType string

	// Points is the number of points granted
	Points int

	// TotalPoints is the member's total after the grant
	TotalPoints int
}

// CloseInput contains parameters for closing a window
type CloseInput struct {
	// ChannelID is the channel whose window should close
	ChannelID string

	// ClosedBy is the Discord user ID that requested the close,
	// empty when the window expired on its own
	ClosedBy string

	// ClosedByName is the closer's tag, used for audit entries
	ClosedByName string
}

// CloseOutput contains the result of closing a window
type CloseOutput struct {
	// Closed is false when no window was active
	Closed bool

	// Entry is the history snapshot, nil when Closed is false
	Entry *models.CTAHistoryEntry
}

// AttendanceInput contains parameters for querying closed-window history
type AttendanceInput struct {
	// EventName is the raw event name, normalized before matching
	EventName string

	// Date is the civil date label to match, MM/DD/YYYY
	Date string

	// Timestamp selects one window when several match the date
	Timestamp string
}

// AttendanceOutput contains the result of an attendance query
type AttendanceOutput struct {
	// Timestamps lists candidate windows when no timestamp was given
	// and more than one window matches
	Timestamps []string

	// Entry is the resolved window when exactly one matches
	Entry *models.CTAHistoryEntry
}

// ClosedNotice carries what the front-end needs to retire an announcement
type ClosedNotice struct {
	GuildID   string
	ChannelID string
	MessageID string
	EventType string
}
