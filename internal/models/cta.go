package models

import (
	"time"
)

// Attendee records a member's successful join of a CTA window
type Attendee struct {
	// MemberID is the Discord user ID of the attendee
	MemberID string

	// JoinedAt is when the member entered the code
	JoinedAt time.Time
}

// CTA represents an open attendance window in a Discord channel
type CTA struct {
	// Code is the attendance code members must submit to join
	Code string

	// EventType is the normalized event name this window is for
	EventType string

	// Points is the point value snapshotted at open time
	Points int

	// ExpiresAt is when the window stops accepting joins
	ExpiresAt time.Time

	// CreatedBy is the user ID that opened the window
	CreatedBy string

	// CreatedAt is when the window was opened
	CreatedAt time.Time

	// GuildID is the Discord server the window belongs to
	GuildID string

	// ChannelID is the Discord channel the window is scoped to
	ChannelID string

	// MessageID is the announcement message, edited when the window closes
	MessageID string

	// Attendees lists joins in join order, at most one per member
	Attendees []*Attendee
}

// HasAttendee reports whether the member has already joined this window
func (c *CTA) HasAttendee(memberID string) bool {
	for _, a := range c.Attendees {
		if a.MemberID == memberID {
			return true
		}
	}
	return false
}

// HistoryAttendee is an attendee enriched with display fields resolved at
// close time, since membership display names can change later
type HistoryAttendee struct {
	// MemberID is the Discord user ID of the attendee
	MemberID string

	// Name is the display name at close time
	Name string

	// IGN is the in-game name at close time
	IGN string

	// Class is the registered class at close time
	Class string

	// JoinedAt is when the member joined the window
	JoinedAt time.Time
}

// CTAHistoryEntry is the immutable record of a closed window
type CTAHistoryEntry struct {
	// ID is the unique identifier for the history entry
	ID string

	// EventType is the normalized event name
	EventType string

	// Points is the point value the window granted
	Points int

	// Code is the attendance code the window used
	Code string

	// GuildID is the Discord server the window belonged to
	GuildID string

	// ChannelID is the Discord channel the window was scoped to
	ChannelID string

	// CreatedAt is when the window was opened
	CreatedAt time.Time

	// ClosedAt is when the window was closed
	ClosedAt time.Time

	// Date is the civil date label of the window's creation
	Date string

	// Timestamp is the civil timestamp label of the window's creation
	Timestamp string

	// Attendees is the resolved attendee list
	Attendees []*HistoryAttendee
}
