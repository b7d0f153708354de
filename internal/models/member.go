package models

// Profile holds a member's identity fields, last-write-wins on register
type Profile struct {
	// Name is the Discord display name
	Name string

	// Tag is the Discord username#discriminator tag
	Tag string

	// IGN is the member's in-game name
	IGN string

	// Class is the member's registered class
	Class string
}

// Registered reports whether the member has completed registration
func (p *Profile) Registered() bool {
	return p.IGN != "" && p.Class != ""
}

// PointGrant is one append-only history entry for a member
type PointGrant struct {
	// ID is the unique identifier for the grant
	ID string

	// EventType is the normalized event the points were granted for
	EventType string

	// Points is the number of points granted
	Points int

	// Date is the civil date label of the grant
	Date string

	// Timestamp is the civil timestamp label of the grant
	Timestamp string

	// Code is the attendance code used, empty for manual grants
	Code string

	// ChannelID is the channel the grant originated in, empty for manual grants
	ChannelID string

	// GuildID is the Discord server the grant originated in
	GuildID string
}

// MemberRecord tracks a member's accumulated points, history, and profile
type MemberRecord struct {
	// MemberID is the Discord user ID
	MemberID string

	// TotalPoints is the accumulated point total
	TotalPoints int

	// History is the append-only sequence of point grants
	History []*PointGrant

	// Profile holds the member's identity fields
	Profile Profile
}

// LastGrant returns the most recent history entry, or nil
func (m *MemberRecord) LastGrant() *PointGrant {
	if len(m.History) == 0 {
		return nil
	}
	return m.History[len(m.History)-1]
}
