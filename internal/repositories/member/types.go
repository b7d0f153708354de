package member

import "github.com/hysteriagg/muster/internal/models"

// SaveMemberInput contains parameters for saving a member record
type SaveMemberInput struct {
	Member *models.MemberRecord
}

// GetMemberInput contains parameters for retrieving a member record
type GetMemberInput struct {
	MemberID string
}

// ListMembersInput contains parameters for listing member records
type ListMembersInput struct{}

// ListMembersOutput contains the result of listing member records
type ListMembersOutput struct {
	Members []*models.MemberRecord
}

// DeleteMemberInput contains parameters for removing a member record
type DeleteMemberInput struct {
	MemberID string
}

// DeleteAllMembersInput contains parameters for removing every member record
type DeleteAllMembersInput struct{}
