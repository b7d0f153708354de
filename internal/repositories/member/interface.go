package member

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hysteriagg/muster/internal/repositories/member Repository

import (
	"context"

	"github.com/hysteriagg/muster/internal/models"
)

// Repository defines the interface for member record persistence
type Repository interface {
	// SaveMember persists a member record
	SaveMember(ctx context.Context, input *SaveMemberInput) error

	// GetMember retrieves a member record by ID
	GetMember(ctx context.Context, input *GetMemberInput) (*models.MemberRecord, error)

	// ListMembers retrieves all member records
	ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error)

	// DeleteMember removes a single member record
	DeleteMember(ctx context.Context, input *DeleteMemberInput) error

	// DeleteAllMembers removes every member record
	DeleteAllMembers(ctx context.Context, input *DeleteAllMembersInput) error
}
