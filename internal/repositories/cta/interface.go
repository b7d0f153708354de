package cta

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hysteriagg/muster/internal/repositories/cta Repository

import (
	"context"

	"github.com/hysteriagg/muster/internal/models"
)

// Repository defines the interface for CTA window persistence
type Repository interface {
	// SaveCTA persists an active CTA window
	SaveCTA(ctx context.Context, input *SaveCTAInput) error

	// GetCTAByChannel retrieves the active CTA for a channel
	GetCTAByChannel(ctx context.Context, input *GetCTAByChannelInput) (*models.CTA, error)

	// DeleteCTA removes the active CTA for a channel
	DeleteCTA(ctx context.Context, input *DeleteCTAInput) error

	// GetActiveCTAs retrieves all active CTA windows
	GetActiveCTAs(ctx context.Context, input *GetActiveCTAsInput) (*GetActiveCTAsOutput, error)

	// AppendHistory appends a closed-window snapshot to the history log
	AppendHistory(ctx context.Context, input *AppendHistoryInput) error

	// GetHistory retrieves the full closed-window history log
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
