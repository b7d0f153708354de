package cta

import "github.com/hysteriagg/muster/internal/models"

// SaveCTAInput contains parameters for saving an active CTA window
type SaveCTAInput struct {
	CTA *models.CTA
}

// GetCTAByChannelInput contains parameters for retrieving a channel's CTA
type GetCTAByChannelInput struct {
	ChannelID string
}

// DeleteCTAInput contains parameters for removing a channel's CTA
type DeleteCTAInput struct {
	ChannelID string
}

// GetActiveCTAsInput contains parameters for retrieving all active windows
type GetActiveCTAsInput struct{}

// GetActiveCTAsOutput contains all active CTA windows
type GetActiveCTAsOutput struct {
	CTAs []*models.CTA
}

// AppendHistoryInput contains parameters for appending a history entry
type AppendHistoryInput struct {
	Entry *models.CTAHistoryEntry
}

// GetHistoryInput contains parameters for retrieving the history log
type GetHistoryInput struct{}

// GetHistoryOutput contains the closed-window history log in append order
type GetHistoryOutput struct {
	Entries []*models.CTAHistoryEntry
}
