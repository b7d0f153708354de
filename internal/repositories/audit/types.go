package audit

import "github.com/hysteriagg/muster/internal/models"

// AppendEntryInput contains parameters for appending an audit entry
type AppendEntryInput struct {
	Entry *models.AuditLogEntry
}

// ListEntriesInput contains parameters for listing audit entries
type ListEntriesInput struct{}

// ListEntriesOutput contains audit entries in append order
type ListEntriesOutput struct {
	Entries []*models.AuditLogEntry
}
