package models

// AuditAction tags the kind of administrative action recorded
type AuditAction string

const (
	// AuditActionSetEvent indicates an event point value was created or changed
	AuditActionSetEvent AuditAction = "set_event"

	// AuditActionAddPoints indicates a manual point grant
	AuditActionAddPoints AuditAction = "addpoints"

	// AuditActionAddPointsBatch indicates a batched manual point grant
	AuditActionAddPointsBatch AuditAction = "addpoints_batch"

	// AuditActionResetAll indicates all member records were reset
	AuditActionResetAll AuditAction = "reset_all"

	// AuditActionResetUser indicates a single member record was reset
	AuditActionResetUser AuditAction = "reset_user"

	// AuditActionExportPoints indicates a CSV export was produced
	AuditActionExportPoints AuditAction = "export_points"

	// AuditActionCTAClosed indicates a CTA window was closed
	AuditActionCTAClosed AuditAction = "cta_closed"
)

// AuditLogEntry is one append-only record of a privileged action
type AuditLogEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// Action tags what was done
	Action AuditAction

	// PerformedBy is the actor's Discord user ID
	PerformedBy string

	// PerformedByName is the actor's tag at the time of the action
	PerformedByName string

	// Date is the civil date label of the action
	Date string

	// Timestamp is the civil timestamp label of the action
	Timestamp string

	// Details is free-text detail about the action
	Details string
}
