package ledger

// LedgerError is a custom error type for ledger-related errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrMemberNotFound   LedgerError = "member not found"
	ErrIGNNotFound      LedgerError = "no member with that IGN"
	ErrIGNAmbiguous     LedgerError = "more than one member with that IGN"
	ErrInvalidPoints    LedgerError = "point value must be positive"
	ErrInvalidScope     LedgerError = "reset scope must be all or user"
	ErrMissingMemberID  LedgerError = "user scope requires a member id"
	ErrEmptyBatch       LedgerError = "batch contains no usable lines"
	ErrMissingIGN       LedgerError = "IGN cannot be empty"
	ErrMissingClass     LedgerError = "class cannot be empty"
	ErrNilConfig        LedgerError = "config cannot be nil"
	ErrNilMemberRepo    LedgerError = "member repository cannot be nil"
	ErrNilEventRepo     LedgerError = "event repository cannot be nil"
	ErrNilAuditRepo     LedgerError = "audit repository cannot be nil"
	ErrNilClock         LedgerError = "clock cannot be nil"
	ErrNilUUIDGenerator LedgerError = "UUID generator cannot be nil"
	ErrNilCivilTime     LedgerError = "civil time formatter cannot be nil"
)
