package cta

// CTAError is a custom error type for CTA-related errors
type CTAError string

// Error implements the error interface
func (e CTAError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownEvent       CTAError = "unknown event type"
	ErrMissingDescription CTAError = "OTHERS events require a description"
	ErrInvalidPoints      CTAError = "OTHERS events require a positive point value"
	ErrCTAAlreadyOpen     CTAError = "a CTA is already open in this channel"
	ErrCTANotActive       CTAError = "no active CTA in this channel"
	ErrNotRegistered      CTAError = "member has not registered an IGN and class"
	ErrInvalidCode        CTAError = "incorrect attendance code"
	ErrAlreadyJoined      CTAError = "member already joined this CTA"
	ErrNoAttendanceFound  CTAError = "no attendance records match"
	ErrNilConfig          CTAError = "config cannot be nil"
	ErrNilCTARepo         CTAError = "cta repository cannot be nil"
	ErrNilMemberRepo      CTAError = "member repository cannot be nil"
	ErrNilEventRepo       CTAError = "event repository cannot be nil"
	ErrNilAuditRepo       CTAError = "audit repository cannot be nil"
	ErrNilCodeGenerator   CTAError = "code generator cannot be nil"
	ErrNilClock           CTAError = "clock cannot be nil"
	ErrNilUUIDGenerator   CTAError = "UUID generator cannot be nil"
	ErrNilCivilTime       CTAError = "civil time formatter cannot be nil"
)
