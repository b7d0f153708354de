package cta

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/hysteriagg/muster/internal/services/cta Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/hysteriagg/muster/internal/services/cta Notifier

import "context"

// Service defines the interface for CTA window operations
type Service interface {
	// Open starts a new attendance window in a channel
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)

	// SetMessage records the announcement message for a channel's window
	SetMessage(ctx context.Context, input *SetMessageInput) error

	// Join records a member's attendance and grants the window's points
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Close ends a channel's window and snapshots it to history
	Close(ctx context.Context, input *CloseInput) (*CloseOutput, error)

	// Reconcile re-arms timers for persisted windows after a restart
	Reconcile(ctx context.Context) error

	// Attendance queries closed-window history by event and civil date
	Attendance(ctx context.Context, input *AttendanceInput) (*AttendanceOutput, error)
}

// Notifier receives best-effort notifications when a window closes.
// Failures are logged, never propagated.
type Notifier interface {
	// CTAClosed tells the front-end to retire the announcement message
	CTAClosed(ctx context.Context, notice *ClosedNotice) error
}
