package cta

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	"github.com/hysteriagg/muster/internal/common/clock"
	"github.com/hysteriagg/muster/internal/common/codegen"
	"github.com/hysteriagg/muster/internal/common/uuid"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	ctaRepo "github.com/hysteriagg/muster/internal/repositories/cta"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
)

const (
	// DefaultDuration is the window length used when the opener passes none
	DefaultDuration = 3 * time.Minute

	// DefaultCodeLength is the attendance code length used when unconfigured
	DefaultCodeLength = 4

	// systemActor is recorded on audit entries for timer-driven closes
	systemActor = "system"
)

// service implements the Service interface
type service struct {
	defaultDuration time.Duration
	codeLength      int

	ctaRepo    ctaRepo.Repository
	memberRepo memberRepo.Repository
	eventRepo  eventsRepo.Repository
	auditRepo  auditRepo.Repository

	codeGenerator codegen.Generator
	clock         clock.Clock
	uuidGenerator uuid.UUID
	civilTime     *civiltime.Formatter

	notifier Notifier

	// mu is the single critical section covering window mutations and the
	// ledger writes a join performs, so attendee lists and point totals
	// never diverge
	mu sync.Mutex

	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

// New creates a new CTA service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.CTARepo == nil {
		return nil, ErrNilCTARepo
	}
	if cfg.MemberRepo == nil {
		return nil, ErrNilMemberRepo
	}
	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}
	if cfg.AuditRepo == nil {
		return nil, ErrNilAuditRepo
	}
	if cfg.CodeGenerator == nil {
		return nil, ErrNilCodeGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.CivilTime == nil {
		return nil, ErrNilCivilTime
	}

	defaultDuration := cfg.DefaultDuration
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}

	codeLength := cfg.CodeLength
	if codeLength <= 0 {
		codeLength = DefaultCodeLength
	}

	return &service{
		defaultDuration: defaultDuration,
		codeLength:      codeLength,
		ctaRepo:         cfg.CTARepo,
		memberRepo:      cfg.MemberRepo,
		eventRepo:       cfg.EventRepo,
		auditRepo:       cfg.AuditRepo,
		codeGenerator:   cfg.CodeGenerator,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		civilTime:       cfg.CivilTime,
		timers:          make(map[string]*time.Timer),
	}, nil
}

// SetNotifier wires the front-end notifier. Called once at startup, after
// the handler exists; the handler needs the service first.
func (s *service) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// Open starts a new attendance window in a channel
func (s *service) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	output, notice, err := s.openLocked(ctx, input)
	if notice != nil {
		s.notify(notice)
	}
	return output, err
}

func (s *service) openLocked(ctx context.Context, input *OpenInput) (*OpenOutput, *ClosedNotice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	eventType := models.NormalizeEventName(input.EventName)
	var points int

	if eventType == models.EventTypeOthers {
		// Ad-hoc events carry their own name and point value and are not
		// persisted into the event table
		if strings.TrimSpace(input.Description) == "" {
			return nil, nil, ErrMissingDescription
		}
		if input.Points <= 0 {
			return nil, nil, ErrInvalidPoints
		}
		eventType = models.NormalizeEventName(input.Description)
		points = input.Points
	} else {
		pointsOutput, err := s.eventRepo.GetPoints(ctx, &eventsRepo.GetPointsInput{
			EventType: eventType,
		})
		if err != nil {
			if errors.Is(err, eventsRepo.ErrEventNotFound) {
				return nil, nil, ErrUnknownEvent
			}
			return nil, nil, err
		}
		points = pointsOutput.Points
	}

	now := s.clock.Now()

	var notice *ClosedNotice
	replacedExpired := false

	existing, err := s.ctaRepo.GetCTAByChannel(ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil && !errors.Is(err, ctaRepo.ErrCTANotFound) {
		return nil, nil, err
	}
	if existing != nil {
		if now.Before(existing.ExpiresAt) {
			return nil, nil, ErrCTAAlreadyOpen
		}

		// The previous window expired without its timer firing yet, close
		// it out before opening the replacement
		_, expiredNotice, closeErr := s.closeWindow(ctx, existing, systemActor, "")
		if closeErr != nil {
			return nil, nil, closeErr
		}
		notice = expiredNotice
		replacedExpired = true
	}

	duration := input.Duration
	if duration <= 0 {
		duration = s.defaultDuration
	}

	window := &models.CTA{
		Code:      s.codeGenerator.Generate(s.codeLength),
		EventType: eventType,
		Points:    points,
		ExpiresAt: now.Add(duration),
		CreatedBy: input.CreatorID,
		CreatedAt: now,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		Attendees: []*models.Attendee{},
	}

	if err := s.ctaRepo.SaveCTA(ctx, &ctaRepo.SaveCTAInput{CTA: window}); err != nil {
		return nil, notice, err
	}

	s.scheduleTimer(input.ChannelID, window.ExpiresAt)

	return &OpenOutput{
		CTA:             window,
		ReplacedExpired: replacedExpired,
	}, notice, nil
}

// SetMessage records the announcement message for a channel's window
func (s *service) SetMessage(ctx context.Context, input *SetMessageInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.ctaRepo.GetCTAByChannel(ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, ctaRepo.ErrCTANotFound) {
			return ErrCTANotActive
		}
		return err
	}

	window.MessageID = input.MessageID

	return s.ctaRepo.SaveCTA(ctx, &ctaRepo.SaveCTAInput{CTA: window})
}

// Join records a member's attendance and grants the window's points
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.ctaRepo.GetCTAByChannel(ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, ctaRepo.ErrCTANotFound) {
			return nil, ErrCTANotActive
		}
		return nil, err
	}

	now := s.clock.Now()
	if !now.Before(window.ExpiresAt) {
		return nil, ErrCTANotActive
	}

	record, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		MemberID: input.MemberID,
	})
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return nil, ErrNotRegistered
		}
		return nil, err
	}
	if !record.Profile.Registered() {
		return nil, ErrNotRegistered
	}

	if strings.ToUpper(strings.TrimSpace(input.Code)) != window.Code {
		return nil, ErrInvalidCode
	}

	if window.HasAttendee(input.MemberID) {
		return nil, ErrAlreadyJoined
	}

	window.Attendees = append(window.Attendees, &models.Attendee{
		MemberID: input.MemberID,
		JoinedAt: now,
	})

	if err := s.ctaRepo.SaveCTA(ctx, &ctaRepo.SaveCTAInput{CTA: window}); err != nil {
		return nil, err
	}

	record.TotalPoints += window.Points
	record.History = append(record.History, &models.PointGrant{
		ID:        s.uuidGenerator.NewUUID(),
		EventType: window.EventType,
		Points:    window.Points,
		Date:      s.civilTime.Date(now),
		Timestamp: s.civilTime.Timestamp(now),
		Code:      window.Code,
		ChannelID: window.ChannelID,
		GuildID:   window.GuildID,
	})

	// Display fields track the live Discord identity, IGN and class only
	// change through register
	record.Profile.Name = input.MemberName
	record.Profile.Tag = input.MemberTag

	if err := s.memberRepo.SaveMember(ctx, &memberRepo.SaveMemberInput{
		Member: record,
	}); err != nil {
		return nil, err
	}

	return &JoinOutput{
		EventType:   window.EventType,
		Points:      window.Points,
		TotalPoints: record.TotalPoints,
	}, nil
}

// Close ends a channel's window and snapshots it to history
func (s *service) Close(ctx context.Context, input *CloseInput) (*CloseOutput, error) {
	output, notice, err := s.closeLocked(ctx, input)
	if notice != nil {
		s.notify(notice)
	}
	return output, err
}

func (s *service) closeLocked(ctx context.Context, input *CloseInput) (*CloseOutput, *ClosedNotice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.ctaRepo.GetCTAByChannel(ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		if errors.Is(err, ctaRepo.ErrCTANotFound) {
			// Closing an already-closed channel is a no-op
			return &CloseOutput{Closed: false}, nil, nil
		}
		return nil, nil, err
	}

	entry, notice, err := s.closeWindow(ctx, window, input.ClosedBy, input.ClosedByName)
	if err != nil {
		return nil, nil, err
	}

	return &CloseOutput{
		Closed: true,
		Entry:  entry,
	}, notice, nil
}

// closeWindow snapshots a window to history, audits it, and removes it.
// Callers must hold s.mu.
func (s *service) closeWindow(ctx context.Context, window *models.CTA, closedBy, closedByName string) (*models.CTAHistoryEntry, *ClosedNotice, error) {
	s.cancelTimer(window.ChannelID)

	now := s.clock.Now()

	attendees := make([]*models.HistoryAttendee, 0, len(window.Attendees))
	for _, attendee := range window.Attendees {
		resolved := &models.HistoryAttendee{
			MemberID: attendee.MemberID,
			JoinedAt: attendee.JoinedAt,
		}

		record, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
			MemberID: attendee.MemberID,
		})
		if err == nil {
			resolved.Name = record.Profile.Name
			resolved.IGN = record.Profile.IGN
			resolved.Class = record.Profile.Class
		}

		attendees = append(attendees, resolved)
	}

	entry := &models.CTAHistoryEntry{
		ID:        s.uuidGenerator.NewUUID(),
		EventType: window.EventType,
		Points:    window.Points,
		Code:      window.Code,
		GuildID:   window.GuildID,
		ChannelID: window.ChannelID,
		CreatedAt: window.CreatedAt,
		ClosedAt:  now,
		Date:      s.civilTime.Date(window.CreatedAt),
		Timestamp: s.civilTime.Timestamp(window.CreatedAt),
		Attendees: attendees,
	}

	if err := s.ctaRepo.AppendHistory(ctx, &ctaRepo.AppendHistoryInput{
		Entry: entry,
	}); err != nil {
		return nil, nil, err
	}

	actor := closedBy
	if actor == "" {
		actor = systemActor
	}

	auditErr := s.auditRepo.AppendEntry(ctx, &auditRepo.AppendEntryInput{
		Entry: &models.AuditLogEntry{
			ID:              s.uuidGenerator.NewUUID(),
			Action:          models.AuditActionCTAClosed,
			PerformedBy:     actor,
			PerformedByName: closedByName,
			Date:            s.civilTime.Date(now),
			Timestamp:       s.civilTime.Timestamp(now),
			Details: fmt.Sprintf("%s closed with %d attendees (code %s)",
				window.EventType, len(window.Attendees), window.Code),
		},
	})
	if auditErr != nil {
		log.Printf("failed to audit close of CTA in channel %s: %v", window.ChannelID, auditErr)
	}

	if err := s.ctaRepo.DeleteCTA(ctx, &ctaRepo.DeleteCTAInput{
		ChannelID: window.ChannelID,
	}); err != nil {
		return nil, nil, err
	}

	return entry, &ClosedNotice{
		GuildID:   window.GuildID,
		ChannelID: window.ChannelID,
		MessageID: window.MessageID,
		EventType: window.EventType,
	}, nil
}

// Attendance queries closed-window history by event and civil date
func (s *service) Attendance(ctx context.Context, input *AttendanceInput) (*AttendanceOutput, error) {
	eventType := models.NormalizeEventName(input.EventName)

	history, err := s.ctaRepo.GetHistory(ctx, &ctaRepo.GetHistoryInput{})
	if err != nil {
		return nil, err
	}

	var matches []*models.CTAHistoryEntry
	for _, entry := range history.Entries {
		if entry.EventType == eventType && entry.Date == input.Date {
			matches = append(matches, entry)
		}
	}

	if len(matches) == 0 {
		return nil, ErrNoAttendanceFound
	}

	if input.Timestamp != "" {
		for _, entry := range matches {
			if entry.Timestamp == input.Timestamp {
				return &AttendanceOutput{Entry: entry}, nil
			}
		}
		return nil, ErrNoAttendanceFound
	}

	if len(matches) == 1 {
		return &AttendanceOutput{Entry: matches[0]}, nil
	}

	// Several windows on the same day, hand back the timestamps so the
	// caller can ask again with one of them
	timestamps := make([]string, 0, len(matches))
	for _, entry := range matches {
		timestamps = append(timestamps, entry.Timestamp)
	}

	return &AttendanceOutput{Timestamps: timestamps}, nil
}

func (s *service) notify(notice *ClosedNotice) {
	s.mu.Lock()
	notifier := s.notifier
	s.mu.Unlock()

	if notifier == nil {
		return
	}

	if err := notifier.CTAClosed(context.Background(), notice); err != nil {
		log.Printf("failed to notify close of CTA in channel %s: %v", notice.ChannelID, err)
	}
}
