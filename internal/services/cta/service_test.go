package cta_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	clockMocks "github.com/hysteriagg/muster/internal/common/clock/mocks"
	codegenMocks "github.com/hysteriagg/muster/internal/common/codegen/mocks"
	uuidMocks "github.com/hysteriagg/muster/internal/common/uuid/mocks"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	auditMocks "github.com/hysteriagg/muster/internal/repositories/audit/mocks"
	ctaRepo "github.com/hysteriagg/muster/internal/repositories/cta"
	ctaMocks "github.com/hysteriagg/muster/internal/repositories/cta/mocks"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	eventsMocks "github.com/hysteriagg/muster/internal/repositories/events/mocks"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
	memberMocks "github.com/hysteriagg/muster/internal/repositories/member/mocks"
	"github.com/hysteriagg/muster/internal/services/cta"
	serviceMocks "github.com/hysteriagg/muster/internal/services/cta/mocks"
)

type CTAServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockCTARepo    *ctaMocks.MockRepository
	mockMemberRepo *memberMocks.MockRepository
	mockEventRepo  *eventsMocks.MockRepository
	mockAuditRepo  *auditMocks.MockRepository
	mockCodeGen    *codegenMocks.MockGenerator
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	ctaService interface {
		cta.Service
		SetNotifier(n cta.Notifier)
	}
	ctx            context.Context

	// Test data
	testTime      time.Time
	testGuildID   string
	testChannelID string
	testCreatorID string
	testMemberID  string

	// Reusable test fixtures
	activeWindow *models.CTA
	memberRecord *models.MemberRecord
	openInput    *cta.OpenInput
	joinInput    *cta.JoinInput
}

func (s *CTAServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCTARepo = ctaMocks.NewMockRepository(s.mockCtrl)
	s.mockMemberRepo = memberMocks.NewMockRepository(s.mockCtrl)
	s.mockEventRepo = eventsMocks.NewMockRepository(s.mockCtrl)
	s.mockAuditRepo = auditMocks.NewMockRepository(s.mockCtrl)
	s.mockCodeGen = codegenMocks.NewMockGenerator(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 14, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testMemberID = "test-member-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	formatter, err := civiltime.New("UTC")
	s.Require().NoError(err)

	svc, err := cta.New(&cta.Config{
		CTARepo:       s.mockCTARepo,
		MemberRepo:    s.mockMemberRepo,
		EventRepo:     s.mockEventRepo,
		AuditRepo:     s.mockAuditRepo,
		CodeGenerator: s.mockCodeGen,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		CivilTime:     formatter,
	})
	s.Require().NoError(err)
	s.ctaService = svc

	s.activeWindow = &models.CTA{
		Code:      "ABC1",
		EventType: "CW1",
		Points:    2,
		ExpiresAt: s.testTime.Add(3 * time.Minute),
		CreatedBy: s.testCreatorID,
		CreatedAt: s.testTime.Add(-time.Minute),
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		MessageID: "test-message-id",
		Attendees: []*models.Attendee{},
	}

	s.memberRecord = &models.MemberRecord{
		MemberID:    s.testMemberID,
		TotalPoints: 5,
		History: []*models.PointGrant{
			{ID: "grant-1", EventType: "CW2", Points: 5},
		},
		Profile: models.Profile{
			Name:  "Old Name",
			Tag:   "old#0001",
			IGN:   "Ara",
			Class: "MAGE",
		},
	}

	s.openInput = &cta.OpenInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		CreatorName: "Creator#0001",
		EventName:   "cw 1",
	}

	s.joinInput = &cta.JoinInput{
		ChannelID:  s.testChannelID,
		MemberID:   s.testMemberID,
		MemberName: "New Name",
		MemberTag:  "new#0001",
		Code:       "abc1",
	}
}

func (s *CTAServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCTAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CTAServiceTestSuite))
}

func (s *CTAServiceTestSuite) TestOpenSuccess() {
	s.mockEventRepo.EXPECT().GetPoints(s.ctx, &eventsRepo.GetPointsInput{
		EventType: "CW1",
	}).Return(&eventsRepo.GetPointsOutput{Points: 2}, nil)

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: s.testChannelID,
	}).Return(nil, ctaRepo.ErrCTANotFound)

	s.mockCodeGen.EXPECT().Generate(cta.DefaultCodeLength).Return("XYZ9")

	var saved *models.CTA
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *ctaRepo.SaveCTAInput) error {
			saved = input.CTA
			return nil
		})

	output, err := s.ctaService.Open(s.ctx, s.openInput)
	s.Require().NoError(err)
	s.Require().NotNil(output.CTA)
	s.False(output.ReplacedExpired)

	s.Equal("XYZ9", saved.Code)
	s.Equal("CW1", saved.EventType)
	s.Equal(2, saved.Points)
	s.Equal(s.testTime.Add(cta.DefaultDuration), saved.ExpiresAt)
	s.Equal(s.testCreatorID, saved.CreatedBy)
	s.Empty(saved.Attendees)
}

func (s *CTAServiceTestSuite) TestOpenUnknownEvent() {
	s.mockEventRepo.EXPECT().GetPoints(s.ctx, gomock.Any()).
		Return(nil, eventsRepo.ErrEventNotFound)

	_, err := s.ctaService.Open(s.ctx, s.openInput)
	s.Equal(cta.ErrUnknownEvent, err)
}

func (s *CTAServiceTestSuite) TestOpenAlreadyOpen() {
	s.mockEventRepo.EXPECT().GetPoints(s.ctx, gomock.Any()).
		Return(&eventsRepo.GetPointsOutput{Points: 2}, nil)

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)

	_, err := s.ctaService.Open(s.ctx, s.openInput)
	s.Equal(cta.ErrCTAAlreadyOpen, err)
}

func (s *CTAServiceTestSuite) TestOpenReplacesExpiredWindow() {
	expired := s.activeWindow
	expired.ExpiresAt = s.testTime.Add(-time.Minute)

	s.mockEventRepo.EXPECT().GetPoints(s.ctx, gomock.Any()).
		Return(&eventsRepo.GetPointsOutput{Points: 2}, nil)

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(expired, nil)

	// The expired window is snapshotted and removed first
	s.mockCTARepo.EXPECT().AppendHistory(s.ctx, gomock.Any()).Return(nil)
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)
	s.mockCTARepo.EXPECT().DeleteCTA(s.ctx, &ctaRepo.DeleteCTAInput{
		ChannelID: s.testChannelID,
	}).Return(nil)

	s.mockCodeGen.EXPECT().Generate(cta.DefaultCodeLength).Return("XYZ9")
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).Return(nil)

	output, err := s.ctaService.Open(s.ctx, s.openInput)
	s.Require().NoError(err)
	s.True(output.ReplacedExpired)
}

func (s *CTAServiceTestSuite) TestOpenOthersRequiresDescription() {
	input := &cta.OpenInput{
		ChannelID: s.testChannelID,
		EventName: "others",
		Points:    3,
	}

	_, err := s.ctaService.Open(s.ctx, input)
	s.Equal(cta.ErrMissingDescription, err)
}

func (s *CTAServiceTestSuite) TestOpenOthersRequiresPositivePoints() {
	input := &cta.OpenInput{
		ChannelID:   s.testChannelID,
		EventName:   "OTHERS",
		Description: "guild siege",
	}

	_, err := s.ctaService.Open(s.ctx, input)
	s.Equal(cta.ErrInvalidPoints, err)
}

func (s *CTAServiceTestSuite) TestOpenOthersSuccess() {
	input := &cta.OpenInput{
		GuildID:     s.testGuildID,
		ChannelID:   s.testChannelID,
		CreatorID:   s.testCreatorID,
		EventName:   "OTHERS",
		Description: "guild siege",
		Points:      3,
	}

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(nil, ctaRepo.ErrCTANotFound)
	s.mockCodeGen.EXPECT().Generate(cta.DefaultCodeLength).Return("QWE5")

	var saved *models.CTA
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ctaRepo.SaveCTAInput) error {
			saved = in.CTA
			return nil
		})

	output, err := s.ctaService.Open(s.ctx, input)
	s.Require().NoError(err)
	s.NotNil(output.CTA)

	// The description becomes the normalized event type, nothing is
	// written into the event table
	s.Equal("GUILDSIEGE", saved.EventType)
	s.Equal(3, saved.Points)
}

func (s *CTAServiceTestSuite) TestSetMessage() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)

	var saved *models.CTA
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ctaRepo.SaveCTAInput) error {
			saved = in.CTA
			return nil
		})

	err := s.ctaService.SetMessage(s.ctx, &cta.SetMessageInput{
		ChannelID: s.testChannelID,
		MessageID: "announce-123",
	})
	s.Require().NoError(err)
	s.Equal("announce-123", saved.MessageID)
}

func (s *CTAServiceTestSuite) TestJoinSuccess() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, &memberRepo.GetMemberInput{
		MemberID: s.testMemberID,
	}).Return(s.memberRecord, nil)

	var savedWindow *models.CTA
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ctaRepo.SaveCTAInput) error {
			savedWindow = in.CTA
			return nil
		})

	var savedMember *models.MemberRecord
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *memberRepo.SaveMemberInput) error {
			savedMember = in.Member
			return nil
		})

	output, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Require().NoError(err)

	s.Equal("CW1", output.EventType)
	s.Equal(2, output.Points)
	s.Equal(7, output.TotalPoints)

	s.Require().Len(savedWindow.Attendees, 1)
	s.Equal(s.testMemberID, savedWindow.Attendees[0].MemberID)
	s.Equal(s.testTime, savedWindow.Attendees[0].JoinedAt)

	s.Equal(7, savedMember.TotalPoints)
	s.Require().Len(savedMember.History, 2)
	grant := savedMember.History[1]
	s.Equal("CW1", grant.EventType)
	s.Equal(2, grant.Points)
	s.Equal("ABC1", grant.Code)
	s.Equal(s.testChannelID, grant.ChannelID)

	// Display fields refresh on join, registration fields do not
	s.Equal("New Name", savedMember.Profile.Name)
	s.Equal("new#0001", savedMember.Profile.Tag)
	s.Equal("Ara", savedMember.Profile.IGN)
	s.Equal("MAGE", savedMember.Profile.Class)
}

func (s *CTAServiceTestSuite) TestJoinNoWindow() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(nil, ctaRepo.ErrCTANotFound)

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrCTANotActive, err)
}

func (s *CTAServiceTestSuite) TestJoinExpiryBoundaryInclusive() {
	// A window expiring exactly now no longer accepts joins
	s.activeWindow.ExpiresAt = s.testTime

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrCTANotActive, err)
}

func (s *CTAServiceTestSuite) TestJoinNotRegistered() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(nil, memberRepo.ErrMemberNotFound)

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrNotRegistered, err)
}

func (s *CTAServiceTestSuite) TestJoinIncompleteProfile() {
	s.memberRecord.Profile.Class = ""

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(s.memberRecord, nil)

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrNotRegistered, err)
}

func (s *CTAServiceTestSuite) TestJoinInvalidCode() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(s.memberRecord, nil)

	s.joinInput.Code = "WRONG"

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrInvalidCode, err)
}

func (s *CTAServiceTestSuite) TestJoinCodeTrimmedAndUppercased() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(s.memberRecord, nil)
	s.mockCTARepo.EXPECT().SaveCTA(s.ctx, gomock.Any()).Return(nil)
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).Return(nil)

	s.joinInput.Code = "  abc1  "

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.NoError(err)
}

func (s *CTAServiceTestSuite) TestJoinAlreadyJoined() {
	s.activeWindow.Attendees = []*models.Attendee{
		{MemberID: s.testMemberID, JoinedAt: s.testTime.Add(-30 * time.Second)},
	}

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(s.memberRecord, nil)

	_, err := s.ctaService.Join(s.ctx, s.joinInput)
	s.Equal(cta.ErrAlreadyJoined, err)
}

func (s *CTAServiceTestSuite) TestCloseIdempotent() {
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(nil, ctaRepo.ErrCTANotFound)

	output, err := s.ctaService.Close(s.ctx, &cta.CloseInput{
		ChannelID: s.testChannelID,
	})
	s.Require().NoError(err)
	s.False(output.Closed)
	s.Nil(output.Entry)
}

func (s *CTAServiceTestSuite) TestCloseSnapshotsAndNotifies() {
	s.activeWindow.Attendees = []*models.Attendee{
		{MemberID: s.testMemberID, JoinedAt: s.testTime.Add(-30 * time.Second)},
	}

	mockNotifier := serviceMocks.NewMockNotifier(s.mockCtrl)
	s.ctaService.SetNotifier(mockNotifier)

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, &memberRepo.GetMemberInput{
		MemberID: s.testMemberID,
	}).Return(s.memberRecord, nil)

	var snapshot *models.CTAHistoryEntry
	s.mockCTARepo.EXPECT().AppendHistory(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ctaRepo.AppendHistoryInput) error {
			snapshot = in.Entry
			return nil
		})

	var auditEntry *models.AuditLogEntry
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *auditRepo.AppendEntryInput) error {
			auditEntry = in.Entry
			return nil
		})

	s.mockCTARepo.EXPECT().DeleteCTA(s.ctx, gomock.Any()).Return(nil)

	mockNotifier.EXPECT().CTAClosed(gomock.Any(), &cta.ClosedNotice{
		GuildID:   s.testGuildID,
		ChannelID: s.testChannelID,
		MessageID: "test-message-id",
		EventType: "CW1",
	}).Return(nil)

	output, err := s.ctaService.Close(s.ctx, &cta.CloseInput{
		ChannelID:    s.testChannelID,
		ClosedBy:     s.testCreatorID,
		ClosedByName: "Creator#0001",
	})
	s.Require().NoError(err)
	s.True(output.Closed)

	s.Equal("CW1", snapshot.EventType)
	s.Equal(2, snapshot.Points)
	s.Equal(s.testTime, snapshot.ClosedAt)
	s.Require().Len(snapshot.Attendees, 1)
	s.Equal("Old Name", snapshot.Attendees[0].Name)
	s.Equal("Ara", snapshot.Attendees[0].IGN)
	s.Equal("MAGE", snapshot.Attendees[0].Class)

	s.Equal(models.AuditActionCTAClosed, auditEntry.Action)
	s.Equal(s.testCreatorID, auditEntry.PerformedBy)
}

func (s *CTAServiceTestSuite) TestSnapshotPointsImmuneToLaterSetEvent() {
	// The window granted 2 points at open, the history snapshot keeps
	// that value regardless of what the event table says now
	s.activeWindow.Points = 2

	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, gomock.Any()).
		Return(s.activeWindow, nil)

	var snapshot *models.CTAHistoryEntry
	s.mockCTARepo.EXPECT().AppendHistory(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *ctaRepo.AppendHistoryInput) error {
			snapshot = in.Entry
			return nil
		})
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)
	s.mockCTARepo.EXPECT().DeleteCTA(s.ctx, gomock.Any()).Return(nil)

	_, err := s.ctaService.Close(s.ctx, &cta.CloseInput{ChannelID: s.testChannelID})
	s.Require().NoError(err)
	s.Equal(2, snapshot.Points)
}

func (s *CTAServiceTestSuite) TestReconcileClosesExpiredAndRearmsLive() {
	expired := &models.CTA{
		Code:      "OLD1",
		EventType: "CW2",
		Points:    3,
		ExpiresAt: s.testTime.Add(-time.Minute),
		CreatedAt: s.testTime.Add(-10 * time.Minute),
		ChannelID: "channel-expired",
		GuildID:   s.testGuildID,
	}
	live := &models.CTA{
		Code:      "NEW1",
		EventType: "CW1",
		Points:    2,
		ExpiresAt: s.testTime.Add(2 * time.Minute),
		CreatedAt: s.testTime.Add(-time.Minute),
		ChannelID: "channel-live",
		GuildID:   s.testGuildID,
	}

	s.mockCTARepo.EXPECT().GetActiveCTAs(s.ctx, gomock.Any()).
		Return(&ctaRepo.GetActiveCTAsOutput{CTAs: []*models.CTA{expired, live}}, nil)

	// Only the expired window is closed out
	s.mockCTARepo.EXPECT().GetCTAByChannel(s.ctx, &ctaRepo.GetCTAByChannelInput{
		ChannelID: "channel-expired",
	}).Return(expired, nil)
	s.mockCTARepo.EXPECT().AppendHistory(s.ctx, gomock.Any()).Return(nil)
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)
	s.mockCTARepo.EXPECT().DeleteCTA(s.ctx, &ctaRepo.DeleteCTAInput{
		ChannelID: "channel-expired",
	}).Return(nil)

	err := s.ctaService.Reconcile(s.ctx)
	s.Require().NoError(err)
}

func (s *CTAServiceTestSuite) TestAttendanceNoMatches() {
	s.mockCTARepo.EXPECT().GetHistory(s.ctx, gomock.Any()).
		Return(&ctaRepo.GetHistoryOutput{}, nil)

	_, err := s.ctaService.Attendance(s.ctx, &cta.AttendanceInput{
		EventName: "CW1",
		Date:      "04/05/2025",
	})
	s.Equal(cta.ErrNoAttendanceFound, err)
}

func (s *CTAServiceTestSuite) TestAttendanceSingleMatch() {
	entry := &models.CTAHistoryEntry{
		ID:        "entry-1",
		EventType: "CW1",
		Date:      "04/05/2025",
		Timestamp: "04/05/2025, 02:00:00 PM",
	}

	s.mockCTARepo.EXPECT().GetHistory(s.ctx, gomock.Any()).
		Return(&ctaRepo.GetHistoryOutput{Entries: []*models.CTAHistoryEntry{entry}}, nil)

	output, err := s.ctaService.Attendance(s.ctx, &cta.AttendanceInput{
		EventName: "cw 1",
		Date:      "04/05/2025",
	})
	s.Require().NoError(err)
	s.Equal(entry, output.Entry)
	s.Empty(output.Timestamps)
}

func (s *CTAServiceTestSuite) TestAttendanceTwoStepDisambiguation() {
	entries := []*models.CTAHistoryEntry{
		{ID: "entry-1", EventType: "CW1", Date: "04/05/2025", Timestamp: "04/05/2025, 10:00:00 AM"},
		{ID: "entry-2", EventType: "CW1", Date: "04/05/2025", Timestamp: "04/05/2025, 02:00:00 PM"},
		{ID: "entry-3", EventType: "CW2", Date: "04/05/2025", Timestamp: "04/05/2025, 03:00:00 PM"},
	}

	s.mockCTARepo.EXPECT().GetHistory(s.ctx, gomock.Any()).
		Return(&ctaRepo.GetHistoryOutput{Entries: entries}, nil).Times(2)

	// First call, no timestamp, two candidates come back
	output, err := s.ctaService.Attendance(s.ctx, &cta.AttendanceInput{
		EventName: "CW1",
		Date:      "04/05/2025",
	})
	s.Require().NoError(err)
	s.Nil(output.Entry)
	s.Equal([]string{"04/05/2025, 10:00:00 AM", "04/05/2025, 02:00:00 PM"}, output.Timestamps)

	// Second call with the chosen timestamp resolves one window
	output, err = s.ctaService.Attendance(s.ctx, &cta.AttendanceInput{
		EventName: "CW1",
		Date:      "04/05/2025",
		Timestamp: "04/05/2025, 02:00:00 PM",
	})
	s.Require().NoError(err)
	s.Equal("entry-2", output.Entry.ID)
}
