package ledger

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	clockMocks "github.com/hysteriagg/muster/internal/common/clock/mocks"
	uuidMocks "github.com/hysteriagg/muster/internal/common/uuid/mocks"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	auditMocks "github.com/hysteriagg/muster/internal/repositories/audit/mocks"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	eventsMocks "github.com/hysteriagg/muster/internal/repositories/events/mocks"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
	memberMocks "github.com/hysteriagg/muster/internal/repositories/member/mocks"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockMemberRepo *memberMocks.MockRepository
	mockEventRepo  *eventsMocks.MockRepository
	mockAuditRepo  *auditMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	ledgerService  *service
	ctx            context.Context

	testTime time.Time

	// Reusable test fixtures
	memberAra  *models.MemberRecord
	memberBrin *models.MemberRecord
	memberCael *models.MemberRecord
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMemberRepo = memberMocks.NewMockRepository(s.mockCtrl)
	s.mockEventRepo = eventsMocks.NewMockRepository(s.mockCtrl)
	s.mockAuditRepo = auditMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 14, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("test-uuid").AnyTimes()

	formatter, err := civiltime.New("UTC")
	s.Require().NoError(err)

	svc, err := New(&Config{
		MemberRepo:    s.mockMemberRepo,
		EventRepo:     s.mockEventRepo,
		AuditRepo:     s.mockAuditRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		CivilTime:     formatter,
	})
	s.Require().NoError(err)
	s.ledgerService = svc

	s.memberAra = &models.MemberRecord{
		MemberID:    "member-a",
		TotalPoints: 10,
		History: []*models.PointGrant{
			{ID: "grant-a", EventType: "CW1", Points: 10, Timestamp: "04/01/2025, 09:00:00 AM"},
		},
		Profile: models.Profile{Name: "Ara", Tag: "ara#0001", IGN: "Ara", Class: "MAGE"},
	}
	s.memberBrin = &models.MemberRecord{
		MemberID:    "member-b",
		TotalPoints: 10,
		Profile:     models.Profile{Name: "Brin", Tag: "brin#0002", IGN: "Brin", Class: "MELEE"},
	}
	s.memberCael = &models.MemberRecord{
		MemberID:    "member-c",
		TotalPoints: 4,
		Profile:     models.Profile{Tag: "cael#0003", IGN: "Cael", Class: "RANGER"},
	}
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) expectListMembers() {
	s.mockMemberRepo.EXPECT().ListMembers(s.ctx, gomock.Any()).Return(&memberRepo.ListMembersOutput{
		Members: []*models.MemberRecord{s.memberCael, s.memberAra, s.memberBrin},
	}, nil)
}

func (s *LedgerServiceTestSuite) TestRegisterNewMember() {
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, &memberRepo.GetMemberInput{
		MemberID: "member-new",
	}).Return(nil, memberRepo.ErrMemberNotFound)

	var saved *models.MemberRecord
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *memberRepo.SaveMemberInput) error {
			saved = in.Member
			return nil
		})

	output, err := s.ledgerService.Register(s.ctx, &RegisterInput{
		MemberID: "member-new",
		Name:     "New Member",
		Tag:      "new#0004",
		IGN:      "  Dax  ",
		Class:    "SPEC",
	})
	s.Require().NoError(err)
	s.False(output.Updated)

	s.Equal("Dax", saved.Profile.IGN)
	s.Equal("SPEC", saved.Profile.Class)
	s.Equal(0, saved.TotalPoints)
	s.Empty(saved.History)
}

func (s *LedgerServiceTestSuite) TestRegisterOverwritesProfile() {
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).Return(s.memberAra, nil)

	var saved *models.MemberRecord
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *memberRepo.SaveMemberInput) error {
			saved = in.Member
			return nil
		})

	output, err := s.ledgerService.Register(s.ctx, &RegisterInput{
		MemberID: "member-a",
		Name:     "Ara",
		Tag:      "ara#0001",
		IGN:      "AraReborn",
		Class:    "MELEE",
	})
	s.Require().NoError(err)
	s.True(output.Updated)

	// Re-registering keeps points and history
	s.Equal("AraReborn", saved.Profile.IGN)
	s.Equal("MELEE", saved.Profile.Class)
	s.Equal(10, saved.TotalPoints)
	s.Len(saved.History, 1)
}

func (s *LedgerServiceTestSuite) TestRegisterRequiresIGNAndClass() {
	_, err := s.ledgerService.Register(s.ctx, &RegisterInput{
		MemberID: "member-new",
		IGN:      "   ",
		Class:    "MAGE",
	})
	s.Equal(ErrMissingIGN, err)

	_, err = s.ledgerService.Register(s.ctx, &RegisterInput{
		MemberID: "member-new",
		IGN:      "Dax",
	})
	s.Equal(ErrMissingClass, err)
}

func (s *LedgerServiceTestSuite) TestProfileNotFound() {
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, gomock.Any()).
		Return(nil, memberRepo.ErrMemberNotFound)

	_, err := s.ledgerService.Profile(s.ctx, &ProfileInput{MemberID: "missing"})
	s.Equal(ErrMemberNotFound, err)
}

func (s *LedgerServiceTestSuite) TestPointsRankSharedForTies() {
	s.expectListMembers()

	output, err := s.ledgerService.Points(s.ctx, &PointsInput{MemberID: "member-b"})
	s.Require().NoError(err)

	// Ara and Brin both hold 10 points, both rank 1
	s.Equal(10, output.TotalPoints)
	s.Equal(1, output.Rank)
}

func (s *LedgerServiceTestSuite) TestPointsRankAfterTie() {
	s.expectListMembers()

	output, err := s.ledgerService.Points(s.ctx, &PointsInput{MemberID: "member-c"})
	s.Require().NoError(err)

	// Two members tied above, so the next rank is 3
	s.Equal(4, output.TotalPoints)
	s.Equal(3, output.Rank)
}

func (s *LedgerServiceTestSuite) TestPointsMemberNotFound() {
	s.expectListMembers()

	_, err := s.ledgerService.Points(s.ctx, &PointsInput{MemberID: "missing"})
	s.Equal(ErrMemberNotFound, err)
}

func (s *LedgerServiceTestSuite) TestPointsByIGNNormalized() {
	s.expectListMembers()

	output, err := s.ledgerService.PointsByIGN(s.ctx, &PointsByIGNInput{IGN: " c a e l "})
	s.Require().NoError(err)
	s.Equal("member-c", output.MemberID)
	s.NotNil(output)
}

func (s *LedgerServiceTestSuite) TestPointsByIGNNotFound() {
	s.expectListMembers()

	_, err := s.ledgerService.PointsByIGN(s.ctx, &PointsByIGNInput{IGN: "Nobody"})
	s.Equal(ErrIGNNotFound, err)
}

func (s *LedgerServiceTestSuite) TestPointsByIGNAmbiguous() {
	s.memberBrin.Profile.IGN = "ara"
	s.expectListMembers()

	_, err := s.ledgerService.PointsByIGN(s.ctx, &PointsByIGNInput{IGN: "ARA"})
	s.Equal(ErrIGNAmbiguous, err)
}

func (s *LedgerServiceTestSuite) TestLeaderboardOrderAndFallbackName() {
	s.expectListMembers()

	output, err := s.ledgerService.Leaderboard(s.ctx, &LeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Standings, 3)

	s.Equal("Ara", output.Standings[0].DisplayName)
	s.Equal(1, output.Standings[0].Rank)
	s.Equal("Brin", output.Standings[1].DisplayName)
	s.Equal(1, output.Standings[1].Rank)

	// Cael has no display name, the tag stands in
	s.Equal("cael#0003", output.Standings[2].DisplayName)
	s.Equal(3, output.Standings[2].Rank)
}

func (s *LedgerServiceTestSuite) TestLeaderboardLimit() {
	s.expectListMembers()

	output, err := s.ledgerService.Leaderboard(s.ctx, &LeaderboardInput{Limit: 2})
	s.Require().NoError(err)
	s.Len(output.Standings, 2)
}

func (s *LedgerServiceTestSuite) TestSetEventNormalizesAndAudits() {
	s.mockEventRepo.EXPECT().SetPoints(s.ctx, &eventsRepo.SetPointsInput{
		EventType: "CW1",
		Points:    5,
	}).Return(nil)

	var entry *models.AuditLogEntry
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *auditRepo.AppendEntryInput) error {
			entry = in.Entry
			return nil
		})

	err := s.ledgerService.SetEvent(s.ctx, &SetEventInput{
		EventName: "cw 1",
		Points:    5,
		ActorID:   "admin-1",
		ActorName: "Admin#0001",
	})
	s.Require().NoError(err)

	s.Equal(models.AuditActionSetEvent, entry.Action)
	s.Equal("admin-1", entry.PerformedBy)
	s.Contains(entry.Details, "CW1")
}

func (s *LedgerServiceTestSuite) TestSetEventRejectsNonPositivePoints() {
	err := s.ledgerService.SetEvent(s.ctx, &SetEventInput{
		EventName: "CW1",
		Points:    0,
	})
	s.Equal(ErrInvalidPoints, err)
}

func (s *LedgerServiceTestSuite) TestAddPointsAppendsManualGrant() {
	s.expectListMembers()

	var saved *models.MemberRecord
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *memberRepo.SaveMemberInput) error {
			saved = in.Member
			return nil
		})
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	output, err := s.ledgerService.AddPoints(s.ctx, &AddPointsInput{
		IGN:       "ara",
		Points:    3,
		ActorID:   "admin-1",
		ActorName: "Admin#0001",
	})
	s.Require().NoError(err)

	s.Equal(13, output.TotalPoints)

	// The total and its history entry move together
	s.Equal(13, saved.TotalPoints)
	s.Require().Len(saved.History, 2)
	grant := saved.History[1]
	s.Equal(EventTypeManual, grant.EventType)
	s.Equal(3, grant.Points)
	s.Equal("04/05/2025", grant.Date)
}

func (s *LedgerServiceTestSuite) TestAddPointsUnknownIGN() {
	s.expectListMembers()

	_, err := s.ledgerService.AddPoints(s.ctx, &AddPointsInput{
		IGN:    "Nobody",
		Points: 3,
	})
	s.Equal(ErrIGNNotFound, err)
}

func (s *LedgerServiceTestSuite) TestAddPointsBatchReportsBadLines() {
	// Each good line resolves and saves, bad lines are reported in place
	s.mockMemberRepo.EXPECT().ListMembers(s.ctx, gomock.Any()).Return(&memberRepo.ListMembersOutput{
		Members: []*models.MemberRecord{s.memberAra, s.memberBrin, s.memberCael},
	}, nil).Times(3)
	s.mockMemberRepo.EXPECT().SaveMember(s.ctx, gomock.Any()).Return(nil).Times(2)

	var entry *models.AuditLogEntry
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *auditRepo.AppendEntryInput) error {
			entry = in.Entry
			return nil
		})

	csvData := strings.Join([]string{
		"ign,points",
		"Ara,3",
		"Nobody,2",
		"Brin,notanumber",
		"Cael,1",
	}, "\n")

	output, err := s.ledgerService.AddPointsBatch(s.ctx, &AddPointsBatchInput{
		CSVData:   csvData,
		ActorID:   "admin-1",
		ActorName: "Admin#0001",
	})
	s.Require().NoError(err)

	s.Equal(2, output.Succeeded)
	s.Equal(2, output.Failed)
	s.Require().Len(output.Results, 4)

	s.Empty(output.Results[0].Err)
	s.Equal(string(ErrIGNNotFound), output.Results[1].Err)
	s.Equal("points is not a number", output.Results[2].Err)
	s.Empty(output.Results[3].Err)

	s.Equal(models.AuditActionAddPointsBatch, entry.Action)
	s.Contains(entry.Details, "2 succeeded")
	s.Contains(entry.Details, "2 failed")
}

func (s *LedgerServiceTestSuite) TestAddPointsBatchEmpty() {
	_, err := s.ledgerService.AddPointsBatch(s.ctx, &AddPointsBatchInput{
		CSVData: "ign,points\n",
	})
	s.Equal(ErrEmptyBatch, err)
}

func (s *LedgerServiceTestSuite) TestResetPointsUser() {
	s.mockMemberRepo.EXPECT().GetMember(s.ctx, &memberRepo.GetMemberInput{
		MemberID: "member-a",
	}).Return(s.memberAra, nil)
	s.mockMemberRepo.EXPECT().DeleteMember(s.ctx, &memberRepo.DeleteMemberInput{
		MemberID: "member-a",
	}).Return(nil)

	var entry *models.AuditLogEntry
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, in *auditRepo.AppendEntryInput) error {
			entry = in.Entry
			return nil
		})

	output, err := s.ledgerService.ResetPoints(s.ctx, &ResetPointsInput{
		Scope:     ResetScopeUser,
		MemberID:  "member-a",
		ActorID:   "admin-1",
		ActorName: "Admin#0001",
	})
	s.Require().NoError(err)
	s.Equal(1, output.Removed)
	s.Equal(models.AuditActionResetUser, entry.Action)
}

func (s *LedgerServiceTestSuite) TestResetPointsAllKeepsAuditLog() {
	s.expectListMembers()
	s.mockMemberRepo.EXPECT().DeleteAllMembers(s.ctx, gomock.Any()).Return(nil)

	// The reset itself lands in the audit log, nothing deletes from it
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	output, err := s.ledgerService.ResetPoints(s.ctx, &ResetPointsInput{
		Scope:   ResetScopeAll,
		ActorID: "admin-1",
	})
	s.Require().NoError(err)
	s.Equal(3, output.Removed)
}

func (s *LedgerServiceTestSuite) TestResetPointsInvalidScope() {
	_, err := s.ledgerService.ResetPoints(s.ctx, &ResetPointsInput{Scope: "channel"})
	s.Equal(ErrInvalidScope, err)
}

func (s *LedgerServiceTestSuite) TestExportCSV() {
	s.expectListMembers()
	s.mockAuditRepo.EXPECT().AppendEntry(s.ctx, gomock.Any()).Return(nil)

	output, err := s.ledgerService.ExportCSV(s.ctx, &ExportCSVInput{
		ActorID: "admin-1",
	})
	s.Require().NoError(err)
	s.Equal(3, output.MemberCount)

	lines := strings.Split(strings.TrimSpace(output.CSV), "\n")
	s.Require().Len(lines, 4)
	s.Equal("userId,username,ign,class,totalPoints,lastEvent,lastTimestamp", lines[0])

	// Rows come out in rank order, last-grant columns empty when bare
	s.Equal("member-a,Ara,Ara,MAGE,10,CW1,\"04/01/2025, 09:00:00 AM\"", lines[1])
	s.Equal("member-b,Brin,Brin,MELEE,10,,", lines[2])
	s.Equal("member-c,cael#0003,Cael,RANGER,4,,", lines[3])
}

func (s *LedgerServiceTestSuite) TestAuditLogDateFilter() {
	entries := []*models.AuditLogEntry{
		{ID: "entry-1", Date: "04/04/2025"},
		{ID: "entry-2", Date: "04/05/2025"},
		{ID: "entry-3", Date: "04/05/2025"},
	}
	s.mockAuditRepo.EXPECT().ListEntries(s.ctx, gomock.Any()).
		Return(&auditRepo.ListEntriesOutput{Entries: entries}, nil).Times(2)

	output, err := s.ledgerService.AuditLog(s.ctx, &AuditLogInput{})
	s.Require().NoError(err)
	s.Len(output.Entries, 3)

	output, err = s.ledgerService.AuditLog(s.ctx, &AuditLogInput{Date: "04/05/2025"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal("entry-2", output.Entries[0].ID)
}
