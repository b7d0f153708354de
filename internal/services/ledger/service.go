package ledger

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hysteriagg/muster/internal/common/civiltime"
	"github.com/hysteriagg/muster/internal/common/clock"
	"github.com/hysteriagg/muster/internal/common/uuid"
	"github.com/hysteriagg/muster/internal/models"
	auditRepo "github.com/hysteriagg/muster/internal/repositories/audit"
	eventsRepo "github.com/hysteriagg/muster/internal/repositories/events"
	memberRepo "github.com/hysteriagg/muster/internal/repositories/member"
)

// DefaultLeaderboardLimit caps the leaderboard when the caller passes none
const DefaultLeaderboardLimit = 10

// exportHeader is the fixed column order of the CSV export
var exportHeader = []string{
	"userId", "username", "ign", "class", "totalPoints", "lastEvent", "lastTimestamp",
}

// service implements the Service interface
type service struct {
	memberRepo memberRepo.Repository
	eventRepo  eventsRepo.Repository
	auditRepo  auditRepo.Repository

	clock         clock.Clock
	uuidGenerator uuid.UUID
	civilTime     *civiltime.Formatter
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
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
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.CivilTime == nil {
		return nil, ErrNilCivilTime
	}

	return &service{
		memberRepo:    cfg.MemberRepo,
		eventRepo:     cfg.EventRepo,
		auditRepo:     cfg.AuditRepo,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		civilTime:     cfg.CivilTime,
	}, nil
}

// Register upserts a member's IGN and class, last write wins
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	ign := strings.TrimSpace(input.IGN)
	if ign == "" {
		return nil, ErrMissingIGN
	}
	class := strings.TrimSpace(input.Class)
	if class == "" {
		return nil, ErrMissingClass
	}

	record, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		MemberID: input.MemberID,
	})
	if err != nil {
		if !errors.Is(err, memberRepo.ErrMemberNotFound) {
			return nil, err
		}
		record = &models.MemberRecord{
			MemberID: input.MemberID,
			History:  []*models.PointGrant{},
		}
	}

	updated := record.Profile.Registered()

	record.Profile.Name = input.Name
	record.Profile.Tag = input.Tag
	record.Profile.IGN = ign
	record.Profile.Class = class

	if err := s.memberRepo.SaveMember(ctx, &memberRepo.SaveMemberInput{
		Member: record,
	}); err != nil {
		return nil, err
	}

	return &RegisterOutput{
		Updated: updated,
		Profile: record.Profile,
	}, nil
}

// Profile retrieves a member's profile and totals
func (s *service) Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	record, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
		MemberID: input.MemberID,
	})
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &ProfileOutput{
		Profile:     record.Profile,
		TotalPoints: record.TotalPoints,
		GrantCount:  len(record.History),
	}, nil
}

// Points retrieves a member's total and rank by Discord user ID
func (s *service) Points(ctx context.Context, input *PointsInput) (*PointsOutput, error) {
	sorted, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	for i, record := range sorted {
		if record.MemberID == input.MemberID {
			return s.pointsOutput(sorted, i), nil
		}
	}

	return nil, ErrMemberNotFound
}

// PointsByIGN retrieves a member's total and rank by in-game name
func (s *service) PointsByIGN(ctx context.Context, input *PointsByIGNInput) (*PointsOutput, error) {
	sorted, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	target := models.NormalizeIGN(input.IGN)

	matched := -1
	for i, record := range sorted {
		if record.Profile.IGN == "" {
			continue
		}
		if models.NormalizeIGN(record.Profile.IGN) != target {
			continue
		}
		if matched >= 0 {
			return nil, ErrIGNAmbiguous
		}
		matched = i
	}

	if matched < 0 {
		return nil, ErrIGNNotFound
	}

	return s.pointsOutput(sorted, matched), nil
}

// PointsAll retrieves every member's standing in rank order
func (s *service) PointsAll(ctx context.Context, input *PointsAllInput) (*PointsAllOutput, error) {
	sorted, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	standings := s.buildStandings(sorted, input.Limit)

	return &PointsAllOutput{Standings: standings}, nil
}

// Leaderboard retrieves the top members by total points
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	sorted, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	standings := s.buildStandings(sorted, limit)

	return &LeaderboardOutput{Standings: standings}, nil
}

// SetEvent creates or overwrites an event's point value
func (s *service) SetEvent(ctx context.Context, input *SetEventInput) error {
	if input.Points <= 0 {
		return ErrInvalidPoints
	}

	eventType := models.NormalizeEventName(input.EventName)

	if err := s.eventRepo.SetPoints(ctx, &eventsRepo.SetPointsInput{
		EventType: eventType,
		Points:    input.Points,
	}); err != nil {
		return err
	}

	return s.audit(ctx, models.AuditActionSetEvent, input.ActorID, input.ActorName,
		fmt.Sprintf("set %s to %d points", eventType, input.Points))
}

// ListEvents retrieves the event-type point table
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	output, err := s.eventRepo.ListEvents(ctx, &eventsRepo.ListEventsInput{})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: output.Events}, nil
}

// AddPoints grants points to a member resolved by IGN
func (s *service) AddPoints(ctx context.Context, input *AddPointsInput) (*AddPointsOutput, error) {
	if input.Points <= 0 {
		return nil, ErrInvalidPoints
	}

	record, err := s.resolveByIGN(ctx, input.IGN)
	if err != nil {
		return nil, err
	}

	if err := s.applyManualGrant(ctx, record, input.Points); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, models.AuditActionAddPoints, input.ActorID, input.ActorName,
		fmt.Sprintf("granted %d points to %s (IGN %s)",
			input.Points, displayName(record), record.Profile.IGN)); err != nil {
		return nil, err
	}

	return &AddPointsOutput{
		MemberID:    record.MemberID,
		DisplayName: displayName(record),
		TotalPoints: record.TotalPoints,
	}, nil
}

// AddPointsBatch grants points from CSV lines of ign,points
func (s *service) AddPointsBatch(ctx context.Context, input *AddPointsBatchInput) (*AddPointsBatchOutput, error) {
	reader := csv.NewReader(strings.NewReader(input.CSVData))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	output := &AddPointsBatchOutput{}
	line := 0

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			output.Results = append(output.Results, &BatchLineResult{
				Line: line,
				Err:  err.Error(),
			})
			output.Failed++
			continue
		}

		if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
			continue
		}

		// An optional header line is skipped, not reported
		if line == 1 && len(fields) >= 2 &&
			strings.EqualFold(strings.TrimSpace(fields[0]), "ign") &&
			strings.EqualFold(strings.TrimSpace(fields[1]), "points") {
			continue
		}

		result := &BatchLineResult{Line: line}
		output.Results = append(output.Results, result)

		if len(fields) < 2 {
			result.Err = "expected ign,points"
			output.Failed++
			continue
		}

		result.IGN = strings.TrimSpace(fields[0])

		points, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			result.Err = "points is not a number"
			output.Failed++
			continue
		}
		if points <= 0 {
			result.Err = string(ErrInvalidPoints)
			output.Failed++
			continue
		}
		result.Points = points

		record, err := s.resolveByIGN(ctx, result.IGN)
		if err != nil {
			result.Err = err.Error()
			output.Failed++
			continue
		}

		if err := s.applyManualGrant(ctx, record, points); err != nil {
			result.Err = err.Error()
			output.Failed++
			continue
		}

		result.TotalPoints = record.TotalPoints
		output.Succeeded++
	}

	if len(output.Results) == 0 {
		return nil, ErrEmptyBatch
	}

	if err := s.audit(ctx, models.AuditActionAddPointsBatch, input.ActorID, input.ActorName,
		fmt.Sprintf("batch grant: %d succeeded, %d failed",
			output.Succeeded, output.Failed)); err != nil {
		return nil, err
	}

	return output, nil
}

// ResetPoints deletes one member record or all of them. History goes with
// the record, the audit log stays.
func (s *service) ResetPoints(ctx context.Context, input *ResetPointsInput) (*ResetPointsOutput, error) {
	switch input.Scope {
	case ResetScopeUser:
		if input.MemberID == "" {
			return nil, ErrMissingMemberID
		}

		record, err := s.memberRepo.GetMember(ctx, &memberRepo.GetMemberInput{
			MemberID: input.MemberID,
		})
		if err != nil {
			if errors.Is(err, memberRepo.ErrMemberNotFound) {
				return nil, ErrMemberNotFound
			}
			return nil, err
		}

		if err := s.memberRepo.DeleteMember(ctx, &memberRepo.DeleteMemberInput{
			MemberID: input.MemberID,
		}); err != nil {
			return nil, err
		}

		if err := s.audit(ctx, models.AuditActionResetUser, input.ActorID, input.ActorName,
			fmt.Sprintf("reset %s (IGN %s)", displayName(record), record.Profile.IGN)); err != nil {
			return nil, err
		}

		return &ResetPointsOutput{Removed: 1}, nil

	case ResetScopeAll:
		listOutput, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{})
		if err != nil {
			return nil, err
		}

		if err := s.memberRepo.DeleteAllMembers(ctx, &memberRepo.DeleteAllMembersInput{}); err != nil {
			return nil, err
		}

		if err := s.audit(ctx, models.AuditActionResetAll, input.ActorID, input.ActorName,
			fmt.Sprintf("reset all %d member records", len(listOutput.Members))); err != nil {
			return nil, err
		}

		return &ResetPointsOutput{Removed: len(listOutput.Members)}, nil

	default:
		return nil, ErrInvalidScope
	}
}

// ExportCSV renders every member record as CSV
func (s *service) ExportCSV(ctx context.Context, input *ExportCSVInput) (*ExportCSVOutput, error) {
	sorted, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	writer := csv.NewWriter(&builder)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, record := range sorted {
		lastEvent := ""
		lastTimestamp := ""
		if grant := record.LastGrant(); grant != nil {
			lastEvent = grant.EventType
			lastTimestamp = grant.Timestamp
		}

		username := record.Profile.Name
		if username == "" {
			username = record.Profile.Tag
		}

		if err := writer.Write([]string{
			record.MemberID,
			username,
			record.Profile.IGN,
			record.Profile.Class,
			strconv.Itoa(record.TotalPoints),
			lastEvent,
			lastTimestamp,
		}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, models.AuditActionExportPoints, input.ActorID, input.ActorName,
		fmt.Sprintf("exported %d member records", len(sorted))); err != nil {
		return nil, err
	}

	return &ExportCSVOutput{
		CSV:         builder.String(),
		MemberCount: len(sorted),
	}, nil
}

// AuditLog retrieves audit entries, optionally filtered by civil date
func (s *service) AuditLog(ctx context.Context, input *AuditLogInput) (*AuditLogOutput, error) {
	output, err := s.auditRepo.ListEntries(ctx, &auditRepo.ListEntriesInput{})
	if err != nil {
		return nil, err
	}

	if input.Date == "" {
		return &AuditLogOutput{Entries: output.Entries}, nil
	}

	filtered := make([]*models.AuditLogEntry, 0, len(output.Entries))
	for _, entry := range output.Entries {
		if entry.Date == input.Date {
			filtered = append(filtered, entry)
		}
	}

	return &AuditLogOutput{Entries: filtered}, nil
}

// sortedRecords lists every member ordered by total points descending,
// member ID breaking ties so the order is deterministic
func (s *service) sortedRecords(ctx context.Context) ([]*models.MemberRecord, error) {
	output, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{})
	if err != nil {
		return nil, err
	}

	sorted := make([]*models.MemberRecord, len(output.Members))
	copy(sorted, output.Members)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].MemberID < sorted[j].MemberID
	})

	return sorted, nil
}

// rankAt returns the 1-based competition rank of the record at index i,
// records with equal totals share a rank
func rankAt(sorted []*models.MemberRecord, i int) int {
	rank := i + 1
	for i > 0 && sorted[i].TotalPoints == sorted[i-1].TotalPoints {
		i--
		rank = i + 1
	}
	return rank
}

func (s *service) pointsOutput(sorted []*models.MemberRecord, i int) *PointsOutput {
	record := sorted[i]
	return &PointsOutput{
		MemberID:    record.MemberID,
		Profile:     record.Profile,
		TotalPoints: record.TotalPoints,
		Rank:        rankAt(sorted, i),
		LastGrant:   record.LastGrant(),
	}
}

func (s *service) buildStandings(sorted []*models.MemberRecord, limit int) []*Standing {
	count := len(sorted)
	if limit > 0 && limit < count {
		count = limit
	}

	standings := make([]*Standing, 0, count)
	for i := 0; i < count; i++ {
		record := sorted[i]
		standings = append(standings, &Standing{
			MemberID:    record.MemberID,
			DisplayName: displayName(record),
			IGN:         record.Profile.IGN,
			Class:       record.Profile.Class,
			TotalPoints: record.TotalPoints,
			Rank:        rankAt(sorted, i),
		})
	}

	return standings
}

// resolveByIGN finds the single member whose IGN matches, ignoring case
// and whitespace
func (s *service) resolveByIGN(ctx context.Context, ign string) (*models.MemberRecord, error) {
	output, err := s.memberRepo.ListMembers(ctx, &memberRepo.ListMembersInput{})
	if err != nil {
		return nil, err
	}

	target := models.NormalizeIGN(ign)

	var matched *models.MemberRecord
	for _, record := range output.Members {
		if record.Profile.IGN == "" {
			continue
		}
		if models.NormalizeIGN(record.Profile.IGN) != target {
			continue
		}
		if matched != nil {
			return nil, ErrIGNAmbiguous
		}
		matched = record
	}

	if matched == nil {
		return nil, ErrIGNNotFound
	}

	return matched, nil
}

// applyManualGrant adjusts a member's total and appends the matching
// history entry in one save
func (s *service) applyManualGrant(ctx context.Context, record *models.MemberRecord, points int) error {
	now := s.clock.Now()

	record.TotalPoints += points
	record.History = append(record.History, &models.PointGrant{
		ID:        s.uuidGenerator.NewUUID(),
		EventType: EventTypeManual,
		Points:    points,
		Date:      s.civilTime.Date(now),
		Timestamp: s.civilTime.Timestamp(now),
	})

	return s.memberRepo.SaveMember(ctx, &memberRepo.SaveMemberInput{
		Member: record,
	})
}

func (s *service) audit(ctx context.Context, action models.AuditAction, actorID, actorName, details string) error {
	now := s.clock.Now()

	return s.auditRepo.AppendEntry(ctx, &auditRepo.AppendEntryInput{
		Entry: &models.AuditLogEntry{
			ID:              s.uuidGenerator.NewUUID(),
			Action:          action,
			PerformedBy:     actorID,
			PerformedByName: actorName,
			Date:            s.civilTime.Date(now),
			Timestamp:       s.civilTime.Timestamp(now),
			Details:         details,
		},
	})
}

func displayName(record *models.MemberRecord) string {
	if record.Profile.Name != "" {
		return record.Profile.Name
	}
	if record.Profile.Tag != "" {
		return record.Profile.Tag
	}
	return record.MemberID
}
