package audit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hysteriagg/muster/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestAppendAndListEntries() {
	entries := []*models.AuditLogEntry{
		{
			ID:              "entry-1",
			Action:          models.AuditActionSetEvent,
			PerformedBy:     "admin-1",
			PerformedByName: "Admin One",
			Date:            "04/05/2025",
			Timestamp:       "04/05/2025, 10:00:00 AM",
			Details:         "CW1 set to 5 points",
		},
		{
			ID:              "entry-2",
			Action:          models.AuditActionResetAll,
			PerformedBy:     "admin-2",
			PerformedByName: "Admin Two",
			Date:            "04/05/2025",
			Timestamp:       "04/05/2025, 11:00:00 AM",
			Details:         "all member points reset",
		},
	}

	for _, entry := range entries {
		err := s.repo.AppendEntry(context.Background(), &AppendEntryInput{
			Entry: entry,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)

	// Log preserves append order
	s.Equal("entry-1", output.Entries[0].ID)
	s.Equal(models.AuditActionSetEvent, output.Entries[0].Action)
	s.Equal("Admin One", output.Entries[0].PerformedByName)
	s.Equal("entry-2", output.Entries[1].ID)
	s.Equal(models.AuditActionResetAll, output.Entries[1].Action)
}

func (s *RedisRepositoryTestSuite) TestListEntriesEmpty() {
	output, err := s.repo.ListEntries(context.Background(), &ListEntriesInput{})
	s.Require().NoError(err)
	s.Empty(output.Entries)
}

func (s *RedisRepositoryTestSuite) TestAppendEntryNilInput() {
	err := s.repo.AppendEntry(context.Background(), nil)
	s.Require().Error(err)

	err = s.repo.AppendEntry(context.Background(), &AppendEntryInput{})
	s.Require().Error(err)
}
