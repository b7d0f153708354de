package cta

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hysteriagg/muster/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
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

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testCTA(channelID string) *models.CTA {
	return &models.CTA{
		Code:      "ABC1",
		EventType: "CW1",
		Points:    2,
		ExpiresAt: s.testNow.Add(3 * time.Minute),
		CreatedBy: "creator-id",
		CreatedAt: s.testNow,
		GuildID:   "guild-id",
		ChannelID: channelID,
		MessageID: "message-id",
		Attendees: []*models.Attendee{},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCTA() {
	window := s.testCTA("channel-1")

	err := s.repo.SaveCTA(context.Background(), &SaveCTAInput{
		CTA: window,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetCTAByChannel(context.Background(), &GetCTAByChannelInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("ABC1", retrieved.Code)
	s.Equal("CW1", retrieved.EventType)
	s.Equal(2, retrieved.Points)
	s.Equal(s.testNow.Add(3*time.Minute).Unix(), retrieved.ExpiresAt.Unix())
	s.Equal("channel-1", retrieved.ChannelID)
	s.Empty(retrieved.Attendees)
}

func (s *RedisRepositoryTestSuite) TestSaveCTAOverwritesAttendees() {
	window := s.testCTA("channel-1")

	err := s.repo.SaveCTA(context.Background(), &SaveCTAInput{
		CTA: window,
	})
	s.Require().NoError(err)

	window.Attendees = append(window.Attendees, &models.Attendee{
		MemberID: "member-1",
		JoinedAt: s.testNow.Add(10 * time.Second),
	})

	err = s.repo.SaveCTA(context.Background(), &SaveCTAInput{
		CTA: window,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetCTAByChannel(context.Background(), &GetCTAByChannelInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)
	s.Require().Len(retrieved.Attendees, 1)
	s.Equal("member-1", retrieved.Attendees[0].MemberID)
}

func (s *RedisRepositoryTestSuite) TestGetCTANotFound() {
	_, err := s.repo.GetCTAByChannel(context.Background(), &GetCTAByChannelInput{
		ChannelID: "no-such-channel",
	})
	s.Require().Error(err)
	s.Equal(ErrCTANotFound, err)
}

func (s *RedisRepositoryTestSuite) TestDeleteCTA() {
	err := s.repo.SaveCTA(context.Background(), &SaveCTAInput{
		CTA: s.testCTA("channel-1"),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteCTA(context.Background(), &DeleteCTAInput{
		ChannelID: "channel-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetCTAByChannel(context.Background(), &GetCTAByChannelInput{
		ChannelID: "channel-1",
	})
	s.Equal(ErrCTANotFound, err)

	output, err := s.repo.GetActiveCTAs(context.Background(), &GetActiveCTAsInput{})
	s.Require().NoError(err)
	s.Empty(output.CTAs)
}

func (s *RedisRepositoryTestSuite) TestGetActiveCTAs() {
	for _, channelID := range []string{"channel-1", "channel-2"} {
		err := s.repo.SaveCTA(context.Background(), &SaveCTAInput{
			CTA: s.testCTA(channelID),
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetActiveCTAs(context.Background(), &GetActiveCTAsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.CTAs, 2)

	channels := make(map[string]bool)
	for _, window := range output.CTAs {
		channels[window.ChannelID] = true
	}
	s.True(channels["channel-1"])
	s.True(channels["channel-2"])
}

func (s *RedisRepositoryTestSuite) TestAppendAndGetHistory() {
	entries := []*models.CTAHistoryEntry{
		{
			ID:        "entry-1",
			EventType: "CW1",
			Points:    2,
			Code:      "ABC1",
			ChannelID: "channel-1",
			CreatedAt: s.testNow,
			ClosedAt:  s.testNow.Add(3 * time.Minute),
			Date:      "04/05/2025",
			Timestamp: "04/05/2025, 10:00:00 AM",
			Attendees: []*models.HistoryAttendee{
				{MemberID: "member-1", Name: "Member One", IGN: "Ara", Class: "MAGE", JoinedAt: s.testNow},
			},
		},
		{
			ID:        "entry-2",
			EventType: "CW2",
			Points:    3,
			Code:      "XYZ9",
			ChannelID: "channel-2",
			CreatedAt: s.testNow.Add(time.Hour),
			ClosedAt:  s.testNow.Add(time.Hour + 3*time.Minute),
			Date:      "04/05/2025",
			Timestamp: "04/05/2025, 11:00:00 AM",
		},
	}

	for _, entry := range entries {
		err := s.repo.AppendHistory(context.Background(), &AppendHistoryInput{
			Entry: entry,
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetHistory(context.Background(), &GetHistoryInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)

	// History preserves append order
	s.Equal("entry-1", output.Entries[0].ID)
	s.Equal("entry-2", output.Entries[1].ID)
	s.Require().Len(output.Entries[0].Attendees, 1)
	s.Equal("Ara", output.Entries[0].Attendees[0].IGN)
}
