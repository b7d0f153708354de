package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hysteriagg/muster/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	memberKeyPrefix = "member:"
	memberIndexKey  = "members"
)

// ErrMemberNotFound is returned when a member record is not found
var ErrMemberNotFound = errors.New("member not found")

// Config holds configuration for the Redis member repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed member repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMember persists a member record to Redis
func (r *redisRepository) SaveMember(ctx context.Context, input *SaveMemberInput) error {
	if input == nil || input.Member == nil {
		return errors.New("input and member cannot be nil")
	}

	if input.Member.MemberID == "" {
		return errors.New("member ID cannot be empty")
	}

	memberJSON, err := json.Marshal(input.Member)
	if err != nil {
		return fmt.Errorf("failed to marshal member: %w", err)
	}

	pipe := r.client.Pipeline()

	memberKey := fmt.Sprintf("%s%s", memberKeyPrefix, input.Member.MemberID)
	pipe.Set(ctx, memberKey, memberJSON, 0)
	pipe.SAdd(ctx, memberIndexKey, input.Member.MemberID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	return nil
}

// GetMember retrieves a member record by ID from Redis
func (r *redisRepository) GetMember(ctx context.Context, input *GetMemberInput) (*models.MemberRecord, error) {
	if input == nil || input.MemberID == "" {
		return nil, errors.New("input and member ID cannot be empty")
	}

	memberKey := fmt.Sprintf("%s%s", memberKeyPrefix, input.MemberID)
	memberJSON, err := r.client.Get(ctx, memberKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	var record models.MemberRecord
	if err := json.Unmarshal([]byte(memberJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return &record, nil
}

// ListMembers retrieves all member records from Redis
func (r *redisRepository) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	memberIDs, err := r.client.SMembers(ctx, memberIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get member IDs: %w", err)
	}

	if len(memberIDs) == 0 {
		return &ListMembersOutput{
			Members: []*models.MemberRecord{},
		}, nil
	}

	pipe := r.client.Pipeline()
	memberCommands := make(map[string]*redis.StringCmd)

	for _, memberID := range memberIDs {
		memberKey := fmt.Sprintf("%s%s", memberKeyPrefix, memberID)
		memberCommands[memberID] = pipe.Get(ctx, memberKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	members := make([]*models.MemberRecord, 0, len(memberIDs))
	for memberID, cmd := range memberCommands {
		memberJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Member was deleted between getting the IDs and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get member %s: %w", memberID, err)
		}

		var record models.MemberRecord
		if err := json.Unmarshal([]byte(memberJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal member %s: %w", memberID, err)
		}

		members = append(members, &record)
	}

	return &ListMembersOutput{
		Members: members,
	}, nil
}

// DeleteMember removes a single member record from Redis
func (r *redisRepository) DeleteMember(ctx context.Context, input *DeleteMemberInput) error {
	if input == nil || input.MemberID == "" {
		return errors.New("input and member ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	memberKey := fmt.Sprintf("%s%s", memberKeyPrefix, input.MemberID)
	pipe.Del(ctx, memberKey)
	pipe.SRem(ctx, memberIndexKey, input.MemberID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// DeleteAllMembers removes every member record from Redis
func (r *redisRepository) DeleteAllMembers(ctx context.Context, input *DeleteAllMembersInput) error {
	memberIDs, err := r.client.SMembers(ctx, memberIndexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get member IDs: %w", err)
	}

	pipe := r.client.Pipeline()

	for _, memberID := range memberIDs {
		memberKey := fmt.Sprintf("%s%s", memberKeyPrefix, memberID)
		pipe.Del(ctx, memberKey)
	}
	pipe.Del(ctx, memberIndexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete members: %w", err)
	}

	return nil
}
