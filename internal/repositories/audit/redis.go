package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hysteriagg/muster/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key for the audit log list
	auditLogKey = "audit_log"
)

// Config holds configuration for the Redis audit repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed audit repository
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

// AppendEntry appends an audit log entry to Redis
func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if err := r.client.RPush(ctx, auditLogKey, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}

	return nil
}

// ListEntries retrieves audit log entries in append order from Redis
func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	entryJSONs, err := r.client.LRange(ctx, auditLogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*models.AuditLogEntry, 0, len(entryJSONs))
	for i, entryJSON := range entryJSONs {
		var entry models.AuditLogEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit entry %d: %w", i, err)
		}
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}
