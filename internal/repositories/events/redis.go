package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key for the event-type point table hash
	eventPointsKey = "event_points"
)

// ErrEventNotFound is returned when an event type is not in the table
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis events repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed events repository
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

// GetPoints retrieves the point value for a normalized event name
func (r *redisRepository) GetPoints(ctx context.Context, input *GetPointsInput) (*GetPointsOutput, error) {
	if input == nil || input.EventType == "" {
		return nil, errors.New("input and event type cannot be empty")
	}

	value, err := r.client.HGet(ctx, eventPointsKey, input.EventType).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event points: %w", err)
	}

	points, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event points %q: %w", value, err)
	}

	return &GetPointsOutput{
		Points: points,
	}, nil
}

// SetPoints creates or overwrites the point value for an event
func (r *redisRepository) SetPoints(ctx context.Context, input *SetPointsInput) error {
	if input == nil || input.EventType == "" {
		return errors.New("input and event type cannot be empty")
	}

	if err := r.client.HSet(ctx, eventPointsKey, input.EventType, input.Points).Err(); err != nil {
		return fmt.Errorf("failed to set event points: %w", err)
	}

	return nil
}

// ListEvents retrieves the full event-type point table
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	values, err := r.client.HGetAll(ctx, eventPointsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	table := make(map[string]int, len(values))
	for name, value := range values {
		points, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event points for %s: %w", name, err)
		}
		table[name] = points
	}

	return &ListEventsOutput{
		Events: table,
	}, nil
}

// EnsureDefaults seeds the starter point table when the table is empty
func (r *redisRepository) EnsureDefaults(ctx context.Context) error {
	count, err := r.client.HLen(ctx, eventPointsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check event table: %w", err)
	}

	if count > 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for name, points := range DefaultEventPoints {
		pipe.HSet(ctx, eventPointsKey, name, points)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed default events: %w", err)
	}

	return nil
}
