package cta

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
	ctaKeyPrefix      = "cta:channel:"
	activeChannelsKey = "cta:active_channels"
	historyKey        = "cta:history"
)

// ErrCTANotFound is returned when a channel has no active CTA
var ErrCTANotFound = errors.New("cta not found")

// Config holds configuration for the Redis CTA repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed CTA repository
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

// SaveCTA persists an active CTA window to Redis
func (r *redisRepository) SaveCTA(ctx context.Context, input *SaveCTAInput) error {
	if input == nil || input.CTA == nil {
		return errors.New("input and cta cannot be nil")
	}

	if input.CTA.ChannelID == "" {
		return errors.New("channel ID cannot be empty")
	}

	ctaJSON, err := json.Marshal(input.CTA)
	if err != nil {
		return fmt.Errorf("failed to marshal cta: %w", err)
	}

	pipe := r.client.Pipeline()

	ctaKey := fmt.Sprintf("%s%s", ctaKeyPrefix, input.CTA.ChannelID)
	pipe.Set(ctx, ctaKey, ctaJSON, 0)
	pipe.SAdd(ctx, activeChannelsKey, input.CTA.ChannelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save cta: %w", err)
	}

	return nil
}

// GetCTAByChannel retrieves the active CTA for a channel from Redis
func (r *redisRepository) GetCTAByChannel(ctx context.Context, input *GetCTAByChannelInput) (*models.CTA, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	ctaKey := fmt.Sprintf("%s%s", ctaKeyPrefix, input.ChannelID)
	ctaJSON, err := r.client.Get(ctx, ctaKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCTANotFound
		}
		return nil, fmt.Errorf("failed to get cta: %w", err)
	}

	var window models.CTA
	if err := json.Unmarshal([]byte(ctaJSON), &window); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cta: %w", err)
	}

	return &window, nil
}

// DeleteCTA removes the active CTA for a channel from Redis
func (r *redisRepository) DeleteCTA(ctx context.Context, input *DeleteCTAInput) error {
	if input == nil || input.ChannelID == "" {
		return errors.New("input and channel ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	ctaKey := fmt.Sprintf("%s%s", ctaKeyPrefix, input.ChannelID)
	pipe.Del(ctx, ctaKey)
	pipe.SRem(ctx, activeChannelsKey, input.ChannelID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete cta: %w", err)
	}

	return nil
}

// GetActiveCTAs retrieves all active CTA windows from Redis
func (r *redisRepository) GetActiveCTAs(ctx context.Context, input *GetActiveCTAsInput) (*GetActiveCTAsOutput, error) {
	channelIDs, err := r.client.SMembers(ctx, activeChannelsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active channel IDs: %w", err)
	}

	if len(channelIDs) == 0 {
		return &GetActiveCTAsOutput{
			CTAs: []*models.CTA{},
		}, nil
	}

	pipe := r.client.Pipeline()
	ctaCommands := make(map[string]*redis.StringCmd)

	for _, channelID := range channelIDs {
		ctaKey := fmt.Sprintf("%s%s", ctaKeyPrefix, channelID)
		ctaCommands[channelID] = pipe.Get(ctx, ctaKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get active ctas: %w", err)
	}

	windows := make([]*models.CTA, 0, len(channelIDs))
	for channelID, cmd := range ctaCommands {
		ctaJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Window was closed between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get cta for channel %s: %w", channelID, err)
		}

		var window models.CTA
		if err := json.Unmarshal([]byte(ctaJSON), &window); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cta for channel %s: %w", channelID, err)
		}

		windows = append(windows, &window)
	}

	return &GetActiveCTAsOutput{
		CTAs: windows,
	}, nil
}

// AppendHistory appends a closed-window snapshot to the history log
func (r *redisRepository) AppendHistory(ctx context.Context, input *AppendHistoryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if err := r.client.RPush(ctx, historyKey, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// GetHistory retrieves the full closed-window history log
func (r *redisRepository) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	entryJSONs, err := r.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	entries := make([]*models.CTAHistoryEntry, 0, len(entryJSONs))
	for i, entryJSON := range entryJSONs {
		var entry models.CTAHistoryEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry %d: %w", i, err)
		}
		entries = append(entries, &entry)
	}

	return &GetHistoryOutput{
		Entries: entries,
	}, nil
}
