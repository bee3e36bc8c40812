package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "result:"
	resultsIndexKey = "results"
)

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
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

// AppendResult stores the result and indexes it by result date
func (r *redisRepository) AppendResult(ctx context.Context, input *AppendResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	record := input.Result

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	// Both writes are no-ops when the id is already recorded
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, resultKeyPrefix+record.ID, recordJSON, 0)
		pipe.ZAddNX(ctx, resultsIndexKey, redis.Z{
			Score:  float64(record.ResultDate.UnixMicro()),
			Member: record.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}

	return nil
}

// ListRecent retrieves the newest results from the date index
func (r *redisRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	ids, err := r.client.ZRevRange(ctx, resultsIndexKey, 0, int64(input.limit()-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get result IDs: %w", err)
	}

	// If there are no results, return an empty slice
	if len(ids) == 0 {
		return &ListRecentOutput{
			Results: []*models.MatchResult{},
		}, nil
	}

	// Get all result records using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		commands = append(commands, pipe.Get(ctx, resultKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}

	results := make([]*models.MatchResult, 0, len(ids))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Result was cleared between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get result %s: %w", ids[i], err)
		}

		var record models.MatchResult
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", ids[i], err)
		}

		results = append(results, &record)
	}

	return &ListRecentOutput{
		Results: results,
	}, nil
}

// Clear deletes every result and the date index
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	ids, err := r.client.ZRange(ctx, resultsIndexKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get result IDs: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, resultKeyPrefix+id)
	}
	pipe.Del(ctx, resultsIndexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}

	return nil
}
