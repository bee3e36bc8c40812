package player

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerStatsKeyPrefix = "player_stats:"
	leaderboardKey       = "leaderboard"

	fieldWins   = "wins"
	fieldLosses = "losses"
	fieldTies   = "ties"
)

// ErrPlayerNotFound is returned when a player has no recorded sessions
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

func statsKey(name string) string {
	return fmt.Sprintf("%s%s", playerStatsKeyPrefix, name)
}

// RecordOutcome increments the players' counters and the leaderboard
func (r *redisRepository) RecordOutcome(ctx context.Context, input *RecordOutcomeInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pipe := r.client.TxPipeline()

	if input.Tie {
		if len(input.Players) == 0 {
			return errors.New("a tie needs the players that tied")
		}
		for _, name := range input.Players {
			pipe.HIncrBy(ctx, statsKey(name), fieldTies, 1)
			pipe.ZIncrBy(ctx, leaderboardKey, 0, name)
		}
	} else {
		if input.Winner == "" || input.Loser == "" {
			return errors.New("winner and loser cannot be empty")
		}
		pipe.HIncrBy(ctx, statsKey(input.Winner), fieldWins, 1)
		pipe.ZIncrBy(ctx, leaderboardKey, 1, input.Winner)

		pipe.HIncrBy(ctx, statsKey(input.Loser), fieldLosses, 1)
		pipe.ZIncrBy(ctx, leaderboardKey, 0, input.Loser)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record outcome: %w", err)
	}

	return nil
}

// GetPlayerStats retrieves a player's record
func (r *redisRepository) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and player name cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, statsKey(input.Name)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return statsFromHash(input.Name, fields)
}

// GetLeaderboard retrieves every ranked player and orders them by wins,
// then fewest losses, then name
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	names, err := r.client.ZRevRange(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.MapStringStringCmd, 0, len(names))
	for _, name := range names {
		commands = append(commands, pipe.HGetAll(ctx, statsKey(name)))
	}

	if len(commands) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to get player stats: %w", err)
		}
	}

	entries := make([]*models.PlayerStats, 0, len(names))
	for i, cmd := range commands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for %s: %w", names[i], err)
		}
		stats, err := statsFromHash(names[i], fields)
		if err != nil {
			return nil, err
		}
		entries = append(entries, stats)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Wins != entries[j].Wins {
			return entries[i].Wins > entries[j].Wins
		}
		if entries[i].Losses != entries[j].Losses {
			return entries[i].Losses < entries[j].Losses
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	if input != nil && input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			Entries: entries,
		},
	}, nil
}

func statsFromHash(name string, fields map[string]string) (*models.PlayerStats, error) {
	stats := &models.PlayerStats{PlayerName: name}

	counters := map[string]*int64{
		fieldWins:   &stats.Wins,
		fieldLosses: &stats.Losses,
		fieldTies:   &stats.Ties,
	}
	for field, dst := range counters {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s counter for %s: %w", field, name, err)
		}
		*dst = value
	}

	return stats, nil
}
