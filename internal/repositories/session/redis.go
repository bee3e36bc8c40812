package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "session:"
	openSessionsKey  = "open_sessions"
)

var (
	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is returned when creating a session whose id is taken
	ErrSessionExists = errors.New("session already exists")

	// ErrConflict is returned when the stored session changed since it was read
	ErrConflict = errors.New("session was modified concurrently")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

func sessionKey(id string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, id)
}

// CreateSession stores a new session at version 1
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	stored := input.Session.Clone()
	stored.Version = 1

	sessionJSON, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	created, err := r.client.SetNX(ctx, sessionKey(stored.ID), sessionJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !created {
		return ErrSessionExists
	}

	if err := r.client.SAdd(ctx, openSessionsKey, stored.ID).Err(); err != nil {
		return fmt.Errorf("failed to index session: %w", err)
	}

	input.Session.Version = stored.Version
	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// SaveSession writes the snapshot with WATCH/MULTI so that a write made
// by anyone else since the snapshot was read fails with ErrConflict
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	key := sessionKey(input.Session.ID)
	next := input.Session.Clone()
	next.Version = input.Session.Version + 1

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		currentJSON, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return ErrSessionNotFound
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		var current models.Session
		if err := json.Unmarshal([]byte(currentJSON), &current); err != nil {
			return fmt.Errorf("failed to unmarshal session: %w", err)
		}

		if current.Version != input.Session.Version {
			return ErrConflict
		}

		nextJSON, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, nextJSON, 0)

			// Completed sessions drop out of the open index
			if next.State == models.SessionStateCompleted {
				pipe.SRem(ctx, openSessionsKey, next.ID)
			} else {
				pipe.SAdd(ctx, openSessionsKey, next.ID)
			}
			return nil
		})
		return err
	}, key)

	if err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrConflict
		}
		if errors.Is(err, ErrConflict) || errors.Is(err, ErrSessionNotFound) {
			return err
		}
		return fmt.Errorf("failed to save session: %w", err)
	}

	input.Session.Version = next.Version
	return nil
}

// GetOpenSessions retrieves all sessions that have not completed
func (r *redisRepository) GetOpenSessions(ctx context.Context, input *GetOpenSessionsInput) (*GetOpenSessionsOutput, error) {
	ids, err := r.client.SMembers(ctx, openSessionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get open session IDs: %w", err)
	}

	if len(ids) == 0 {
		return &GetOpenSessionsOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	// Get all session records using a pipeline
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(ids))
	for _, id := range ids {
		commands = append(commands, pipe.Get(ctx, sessionKey(id)))
	}

	// redis.Nil from a single command is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get open sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(ids))
	for i, cmd := range commands {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", ids[i], err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", ids[i], err)
		}

		sessions = append(sessions, &session)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return &GetOpenSessionsOutput{
		Sessions: sessions,
	}, nil
}
