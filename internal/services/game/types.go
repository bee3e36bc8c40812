package game

import (
	"log/slog"

	"github.com/KirkDiggler/rpsls/internal/common/clock"
	"github.com/KirkDiggler/rpsls/internal/common/uuid"
	"github.com/KirkDiggler/rpsls/internal/metrics"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/random"
	playerRepo "github.com/KirkDiggler/rpsls/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/rpsls/internal/repositories/result"
	sessionRepo "github.com/KirkDiggler/rpsls/internal/repositories/session"
	"github.com/KirkDiggler/rpsls/internal/rules"
)

const (
	// DefaultMaxConflictRetries is how many times a conflicting save is re-applied
	DefaultMaxConflictRetries = 3

	// DefaultScoreboardLimit is the number of results on the scoreboard
	DefaultScoreboardLimit = 10
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	ResultRepo  resultRepo.Repository
	PlayerRepo  playerRepo.Repository

	// Service dependencies
	RandomSource  random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Metrics is optional
	Metrics *metrics.Metrics

	// MaxConflictRetries defaults to DefaultMaxConflictRetries when nil; zero
	// or negative disables retries
	MaxConflictRetries *int

	// ScoreboardLimit defaults to DefaultScoreboardLimit
	ScoreboardLimit int
}

// GetChoicesInput contains parameters for listing choices
type GetChoicesInput struct {
}

// GetChoicesOutput contains the five choices in id order
type GetChoicesOutput struct {
	Choices []models.Choice
}

// GetRandomChoiceInput contains parameters for drawing a choice
type GetRandomChoiceInput struct {
}

// GetRandomChoiceOutput contains the drawn choice
type GetRandomChoiceOutput struct {
	Choice models.Choice
}

// PlayRoundInput contains the player's choice for a single player round
type PlayRoundInput struct {
	Choice models.Choice
}

// PlayRoundOutput contains the result of a single player round
type PlayRoundOutput struct {
	// Outcome is from the player's point of view
	Outcome rules.Outcome

	// Result is win, lose or tie
	Result string

	PlayerChoice   models.Choice
	ComputerChoice models.Choice

	// Summary describes the round, e.g. "Rock crushes Scissors"
	Summary string
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
}

// CreateSessionOutput contains the new session
type CreateSessionOutput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the session snapshot
type GetSessionOutput struct {
	Session *models.Session
}

// ListOpenSessionsInput contains parameters for listing open sessions
type ListOpenSessionsInput struct {
}

// ListOpenSessionsOutput contains sessions that have not completed, oldest first
type ListOpenSessionsOutput struct {
	Sessions []*models.Session
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	SessionID  string
	PlayerName string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	Session *models.Session
	Player  *models.Player
}

// SubmitChoiceInput contains parameters for submitting a choice
type SubmitChoiceInput struct {
	SessionID  string
	PlayerName string
	Choice     models.Choice
}

// SubmitChoiceOutput contains the result of submitting a choice
type SubmitChoiceOutput struct {
	Session *models.Session

	// Result is set when this submission completed the session
	Result *models.MatchResult
}

// PlayMultiplayerInput contains parameters for the combined join/submit operation
type PlayMultiplayerInput struct {
	SessionID  string
	PlayerName string

	// Choice nil means join
	Choice *models.Choice
}

// PlayMultiplayerOutput contains the session and, once completed, its result
type PlayMultiplayerOutput struct {
	Session *models.Session
	State   models.SessionState

	// Result is set when the session has completed
	Result *models.MatchResult

	// WinnerName is the winner or models.NoWinner when completed
	WinnerName string

	// Outcome is win or tie when completed
	Outcome string
}

// GetScoreboardInput contains parameters for the scoreboard
type GetScoreboardInput struct {
	// Limit defaults to the configured scoreboard limit
	Limit int
}

// GetScoreboardOutput contains recent results, newest first
type GetScoreboardOutput struct {
	Results []*models.MatchResult
}

// ResetScoreboardInput contains parameters for clearing the scoreboard
type ResetScoreboardInput struct {
}

// ResetScoreboardOutput contains the result of clearing the scoreboard
type ResetScoreboardOutput struct {
}

// GetLeaderboardInput contains parameters for the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries, all players when zero
	Limit int
}

// GetLeaderboardOutput contains the ranked player records
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}

// GetPlayerStatsInput contains parameters for a player's record
type GetPlayerStatsInput struct {
	PlayerName string
}

// GetPlayerStatsOutput contains a player's record
type GetPlayerStatsOutput struct {
	Stats *models.PlayerStats
}
