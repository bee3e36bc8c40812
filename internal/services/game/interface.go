package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rpsls/internal/services/game Service

import "context"

// Service defines the interface for game operations
type Service interface {
	// GetChoices lists the five choices in id order
	GetChoices(ctx context.Context, input *GetChoicesInput) (*GetChoicesOutput, error)

	// GetRandomChoice draws one choice from the random source
	GetRandomChoice(ctx context.Context, input *GetRandomChoiceInput) (*GetRandomChoiceOutput, error)

	// PlayRound plays a single player round against a random choice
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)

	// CreateSession opens a new two-player session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the current snapshot of a session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListOpenSessions returns sessions that have not completed
	ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error)

	// JoinSession seats a player in a session
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// SubmitChoice records a player's choice and finalizes the session once both have chosen
	SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error)

	// PlayMultiplayer joins when no choice is given and submits the choice otherwise
	PlayMultiplayer(ctx context.Context, input *PlayMultiplayerInput) (*PlayMultiplayerOutput, error)

	// GetScoreboard returns the most recent match results
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)

	// ResetScoreboard clears the match result log
	ResetScoreboard(ctx context.Context, input *ResetScoreboardInput) (*ResetScoreboardOutput, error)

	// GetLeaderboard returns players ranked by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetPlayerStats returns one player's record
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error)
}
