package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rpsls/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/rpsls/internal/models"
)

// Repository defines the interface for per-player statistics
type Repository interface {
	// RecordOutcome adds one finalized session to the players' records
	RecordOutcome(ctx context.Context, input *RecordOutcomeInput) error

	// GetPlayerStats retrieves a player's record by name
	GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*models.PlayerStats, error)

	// GetLeaderboard retrieves player records ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
