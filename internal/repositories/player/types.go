package player

import "github.com/KirkDiggler/rpsls/internal/models"

// RecordOutcomeInput contains the outcome of one finalized session
type RecordOutcomeInput struct {
	// Winner and Loser are empty when Tie is set
	Winner string
	Loser  string

	// Tie marks a session that ended without a winner
	Tie bool

	// Players are both seats, used to record a tie
	Players []string
}

// GetPlayerStatsInput contains parameters for retrieving a player's record
type GetPlayerStatsInput struct {
	Name string
}

// GetLeaderboardInput contains parameters for retrieving the leaderboard
type GetLeaderboardInput struct {
	// Limit caps the number of entries, all players when zero
	Limit int
}

// GetLeaderboardOutput contains the ranked player records
type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}
