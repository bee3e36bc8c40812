package models

// PlayerStats represents a player's record across finalized sessions
type PlayerStats struct {
	// PlayerName is the name the player joined sessions with
	PlayerName string `json:"player_name"`

	// Wins is the number of sessions the player won
	Wins int64 `json:"wins"`

	// Losses is the number of sessions the player lost
	Losses int64 `json:"losses"`

	// Ties is the number of sessions that ended without a winner
	Ties int64 `json:"ties"`
}

// Played returns the total number of finalized sessions
func (p *PlayerStats) Played() int64 {
	return p.Wins + p.Losses + p.Ties
}

// Leaderboard is a ranked list of player records
type Leaderboard struct {
	// Entries are ordered by wins, most first
	Entries []*PlayerStats `json:"entries"`
}
