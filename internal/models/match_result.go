package models

import (
	"time"
)

// NoWinner is the winner name recorded for a tie
const NoWinner = "None"

// MatchResult is the immutable outcome of a finalized session
type MatchResult struct {
	// ID is the unique identifier for the result
	ID string `json:"id"`

	// SessionID references the session the result came from
	SessionID string `json:"session_id"`

	// WinnerName is the winning player's name or NoWinner on a tie
	WinnerName string `json:"winner_name"`

	// ResultDate is when the session was finalized
	ResultDate time.Time `json:"result_date"`

	// Player1Choice is the choice of the player in the first seat
	Player1Choice Choice `json:"player1_choice"`

	// Player2Choice is the choice of the player in the second seat
	Player2Choice Choice `json:"player2_choice"`
}

// IsTie reports whether the match ended without a winner
func (r *MatchResult) IsTie() bool {
	return r.WinnerName == NoWinner
}
