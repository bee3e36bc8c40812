package messaging

import (
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/rules"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"
)

// GetJoinSessionMessageInput contains parameters for getting a join message
type GetJoinSessionMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// State is the session state after the join
	State models.SessionState

	// SessionID is shown so the opponent can join
	SessionID string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetJoinSessionMessageOutput contains the join message
type GetJoinSessionMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetSessionStatusMessageInput is the input for GetSessionStatusMessage
type GetSessionStatusMessageInput struct {
	Session *models.Session
}

// GetSessionStatusMessageOutput is the output for GetSessionStatusMessage
type GetSessionStatusMessageOutput struct {
	Message string
}

// GetRoundResultMessageInput contains a resolved round from one player's side
type GetRoundResultMessageInput struct {
	PlayerName     string
	PlayerChoice   models.Choice
	OpponentName   string
	OpponentChoice models.Choice

	// Outcome is from the player's point of view
	Outcome rules.Outcome
}

// GetRoundResultMessageOutput contains the output for GetRoundResultMessage
type GetRoundResultMessageOutput struct {
	Title   string
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable in tests
	Seed int64
}
