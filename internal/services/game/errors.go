package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrValidation       GameError = "invalid request"
	ErrSessionNotFound  GameError = "session not found"
	ErrPlayerNotFound   GameError = "player has no recorded sessions"
	ErrConflict         GameError = "session was modified concurrently, try again"
	ErrUnavailable      GameError = "random source unavailable"
	ErrCanceled         GameError = "request canceled"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilResultRepo    GameError = "result repository cannot be nil"
	ErrNilPlayerRepo    GameError = "player repository cannot be nil"
	ErrNilRandomSource  GameError = "random source cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
