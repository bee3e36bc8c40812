package lifecycle

// LifecycleError is a custom error type for session lifecycle errors
type LifecycleError string

// Error implements the error interface
func (e LifecycleError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidState      LifecycleError = "operation not allowed in the current session state"
	ErrDuplicatePlayer   LifecycleError = "session already has two players or the player is already in the session"
	ErrPlayerNotFound    LifecycleError = "player not found in the session"
	ErrInvalidPlayerName LifecycleError = "player name is empty or reserved"
	ErrNilSession        LifecycleError = "session cannot be nil"
)
