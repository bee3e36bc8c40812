package lifecycle

import "github.com/KirkDiggler/rpsls/internal/models"

// Event is something that happened to a session
type Event string

const (
	// EventPlayerJoined is a join that leaves a seat open
	EventPlayerJoined Event = "player_joined"

	// EventSeatsFilled is the join that takes the last seat
	EventSeatsFilled Event = "seats_filled"

	// EventChoiceRecorded is a choice that leaves another player undecided
	EventChoiceRecorded Event = "choice_recorded"

	// EventChoicesComplete is the choice that completes the table
	EventChoicesComplete Event = "choices_complete"

	// EventFinalized is the round being resolved
	EventFinalized Event = "finalized"
)

// transition is a single allowed edge in the session state machine
type transition struct {
	from  models.SessionState
	event Event
	to    models.SessionState
}

var transitionsTable = []transition{
	{from: models.SessionStateWaitingForPlayers, event: EventPlayerJoined, to: models.SessionStateWaitingForPlayers},
	{from: models.SessionStateWaitingForPlayers, event: EventSeatsFilled, to: models.SessionStateChoicesSubmitted},
	{from: models.SessionStateChoicesSubmitted, event: EventChoiceRecorded, to: models.SessionStateChoicesSubmitted},
	{from: models.SessionStateChoicesSubmitted, event: EventChoicesComplete, to: models.SessionStateInProgress},
	{from: models.SessionStateInProgress, event: EventFinalized, to: models.SessionStateCompleted},
}

// Transition returns the state reached by applying event in state, or
// ErrInvalidState if the table has no such edge.
func Transition(state models.SessionState, event Event) (models.SessionState, error) {
	for _, tr := range transitionsTable {
		if tr.from == state && tr.event == event {
			return tr.to, nil
		}
	}
	return state, ErrInvalidState
}

// Accepts reports whether state has any outgoing edge for event
func Accepts(state models.SessionState, event Event) bool {
	_, err := Transition(state, event)
	return err == nil
}

// IsTerminal reports whether no event can leave state
func IsTerminal(state models.SessionState) bool {
	for _, tr := range transitionsTable {
		if tr.from == state {
			return false
		}
	}
	return true
}
