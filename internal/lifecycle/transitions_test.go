package lifecycle

import (
	"testing"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/stretchr/testify/assert"
)

var allStates = []models.SessionState{
	models.SessionStateWaitingForPlayers,
	models.SessionStateChoicesSubmitted,
	models.SessionStateInProgress,
	models.SessionStateCompleted,
}

var allEvents = []Event{
	EventPlayerJoined,
	EventSeatsFilled,
	EventChoiceRecorded,
	EventChoicesComplete,
	EventFinalized,
}

func TestTransition_Table(t *testing.T) {
	allowed := map[models.SessionState]map[Event]models.SessionState{
		models.SessionStateWaitingForPlayers: {
			EventPlayerJoined: models.SessionStateWaitingForPlayers,
			EventSeatsFilled:  models.SessionStateChoicesSubmitted,
		},
		models.SessionStateChoicesSubmitted: {
			EventChoiceRecorded:  models.SessionStateChoicesSubmitted,
			EventChoicesComplete: models.SessionStateInProgress,
		},
		models.SessionStateInProgress: {
			EventFinalized: models.SessionStateCompleted,
		},
	}

	for _, state := range allStates {
		for _, event := range allEvents {
			next, err := Transition(state, event)
			expected, ok := allowed[state][event]
			if ok {
				assert.NoError(t, err, "%s + %s", state, event)
				assert.Equal(t, expected, next, "%s + %s", state, event)
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidState, "%s + %s", state, event)
			assert.Equal(t, state, next, "rejected transitions keep the state")
		}
	}
}

func TestTransition_UnknownState(t *testing.T) {
	_, err := Transition(models.SessionState("bogus"), EventPlayerJoined)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(models.SessionStateCompleted))
	assert.False(t, IsTerminal(models.SessionStateWaitingForPlayers))
	assert.False(t, IsTerminal(models.SessionStateChoicesSubmitted))
	assert.False(t, IsTerminal(models.SessionStateInProgress))
}

func TestAccepts(t *testing.T) {
	assert.True(t, Accepts(models.SessionStateWaitingForPlayers, EventSeatsFilled))
	assert.False(t, Accepts(models.SessionStateCompleted, EventFinalized))
}
