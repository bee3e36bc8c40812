// Package lifecycle implements the match session state machine. Every
// operation works on an in-memory snapshot and either applies completely or
// leaves the snapshot untouched. Operations are not safe for concurrent use
// on the same session; callers serialize them per session id.
package lifecycle

import (
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/rules"
)

// Join seats a new player in the session
func Join(session *models.Session, playerName string) (*models.Player, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if session.State != models.SessionStateWaitingForPlayers {
		return nil, ErrInvalidState
	}

	if playerName == "" || playerName == models.NoWinner {
		return nil, ErrInvalidPlayerName
	}

	if len(session.Players) >= models.MaxPlayers || session.FindPlayer(playerName) != nil {
		return nil, ErrDuplicatePlayer
	}

	event := EventPlayerJoined
	if len(session.Players)+1 == models.MaxPlayers {
		event = EventSeatsFilled
	}

	next, err := Transition(session.State, event)
	if err != nil {
		return nil, err
	}

	player := &models.Player{Name: playerName}
	session.Players = append(session.Players, player)
	session.State = next

	return player, nil
}

// SubmitChoice records the named player's choice. The choice must already
// have been validated by the caller.
func SubmitChoice(session *models.Session, playerName string, choice models.Choice) (*models.Player, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if session.State != models.SessionStateChoicesSubmitted {
		return nil, ErrInvalidState
	}

	player := session.FindPlayer(playerName)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	complete := len(session.Players) == models.MaxPlayers
	for _, p := range session.Players {
		if p != player && !p.HasChoice() {
			complete = false
		}
	}

	event := EventChoiceRecorded
	if complete {
		event = EventChoicesComplete
	}

	next, err := Transition(session.State, event)
	if err != nil {
		return nil, err
	}

	player.Choice = choice.Ptr()
	session.State = next

	return player, nil
}

// Finalize resolves the round and records its result on the session. The
// id and timestamp of the result come from the caller.
func Finalize(session *models.Session, resultID string, at time.Time) (*models.MatchResult, error) {
	if session == nil {
		return nil, ErrNilSession
	}

	if session.State != models.SessionStateInProgress {
		return nil, ErrInvalidState
	}

	if !session.AllChosen() {
		return nil, ErrInvalidState
	}

	first, second := session.Players[0], session.Players[1]
	outcome, err := rules.Resolve(*first.Choice, *second.Choice)
	if err != nil {
		return nil, err
	}

	next, err := Transition(session.State, EventFinalized)
	if err != nil {
		return nil, err
	}

	winner := models.NoWinner
	switch outcome {
	case rules.OutcomeFirstWins:
		winner = first.Name
	case rules.OutcomeSecondWins:
		winner = second.Name
	}

	result := &models.MatchResult{
		ID:            resultID,
		SessionID:     session.ID,
		WinnerName:    winner,
		ResultDate:    at,
		Player1Choice: *first.Choice,
		Player2Choice: *second.Choice,
	}

	session.Results = append(session.Results, result)
	session.State = next

	return result, nil
}

// CanSubmitChoices reports whether SubmitChoice is allowed
func CanSubmitChoices(session *models.Session) bool {
	return session != nil && session.State == models.SessionStateChoicesSubmitted
}

// IsReadyToFinalize reports whether Finalize is allowed
func IsReadyToFinalize(session *models.Session) bool {
	return session != nil && session.State == models.SessionStateInProgress && session.AllChosen()
}
