package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/rpsls/internal/lifecycle"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/rules"
	"github.com/KirkDiggler/rpsls/internal/services/game"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetJoinSessionMessage returns a message for when a player joins a session
func (s *service) GetJoinSessionMessage(ctx context.Context, input *GetJoinSessionMessageInput) (*GetJoinSessionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	if tone == ToneNeutral {
		if input.State == models.SessionStateWaitingForPlayers {
			return &GetJoinSessionMessageOutput{
				Message: fmt.Sprintf("%s joined session %s. Waiting for an opponent.", input.PlayerName, input.SessionID),
				Tone:    tone,
			}, nil
		}
		return &GetJoinSessionMessageOutput{
			Message: fmt.Sprintf("%s joined session %s. Both players can choose now.", input.PlayerName, input.SessionID),
			Tone:    tone,
		}, nil
	}

	var messages []string
	if input.State == models.SessionStateWaitingForPlayers {
		messages = []string{
			fmt.Sprintf("%s takes a seat and cracks their knuckles. Share session `%s` with a worthy opponent.", input.PlayerName, input.SessionID),
			fmt.Sprintf("%s is ready to rumble! Someone join `%s` before they get bored.", input.PlayerName, input.SessionID),
			fmt.Sprintf("%s has entered the arena. Session `%s` needs one more challenger.", input.PlayerName, input.SessionID),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s accepts the challenge! Choose wisely, both of you.", input.PlayerName),
			fmt.Sprintf("A challenger appears: %s! Rock, paper, scissors, lizard or Spock?", input.PlayerName),
			fmt.Sprintf("%s is in. Remember: Spock smashes scissors. Choose your weapon.", input.PlayerName),
		}
	}

	return &GetJoinSessionMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetSessionStatusMessage returns a message describing where a session is
func (s *service) GetSessionStatusMessage(ctx context.Context, input *GetSessionStatusMessageInput) (*GetSessionStatusMessageOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	session := input.Session
	var message string

	switch session.State {
	case models.SessionStateWaitingForPlayers:
		message = fmt.Sprintf("Waiting for players (%d/%d joined).", len(session.Players), models.MaxPlayers)
	case models.SessionStateChoicesSubmitted:
		chosen := 0
		for _, p := range session.Players {
			if p.HasChoice() {
				chosen++
			}
		}
		message = fmt.Sprintf("Waiting for choices (%d/%d chosen).", chosen, models.MaxPlayers)
	case models.SessionStateInProgress:
		message = "Both players have chosen. Resolving the round."
	case models.SessionStateCompleted:
		result := session.LastResult()
		switch {
		case result == nil:
			message = "This session is over."
		case result.IsTie():
			message = fmt.Sprintf("It's a tie! Both played %s.", result.Player1Choice)
		default:
			message = fmt.Sprintf("%s won this session.", result.WinnerName)
		}
	default:
		message = "Rock, paper, scissors, lizard, Spock in progress. May the odds be in your favor!"
	}

	return &GetSessionStatusMessageOutput{
		Message: message,
	}, nil
}

// GetRoundResultMessage returns a message for a resolved round
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	opponent := input.OpponentName
	if opponent == "" {
		opponent = "The computer"
	}

	switch input.Outcome {
	case rules.OutcomeFirstWins:
		titles := []string{"Victory!", "Winner winner!", "Flawless!"}
		return &GetRoundResultMessageOutput{
			Title:   s.pick(titles),
			Message: fmt.Sprintf("%s. %s beats %s.", rules.Describe(input.PlayerChoice, input.OpponentChoice), input.PlayerName, opponent),
		}, nil
	case rules.OutcomeSecondWins:
		titles := []string{"Defeat", "Better luck next time", "Ouch"}
		return &GetRoundResultMessageOutput{
			Title:   s.pick(titles),
			Message: fmt.Sprintf("%s. %s beats %s.", rules.Describe(input.OpponentChoice, input.PlayerChoice), opponent, input.PlayerName),
		}, nil
	default:
		titles := []string{"It's a tie", "Great minds think alike", "Stalemate"}
		return &GetRoundResultMessageOutput{
			Title:   s.pick(titles),
			Message: fmt.Sprintf("%s and %s both played %s.", input.PlayerName, opponent, input.PlayerChoice),
		}, nil
	}
}

// GetErrorMessage returns a user-friendly message for a game error
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	err := input.Err
	switch {
	case errors.Is(err, models.ErrInvalidChoice):
		return &GetErrorMessageOutput{
			Title:   "Invalid Choice",
			Message: "Pick one of Rock, Paper, Scissors, Lizard or Spock.",
		}, nil
	case errors.Is(err, lifecycle.ErrInvalidPlayerName):
		return &GetErrorMessageOutput{
			Title:   "Invalid Name",
			Message: fmt.Sprintf("Player names can't be empty or %q.", models.NoWinner),
		}, nil
	case errors.Is(err, lifecycle.ErrDuplicatePlayer):
		return &GetErrorMessageOutput{
			Title:   "Can't Join",
			Message: "That session is full or you're already in it.",
		}, nil
	case errors.Is(err, lifecycle.ErrInvalidState):
		return &GetErrorMessageOutput{
			Title:   "Not Now",
			Message: "The session isn't accepting that right now. Check its status and try again.",
		}, nil
	case errors.Is(err, lifecycle.ErrPlayerNotFound):
		return &GetErrorMessageOutput{
			Title:   "Not In Session",
			Message: "Join the session before choosing.",
		}, nil
	case errors.Is(err, game.ErrSessionNotFound):
		return &GetErrorMessageOutput{
			Title:   "Session Not Found",
			Message: "No session with that id. Create one with the create command.",
		}, nil
	case errors.Is(err, game.ErrConflict):
		return &GetErrorMessageOutput{
			Title:   "Busy",
			Message: "Lots happening in that session. Please try again.",
		}, nil
	case errors.Is(err, game.ErrUnavailable):
		return &GetErrorMessageOutput{
			Title:   "No Opponent",
			Message: "The computer couldn't make up its mind. Try again in a moment.",
		}, nil
	case errors.Is(err, game.ErrPlayerNotFound):
		return &GetErrorMessageOutput{
			Title:   "No Record",
			Message: "That player hasn't finished any sessions yet.",
		}, nil
	default:
		return &GetErrorMessageOutput{
			Title:   "Error",
			Message: "Something went wrong. Please try again.",
		}, nil
	}
}
