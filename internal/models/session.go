package models

import (
	"time"
)

// SessionState represents where a match session is in its lifecycle
type SessionState string

const (
	// SessionStateWaitingForPlayers indicates fewer than two players have joined
	SessionStateWaitingForPlayers SessionState = "waiting_for_players"

	// SessionStateChoicesSubmitted indicates both seats are filled and choices are pending
	SessionStateChoicesSubmitted SessionState = "choices_submitted"

	// SessionStateInProgress indicates both players have chosen and the round can be finalized
	SessionStateInProgress SessionState = "in_progress"

	// SessionStateCompleted indicates the round has been finalized
	SessionStateCompleted SessionState = "completed"
)

// MaxPlayers is the number of seats in a session
const MaxPlayers = 2

// Session is the shared state of one two-player match
type Session struct {
	// ID is the opaque identifier of the session
	ID string `json:"id"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updated_at"`

	// Players holds at most two seats in join order
	Players []*Player `json:"players"`

	// State is only changed by the lifecycle transition rules
	State SessionState `json:"state"`

	// Results holds the match result once the session is finalized
	Results []*MatchResult `json:"results,omitempty"`

	// Version is the optimistic concurrency token maintained by the repository
	Version int64 `json:"version"`
}

// NewSession creates a session waiting for its first player
func NewSession(id string, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
		Players:   []*Player{},
		State:     SessionStateWaitingForPlayers,
	}
}

// FindPlayer returns the named player or nil
func (s *Session) FindPlayer(name string) *Player {
	for _, p := range s.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// AllChosen reports whether every seat is filled and every player has chosen
func (s *Session) AllChosen() bool {
	if len(s.Players) != MaxPlayers {
		return false
	}
	for _, p := range s.Players {
		if !p.HasChoice() {
			return false
		}
	}
	return true
}

// LastResult returns the most recent match result or nil
func (s *Session) LastResult() *MatchResult {
	if len(s.Results) == 0 {
		return nil
	}
	return s.Results[len(s.Results)-1]
}

// Clone returns a deep copy so callers can mutate a snapshot without
// touching the original
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}

	clone := *s
	clone.Players = make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		clone.Players = append(clone.Players, p.Clone())
	}

	if s.Results != nil {
		clone.Results = make([]*MatchResult, 0, len(s.Results))
		for _, r := range s.Results {
			result := *r
			clone.Results = append(clone.Results, &result)
		}
	}

	return &clone
}
