package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpsls/internal/common/clock"
	"github.com/KirkDiggler/rpsls/internal/common/uuid"
	"github.com/KirkDiggler/rpsls/internal/lifecycle"
	"github.com/KirkDiggler/rpsls/internal/metrics"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/random"
	playerRepo "github.com/KirkDiggler/rpsls/internal/repositories/player"
	resultRepo "github.com/KirkDiggler/rpsls/internal/repositories/result"
	sessionRepo "github.com/KirkDiggler/rpsls/internal/repositories/session"
	"github.com/KirkDiggler/rpsls/internal/rules"
)

const (
	opCreate = "create"
	opJoin   = "join"
	opSubmit = "submit"

	opResultOK       = "ok"
	opResultRejected = "rejected"
	opResultFailed   = "failed"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	resultRepo    resultRepo.Repository
	playerRepo    playerRepo.Repository
	randomSource  random.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	log           *slog.Logger
	metrics       *metrics.Metrics

	maxConflictRetries int
	scoreboardLimit    int

	locks *sessionLocks
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.ResultRepo == nil {
		return nil, ErrNilResultRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.RandomSource == nil {
		return nil, ErrNilRandomSource
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	maxRetries := DefaultMaxConflictRetries
	if cfg.MaxConflictRetries != nil {
		maxRetries = max(*cfg.MaxConflictRetries, 0)
	}

	scoreboardLimit := cfg.ScoreboardLimit
	if scoreboardLimit <= 0 {
		scoreboardLimit = DefaultScoreboardLimit
	}

	return &service{
		sessionRepo:        cfg.SessionRepo,
		resultRepo:         cfg.ResultRepo,
		playerRepo:         cfg.PlayerRepo,
		randomSource:       cfg.RandomSource,
		clock:              cfg.Clock,
		uuidGenerator:      cfg.UUIDGenerator,
		log:                log.With("component", "game"),
		metrics:            cfg.Metrics,
		maxConflictRetries: maxRetries,
		scoreboardLimit:    scoreboardLimit,
		locks:              newSessionLocks(),
	}, nil
}

// GetChoices lists the five choices in id order
func (s *service) GetChoices(ctx context.Context, input *GetChoicesInput) (*GetChoicesOutput, error) {
	return &GetChoicesOutput{
		Choices: models.AllChoices(),
	}, nil
}

// GetRandomChoice draws one choice from the random source
func (s *service) GetRandomChoice(ctx context.Context, input *GetRandomChoiceInput) (*GetRandomChoiceOutput, error) {
	choice, err := s.draw(ctx)
	if err != nil {
		return nil, err
	}

	return &GetRandomChoiceOutput{
		Choice: choice,
	}, nil
}

// PlayRound plays the player's choice against a drawn one. Single player
// rounds are not recorded.
func (s *service) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrValidation)
	}

	if err := models.ValidateChoice(input.Choice); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	computer, err := s.draw(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := rules.Resolve(input.Choice, computer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.metrics.RoundPlayed(metrics.ModeSingle, outcome.Result())

	return &PlayRoundOutput{
		Outcome:        outcome,
		Result:         outcome.Result(),
		PlayerChoice:   input.Choice,
		ComputerChoice: computer,
		Summary:        summarize(input.Choice, computer, outcome),
	}, nil
}

// CreateSession opens a new two-player session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	session := models.NewSession(s.uuidGenerator.NewUUID(), s.clock.Now())

	err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: session,
	})
	if err != nil {
		s.metrics.SessionOp(opCreate, opResultFailed)
		return nil, s.classify(ctx, "failed to create session", err)
	}

	s.metrics.SessionOp(opCreate, opResultOK)
	s.log.Info("session created", "session_id", session.ID)

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// GetSession returns the current snapshot of a session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, s.classify(ctx, "failed to get session", err)
	}

	return &GetSessionOutput{
		Session: session,
	}, nil
}

// ListOpenSessions returns sessions that have not completed
func (s *service) ListOpenSessions(ctx context.Context, input *ListOpenSessionsInput) (*ListOpenSessionsOutput, error) {
	output, err := s.sessionRepo.GetOpenSessions(ctx, &sessionRepo.GetOpenSessionsInput{})
	if err != nil {
		return nil, s.classify(ctx, "failed to list open sessions", err)
	}

	return &ListOpenSessionsOutput{
		Sessions: output.Sessions,
	}, nil
}

// JoinSession seats a player in a session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	var player *models.Player
	session, _, err := s.mutate(ctx, opJoin, input.SessionID, func(session *models.Session) error {
		var err error
		player, err = lifecycle.Join(session, input.PlayerName)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("player joined session",
		"session_id", session.ID,
		"player", player.Name,
		"state", session.State)

	return &JoinSessionOutput{
		Session: session,
		Player:  player,
	}, nil
}

// SubmitChoice records a player's choice and finalizes the session once
// both players have chosen
func (s *service) SubmitChoice(ctx context.Context, input *SubmitChoiceInput) (*SubmitChoiceOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, fmt.Errorf("%w: session ID is required", ErrValidation)
	}

	if err := models.ValidateChoice(input.Choice); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	session, result, err := s.mutate(ctx, opSubmit, input.SessionID, func(session *models.Session) error {
		_, err := lifecycle.SubmitChoice(session, input.PlayerName, input.Choice)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("choice submitted",
		"session_id", session.ID,
		"player", input.PlayerName,
		"state", session.State)

	return &SubmitChoiceOutput{
		Session: session,
		Result:  result,
	}, nil
}

// PlayMultiplayer joins when no choice is given and submits the choice
// otherwise, reporting the winner once the session completes
func (s *service) PlayMultiplayer(ctx context.Context, input *PlayMultiplayerInput) (*PlayMultiplayerOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", ErrValidation)
	}

	var session *models.Session
	if input.Choice == nil {
		joined, err := s.JoinSession(ctx, &JoinSessionInput{
			SessionID:  input.SessionID,
			PlayerName: input.PlayerName,
		})
		if err != nil {
			return nil, err
		}
		session = joined.Session
	} else {
		submitted, err := s.SubmitChoice(ctx, &SubmitChoiceInput{
			SessionID:  input.SessionID,
			PlayerName: input.PlayerName,
			Choice:     *input.Choice,
		})
		if err != nil {
			return nil, err
		}
		session = submitted.Session
	}

	output := &PlayMultiplayerOutput{
		Session: session,
		State:   session.State,
	}

	if result := session.LastResult(); result != nil && session.State == models.SessionStateCompleted {
		output.Result = result
		output.WinnerName = result.WinnerName
		output.Outcome = rules.ResultWin
		if result.IsTie() {
			output.Outcome = rules.ResultTie
		}
	}

	return output, nil
}

// GetScoreboard returns the most recent match results
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	limit := s.scoreboardLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	output, err := s.resultRepo.ListRecent(ctx, &resultRepo.ListRecentInput{
		Limit: limit,
	})
	if err != nil {
		return nil, s.classify(ctx, "failed to get scoreboard", err)
	}

	return &GetScoreboardOutput{
		Results: output.Results,
	}, nil
}

// ResetScoreboard clears the match result log. Player statistics are kept.
func (s *service) ResetScoreboard(ctx context.Context, input *ResetScoreboardInput) (*ResetScoreboardOutput, error) {
	if err := s.resultRepo.Clear(ctx, &resultRepo.ClearInput{}); err != nil {
		return nil, s.classify(ctx, "failed to reset scoreboard", err)
	}

	s.log.Info("scoreboard reset")

	return &ResetScoreboardOutput{}, nil
}

// GetLeaderboard returns players ranked by wins
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	limit := 0
	if input != nil {
		limit = input.Limit
	}

	output, err := s.playerRepo.GetLeaderboard(ctx, &playerRepo.GetLeaderboardInput{
		Limit: limit,
	})
	if err != nil {
		return nil, s.classify(ctx, "failed to get leaderboard", err)
	}

	return &GetLeaderboardOutput{
		Leaderboard: output.Leaderboard,
	}, nil
}

// GetPlayerStats returns one player's record
func (s *service) GetPlayerStats(ctx context.Context, input *GetPlayerStatsInput) (*GetPlayerStatsOutput, error) {
	if input == nil || input.PlayerName == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrValidation)
	}

	stats, err := s.playerRepo.GetPlayerStats(ctx, &playerRepo.GetPlayerStatsInput{
		Name: input.PlayerName,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, input.PlayerName)
		}
		return nil, s.classify(ctx, "failed to get player stats", err)
	}

	return &GetPlayerStatsOutput{
		Stats: stats,
	}, nil
}

// mutate loads the session, applies fn to a private copy, finalizes the
// round when fn completed the table and saves with the loaded version. A
// conflicting save is retried from a fresh load. The returned result is
// set only when this call finalized the session.
func (s *service) mutate(ctx context.Context, op, sessionID string, fn func(*models.Session) error) (*models.Session, *models.MatchResult, error) {
	unlock, err := s.locks.lock(ctx, sessionID)
	if err != nil {
		s.metrics.SessionOp(op, opResultFailed)
		return nil, nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	defer unlock()

	for attempt := 0; ; attempt++ {
		stored, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
			SessionID: sessionID,
		})
		if err != nil {
			s.metrics.SessionOp(op, opResultFailed)
			return nil, nil, s.classify(ctx, "failed to load session", err)
		}

		session := stored.Clone()
		if err := fn(session); err != nil {
			s.metrics.SessionOp(op, opResultRejected)
			return nil, nil, s.classifyLifecycle(err)
		}

		var result *models.MatchResult
		if lifecycle.IsReadyToFinalize(session) {
			result, err = lifecycle.Finalize(session, s.uuidGenerator.NewUUID(), s.clock.Now())
			if err != nil {
				s.metrics.SessionOp(op, opResultRejected)
				return nil, nil, s.classifyLifecycle(err)
			}
		}

		// Nothing has been written yet, so the snapshot is simply dropped
		if err := ctx.Err(); err != nil {
			s.metrics.SessionOp(op, opResultFailed)
			return nil, nil, fmt.Errorf("%w: %w", ErrCanceled, err)
		}

		session.UpdatedAt = s.clock.Now()
		err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session: session,
		})
		if err == nil {
			s.metrics.SessionOp(op, opResultOK)
			if result != nil {
				s.recordResult(ctx, session, result)
			}
			return session, result, nil
		}

		if errors.Is(err, sessionRepo.ErrConflict) && attempt < s.maxConflictRetries {
			s.metrics.ConflictRetry()
			s.log.Warn("session save conflicted, retrying",
				"session_id", sessionID,
				"op", op,
				"attempt", attempt+1)
			continue
		}

		s.metrics.SessionOp(op, opResultFailed)
		return nil, nil, s.classify(ctx, "failed to save session", err)
	}
}

// recordResult appends a committed result to the log and the players'
// records. The session already holds the result, so failures are logged
// rather than returned.
func (s *service) recordResult(ctx context.Context, session *models.Session, result *models.MatchResult) {
	ctx = context.WithoutCancel(ctx)

	outcome := rules.ResultWin
	if result.IsTie() {
		outcome = rules.ResultTie
	}
	s.metrics.RoundPlayed(metrics.ModeMulti, outcome)

	s.log.Info("session finalized",
		"session_id", session.ID,
		"result_id", result.ID,
		"winner", result.WinnerName)

	err := s.resultRepo.AppendResult(ctx, &resultRepo.AppendResultInput{
		Result: result,
	})
	if err != nil {
		s.metrics.RecordFailure(metrics.StoreResults)
		s.log.Error("failed to append match result",
			"session_id", session.ID,
			"result_id", result.ID,
			"error", err)
	}

	stats := &playerRepo.RecordOutcomeInput{
		Tie: result.IsTie(),
	}
	for _, p := range session.Players {
		stats.Players = append(stats.Players, p.Name)
		if result.IsTie() {
			continue
		}
		if p.Name == result.WinnerName {
			stats.Winner = p.Name
		} else {
			stats.Loser = p.Name
		}
	}

	if err := s.playerRepo.RecordOutcome(ctx, stats); err != nil {
		s.metrics.RecordFailure(metrics.StorePlayers)
		s.log.Error("failed to record player outcome",
			"session_id", session.ID,
			"result_id", result.ID,
			"error", err)
	}
}

// draw takes one choice from the random source
func (s *service) draw(ctx context.Context) (models.Choice, error) {
	choice, err := s.randomSource.Draw(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.ChoiceUnknown, fmt.Errorf("%w: %w", ErrCanceled, ctxErr)
		}
		s.metrics.RandomFailure()
		s.log.Warn("random source failed", "error", err)
		return models.ChoiceUnknown, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if !choice.Valid() {
		s.metrics.RandomFailure()
		return models.ChoiceUnknown, fmt.Errorf("%w: drew invalid choice %d", ErrUnavailable, choice)
	}

	return choice, nil
}

// classify maps repository errors onto the service's error kinds
func (s *service) classify(ctx context.Context, msg string, err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	case errors.Is(err, sessionRepo.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrCanceled, ctx.Err())
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// classifyLifecycle marks invalid player names as validation errors and
// passes the other lifecycle errors through
func (s *service) classifyLifecycle(err error) error {
	if errors.Is(err, lifecycle.ErrInvalidPlayerName) || errors.Is(err, models.ErrInvalidChoice) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return err
}

// summarize describes a single player round from the player's side
func summarize(player, computer models.Choice, outcome rules.Outcome) string {
	switch outcome {
	case rules.OutcomeFirstWins:
		return rules.Describe(player, computer)
	case rules.OutcomeSecondWins:
		return rules.Describe(computer, player)
	default:
		return fmt.Sprintf("Both chose %s", player)
	}
}
