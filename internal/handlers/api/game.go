package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/gin-gonic/gin"
)

// ChoiceResponse is a choice with its numeric id
type ChoiceResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlayRequest is the body of a single player round
type PlayRequest struct {
	Choice *models.Choice `json:"choice"`
}

// PlayResponse is the result of a single player round
type PlayResponse struct {
	Result         string        `json:"result"`
	PlayerChoice   models.Choice `json:"player_choice"`
	ComputerChoice models.Choice `json:"computer_choice"`
	Summary        string        `json:"summary"`
}

// JoinRequest is the body of a join
type JoinRequest struct {
	Name string `json:"name"`
}

// ChoiceRequest is the body of a choice submission
type ChoiceRequest struct {
	Name   string         `json:"name"`
	Choice *models.Choice `json:"choice"`
}

// MultiPlayerRequest joins when choice is omitted and submits otherwise
type MultiPlayerRequest struct {
	Name   string         `json:"name"`
	Choice *models.Choice `json:"choice"`
}

// MultiPlayerResponse reports the session state and, once completed, the result
type MultiPlayerResponse struct {
	Session *models.Session     `json:"session"`
	State   models.SessionState `json:"state"`
	Winner  string              `json:"winner,omitempty"`
	Outcome string              `json:"outcome,omitempty"`
}

func toChoiceResponse(c models.Choice) ChoiceResponse {
	return ChoiceResponse{ID: c.ID(), Name: c.String()}
}

// GetChoices lists the five choices
func (h *Handler) GetChoices(c *gin.Context) {
	output, err := h.gameService.GetChoices(c.Request.Context(), &game.GetChoicesInput{})
	if err != nil {
		h.writeError(c, "get_choices", err)
		return
	}

	choices := make([]ChoiceResponse, 0, len(output.Choices))
	for _, choice := range output.Choices {
		choices = append(choices, toChoiceResponse(choice))
	}
	c.JSON(http.StatusOK, choices)
}

// GetRandomChoice draws a choice from the random source
func (h *Handler) GetRandomChoice(c *gin.Context) {
	output, err := h.gameService.GetRandomChoice(c.Request.Context(), &game.GetRandomChoiceInput{})
	if err != nil {
		h.writeError(c, "get_random_choice", err)
		return
	}
	c.JSON(http.StatusOK, toChoiceResponse(output.Choice))
}

// PlayRound plays one round against the computer
func (h *Handler) PlayRound(c *gin.Context) {
	var req PlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Choice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "choice is required"})
		return
	}

	output, err := h.gameService.PlayRound(c.Request.Context(), &game.PlayRoundInput{Choice: *req.Choice})
	if err != nil {
		h.writeError(c, "play_round", err)
		return
	}

	c.JSON(http.StatusOK, PlayResponse{
		Result:         output.Result,
		PlayerChoice:   output.PlayerChoice,
		ComputerChoice: output.ComputerChoice,
		Summary:        output.Summary,
	})
}

// CreateSession starts a new session
func (h *Handler) CreateSession(c *gin.Context) {
	output, err := h.gameService.CreateSession(c.Request.Context(), &game.CreateSessionInput{})
	if err != nil {
		h.writeError(c, "create_session", err)
		return
	}
	c.JSON(http.StatusCreated, output.Session)
}

// ListOpenSessions lists sessions that have not completed
func (h *Handler) ListOpenSessions(c *gin.Context) {
	output, err := h.gameService.ListOpenSessions(c.Request.Context(), &game.ListOpenSessionsInput{})
	if err != nil {
		h.writeError(c, "list_open_sessions", err)
		return
	}

	sessions := output.Sessions
	if sessions == nil {
		sessions = []*models.Session{}
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSession returns a session snapshot
func (h *Handler) GetSession(c *gin.Context) {
	output, err := h.gameService.GetSession(c.Request.Context(), &game.GetSessionInput{
		SessionID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, "get_session", err)
		return
	}
	c.JSON(http.StatusOK, output.Session)
}

// JoinSession seats a player
func (h *Handler) JoinSession(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	output, err := h.gameService.JoinSession(c.Request.Context(), &game.JoinSessionInput{
		SessionID:  c.Param("id"),
		PlayerName: req.Name,
	})
	if err != nil {
		h.writeError(c, "join_session", err)
		return
	}
	c.JSON(http.StatusOK, output.Session)
}

// SubmitChoice records a seated player's choice
func (h *Handler) SubmitChoice(c *gin.Context) {
	var req ChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Choice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "choice is required"})
		return
	}

	output, err := h.gameService.SubmitChoice(c.Request.Context(), &game.SubmitChoiceInput{
		SessionID:  c.Param("id"),
		PlayerName: req.Name,
		Choice:     *req.Choice,
	})
	if err != nil {
		h.writeError(c, "submit_choice", err)
		return
	}
	c.JSON(http.StatusOK, output.Session)
}

// PlayMultiplayer joins or submits depending on whether a choice is present
func (h *Handler) PlayMultiplayer(c *gin.Context) {
	var req MultiPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	output, err := h.gameService.PlayMultiplayer(c.Request.Context(), &game.PlayMultiplayerInput{
		SessionID:  c.Query("sessionId"),
		PlayerName: req.Name,
		Choice:     req.Choice,
	})
	if err != nil {
		h.writeError(c, "play_multiplayer", err)
		return
	}

	c.JSON(http.StatusOK, MultiPlayerResponse{
		Session: output.Session,
		State:   output.State,
		Winner:  output.WinnerName,
		Outcome: output.Outcome,
	})
}

// GetScoreboard lists recent results, newest first
func (h *Handler) GetScoreboard(c *gin.Context) {
	limit, ok := h.queryLimit(c)
	if !ok {
		return
	}

	output, err := h.gameService.GetScoreboard(c.Request.Context(), &game.GetScoreboardInput{Limit: limit})
	if err != nil {
		h.writeError(c, "get_scoreboard", err)
		return
	}

	results := output.Results
	if results == nil {
		results = []*models.MatchResult{}
	}
	c.JSON(http.StatusOK, results)
}

// ResetScoreboard clears the result log
func (h *Handler) ResetScoreboard(c *gin.Context) {
	if _, err := h.gameService.ResetScoreboard(c.Request.Context(), &game.ResetScoreboardInput{}); err != nil {
		h.writeError(c, "reset_scoreboard", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLeaderboard ranks players by wins
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit, ok := h.queryLimit(c)
	if !ok {
		return
	}

	output, err := h.gameService.GetLeaderboard(c.Request.Context(), &game.GetLeaderboardInput{Limit: limit})
	if err != nil {
		h.writeError(c, "get_leaderboard", err)
		return
	}
	c.JSON(http.StatusOK, output.Leaderboard)
}

// GetPlayerStats returns one player's record
func (h *Handler) GetPlayerStats(c *gin.Context) {
	output, err := h.gameService.GetPlayerStats(c.Request.Context(), &game.GetPlayerStatsInput{
		PlayerName: c.Param("name"),
	})
	if err != nil {
		h.writeError(c, "get_player_stats", err)
		return
	}
	c.JSON(http.StatusOK, output.Stats)
}

// queryLimit parses the optional limit query parameter
func (h *Handler) queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
		return 0, false
	}
	return limit, true
}
