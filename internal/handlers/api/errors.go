package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/rpsls/internal/lifecycle"
	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/gin-gonic/gin"
)

// statusFor maps a game service error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrValidation),
		errors.Is(err, models.ErrInvalidChoice),
		errors.Is(err, lifecycle.ErrInvalidPlayerName),
		errors.Is(err, lifecycle.ErrInvalidState),
		errors.Is(err, lifecycle.ErrDuplicatePlayer),
		errors.Is(err, lifecycle.ErrPlayerNotFound):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrSessionNotFound),
		errors.Is(err, game.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, game.ErrCanceled),
		errors.Is(err, game.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err, hiding the details of unexpected failures
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "op", op, "error", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	h.logger.Debug("request rejected", "op", op, "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}
