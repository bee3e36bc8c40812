package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Define errors
var (
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilGameService = errors.New("game service cannot be nil")
)

// Config holds configuration for the HTTP API
type Config struct {
	GameService game.Service

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Gatherer is served on /metrics, prometheus.DefaultGatherer when nil
	Gatherer prometheus.Gatherer

	// HealthCheck is optional and reported on /healthz
	HealthCheck func(ctx context.Context) error
}

// Handler serves the game over HTTP
type Handler struct {
	gameService game.Service
	logger      *slog.Logger
	gatherer    prometheus.Gatherer
	healthCheck func(ctx context.Context) error
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Handler{
		gameService: cfg.GameService,
		logger:      logger.With("component", "http"),
		gatherer:    gatherer,
		healthCheck: cfg.HealthCheck,
	}, nil
}

// Router builds a gin engine with every route registered
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))

	h.Register(r.Group("/game"))

	return r
}

// Register adds the game routes to a router group
func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/choices", h.GetChoices)
	g.GET("/choice", h.GetRandomChoice)
	g.POST("/play", h.PlayRound)

	g.POST("/createSession", h.CreateSession)
	g.GET("/sessions", h.ListOpenSessions)
	g.GET("/sessions/:id", h.GetSession)
	g.POST("/sessions/:id/join", h.JoinSession)
	g.POST("/sessions/:id/choice", h.SubmitChoice)
	g.POST("/playMulti", h.PlayMultiplayer)

	g.GET("/scoreboard", h.GetScoreboard)
	g.POST("/resetScoreboard", h.ResetScoreboard)
	g.GET("/leaderboard", h.GetLeaderboard)
	g.GET("/players/:name", h.GetPlayerStats)
}

// Health reports whether the process and its dependencies are up
func (h *Handler) Health(c *gin.Context) {
	if h.healthCheck != nil {
		if err := h.healthCheck(c.Request.Context()); err != nil {
			h.logger.Warn("health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
