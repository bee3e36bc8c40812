package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpsls/internal/common/clock"
	"github.com/KirkDiggler/rpsls/internal/common/uuid"
	"github.com/KirkDiggler/rpsls/internal/config"
	"github.com/KirkDiggler/rpsls/internal/handlers/api"
	"github.com/KirkDiggler/rpsls/internal/handlers/discord"
	"github.com/KirkDiggler/rpsls/internal/logger"
	"github.com/KirkDiggler/rpsls/internal/metrics"
	"github.com/KirkDiggler/rpsls/internal/random"
	"github.com/KirkDiggler/rpsls/internal/repositories/player"
	"github.com/KirkDiggler/rpsls/internal/repositories/result"
	"github.com/KirkDiggler/rpsls/internal/repositories/session"
	gameService "github.com/KirkDiggler/rpsls/internal/services/game"
	"github.com/KirkDiggler/rpsls/internal/services/messaging"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat == "json")

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create session repository", "error", err)
	}

	playerRepo, err := player.NewRedis(&player.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("failed to create player repository", "error", err)
	}

	resultRepo, closeResults, err := newResultRepository(ctx, cfg, redisClient)
	if err != nil {
		logger.Fatal("failed to create result repository", "store", cfg.ResultStore, "error", err)
	}
	defer closeResults()

	// Initialize the computer opponent
	var source random.Source
	switch cfg.Random.Source {
	case config.RandomSourceLocal:
		source = random.NewLocal(&random.LocalConfig{Seed: cfg.Random.Seed})
	default:
		source, err = random.NewRemote(&random.RemoteConfig{
			URL:     cfg.Random.APIURL,
			Timeout: cfg.Random.Timeout,
		})
		if err != nil {
			logger.Fatal("failed to create random source", "error", err)
		}
	}
	log.Info("random source ready", "source", cfg.Random.Source)

	registry := prometheus.NewRegistry()
	m, err := metrics.New(registry)
	if err != nil {
		logger.Fatal("failed to register metrics", "error", err)
	}

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		SessionRepo:        sessionRepo,
		ResultRepo:         resultRepo,
		PlayerRepo:         playerRepo,
		RandomSource:       source,
		Clock:              clock.New(),
		UUIDGenerator:      uuid.New(),
		Logger:             log,
		Metrics:            m,
		MaxConflictRetries: &cfg.MaxConflictRetries,
		ScoreboardLimit:    cfg.ScoreboardLimit,
	})
	if err != nil {
		logger.Fatal("failed to create game service", "error", err)
	}

	handler, err := api.New(&api.Config{
		GameService: gameSvc,
		Logger:      log,
		Gatherer:    registry,
		HealthCheck: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})
	if err != nil {
		logger.Fatal("failed to create HTTP handler", "error", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server started", "addr", cfg.HTTPAddr, "result_store", cfg.ResultStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	// The Discord bot is optional
	var bot *discord.Bot
	if cfg.DiscordEnabled() {
		messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
		if err != nil {
			logger.Fatal("failed to create messaging service", "error", err)
		}

		bot, err = discord.New(&discord.Config{
			Token:            cfg.Discord.Token,
			ApplicationID:    cfg.Discord.ApplicationID,
			GuildID:          cfg.Discord.GuildID,
			GameService:      gameSvc,
			MessagingService: messagingSvc,
			Logger:           log,
		})
		if err != nil {
			logger.Fatal("failed to create Discord bot", "error", err)
		}

		if err := bot.Start(); err != nil {
			logger.Fatal("failed to start Discord bot", "error", err)
		}
	}

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	if bot != nil {
		if err := bot.Stop(); err != nil {
			log.Error("error stopping bot", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server exited")
}

// newResultRepository opens the configured result log and returns its cleanup
func newResultRepository(ctx context.Context, cfg *config.Config, redisClient *redis.Client) (result.Repository, func(), error) {
	switch cfg.ResultStore {
	case config.ResultStoreSQLite:
		repo, err := result.NewSQLite(&result.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	case config.ResultStorePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		repo, err := result.NewPostgres(ctx, &result.PostgresConfig{Pool: pool})
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		repo, err := result.NewRedis(&result.Config{RedisClient: redisClient})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
