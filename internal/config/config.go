package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Result store backends
const (
	ResultStoreRedis    = "redis"
	ResultStoreSQLite   = "sqlite"
	ResultStorePostgres = "postgres"
)

// Random sources for the computer opponent
const (
	RandomSourceRemote = "remote"
	RandomSourceLocal  = "local"
)

// Define errors
var (
	ErrUnknownResultStore = errors.New("unknown result store")
	ErrMissingPostgresDSN = errors.New("POSTGRES_DSN is required for the postgres result store")
	ErrMissingSQLitePath  = errors.New("SQLITE_PATH is required for the sqlite result store")
	ErrInvalidLimit       = errors.New("SCOREBOARD_LIMIT must be positive")

	ErrUnknownRandomSource = errors.New("unknown random source")
	ErrMissingRandomURL    = errors.New("RANDOM_API_URL is required for the remote random source")
)

// Config holds application configuration
type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	Redis Redis

	// ResultStore picks where match results are logged
	ResultStore string `env:"RESULT_STORE" envDefault:"redis"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"./rpsls.db"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	Random Random

	ScoreboardLimit int `env:"SCOREBOARD_LIMIT" envDefault:"10"`

	// MaxConflictRetries of 0 fails a conflicting save on the first attempt
	MaxConflictRetries int `env:"MAX_CONFLICT_RETRIES" envDefault:"3"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Discord Discord
}

// Redis holds the Redis connection settings
type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Random holds the computer opponent's random source settings
type Random struct {
	// Source is remote or local
	Source string `env:"RANDOM_SOURCE" envDefault:"remote"`

	// APIURL and Timeout apply to the remote source
	APIURL  string        `env:"RANDOM_API_URL" envDefault:"https://codechallenge.boohma.com/random"`
	Timeout time.Duration `env:"RANDOM_TIMEOUT" envDefault:"5s"`

	// Seed applies to the local source; 0 seeds from the clock
	Seed int64 `env:"RANDOM_SEED"`
}

// Discord holds the optional bot settings; the bot is disabled without a token
type Discord struct {
	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"DISCORD_APPLICATION_ID"`
	GuildID       string `env:"DISCORD_GUILD_ID"`
}

// Load loads configuration from a .env file, if present, and the environment
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks settings that depend on each other
func (c *Config) Validate() error {
	switch c.ResultStore {
	case ResultStoreRedis:
	case ResultStoreSQLite:
		if c.SQLitePath == "" {
			return ErrMissingSQLitePath
		}
	case ResultStorePostgres:
		if c.PostgresDSN == "" {
			return ErrMissingPostgresDSN
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownResultStore, c.ResultStore)
	}

	switch c.Random.Source {
	case RandomSourceLocal:
	case RandomSourceRemote:
		if c.Random.APIURL == "" {
			return ErrMissingRandomURL
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRandomSource, c.Random.Source)
	}

	if c.ScoreboardLimit <= 0 {
		return ErrInvalidLimit
	}

	return nil
}

// DiscordEnabled reports whether the Discord bot should be started
func (c *Config) DiscordEnabled() bool {
	return c.Discord.Token != ""
}
