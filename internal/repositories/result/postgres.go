package result

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds configuration for the Postgres result repository
type PostgresConfig struct {
	// Pool is a connected pgx pool
	Pool *pgxpool.Pool
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgres creates the results table if needed and returns the repository
func NewPostgres(ctx context.Context, cfg *PostgresConfig) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("postgres pool cannot be nil")
	}

	if err := cfg.Pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	_, err := cfg.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS match_results (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			winner_name TEXT NOT NULL,
			player1_choice SMALLINT NOT NULL,
			player2_choice SMALLINT NOT NULL,
			result_date TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	_, err = cfg.Pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_match_results_result_date ON match_results(result_date DESC)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &postgresRepository{db: cfg.Pool}, nil
}

// AppendResult inserts the result unless its id is already present
func (r *postgresRepository) AppendResult(ctx context.Context, input *AppendResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	record := input.Result
	_, err := r.db.Exec(ctx, `
		INSERT INTO match_results (id, session_id, winner_name, player1_choice, player2_choice, result_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, record.ID, record.SessionID, record.WinnerName, record.Player1Choice.ID(), record.Player2Choice.ID(), record.ResultDate)
	if err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}

	return nil
}

// ListRecent retrieves the newest results
func (r *postgresRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, session_id, winner_name, player1_choice, player2_choice, result_date
		FROM match_results
		ORDER BY result_date DESC
		LIMIT $1
	`, input.limit())
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := make([]*models.MatchResult, 0)
	for rows.Next() {
		var (
			record        models.MatchResult
			first, second int16
			resultDate    time.Time
		)
		if err := rows.Scan(&record.ID, &record.SessionID, &record.WinnerName, &first, &second, &resultDate); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		record.Player1Choice = models.Choice(first)
		record.Player2Choice = models.Choice(second)
		record.ResultDate = resultDate.UTC()
		results = append(results, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return &ListRecentOutput{
		Results: results,
	}, nil
}

// Clear deletes every result
func (r *postgresRepository) Clear(ctx context.Context, input *ClearInput) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM match_results`); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	return nil
}
