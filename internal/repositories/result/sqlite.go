package result

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteConfig holds configuration for the SQLite result repository
type SQLiteConfig struct {
	// Path to the database file
	Path string
}

// sqliteRepository implements the Repository interface using SQLite
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite opens the database file and creates the results table
func NewSQLite(cfg *SQLiteConfig) (*sqliteRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	repo := &sqliteRepository{db: db}

	if err := repo.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

// initSchema creates the results table
func (r *sqliteRepository) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS match_results (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		winner_name TEXT NOT NULL,
		player1_choice INTEGER NOT NULL,
		player2_choice INTEGER NOT NULL,
		result_date INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_match_results_result_date ON match_results(result_date);
	`

	_, err := r.db.Exec(schema)
	return err
}

// AppendResult inserts the result unless its id is already present
func (r *sqliteRepository) AppendResult(ctx context.Context, input *AppendResultInput) error {
	if err := validateResult(input); err != nil {
		return err
	}

	record := input.Result
	_, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO match_results (id, session_id, winner_name, player1_choice, player2_choice, result_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.SessionID, record.WinnerName, record.Player1Choice.ID(), record.Player2Choice.ID(), record.ResultDate.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}

	return nil
}

// ListRecent retrieves the newest results
func (r *sqliteRepository) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, winner_name, player1_choice, player2_choice, result_date
		FROM match_results
		ORDER BY result_date DESC
		LIMIT ?
	`, input.limit())
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	results := make([]*models.MatchResult, 0)
	for rows.Next() {
		var (
			record        models.MatchResult
			first, second int
			resultDate    int64
		)
		if err := rows.Scan(&record.ID, &record.SessionID, &record.WinnerName, &first, &second, &resultDate); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		record.Player1Choice = models.Choice(first)
		record.Player2Choice = models.Choice(second)
		record.ResultDate = time.Unix(0, resultDate).UTC()
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
func (r *sqliteRepository) Clear(ctx context.Context, input *ClearInput) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM match_results`); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	return nil
}
