package result

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

// Runs only against a disposable database named by RPSLS_TEST_POSTGRES_DSN
type PostgresRepositoryTestSuite struct {
	RepositoryTestSuite
	pool *pgxpool.Pool
}

func (s *PostgresRepositoryTestSuite) SetupTest() {
	pool, err := pgxpool.New(context.Background(), os.Getenv("RPSLS_TEST_POSTGRES_DSN"))
	s.Require().NoError(err)
	s.pool = pool

	repo, err := NewPostgres(context.Background(), &PostgresConfig{Pool: pool})
	s.Require().NoError(err)
	s.Require().NoError(repo.Clear(context.Background(), &ClearInput{}))
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *PostgresRepositoryTestSuite) TearDownTest() {
	_ = s.repo.Clear(context.Background(), &ClearInput{})
	s.pool.Close()
}

func TestPostgresRepositoryTestSuite(t *testing.T) {
	if os.Getenv("RPSLS_TEST_POSTGRES_DSN") == "" {
		t.Skip("RPSLS_TEST_POSTGRES_DSN not set")
	}
	suite.Run(t, new(PostgresRepositoryTestSuite))
}
