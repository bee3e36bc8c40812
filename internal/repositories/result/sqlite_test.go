package result

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	RepositoryTestSuite
	sqlite *sqliteRepository
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	repo, err := NewSQLite(&SQLiteConfig{
		Path: filepath.Join(s.T().TempDir(), "results.db"),
	})
	s.Require().NoError(err)
	s.sqlite = repo
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.sqlite.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLite_EmptyPath() {
	_, err := NewSQLite(&SQLiteConfig{})
	s.Error(err)

	_, err = NewSQLite(nil)
	s.Error(err)
}
