package result

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite holds the behaviour every result log backend shares.
// Backend suites embed it and set repo in SetupTest.
type RepositoryTestSuite struct {
	suite.Suite
	repo    Repository
	testNow time.Time
}

func (s *RepositoryTestSuite) newResult(id string, offset time.Duration, winner string) *models.MatchResult {
	return &models.MatchResult{
		ID:            id,
		SessionID:     "session-" + id,
		WinnerName:    winner,
		ResultDate:    s.testNow.Add(offset),
		Player1Choice: models.ChoiceRock,
		Player2Choice: models.ChoiceScissors,
	}
}

func (s *RepositoryTestSuite) appendResult(record *models.MatchResult) {
	err := s.repo.AppendResult(context.Background(), &AppendResultInput{
		Result: record,
	})
	s.Require().NoError(err)
}

func (s *RepositoryTestSuite) TestAppendAndListRecent() {
	s.appendResult(s.newResult("result-1", 0, "Alice"))

	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)

	record := output.Results[0]
	s.Equal("result-1", record.ID)
	s.Equal("session-result-1", record.SessionID)
	s.Equal("Alice", record.WinnerName)
	s.Equal(models.ChoiceRock, record.Player1Choice)
	s.Equal(models.ChoiceScissors, record.Player2Choice)
	s.True(s.testNow.Equal(record.ResultDate), "expected %s, got %s", s.testNow, record.ResultDate)
}

func (s *RepositoryTestSuite) TestListRecent_NewestFirst() {
	s.appendResult(s.newResult("result-2", 2*time.Minute, "Bob"))
	s.appendResult(s.newResult("result-1", time.Minute, "Alice"))
	s.appendResult(s.newResult("result-3", 3*time.Minute, models.NoWinner))

	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 3)

	s.Equal("result-3", output.Results[0].ID)
	s.Equal("result-2", output.Results[1].ID)
	s.Equal("result-1", output.Results[2].ID)
	s.True(output.Results[0].IsTie())
}

func (s *RepositoryTestSuite) TestListRecent_DefaultLimit() {
	for i := 0; i < DefaultLimit+5; i++ {
		s.appendResult(s.newResult(fmt.Sprintf("result-%02d", i), time.Duration(i)*time.Minute, "Alice"))
	}

	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Results, DefaultLimit)
	s.Equal(fmt.Sprintf("result-%02d", DefaultLimit+4), output.Results[0].ID)

	output, err = s.repo.ListRecent(context.Background(), &ListRecentInput{Limit: 3})
	s.Require().NoError(err)
	s.Len(output.Results, 3)
}

func (s *RepositoryTestSuite) TestAppendResult_Idempotent() {
	record := s.newResult("result-1", 0, "Alice")
	s.appendResult(record)
	s.appendResult(record)

	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Len(output.Results, 1)
}

func (s *RepositoryTestSuite) TestAppendResult_InvalidInput() {
	s.Error(s.repo.AppendResult(context.Background(), nil))
	s.Error(s.repo.AppendResult(context.Background(), &AppendResultInput{}))
	s.Error(s.repo.AppendResult(context.Background(), &AppendResultInput{
		Result: &models.MatchResult{WinnerName: "Alice"},
	}))
}

func (s *RepositoryTestSuite) TestClear() {
	s.appendResult(s.newResult("result-1", 0, "Alice"))
	s.appendResult(s.newResult("result-2", time.Minute, "Bob"))

	err := s.repo.Clear(context.Background(), &ClearInput{})
	s.Require().NoError(err)

	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Empty(output.Results)

	// The log keeps working after a reset
	s.appendResult(s.newResult("result-3", 2*time.Minute, "Carol"))
	output, err = s.repo.ListRecent(context.Background(), &ListRecentInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Results, 1)
	s.Equal("result-3", output.Results[0].ID)
}

func (s *RepositoryTestSuite) TestListRecent_Empty() {
	output, err := s.repo.ListRecent(context.Background(), &ListRecentInput{})

	s.Require().NoError(err)
	s.NotNil(output.Results)
	s.Empty(output.Results)
}
