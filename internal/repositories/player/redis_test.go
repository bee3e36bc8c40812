package player

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) record(input *RecordOutcomeInput) {
	s.Require().NoError(s.repo.RecordOutcome(context.Background(), input))
}

func (s *RedisRepositoryTestSuite) TestRecordOutcome_WinAndLoss() {
	s.record(&RecordOutcomeInput{Winner: "Alice", Loser: "Bob", Players: []string{"Alice", "Bob"}})

	alice, err := s.repo.GetPlayerStats(context.Background(), &GetPlayerStatsInput{Name: "Alice"})
	s.Require().NoError(err)
	s.Equal(int64(1), alice.Wins)
	s.Equal(int64(0), alice.Losses)
	s.Equal(int64(1), alice.Played())

	bob, err := s.repo.GetPlayerStats(context.Background(), &GetPlayerStatsInput{Name: "Bob"})
	s.Require().NoError(err)
	s.Equal(int64(0), bob.Wins)
	s.Equal(int64(1), bob.Losses)
}

func (s *RedisRepositoryTestSuite) TestRecordOutcome_Tie() {
	s.record(&RecordOutcomeInput{Tie: true, Players: []string{"Alice", "Bob"}})

	for _, name := range []string{"Alice", "Bob"} {
		stats, err := s.repo.GetPlayerStats(context.Background(), &GetPlayerStatsInput{Name: name})
		s.Require().NoError(err)
		s.Equal(int64(1), stats.Ties)
		s.Equal(int64(0), stats.Wins)
	}
}

func (s *RedisRepositoryTestSuite) TestRecordOutcome_InvalidInput() {
	s.Error(s.repo.RecordOutcome(context.Background(), nil))
	s.Error(s.repo.RecordOutcome(context.Background(), &RecordOutcomeInput{Winner: "Alice"}))
	s.Error(s.repo.RecordOutcome(context.Background(), &RecordOutcomeInput{Tie: true}))
}

func (s *RedisRepositoryTestSuite) TestGetPlayerStats_NotFound() {
	_, err := s.repo.GetPlayerStats(context.Background(), &GetPlayerStatsInput{Name: "Nobody"})

	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard() {
	s.record(&RecordOutcomeInput{Winner: "Alice", Loser: "Bob"})
	s.record(&RecordOutcomeInput{Winner: "Alice", Loser: "Carol"})
	s.record(&RecordOutcomeInput{Winner: "Carol", Loser: "Bob"})
	s.record(&RecordOutcomeInput{Tie: true, Players: []string{"Dave", "Bob"}})

	output, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{})
	s.Require().NoError(err)

	entries := output.Leaderboard.Entries
	s.Require().Len(entries, 4)
	s.Equal("Alice", entries[0].PlayerName)
	s.Equal(int64(2), entries[0].Wins)
	s.Equal("Carol", entries[1].PlayerName)
	s.Equal("Dave", entries[2].PlayerName)
	s.Equal("Bob", entries[3].PlayerName)
	s.Equal(int64(2), entries[3].Losses)
	s.Equal(int64(1), entries[3].Ties)

	output, err = s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{Limit: 2})
	s.Require().NoError(err)
	s.Len(output.Leaderboard.Entries, 2)
}

func (s *RedisRepositoryTestSuite) TestGetLeaderboard_Empty() {
	output, err := s.repo.GetLeaderboard(context.Background(), &GetLeaderboardInput{})

	s.Require().NoError(err)
	s.Empty(output.Leaderboard.Entries)
}
