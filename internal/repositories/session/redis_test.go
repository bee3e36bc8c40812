package session

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
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

func (s *RedisRepositoryTestSuite) createSession(id string) *models.Session {
	session := models.NewSession(id, s.testNow)
	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		Session: session,
	})
	s.Require().NoError(err)
	return session
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	session := s.createSession("test-session-id")
	s.Equal(int64(1), session.Version)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	s.Equal(session.ID, retrieved.ID)
	s.Equal(models.SessionStateWaitingForPlayers, retrieved.State)
	s.Empty(retrieved.Players)
	s.Equal(int64(1), retrieved.Version)
	s.True(s.testNow.Equal(retrieved.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestCreateSession_DuplicateID() {
	s.createSession("test-session-id")

	err := s.repo.CreateSession(context.Background(), &CreateSessionInput{
		Session: models.NewSession("test-session-id", s.testNow),
	})

	s.ErrorIs(err, ErrSessionExists)
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})

	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_AdvancesVersion() {
	s.createSession("test-session-id")

	loaded, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)

	loaded.Players = append(loaded.Players, &models.Player{Name: "Alice"})
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: loaded})
	s.Require().NoError(err)
	s.Equal(int64(2), loaded.Version)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Alice", retrieved.Players[0].Name)
	s.Equal(int64(2), retrieved.Version)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_StaleVersionConflicts() {
	s.createSession("test-session-id")

	first, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	second, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)

	first.Players = append(first.Players, &models.Player{Name: "Alice"})
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first}))

	second.Players = append(second.Players, &models.Player{Name: "Bob"})
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: second})

	s.ErrorIs(err, ErrConflict)
	s.Equal(int64(1), second.Version, "a failed save leaves the snapshot version alone")

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Require().Len(retrieved.Players, 1)
	s.Equal("Alice", retrieved.Players[0].Name)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_NotFound() {
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: models.NewSession("missing", s.testNow),
	})

	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveSession_InvalidInput() {
	s.Error(s.repo.SaveSession(context.Background(), nil))
	s.Error(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: &models.Session{}}))
}

func (s *RedisRepositoryTestSuite) TestGetOpenSessions() {
	first := s.createSession("session-1")
	s.testNow = s.testNow.Add(time.Minute)
	s.createSession("session-2")

	output, err := s.repo.GetOpenSessions(context.Background(), &GetOpenSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 2)
	s.Equal("session-1", output.Sessions[0].ID)
	s.Equal("session-2", output.Sessions[1].ID)

	// Completing a session drops it from the index
	first.State = models.SessionStateCompleted
	s.Require().NoError(s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first}))

	output, err = s.repo.GetOpenSessions(context.Background(), &GetOpenSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Sessions, 1)
	s.Equal("session-2", output.Sessions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetOpenSessions_Empty() {
	output, err := s.repo.GetOpenSessions(context.Background(), &GetOpenSessionsInput{})

	s.Require().NoError(err)
	s.Empty(output.Sessions)
}
