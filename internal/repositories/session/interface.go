package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rpsls/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/rpsls/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// CreateSession stores a new session
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// SaveSession replaces a session if its version has not moved since it was loaded
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetOpenSessions retrieves sessions that have not completed yet
	GetOpenSessions(ctx context.Context, input *GetOpenSessionsInput) (*GetOpenSessionsOutput, error)
}
