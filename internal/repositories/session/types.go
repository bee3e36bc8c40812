package session

import "github.com/KirkDiggler/rpsls/internal/models"

type CreateSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

// SaveSessionInput carries the snapshot to write. Session.Version must be
// the version that was read; it is advanced on success.
type SaveSessionInput struct {
	Session *models.Session
}

type GetOpenSessionsInput struct {
}

type GetOpenSessionsOutput struct {
	Sessions []*models.Session
}
