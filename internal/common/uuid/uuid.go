package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/rpsls/internal/common/uuid UUID

// UUID generates opaque identifiers for sessions and match results
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface using random version 4 UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
