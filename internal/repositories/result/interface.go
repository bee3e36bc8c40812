package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rpsls/internal/repositories/result Repository

import (
	"context"
)

// DefaultLimit is the number of results ListRecent returns when no limit is given
const DefaultLimit = 10

// Repository defines the interface for the match result log
type Repository interface {
	// AppendResult adds a result to the log; appending the same result id twice is a no-op
	AppendResult(ctx context.Context, input *AppendResultInput) error

	// ListRecent retrieves the most recent results, newest first
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)

	// Clear removes every result from the log
	Clear(ctx context.Context, input *ClearInput) error
}
