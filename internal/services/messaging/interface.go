package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rpsls/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinSessionMessage returns a message for when a player joins a session
	GetJoinSessionMessage(ctx context.Context, input *GetJoinSessionMessageInput) (*GetJoinSessionMessageOutput, error)

	// GetSessionStatusMessage returns a message describing where a session is
	GetSessionStatusMessage(ctx context.Context, input *GetSessionStatusMessageInput) (*GetSessionStatusMessageOutput, error)

	// GetRoundResultMessage returns a message for a resolved round
	GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a game error
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
