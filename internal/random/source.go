// Package random draws the computer's choice for single player rounds,
// either from a remote random number API or from a local seeded roller.
package random

import (
	"context"

	"github.com/KirkDiggler/rpsls/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/rpsls/internal/random Source

// Source draws one choice uniformly from the five
type Source interface {
	Draw(ctx context.Context) (models.Choice, error)
}

// RandomError is a custom error type for random source errors
type RandomError string

// Error implements the error interface
func (e RandomError) Error() string {
	return string(e)
}

// ErrUnavailable is returned when no choice could be drawn
const ErrUnavailable RandomError = "random source unavailable"

// choiceFromNumber maps a non-negative random number onto the choice ids
func choiceFromNumber(n int) models.Choice {
	return models.Choice(n%models.ChoiceCount + 1)
}
