package models

// Error is a validation error on model values
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

const (
	// ErrInvalidChoice is returned for any value outside the five symbols
	ErrInvalidChoice Error = "invalid choice: must be one of Rock, Paper, Scissors, Lizard, Spock"
)
