package result

import "github.com/KirkDiggler/rpsls/internal/models"

// AppendResultInput contains the result to record
type AppendResultInput struct {
	Result *models.MatchResult
}

// ListRecentInput contains parameters for listing recent results
type ListRecentInput struct {
	// Limit caps the number of results, DefaultLimit when zero or negative
	Limit int
}

// ListRecentOutput contains the recent results, newest first
type ListRecentOutput struct {
	Results []*models.MatchResult
}

// ClearInput contains parameters for clearing the log
type ClearInput struct {
}

func (i *ListRecentInput) limit() int {
	if i == nil || i.Limit <= 0 {
		return DefaultLimit
	}
	return i.Limit
}

func validateResult(input *AppendResultInput) error {
	if input == nil || input.Result == nil {
		return errNilResult
	}
	if input.Result.ID == "" {
		return errEmptyResultID
	}
	return nil
}
