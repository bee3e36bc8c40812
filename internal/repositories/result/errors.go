package result

import "errors"

var (
	errNilResult     = errors.New("input and result cannot be nil")
	errEmptyResultID = errors.New("result ID cannot be empty")
)
