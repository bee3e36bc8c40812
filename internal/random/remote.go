package random

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
)

const (
	// DefaultURL is the public random number endpoint
	DefaultURL = "https://codechallenge.boohma.com/random"

	// DefaultTimeout bounds a single request to the random number endpoint
	DefaultTimeout = 5 * time.Second
)

// RemoteConfig holds configuration for the remote random source
type RemoteConfig struct {
	// URL of the endpoint returning {"random_number": N}
	URL string

	// Timeout for one request, DefaultTimeout when zero
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
}

// Remote draws choices from a random number API
type Remote struct {
	url        string
	httpClient *http.Client
}

type randomNumberResponse struct {
	RandomNumber *int `json:"random_number"`
}

// NewRemote creates a remote random source
func NewRemote(cfg *RemoteConfig) (*Remote, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Remote{
		url:        url,
		httpClient: httpClient,
	}, nil
}

// Draw fetches a random number and maps it onto a choice
func (r *Remote) Draw(ctx context.Context) (models.Choice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return models.ChoiceUnknown, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.ChoiceUnknown, ctxErr
		}
		return models.ChoiceUnknown, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.ChoiceUnknown, fmt.Errorf("%w: %s - %s", ErrUnavailable, resp.Status, string(body))
	}

	var payload randomNumberResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.ChoiceUnknown, ctxErr
		}
		return models.ChoiceUnknown, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	if payload.RandomNumber == nil {
		return models.ChoiceUnknown, fmt.Errorf("%w: response has no random_number", ErrUnavailable)
	}

	if *payload.RandomNumber < 0 {
		return models.ChoiceUnknown, fmt.Errorf("%w: negative random number %d", ErrUnavailable, *payload.RandomNumber)
	}

	return choiceFromNumber(*payload.RandomNumber), nil
}
