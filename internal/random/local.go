package random

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/rpsls/internal/models"
)

// LocalConfig for the local roller
type LocalConfig struct {
	// Optional seed for testing
	Seed int64
}

// Local draws choices from a seeded pseudo random generator
type Local struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewLocal creates a new local roller
func NewLocal(cfg *LocalConfig) *Local {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Local{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Draw returns the next choice from the generator
func (l *Local) Draw(ctx context.Context) (models.Choice, error) {
	if err := ctx.Err(); err != nil {
		return models.ChoiceUnknown, err
	}

	l.mu.Lock()
	n := l.random.Intn(models.ChoiceCount)
	l.mu.Unlock()

	return choiceFromNumber(n), nil
}
