package random

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_DrawsValidChoices(t *testing.T) {
	local := NewLocal(&LocalConfig{Seed: 42})
	seen := make(map[models.Choice]int)

	for i := 0; i < 500; i++ {
		choice, err := local.Draw(context.Background())
		require.NoError(t, err)
		require.True(t, choice.Valid(), "drew %d", choice)
		seen[choice]++
	}

	assert.Len(t, seen, models.ChoiceCount, "every choice should come up in 500 draws")
}

func TestLocal_SameSeedSameSequence(t *testing.T) {
	a := NewLocal(&LocalConfig{Seed: 7})
	b := NewLocal(&LocalConfig{Seed: 7})

	for i := 0; i < 20; i++ {
		ca, err := a.Draw(context.Background())
		require.NoError(t, err)
		cb, err := b.Draw(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	}
}

func TestLocal_CanceledContext(t *testing.T) {
	local := NewLocal(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := local.Draw(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
