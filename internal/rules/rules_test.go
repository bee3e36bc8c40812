package rules

import (
	"testing"

	"github.com/KirkDiggler/rpsls/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AllPairs(t *testing.T) {
	for _, a := range models.AllChoices() {
		for _, b := range models.AllChoices() {
			forward, err := Resolve(a, b)
			require.NoError(t, err)
			backward, err := Resolve(b, a)
			require.NoError(t, err)

			if a == b {
				assert.Equal(t, OutcomeTie, forward, "%s vs itself", a)
				continue
			}

			assert.NotEqual(t, OutcomeTie, forward, "%s vs %s", a, b)
			assert.Equal(t, forward.Invert(), backward, "%s vs %s must invert", a, b)
			assert.True(t, Beats(a, b) != Beats(b, a), "exactly one of %s and %s wins", a, b)
		}
	}
}

func TestBeats_EachChoiceBeatsExactlyTwo(t *testing.T) {
	for _, a := range models.AllChoices() {
		wins := 0
		for _, b := range models.AllChoices() {
			if Beats(a, b) {
				wins++
			}
		}
		assert.Equal(t, 2, wins, a.String())
		assert.Len(t, Defeats(a), 2)
	}
}

func TestResolve_KnownPairs(t *testing.T) {
	testCases := []struct {
		a, b     models.Choice
		expected Outcome
	}{
		{models.ChoiceRock, models.ChoiceScissors, OutcomeFirstWins},
		{models.ChoiceRock, models.ChoiceLizard, OutcomeFirstWins},
		{models.ChoicePaper, models.ChoiceRock, OutcomeFirstWins},
		{models.ChoicePaper, models.ChoiceSpock, OutcomeFirstWins},
		{models.ChoiceScissors, models.ChoicePaper, OutcomeFirstWins},
		{models.ChoiceScissors, models.ChoiceLizard, OutcomeFirstWins},
		{models.ChoiceLizard, models.ChoiceSpock, OutcomeFirstWins},
		{models.ChoiceLizard, models.ChoicePaper, OutcomeFirstWins},
		{models.ChoiceSpock, models.ChoiceScissors, OutcomeFirstWins},
		{models.ChoiceSpock, models.ChoiceRock, OutcomeFirstWins},
		{models.ChoiceRock, models.ChoicePaper, OutcomeSecondWins},
		{models.ChoiceRock, models.ChoiceRock, OutcomeTie},
	}

	for _, tc := range testCases {
		outcome, err := Resolve(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, outcome, "%s vs %s", tc.a, tc.b)
	}
}

func TestResolve_InvalidChoice(t *testing.T) {
	_, err := Resolve(models.ChoiceUnknown, models.ChoiceRock)
	assert.ErrorIs(t, err, models.ErrInvalidChoice)

	_, err = Resolve(models.ChoiceRock, models.Choice(9))
	assert.ErrorIs(t, err, models.ErrInvalidChoice)
}

func TestOutcomeResult(t *testing.T) {
	assert.Equal(t, ResultWin, OutcomeFirstWins.Result())
	assert.Equal(t, ResultLose, OutcomeSecondWins.Result())
	assert.Equal(t, ResultTie, OutcomeTie.Result())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Scissors cuts Paper", Describe(models.ChoiceScissors, models.ChoicePaper))
	assert.Equal(t, "Spock vaporizes Rock", Describe(models.ChoiceSpock, models.ChoiceRock))
	assert.Equal(t, "Lizard eats Paper", Describe(models.ChoiceLizard, models.ChoicePaper))
	assert.Empty(t, Describe(models.ChoicePaper, models.ChoiceScissors))
}
