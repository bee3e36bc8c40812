package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Choice
		wantErr  bool
	}{
		{name: "canonical name", input: "Rock", expected: ChoiceRock},
		{name: "lower case", input: "spock", expected: ChoiceSpock},
		{name: "padded", input: "  lizard ", expected: ChoiceLizard},
		{name: "numeric id", input: "3", expected: ChoiceScissors},
		{name: "zero id", input: "0", wantErr: true},
		{name: "out of range id", input: "6", wantErr: true},
		{name: "negative id", input: "-1", wantErr: true},
		{name: "unknown name", input: "well", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			choice, err := ParseChoice(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidChoice)
				assert.Equal(t, ChoiceUnknown, choice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, choice)
		})
	}
}

func TestValidateChoice(t *testing.T) {
	for _, c := range AllChoices() {
		assert.NoError(t, ValidateChoice(c), c.String())
	}

	assert.ErrorIs(t, ValidateChoice(ChoiceUnknown), ErrInvalidChoice)
	assert.ErrorIs(t, ValidateChoice(Choice(ChoiceCount+1)), ErrInvalidChoice)
}

func TestAllChoicesAreDistinctAndValid(t *testing.T) {
	choices := AllChoices()
	require.Len(t, choices, ChoiceCount)

	seen := make(map[Choice]bool)
	for i, c := range choices {
		assert.True(t, c.Valid())
		assert.Equal(t, i+1, c.ID())
		assert.False(t, seen[c])
		seen[c] = true
	}
}

func TestChoiceJSON(t *testing.T) {
	data, err := json.Marshal(ChoiceLizard)
	require.NoError(t, err)
	assert.JSONEq(t, `"Lizard"`, string(data))

	var fromName Choice
	require.NoError(t, json.Unmarshal([]byte(`"paper"`), &fromName))
	assert.Equal(t, ChoicePaper, fromName)

	var fromID Choice
	require.NoError(t, json.Unmarshal([]byte(`5`), &fromID))
	assert.Equal(t, ChoiceSpock, fromID)

	var invalid Choice
	assert.ErrorIs(t, json.Unmarshal([]byte(`7`), &invalid), ErrInvalidChoice)

	_, err = json.Marshal(ChoiceUnknown)
	assert.Error(t, err)
}

func TestSessionCloneIsDeep(t *testing.T) {
	original := NewSession("session-id", testTime)
	original.Players = append(original.Players, &Player{Name: "Alice", Choice: ChoiceRock.Ptr()})

	clone := original.Clone()
	clone.Players[0].Name = "Mallory"
	*clone.Players[0].Choice = ChoicePaper
	clone.Players = append(clone.Players, &Player{Name: "Bob"})

	assert.Equal(t, "Alice", original.Players[0].Name)
	assert.Equal(t, ChoiceRock, *original.Players[0].Choice)
	assert.Len(t, original.Players, 1)
}

func TestSessionAllChosen(t *testing.T) {
	session := NewSession("session-id", testTime)
	assert.False(t, session.AllChosen())

	session.Players = []*Player{{Name: "Alice", Choice: ChoiceRock.Ptr()}}
	assert.False(t, session.AllChosen(), "one seat is not a full table")

	session.Players = append(session.Players, &Player{Name: "Bob"})
	assert.False(t, session.AllChosen())

	session.Players[1].Choice = ChoiceSpock.Ptr()
	assert.True(t, session.AllChosen())
}
