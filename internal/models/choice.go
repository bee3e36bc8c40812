package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Choice is one of the five RPSLS symbols
type Choice int

const (
	// ChoiceUnknown is the zero value and is never valid input
	ChoiceUnknown Choice = iota

	// ChoiceRock is rock
	ChoiceRock

	// ChoicePaper is paper
	ChoicePaper

	// ChoiceScissors is scissors
	ChoiceScissors

	// ChoiceLizard is lizard
	ChoiceLizard

	// ChoiceSpock is spock
	ChoiceSpock
)

// ChoiceCount is the size of the closed choice set
const ChoiceCount = 5

var choiceNames = map[Choice]string{
	ChoiceRock:     "Rock",
	ChoicePaper:    "Paper",
	ChoiceScissors: "Scissors",
	ChoiceLizard:   "Lizard",
	ChoiceSpock:    "Spock",
}

// AllChoices returns every valid choice in id order
func AllChoices() []Choice {
	return []Choice{ChoiceRock, ChoicePaper, ChoiceScissors, ChoiceLizard, ChoiceSpock}
}

// Valid reports whether c is one of the five symbols
func (c Choice) Valid() bool {
	return c >= ChoiceRock && c <= ChoiceSpock
}

// ID returns the numeric id of the choice
func (c Choice) ID() int {
	return int(c)
}

// String returns the canonical name of the choice
func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Ptr returns a pointer to a copy of c
func (c Choice) Ptr() *Choice {
	return &c
}

// ValidateChoice returns ErrInvalidChoice unless c is one of the five symbols
func ValidateChoice(c Choice) error {
	if !c.Valid() {
		return ErrInvalidChoice
	}
	return nil
}

// ParseChoice converts a name (case-insensitive) or a numeric id into a Choice
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ChoiceUnknown, ErrInvalidChoice
	}

	if id, err := strconv.Atoi(s); err == nil {
		c := Choice(id)
		if !c.Valid() {
			return ChoiceUnknown, ErrInvalidChoice
		}
		return c, nil
	}

	for c, name := range choiceNames {
		if strings.EqualFold(name, s) {
			return c, nil
		}
	}

	return ChoiceUnknown, ErrInvalidChoice
}

// MarshalJSON encodes the choice by name
func (c Choice) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidChoice
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts either a name or a numeric id
func (c *Choice) UnmarshalJSON(data []byte) error {
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return ErrInvalidChoice
		}
	} else {
		raw = string(data)
	}

	parsed, err := ParseChoice(raw)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}
