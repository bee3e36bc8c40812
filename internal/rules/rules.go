// Package rules holds the RPSLS beats relation and resolves a pair of
// choices into an outcome.
package rules

import (
	"fmt"

	"github.com/KirkDiggler/rpsls/internal/models"
)

// Outcome is the result of resolving two choices, from the first choice's side
type Outcome int

const (
	// OutcomeTie means both choices were the same
	OutcomeTie Outcome = iota

	// OutcomeFirstWins means the first choice beats the second
	OutcomeFirstWins

	// OutcomeSecondWins means the second choice beats the first
	OutcomeSecondWins
)

// Result strings used on the wire
const (
	ResultWin  = "win"
	ResultLose = "lose"
	ResultTie  = "tie"
)

// String returns a readable name for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeTie:
		return "tie"
	case OutcomeFirstWins:
		return "first_wins"
	case OutcomeSecondWins:
		return "second_wins"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result maps the outcome to win/lose/tie from the first player's side
func (o Outcome) Result() string {
	switch o {
	case OutcomeFirstWins:
		return ResultWin
	case OutcomeSecondWins:
		return ResultLose
	default:
		return ResultTie
	}
}

// Invert swaps the point of view of the outcome
func (o Outcome) Invert() Outcome {
	switch o {
	case OutcomeFirstWins:
		return OutcomeSecondWins
	case OutcomeSecondWins:
		return OutcomeFirstWins
	default:
		return o
	}
}

// victory is one edge of the beats relation
type victory struct {
	loser models.Choice
	verb  string
}

// beats maps each choice to the two choices it defeats
var beats = map[models.Choice][2]victory{
	models.ChoiceRock:     {{models.ChoiceScissors, "crushes"}, {models.ChoiceLizard, "crushes"}},
	models.ChoicePaper:    {{models.ChoiceRock, "covers"}, {models.ChoiceSpock, "disproves"}},
	models.ChoiceScissors: {{models.ChoicePaper, "cuts"}, {models.ChoiceLizard, "decapitates"}},
	models.ChoiceLizard:   {{models.ChoiceSpock, "poisons"}, {models.ChoicePaper, "eats"}},
	models.ChoiceSpock:    {{models.ChoiceScissors, "smashes"}, {models.ChoiceRock, "vaporizes"}},
}

// Beats reports whether a defeats b
func Beats(a, b models.Choice) bool {
	_, ok := edge(a, b)
	return ok
}

// Defeats returns the two choices c beats
func Defeats(c models.Choice) []models.Choice {
	edges, ok := beats[c]
	if !ok {
		return nil
	}
	return []models.Choice{edges[0].loser, edges[1].loser}
}

// Resolve decides the outcome of a against b
func Resolve(a, b models.Choice) (Outcome, error) {
	if err := models.ValidateChoice(a); err != nil {
		return OutcomeTie, err
	}
	if err := models.ValidateChoice(b); err != nil {
		return OutcomeTie, err
	}

	if a == b {
		return OutcomeTie, nil
	}

	if Beats(a, b) {
		return OutcomeFirstWins, nil
	}

	// the relation is a complete tournament so b must beat a here
	return OutcomeSecondWins, nil
}

// Describe renders a winning pair as "Scissors cuts Paper". It returns an
// empty string if winner does not beat loser.
func Describe(winner, loser models.Choice) string {
	v, ok := edge(winner, loser)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %s %s", winner, v.verb, loser)
}

func edge(a, b models.Choice) (victory, bool) {
	for _, v := range beats[a] {
		if v.loser == b {
			return v, true
		}
	}
	return victory{}, false
}
