package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipleChoice_Evaluate(t *testing.T) {
	shared := Generic{Screen: &staticScreen{}}
	q := MultipleChoice{
		Prompt: "Pick one",
		Choices: []Choice{
			{Label: "a", Next: DrinkCount(4)},
			{Label: "b", Next: GiveDrinks{Count: 2}},
			{Label: "c", Next: shared},
			{Label: "d", Next: Drink{Correct: true, Count: 7}},
		},
	}

	for i, c := range q.Choices {
		got, err := q.Evaluate(i)
		require.NoError(t, err)
		assert.Equal(t, c.Next, got, "choice %d", i)
	}
}

func TestMultipleChoice_EvaluateOutOfRange(t *testing.T) {
	q := MultipleChoice{Prompt: "?", Choices: []Choice{{Label: "only", Next: Home{}}}}

	for _, i := range []int{-1, 1, 10} {
		_, err := q.Evaluate(i)
		assert.ErrorIs(t, err, ErrChoiceOutOfRange)
	}
}

func TestShortAnswer_EvaluatePassesRawText(t *testing.T) {
	var seen string
	q := ShortAnswer{
		Prompt: "Say something",
		Validator: ValidatorFunc(func(s string) State {
			seen = s
			if strings.TrimSpace(s) == "yes" {
				return GiveDrinks{Count: 1}
			}
			return DrinkCount(3)
		}),
	}

	assert.Equal(t, GiveDrinks{Count: 1}, q.Evaluate("  yes "))
	assert.Equal(t, "  yes ", seen)
	assert.Equal(t, DrinkCount(3), q.Evaluate(""))
	assert.Equal(t, "Say something", q.Question())
}

type staticScreen struct{ view View }

func (s *staticScreen) Render() View { return s.view }
