package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/migkairl/pkg/domain"
)

func findShortAnswer(t *testing.T, prefix string) domain.ShortAnswer {
	t.Helper()
	for _, item := range Reference() {
		if sa, ok := item.(domain.ShortAnswer); ok && len(sa.Prompt) >= len(prefix) && sa.Prompt[:len(prefix)] == prefix {
			return sa
		}
	}
	t.Fatalf("no short answer starting with %q", prefix)
	return domain.ShortAnswer{}
}

func TestReference_Size(t *testing.T) {
	assert.Len(t, Reference(), 8)
}

func TestReference_SantaClara(t *testing.T) {
	q := findShortAnswer(t, "What is the significance")

	for _, in := range []string{"name", "Last names", "something about a NAME"} {
		assert.Equal(t, domain.GiveDrinks{Count: 4}, q.Evaluate(in), "input %q", in)
	}
	// A plain count of 2 is the wrong-answer path.
	for _, in := range []string{"", "java", "virtual machines"} {
		assert.Equal(t, domain.Drink{Correct: false, Count: 2}, q.Evaluate(in), "input %q", in)
	}
}

func TestReference_Tattoo(t *testing.T) {
	q := findShortAnswer(t, "Savannah has a mountain tattoo")
	assert.Equal(t, domain.Drink{Correct: true, Count: 1}, q.Evaluate(" GRACE "))
	assert.Equal(t, domain.Drink{Correct: false, Count: 3}, q.Evaluate("Kai"))
}

func TestReference_MultipleChoiceCounts(t *testing.T) {
	items := Reference()

	evans := items[0].(domain.MultipleChoice)
	assert.Equal(t, domain.Drink{Correct: false, Count: 4}, evans.Choices[0].Next)
	assert.Equal(t, domain.Drink{Correct: true, Count: 1}, evans.Choices[1].Next)

	name := items[2].(domain.MultipleChoice)
	labels := make([]string, len(name.Choices))
	for i, c := range name.Choices {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{"Carl", "Isaac", "Kai", "Miguel", "Savannah"}, labels)
	assert.Equal(t, domain.DrinkCount(1), name.Choices[2].Next)
}

func TestReference_AloneSharesScreen(t *testing.T) {
	alone := Reference()[7].(domain.MultipleChoice)
	require.Len(t, alone.Choices, 6)

	for i, c := range alone.Choices {
		assert.Equal(t, "Kai", c.Label)
		g, ok := c.Next.(domain.Generic)
		require.True(t, ok, "choice %d", i)
		assert.Same(t, KaiAlone, g.Screen)
	}

	v := KaiAlone.Render()
	assert.Equal(t, []string{"Give Kai 5 drinks to help dull his need for companionship."}, v.Lines)
	require.Len(t, v.Actions, 1)
	assert.Equal(t, domain.Home{}, v.Actions[0].Target)
}
