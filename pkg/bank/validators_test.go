package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/migkairl/pkg/domain"
)

func TestKeywords(t *testing.T) {
	v := Keywords{Any: []string{"name", "last"}, Match: domain.GiveDrinks{Count: 4}, Miss: domain.DrinkCount(2)}

	tests := []struct {
		input string
		want  domain.State
	}{
		{"It's our last NAME", domain.GiveDrinks{Count: 4}},
		{"NAMES", domain.GiveDrinks{Count: 4}},
		{"the LaSt one", domain.GiveDrinks{Count: 4}},
		{"", domain.Drink{Correct: false, Count: 2}},
		{"no idea", domain.Drink{Correct: false, Count: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.input))
		})
	}
}

func TestExact(t *testing.T) {
	v := Exact{Answer: "grace", Match: domain.DrinkCount(1), Miss: domain.DrinkCount(3)}

	assert.Equal(t, domain.Drink{Correct: true, Count: 1}, v.Validate("  Grace\n"))
	assert.Equal(t, domain.Drink{Correct: false, Count: 3}, v.Validate("grace kelly"))
	assert.Equal(t, domain.Drink{Correct: false, Count: 3}, v.Validate(""))
}

func TestNumberEquals(t *testing.T) {
	v := NumberEquals{Value: 1, Match: domain.GiveDrinks{Count: 5}, Miss: domain.Drink{Correct: false, Count: 3}}

	for _, in := range []string{"1.0", "1", " 1.0 ", "1e0", "+1", "1.00000001"} {
		assert.Equal(t, domain.GiveDrinks{Count: 5}, v.Validate(in), "input %q", in)
	}
	for _, in := range []string{"2", "abc", "", "1k", "0.9"} {
		assert.Equal(t, domain.Drink{Correct: false, Count: 3}, v.Validate(in), "input %q", in)
	}
}
