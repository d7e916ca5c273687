package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Resolve(t *testing.T) {
	eager := Action{Label: "Home", Target: Home{}}
	assert.False(t, eager.IsSubmit())
	assert.Equal(t, Home{}, eager.Resolve("ignored"))

	lazy := Action{Label: "Submit", Submit: ValidatorFunc(func(s string) State {
		return DrinkCount(len(s))
	})}
	assert.True(t, lazy.IsSubmit())
	assert.Equal(t, DrinkCount(3), lazy.Resolve("abc"))
	assert.Equal(t, DrinkCount(0), lazy.Resolve(""))
}

func TestView_SubmitIndexAndHome(t *testing.T) {
	v := View{Actions: []Action{
		{Label: "Submit", Submit: ValidatorFunc(func(string) State { return Home{} })},
		HomeAction(),
	}}
	assert.Equal(t, 0, v.SubmitIndex())
	assert.True(t, v.HomeReachable())

	// A submit action that happens to return Home does not count as a path home.
	only := View{Actions: v.Actions[:1]}
	assert.False(t, only.HomeReachable())
	assert.Equal(t, -1, View{}.SubmitIndex())
}
