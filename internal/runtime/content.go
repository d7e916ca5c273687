package runtime

import (
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/domain"
)

// uniqueContent is the personalized screen of one player.
type uniqueContent struct {
	lines []string
	image string

	// check is set when the screen asks for an answer.
	check domain.Validator
}

// MiguelCheck grades the op-amp question: R1 must be 1 kΩ.
var MiguelCheck = bank.NumberEquals{
	Value: 1.0,
	Match: domain.GiveDrinks{Count: 5},
	Miss:  domain.Drink{Correct: false, Count: 3},
}

var uniqueScreens = map[domain.Person]uniqueContent{
	domain.Carl: {lines: []string{
		"Escuzi! Bopity boopy!",
		"Take 3 drinks while doing an Italian gesture with your free hand.",
	}},
	domain.Isaac: {lines: []string{
		"Do some pushups, then take a number of drinks equal to forty minus how many pushups you did. " +
			"If you do more than forty, you may give out drinks.",
	}},
	domain.Kai: {lines: []string{
		"Have a conversation with Miguel in Spanish. Miguel may decide how many drinks you take based " +
			"on how good your pronunciation, grammar, and comprehension are.",
	}},
	domain.Miguel: {
		lines: []string{
			"In the circuit shown below R2 = 2 kΩ.",
			"Assume that the op-amp is ideal.",
			"Determine the value of R1 so that the closed-loop gain, G = vO / vS = 3.",
		},
		image: "op_amp.png",
		check: MiguelCheck,
	},
	domain.Savannah: {lines: []string{
		"Come up with familial relations that relate all of the other players, i.e. Miguel is Carl's dad. " +
			"For the rest of the game, other players must speak to eachother as if they are actually related " +
			"in the way you define. Anyone who does not adhear must drink.",
	}},
	domain.Guest: {lines: []string{
		"The five founders of Savisaac Migkairl stand and look down on you while you take 5 drinks.",
	}},
}
