package bank

import "github.com/aretw0/migkairl/pkg/domain"

// Reference returns the built-in trivia set, in a fixed order.
func Reference() []domain.TriviaItem {
	return []domain.TriviaItem{
		multipleChoice(`Which Evan is "Black Evan"?`,
			countChoice("Evan Holmes", 4),
			countChoice("Evan Hoerl", 1),
		),
		multipleChoice("What was Waffles' very first transformation?",
			countChoice("Giant Toad", 3),
			countChoice("Snake", 4),
			countChoice("Bear", 1),
			countChoice("Swarm of Fleas", 4),
			countChoice("Veloceraptor", 5),
		),
		multipleChoice(`Who came up with the name "Savisaac Migkairl"?`,
			countChoice(domain.Carl.String(), 3),
			countChoice(domain.Isaac.String(), 3),
			countChoice(domain.Kai.String(), 1),
			countChoice(domain.Miguel.String(), 3),
			countChoice(domain.Savannah.String(), 3),
		),
		domain.ShortAnswer{
			Prompt: "Savannah has a mountain tattoo which is very similar to that of who?",
			Validator: Exact{
				Answer: "grace",
				Match:  domain.DrinkCount(1),
				Miss:   domain.DrinkCount(3),
			},
		},
		domain.ShortAnswer{
			Prompt: `What is the significance of the phrase "Santa Clara Java Virtual Machine"?`,
			Validator: Keywords{
				Any:   []string{"name", "last"},
				Match: domain.GiveDrinks{Count: 4},
				Miss:  domain.DrinkCount(2),
			},
		},
		domain.ShortAnswer{
			Prompt: "Who did Jesus fail to woo?",
			Validator: Keywords{
				Any:   []string{"frulam", "mondath"},
				Match: domain.GiveDrinks{Count: 3},
				Miss:  domain.DrinkCount(3),
			},
		},
		domain.ShortAnswer{
			Prompt: "Which stupid senior design project beat Isaac, Miguel, Carl, and Evan?",
			Validator: Keywords{
				Any:   []string{"human", "keyboard"},
				Match: domain.GiveDrinks{Count: 3},
				Miss:  domain.DrinkCount(3),
			},
		},
		aloneQuestion(),
	}
}

func aloneQuestion() domain.MultipleChoice {
	kai := domain.Generic{Screen: KaiAlone}
	choices := make([]domain.Choice, 6)
	for i := range choices {
		choices[i] = domain.Choice{Label: "Kai", Next: kai}
	}
	return domain.MultipleChoice{Prompt: "Who is completely and uterly alone?", Choices: choices}
}

func multipleChoice(prompt string, choices ...domain.Choice) domain.MultipleChoice {
	return domain.MultipleChoice{Prompt: prompt, Choices: choices}
}

func countChoice(label string, n int) domain.Choice {
	return domain.Choice{Label: label, Next: domain.DrinkCount(n)}
}
