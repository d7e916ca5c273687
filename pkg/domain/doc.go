/*
Package domain contains the core models of the Migkairl party game.

It defines the screen state space, the trivia content types and the render
description handed to frontends. This package is kept pure and free of I/O,
randomness and persistence, following the same split as the rest of the
module: frontends render a View, the runtime applies Actions.

# Key Entities

  - Person: The closed set of players with personalized screens.
  - State: A sealed union of screens (Home, Trivia, ChoosePerson, Unique, Drink, GiveDrinks, Generic).
  - TriviaItem: A question plus its grading rule (MultipleChoice or ShortAnswer).
  - View: What a frontend should show and which Actions are available.
*/
package domain
