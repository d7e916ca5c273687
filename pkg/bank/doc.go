/*
Package bank holds the trivia content of the game.

A Bank is built once at startup, validated non-empty, and shared read-only
afterwards. Random draws go through a Source so tests and seeded games are
deterministic.

# Content

Reference returns the built-in question set. Decks written in YAML can
replace or extend it:

	items:
	  - multiple_choice: "Which Evan is \"Black Evan\"?"
	    choices:
	      - { label: "Evan Holmes", drink: 4 }
	      - { label: "Evan Hoerl", drink: 1 }
	  - short_answer: "Who did Jesus fail to woo?"
	    match: keywords
	    answers: [frulam, mondath]
	    pass: { give: 3 }
	    fail: { drink: 3 }
*/
package bank
