/*
Package migkairl is the "Savisaac Migkairl" party game: a replayable loop of
screens (home menu, trivia, personalized challenges, drink outcomes) driven by
a deterministic state machine.

The game separates what is on screen (State) from how it is shown (View).
Frontends render a View, collect the player's choice and hand the chosen
Action back; the Game returns the next State. Trivia content lives in a
content bank that is built once at startup and shared read-only.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/migkairl"
		"github.com/aretw0/migkairl/pkg/session"
	)

	func main() {
		game, err := migkairl.New()
		if err != nil {
			log.Fatal(err)
		}

		s := session.New(game)
		ctx := context.Background()

		// Home -> Unique -> Carl
		for _, i := range []int{1, 0} {
			if _, err := s.Select(ctx, i); err != nil {
				log.Fatal(err)
			}
		}
		fmt.Println(s.View().Lines)
	}
*/
package migkairl
