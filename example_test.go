package migkairl_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/migkairl"
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/domain"
	"github.com/aretw0/migkairl/pkg/session"
)

// ExampleNew plays one trivia question through a session.
// A single-item bank keeps the draw deterministic.
func ExampleNew() {
	b, err := bank.New(bank.Reference()[:1])
	if err != nil {
		log.Fatal(err)
	}
	game, err := migkairl.New(migkairl.WithBank(b))
	if err != nil {
		log.Fatal(err)
	}

	s := session.New(game)
	ctx := context.Background()

	s.Select(ctx, 0) // Trivia
	fmt.Println(s.View().Lines[0])

	next, _ := s.Select(ctx, 1) // Evan Hoerl
	fmt.Println(next.Kind(), s.View().Lines[0])

	// Output:
	// Which Evan is "Black Evan"?
	// drink Correct! Take only 1 drink!
}

// ExampleGame_Apply grades Miguel's circuit question directly, without a session.
func ExampleGame_Apply() {
	game, err := migkairl.New()
	if err != nil {
		log.Fatal(err)
	}

	miguel := domain.Unique{Person: domain.Miguel}
	view := game.Render(miguel, "")
	submit := view.Actions[view.SubmitIndex()]

	for _, entry := range []string{"1.0", " 1 ", "one"} {
		next := game.Apply(context.Background(), miguel, submit, entry)
		fmt.Println(game.Render(next, "").Lines[0])
	}

	// Output:
	// Correct! Give out 5 drinks!
	// Correct! Give out 5 drinks!
	// Wrong! Take 3 drinks!
}
