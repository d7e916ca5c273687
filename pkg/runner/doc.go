/*
Package runner implements the play loop and I/O orchestration for the game.

It is the bridge between a session and the outside world: each turn it renders
the current view through an IOHandler, reads one command and applies it to the
session.

# Key Components

  - Runner: The loop (render, output, input, apply) until quit or EOF.
  - IOHandler: Decouples how views are shown and commands are read.
  - TextHandler: Numbered menus and free-text answers for terminals.
  - JSONHandler: NDJSON frames and commands for scripts and tests.

# Usage

	game, _ := migkairl.New()
	s := session.New(game)

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	if err := r.Run(ctx, s); err != nil {
		log.Fatal(err)
	}
*/
package runner
