package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/migkairl/internal/presentation/tui"
	"github.com/aretw0/migkairl/pkg/observability"
	"github.com/aretw0/migkairl/pkg/runner"
	"github.com/aretw0/migkairl/pkg/session"
)

// RunPlay builds the game from opts and plays one session until the player quits.
func RunPlay(ctx context.Context, opts PlayOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	logger := createLogger(opts.Debug)

	var metrics *observability.Metrics
	if opts.MetricsAddr != "" {
		metrics = observability.NewMetrics()
	}

	game, err := createGame(opts, logger, metrics)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var serveErr chan error
	if metrics != nil {
		serveErr = make(chan error, 1)
		go func() { serveErr <- observability.Serve(ctx, opts.MetricsAddr, metrics, logger) }()
	}

	s := session.New(game, session.WithLogger(logger))
	logger.Info("Session Created", "session_id", s.ID(), "items", game.Bank().Len(), "seeded", game.Bank().Seeded())

	interactive := !opts.JSON && !opts.Plain && isTerminal(opts.Stdout)
	if interactive {
		tui.PrintBanner(opts.Stdout)
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(createHandler(opts, interactive)),
	)
	runErr := r.Run(ctx, s)

	if errors.Is(runErr, runner.ErrInterrupted) && !opts.JSON {
		fmt.Fprintln(opts.Stdout)
		printSystemMessage(opts.Stdout, "Interrupted. Drink responsibly.")
	}

	cancel()
	if serveErr != nil {
		if err := <-serveErr; err != nil && runErr == nil {
			return fmt.Errorf("metrics server: %w", err)
		}
	}
	return handleExecutionError(runErr)
}

func createHandler(opts PlayOptions, interactive bool) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(opts.Stdin, opts.Stdout)
	}
	var handlerOpts []runner.TextHandlerOption
	if interactive {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer(terminalWidth(opts.Stdout))))
	}
	return runner.NewTextHandler(opts.Stdin, opts.Stdout, handlerOpts...)
}
