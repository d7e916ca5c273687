package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/migkairl"
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/domain"
	"github.com/aretw0/migkairl/pkg/observability"
)

// loadItems returns the trivia a bank should hold: the deck, the reference
// set, or both.
func loadItems(deckPath string, withReference bool) ([]domain.TriviaItem, error) {
	if deckPath == "" {
		return bank.Reference(), nil
	}
	items, err := bank.LoadFile(deckPath)
	if err != nil {
		return nil, err
	}
	if withReference {
		items = append(items, bank.Reference()...)
	}
	return items, nil
}

// createBank builds the content bank with CLI conventions.
func createBank(opts PlayOptions) (*bank.Bank, error) {
	items, err := loadItems(opts.DeckPath, opts.WithReference)
	if err != nil {
		return nil, err
	}
	var bankOpts []bank.Option
	if opts.Seeded {
		bankOpts = append(bankOpts, bank.WithSeed(opts.Seed))
	}
	b, err := bank.New(items, bankOpts...)
	if err != nil {
		return nil, fmt.Errorf("error building content bank: %w", err)
	}
	return b, nil
}

// createGame wires bank, logger and hooks into a Game.
// Metrics may be nil.
func createGame(opts PlayOptions, logger *slog.Logger, metrics *observability.Metrics) (*migkairl.Game, error) {
	b, err := createBank(opts)
	if err != nil {
		return nil, err
	}

	var hooks []domain.LifecycleHooks
	if opts.Debug {
		hooks = append(hooks, observability.DebugHooks(logger))
	}
	if metrics != nil {
		hooks = append(hooks, metrics.Hooks())
	}

	gameOpts := []migkairl.Option{
		migkairl.WithBank(b),
		migkairl.WithLogger(logger),
	}
	if len(hooks) > 0 {
		gameOpts = append(gameOpts, migkairl.WithLifecycleHooks(observability.ComposeHooks(hooks...)))
	}

	game, err := migkairl.New(gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing game: %w", err)
	}
	return game, nil
}
