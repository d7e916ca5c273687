package migkairl

import (
	"context"
	"log/slog"

	"github.com/aretw0/migkairl/internal/logging"
	"github.com/aretw0/migkairl/internal/runtime"
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/domain"
)

// Version is the release of the game.
const Version = "0.1.0"

// Game is the high-level entry point of the Migkairl library.
// It wires the content bank, the view dispatcher and the transition machine.
// A Game holds no per-player state and may back any number of sessions.
type Game struct {
	bank       *bank.Bank
	dispatcher *runtime.Dispatcher
	machine    *runtime.Machine
	hooks      domain.LifecycleHooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithBank sets the content bank. Defaults to the reference content.
func WithBank(b *bank.Bank) Option {
	return func(g *Game) {
		g.bank = b
	}
}

// WithLogger sets a custom structured logger for the game.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(g *Game) {
		g.hooks = hooks
	}
}

// New initializes a Game. The content bank is fixed from here on.
func New(opts ...Option) (*Game, error) {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}

	if g.bank == nil {
		b, err := bank.New(bank.Reference())
		if err != nil {
			return nil, err
		}
		g.bank = b
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}

	g.dispatcher = runtime.NewDispatcher(g.bank)
	g.machine = runtime.NewMachine(
		runtime.WithLogger(g.logger),
		runtime.WithLifecycleHooks(g.hooks),
	)

	g.logger.Debug("Game initialized", "items", g.bank.Len(), "seeded", g.bank.Seeded())
	return g, nil
}

// Start returns the initial screen.
func (g *Game) Start() domain.State {
	return domain.Home{}
}

// Render builds the view for state. The entry buffer is echoed in input fields.
func (g *Game) Render(state domain.State, entry string) domain.View {
	return g.dispatcher.Render(state, entry)
}

// Apply resolves act and returns the next state.
func (g *Game) Apply(ctx context.Context, state domain.State, act domain.Action, entry string) domain.State {
	return g.machine.Apply(ctx, state, act, entry)
}

// Bank returns the content bank.
func (g *Game) Bank() *bank.Bank {
	return g.bank
}

// Logger returns the game logger.
func (g *Game) Logger() *slog.Logger {
	return g.logger
}
