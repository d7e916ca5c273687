package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/migkairl/internal/logging"
	"github.com/aretw0/migkairl/pkg/domain"
)

// Machine applies actions to states. It holds no game state of its own:
// given the same state, action and entry buffer it returns the same result.
type Machine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
	now    func() time.Time
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// NewMachine creates a machine.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Apply resolves act against the entry buffer and returns the next state.
// An action that resolves to nil sends the player Home rather than leaving
// them on a screen without a way out.
func (m *Machine) Apply(ctx context.Context, from domain.State, act domain.Action, entry string) domain.State {
	next := act.Resolve(entry)
	if next == nil {
		m.logger.Warn("Action resolved to no state, returning home", "action", act.Label)
		next = domain.Home{}
	}

	ev := &domain.TransitionEvent{
		Timestamp: m.now(),
		SessionID: SessionID(ctx),
		From:      kindOf(from),
		To:        next.Kind(),
		Action:    act.Label,
	}
	if m.hooks.OnLeave != nil {
		m.hooks.OnLeave(ctx, ev)
	}
	m.logger.Debug("Transition", "session_id", ev.SessionID, "from", ev.From, "to", ev.To, "action", ev.Action)
	if m.hooks.OnEnter != nil {
		m.hooks.OnEnter(ctx, ev)
	}

	m.emitOutcome(ctx, next)
	return next
}

func (m *Machine) emitOutcome(ctx context.Context, next domain.State) {
	var out *domain.OutcomeEvent
	switch s := next.(type) {
	case domain.Drink:
		out = &domain.OutcomeEvent{Kind: domain.KindDrink, Correct: s.Correct, Count: s.Count}
	case domain.GiveDrinks:
		out = &domain.OutcomeEvent{Kind: domain.KindGiveDrinks, Correct: true, Count: s.Count}
	default:
		return
	}
	out.Timestamp = m.now()
	out.SessionID = SessionID(ctx)

	m.logger.Info("Outcome", "session_id", out.SessionID, "kind", out.Kind, "correct", out.Correct, "count", out.Count)
	if m.hooks.OnOutcome != nil {
		m.hooks.OnOutcome(ctx, out)
	}
}

func kindOf(s domain.State) domain.Kind {
	if s == nil {
		return domain.KindHome
	}
	return s.Kind()
}
