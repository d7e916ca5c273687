package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/migkairl/internal/logging"
	"github.com/aretw0/migkairl/pkg/domain"
	"github.com/aretw0/migkairl/pkg/session"
)

var (
	// ErrUnknownCommand is returned by handlers for input they cannot interpret.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInterrupted is returned by Run when a signal or cancellation ends the loop.
	ErrInterrupted = errors.New("interrupted")
)

// Runner drives a session through an IOHandler until the player quits.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Renderer is used by the default TextHandler only.
	Renderer ContentRenderer

	Logger  *slog.Logger
	Signals bool
}

// NewRunner creates a Runner with a no-op logger and signal handling enabled.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:  logging.NewNop(),
		Signals: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run loops render, output, input and apply until quit, EOF or cancellation.
// Quit and EOF return nil; a signal or cancelled ctx returns ErrInterrupted.
func (r *Runner) Run(ctx context.Context, s *session.Session) error {
	handler := r.resolveHandler()

	var signals *SignalManager
	if r.Signals {
		signals = NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	logger := r.Logger.With("session_id", s.ID())
	redraw := true
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
		}

		view := s.View()
		if redraw {
			if err := handler.Output(ctx, s.State(), view); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
		redraw = true

		cmd, err := handler.Input(ctx, view)
		if err != nil {
			if signals != nil {
				signals.CheckRace()
			}
			if ctx.Err() != nil {
				logger.Debug("Runner input: Context cancelled", "err", ctx.Err())
				return fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
			}
			if errors.Is(err, io.EOF) {
				logger.Debug("Runner input: EOF")
				return nil
			}
			if hint, ok := hintFor(err); ok {
				if err := handler.SystemOutput(ctx, hint); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				redraw = false
				continue
			}
			return fmt.Errorf("input error: %w", err)
		}

		quit, err := r.apply(ctx, logger, s, cmd)
		if quit {
			logger.Debug("Runner quit")
			return nil
		}
		if err != nil {
			hint, ok := hintFor(err)
			if !ok {
				return err
			}
			if err := handler.SystemOutput(ctx, hint); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			redraw = false
		}
	}
}

func (r *Runner) apply(ctx context.Context, logger *slog.Logger, s *session.Session, cmd Command) (bool, error) {
	switch cmd.Kind {
	case CommandQuit:
		return true, nil
	case CommandSelect:
		next, err := s.Select(ctx, cmd.Action)
		if err != nil {
			return false, err
		}
		logger.Debug("Runner select", "action", cmd.Action, "kind", next.Kind())
	case CommandSubmit:
		next, err := s.Submit(ctx, cmd.Text)
		if err != nil {
			return false, err
		}
		logger.Debug("Runner submit", "kind", next.Kind())
	case CommandUpdate:
		s.UpdateEntry(cmd.Text)
	default:
		return false, fmt.Errorf("%w: kind %d", ErrUnknownCommand, cmd.Kind)
	}
	return false, nil
}

// hintFor turns recoverable player mistakes into a message; anything else is fatal.
func hintFor(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return fmt.Sprintf("%v. Pick an action number, or type quit.", err), true
	case errors.Is(err, domain.ErrActionOutOfRange):
		return fmt.Sprintf("%v. No such action.", err), true
	case errors.Is(err, domain.ErrNoInput):
		return "This screen takes no answer. Pick an action number.", true
	case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidUTF8):
		return fmt.Sprintf("Error: %v. Please try again.", err), true
	}
	return "", false
}

func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	th := NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = th
	return th
}
