package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/aretw0/migkairl/internal/logging"
	"github.com/aretw0/migkairl/internal/runtime"
	"github.com/aretw0/migkairl/pkg/domain"
)

// Engine is the part of the game a session drives.
// *migkairl.Game implements it.
type Engine interface {
	Start() domain.State
	Render(state domain.State, entry string) domain.View
	Apply(ctx context.Context, state domain.State, act domain.Action, entry string) domain.State
}

// Session is the current screen plus the in-progress text entry.
// Safe for concurrent use.
type Session struct {
	id     string
	engine Engine
	logger *slog.Logger

	mu    sync.RWMutex
	state domain.State
	entry string
}

// Option configures a Session.
type Option func(*Session)

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithLogger configures a logger for the Session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitialState starts the session somewhere other than the engine's start screen.
func WithInitialState(state domain.State) Option {
	return func(s *Session) {
		s.state = state
	}
}

// New creates a session positioned on the engine's start screen.
func New(engine Engine, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.state == nil {
		s.state = engine.Start()
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current screen.
func (s *Session) State() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Entry returns the entry buffer.
func (s *Session) Entry() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entry
}

// View renders the current screen.
func (s *Session) View() domain.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Render(s.state, s.entry)
}

// RequestState replaces the current screen. A nil state is treated as the start screen.
func (s *Session) RequestState(state domain.State) {
	if state == nil {
		state = s.engine.Start()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("State requested", "kind", state.Kind())
	s.state = state
}

// UpdateEntry replaces the entry buffer.
func (s *Session) UpdateEntry(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry = text
}

// Select applies the i-th action of the current view and returns the new state.
func (s *Session) Select(ctx context.Context, i int) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.engine.Render(s.state, s.entry)
	if i < 0 || i >= len(view.Actions) {
		return s.state, fmt.Errorf("%w: %d of %d", domain.ErrActionOutOfRange, i, len(view.Actions))
	}
	return s.applyLocked(ctx, view.Actions[i]), nil
}

// Submit stores text in the entry buffer and applies the view's submit action.
// The buffer is left untouched when the view takes no input.
func (s *Session) Submit(ctx context.Context, text string) (domain.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.engine.Render(s.state, text)
	idx := view.SubmitIndex()
	if view.Input == nil || idx < 0 {
		return s.state, domain.ErrNoInput
	}
	s.entry = text
	return s.applyLocked(ctx, view.Actions[idx]), nil
}

// Reset returns to the start screen and clears the entry buffer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = s.engine.Start()
	s.entry = ""
}

func (s *Session) applyLocked(ctx context.Context, act domain.Action) domain.State {
	ctx = runtime.WithSessionID(ctx, s.id)
	s.state = s.engine.Apply(ctx, s.state, act, s.entry)
	return s.state
}
