package runner

import (
	"context"

	"github.com/aretw0/migkairl/pkg/domain"
)

// CommandKind tells the runner what to do with a Command.
type CommandKind int

const (
	// CommandSelect applies the action at Command.Action.
	CommandSelect CommandKind = iota
	// CommandSubmit stores Command.Text in the entry buffer and applies the submit action.
	CommandSubmit
	// CommandUpdate only stores Command.Text in the entry buffer.
	CommandUpdate
	// CommandQuit ends the loop.
	CommandQuit
)

// Command is one parsed player input.
type Command struct {
	Kind   CommandKind
	Action int
	Text   string
}

// IOHandler defines the strategy for interacting with the player.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the view of the current state.
	Output(ctx context.Context, state domain.State, view domain.View) error

	// Input reads the next command for view.
	Input(ctx context.Context, view domain.View) (Command, error)

	// SystemOutput presents a meta-message (hints, status) distinct from game content.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer transforms markdown before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
