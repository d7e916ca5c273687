package cli

import (
	"io"
)

// PlayOptions contains all the configuration for the play command.
type PlayOptions struct {
	DeckPath      string
	WithReference bool
	Seed          uint64
	Seeded        bool
	JSON          bool
	Plain         bool
	Debug         bool
	MetricsAddr   string

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}
