package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/migkairl"
	"github.com/aretw0/migkairl/pkg/bank"
	"github.com/aretw0/migkairl/pkg/session"
)

// Pick is a bank.Source that always draws the same reference item.
type Pick int

func (p Pick) IntN(n int) int { return int(p) % n }

// NewGame builds a game over the reference bank whose every draw is item.
// It fails the test immediately on error.
func NewGame(t *testing.T, item int, opts ...migkairl.Option) *migkairl.Game {
	t.Helper()

	opts = append([]migkairl.Option{migkairl.WithBank(bank.Default(bank.WithSource(Pick(item))))}, opts...)
	game, err := migkairl.New(opts...)
	require.NoError(t, err, "Failed to build game")
	return game
}

// NewSession starts a session on a game built by NewGame.
func NewSession(t *testing.T, item int, opts ...session.Option) *session.Session {
	t.Helper()
	return session.New(NewGame(t, item), opts...)
}
