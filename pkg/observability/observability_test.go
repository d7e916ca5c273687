package observability

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/migkairl/internal/logging"
	"github.com/aretw0/migkairl/pkg/domain"
)

func scrape(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestMetrics_HooksIncrementCounters(t *testing.T) {
	m := NewMetrics()
	h := m.Hooks()
	ctx := context.Background()

	h.OnEnter(ctx, &domain.TransitionEvent{From: domain.KindHome, To: domain.KindTrivia})
	h.OnEnter(ctx, &domain.TransitionEvent{From: domain.KindTrivia, To: domain.KindTrivia})
	h.OnEnter(ctx, &domain.TransitionEvent{From: domain.KindTrivia, To: domain.KindDrink})
	h.OnOutcome(ctx, &domain.OutcomeEvent{Kind: domain.KindDrink, Correct: false, Count: 4})
	h.OnOutcome(ctx, &domain.OutcomeEvent{Kind: domain.KindGiveDrinks, Correct: true, Count: 5})

	code, body := scrape(t, NewRouter(m), "/metrics")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `migkairl_transitions_total{from="home",to="trivia"} 1`)
	assert.Contains(t, body, `migkairl_transitions_total{from="trivia",to="trivia"} 1`)
	assert.Contains(t, body, "migkairl_trivia_draws_total 2")
	assert.Contains(t, body, `migkairl_outcomes_total{correct="false",kind="drink"} 1`)
	assert.Contains(t, body, `migkairl_drinks_total{direction="take"} 4`)
	assert.Contains(t, body, `migkairl_drinks_total{direction="give"} 5`)
}

func TestRouter_Healthz(t *testing.T) {
	code, body := scrape(t, NewRouter(NewMetrics()), "/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)
}

func TestComposeHooks(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnEnter: func(context.Context, *domain.TransitionEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnEnter:   func(context.Context, *domain.TransitionEvent) { calls = append(calls, "b") },
		OnOutcome: func(context.Context, *domain.OutcomeEvent) { calls = append(calls, "b-outcome") },
	}

	h := ComposeHooks(a, domain.LifecycleHooks{}, b)
	h.OnLeave(context.Background(), &domain.TransitionEvent{})
	h.OnEnter(context.Background(), &domain.TransitionEvent{})
	h.OnOutcome(context.Background(), &domain.OutcomeEvent{})

	assert.Equal(t, []string{"a", "b", "b-outcome"}, calls)
}

func TestDebugHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, false)
	h := DebugHooks(logger)

	h.OnEnter(context.Background(), &domain.TransitionEvent{SessionID: "s1", To: domain.KindUnique, Action: "Unique"})
	h.OnOutcome(context.Background(), &domain.OutcomeEvent{Kind: domain.KindDrink, Count: 3})

	assert.Contains(t, buf.String(), "Enter Screen")
	assert.Contains(t, buf.String(), "session_id=s1")
	assert.Contains(t, buf.String(), "count=3")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, "127.0.0.1:0", NewMetrics(), logging.NewNop()) }()
	cancel()
	assert.NoError(t, <-done)
}
