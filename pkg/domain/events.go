package domain

import (
	"context"
	"time"
)

// TransitionEvent describes a single State replacement.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	From      Kind      `json:"from"`
	To        Kind      `json:"to"`
	Action    string    `json:"action"`
}

// OutcomeEvent is emitted when a transition lands on a drink outcome.
type OutcomeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	Kind      Kind      `json:"kind"`
	Correct   bool      `json:"correct"`
	Count     int       `json:"count"`
}

// LifecycleHooks defines callbacks for game observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnLeave   func(context.Context, *TransitionEvent)
	OnEnter   func(context.Context, *TransitionEvent)
	OnOutcome func(context.Context, *OutcomeEvent)
}
