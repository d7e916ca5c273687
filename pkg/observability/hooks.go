package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/migkairl/pkg/domain"
)

// ComposeHooks fans each event out to every non-nil hook, in order.
func ComposeHooks(all ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLeave: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, h := range all {
				if h.OnLeave != nil {
					h.OnLeave(ctx, e)
				}
			}
		},
		OnEnter: func(ctx context.Context, e *domain.TransitionEvent) {
			for _, h := range all {
				if h.OnEnter != nil {
					h.OnEnter(ctx, e)
				}
			}
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			for _, h := range all {
				if h.OnOutcome != nil {
					h.OnOutcome(ctx, e)
				}
			}
		},
	}
}

// DebugHooks logs every lifecycle event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLeave: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Debug("Leave Screen", "session_id", e.SessionID, "kind", e.From)
		},
		OnEnter: func(ctx context.Context, e *domain.TransitionEvent) {
			logger.Debug("Enter Screen", "session_id", e.SessionID, "kind", e.To, "action", e.Action)
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			logger.Debug("Drinks", "session_id", e.SessionID, "kind", e.Kind, "correct", e.Correct, "count", e.Count)
		},
	}
}
