package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/chain/pkg/domain"
)

// Combine fans every event out to all hook sets, in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks

	for _, h := range sets {
		if h.OnRunStart != nil {
			prev, next := out.OnRunStart, h.OnRunStart
			out.OnRunStart = func(ctx context.Context, e *domain.RunEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
		if h.OnRunEnd != nil {
			prev, next := out.OnRunEnd, h.OnRunEnd
			out.OnRunEnd = func(ctx context.Context, e *domain.RunEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
		if h.OnTrialStart != nil {
			prev, next := out.OnTrialStart, h.OnTrialStart
			out.OnTrialStart = func(ctx context.Context, e *domain.TrialEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
		if h.OnTrialEnd != nil {
			prev, next := out.OnTrialEnd, h.OnTrialEnd
			out.OnTrialEnd = func(ctx context.Context, e *domain.TrialEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				next(ctx, e)
			}
		}
		if h.OnStep != nil {
			prev, next := out.OnStep, h.OnStep
			out.OnStep = func(e *domain.StepEvent) {
				if prev != nil {
					prev(e)
				}
				next(e)
			}
		}
	}
	return out
}

// LoggingHooks logs run and trial boundaries. Steps are logged at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_start",
				"trials", e.Trials,
				"iterations", e.Iterations,
				"initial", e.Initial,
			)
		},
		OnRunEnd: func(ctx context.Context, e *domain.RunEvent) {
			if e.Err != nil {
				logger.ErrorContext(ctx, "run_failed", "error", e.Err, "duration", e.Duration)
				return
			}
			logger.InfoContext(ctx, "run_complete", "trials", e.Trials, "duration", e.Duration)
		},
		OnTrialStart: func(ctx context.Context, e *domain.TrialEvent) {
			logger.DebugContext(ctx, "trial_start", "trial", e.Trial, "initial", e.Initial)
		},
		OnTrialEnd: func(ctx context.Context, e *domain.TrialEvent) {
			logger.DebugContext(ctx, "trial_end", "trial", e.Trial, "final", e.Final, "steps", e.Steps)
		},
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("step", "step", e.Step, "from", e.From, "to", e.To)
		},
	}
}
