package runtime

import (
	"log/slog"

	"github.com/aretw0/chain/pkg/domain"
	"go.opentelemetry.io/otel/trace"
)

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLifecycleHooks registers run and trial observers.
func WithLifecycleHooks(hooks domain.LifecycleHooks) RunnerOption {
	return func(r *Runner) {
		r.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer overrides the tracer obtained from the global provider.
func WithTracer(tracer trace.Tracer) RunnerOption {
	return func(r *Runner) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}
