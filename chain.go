package chain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/chain/internal/runtime"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
	"github.com/aretw0/chain/pkg/observability"
	"github.com/aretw0/chain/pkg/simulator"
	"github.com/aretw0/chain/pkg/stats"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Engine is the high-level entry point for running simulations.
// It is not safe for concurrent use: build one Engine per goroutine.
type Engine struct {
	model   *model.Model
	sim     *simulator.Simulator
	runner  *runtime.Runner
	metrics *observability.Metrics

	seed     *int64
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	tracer   trace.Tracer
	registry prometheus.Registerer
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSeed fixes the engine's random stream. Engines built with the same seed
// reproduce the same sequence of runs; consecutive runs on one engine continue
// the stream rather than repeat it.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = &seed
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = observability.Combine(e.hooks, hooks)
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics registers Prometheus collectors on reg and records every run.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithTracer sets the tracer used for run spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// New validates cfg and initializes an Engine over it.
func New(cfg model.Config, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m, err := model.New(cfg)
	if err != nil {
		eng.logger.Error("validation_failed", "error", err)
		return nil, err
	}
	eng.model = m

	hooks := observability.Combine(observability.LoggingHooks(eng.logger), eng.hooks)
	if eng.registry != nil {
		eng.metrics = observability.NewMetrics(eng.registry)
		hooks = observability.Combine(hooks, eng.metrics.Hooks())
	}

	simOpts := []simulator.Option{simulator.WithHooks(hooks)}
	if eng.seed != nil {
		simOpts = append(simOpts, simulator.WithSeed(*eng.seed))
	}
	eng.sim, err = simulator.New(m, simOpts...)
	if err != nil {
		return nil, err
	}

	eng.runner = runtime.NewRunner(eng.sim,
		runtime.WithLifecycleHooks(hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithTracer(eng.tracer),
	)
	return eng, nil
}

// Model returns the validated transition model.
func (e *Engine) Model() *model.Model {
	return e.model
}

// Seed returns the seed of the engine's random stream.
func (e *Engine) Seed() int64 {
	return e.sim.Seed()
}

// Metrics returns the Prometheus collectors, or nil without WithMetrics.
func (e *Engine) Metrics() *observability.Metrics {
	return e.metrics
}

// Simulate generates a single trial.
func (e *Engine) Simulate(initial domain.State, length int) (domain.Trial, error) {
	return e.sim.Simulate(initial, length)
}

// Run generates trials sequentially and aggregates them.
func (e *Engine) Run(ctx context.Context, initial domain.State, iterations, trials int) (*domain.Result, error) {
	res, err := e.runner.Run(ctx, runtime.Plan{
		Initial:    initial,
		Iterations: iterations,
		Trials:     trials,
	})
	if err != nil {
		return nil, fmt.Errorf("run failed: %w", err)
	}
	return res, nil
}

// Validate checks a matrix against its state labels without building an Engine.
func Validate(matrix [][]float64, states []string) error {
	return model.Validate(matrix, states)
}

// Aggregate computes frequencies and mean dwell times over trials.
func Aggregate(trials []domain.Trial) (domain.Frequencies, domain.DwellTimes, error) {
	return stats.Aggregate(trials)
}
