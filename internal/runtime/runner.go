package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/simulator"
	"github.com/aretw0/chain/pkg/stats"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aretw0/chain/internal/runtime"

// Plan describes one multi-trial run.
type Plan struct {
	Initial    domain.State
	Iterations int
	Trials     int
}

// Validate checks the run parameters. The initial state is checked by the simulator.
func (p Plan) Validate() error {
	if p.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", domain.ErrInvalidConfig, p.Iterations)
	}
	if p.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", domain.ErrInvalidConfig, p.Trials)
	}
	return nil
}

// Runner executes trials one after another and aggregates them.
// It is not safe for concurrent use because the simulator is not.
type Runner struct {
	sim    *simulator.Simulator
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	tracer trace.Tracer
}

// NewRunner creates a runner over sim.
func NewRunner(sim *simulator.Simulator, opts ...RunnerOption) *Runner {
	r := &Runner{
		sim:    sim,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run simulates plan.Trials trials and returns them with their statistics.
// The context is checked between trials; a cancelled run returns no result.
func (r *Runner) Run(ctx context.Context, plan Plan) (res *domain.Result, err error) {
	ctx, span := r.tracer.Start(ctx, "chain.Run", trace.WithAttributes(
		attribute.Int("chain.trials", plan.Trials),
		attribute.Int("chain.iterations", plan.Iterations),
		attribute.String("chain.initial", string(plan.Initial)),
	))
	started := time.Now()

	r.emitRun(ctx, r.hooks.OnRunStart, domain.EventRunStart, plan, 0, nil)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		r.emitRun(ctx, r.hooks.OnRunEnd, domain.EventRunEnd, plan, time.Since(started), err)
	}()

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	trials := make([]domain.Trial, 0, plan.Trials)
	for i := 0; i < plan.Trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.emitTrial(ctx, r.hooks.OnTrialStart, domain.EventTrialStart, i, plan.Initial, nil)
		trial, err := r.sim.Simulate(plan.Initial, plan.Iterations)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		r.emitTrial(ctx, r.hooks.OnTrialEnd, domain.EventTrialEnd, i, plan.Initial, trial)

		trials = append(trials, trial)
	}

	r.logger.DebugContext(ctx, "trials generated", "count", len(trials), "iterations", plan.Iterations)
	return r.collect(trials)
}

func (r *Runner) collect(trials []domain.Trial) (*domain.Result, error) {
	summary, err := stats.Summarize(trials)
	if err != nil {
		return nil, err
	}

	states := r.sim.Model().States()
	paths, err := stats.Trajectories(states, trials)
	if err != nil {
		return nil, err
	}

	return &domain.Result{
		States:       states,
		Trials:       trials,
		Trajectories: paths,
		Order:        summary.Order,
		Counts:       summary.Counts,
		Total:        summary.Total,
		Frequencies:  summary.Frequencies,
		DwellTimes:   summary.DwellTimes,
		RunLengths:   stats.RunLengths(trials),
		Seed:         r.sim.Seed(),
	}, nil
}

func (r *Runner) emitRun(ctx context.Context, hook func(context.Context, *domain.RunEvent), typ domain.EventType, plan Plan, d time.Duration, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.RunEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: typ},
		Trials:     plan.Trials,
		Iterations: plan.Iterations,
		Initial:    plan.Initial,
		Duration:   d,
		Err:        err,
	})
}

func (r *Runner) emitTrial(ctx context.Context, hook func(context.Context, *domain.TrialEvent), typ domain.EventType, i int, initial domain.State, trial domain.Trial) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.TrialEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: typ},
		Trial:     i,
		Initial:   initial,
		Final:     trial.Last(),
		Steps:     trial.Len(),
	})
}
