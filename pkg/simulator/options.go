package simulator

import (
	"math/rand"

	"github.com/aretw0/chain/pkg/domain"
)

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes the random stream reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
		s.seeded = true
	}
}

// WithRand injects a caller-owned random source. It takes precedence over
// WithSeed, and Seed then reports 0.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) {
		s.rng = r
	}
}

// WithHooks registers a per-step observer.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Simulator) {
		s.hooks = hooks
	}
}
