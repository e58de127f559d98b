package simulator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
)

// Simulator draws state sequences from a validated model.
type Simulator struct {
	model  *model.Model
	rng    *rand.Rand
	seed   int64
	seeded bool
	hooks  domain.LifecycleHooks
}

// New builds a Simulator over m. Without WithSeed or WithRand the stream is
// seeded from the clock; Seed reports the value used.
func New(m *model.Model, opts ...Option) (*Simulator, error) {
	if m == nil {
		return nil, domain.ErrModelRequired
	}

	s := &Simulator{model: m}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng != nil {
		// An injected source cannot be replayed from a seed.
		s.seed, s.seeded = 0, false
		return s, nil
	}

	if !s.seeded {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	return s, nil
}

// Model returns the model the simulator samples from.
func (s *Simulator) Model() *model.Model {
	return s.model
}

// Seed returns the seed of the internal stream, or 0 when the source was
// injected with WithRand, even if WithSeed was also given.
func (s *Simulator) Seed() int64 {
	return s.seed
}

// Simulate returns a trial of exactly length states starting at initial.
// A length of 1 performs no sampling.
func (s *Simulator) Simulate(initial domain.State, length int) (domain.Trial, error) {
	if length < 1 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidLength, length)
	}
	current, ok := s.model.Index(initial)
	if !ok {
		return nil, &domain.UnknownStateError{State: initial}
	}

	trial := make(domain.Trial, 1, length)
	trial[0] = initial

	for step := 1; step < length; step++ {
		next := s.sample(current)
		trial = append(trial, s.model.State(next))

		if s.hooks.OnStep != nil {
			s.hooks.OnStep(&domain.StepEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStep},
				Step:      step,
				From:      s.model.State(current),
				To:        s.model.State(next),
			})
		}
		current = next
	}

	return trial, nil
}

// sample draws the index of the state following state row, which must be a
// valid model index. It consumes exactly one uniform value from the stream.
func (s *Simulator) sample(row int) int {
	return pick(s.model.Cumulative(row), s.rng.Float64())
}

// pick returns the first bucket whose cumulative probability exceeds u.
func pick(cdf []float64, u float64) int {
	j := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
	if j < len(cdf) {
		return j
	}

	// Row sums slightly below 1 leave a sliver above the last bucket.
	// Land on the last column that carries probability.
	for j = len(cdf) - 1; j > 0; j-- {
		if cdf[j] > cdf[j-1] {
			return j
		}
	}
	return 0
}
