package stats

import (
	"github.com/aretw0/chain/pkg/domain"
)

// Trajectories converts trials into index sequences over states, for plotting.
func Trajectories(states []string, trials []domain.Trial) ([][]int, error) {
	index := make(map[domain.State]int, len(states))
	for i, s := range states {
		index[domain.State(s)] = i
	}

	out := make([][]int, len(trials))
	for t, trial := range trials {
		seq := make([]int, len(trial))
		for i, s := range trial {
			idx, ok := index[s]
			if !ok {
				return nil, &domain.UnknownStateError{State: s}
			}
			seq[i] = idx
		}
		out[t] = seq
	}
	return out, nil
}

// RunLengths returns the mean length of consecutive runs spent in each state.
// A run is cut at trial boundaries.
func RunLengths(trials []domain.Trial) map[domain.State]float64 {
	steps := make(map[domain.State]int)
	runs := make(map[domain.State]int)

	for _, trial := range trials {
		for i, s := range trial {
			steps[s]++
			if i == 0 || trial[i-1] != s {
				runs[s]++
			}
		}
	}

	out := make(map[domain.State]float64, len(runs))
	for s, n := range runs {
		out[s] = float64(steps[s]) / float64(n)
	}
	return out
}
