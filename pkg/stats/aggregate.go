package stats

import (
	"github.com/aretw0/chain/pkg/domain"
)

// Summary holds the raw counts of a batch of trials and the statistics derived from them.
type Summary struct {
	// Order lists states by first appearance, scanning trials in order.
	Order       []domain.State
	Counts      map[domain.State]int
	Total       int
	Frequencies domain.Frequencies
	DwellTimes  domain.DwellTimes
}

// Summarize tallies visits across all trials.
// States never visited are absent from every map.
func Summarize(trials []domain.Trial) (*Summary, error) {
	if len(trials) == 0 {
		return nil, domain.ErrEmptyInput
	}

	s := &Summary{
		Counts:      make(map[domain.State]int),
		Frequencies: make(domain.Frequencies),
		DwellTimes:  make(domain.DwellTimes),
	}
	for _, trial := range trials {
		for _, state := range trial {
			if _, seen := s.Counts[state]; !seen {
				s.Order = append(s.Order, state)
			}
			s.Counts[state]++
			s.Total++
		}
	}

	for state, count := range s.Counts {
		s.Frequencies[state] = float64(count) / float64(s.Total)
		s.DwellTimes[state] = float64(s.Total) / float64(count)
	}
	return s, nil
}

// Aggregate returns per-state frequencies and mean dwell times over trials.
func Aggregate(trials []domain.Trial) (domain.Frequencies, domain.DwellTimes, error) {
	s, err := Summarize(trials)
	if err != nil {
		return nil, nil, err
	}
	return s.Frequencies, s.DwellTimes, nil
}
