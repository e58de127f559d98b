package domain

// State is a label of the finite, ordered state set.
type State string

// Trial is the ordered sequence of states visited by one simulation run.
// Element 0 is always the initial state.
type Trial []State

// Len returns the number of steps in the trial.
func (t Trial) Len() int {
	return len(t)
}

// Last returns the state the trial ended in, or "" for an empty trial.
func (t Trial) Last() State {
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

// Strings returns the trial as plain labels.
func (t Trial) Strings() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = string(s)
	}
	return out
}

// Frequencies maps each observed state to visits(state) / total visits.
type Frequencies map[State]float64

// DwellTimes maps each observed state to total visits / visits(state).
// This is a global inverse frequency, not a consecutive-run measurement.
type DwellTimes map[State]float64

// Result is everything a visualization sink needs from a run.
type Result struct {
	// States is the ordered label set of the model (index order for Trajectories).
	States []string `json:"states"`

	// Trials holds the raw state sequences, one per trial.
	Trials []Trial `json:"trials"`

	// Trajectories holds the same sequences as indices into States.
	Trajectories [][]int `json:"trajectories"`

	// Order lists observed states by first appearance across trials.
	Order []State `json:"order"`

	Counts      map[State]int `json:"counts"`
	Total       int           `json:"total"`
	Frequencies Frequencies   `json:"frequencies"`
	DwellTimes  DwellTimes    `json:"dwell_times"`

	// RunLengths is the mean number of consecutive steps spent in a state.
	RunLengths map[State]float64 `json:"run_lengths,omitempty"`

	// Seed is the seed the run used, 0 when the source was not seeded.
	Seed int64 `json:"seed,omitempty"`
}
