package domain

// Transition is one non-zero cell of a transition matrix.
type Transition struct {
	From        State   `json:"from" yaml:"from"`
	To          State   `json:"to" yaml:"to"`
	Probability float64 `json:"probability" yaml:"probability"`
}

// IsLoop reports whether the transition stays in the same state.
func (t Transition) IsLoop() bool {
	return t.From == t.To
}
