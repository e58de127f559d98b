package model

import (
	"fmt"
	"slices"

	"github.com/aretw0/chain/pkg/domain"
)

// Config is the immutable description of a chain: its ordered labels and matrix.
type Config struct {
	States []string    `json:"states" yaml:"states" mapstructure:"states"`
	Matrix [][]float64 `json:"matrix" yaml:"matrix" mapstructure:"matrix"`
}

// Model is a validated transition matrix. It is safe for concurrent reads.
type Model struct {
	states []string
	index  map[domain.State]int
	matrix [][]float64
	// cumulative[i][j] is the probability of landing in any column <= j from row i.
	cumulative [][]float64
}

// New validates cfg and returns a Model that owns a private copy of it.
func New(cfg Config) (*Model, error) {
	if err := Validate(cfg.Matrix, cfg.States); err != nil {
		return nil, fmt.Errorf("invalid transition model: %w", err)
	}

	m := &Model{
		states:     slices.Clone(cfg.States),
		index:      make(map[domain.State]int, len(cfg.States)),
		matrix:     make([][]float64, len(cfg.Matrix)),
		cumulative: make([][]float64, len(cfg.Matrix)),
	}
	for i, s := range m.states {
		m.index[domain.State(s)] = i
	}
	for i, row := range cfg.Matrix {
		m.matrix[i] = slices.Clone(row)
		m.cumulative[i] = cumulate(row)
	}
	return m, nil
}

func cumulate(row []float64) []float64 {
	cdf := make([]float64, len(row))
	acc := 0.0
	for j, p := range row {
		acc += p
		cdf[j] = acc
	}
	return cdf
}

// Len returns the number of states K.
func (m *Model) Len() int {
	return len(m.states)
}

// States returns a copy of the ordered state labels.
func (m *Model) States() []string {
	return slices.Clone(m.states)
}

// State returns the label at index i.
func (m *Model) State(i int) domain.State {
	return domain.State(m.states[i])
}

// Index returns the position of s in the state list.
func (m *Model) Index(s domain.State) (int, bool) {
	i, ok := m.index[s]
	return i, ok
}

// Row returns a copy of the transition probabilities out of state i.
func (m *Model) Row(i int) []float64 {
	return slices.Clone(m.matrix[i])
}

// Cumulative returns the cumulative distribution of row i.
// The returned slice is shared and must not be modified.
func (m *Model) Cumulative(i int) []float64 {
	return m.cumulative[i]
}

// Matrix returns a deep copy of the transition matrix.
func (m *Model) Matrix() [][]float64 {
	out := make([][]float64, len(m.matrix))
	for i, row := range m.matrix {
		out[i] = slices.Clone(row)
	}
	return out
}

// Config returns a copy of the configuration the model was built from.
func (m *Model) Config() Config {
	return Config{States: m.States(), Matrix: m.Matrix()}
}

// IsAbsorbing reports whether state i can only transition to itself.
func (m *Model) IsAbsorbing(i int) bool {
	return m.matrix[i][i] == 1
}

// Transitions lists every non-zero cell in row-major order.
func (m *Model) Transitions() []domain.Transition {
	var out []domain.Transition
	for i, row := range m.matrix {
		for j, p := range row {
			if p == 0 {
				continue
			}
			out = append(out, domain.Transition{
				From:        domain.State(m.states[i]),
				To:          domain.State(m.states[j]),
				Probability: p,
			})
		}
	}
	return out
}
