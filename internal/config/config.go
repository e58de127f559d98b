package config

import (
	"fmt"
	"slices"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
)

// MaxSteps bounds iterations×trials for runs requested by remote callers.
const MaxSteps = 1_000_000

// Config is the full input surface of a simulation run.
type Config struct {
	States     []string    `yaml:"states" json:"states" mapstructure:"states"`
	Matrix     [][]float64 `yaml:"matrix" json:"matrix" mapstructure:"matrix"`
	Initial    string      `yaml:"initial" json:"initial" mapstructure:"initial"`
	Iterations int         `yaml:"iterations" json:"iterations" mapstructure:"iterations"`
	Trials     int         `yaml:"trials" json:"trials" mapstructure:"trials"`
	// Seed makes runs reproducible. Zero means seed from the clock.
	Seed     int64  `yaml:"seed" json:"seed" mapstructure:"seed"`
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
}

// Default returns the SGR guarantee-request lifecycle example.
func Default() Config {
	return Config{
		States: []string{
			"Solicitud Enviada (SE)",
			"En Revisión (ER)",
			"Aprobada (AP)",
			"Desembolso (DE)",
			"Seguimiento (SG)",
		},
		Matrix: [][]float64{
			{0.2, 0.8, 0.0, 0.0, 0.0},
			{0.3, 0.1, 0.6, 0.0, 0.0},
			{0.0, 0.0, 0.1, 0.9, 0.0},
			{0.0, 0.0, 0.0, 0.3, 0.7},
			{0.0, 0.0, 0.0, 0.0, 1.0},
		},
		Initial:    "Solicitud Enviada (SE)",
		Iterations: 20,
		Trials:     4,
		LogLevel:   "info",
	}
}

// Model returns the transition part of the configuration.
func (c Config) Model() model.Config {
	return model.Config{States: c.States, Matrix: c.Matrix}
}

// Clone returns a deep copy.
func (c Config) Clone() Config {
	out := c
	out.States = slices.Clone(c.States)
	out.Matrix = make([][]float64, len(c.Matrix))
	for i, row := range c.Matrix {
		out.Matrix[i] = slices.Clone(row)
	}
	return out
}

// Validate checks run parameters and the transition model.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be >= 1, got %d", domain.ErrInvalidConfig, c.Iterations)
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be >= 1, got %d", domain.ErrInvalidConfig, c.Trials)
	}
	if err := model.Validate(c.Matrix, c.States); err != nil {
		return err
	}
	if !slices.Contains(c.States, c.Initial) {
		return &domain.UnknownStateError{State: domain.State(c.Initial)}
	}
	return nil
}

// ValidateLimit rejects plans that would generate more than maxSteps states in total.
func (c Config) ValidateLimit(maxSteps int) error {
	if c.Trials > 0 && c.Iterations > maxSteps/c.Trials {
		return fmt.Errorf("%w: iterations×trials (%d×%d) exceeds the limit of %d states",
			domain.ErrInvalidConfig, c.Iterations, c.Trials, maxSteps)
	}
	return nil
}
