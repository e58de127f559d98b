package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CHAIN_"

type envOverrides struct {
	Initial    *string `env:"INITIAL"`
	Iterations *int    `env:"ITERATIONS"`
	Trials     *int    `env:"TRIALS"`
	Seed       *int64  `env:"SEED"`
	LogLevel   *string `env:"LOG_LEVEL"`
}

// ApplyEnv overlays CHAIN_INITIAL, CHAIN_ITERATIONS, CHAIN_TRIALS, CHAIN_SEED
// and CHAIN_LOG_LEVEL from the process environment.
func ApplyEnv(cfg Config) (Config, error) {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix})
}

func applyEnv(cfg Config, opts env.Options) (Config, error) {
	var o envOverrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	out := cfg.Clone()
	if o.Initial != nil {
		out.Initial = *o.Initial
	}
	if o.Iterations != nil {
		out.Iterations = *o.Iterations
	}
	if o.Trials != nil {
		out.Trials = *o.Trials
	}
	if o.Seed != nil {
		out.Seed = *o.Seed
	}
	if o.LogLevel != nil {
		out.LogLevel = *o.LogLevel
	}
	return out, nil
}
