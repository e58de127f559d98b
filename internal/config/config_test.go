package config

import (
	"path/filepath"
	"testing"

	"github.com/aretw0/chain/internal/testutils"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.States, 5)
	assert.Equal(t, "Solicitud Enviada (SE)", cfg.Initial)
	assert.Equal(t, 20, cfg.Iterations)
	assert.Equal(t, 4, cfg.Trials)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Trials = 0
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)

	cfg = Default()
	cfg.Iterations = -1
	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)

	cfg = Default()
	cfg.Initial = "Rechazada"
	assert.ErrorIs(t, cfg.Validate(), domain.ErrUnknownState)

	cfg = Default()
	cfg.Matrix[0] = []float64{0.2, 0.7, 0, 0, 0}
	assert.ErrorIs(t, cfg.Validate(), domain.ErrRowSum)
}

func TestValidateLimit(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.ValidateLimit(MaxSteps))

	cfg.Iterations, cfg.Trials = 1000, 1000
	assert.NoError(t, cfg.ValidateLimit(MaxSteps))

	cfg.Iterations = 1001
	assert.ErrorIs(t, cfg.ValidateLimit(MaxSteps), domain.ErrInvalidConfig)

	cfg.Iterations, cfg.Trials = 1_000_000_000, 1000
	assert.ErrorIs(t, cfg.ValidateLimit(MaxSteps), domain.ErrInvalidConfig)
}

func TestLoad_YAML(t *testing.T) {
	path := testutils.WriteFile(t, "chain.yaml", `
states: ["A", "B"]
matrix:
  - [0.5, 0.5]
  - [0.0, 1.0]
trials: 10
seed: 99
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, cfg.States)
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0, 1}}, cfg.Matrix)
	assert.Equal(t, "A", cfg.Initial, "initial defaults to first state")
	assert.Equal(t, 20, cfg.Iterations, "iterations fall back to default")
	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_JSON(t *testing.T) {
	path := testutils.WriteFile(t, "chain.json", `{"iterations": 7, "initial": "En Revisión (ER)"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().States, cfg.States)
	assert.Equal(t, 7, cfg.Iterations)
	assert.Equal(t, "En Revisión (ER)", cfg.Initial)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(testutils.WriteFile(t, "bad.yaml", "states: [A]\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = Load(testutils.WriteFile(t, "typo.yaml", "trails: 3\n"))
	assert.Error(t, err)

	_, err = Load(testutils.WriteFile(t, "typo.json", `{"trails": 3}`))
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(testutils.WriteFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg, err := applyEnv(Default(), env.Options{
		Prefix: EnvPrefix,
		Environment: map[string]string{
			"CHAIN_TRIALS":    "12",
			"CHAIN_SEED":      "5",
			"CHAIN_LOG_LEVEL": "debug",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Trials)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Iterations, "unset variables keep their value")

	_, err = applyEnv(Default(), env.Options{
		Prefix:      EnvPrefix,
		Environment: map[string]string{"CHAIN_TRIALS": "many"},
	})
	assert.Error(t, err)
}

func TestApplyEnv_Process(t *testing.T) {
	t.Setenv("CHAIN_ITERATIONS", "3")
	cfg, err := ApplyEnv(Default())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Iterations)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(Default(), map[string]any{
		"trials":     "6",
		"iterations": float64(9),
		"seed":       float64(123),
	})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Trials)
	assert.Equal(t, 9, cfg.Iterations)
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, Default().States, cfg.States)
}

func TestFromMap_JSONStrings(t *testing.T) {
	cfg, err := FromMap(Default(), map[string]any{
		"states": `["X", "Y"]`,
		"matrix": `[[0, 1], [1, 0]]`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, cfg.States)
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, cfg.Matrix)
	assert.Equal(t, "X", cfg.Initial)
	assert.NoError(t, cfg.Validate())
}

func TestFromMap_Errors(t *testing.T) {
	_, err := FromMap(Default(), map[string]any{"bogus": 1})
	assert.Error(t, err)

	_, err = FromMap(Default(), map[string]any{"matrix": "not json"})
	assert.Error(t, err)
}

func TestFromMap_DoesNotMutateBase(t *testing.T) {
	base := Default()
	_, err := FromMap(base, map[string]any{"matrix": [][]float64{{1}}})
	require.NoError(t, err)
	assert.Equal(t, Default(), base)
}
