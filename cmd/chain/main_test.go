package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/chain/internal/testutils"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoStates = `
states: [A, B]
matrix:
  - [0.5, 0.5]
  - [0, 1]
iterations: 6
trials: 3
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// resetFlags undoes values left on the shared command tree by earlier calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "chain version "))
}

func TestValidateCommand(t *testing.T) {
	path := testutils.WriteFile(t, "model.yaml", twoStates)

	out, err := execute(t, "validate", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 states)")

	bad := testutils.WriteFile(t, "bad.yaml", "states: [A, B]\nmatrix: [[0.5, 0.4], [0, 1]]\n")
	_, err = execute(t, "validate", "--config", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRowSum)
}

func TestSimulateCommand_JSON(t *testing.T) {
	path := testutils.WriteFile(t, "model.yaml", twoStates)

	out, err := execute(t, "simulate", "--config", path, "--seed", "5", "--json")
	require.NoError(t, err)

	var res domain.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Trials, 3)
	assert.Equal(t, 18, res.Total)
	assert.Equal(t, int64(5), res.Seed)
	for _, trial := range res.Trials {
		assert.Equal(t, domain.State("A"), trial[0])
	}
}

func TestSimulateCommand_Plain(t *testing.T) {
	path := testutils.WriteFile(t, "model.yaml", twoStates)

	out, err := execute(t, "simulate", "--config", path, "--seed", "5", "--plain", "--trials", "2", "--initial", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "State frequencies (averaged over all trials):")
	assert.Contains(t, out, "B: 1.00")
}

func TestGraphCommand(t *testing.T) {
	path := testutils.WriteFile(t, "model.yaml", twoStates)

	out, err := execute(t, "graph", "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR"))
	assert.Contains(t, out, `s0 -- "0.50" --> s1`)
}
