package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/chain/pkg/model"
	"github.com/stretchr/testify/require"
)

// WriteFile creates name inside a fresh temp dir with the given content.
// It returns the absolute path and fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")
	require.NoError(t, os.WriteFile(absPath, []byte(content), 0o644), "Failed to write %s", name)

	return absPath
}

// Identity returns a validated model where every state is absorbing.
func Identity(t *testing.T, labels ...string) *model.Model {
	t.Helper()

	matrix := make([][]float64, len(labels))
	for i := range labels {
		matrix[i] = make([]float64, len(labels))
		matrix[i][i] = 1
	}
	m, err := model.New(model.Config{States: labels, Matrix: matrix})
	require.NoError(t, err, "Failed to build identity model")

	return m
}
