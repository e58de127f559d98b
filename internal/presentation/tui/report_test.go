package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *domain.Result {
	return &domain.Result{
		States: []string{"A", "B", "C"},
		Trials: []domain.Trial{
			{"A", "B", "B"},
			{"A", "A", "C"},
		},
		Trajectories: [][]int{{0, 1, 1}, {0, 0, 2}},
		Order:        []domain.State{"A", "B", "C"},
		Counts:       map[domain.State]int{"A": 3, "B": 2, "C": 1},
		Total:        6,
		Frequencies:  domain.Frequencies{"A": 0.5, "B": 1.0 / 3, "C": 1.0 / 6},
		DwellTimes:   domain.DwellTimes{"A": 2, "B": 3, "C": 6},
		RunLengths:   map[domain.State]float64{"A": 1.5, "B": 2, "C": 1},
		Seed:         42,
	}
}

func TestPlain(t *testing.T) {
	out := Plain(sampleResult())

	assert.Contains(t, out, "A: 0.50\nB: 0.33\nC: 0.17\n")
	assert.Contains(t, out, "A: 2.00\nB: 3.00\nC: 6.00\n")
	assert.Less(t, strings.Index(out, "frequencies"), strings.Index(out, "Mean time"))
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleResult())

	assert.Contains(t, out, "2 trials, 6 visits, seed 42.")
	assert.Contains(t, out, "| B | 2 | 0.33 | 3.00 | 2.00 |")
	assert.Contains(t, out, "## Mean Time per State")
	assert.Contains(t, out, "## State Trajectories")
}

func TestBarChart(t *testing.T) {
	out := BarChart([]domain.State{"A", "CC"}, map[domain.State]float64{"A": 1, "CC": 2}, 10)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Equal(t, "A  | █████ 1.00", lines[0])
	assert.Equal(t, "CC | ██████████ 2.00", lines[1])
}

func TestTrajectoryChart(t *testing.T) {
	out := TrajectoryChart([]string{"A", "B", "C"}, [][]int{{0, 1, 1}, {0, 0, 2}})
	lines := strings.Split(out, "\n")

	// Highest index on top; shared cells are starred.
	assert.Equal(t, "C | ··2", lines[0])
	assert.Equal(t, "B | ·11", lines[1])
	assert.Equal(t, "A | *2·", lines[2])
	assert.Equal(t, "  +----", lines[3])
	assert.Contains(t, out, "1 = trial 1")
	assert.Contains(t, out, "2 = trial 2")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "0.1.0\n")
	assert.Contains(t, buf.String(), "v0.1.0\n")
}
