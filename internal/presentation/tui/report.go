package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/chain/pkg/domain"
)

const barWidth = 40

// Markdown renders a run as a markdown document: statistics table, mean-time
// bar chart and trajectory chart.
func Markdown(res *domain.Result) string {
	var sb strings.Builder

	sb.WriteString("# Simulation Report\n\n")
	sb.WriteString(fmt.Sprintf("%d trials, %d visits", len(res.Trials), res.Total))
	if res.Seed != 0 {
		sb.WriteString(fmt.Sprintf(", seed %d", res.Seed))
	}
	sb.WriteString(".\n\n")

	sb.WriteString("## State Statistics\n\n")
	sb.WriteString("| State | Visits | Frequency | Mean time | Mean run |\n")
	sb.WriteString("|---|---:|---:|---:|---:|\n")
	for _, s := range res.Order {
		sb.WriteString(fmt.Sprintf("| %s | %d | %.2f | %.2f | %.2f |\n",
			s, res.Counts[s], res.Frequencies[s], res.DwellTimes[s], res.RunLengths[s]))
	}

	sb.WriteString("\n## Mean Time per State\n\n```\n")
	sb.WriteString(BarChart(res.Order, res.DwellTimes, barWidth))
	sb.WriteString("```\n")

	sb.WriteString("\n## State Trajectories\n\n```\n")
	sb.WriteString(TrajectoryChart(res.States, res.Trajectories))
	sb.WriteString("```\n")

	return sb.String()
}

// BarChart draws one horizontal bar per state, scaled to the largest value.
func BarChart(order []domain.State, values map[domain.State]float64, width int) string {
	labelWidth, maxValue := 0, 0.0
	for _, s := range order {
		labelWidth = max(labelWidth, len([]rune(string(s))))
		maxValue = max(maxValue, values[s])
	}

	var sb strings.Builder
	for _, s := range order {
		v := values[s]
		n := 0
		if maxValue > 0 {
			n = int(math.Round(v / maxValue * float64(width)))
		}
		sb.WriteString(fmt.Sprintf("%s | %s %.2f\n", pad(string(s), labelWidth), strings.Repeat("█", n), v))
	}
	return sb.String()
}

// TrajectoryChart plots index sequences on a state × iteration grid.
// A cell shows the trial number (1-based) visiting it, or '*' when several do.
func TrajectoryChart(states []string, paths [][]int) string {
	steps := 0
	for _, p := range paths {
		steps = max(steps, len(p))
	}

	grid := make([][]rune, len(states))
	for i := range grid {
		grid[i] = []rune(strings.Repeat("·", steps))
	}
	for t, p := range paths {
		mark := trialMark(t)
		for step, idx := range p {
			if idx < 0 || idx >= len(states) {
				continue
			}
			switch grid[idx][step] {
			case '·':
				grid[idx][step] = mark
			case mark:
			default:
				grid[idx][step] = '*'
			}
		}
	}

	labelWidth := 0
	for _, s := range states {
		labelWidth = max(labelWidth, len([]rune(s)))
	}

	var sb strings.Builder
	for i := len(states) - 1; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%s | %s\n", pad(states[i], labelWidth), string(grid[i])))
	}
	sb.WriteString(fmt.Sprintf("%s +-%s\n", strings.Repeat(" ", labelWidth), strings.Repeat("-", steps)))
	for t := range paths {
		sb.WriteString(fmt.Sprintf("%s   %c = trial %d\n", strings.Repeat(" ", labelWidth), trialMark(t), t+1))
	}
	return sb.String()
}

func trialMark(t int) rune {
	const marks = "123456789abcdefghijklmnopqrstuvwxyz"
	if t < len(marks) {
		return rune(marks[t])
	}
	return '+'
}

func pad(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Plain renders the textual report: frequencies and mean times with two decimals,
// states in first-appearance order.
func Plain(res *domain.Result) string {
	var sb strings.Builder
	sb.WriteString("\nState frequencies (averaged over all trials):\n")
	for _, s := range res.Order {
		sb.WriteString(string(s) + ": " + strconv.FormatFloat(res.Frequencies[s], 'f', 2, 64) + "\n")
	}
	sb.WriteString("\nMean time in each state (averaged over all trials):\n")
	for _, s := range res.Order {
		sb.WriteString(string(s) + ": " + strconv.FormatFloat(res.DwellTimes[s], 'f', 2, 64) + "\n")
	}
	return sb.String()
}
