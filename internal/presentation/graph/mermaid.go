package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/chain/pkg/domain"
	"github.com/aretw0/chain/pkg/model"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// OverlayFromResult marks every observed state as visited and the final state
// of the last trial as current.
func OverlayFromResult(res *domain.Result) *GraphOverlay {
	if res == nil {
		return nil
	}
	o := &GraphOverlay{VisitedStates: res.Order}
	if n := len(res.Trials); n > 0 {
		o.CurrentState = res.Trials[n-1].Last()
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the transition model.
// It applies semantic styling:
// - Initial state: ((Circle))
// - Absorbing state: (((Double circle)))
// - Default: [Rectangle]
// Every non-zero transition becomes an edge labeled with its probability.
func GenerateMermaid(m *model.Model, initial domain.State, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := m.States()
	for i, label := range states {
		opener, closer := "[", "]"
		switch {
		case m.IsAbsorbing(i):
			opener, closer = "(((", ")))"
		case domain.State(label) == initial:
			opener, closer = "((", "))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(i), opener, escapeLabel(label), closer))
	}

	for _, t := range m.Transitions() {
		from, _ := m.Index(t.From)
		to, _ := m.Index(t.To)
		sb.WriteString(fmt.Sprintf("    %s -- \"%.2f\" --> %s\n", nodeID(from), t.Probability, nodeID(to)))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds.
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[int]bool)
		for _, s := range overlay.VisitedStates {
			i, ok := m.Index(s)
			if !ok || seen[i] {
				continue
			}
			seen[i] = true
			sb.WriteString(fmt.Sprintf("    class %s visited;\n", nodeID(i)))
		}

		if i, ok := m.Index(overlay.CurrentState); ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(i)))
		}
	}

	return sb.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("s%d", i)
}

func escapeLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "#quot;")
}
