package chain

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/chain/internal/presentation/tui"
	"github.com/aretw0/chain/pkg/domain"
)

// ContentRenderer is a function that transforms markdown before it is written.
// This allows TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Printer writes run results to an output.
type Printer struct {
	Output io.Writer
	// Plain prints only the two-decimal frequency and mean-time listing.
	Plain bool
	// JSON prints the whole Result as indented JSON. It wins over Plain.
	JSON     bool
	Renderer ContentRenderer
}

// Print writes res in the configured format.
func (p *Printer) Print(res *domain.Result) error {
	if p.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}

	switch {
	case p.JSON:
		enc := json.NewEncoder(p.Output)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case p.Plain:
		_, err := io.WriteString(p.Output, tui.Plain(res))
		return err
	}

	out := tui.Markdown(res)
	if p.Renderer != nil {
		rendered, err := p.Renderer(out)
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		out = rendered
	}
	_, err := io.WriteString(p.Output, out)
	return err
}
