package main

import (
	"fmt"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/internal/presentation/graph"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the transition graph visualization",
	Long: `Outputs a Mermaid diagram (graph LR) with one edge per non-zero transition.
With --overlay a run is simulated first and the visited states are highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := []chain.Option{chain.WithLogger(logger)}
		if cfg.Seed != 0 {
			opts = append(opts, chain.WithSeed(cfg.Seed))
		}
		eng, err := chain.New(cfg.Model(), opts...)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if withOverlay, _ := cmd.Flags().GetBool("overlay"); withOverlay {
			res, err := eng.Run(cmd.Context(), domain.State(cfg.Initial), cfg.Iterations, cfg.Trials)
			if err != nil {
				return err
			}
			overlay = graph.OverlayFromResult(res)
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(eng.Model(), domain.State(cfg.Initial), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().Bool("overlay", false, "Simulate a run and highlight visited states")
}
