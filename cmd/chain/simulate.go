package main

import (
	"os"
	"strings"

	"github.com/aretw0/chain"
	"github.com/aretw0/chain/internal/presentation/tui"
	"github.com/aretw0/chain/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the trials and print the visit statistics",
	Long: `Runs the configured number of trials from the initial state and prints
state frequencies and mean time per state, followed by bar and trajectory charts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	addRunFlags(simulateCmd.Flags())
	addRunFlags(rootCmd.Flags())

	// 'simulate' is the default when no command is provided.
	rootCmd.RunE = simulateCmd.RunE
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.Int64("seed", 0, "Random seed; 0 seeds from the clock")
	fs.IntP("trials", "t", 0, "Number of independent trials")
	fs.IntP("iterations", "n", 0, "States per trial, initial state included")
	fs.String("initial", "", "Initial state label")
	fs.Bool("json", false, "Print the full result as JSON")
	fs.Bool("plain", false, "Print only the frequency and mean time listing")
}

func runSimulate(cmd *cobra.Command) error {
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

	res, err := eng.Run(cmd.Context(), domain.State(cfg.Initial), cfg.Iterations, cfg.Trials)
	if err != nil {
		return err
	}

	jsonMode, _ := cmd.Flags().GetBool("json")
	plain, _ := cmd.Flags().GetBool("plain")

	printer := &chain.Printer{
		Output: cmd.OutOrStdout(),
		JSON:   jsonMode,
		Plain:  plain,
	}
	if !jsonMode && !plain && tui.IsTerminal(os.Stdout) {
		tui.PrintBanner(printer.Output, strings.TrimSpace(chain.Version))
		printer.Renderer = tui.NewRenderer()
	}
	return printer.Print(res)
}
