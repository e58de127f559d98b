package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the transition model and run settings",
	Long: `Checks that every row of the transition matrix sums to 1, that every entry
lies in [0,1], and that the run settings are usable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Model is valid! ✅ (%d states)\n", len(cfg.States))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
