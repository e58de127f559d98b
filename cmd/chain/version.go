package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/chain"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chain",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chain version %s\n", strings.TrimSpace(chain.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
