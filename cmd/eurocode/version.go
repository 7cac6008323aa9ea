package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domthom21/eurocodedesign/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the eurocode version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eurocode v%s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
