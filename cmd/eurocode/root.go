package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// countryFlag selects the National Annex; empty means the
	// recommended values of the code text.
	countryFlag string

	// jsonFlag switches command output to JSON.
	jsonFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "eurocode",
	Short: "Eurocode design calculator",
	Long: `eurocode - dimension-checked Eurocode design helpers

Converts between prefixed SI units, looks up EN 10025-2 steel grades
and resolves EN 1993-1-1 partial safety factors against the embedded
National Annex tables.

All magnitudes are carried as dimension-checked quantities, so unit
mistakes fail loudly instead of producing silently wrong numbers.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return applyConfigDefaults(cmd)
	},
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eurocode:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&countryFlag, "country", "", "national annex country code (e.g. de); empty uses recommended values")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "emit JSON instead of text")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
