package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domthom21/eurocodedesign/na"
	"github.com/domthom21/eurocodedesign/standard/ec3"
)

var gammaCmd = &cobra.Command{
	Use:   "gamma",
	Short: "Print EN 1993-1-1 partial safety factors",
	Long: `Print the EN 1993-1-1 partial safety factors gamma_M0, gamma_M1
and gamma_M2.

With --country the nationally determined values of that National Annex
apply; without it the recommended values of the code text are used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var annex *na.Annex
		if countryFlag != "" {
			loaded, err := na.Load(na.Country(countryFlag))
			if err != nil {
				return err
			}
			annex = loaded
		}

		source := "recommended"
		if annex != nil {
			source = string(annex.Country())
		}

		if jsonFlag {
			out, err := fastJSONMarshal(struct {
				Country string  `json:"country"`
				GammaM0 float64 `json:"gamma_m0"`
				GammaM1 float64 `json:"gamma_m1"`
				GammaM2 float64 `json:"gamma_m2"`
			}{source, ec3.GammaM0(annex), ec3.GammaM1(annex), ec3.GammaM2(annex)})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "country:  %s\n", source)
		fmt.Fprintf(w, "gamma_M0: %g\n", ec3.GammaM0(annex))
		fmt.Fprintf(w, "gamma_M1: %g\n", ec3.GammaM1(annex))
		fmt.Fprintf(w, "gamma_M2: %g\n", ec3.GammaM2(annex))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gammaCmd)
}
