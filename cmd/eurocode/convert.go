package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/domthom21/eurocodedesign/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a magnitude between prefixed units of one dimension",
	Long: `Convert a magnitude between prefixed units of the same dimension.

The conversion goes through the base unit, with prefix scaling applied
per dimension (1 m2 = 10000 cm2). Converting across dimensions is a
dimension mismatch and fails.

Examples:
  eurocode convert 1500 N kN
  eurocode convert 1 m2 cm2
  eurocode convert 235 MPa Pa`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value %q", args[0])
		}
		from, err := parseUnit(args[1])
		if err != nil {
			return err
		}
		to, err := parseUnit(args[2])
		if err != nil {
			return err
		}
		if from.typ != to.typ {
			return fmt.Errorf("%w: convert %s to %s", units.ErrDimensionMismatch, from.typ, to.typ)
		}

		q, err := units.New(from.typ, value, units.WithPrefix(from.prefix))
		if err != nil {
			return err
		}
		converted, err := q.In(to.prefix)
		if err != nil {
			return err
		}

		if jsonFlag {
			out, err := fastJSONMarshal(struct {
				Value float64 `json:"value"`
				Unit  string  `json:"unit"`
			}{converted, args[2]})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strconv.FormatFloat(converted, 'g', -1, 64), args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
