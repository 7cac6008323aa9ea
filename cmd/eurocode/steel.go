package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domthom21/eurocodedesign/materials"
	"github.com/domthom21/eurocodedesign/stepper"
	"github.com/domthom21/eurocodedesign/units"
)

var (
	// thicknessFlag is the nominal element thickness in mm for the
	// strength columns.
	thicknessFlag float64

	// stepsFlag narrates the grade as a calculation-trace line.
	stepsFlag bool
)

var steelCmd = &cobra.Command{
	Use:   "steel [grade]",
	Short: "Look up EN 10025-2 steel grade properties",
	Long: `Look up EN 10025-2 steel grade properties.

Without an argument the available grades are listed. With a grade the
nominal properties are printed; the strength values depend on the
nominal element thickness (--thickness, in mm). --steps narrates the
grade's headline properties as one calculation-trace line instead of
the table.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return listGrades(cmd)
		}
		return showGrade(cmd, materials.SteelGrade(args[0]))
	},
}

func listGrades(cmd *cobra.Command) error {
	grades := materials.Grades()
	if jsonFlag {
		out, err := fastJSONMarshal(grades)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	for _, g := range grades {
		fmt.Fprintln(cmd.OutOrStdout(), g)
	}
	return nil
}

func showGrade(cmd *cobra.Command, grade materials.SteelGrade) error {
	steel, err := materials.Get(grade)
	if err != nil {
		return err
	}
	thickness := units.Millimeter(thicknessFlag)
	fy, err := steel.Fyk(thickness)
	if err != nil {
		return err
	}
	fu, err := steel.Fuk(thickness)
	if err != nil {
		return err
	}

	if jsonFlag {
		fyMPa, err := fy.In(units.Mega)
		if err != nil {
			return err
		}
		fuMPa, err := fu.In(units.Mega)
		if err != nil {
			return err
		}
		eMPa, err := steel.E().In(units.Mega)
		if err != nil {
			return err
		}
		gMPa, err := steel.G().In(units.Mega)
		if err != nil {
			return err
		}
		weight, err := steel.UnitWeight().In(units.Kilo)
		if err != nil {
			return err
		}
		out, err := fastJSONMarshal(struct {
			Grade              string  `json:"grade"`
			ThicknessMM        float64 `json:"thickness_mm"`
			FykMPa             float64 `json:"fyk_mpa"`
			FukMPa             float64 `json:"fuk_mpa"`
			EMPa               float64 `json:"e_mpa"`
			GMPa               float64 `json:"g_mpa"`
			PoissonsRatio      float64 `json:"poissons_ratio"`
			ThermalCoefficient float64 `json:"thermal_coefficient"`
			UnitWeightKNM3     float64 `json:"unit_weight_kn_m3"`
		}{
			Grade:              string(steel.Grade()),
			ThicknessMM:        thicknessFlag,
			FykMPa:             fyMPa,
			FukMPa:             fuMPa,
			EMPa:               eMPa,
			GMPa:               gMPa,
			PoissonsRatio:      steel.PoissonsRatio(),
			ThermalCoefficient: steel.ThermalCoefficient(),
			UnitWeightKNM3:     weight,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if stepsFlag {
		st := stepper.New(stepper.WithWriter(cmd.OutOrStdout()))
		steel.Describe(st)
		return st.Close()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "grade:   %s\n", steel.Grade())
	fmt.Fprintf(w, "f_yk:    %s (t = %g mm)\n", fy, thicknessFlag)
	fmt.Fprintf(w, "f_uk:    %s (t = %g mm)\n", fu, thicknessFlag)
	fmt.Fprintf(w, "E:       %s\n", steel.E())
	fmt.Fprintf(w, "G:       %s\n", steel.G())
	fmt.Fprintf(w, "nu:      %g\n", steel.PoissonsRatio())
	fmt.Fprintf(w, "alpha:   %g 1/K\n", steel.ThermalCoefficient())
	fmt.Fprintf(w, "weight:  %s\n", steel.UnitWeight())
	return nil
}

func init() {
	steelCmd.Flags().Float64Var(&thicknessFlag, "thickness", 10, "nominal element thickness in mm")
	steelCmd.Flags().BoolVar(&stepsFlag, "steps", false, "narrate the grade as a calculation trace")
	rootCmd.AddCommand(steelCmd)
}
