// Package stepper collects human-readable calculation steps and emits
// them as a single line, the way hand calculations are annotated in
// design documents.
//
// Formula code appends fragments as it works; the stepper joins them
// with spaces and writes the joined line on Flush or Close:
//
//	st := stepper.New()
//	defer st.Close()
//	st.Step("N_Ed = 120 kN")
//	st.Stepf("N_Rd = A·f_y/γ_M0 = %s", resistance)
//
// A Stepper is safe for concurrent use. Quiet steppers swallow output
// entirely, which keeps calculation code free of logging conditionals.
package stepper
