// Package eurocodedesign is a toolkit for Eurocode-based structural
// design calculations with dimension-checked arithmetic at its core.
//
// 🚀 What is eurocodedesign?
//
//	A library family that keeps structural calculations honest:
//		• Quantities: magnitudes carry physical types (Length, Force, Pressure, …)
//		• Derivation table: products and quotients resolve their types, or fail loudly
//		• Prefix algebra: kN + N, cm² vs m², normalized at construction time
//		• Steel library: EN 10025-2 grades with thickness-dependent strengths
//		• National Annexes: embedded NDP tables, selected per call, no globals
//		• Step traces: calculation logs the way hand calcs are annotated
//
// ✨ Why choose eurocodedesign?
//
//   - Unit mistakes fail at the operation, not in the finished report
//   - Immutable value semantics: share quantities across goroutines freely
//   - Sentinel errors: classify every failure with errors.Is
//   - Explicit jurisdiction: the National Annex travels as a parameter
//
// Everything is organized under focused subpackages:
//
//	units/        — Quantity, PhysicalType, Prefix, derivation table, comparisons
//	materials/    — EN 10025-2 structural steel grades
//	standard/ec3/ — EN 1993-1-1 partial safety factors
//	na/           — National Annex parameter store (embedded TOML)
//	stepper/      — calculation step traces
//	cmd/eurocode/ — CLI front end (convert, steel, gamma, version)
//
// Quick example:
//
//	f, _ := units.Kilonewton(2).Add(units.Newton(3)) // 2.003 kN
//	e, _ := units.Meter(5).Mul(units.Newton(3))      // 15 J
//	l, _ := e.Div(units.Newton(3))                   // 5 m
//
// See the package docs of each subpackage for details and runnable
// examples.
//
//	go get github.com/domthom21/eurocodedesign
package eurocodedesign
