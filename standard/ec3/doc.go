// Package ec3 exposes EN 1993-1-1 (Eurocode 3) nationally determined
// parameters with their recommended fallbacks.
//
// Callers hand in the *na.Annex of the jurisdiction they design for;
// nil selects the recommended values from the code text:
//
//	annex, _ := na.Load(na.Germany)
//	g1 := ec3.GammaM1(annex) // 1.10 per DIN EN 1993-1-1/NA
//	g1r := ec3.GammaM1(nil)  // 1.00 recommended
package ec3
