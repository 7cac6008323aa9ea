// Package na resolves nationally determined parameters (NDPs) from
// embedded National Annex tables.
//
// Eurocodes leave selected values (partial safety factors, combination
// coefficients, …) to each member state. This package embeds one TOML
// table per country and exposes them as immutable Annex values that are
// passed explicitly into calculations; there is no process-wide country
// setting. A nil *Annex stands for the recommended values printed in
// the codes themselves: every lookup falls back to the caller-supplied
// default.
//
// Parameter keys follow the clause they are defined in, with the
// parameter name after a # separator:
//
//	EN1993-1-1_6.1_note_2b#gamma_M1
package na
