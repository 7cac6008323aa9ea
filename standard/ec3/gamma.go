package ec3

import "github.com/domthom21/eurocodedesign/na"

// National Annex keys for the partial safety factors of EN 1993-1-1
// clause 6.1, note 2B.
const (
	KeyGammaM0 = "EN1993-1-1_6.1_note_2b#gamma_M0"
	KeyGammaM1 = "EN1993-1-1_6.1_note_2b#gamma_M1"
	KeyGammaM2 = "EN1993-1-1_6.1_note_2b#gamma_M2"
)

// Recommended values per EN 1993-1-1 clause 6.1, note 2B.
const (
	recommendedGammaM0 = 1.00
	recommendedGammaM1 = 1.00
	recommendedGammaM2 = 1.25
)

// GammaM0 returns the partial factor for resistance of cross-sections,
// whatever the class. Recommended value 1.00.
func GammaM0(a *na.Annex) float64 {
	return a.Float(KeyGammaM0, recommendedGammaM0)
}

// GammaM1 returns the partial factor for resistance of members to
// instability assessed by member checks. Recommended value 1.00.
func GammaM1(a *na.Annex) float64 {
	return a.Float(KeyGammaM1, recommendedGammaM1)
}

// GammaM2 returns the partial factor for resistance of cross-sections
// in tension to fracture. Recommended value 1.25.
func GammaM2(a *na.Annex) float64 {
	return a.Float(KeyGammaM2, recommendedGammaM2)
}
