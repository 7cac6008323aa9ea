package materials

import (
	"errors"
	"fmt"
	"sort"

	"github.com/domthom21/eurocodedesign/stepper"
	"github.com/domthom21/eurocodedesign/units"
)

var (
	// ErrUnknownSteel is returned by Get for grades not in the library.
	ErrUnknownSteel = errors.New("materials: steel grade not in library")

	// ErrThicknessRange is returned by the strength accessors when the
	// nominal thickness is outside the tabulated range (0, 80] mm.
	ErrThicknessRange = errors.New("materials: nominal thickness outside tabulated range")
)

// norm is the product standard all grades in the library come from.
const norm = "EN 10025-2"

// SteelGrade names a structural steel per EN 10025-2.
type SteelGrade string

const (
	// S235 is the mild structural steel, fy 235 MPa.
	S235 SteelGrade = "S235"
	// S275 is the medium structural steel, fy 275 MPa.
	S275 SteelGrade = "S275"
	// S355 is the common high-strength structural steel, fy 355 MPa.
	S355 SteelGrade = "S355"
	// S450 is the highest hot-rolled grade of EN 10025-2, fy 440 MPa.
	S450 SteelGrade = "S450"
)

// Grade-independent properties per EN 1993-1-1 clause 3.2.6.
var (
	modulusOfElasticity = units.Megapascal(210000)
	shearModulus        = units.Megapascal(81000)
	unitWeight          = units.KilonewtonPerCubicMeter(78.5)
)

const (
	poissonsRatio      = 0.3
	thermalCoefficient = 1.2e-5 // per kelvin, up to 100 °C
)

// thicknessLimit separates the two strength columns of EN 10025-2;
// thicknessMax ends the tabulated range.
var (
	thicknessLimit = units.Millimeter(40)
	thicknessMax   = units.Millimeter(80)
)

// Steel is one grade's nominal property set. The zero value is not a
// valid steel; obtain instances through Get.
type Steel struct {
	grade   SteelGrade
	fyThin  units.Quantity // nominal thickness <= 40 mm
	fyThick units.Quantity // 40 mm < nominal thickness <= 80 mm
	fuThin  units.Quantity
	fuThick units.Quantity
}

// registry holds the nominal values of EN 10025-2 as given in
// EN 1993-1-1 table 3.1.
var registry = map[SteelGrade]Steel{
	S235: {
		grade:   S235,
		fyThin:  units.Megapascal(235),
		fyThick: units.Megapascal(215),
		fuThin:  units.Megapascal(360),
		fuThick: units.Megapascal(360),
	},
	S275: {
		grade:   S275,
		fyThin:  units.Megapascal(275),
		fyThick: units.Megapascal(255),
		fuThin:  units.Megapascal(430),
		fuThick: units.Megapascal(410),
	},
	S355: {
		grade:   S355,
		fyThin:  units.Megapascal(355),
		fyThick: units.Megapascal(335),
		fuThin:  units.Megapascal(490),
		fuThick: units.Megapascal(470),
	},
	S450: {
		grade:   S450,
		fyThin:  units.Megapascal(440),
		fyThick: units.Megapascal(410),
		fuThin:  units.Megapascal(550),
		fuThick: units.Megapascal(550),
	},
}

// Get returns the steel for the requested grade. Returns ErrUnknownSteel
// for grades outside the library.
func Get(grade SteelGrade) (Steel, error) {
	s, ok := registry[grade]
	if !ok {
		return Steel{}, fmt.Errorf("%w: %q", ErrUnknownSteel, grade)
	}
	return s, nil
}

// Grades lists the available steel grades, sorted.
func Grades() []SteelGrade {
	out := make([]SteelGrade, 0, len(registry))
	for g := range registry {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Grade returns the grade name.
func (s Steel) Grade() SteelGrade {
	return s.grade
}

// Norm returns the product standard the grade is specified in.
func (s Steel) Norm() string {
	return norm
}

// checkThickness validates the nominal thickness and reports whether it
// falls into the thin column (<= 40 mm).
func checkThickness(t units.Quantity) (thin bool, err error) {
	positive, err := t.Greater(units.Millimeter(0))
	if err != nil {
		return false, err
	}
	inRange, err := t.LessOrEqual(thicknessMax)
	if err != nil {
		return false, err
	}
	if !positive || !inRange {
		return false, fmt.Errorf("%w: %s", ErrThicknessRange, t)
	}
	thin, err = t.LessOrEqual(thicknessLimit)
	if err != nil {
		return false, err
	}
	return thin, nil
}

// Fyk returns the nominal yield strength for the given nominal element
// thickness per EN 1993-1-1 table 3.1. The thickness must be a Length
// in (0, 80] mm; dimension errors from the comparison pass through.
func (s Steel) Fyk(thickness units.Quantity) (units.Quantity, error) {
	thin, err := checkThickness(thickness)
	if err != nil {
		return units.Quantity{}, err
	}
	if thin {
		return s.fyThin, nil
	}
	return s.fyThick, nil
}

// Fuk returns the nominal ultimate tensile strength for the given
// nominal element thickness, under the same rules as Fyk.
func (s Steel) Fuk(thickness units.Quantity) (units.Quantity, error) {
	thin, err := checkThickness(thickness)
	if err != nil {
		return units.Quantity{}, err
	}
	if thin {
		return s.fuThin, nil
	}
	return s.fuThick, nil
}

// E returns the modulus of elasticity, 210000 MPa.
func (s Steel) E() units.Quantity {
	return modulusOfElasticity
}

// G returns the shear modulus, 81000 MPa.
func (s Steel) G() units.Quantity {
	return shearModulus
}

// PoissonsRatio returns ν in the elastic range, 0.3.
func (s Steel) PoissonsRatio() float64 {
	return poissonsRatio
}

// ThermalCoefficient returns the coefficient of linear thermal
// expansion in 1/K, 1.2e-5.
func (s Steel) ThermalCoefficient() float64 {
	return thermalCoefficient
}

// UnitWeight returns the weight density of steel, 78.5 kN/m³.
func (s Steel) UnitWeight() units.Quantity {
	return unitWeight
}

// Describe appends the grade's headline properties to a stepper trace.
func (s Steel) Describe(st *stepper.Stepper) {
	st.Stepf("steel %s:", s.grade)
	st.Stepf("f_yk = %s (t <= 40 mm),", s.fyThin)
	st.Stepf("f_uk = %s (t <= 40 mm),", s.fuThin)
	st.Stepf("E = %s,", s.E())
	st.Stepf("G = %s", s.G())
}
