package materials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domthom21/eurocodedesign/materials"
	"github.com/domthom21/eurocodedesign/stepper"
	"github.com/domthom21/eurocodedesign/units"
)

func TestGet_KnownGrades(t *testing.T) {
	for _, grade := range []materials.SteelGrade{
		materials.S235, materials.S275, materials.S355, materials.S450,
	} {
		t.Run(string(grade), func(t *testing.T) {
			steel, err := materials.Get(grade)
			require.NoError(t, err)
			assert.Equal(t, grade, steel.Grade())
			assert.Equal(t, "EN 10025-2", steel.Norm())
		})
	}
}

func TestGet_UnknownGrade(t *testing.T) {
	_, err := materials.Get("S999")
	require.ErrorIs(t, err, materials.ErrUnknownSteel)
	assert.ErrorContains(t, err, "not in library")
	assert.ErrorContains(t, err, "S999")
}

func TestGrades_Sorted(t *testing.T) {
	assert.Equal(t, []materials.SteelGrade{
		materials.S235, materials.S275, materials.S355, materials.S450,
	}, materials.Grades())
}

func TestSteel_Fyk(t *testing.T) {
	cases := []struct {
		grade     materials.SteelGrade
		thickness units.Quantity
		want      units.Quantity
	}{
		{materials.S235, units.Millimeter(12), units.Megapascal(235)},
		{materials.S235, units.Millimeter(60), units.Megapascal(215)},
		{materials.S275, units.Millimeter(12), units.Megapascal(275)},
		{materials.S275, units.Millimeter(60), units.Megapascal(255)},
		{materials.S355, units.Millimeter(12), units.Megapascal(355)},
		{materials.S355, units.Millimeter(60), units.Megapascal(335)},
		{materials.S450, units.Millimeter(12), units.Megapascal(440)},
		{materials.S450, units.Millimeter(60), units.Megapascal(410)},
		// The 40 mm boundary belongs to the thin column.
		{materials.S355, units.Millimeter(40), units.Megapascal(355)},
		// Centimeters work the same; 5 cm is in the thick column.
		{materials.S355, units.Centimeter(5), units.Megapascal(335)},
	}
	for _, tc := range cases {
		steel, err := materials.Get(tc.grade)
		require.NoError(t, err)

		fy, err := steel.Fyk(tc.thickness)
		require.NoError(t, err)

		eq, err := fy.Equal(tc.want)
		require.NoError(t, err)
		assert.True(t, eq, "%s at %s: want %s, got %s", tc.grade, tc.thickness, tc.want, fy)
	}
}

func TestSteel_Fuk(t *testing.T) {
	steel, err := materials.Get(materials.S355)
	require.NoError(t, err)

	thin, err := steel.Fuk(units.Millimeter(12))
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal(490), thin)

	thick, err := steel.Fuk(units.Millimeter(60))
	require.NoError(t, err)
	assert.Equal(t, units.Megapascal(470), thick)
}

func TestSteel_ThicknessValidation(t *testing.T) {
	steel, err := materials.Get(materials.S235)
	require.NoError(t, err)

	_, err = steel.Fyk(units.Millimeter(0))
	require.ErrorIs(t, err, materials.ErrThicknessRange)

	_, err = steel.Fyk(units.Millimeter(-4))
	require.ErrorIs(t, err, materials.ErrThicknessRange)

	_, err = steel.Fyk(units.Millimeter(90))
	require.ErrorIs(t, err, materials.ErrThicknessRange)

	_, err = steel.Fuk(units.Millimeter(120))
	require.ErrorIs(t, err, materials.ErrThicknessRange)
}

func TestSteel_ThicknessMustBeALength(t *testing.T) {
	steel, err := materials.Get(materials.S235)
	require.NoError(t, err)

	_, err = steel.Fyk(units.Second(12))
	require.ErrorIs(t, err, units.ErrDimensionMismatch)
}

func TestSteel_StiffnessProperties(t *testing.T) {
	steel, err := materials.Get(materials.S450)
	require.NoError(t, err)

	assert.Equal(t, units.Megapascal(210000), steel.E())
	assert.Equal(t, units.Megapascal(81000), steel.G())
	assert.Equal(t, 0.3, steel.PoissonsRatio())
	assert.Equal(t, 1.2e-5, steel.ThermalCoefficient())
}

func TestSteel_WeightFromUnitWeight(t *testing.T) {
	steel, err := materials.Get(materials.S235)
	require.NoError(t, err)

	// Self weight of 2 m³ of steel: 78.5 kN/m³ · 2 m³ = 157 kN.
	weight, err := steel.UnitWeight().Mul(units.CubicMeter(2))
	require.NoError(t, err)

	assert.Equal(t, units.Force, weight.Type())
	assert.Equal(t, 157000.0, weight.BaseValue())
}

func TestSteel_Describe(t *testing.T) {
	steel, err := materials.Get(materials.S235)
	require.NoError(t, err)

	st := stepper.New(stepper.Quiet())
	steel.Describe(st)

	trace := st.String()
	assert.Contains(t, trace, "steel S235:")
	assert.Contains(t, trace, "f_yk = 235 MPa")
	assert.Contains(t, trace, "E = 210000 MPa")
}
