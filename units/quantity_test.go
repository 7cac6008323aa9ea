package units_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domthom21/eurocodedesign/units"
)

func TestNew_DefaultPrefixIsOne(t *testing.T) {
	q, err := units.New(units.Force, 42)
	require.NoError(t, err)

	assert.Equal(t, units.Force, q.Type(), "type must be carried unchanged")
	assert.Equal(t, units.One, q.Prefix())
	assert.Equal(t, 42.0, q.BaseValue(), "unprefixed magnitude is already the base magnitude")
}

func TestNew_NormalizesPrefixedMagnitude(t *testing.T) {
	q, err := units.New(units.Force, 2, units.WithPrefix(units.Kilo))
	require.NoError(t, err)

	assert.Equal(t, units.Force, q.Type())
	assert.Equal(t, units.Kilo, q.Prefix(), "construction prefix is kept for display")
	assert.Equal(t, 2000.0, q.BaseValue(), "2 kN must normalize to 2000 N")
	assert.Equal(t, 2.0, q.Value(), "Value reads back in the construction prefix")
}

func TestNew_PrefixScalesPerDimension(t *testing.T) {
	cases := []struct {
		name     string
		typ      units.PhysicalType
		prefix   units.Prefix
		wantBase float64
	}{
		{"length_centi", units.Length, units.Centi, 1e-2},
		{"area_centi", units.Area, units.Centi, 1e-4},
		{"area_milli", units.Area, units.Milli, 1e-6},
		{"volume_milli", units.Volume, units.Milli, 1e-9},
		{"second_moment_milli", units.SecondMomentOfArea, units.Milli, 1e-12},
		{"second_moment_centi", units.SecondMomentOfArea, units.Centi, 1e-8},
		{"pressure_mega", units.Pressure, units.Mega, 1e6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := units.New(tc.typ, 1, units.WithPrefix(tc.prefix))
			require.NoError(t, err)
			assert.InEpsilon(t, tc.wantBase, q.BaseValue(), 1e-12,
				"prefix scale must apply once per dimension")
		})
	}
}

func TestNew_RejectsPrefixOnRestrictedTypes(t *testing.T) {
	for _, typ := range []units.PhysicalType{
		units.Dimensionless,
		units.Angle,
		units.Time,
		units.Mass,
		units.Temperature,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			_, err := units.New(typ, 1, units.WithPrefix(units.Kilo))
			require.ErrorIs(t, err, units.ErrPrefixNotAllowed)
			assert.ErrorContains(t, err, typ.String(), "error must name the offending type")

			// The unscaled prefix always passes.
			_, err = units.New(typ, 1, units.WithPrefix(units.One))
			assert.NoError(t, err)
		})
	}
}

func TestNew_AcceptsZeroAndNegativeMagnitudes(t *testing.T) {
	zero, err := units.New(units.Force, 0)
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	// Negative magnitudes model compression vs tension sign conventions.
	tension, err := units.New(units.Force, -12.5, units.WithPrefix(units.Kilo))
	require.NoError(t, err)
	assert.Equal(t, -12500.0, tension.BaseValue())
	assert.False(t, tension.IsZero())
}

func TestQuantity_ZeroValueIsDimensionlessZero(t *testing.T) {
	var q units.Quantity

	assert.Equal(t, units.Dimensionless, q.Type())
	assert.Equal(t, units.One, q.Prefix())
	assert.True(t, q.IsZero())
	assert.Equal(t, "0", q.String())
}

func TestQuantity_ValueRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		typ    units.PhysicalType
		prefix units.Prefix
		v      float64
	}{
		{"meter", units.Length, units.One, 3.75},
		{"millimeter", units.Length, units.Milli, 240},
		{"square_centimeter", units.Area, units.Centi, 84.6},
		{"cubic_millimeter", units.Volume, units.Milli, 1210},
		{"quartic_millimeter", units.SecondMomentOfArea, units.Milli, 8.356e7},
		{"kilonewton", units.Force, units.Kilo, -17.2},
		{"gigapascal", units.Pressure, units.Giga, 0.21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := units.New(tc.typ, tc.v, units.WithPrefix(tc.prefix))
			require.NoError(t, err)
			assert.InEpsilon(t, tc.v, q.Value(), 1e-12,
				"construct-then-read must return the original magnitude")
		})
	}
}

func TestQuantity_ValueRoundTrip_AllPrefixes(t *testing.T) {
	types := []units.PhysicalType{
		units.Length, units.Area, units.Volume, units.SecondMomentOfArea,
		units.Speed, units.Acceleration, units.Force, units.ForcePerLength,
		units.SpecificWeight, units.Pressure, units.Energy,
	}
	prefixes := []units.Prefix{
		units.One, units.Nano, units.Micro, units.Milli, units.Centi, units.Deci,
		units.Deca, units.Hecto, units.Kilo, units.Mega, units.Giga,
	}
	const v = 3.7
	for _, typ := range types {
		for _, p := range prefixes {
			q, err := units.New(typ, v, units.WithPrefix(p))
			require.NoError(t, err, "%s with prefix %s", typ, p)
			assert.InEpsilon(t, v, q.Value(), 1e-12, "%s with prefix %s", typ, p)
		}
	}
}

func TestQuantity_In(t *testing.T) {
	f, err := units.New(units.Force, 1500)
	require.NoError(t, err)

	kN, err := f.In(units.Kilo)
	require.NoError(t, err)
	assert.Equal(t, 1.5, kN)

	base, err := f.In(units.One)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, base)
}

func TestQuantity_In_PrefixPerDimension(t *testing.T) {
	a := units.SquareMeter(1)

	cm2, err := a.In(units.Centi)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e4, cm2, 1e-12, "1 m² is 10000 cm²")

	mm2, err := a.In(units.Milli)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e6, mm2, 1e-12, "1 m² is 1e6 mm²")
}

func TestQuantity_In_RejectsDisallowedPrefix(t *testing.T) {
	m := units.Kilogram(80)

	_, err := m.In(units.Milli)
	require.ErrorIs(t, err, units.ErrPrefixNotAllowed)

	got, err := m.In(units.One)
	require.NoError(t, err)
	assert.Equal(t, 80.0, got)
}

func TestQuantity_To_SwitchesDisplayOnly(t *testing.T) {
	f := units.Newton(1500)

	kf, err := f.To(units.Kilo)
	require.NoError(t, err)
	assert.Equal(t, units.Kilo, kf.Prefix())
	assert.Equal(t, f.BaseValue(), kf.BaseValue(), "To must not touch the base magnitude")
	assert.Equal(t, "1.5 kN", kf.String())

	eq, err := f.Equal(kf)
	require.NoError(t, err)
	assert.True(t, eq, "converted quantity compares equal to the original")
}

func TestQuantity_To_RejectsDisallowedPrefix(t *testing.T) {
	_, err := units.Second(30).To(units.Milli)
	require.ErrorIs(t, err, units.ErrPrefixNotAllowed)
}

func TestQuantity_String(t *testing.T) {
	cases := []struct {
		name string
		q    units.Quantity
		want string
	}{
		{"meter", units.Meter(5), "5 m"},
		{"centimeter", units.Centimeter(100), "100 cm"},
		{"square_centimeter", units.SquareCentimeter(100), "100 cm²"},
		{"kilonewton", units.Kilonewton(2.5), "2.5 kN"},
		{"megapascal", units.Megapascal(235), "235 MPa"},
		{"specific_weight", units.KilonewtonPerCubicMeter(78.5), "78.5 kN/m³"},
		{"line_load", units.KilonewtonPerMeter(12), "12 kN/m"},
		{"kilojoule", units.Kilojoule(1.2), "1.2 kJ"},
		{"kelvin", units.Kelvin(293.15), "293.15 K"},
		{"radian", units.Radian(1.5), "1.5 rad"},
		{"scalar", units.Scalar(2.5), "2.5"},
		{"negative_force", units.Kilonewton(-3), "-3 kN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.q.String())
		})
	}
}

// TestQuantity_ConcurrentUse exercises shared quantities from several
// goroutines. Quantities are immutable values, so the race detector must
// stay quiet and every goroutine must observe identical results.
func TestQuantity_ConcurrentUse(t *testing.T) {
	const goroutines = 8
	shared := units.Kilonewton(2)
	increment := units.Newton(3)

	var wg sync.WaitGroup
	results := make([]units.Quantity, goroutines)
	errs := make([]error, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(slot int) {
			defer wg.Done()
			sum, err := shared.Add(increment)
			if err != nil {
				errs[slot] = err
				return
			}
			product, err := sum.Mul(units.Meter(2))
			if err != nil {
				errs[slot] = err
				return
			}
			results[slot] = product
		}(i)
	}
	wg.Wait()

	for i := 0; i < goroutines; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, units.Energy, results[i].Type())
		assert.Equal(t, 4006.0, results[i].BaseValue())
	}
	assert.Equal(t, 2000.0, shared.BaseValue(), "operands must never be mutated")
}
