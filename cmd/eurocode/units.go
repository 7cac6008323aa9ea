package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/domthom21/eurocodedesign/units"
)

// unitSpec binds a CLI unit symbol to a physical type and prefix.
type unitSpec struct {
	typ    units.PhysicalType
	prefix units.Prefix
}

// unitSymbols is the registry of accepted unit symbols, ASCII only so
// they are typeable on any shell (m2 for m², kNm for kN·m).
var unitSymbols = map[string]unitSpec{
	"m":  {units.Length, units.One},
	"dm": {units.Length, units.Deci},
	"cm": {units.Length, units.Centi},
	"mm": {units.Length, units.Milli},
	"km": {units.Length, units.Kilo},

	"m2":  {units.Area, units.One},
	"cm2": {units.Area, units.Centi},
	"mm2": {units.Area, units.Milli},

	"m3":  {units.Volume, units.One},
	"cm3": {units.Volume, units.Centi},
	"mm3": {units.Volume, units.Milli},

	"m4":  {units.SecondMomentOfArea, units.One},
	"cm4": {units.SecondMomentOfArea, units.Centi},
	"mm4": {units.SecondMomentOfArea, units.Milli},

	"N":  {units.Force, units.One},
	"kN": {units.Force, units.Kilo},
	"MN": {units.Force, units.Mega},

	"N/m":  {units.ForcePerLength, units.One},
	"kN/m": {units.ForcePerLength, units.Kilo},

	"N/m3":  {units.SpecificWeight, units.One},
	"kN/m3": {units.SpecificWeight, units.Kilo},

	"Pa":  {units.Pressure, units.One},
	"kPa": {units.Pressure, units.Kilo},
	"MPa": {units.Pressure, units.Mega},
	"GPa": {units.Pressure, units.Giga},

	"J":   {units.Energy, units.One},
	"kJ":  {units.Energy, units.Kilo},
	"Nm":  {units.Energy, units.One},
	"kNm": {units.Energy, units.Kilo},

	"kg":   {units.Mass, units.One},
	"s":    {units.Time, units.One},
	"K":    {units.Temperature, units.One},
	"rad":  {units.Angle, units.One},
	"m/s":  {units.Speed, units.One},
	"m/s2": {units.Acceleration, units.One},
}

// parseUnit resolves a CLI unit symbol.
func parseUnit(symbol string) (unitSpec, error) {
	spec, ok := unitSymbols[symbol]
	if !ok {
		return unitSpec{}, fmt.Errorf("unknown unit %q (known: %s)", symbol, strings.Join(knownSymbols(), " "))
	}
	return spec, nil
}

// knownSymbols lists the registered symbols, sorted.
func knownSymbols() []string {
	out := make([]string, 0, len(unitSymbols))
	for s := range unitSymbols {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
