package units

// PhysicalType identifies the dimension of a Quantity. The set is closed:
// arithmetic only ever produces types listed here, and the derivation table
// in derivation.go is the single source of truth for which products and
// quotients exist.
//
// The zero value is Dimensionless, so an uninitialized Quantity behaves as
// a plain number.
type PhysicalType int

const (
	// Dimensionless is a bare ratio or count. It carries no unit symbol
	// and rejects metric prefixes.
	Dimensionless PhysicalType = iota
	// Angle is a plane angle in radians.
	Angle
	// Time is a duration in seconds.
	Time
	// Length is a one-dimensional extent in meters.
	Length
	// Area is a two-dimensional extent in square meters.
	Area
	// Volume is a three-dimensional extent in cubic meters.
	Volume
	// SecondMomentOfArea is a section property in meters to the fourth.
	SecondMomentOfArea
	// Speed is distance per time in meters per second.
	Speed
	// Acceleration is speed per time in meters per second squared.
	Acceleration
	// Mass is an amount of matter in kilograms.
	Mass
	// Force is a mechanical action in newtons.
	Force
	// ForcePerLength is a line load in newtons per meter.
	ForcePerLength
	// SpecificWeight is a weight density in newtons per cubic meter.
	SpecificWeight
	// Pressure is force per area in pascals; also used for stress.
	Pressure
	// Energy is mechanical work in joules; also used for moments.
	Energy
	// Temperature is a thermodynamic temperature in kelvins.
	Temperature

	numPhysicalTypes // sentinel, keep last
)

// physicalTypeNames drives String. Indexed by PhysicalType.
var physicalTypeNames = [numPhysicalTypes]string{
	Dimensionless:      "Dimensionless",
	Angle:              "Angle",
	Time:               "Time",
	Length:             "Length",
	Area:               "Area",
	Volume:             "Volume",
	SecondMomentOfArea: "SecondMomentOfArea",
	Speed:              "Speed",
	Acceleration:       "Acceleration",
	Mass:               "Mass",
	Force:              "Force",
	ForcePerLength:     "ForcePerLength",
	SpecificWeight:     "SpecificWeight",
	Pressure:           "Pressure",
	Energy:             "Energy",
	Temperature:        "Temperature",
}

// baseSymbols drives BaseSymbol. Indexed by PhysicalType.
var baseSymbols = [numPhysicalTypes]string{
	Dimensionless:      "",
	Angle:              "rad",
	Time:               "s",
	Length:             "m",
	Area:               "m²",
	Volume:             "m³",
	SecondMomentOfArea: "m⁴",
	Speed:              "m/s",
	Acceleration:       "m/s²",
	Mass:               "kg",
	Force:              "N",
	ForcePerLength:     "N/m",
	SpecificWeight:     "N/m³",
	Pressure:           "Pa",
	Energy:             "J",
	Temperature:        "K",
}

// prefixPowers records how many times a prefix scale factor applies when
// normalizing a magnitude of the given type: once for linear units, twice
// for areas, three times for volumes, four times for second moments of
// area. A centimeter of area is (0.01 m)², not 0.01 m².
var prefixPowers = [numPhysicalTypes]int{
	Dimensionless:      1,
	Angle:              1,
	Time:               1,
	Length:             1,
	Area:               2,
	Volume:             3,
	SecondMomentOfArea: 4,
	Speed:              1,
	Acceleration:       1,
	Mass:               1,
	Force:              1,
	ForcePerLength:     1,
	SpecificWeight:     1,
	Pressure:           1,
	Energy:             1,
	Temperature:        1,
}

// prefixable marks the types that accept metric prefixes. Mass is excluded
// because its base unit, the kilogram, already carries one; angle, time and
// temperature are conventionally written unprefixed in structural work.
var prefixable = [numPhysicalTypes]bool{
	Dimensionless:      false,
	Angle:              false,
	Time:               false,
	Length:             true,
	Area:               true,
	Volume:             true,
	SecondMomentOfArea: true,
	Speed:              true,
	Acceleration:       true,
	Mass:               false,
	Force:              true,
	ForcePerLength:     true,
	SpecificWeight:     true,
	Pressure:           true,
	Energy:             true,
	Temperature:        false,
}

// String returns the type name, e.g. "Force".
func (t PhysicalType) String() string {
	if t < 0 || t >= numPhysicalTypes {
		return "PhysicalType(unknown)"
	}
	return physicalTypeNames[t]
}

// BaseSymbol returns the display symbol of the canonical base unit,
// e.g. "N" for Force and "m²" for Area. Dimensionless has no symbol.
func (t PhysicalType) BaseSymbol() string {
	if t < 0 || t >= numPhysicalTypes {
		return ""
	}
	return baseSymbols[t]
}

// power returns the prefix exponent for the type (1 for linear units,
// 2 for Area, 3 for Volume, 4 for SecondMomentOfArea).
func (t PhysicalType) power() int {
	if t < 0 || t >= numPhysicalTypes {
		return 1
	}
	return prefixPowers[t]
}

// allowsPrefix reports whether quantities of this type may carry a
// metric prefix other than One.
func (t PhysicalType) allowsPrefix() bool {
	if t < 0 || t >= numPhysicalTypes {
		return false
	}
	return prefixable[t]
}

// Prefix is a metric prefix applied to a Quantity's display unit.
// The zero value is One (no prefix).
type Prefix int

const (
	// One is the absence of a prefix, scale 1.
	One Prefix = iota
	// Nano scales by 1e-9.
	Nano
	// Micro scales by 1e-6.
	Micro
	// Milli scales by 1e-3.
	Milli
	// Centi scales by 1e-2.
	Centi
	// Deci scales by 1e-1.
	Deci
	// Deca scales by 1e1.
	Deca
	// Hecto scales by 1e2.
	Hecto
	// Kilo scales by 1e3.
	Kilo
	// Mega scales by 1e6.
	Mega
	// Giga scales by 1e9.
	Giga

	numPrefixes // sentinel, keep last
)

// prefixScales maps each prefix to its decimal scale factor.
var prefixScales = [numPrefixes]float64{
	One:   1,
	Nano:  1e-9,
	Micro: 1e-6,
	Milli: 1e-3,
	Centi: 1e-2,
	Deci:  1e-1,
	Deca:  1e1,
	Hecto: 1e2,
	Kilo:  1e3,
	Mega:  1e6,
	Giga:  1e9,
}

// prefixSymbols maps each prefix to its SI symbol.
var prefixSymbols = [numPrefixes]string{
	One:   "",
	Nano:  "n",
	Micro: "µ",
	Milli: "m",
	Centi: "c",
	Deci:  "d",
	Deca:  "da",
	Hecto: "h",
	Kilo:  "k",
	Mega:  "M",
	Giga:  "G",
}

// prefixNames drives Prefix.String. Indexed by Prefix.
var prefixNames = [numPrefixes]string{
	One:   "one",
	Nano:  "nano",
	Micro: "micro",
	Milli: "milli",
	Centi: "centi",
	Deci:  "deci",
	Deca:  "deca",
	Hecto: "hecto",
	Kilo:  "kilo",
	Mega:  "mega",
	Giga:  "giga",
}

// Scale returns the decimal factor the prefix stands for, e.g. 1000 for Kilo.
func (p Prefix) Scale() float64 {
	if p < 0 || p >= numPrefixes {
		return 1
	}
	return prefixScales[p]
}

// Symbol returns the SI symbol, e.g. "k" for Kilo. One returns "".
func (p Prefix) Symbol() string {
	if p < 0 || p >= numPrefixes {
		return ""
	}
	return prefixSymbols[p]
}

// String returns the prefix name, e.g. "kilo".
func (p Prefix) String() string {
	if p < 0 || p >= numPrefixes {
		return "Prefix(unknown)"
	}
	return prefixNames[p]
}

// Quantity is an immutable physical quantity: a magnitude normalized to the
// base unit of its PhysicalType, plus the display prefix it was built with.
// The zero value is a dimensionless zero.
//
// Construct quantities with New or the named constructors (Meter, Newton,
// Pascal, …); all arithmetic methods return fresh values, so a Quantity may
// be shared freely across goroutines.
type Quantity struct {
	physicalType PhysicalType
	baseValue    float64
	prefix       Prefix
}

// options collects the adjustable parts of New.
type options struct {
	prefix Prefix
}

// defaultOptions returns the configuration New starts from: no prefix.
func defaultOptions() options {
	return options{prefix: One}
}

// Option customizes New.
type Option func(*options)

// WithPrefix makes New interpret the supplied magnitude in the prefixed
// unit, e.g. WithPrefix(Kilo) on a Force reads the value as kilonewtons.
// For higher-order types the prefix applies per dimension: a Centi Area
// magnitude is in (0.01 m)² = 1e-4 m².
func WithPrefix(p Prefix) Option {
	return func(o *options) {
		o.prefix = p
	}
}
