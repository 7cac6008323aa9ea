package units

// Named constructors below are thin partial applications of New with the
// physical type and prefix baked in. They cannot fail: every baked-in
// prefix is legal for its type, so they return Quantity directly instead
// of (Quantity, error).

// Scalar returns a Dimensionless quantity carrying the bare number v.
func Scalar(v float64) Quantity {
	return newQuantity(Dimensionless, v, One)
}

// Radian returns an Angle of v rad.
func Radian(v float64) Quantity {
	return newQuantity(Angle, v, One)
}

// Second returns a Time of v s.
func Second(v float64) Quantity {
	return newQuantity(Time, v, One)
}

// Meter returns a Length of v m.
func Meter(v float64) Quantity {
	return newQuantity(Length, v, One)
}

// Centimeter returns a Length of v cm.
func Centimeter(v float64) Quantity {
	return newQuantity(Length, v, Centi)
}

// Millimeter returns a Length of v mm.
func Millimeter(v float64) Quantity {
	return newQuantity(Length, v, Milli)
}

// SquareMeter returns an Area of v m².
func SquareMeter(v float64) Quantity {
	return newQuantity(Area, v, One)
}

// SquareCentimeter returns an Area of v cm², i.e. v·(0.01 m)².
func SquareCentimeter(v float64) Quantity {
	return newQuantity(Area, v, Centi)
}

// SquareMillimeter returns an Area of v mm², i.e. v·(0.001 m)².
func SquareMillimeter(v float64) Quantity {
	return newQuantity(Area, v, Milli)
}

// CubicMeter returns a Volume of v m³.
func CubicMeter(v float64) Quantity {
	return newQuantity(Volume, v, One)
}

// CubicCentimeter returns a Volume of v cm³.
func CubicCentimeter(v float64) Quantity {
	return newQuantity(Volume, v, Centi)
}

// CubicMillimeter returns a Volume of v mm³.
func CubicMillimeter(v float64) Quantity {
	return newQuantity(Volume, v, Milli)
}

// QuarticMeter returns a SecondMomentOfArea of v m⁴.
func QuarticMeter(v float64) Quantity {
	return newQuantity(SecondMomentOfArea, v, One)
}

// QuarticCentimeter returns a SecondMomentOfArea of v cm⁴.
func QuarticCentimeter(v float64) Quantity {
	return newQuantity(SecondMomentOfArea, v, Centi)
}

// QuarticMillimeter returns a SecondMomentOfArea of v mm⁴, the usual unit
// for rolled-section tables.
func QuarticMillimeter(v float64) Quantity {
	return newQuantity(SecondMomentOfArea, v, Milli)
}

// MeterPerSecond returns a Speed of v m/s.
func MeterPerSecond(v float64) Quantity {
	return newQuantity(Speed, v, One)
}

// MeterPerSecondSquared returns an Acceleration of v m/s².
func MeterPerSecondSquared(v float64) Quantity {
	return newQuantity(Acceleration, v, One)
}

// Kilogram returns a Mass of v kg. Mass rejects further prefixing; its
// base unit already carries one.
func Kilogram(v float64) Quantity {
	return newQuantity(Mass, v, One)
}

// Newton returns a Force of v N.
func Newton(v float64) Quantity {
	return newQuantity(Force, v, One)
}

// Kilonewton returns a Force of v kN.
func Kilonewton(v float64) Quantity {
	return newQuantity(Force, v, Kilo)
}

// NewtonPerMeter returns a ForcePerLength of v N/m.
func NewtonPerMeter(v float64) Quantity {
	return newQuantity(ForcePerLength, v, One)
}

// KilonewtonPerMeter returns a ForcePerLength of v kN/m, the usual unit
// for line loads.
func KilonewtonPerMeter(v float64) Quantity {
	return newQuantity(ForcePerLength, v, Kilo)
}

// NewtonPerCubicMeter returns a SpecificWeight of v N/m³.
func NewtonPerCubicMeter(v float64) Quantity {
	return newQuantity(SpecificWeight, v, One)
}

// KilonewtonPerCubicMeter returns a SpecificWeight of v kN/m³, the usual
// unit for material weight densities.
func KilonewtonPerCubicMeter(v float64) Quantity {
	return newQuantity(SpecificWeight, v, Kilo)
}

// Pascal returns a Pressure of v Pa.
func Pascal(v float64) Quantity {
	return newQuantity(Pressure, v, One)
}

// Megapascal returns a Pressure of v MPa, the usual unit for steel
// strengths (1 MPa = 1 N/mm²).
func Megapascal(v float64) Quantity {
	return newQuantity(Pressure, v, Mega)
}

// Gigapascal returns a Pressure of v GPa.
func Gigapascal(v float64) Quantity {
	return newQuantity(Pressure, v, Giga)
}

// Joule returns an Energy of v J.
func Joule(v float64) Quantity {
	return newQuantity(Energy, v, One)
}

// Kilojoule returns an Energy of v kJ.
func Kilojoule(v float64) Quantity {
	return newQuantity(Energy, v, Kilo)
}

// NewtonMeter returns an Energy of v N·m. Moments share the Energy
// dimension, so 1 N·m and 1 J are the same quantity.
func NewtonMeter(v float64) Quantity {
	return newQuantity(Energy, v, One)
}

// KilonewtonMeter returns an Energy of v kN·m, the usual unit for design
// bending moments.
func KilonewtonMeter(v float64) Quantity {
	return newQuantity(Energy, v, Kilo)
}

// Kelvin returns a Temperature of v K.
func Kelvin(v float64) Quantity {
	return newQuantity(Temperature, v, One)
}
