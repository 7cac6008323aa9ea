package units

// derivation is one row of the product table: left × right = result.
type derivation struct {
	left, right PhysicalType
	result      PhysicalType
}

// derivations is the closed product table. Lookups are symmetric, so each
// unordered pair appears exactly once; QuotientType walks this slice in
// order, which keeps quotient resolution deterministic.
var derivations = []derivation{
	{Length, Length, Area},
	{Area, Length, Volume},
	{Area, Area, SecondMomentOfArea},
	{Volume, Length, SecondMomentOfArea},
	{Speed, Time, Length},
	{Acceleration, Time, Speed},
	{Mass, Acceleration, Force},
	{Pressure, Area, Force},
	{Pressure, Length, ForcePerLength},
	{ForcePerLength, Length, Force},
	{Force, Length, Energy},
	{SpecificWeight, Volume, Force},
}

// typePair keys the O(1) product index.
type typePair struct {
	left, right PhysicalType
}

// productIndex maps each ordered pair from derivations to its result.
var productIndex = make(map[typePair]PhysicalType, len(derivations))

func init() {
	for _, d := range derivations {
		productIndex[typePair{d.left, d.right}] = d.result
	}
}

// ProductType resolves the physical type of a·b from the derivation table.
// The lookup is symmetric: ProductType(a, b) and ProductType(b, a) agree.
// ok is false when the table defines no product for the pair.
func ProductType(a, b PhysicalType) (result PhysicalType, ok bool) {
	if r, found := productIndex[typePair{a, b}]; found {
		return r, true
	}
	if r, found := productIndex[typePair{b, a}]; found {
		return r, true
	}
	return Dimensionless, false
}

// QuotientType resolves the physical type of result/operand by inverting
// the derivation table: it finds the row whose product is result and one
// of whose factors is operand, and returns the other factor. ok is false
// when no row matches.
func QuotientType(result, operand PhysicalType) (quotient PhysicalType, ok bool) {
	for _, d := range derivations {
		if d.result != result {
			continue
		}
		if d.left == operand {
			return d.right, true
		}
		if d.right == operand {
			return d.left, true
		}
	}
	return Dimensionless, false
}
