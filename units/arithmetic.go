package units

import "fmt"

// Add returns q + o. Both operands must share one physical type; the sum
// is computed on base magnitudes, so prefixes never need pre-conversion.
// The result keeps q's display prefix. Returns ErrDimensionMismatch when
// the types differ.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	if q.physicalType != o.physicalType {
		return Quantity{}, fmt.Errorf("%w: add %s and %s", ErrDimensionMismatch, q.physicalType, o.physicalType)
	}
	return Quantity{physicalType: q.physicalType, baseValue: q.baseValue + o.baseValue, prefix: q.prefix}, nil
}

// Sub returns q - o under the same rules as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	if q.physicalType != o.physicalType {
		return Quantity{}, fmt.Errorf("%w: subtract %s from %s", ErrDimensionMismatch, o.physicalType, q.physicalType)
	}
	return Quantity{physicalType: q.physicalType, baseValue: q.baseValue - o.baseValue, prefix: q.prefix}, nil
}

// Neg returns the quantity with its sign flipped, e.g. for switching
// between tension and compression conventions.
func (q Quantity) Neg() Quantity {
	return Quantity{physicalType: q.physicalType, baseValue: -q.baseValue, prefix: q.prefix}
}

// MulScalar returns q scaled by a bare number. The physical type and the
// display prefix are preserved, so 100 × 1 cm is 100 cm.
func (q Quantity) MulScalar(s float64) Quantity {
	return Quantity{physicalType: q.physicalType, baseValue: q.baseValue * s, prefix: q.prefix}
}

// DivScalar returns q divided by a bare number, preserving type and
// prefix. Returns ErrDivisionByZero when s is exactly zero.
func (q Quantity) DivScalar(s float64) (Quantity, error) {
	if s == 0 {
		return Quantity{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, q.physicalType)
	}
	return Quantity{physicalType: q.physicalType, baseValue: q.baseValue / s, prefix: q.prefix}, nil
}

// Mul returns q · o with the result type resolved from the derivation
// table (symmetrically, so operand order never matters). Base magnitudes
// multiply; the result carries prefix One. A Dimensionless operand acts
// as a plain scale factor on the other operand. Returns ErrNoDerivation,
// naming both operand types, when the table has no entry for the pair.
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	// 1) Dimensionless operands scale rather than derive.
	if o.physicalType == Dimensionless {
		return q.MulScalar(o.baseValue), nil
	}
	if q.physicalType == Dimensionless {
		return o.MulScalar(q.baseValue), nil
	}
	// 2) Resolve the result type from the table.
	result, ok := ProductType(q.physicalType, o.physicalType)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s * %s", ErrNoDerivation, q.physicalType, o.physicalType)
	}
	// 3) Combine base magnitudes.
	return Quantity{physicalType: result, baseValue: q.baseValue * o.baseValue, prefix: One}, nil
}

// Div returns q / o.
//
// Same-typed operands cancel into a Dimensionless ratio. For differently
// typed operands the derivation table is inverted: the result is the type
// X with X · type(o) = type(q), carrying prefix One. A Dimensionless
// divisor acts as a plain scale factor.
//
// Returns ErrDivisionByZero when o's base magnitude is exactly zero,
// regardless of types, and ErrNoDerivation when no table entry produces
// type(q) from type(o).
func (q Quantity) Div(o Quantity) (Quantity, error) {
	// 1) A zero divisor fails before any type resolution.
	if o.baseValue == 0 {
		return Quantity{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, q.physicalType, o.physicalType)
	}
	// 2) Dimensionless divisors scale.
	if o.physicalType == Dimensionless {
		return q.DivScalar(o.baseValue)
	}
	// 3) Same-typed quantities cancel into a bare ratio.
	if q.physicalType == o.physicalType {
		return Quantity{physicalType: Dimensionless, baseValue: q.baseValue / o.baseValue, prefix: One}, nil
	}
	// 4) Invert the derivation table: find X with X * type(o) = type(q).
	result, ok := QuotientType(q.physicalType, o.physicalType)
	if !ok {
		return Quantity{}, fmt.Errorf("%w: %s / %s", ErrNoDerivation, q.physicalType, o.physicalType)
	}
	return Quantity{physicalType: result, baseValue: q.baseValue / o.baseValue, prefix: One}, nil
}

// Pow returns q raised to a non-negative integer exponent by repeated
// multiplication through the derivation table, so every intermediate
// product must itself be derivable (Length.Pow(2) is Area, Length.Pow(4)
// is SecondMomentOfArea, but Force.Pow(2) fails with ErrNoDerivation).
// Pow(0) is the multiplicative identity of the same type: magnitude 1,
// prefix One. Returns ErrInvalidExponent for negative exponents.
func (q Quantity) Pow(n int) (Quantity, error) {
	if n < 0 {
		return Quantity{}, fmt.Errorf("%w: %s ** %d", ErrInvalidExponent, q.physicalType, n)
	}
	if n == 0 {
		return newQuantity(q.physicalType, 1, One), nil
	}
	result := q
	for i := 1; i < n; i++ {
		next, err := result.Mul(q)
		if err != nil {
			return Quantity{}, err
		}
		result = next
	}
	return result, nil
}
