// Package units implements dimension-checked arithmetic over physical
// quantities for Eurocode-style structural calculations.
//
// A Quantity binds a floating-point magnitude to exactly one PhysicalType
// (Length, Force, Pressure, …). Magnitudes are normalized to the canonical
// base unit of their type at construction time (meters, newtons, pascals, …),
// so quantities built with different metric prefixes combine without any
// explicit conversion:
//
//	total, _ := units.Meter(1).Add(units.Centimeter(100)) // 2 m
//
// Multiplication and division between quantities are defined by a fixed
// derivation table mapping pairs of physical types to a result type
// (Length×Length→Area, Pressure×Area→Force, Force×Length→Energy, …).
// The table is consulted symmetrically for products and inverted for
// quotients, so for every valid pair (a·b)/b == a and (a·b)/a == b.
// Dividing same-typed quantities yields a Dimensionless quantity carrying
// the bare ratio.
//
// Quantities are immutable values: every operation returns a new Quantity
// and never mutates an operand, which makes the package safe for concurrent
// use without locking.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrDimensionMismatch - add/sub/compare across different physical types.
//	ErrNoDerivation      - multiply/divide with no derivation-table entry.
//	ErrDivisionByZero    - scalar or quantity divisor is exactly zero.
//	ErrPrefixNotAllowed  - prefix applied to a type that rejects prefixing
//	                       (angle, time, mass, temperature, dimensionless).
//	ErrInvalidExponent   - Pow with a negative exponent.
//
// Example usage:
//
//	f, _ := units.Kilonewton(2).Add(units.Newton(3)) // 2.003 kN
//	e, _ := units.Meter(5).Mul(units.Newton(3))      // 15 J
//	l, _ := e.Div(units.Newton(3))                   // 5 m
//	fmt.Println(f, e, l)
package units
