package units

import "errors"

var (
	// ErrDimensionMismatch is returned when Add, Sub or a comparison is
	// attempted between quantities of different physical types.
	ErrDimensionMismatch = errors.New("units: physical types do not match")

	// ErrNoDerivation is returned by Mul and Div when the derivation table
	// defines no result type for the operand pair.
	ErrNoDerivation = errors.New("units: no derivation for operand types")

	// ErrDivisionByZero is returned by DivScalar and Div when the divisor
	// is exactly zero.
	ErrDivisionByZero = errors.New("units: division by zero")

	// ErrPrefixNotAllowed is returned when a prefix other than One is
	// applied to a physical type that rejects prefixing.
	ErrPrefixNotAllowed = errors.New("units: prefix not allowed for physical type")

	// ErrInvalidExponent is returned by Pow when the exponent is negative.
	ErrInvalidExponent = errors.New("units: exponent must be non-negative")
)
