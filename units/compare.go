package units

import (
	"fmt"
	"math"
)

// defaultRelTol and defaultAbsTol are the tolerances IsClose applies when
// no CloseOption overrides them.
const (
	defaultRelTol = 1e-5
	defaultAbsTol = 1e-8
)

// Cmp compares base magnitudes and returns -1 when q < o, 0 when equal
// and +1 when q > o. Both operands must share one physical type; the
// comparison never looks at display prefixes, so 100 cm and 1 m compare
// equal. Returns ErrDimensionMismatch when the types differ.
func (q Quantity) Cmp(o Quantity) (int, error) {
	if q.physicalType != o.physicalType {
		return 0, fmt.Errorf("%w: compare %s with %s", ErrDimensionMismatch, q.physicalType, o.physicalType)
	}
	switch {
	case q.baseValue < o.baseValue:
		return -1, nil
	case q.baseValue > o.baseValue:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal reports q == o on base magnitudes. Returns ErrDimensionMismatch
// when the physical types differ.
func (q Quantity) Equal(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	return c == 0, err
}

// NotEqual reports q != o on base magnitudes.
func (q Quantity) NotEqual(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	if err != nil {
		return false, err
	}
	return c != 0, nil
}

// Less reports q < o on base magnitudes.
func (q Quantity) Less(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual reports q <= o on base magnitudes.
func (q Quantity) LessOrEqual(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports q > o on base magnitudes.
func (q Quantity) Greater(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual reports q >= o on base magnitudes.
func (q Quantity) GreaterOrEqual(o Quantity) (bool, error) {
	c, err := q.Cmp(o)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// closeOptions collects the tolerances of IsClose.
type closeOptions struct {
	relTol float64
	absTol float64
}

// CloseOption customizes IsClose.
type CloseOption func(*closeOptions)

// WithRelTol overrides the relative tolerance (default 1e-5).
// Panics if tol is negative.
func WithRelTol(tol float64) CloseOption {
	if tol < 0 {
		panic("units: relative tolerance must be non-negative")
	}
	return func(o *closeOptions) {
		o.relTol = tol
	}
}

// WithAbsTol overrides the absolute tolerance (default 1e-8).
// Panics if tol is negative.
func WithAbsTol(tol float64) CloseOption {
	if tol < 0 {
		panic("units: absolute tolerance must be non-negative")
	}
	return func(o *closeOptions) {
		o.absTol = tol
	}
}

// IsClose reports approximate equality of base magnitudes under the
// combined tolerance test
//
//	|a.base - b.base| <= absTol + relTol*|b.base|
//
// with defaults relTol=1e-5, absTol=1e-8. Both quantities must share one
// physical type; returns ErrDimensionMismatch otherwise.
func IsClose(a, b Quantity, opts ...CloseOption) (bool, error) {
	if a.physicalType != b.physicalType {
		return false, fmt.Errorf("%w: compare %s with %s", ErrDimensionMismatch, a.physicalType, b.physicalType)
	}
	cfg := closeOptions{relTol: defaultRelTol, absTol: defaultAbsTol}
	for _, opt := range opts {
		opt(&cfg)
	}
	return math.Abs(a.baseValue-b.baseValue) <= cfg.absTol+cfg.relTol*math.Abs(b.baseValue), nil
}
