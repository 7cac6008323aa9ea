package units

import (
	"fmt"
	"strconv"
)

// New builds a Quantity of physical type t from a magnitude expressed in
// the (optionally prefixed) unit of that type. The magnitude is normalized
// to the base unit immediately, with the prefix scale applied once per
// dimension of t:
//
//	New(Force, 2, WithPrefix(Kilo))  // 2 kN  -> base 2000 N
//	New(Area, 1, WithPrefix(Centi))  // 1 cm² -> base 1e-4 m²
//
// Returns ErrPrefixNotAllowed when t rejects prefixing and a prefix other
// than One was requested.
func New(t PhysicalType, value float64, opts ...Option) (Quantity, error) {
	// 1) Resolve construction options.
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// 2) Reject prefixes on types that are written unprefixed.
	if cfg.prefix != One && !t.allowsPrefix() {
		return Quantity{}, fmt.Errorf("%w: %s prefix on %s", ErrPrefixNotAllowed, cfg.prefix, t)
	}
	// 3) Normalize to the base unit.
	return newQuantity(t, value, cfg.prefix), nil
}

// newQuantity normalizes value from the prefixed unit into the base unit.
// Callers must have validated the prefix against t already.
func newQuantity(t PhysicalType, value float64, p Prefix) Quantity {
	return Quantity{
		physicalType: t,
		baseValue:    value * prefixFactor(p, t.power()),
		prefix:       p,
	}
}

// prefixFactor returns Scale(p) raised to power by repeated multiplication.
// The loop keeps the factor bit-identical between normalization and
// denormalization, so In(p) after New(..., WithPrefix(p)) round-trips.
func prefixFactor(p Prefix, power int) float64 {
	factor := 1.0
	scale := p.Scale()
	for i := 0; i < power; i++ {
		factor *= scale
	}
	return factor
}

// Type returns the physical type of the quantity.
func (q Quantity) Type() PhysicalType {
	return q.physicalType
}

// Prefix returns the display prefix the quantity was built with. Derived
// quantities (results of Mul, Div, Pow) carry One.
func (q Quantity) Prefix() Prefix {
	return q.prefix
}

// Value returns the magnitude expressed in the quantity's own prefixed
// unit, i.e. the number that was passed at construction (up to rounding).
// For Dimensionless quantities this is the bare ratio.
func (q Quantity) Value() float64 {
	return q.baseValue / prefixFactor(q.prefix, q.physicalType.power())
}

// BaseValue returns the magnitude in the canonical base unit of the
// quantity's type (meters, newtons, pascals, …), with no prefix applied.
func (q Quantity) BaseValue() float64 {
	return q.baseValue
}

// In returns the magnitude expressed in the unit prefixed by p, e.g.
// In(Kilo) on a 1500 N force yields 1.5. Returns ErrPrefixNotAllowed when
// the quantity's type rejects prefixing and p is not One.
func (q Quantity) In(p Prefix) (float64, error) {
	if p != One && !q.physicalType.allowsPrefix() {
		return 0, fmt.Errorf("%w: %s prefix on %s", ErrPrefixNotAllowed, p, q.physicalType)
	}
	return q.baseValue / prefixFactor(p, q.physicalType.power()), nil
}

// To returns the same physical quantity with its display prefix switched
// to p. The base magnitude is unchanged, so the result compares equal to
// the receiver. Returns ErrPrefixNotAllowed when the quantity's type
// rejects prefixing and p is not One.
func (q Quantity) To(p Prefix) (Quantity, error) {
	if p != One && !q.physicalType.allowsPrefix() {
		return Quantity{}, fmt.Errorf("%w: %s prefix on %s", ErrPrefixNotAllowed, p, q.physicalType)
	}
	return Quantity{physicalType: q.physicalType, baseValue: q.baseValue, prefix: p}, nil
}

// IsZero reports whether the base magnitude is exactly zero.
func (q Quantity) IsZero() bool {
	return q.baseValue == 0
}

// String renders the quantity in its own prefixed unit with the shortest
// exact decimal magnitude, e.g. "2.003 kN", "100 cm²", "5 m".
// Dimensionless quantities render as a bare number.
func (q Quantity) String() string {
	magnitude := strconv.FormatFloat(q.Value(), 'g', -1, 64)
	symbol := q.prefix.Symbol() + q.physicalType.BaseSymbol()
	if symbol == "" {
		return magnitude
	}
	return magnitude + " " + symbol
}
