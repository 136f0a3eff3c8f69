package services

import (
	"github.com/shopspring/decimal"
)

// CombineFunc combines one intensity draw with one factor draw into a single
// combined draw. Implementations must be pure and total over their inputs;
// an error fails the whole sampling call.
type CombineFunc func(intensity, factor decimal.Decimal) (decimal.Decimal, error)

// Multiply is the default combination: intensity times emission factor,
// giving embodied emissions per unit floor area. No unit scaling is applied;
// unit conversion is the caller's concern.
func Multiply(intensity, factor decimal.Decimal) (decimal.Decimal, error) {
	return intensity.Mul(factor), nil
}

// Add combines draws additively, for callers composing pre-scaled terms
func Add(intensity, factor decimal.Decimal) (decimal.Decimal, error) {
	return intensity.Add(factor), nil
}
