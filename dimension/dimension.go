// Package dimension provides generic helpers over generated quantity types.
//
// Every type produced by unitgen satisfies Quantity, so the helpers work on
// any of them while still refusing to mix two different quantities:
//
//	total := dimension.Sum(units.DistanceFromMeters(3), units.DistanceFromFeet(10))
//	fastest := dimension.Max(v1, v2)
package dimension

import "math"

// Quantity is a value stored as a single magnitude in a canonical base unit.
// FromBaseUnits ignores its receiver; it exists so generic code can construct
// values of Q.
type Quantity[Q any] interface {
	BaseUnits() float64
	FromBaseUnits(v float64) Q
}

func from[Q Quantity[Q]](v float64) Q {
	var zero Q
	return zero.FromBaseUnits(v)
}

// Sum adds quantities. The sum of no quantities is zero.
func Sum[Q Quantity[Q]](qs ...Q) Q {
	var total float64
	for _, q := range qs {
		total += q.BaseUnits()
	}
	return from[Q](total)
}

// Min returns the smaller of a and b. If either is NaN the result is NaN.
func Min[Q Quantity[Q]](a, b Q) Q {
	return from[Q](math.Min(a.BaseUnits(), b.BaseUnits()))
}

// Max returns the larger of a and b. If either is NaN the result is NaN.
func Max[Q Quantity[Q]](a, b Q) Q {
	return from[Q](math.Max(a.BaseUnits(), b.BaseUnits()))
}

// Clamp limits q to the closed range [lo, hi].
func Clamp[Q Quantity[Q]](q, lo, hi Q) Q {
	return Min(Max(q, lo), hi)
}

// Lerp interpolates linearly between a (t=0) and b (t=1). Both endpoints are
// returned exactly.
func Lerp[Q Quantity[Q]](a, b Q, t float64) Q {
	x, y := a.BaseUnits(), b.BaseUnits()
	return from[Q](x*(1-t) + y*t)
}

// ApproxEqual reports whether a and b differ by at most absTol, or by at most
// relTol relative to the larger magnitude. NaN is never approximately equal,
// and an infinity only matches the same infinity.
func ApproxEqual[Q Quantity[Q]](a, b Q, relTol, absTol float64) bool {
	x, y := a.BaseUnits(), b.BaseUnits()
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= absTol {
		return true
	}
	return diff <= relTol*math.Max(math.Abs(x), math.Abs(y))
}
