package dimension_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"unitgen/dimension"
	"unitgen/units"
)

func TestSum(t *testing.T) {
	t.Parallel()

	total := dimension.Sum(
		units.DistanceFromMeters(1),
		units.DistanceFromKilometers(1),
		units.DistanceFromMeters(-0.5),
	)
	assert.InDelta(t, 1000.5, total.AsMeters(), 1e-9)

	assert.Equal(t, units.Time{}, dimension.Sum[units.Time]())
}

func TestMinMaxClamp(t *testing.T) {
	t.Parallel()

	slow := units.VelocityFromKilometersPerHour(36)
	fast := units.VelocityFromMetersPerSecond(20)

	assert.Equal(t, slow, dimension.Min(slow, fast))
	assert.Equal(t, fast, dimension.Max(slow, fast))

	lo, hi := units.MassFromKilograms(1), units.MassFromKilograms(5)
	assert.Equal(t, lo, dimension.Clamp(units.MassFromGrams(10), lo, hi))
	assert.Equal(t, hi, dimension.Clamp(units.MassFromKilograms(9), lo, hi))
	mid := units.MassFromKilograms(3)
	assert.Equal(t, mid, dimension.Clamp(mid, lo, hi))

	nan := units.MassFromKilograms(math.NaN())
	assert.True(t, math.IsNaN(dimension.Max(nan, hi).BaseUnits()))
}

func TestLerp(t *testing.T) {
	t.Parallel()

	a, b := units.TimeFromSeconds(10), units.TimeFromSeconds(20)
	assert.Equal(t, a, dimension.Lerp(a, b, 0))
	assert.Equal(t, b, dimension.Lerp(a, b, 1))
	assert.Equal(t, units.TimeFromSeconds(15), dimension.Lerp(a, b, 0.5))

	// Endpoints stay exact across very different magnitudes.
	far, near := units.TimeFromSeconds(1e20), units.TimeFromSeconds(1)
	assert.Equal(t, near, dimension.Lerp(far, near, 1))
	assert.Equal(t, far, dimension.Lerp(far, near, 0))
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()

	a := units.DistanceFromMeters(0.1).Add(units.DistanceFromMeters(0.2))
	b := units.DistanceFromMeters(0.3)

	tests := []struct {
		name   string
		x, y   units.Distance
		rel    float64
		abs    float64
		expect bool
	}{
		{"exact", b, b, 0, 0, true},
		{"rounding within rel", a, b, 1e-12, 0, true},
		{"rounding within abs", a, b, 0, 1e-12, true},
		{"zero tolerance", a, b, 0, 0, false},
		{"far apart", units.DistanceFromMeters(1), units.DistanceFromMeters(2), 0.1, 0.1, false},
		{"NaN", units.DistanceFromMeters(math.NaN()), units.DistanceFromMeters(math.NaN()), 1, 1, false},
		{"same infinity", units.DistanceFromMeters(math.Inf(1)), units.DistanceFromMeters(math.Inf(1)), 0, 0, true},
		{"infinity vs finite", units.DistanceFromMeters(math.Inf(1)), units.DistanceFromMeters(1), 1e-9, 0, false},
		{"finite vs infinity", units.DistanceFromMeters(1), units.DistanceFromMeters(math.Inf(-1)), 1, 1, false},
		{"opposite infinities", units.DistanceFromMeters(math.Inf(1)), units.DistanceFromMeters(math.Inf(-1)), 1, 1, false},
		{"overflow to infinity", units.DistanceFromMeters(1), units.DistanceFromMeters(1e308).Mul(10), 1e-9, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, dimension.ApproxEqual(tt.x, tt.y, tt.rel, tt.abs))
		})
	}
}

// Generic code accepts any generated quantity but keeps the type.
func TestGenericOverQuantities(t *testing.T) {
	t.Parallel()

	double := func(q units.Energy) units.Energy {
		return dimension.Sum(q, q)
	}
	assert.Equal(t, 2.0, double(units.EnergyFromJoules(1)).AsJoules())

	var _ dimension.Quantity[units.Velocity] = units.Velocity{}
	var _ dimension.Quantity[units.Temperature] = units.Temperature{}
}
