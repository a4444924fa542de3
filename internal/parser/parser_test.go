package parser

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitgen/internal/model"
)

const velocitySchema = `
package: units
doc: Package units is a test fixture.
quantities:
  - name: Distance
    base: meters
    units:
      meters: 1.0
      feet: 3.28084
      kilometers: 1 / 1000
  - name: Time
    base: seconds
    units:
      minutes: 1.0 / 60.0
      hours: 1.0 / 3600.0
  - name: Velocity
    base: meters_per_second
    symbol: m/s
    units:
      meters_per_second: 1
      furlongs_per_fortnight: 6012.87
derivations:
  - Distance / Time => Velocity
  - Velocity*Time=>Distance
`

func TestEvalFactor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		expr string
		want float64
	}{
		{"1", 1},
		{"1.0", 1},
		{"3.28084", 3.28084},
		{"1e-6", 1e-6},
		{"1.0 / 60.0", 1.0 / 60.0},
		{"1 / 3", 1.0 / 3.0},
		{"180.0 / pi", 180.0 / math.Pi},
		{"60.0 * 180.0 / pi", 60.0 * 180.0 / math.Pi},
		{"(2 + 3) * 4", 20},
		{"-0.5", -0.5},
		{"+2", 2},
		{"e", math.E},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := EvalFactor(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalFactorErrors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{
		"",
		"tau",
		"1 / 0",
		"1 / (2 - 2)",
		`"3"`,
		"2 % 3",
		"f(2)",
		"1e400",
		"!1",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := EvalFactor(expr)
			assert.Error(t, err)
		})
	}

	_, err := EvalFactor("tau")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := New().Parse([]byte(velocitySchema))
	require.NoError(t, err)
	require.Len(t, s.Quantities, 3, spew.Sdump(s))

	assert.Equal(t, "units", s.Package)
	assert.Equal(t, "Package units is a test fixture.", s.Doc)

	dist := s.Quantities[0]
	assert.Equal(t, "Distance", dist.Name)
	require.Len(t, dist.Units, 3, spew.Sdump(dist))
	assert.Equal(t, []string{"meters", "feet", "kilometers"}, unitNames(dist))
	assert.True(t, dist.Units[0].IsBase)
	assert.False(t, dist.Units[1].IsBase)
	assert.Equal(t, 0.001, dist.Units[2].Factor)
	assert.Equal(t, "1 / 1000", dist.Units[2].Expr)

	// Base unit not listed: prepended with factor 1.
	tm := s.Quantities[1]
	assert.Equal(t, []string{"seconds", "minutes", "hours"}, unitNames(tm))
	require.NotNil(t, tm.BaseUnit())
	assert.Equal(t, "seconds", tm.BaseUnit().Name)
	assert.Equal(t, 1.0, tm.BaseUnit().Factor)

	assert.Equal(t, "m/s", s.Quantities[2].Symbol)
	assert.Empty(t, dist.Symbol)

	require.Len(t, s.Derivations, 2)
	assert.Equal(t, model.Derivation{
		LHS: "Distance", Op: model.OpDiv, RHS: "Time", Result: "Velocity",
		Raw: "Distance / Time => Velocity",
	}, s.Derivations[0])
	assert.Equal(t, "Velocity * Time => Distance", s.Derivations[1].String())
	assert.Equal(t, "MulTime", s.Derivations[1].MethodName())

	assert.NoError(t, Validate(s))
}

func TestParse_EmptyUnits(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"key omitted":   "quantities:\n  - name: Count\n    base: items\n",
		"key empty":     "quantities:\n  - name: Count\n    base: items\n    units:\n",
		"explicit null": "quantities:\n  - name: Count\n    base: items\n    units: ~\n",
	} {
		t.Run(name, func(t *testing.T) {
			s, err := New().Parse([]byte(doc))
			require.NoError(t, err)
			require.Len(t, s.Quantities, 1)
			assert.Equal(t, []string{"items"}, unitNames(s.Quantities[0]), spew.Sdump(s))
			assert.True(t, s.Quantities[0].Units[0].IsBase)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "quantities: [\n"},
		{"units not a mapping", "quantities:\n  - name: A\n    base: a\n    units: [a, b]\n"},
		{"nested factor", "quantities:\n  - name: A\n    base: a\n    units:\n      b: {x: 1}\n"},
		{"bad factor", "quantities:\n  - name: A\n    base: a\n    units:\n      b: two\n"},
		{"bad rule", "quantities: []\nderivations:\n  - A plus B => C\n"},
		{"rule without result", "quantities: []\nderivations:\n  - A / B\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	d, err := ParseRule("  Power / ElectricPotential   =>  Current ")
	require.NoError(t, err)
	assert.Equal(t, "Power", d.LHS)
	assert.Equal(t, model.OpDiv, d.Op)
	assert.Equal(t, "ElectricPotential", d.RHS)
	assert.Equal(t, "Current", d.Result)
	assert.Equal(t, "DivElectricPotential", d.MethodName())

	_, err = ParseRule("Power - Current => Power")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(velocitySchema), 0o644))

	s, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, good, s.Path)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("package: units\n"), 0o644))
	_, err = Load(bad)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "%+v", err)
	assert.True(t, verr.Has(CodeNoQuantities))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalogSchema(t *testing.T) {
	t.Parallel()

	s, err := Load(filepath.Join("..", "..", "units", "quantities.yaml"))
	require.NoError(t, err)
	assert.Len(t, s.Quantities, 19)

	vel, ok := s.Quantity("Velocity")
	require.True(t, ok)
	for _, u := range vel.Units {
		if u.Name == "furlongs_per_fortnight" {
			assert.Equal(t, 6012.87, u.Factor)
		}
	}

	// Exactly one base unit per quantity, with factor 1.
	for _, q := range s.Quantities {
		bases := 0
		for _, u := range q.Units {
			if u.IsBase {
				bases++
				assert.Equal(t, 1.0, u.Factor, q.Name)
			}
		}
		assert.Equal(t, 1, bases, q.Name)
	}
}

func unitNames(q model.Quantity) []string {
	names := make([]string, 0, len(q.Units))
	for _, u := range q.Units {
		names = append(names, u.Name)
	}
	return names
}
