package parser

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitgen/internal/model"
)

func unit(name string, factor float64) model.Unit {
	return model.Unit{Name: name, Expr: "test", Factor: factor}
}

func baseUnit(name string) model.Unit {
	return model.Unit{Name: name, Expr: "1", Factor: 1, IsBase: true}
}

func validSchema() *model.Schema {
	return &model.Schema{
		Package: "units",
		Quantities: []model.Quantity{
			{Name: "Distance", Base: "meters", Units: []model.Unit{baseUnit("meters"), unit("feet", 3.28084)}},
			{Name: "Time", Base: "seconds", Units: []model.Unit{baseUnit("seconds")}},
			{Name: "Velocity", Base: "meters_per_second", Units: []model.Unit{baseUnit("meters_per_second")}},
		},
		Derivations: []model.Derivation{
			{LHS: "Distance", Op: model.OpDiv, RHS: "Time", Result: "Velocity"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(validSchema()))
}

func TestValidate_Problems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(s *model.Schema)
		code   string
	}{
		{"bad package", func(s *model.Schema) { s.Package = "my-units" }, CodeBadPackage},
		{"no quantities", func(s *model.Schema) { s.Quantities = nil; s.Derivations = nil }, CodeNoQuantities},
		{"unexported quantity", func(s *model.Schema) { s.Quantities[1].Name = "time" }, CodeBadQuantityName},
		{"duplicate quantity", func(s *model.Schema) { s.Quantities[1].Name = "Distance" }, CodeDuplicateQuantity},
		{"missing base", func(s *model.Schema) { s.Quantities[0].Base = "" }, CodeMissingBase},
		{"no units", func(s *model.Schema) { s.Quantities[1].Units = nil }, CodeNoUnits},
		{"bad unit name", func(s *model.Schema) { s.Quantities[0].Units[1].Name = "Feet" }, CodeBadUnitName},
		{"duplicate unit", func(s *model.Schema) { s.Quantities[0].Units[1].Name = "meters" }, CodeDuplicateUnit},
		{"units with same go name", func(s *model.Schema) {
			s.Quantities[0].Units = append(s.Quantities[0].Units, unit("foot_2", 1), unit("foot2", 2))
		}, CodeDuplicateUnit},
		{"reserved unit", func(s *model.Schema) { s.Quantities[0].Units[1].Name = "base_units" }, CodeReservedName},
		{"zero factor", func(s *model.Schema) { s.Quantities[0].Units[1].Factor = 0 }, CodeBadFactor},
		{"infinite factor", func(s *model.Schema) { s.Quantities[0].Units[1].Factor = math.Inf(1) }, CodeBadFactor},
		{"NaN factor", func(s *model.Schema) { s.Quantities[0].Units[1].Factor = math.NaN() }, CodeBadFactor},
		{"base factor not one", func(s *model.Schema) { s.Quantities[0].Units[0].Factor = 100 }, CodeBaseFactor},
		{"unknown operand", func(s *model.Schema) { s.Derivations[0].RHS = "Duration" }, CodeUnknownQuantity},
		{"unknown result", func(s *model.Schema) { s.Derivations[0].Result = "Speed" }, CodeUnknownQuantity},
		{"duplicate rule", func(s *model.Schema) {
			s.Derivations = append(s.Derivations, model.Derivation{LHS: "Distance", Op: model.OpDiv, RHS: "Time", Result: "Distance"})
		}, CodeDuplicateRule},
		{"bad operator", func(s *model.Schema) { s.Derivations[0].Op = "+" }, CodeBadOperator},
		{"quantity named like a unit list", func(s *model.Schema) {
			s.Quantities = append(s.Quantities, model.Quantity{
				Name: "DistanceUnits", Base: "count", Units: []model.Unit{baseUnit("count")},
			})
		}, CodeNameClash},
		{"quantity named like a constructor", func(s *model.Schema) {
			s.Quantities = append(s.Quantities, model.Quantity{
				Name: "TimeFromSeconds", Base: "ticks", Units: []model.Unit{baseUnit("ticks")},
			})
		}, CodeNameClash},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSchema()
			tt.mutate(s)

			err := Validate(s)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Has(tt.code), "want %s in:\n%s", tt.code, verr.Error())
		})
	}
}

func TestValidate_AliasesAllowed(t *testing.T) {
	t.Parallel()

	s := validSchema()
	s.Quantities[0].Units = append(s.Quantities[0].Units, unit("metres", 1), unit("foot", 3.28084))
	assert.NoError(t, Validate(s))
}

func TestValidate_DuplicateQuantityNoClash(t *testing.T) {
	t.Parallel()

	s := validSchema()
	s.Quantities[1].Name = "Distance"
	s.Quantities[1].Base = "meters"
	s.Quantities[1].Units = []model.Unit{baseUnit("meters")}

	var verr *ValidationError
	require.True(t, errors.As(Validate(s), &verr))
	assert.True(t, verr.Has(CodeDuplicateQuantity))
	assert.False(t, verr.Has(CodeNameClash), verr.Error())
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	s := validSchema()
	s.Package = ""
	s.Quantities[0].Units[1].Factor = 0
	s.Derivations[0].Result = "Speed"

	err := Validate(s)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Diagnostics, 3)
	assert.Contains(t, err.Error(), "Distance.feet")
	assert.NotEmpty(t, errors.GetAllHints(err))
}
