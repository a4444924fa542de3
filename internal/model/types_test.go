package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitGoName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"meters":                 "Meters",
		"nautical_miles":         "NauticalMiles",
		"furlongs_per_fortnight": "FurlongsPerFortnight",
		"degrees__c":             "DegreesC",
		"rpm2":                   "Rpm2",
	}
	for name, want := range tests {
		assert.Equal(t, want, Unit{Name: name}.GoName(), name)
	}
}

func TestDerivation(t *testing.T) {
	t.Parallel()

	d := Derivation{LHS: "Force", Op: OpMul, RHS: "Distance", Result: "Energy"}
	assert.Equal(t, "MulDistance", d.MethodName())
	assert.Equal(t, "Force * Distance => Energy", d.String())
	assert.Equal(t, "Div", OpDiv.MethodPrefix())
	assert.Empty(t, Operator("+").MethodPrefix())
}

func TestLookups(t *testing.T) {
	t.Parallel()

	s := &Schema{Quantities: []Quantity{
		{Name: "Time", Base: "seconds", Units: []Unit{{Name: "minutes"}, {Name: "seconds", IsBase: true}}},
	}}

	q, ok := s.Quantity("Time")
	require.True(t, ok)
	require.NotNil(t, q.BaseUnit())
	assert.Equal(t, "seconds", q.BaseUnit().Name)

	_, ok = s.Quantity("Mass")
	assert.False(t, ok)
	assert.Nil(t, (&Quantity{}).BaseUnit())
}
