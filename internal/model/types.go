// Package model defines the intermediate representation for quantity schemas.
package model

import (
	"strings"
	"unicode"
)

// Operator is the arithmetic operator of a derivation rule.
type Operator string

const (
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// MethodPrefix returns the Go method name prefix for the operator.
func (o Operator) MethodPrefix() string {
	switch o {
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	default:
		return ""
	}
}

// Schema represents a parsed quantity schema file.
type Schema struct {
	Package     string       // Go package name for generated code
	Doc         string       // Package documentation
	Path        string       // Schema file path
	Quantities  []Quantity   // Quantity declarations, in file order
	Derivations []Derivation // Cross-quantity rules, in file order
}

// Quantity represents one physical quantity type.
type Quantity struct {
	Name   string // Go type name (e.g., "Distance")
	Doc    string // Documentation comment
	Base   string // Name of the canonical unit
	Symbol string // Display symbol of the base unit (optional)
	Units  []Unit // Declared units in schema order
}

// Unit represents a named unit and its factor relative to the base unit.
type Unit struct {
	Name   string  // snake_case name (e.g., "nautical_miles")
	Expr   string  // Factor as written in the schema
	Factor float64 // value_in_unit = base * Factor
	IsBase bool    // Whether this is the canonical unit
}

// Derivation represents a rule "LHS Op RHS => Result".
type Derivation struct {
	LHS    string
	Op     Operator
	RHS    string
	Result string
	Raw    string // Rule as written in the schema
}

// MethodName returns the name of the method generated on the LHS type.
func (d Derivation) MethodName() string {
	return d.Op.MethodPrefix() + d.RHS
}

// String returns the canonical rule text.
func (d Derivation) String() string {
	return d.LHS + " " + string(d.Op) + " " + d.RHS + " => " + d.Result
}

// Quantity looks up a quantity by name.
func (s *Schema) Quantity(name string) (*Quantity, bool) {
	for i := range s.Quantities {
		if s.Quantities[i].Name == name {
			return &s.Quantities[i], true
		}
	}
	return nil, false
}

// BaseUnit returns the canonical unit of the quantity.
func (q *Quantity) BaseUnit() *Unit {
	for i := range q.Units {
		if q.Units[i].IsBase {
			return &q.Units[i]
		}
	}
	return nil
}

// GoName returns the PascalCase Go identifier fragment for the unit
// (e.g., "nautical_miles" -> "NauticalMiles").
func (u Unit) GoName() string {
	var b strings.Builder
	for _, part := range strings.Split(u.Name, "_") {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
