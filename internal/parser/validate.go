package parser

import (
	"fmt"
	"go/token"
	"math"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"unitgen/internal/model"
)

// Diagnostic codes reported by Validate.
const (
	CodeBadPackage        = "bad_package"
	CodeNoQuantities      = "no_quantities"
	CodeBadQuantityName   = "bad_quantity_name"
	CodeDuplicateQuantity = "duplicate_quantity"
	CodeMissingBase       = "missing_base"
	CodeBaseFactor        = "base_factor_not_one"
	CodeNoUnits           = "no_units"
	CodeBadUnitName       = "bad_unit_name"
	CodeDuplicateUnit     = "duplicate_unit"
	CodeReservedName      = "reserved_name"
	CodeNameClash         = "name_clash"
	CodeBadFactor         = "bad_factor"
	CodeUnknownQuantity   = "unknown_quantity"
	CodeDuplicateRule     = "duplicate_rule"
	CodeBadOperator       = "bad_operator"
)

// reservedUnits are unit identifiers whose generated constructor would
// clash with a fixed one (e.g. DistanceFromBaseUnits).
var reservedUnits = map[string]bool{
	"BaseUnits": true,
}

var unitNameRe = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// Diagnostic is a single validation problem.
type Diagnostic struct {
	Code     string
	Message  string
	Location string // quantity, unit or rule the problem refers to
}

func (d Diagnostic) String() string {
	if d.Location == "" {
		return fmt.Sprintf("[%s] %s", d.Code, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Code, d.Location, d.Message)
}

// ValidationError aggregates every problem found in a schema.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		lines = append(lines, d.String())
	}
	return fmt.Sprintf("schema has %d problem(s):\n  %s", len(e.Diagnostics), strings.Join(lines, "\n  "))
}

// Has reports whether a diagnostic with the given code was recorded.
func (e *ValidationError) Has(code string) bool {
	for _, d := range e.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(code, location, format string, args ...any) {
	e.Diagnostics = append(e.Diagnostics, Diagnostic{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: location,
	})
}

// Validate checks a parsed schema. It returns nil or an error wrapping a
// *ValidationError listing all problems.
func Validate(s *model.Schema) error {
	res := &ValidationError{}

	if !token.IsIdentifier(s.Package) {
		res.add(CodeBadPackage, "", "package name %q is not a Go identifier", s.Package)
	}
	if len(s.Quantities) == 0 {
		res.add(CodeNoQuantities, "", "schema declares no quantities")
	}

	seen := make(map[string]bool)
	for i := range s.Quantities {
		q := &s.Quantities[i]
		if !token.IsIdentifier(q.Name) || !token.IsExported(q.Name) {
			res.add(CodeBadQuantityName, q.Name, "quantity name must be an exported Go identifier")
		}
		if seen[q.Name] {
			res.add(CodeDuplicateQuantity, q.Name, "quantity declared more than once")
		}
		seen[q.Name] = true

		validateQuantity(res, q)
	}
	validatePackageScope(res, s.Quantities)

	rules := make(map[string]bool)
	for _, d := range s.Derivations {
		loc := d.String()
		if d.Op != model.OpMul && d.Op != model.OpDiv {
			res.add(CodeBadOperator, loc, "operator %q is not * or /", d.Op)
		}
		for _, name := range []string{d.LHS, d.RHS, d.Result} {
			if !seen[name] {
				res.add(CodeUnknownQuantity, loc, "quantity %s is not declared", name)
			}
		}
		// One method per (LHS, op, RHS); the result type cannot disambiguate.
		key := d.LHS + "." + d.MethodName()
		if rules[key] {
			res.add(CodeDuplicateRule, loc, "%s already has a %s method", d.LHS, d.MethodName())
		}
		rules[key] = true
	}

	if len(res.Diagnostics) == 0 {
		return nil
	}
	return errors.WithHint(res, "fix the listed problems in the schema file and re-run")
}

// validatePackageScope reports generated package-level identifiers claimed by
// more than one quantity, such as a quantity named DistanceUnits next to the
// DistanceUnits function of Distance.
func validatePackageScope(res *ValidationError, qs []model.Quantity) {
	owners := make(map[string]string)
	claim := func(ident, owner, loc string) {
		prev, ok := owners[ident]
		if !ok {
			owners[ident] = owner
			return
		}
		// Clashes within one quantity are duplicate or reserved units.
		if prev != owner {
			res.add(CodeNameClash, loc, "generated identifier %s is also declared by %s", ident, prev)
		}
	}

	for _, q := range qs {
		claim(q.Name, q.Name, q.Name)
		claim(q.Name+"FromBaseUnits", q.Name, q.Name)
		claim(q.Name+"Units", q.Name, q.Name)
		for _, u := range q.Units {
			claim(q.Name+"From"+u.GoName(), q.Name, q.Name+"."+u.Name)
		}
	}
}

func validateQuantity(res *ValidationError, q *model.Quantity) {
	if q.Base == "" {
		res.add(CodeMissingBase, q.Name, "no base unit declared")
	}
	if len(q.Units) == 0 {
		res.add(CodeNoUnits, q.Name, "no units declared")
		return
	}

	// Keyed by Go name: "a1" and "a_1" would generate the same methods.
	names := make(map[string]bool)
	for _, u := range q.Units {
		loc := q.Name + "." + u.Name
		if !unitNameRe.MatchString(u.Name) {
			res.add(CodeBadUnitName, loc, "unit names must be snake_case")
		}
		if names[u.GoName()] {
			res.add(CodeDuplicateUnit, loc, "unit declared more than once")
		}
		names[u.GoName()] = true

		if reservedUnits[u.GoName()] {
			res.add(CodeReservedName, loc, "unit name collides with a generated method")
		}
		if u.Factor == 0 || math.IsInf(u.Factor, 0) || math.IsNaN(u.Factor) {
			res.add(CodeBadFactor, loc, "factor %q must be finite and non-zero", u.Expr)
		}
		if u.IsBase && u.Factor != 1 {
			res.add(CodeBaseFactor, loc, "base unit factor is %q, want 1", u.Expr)
		}
	}
}
