package parser

import (
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"math"

	"github.com/cockroachdb/errors"
)

// Named constants usable in factor expressions. Values carry the same
// precision as the math package constants so folding matches the compiler.
var namedConstants = map[string]string{
	"pi": "3.14159265358979323846264338327950288419716939937510582097494459",
	"e":  "2.71828182845904523536028747135266249775724709369995957496696763",
}

// EvalFactor evaluates a constant factor expression such as "1.0 / 60.0" or
// "180.0 / pi". Arithmetic is exact; the result is rounded to float64 once.
func EvalFactor(expr string) (float64, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing factor %q", expr)
	}

	val, err := fold(node)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating factor %q", expr)
	}

	f, _ := constant.Float64Val(constant.ToFloat(val))
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Newf("factor %q is not a finite float64", expr)
	}
	return f, nil
}

// fold reduces an expression tree to a single exact constant.
func fold(expr ast.Expr) (constant.Value, error) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT && e.Kind != token.FLOAT {
			return nil, errors.Newf("unsupported literal %s", e.Value)
		}
		return constant.MakeFromLiteral(e.Value, e.Kind, 0), nil

	case *ast.Ident:
		lit, ok := namedConstants[e.Name]
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("unknown identifier %q", e.Name),
				"only pi and e may be referenced in factor expressions")
		}
		return constant.MakeFromLiteral(lit, token.FLOAT, 0), nil

	case *ast.ParenExpr:
		return fold(e.X)

	case *ast.UnaryExpr:
		x, err := fold(e.X)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.ADD, token.SUB:
			return constant.UnaryOp(e.Op, x, 0), nil
		}
		return nil, errors.Newf("unsupported unary operator %s", e.Op)

	case *ast.BinaryExpr:
		x, err := fold(e.X)
		if err != nil {
			return nil, err
		}
		y, err := fold(e.Y)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.ADD, token.SUB, token.MUL:
			return constant.BinaryOp(x, e.Op, y), nil
		case token.QUO:
			if constant.Sign(y) == 0 {
				return nil, errors.New("division by zero")
			}
			return constant.BinaryOp(x, token.QUO, y), nil
		}
		return nil, errors.Newf("unsupported operator %s", e.Op)
	}

	return nil, errors.Newf("unsupported expression %T", expr)
}
