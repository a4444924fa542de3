// Package parser provides quantity schema parsing functionality.
package parser

import (
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"unitgen/internal/model"
)

// rawSchema mirrors the YAML layout of a schema file.
type rawSchema struct {
	Package     string        `yaml:"package"`
	Doc         string        `yaml:"doc"`
	Quantities  []rawQuantity `yaml:"quantities"`
	Derivations []string      `yaml:"derivations"`
}

type rawQuantity struct {
	Name   string `yaml:"name"`
	Doc    string `yaml:"doc"`
	Base   string `yaml:"base"`
	Symbol string `yaml:"symbol"`
	// Units is kept as a node so declaration order survives decoding.
	Units yaml.Node `yaml:"units"`
}

var ruleRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*([*/])\s*([A-Za-z_]\w*)\s*=>\s*([A-Za-z_]\w*)\s*$`)

// Parser parses quantity schema files.
type Parser struct{}

// New creates a new Parser.
func New() *Parser {
	return &Parser{}
}

// ParseFile parses a schema file. The result is not validated; see Validate.
func (p *Parser) ParseFile(path string) (*model.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading schema file")
	}

	schema, err := p.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	schema.Path = path
	return schema, nil
}

// Parse parses schema YAML.
func (p *Parser) Parse(data []byte) (*model.Schema, error) {
	var raw rawSchema
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decoding schema YAML")
	}

	schema := &model.Schema{
		Package: raw.Package,
		Doc:     strings.TrimSpace(raw.Doc),
	}

	for _, rq := range raw.Quantities {
		q, err := p.extractQuantity(rq)
		if err != nil {
			return nil, err
		}
		schema.Quantities = append(schema.Quantities, q)
	}

	for i, rule := range raw.Derivations {
		d, err := ParseRule(rule)
		if err != nil {
			return nil, errors.Wrapf(err, "derivation %d", i+1)
		}
		schema.Derivations = append(schema.Derivations, d)
	}

	return schema, nil
}

// extractQuantity converts a raw quantity, evaluating unit factors and
// marking the base unit. A base unit that is not listed is prepended with
// factor 1.
func (p *Parser) extractQuantity(rq rawQuantity) (model.Quantity, error) {
	q := model.Quantity{
		Name:   rq.Name,
		Doc:    strings.TrimSpace(rq.Doc),
		Base:   rq.Base,
		Symbol: rq.Symbol,
	}

	units, err := p.extractUnits(&rq.Units)
	if err != nil {
		return q, errors.Wrapf(err, "quantity %s", rq.Name)
	}

	hasBase := false
	for i := range units {
		if units[i].Name == q.Base && q.Base != "" {
			units[i].IsBase = true
			hasBase = true
		}
	}
	if !hasBase && q.Base != "" {
		units = append([]model.Unit{{Name: q.Base, Expr: "1", Factor: 1, IsBase: true}}, units...)
	}
	q.Units = units
	return q, nil
}

// extractUnits reads an ordered "name: factor" mapping.
func (p *Parser) extractUnits(node *yaml.Node) ([]model.Unit, error) {
	// Absent key, or "units:" with nothing after it.
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.WithHint(
			errors.Newf("line %d: units must be a mapping", node.Line),
			"write units as `name: factor` pairs")
	}

	units := make([]model.Unit, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, errors.Newf("line %d: factor of unit %s must be a scalar", val.Line, key.Value)
		}

		factor, err := EvalFactor(val.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: unit %s", val.Line, key.Value)
		}

		units = append(units, model.Unit{
			Name:   key.Value,
			Expr:   val.Value,
			Factor: factor,
		})
	}
	return units, nil
}

// ParseRule parses a derivation rule such as "Distance / Time => Velocity".
func ParseRule(rule string) (model.Derivation, error) {
	m := ruleRe.FindStringSubmatch(rule)
	if m == nil {
		return model.Derivation{}, errors.WithHint(
			errors.Newf("malformed rule %q", rule),
			"rules look like `Distance / Time => Velocity`")
	}
	return model.Derivation{
		LHS:    m[1],
		Op:     model.Operator(m[2]),
		RHS:    m[3],
		Result: m[4],
		Raw:    rule,
	}, nil
}

// Load parses and validates a schema file.
func Load(path string) (*model.Schema, error) {
	schema, err := New().ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(schema); err != nil {
		return nil, errors.Wrapf(err, "validating %s", path)
	}
	return schema, nil
}
