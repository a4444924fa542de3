// Package generator renders quantity schemas into Go source.
package generator

import (
	"bytes"
	"embed"
	"io"
	"path/filepath"
	"text/template"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/imports"

	"unitgen/internal/config"
	"unitgen/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const defaultTemplate = "units.go.tmpl"

// Generator executes templates against parsed schemas.
type Generator struct {
	config   *config.Config
	template *template.Template
}

// New creates a new Generator using the built-in template.
func New(cfg *config.Config) *Generator {
	tmpl := template.Must(template.New(defaultTemplate).
		Funcs(templateFuncs(cfg)).
		ParseFS(templateFS, "templates/"+defaultTemplate))
	return &Generator{
		config:   cfg,
		template: tmpl,
	}
}

// LoadTemplate replaces the built-in template with one loaded from file.
func (g *Generator) LoadTemplate(path string) error {
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(templateFuncs(g.config)).
		ParseFiles(path)
	if err != nil {
		return errors.Wrap(err, "loading template")
	}
	g.template = tmpl
	return nil
}

// TemplateData represents data passed to templates.
type TemplateData struct {
	Schema      *model.Schema  // The full schema, unfiltered
	Package     string         // Package clause of the output
	Doc         string         // Package documentation
	Header      string         // Extra header comment
	Fingerprint string         // Schema fingerprint
	UnitLists   bool           // Emit <Quantity>Units functions
	Quantities  []QuantityData // Quantities to generate (filtered)
	Config      *config.Config
}

// QuantityData is a quantity with its symbol resolved and the rules whose
// left operand it is.
type QuantityData struct {
	model.Quantity
	Derivations []model.Derivation
}

// Generate writes formatted Go source for the schema to w.
func (g *Generator) Generate(schema *model.Schema, w io.Writer) error {
	src, err := g.Render(schema)
	if err != nil {
		return err
	}
	if _, err := w.Write(src); err != nil {
		return errors.Wrap(err, "writing output")
	}
	return nil
}

// Render executes the template and returns formatted Go source.
func (g *Generator) Render(schema *model.Schema) ([]byte, error) {
	data := g.templateData(schema)

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "executing template")
	}

	name := data.Package + "_gen.go"
	src, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, errors.WithDetail(
			errors.Wrap(err, "formatting generated source"),
			buf.String())
	}
	return src, nil
}

// templateData builds template input, applying config filters and overrides.
func (g *Generator) templateData(schema *model.Schema) *TemplateData {
	data := &TemplateData{
		Schema:      schema,
		Package:     schema.Package,
		Doc:         schema.Doc,
		Header:      g.config.Options.Header,
		Fingerprint: Fingerprint(schema).String(),
		UnitLists:   g.config.UnitLists(),
		Config:      g.config,
	}
	if g.config.Options.Package != "" {
		data.Package = g.config.Options.Package
	}

	included := make(map[string]bool)
	for _, q := range schema.Quantities {
		if g.config.ShouldIncludeQuantity(q.Name) {
			included[q.Name] = true
		}
	}

	for _, q := range schema.Quantities {
		if !included[q.Name] {
			continue
		}
		if q.Symbol == "" {
			q.Symbol = g.config.Symbol(q.Base, q.Base)
		}
		qd := QuantityData{Quantity: q}
		for _, d := range schema.Derivations {
			// Rules touching a filtered-out quantity would not compile.
			if d.LHS == q.Name && included[d.RHS] && included[d.Result] {
				qd.Derivations = append(qd.Derivations, d)
			}
		}
		data.Quantities = append(data.Quantities, qd)
	}

	return data
}
