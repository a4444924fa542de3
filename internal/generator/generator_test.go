package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitgen/internal/config"
	"unitgen/internal/model"
	"unitgen/internal/parser"
)

const testSchema = `
package: kinematics
quantities:
  - name: Distance
    doc: Distance is a length.
    base: meters
    units:
      feet: 3.28084
      kilometers: 1.0 / 1000.0
  - name: Time
    base: seconds
    units:
      minutes: 1.0 / 60.0
  - name: Velocity
    base: meters_per_second
    symbol: mps
    units:
      furlongs_per_fortnight: 6012.87
derivations:
  - Distance / Time => Velocity
  - Velocity * Time => Distance
`

func loadTestSchema(t *testing.T) *model.Schema {
	t.Helper()
	s, err := parser.New().Parse([]byte(testSchema))
	require.NoError(t, err)
	require.NoError(t, parser.Validate(s), spew.Sdump(s))
	return s
}

func render(t *testing.T, cfg *config.Config, s *model.Schema) string {
	t.Helper()
	src, err := New(cfg).Render(s)
	require.NoError(t, err)
	return string(src)
}

func TestRender(t *testing.T) {
	t.Parallel()

	s := loadTestSchema(t)
	out := render(t, config.New(), s)

	assert.Contains(t, out, "// Code generated by unitgen. DO NOT EDIT.\n")
	assert.Contains(t, out, "// Schema fingerprint: "+Fingerprint(s).String()+"\n")
	assert.Contains(t, out, "package kinematics\n")

	// Storage
	assert.Contains(t, out, "// Distance is a length.\ntype Distance struct {\n\tbase float64 // meters\n}")
	assert.Contains(t, out, "// Time is a physical quantity stored in seconds.\ntype Time struct {")

	// Constructors and accessors; factor 1 is a pass-through
	assert.Contains(t, out, "func DistanceFromMeters(v float64) Distance {\n\treturn Distance{base: v}\n}")
	assert.Contains(t, out, "func DistanceFromFeet(v float64) Distance {\n\treturn Distance{base: v / 3.28084}\n}")
	assert.Contains(t, out, "func (q Distance) AsKilometers() float64 {\n\treturn q.base * 0.001\n}")
	assert.Contains(t, out, "func (q Distance) AsMeters() float64 {\n\treturn q.base\n}")
	assert.Contains(t, out, "func TimeFromMinutes(v float64) Time {\n\treturn Time{base: v / 0.016666666666666666}\n}")
	assert.Contains(t, out, "func (q Velocity) AsFurlongsPerFortnight() float64 {\n\treturn q.base * 6012.87\n}")

	// Base-unit contract
	assert.Contains(t, out, "func DistanceFromBaseUnits(v float64) Distance {")
	assert.Contains(t, out, "func (q Distance) BaseUnits() float64 {")
	assert.Contains(t, out, "func (Distance) FromBaseUnits(v float64) Distance {")

	// Same-type arithmetic
	for _, sig := range []string{
		"func (q Time) Add(o Time) Time {",
		"func (q Time) Sub(o Time) Time {",
		"func (q Time) Mul(s float64) Time {",
		"func (q Time) Div(s float64) Time {",
		"func (q Time) Neg() Time {",
		"func (q Time) Abs() Time {",
		"func (q Time) Equal(o Time) bool {",
		"func (q Time) Ratio(o Time) float64 {",
		"func (q Time) String() string {",
	} {
		assert.Contains(t, out, sig)
	}

	// Symbols: configured default, schema override
	assert.Contains(t, out, `strconv.FormatFloat(q.base, 'g', -1, 64) + " m"`)
	assert.Contains(t, out, `strconv.FormatFloat(q.base, 'g', -1, 64) + " mps"`)

	// Derivations
	assert.Contains(t, out, "// DivTime returns q / o as a Velocity.\nfunc (q Distance) DivTime(o Time) Velocity {\n\treturn Velocity{base: q.base / o.base}\n}")
	assert.Contains(t, out, "func (q Velocity) MulTime(o Time) Distance {\n\treturn Distance{base: q.base * o.base}\n}")
	// Rules are not mirrored automatically.
	assert.NotContains(t, out, "func (q Time) MulVelocity")

	assert.Contains(t, out, `return []string{"meters", "feet", "kilometers"}`)
}

func TestRender_Options(t *testing.T) {
	t.Parallel()

	s := loadTestSchema(t)
	cfg := config.New()
	off := false
	cfg.Options.Package = "measure"
	cfg.Options.Header = "Regenerate with make units."
	cfg.Options.EmitUnitLists = &off
	cfg.Options.ExcludeQuantities = []string{"Time"}
	cfg.Symbols["meters"] = "metres"

	out := render(t, cfg, s)

	assert.Contains(t, out, "// Regenerate with make units.\n")
	assert.Contains(t, out, "package measure\n")
	assert.NotContains(t, out, "type Time struct")
	assert.NotContains(t, out, "DistanceUnits()")
	assert.Contains(t, out, `+ " metres"`)
	// Rules that mention an excluded quantity are dropped.
	assert.NotContains(t, out, "DivTime")
	assert.NotContains(t, out, "MulTime")
}

func TestRender_MultiLineHeader(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.Options.Header = "Regenerate with make units.\n\nDo not edit by hand."

	out := render(t, cfg, loadTestSchema(t))
	assert.Contains(t, out, "// Regenerate with make units.\n//\n// Do not edit by hand.\n")
	assert.Contains(t, out, "package kinematics\n")
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	s := loadTestSchema(t)
	a := render(t, config.New(), s)
	b := render(t, config.New(), s)
	assert.Equal(t, a, b)
}

func TestRender_CustomTemplate(t *testing.T) {
	t.Parallel()

	tmpl := filepath.Join(t.TempDir(), "names.tmpl")
	content := `package {{ .Package }}

// {{ replace (lower "Quantity LABELS") " " "_" }} {{ trim "  follow  " }}

var Names = []string{
{{- range .Quantities }}
	"{{ snakeCase .Name }}",
{{- end }}
}
{{ range .Quantities }}
var {{ camelCase .Name }}Label = "{{ upper .Name }} [{{ symbol .Base }}]"
{{- end }}
`
	require.NoError(t, os.WriteFile(tmpl, []byte(content), 0o644))

	g := New(config.New())
	require.NoError(t, g.LoadTemplate(tmpl))

	var buf bytes.Buffer
	require.NoError(t, g.Generate(loadTestSchema(t), &buf))
	assert.Contains(t, buf.String(), `"distance",`)
	assert.Contains(t, buf.String(), `"velocity",`)
	assert.Contains(t, buf.String(), "// quantity_labels follow\n")
	assert.Contains(t, buf.String(), `var distanceLabel = "DISTANCE [m]"`)
	assert.Contains(t, buf.String(), `var timeLabel = "TIME [s]"`)
	assert.Contains(t, buf.String(), `var velocityLabel = "VELOCITY [m/s]"`)

	assert.Error(t, g.LoadTemplate(filepath.Join(t.TempDir(), "missing.tmpl")))
}

func TestRender_InvalidOutput(t *testing.T) {
	t.Parallel()

	tmpl := filepath.Join(t.TempDir(), "broken.tmpl")
	require.NoError(t, os.WriteFile(tmpl, []byte("package {{ .Package }}\nfunc {\n"), 0o644))

	g := New(config.New())
	require.NoError(t, g.LoadTemplate(tmpl))
	_, err := g.Render(loadTestSchema(t))
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	a := loadTestSchema(t)
	b := loadTestSchema(t)
	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, 5, int(Fingerprint(a).Version()))

	// Same value written differently hashes the same.
	b.Quantities[0].Units[2].Expr = "0.001"
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b.Quantities[0].Units[2].Factor = 0.002
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))

	c := loadTestSchema(t)
	c.Derivations = c.Derivations[:1]
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
}

// The checked-in catalog must match what the generator produces.
func TestCatalogUpToDate(t *testing.T) {
	t.Parallel()

	schema, err := parser.Load(filepath.Join("..", "..", "units", "quantities.yaml"))
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "units", "units_gen.go"))
	require.NoError(t, err)

	got, err := New(config.New()).Render(schema)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "run go generate ./units")
}
