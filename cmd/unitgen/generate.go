package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"unitgen/internal/config"
	"unitgen/internal/generator"
	"unitgen/internal/logger"
	"unitgen/internal/model"
	"unitgen/internal/parser"
)

// genOptions are the flags shared by generate and check.
type genOptions struct {
	schemaFile   string
	configFile   string
	templateFile string
	outputFile   string
	pkg          string
	types        string
	exclude      string
	noUnitLists  bool
}

var genOpts genOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go quantity types from a schema",
	RunE:  runGenerate,
}

func init() {
	addGenFlags(generateCmd, &genOpts)
}

func addGenFlags(cmd *cobra.Command, o *genOptions) {
	f := cmd.Flags()
	f.StringVarP(&o.schemaFile, "schema", "s", "", "Quantity schema file (required)")
	f.StringVarP(&o.configFile, "config", "c", "", "Config file (YAML/JSON/TOML)")
	f.StringVarP(&o.templateFile, "template", "t", "", "Custom template file")
	f.StringVarP(&o.outputFile, "output", "o", "", "Output file (default: stdout)")
	f.StringVarP(&o.pkg, "package", "p", "", "Override the package name")
	f.StringVarP(&o.types, "types", "T", "", "Only generate these quantities (comma-separated)")
	f.StringVarP(&o.exclude, "exclude", "X", "", "Exclude these quantities (comma-separated)")
	f.BoolVar(&o.noUnitLists, "no-unit-lists", false, "Do not emit <Quantity>Units functions")
	_ = cmd.MarkFlagRequired("schema")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	schema, gen, err := prepare(&genOpts)
	if err != nil {
		return err
	}

	src, err := gen.Render(schema)
	if err != nil {
		return err
	}

	if genOpts.outputFile == "" {
		_, err := cmd.OutOrStdout().Write(src)
		return errors.Wrap(err, "writing output")
	}

	if err := os.WriteFile(genOpts.outputFile, src, 0o644); err != nil {
		return errors.Wrap(err, "writing output file")
	}
	logger.Logger.Debugw("generated output",
		logger.FieldFile, genOpts.outputFile,
		logger.FieldFingerprint, generator.Fingerprint(schema).String())
	return nil
}

// prepare loads the schema and config and builds a generator with CLI
// overrides applied.
func prepare(o *genOptions) (*model.Schema, *generator.Generator, error) {
	cfg := config.New()
	if o.configFile != "" {
		if err := cfg.LoadFile(o.configFile); err != nil {
			return nil, nil, errors.Wrap(err, "loading config")
		}
	}

	// Apply CLI overrides
	if o.pkg != "" {
		cfg.Options.Package = o.pkg
	}
	if o.types != "" {
		cfg.Options.IncludeQuantities = parseCommaSeparated(o.types)
	}
	if o.exclude != "" {
		cfg.Options.ExcludeQuantities = parseCommaSeparated(o.exclude)
	}
	if o.noUnitLists {
		off := false
		cfg.Options.EmitUnitLists = &off
	}

	schema, err := parser.Load(o.schemaFile)
	if err != nil {
		return nil, nil, err
	}

	logger.Logger.Debugw("loaded schema",
		logger.FieldFile, o.schemaFile,
		logger.FieldCount, len(schema.Quantities),
		logger.FieldRules, len(schema.Derivations))
	for _, q := range schema.Quantities {
		if !cfg.ShouldIncludeQuantity(q.Name) {
			logger.Logger.Debugw("skipping quantity", logger.FieldQuantity, q.Name)
		}
	}

	gen := generator.New(cfg)
	if o.templateFile != "" {
		if err := gen.LoadTemplate(o.templateFile); err != nil {
			return nil, nil, err
		}
	}
	return schema, gen, nil
}

// parseCommaSeparated splits a comma-separated string into a slice of trimmed strings.
func parseCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
