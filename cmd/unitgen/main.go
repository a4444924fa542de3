// unitgen generates strongly-typed quantity types from a YAML schema of
// units, conversion factors and derivation rules.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"unitgen/internal/logger"
)

var (
	verbose bool
	jsonLog bool
)

// rootCmd is the unitgen entry point.
var rootCmd = &cobra.Command{
	Use:   "unitgen",
	Short: "Generate strongly-typed units of measurement",
	Long: `unitgen reads a quantity schema and emits one Go type per quantity.

Each type stores a single float64 magnitude in its base unit and gets a
constructor and accessor per declared unit, same-type arithmetic, and one
method per declared derivation rule (e.g. Distance / Time => Velocity).

Examples:
  unitgen generate -s quantities.yaml -o units_gen.go
  unitgen generate -s quantities.yaml -T Distance,Time,Velocity
  unitgen check -s quantities.yaml -o units_gen.go
  unitgen list -s quantities.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verbose, jsonLog)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Log as JSON")

	rootCmd.AddCommand(generateCmd, checkCmd, listCmd)
}

// exitError carries a specific process exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
	}

	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	os.Exit(1)
}
