package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"unitgen/internal/generator"
	"unitgen/internal/logger"
)

const fingerprintPrefix = "// Schema fingerprint: "

var checkOpts genOptions

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated code is up to date",
	Long: `Regenerate in memory and compare with the existing output file.

Exit codes:
  0 - Output is up to date
  1 - Output is stale
  2 - Error during check`,
	RunE: runCheck,
}

func init() {
	addGenFlags(checkCmd, &checkOpts)
	_ = checkCmd.MarkFlagRequired("output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	schema, gen, err := prepare(&checkOpts)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	want, err := gen.Render(schema)
	if err != nil {
		return &exitError{code: 2, err: err}
	}

	have, err := os.ReadFile(checkOpts.outputFile)
	if err != nil {
		return &exitError{code: 2, err: errors.Wrap(err, "reading existing output")}
	}

	if bytes.Equal(have, want) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", checkOpts.outputFile)
		return nil
	}

	haveFP := readFingerprint(have)
	wantFP := generator.Fingerprint(schema).String()
	logger.Logger.Infow("generated output is stale",
		logger.FieldFile, checkOpts.outputFile,
		logger.FieldFingerprint, wantFP)

	err = errors.Newf("%s is stale (fingerprint %s, schema %s)", checkOpts.outputFile, haveFP, wantFP)
	return &exitError{code: 1, err: errors.WithHint(err, "run go generate")}
}

// readFingerprint extracts the schema fingerprint from a generated file header.
func readFingerprint(src []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, fingerprintPrefix) {
			return strings.TrimPrefix(line, fingerprintPrefix)
		}
		if strings.HasPrefix(line, "package ") {
			break
		}
	}
	return "none"
}
