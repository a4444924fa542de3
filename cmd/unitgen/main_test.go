package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaYAML = `
package: motion
quantities:
  - name: Distance
    base: meters
    units:
      feet: 3.28084
  - name: Time
    base: seconds
    units:
      minutes: 1.0 / 60.0
  - name: Velocity
    base: meters_per_second
    units:
      miles_per_hour: 2.23694
derivations:
  - Distance / Time => Velocity
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return -1
}

// Commands share package-level flag state, so these run sequentially.
func TestCLI(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "quantities.yaml")
	output := filepath.Join(dir, "motion_gen.go")
	require.NoError(t, os.WriteFile(schema, []byte(schemaYAML), 0o644))

	t.Run("generate", func(t *testing.T) {
		_, err := execute(t, "generate", "-s", schema, "-o", output)
		require.NoError(t, err)

		src, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(src), "package motion")
		assert.Contains(t, string(src), "func (q Distance) DivTime(o Time) Velocity {")
	})

	t.Run("check up to date", func(t *testing.T) {
		out, err := execute(t, "check", "-s", schema, "-o", output)
		require.NoError(t, err)
		assert.Contains(t, out, "is up to date")
	})

	t.Run("check stale", func(t *testing.T) {
		require.NoError(t, os.WriteFile(output, []byte("// Schema fingerprint: old\npackage motion\n"), 0o644))
		_, err := execute(t, "check", "-s", schema, "-o", output)
		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, err.Error(), "fingerprint old")
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("check error", func(t *testing.T) {
		_, err := execute(t, "check", "-s", filepath.Join(dir, "missing.yaml"), "-o", output)
		require.Error(t, err)
		assert.Equal(t, 2, exitCode(err))
	})

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, "list", "-s", schema)
		require.NoError(t, err)
		assert.Contains(t, out, "Distance")
		assert.Contains(t, out, "miles_per_hour")
		assert.Contains(t, out, "Distance / Time => Velocity")
	})
}

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"Distance", "Time"}, parseCommaSeparated(" Distance, ,Time "))
	assert.Empty(t, parseCommaSeparated(""))
}

func TestReadFingerprint(t *testing.T) {
	t.Parallel()

	src := []byte("// Code generated by unitgen. DO NOT EDIT.\n// Schema fingerprint: abc\n\npackage units\n")
	assert.Equal(t, "abc", readFingerprint(src))
	assert.Equal(t, "none", readFingerprint([]byte("package units\n// Schema fingerprint: late\n")))
}
