package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of the shared root command
// to its default so that tests don't leak into each other.
func resetFlags(t *testing.T) {
	command.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
}

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestExecute_DefaultConfig(t *testing.T) {
	resetFlags(t)
	assert.EqualValues(t, "config.json", command.Flags().Lookup(flagConfig).DefValue)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Packages"), []byte(testIndex), 0644))
	writeConfig(t, dir, "foo", "Packages", "file")
	chdir(t, dir)

	out := &bytes.Buffer{}
	err := execute([]string{}, out)
	assert.NoError(t, err)
	assert.EqualValues(t, "Direct dependencies of 'foo':\n  bar\n  baz\n", out.String())
}

func TestExecute_Errors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Packages"), []byte(testIndex), 0644))
	missing := filepath.Join(dir, "missing.json")

	var cases = []struct {
		name string
		args []string
		out  string
	}{
		{
			"missing configuration",
			[]string{"--config", missing},
			"Error: Configuration file '" + missing + "' not found.\n",
		},
		{
			"unknown package",
			[]string{"--config", writeConfig(t, t.TempDir(), "zzz", filepath.Join(dir, "Packages"), "file")},
			"Error: package not found: zzz\n",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)

			out := &bytes.Buffer{}
			err := execute(tt.args, out)
			assert.Error(t, err)
			assert.EqualValues(t, tt.out, out.String())
		})
	}
}

func TestExecute_ExitCode(t *testing.T) {
	if os.Getenv("DEPVIZ_TEST_EXECUTE") == "1" {
		os.Args = []string{"depviz", "--config", os.Getenv("DEPVIZ_TEST_CONFIG")}
		Execute("test")
		return
	}

	path := filepath.Join(t.TempDir(), "missing.json")

	c := exec.Command(os.Args[0], "-test.run=^TestExecute_ExitCode$")
	c.Env = append(os.Environ(), "DEPVIZ_TEST_EXECUTE=1", "DEPVIZ_TEST_CONFIG="+path)
	stdout := &bytes.Buffer{}
	c.Stdout = stdout

	err := c.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.EqualValues(t, 1, exitErr.ExitCode())
	assert.Contains(t, stdout.String(), "Error: Configuration file '"+path+"' not found.\n")
}
