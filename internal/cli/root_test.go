package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"transfuse/internal/cli"
	"transfuse/internal/config"
	"transfuse/internal/version"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("transfuse")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		stdout, stderr, err := execute(t, flag)
		require.NoError(t, err)
		assert.Equal(t, "transfuse version "+version.Version()+"\n", stdout)
		assert.Empty(t, stderr)
	}
}

func TestHelpShowsVersion(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "transfuse "+version.Version())
}

func TestVersionCmdShort(t *testing.T) {
	stdout, stderr, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "0.4.4\n", stdout)
	assert.Empty(t, stderr)
}

func TestVersionCmd(t *testing.T) {
	stdout, stderr, err := execute(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^transfuse \d+\.\d+\.\d+\n`, stdout)
	assert.Contains(t, stdout, "Git commit: "+version.GitCommit)
	assert.Empty(t, stderr)
}

func TestVersionCmdYAML(t *testing.T) {
	stdout, _, err := execute(t, "version", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		Version struct {
			Major  int    `yaml:"major"`
			String string `yaml:"string"`
		} `yaml:"version"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, version.Current().Major(), got.Version.Major)
	assert.Equal(t, version.Version(), got.Version.String)
}

func TestVersionCmdOutputFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transfuse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\n"), 0o600))

	stdout, _, err := execute(t, "--config", path, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "string: "+version.Version())
}

func TestVersionCmdVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "--verbose", "version", "--short")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DEBUG config loaded")
}

func TestVersionCmdErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transfuse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\n"), 0o600))

	_, _, err := execute(t, "--config", path, "version")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "version", "-o", "json")
	require.ErrorContains(t, err, "unknown output format")

	_, _, err = execute(t, "version", "extra")
	require.Error(t, err)

	stdout, _, err := execute(t, "version", "--short", "-o", "yaml")
	require.ErrorContains(t, err, "none of the others can be")
	assert.Empty(t, stdout)
}
