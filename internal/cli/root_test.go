package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// quietEnv isolates a test from the host's LOCKPIPE_* variables and turns
// logging off so test output stays readable.
func quietEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"LOCKPIPE_PATH", "LOCKPIPE_CONFIG", "LOCKPIPE_LOG_STYLE"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Setenv("LOCKPIPE_LOG_FILTER", "off")
}

// execute runs a fresh root command with args and returns the exit status
// and everything cobra wrote.
func execute(t *testing.T, args ...string) (model.ExitStatus, string) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	return Run(cmd), out.String()
}

// TestRun_UsageErrors verifies that command-line mistakes map to ExitUsage
// and are printed.
func TestRun_UsageErrors(t *testing.T) {
	quietEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"bogus"}},
		{"unexpected argument", []string{"create", "extra"}},
		{"unknown flag", []string{"--nope", "exists"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, out := execute(t, tt.args...)
			assert.Equal(t, model.ExitUsage, status)
			assert.Contains(t, out, "Error:")
		})
	}
}

// TestRun_ConfigError checks that invalid configuration stops the command
// before any pipe operation.
func TestRun_ConfigError(t *testing.T) {
	quietEnv(t)
	t.Setenv("LOCKPIPE_LOG_STYLE", "rainbow")
	path := filepath.Join(t.TempDir(), "lock")

	status, out := execute(t, "--path", path, "create")
	assert.Equal(t, model.ExitUsage, status)
	assert.Contains(t, out, "failed to load configuration")

	_, err := os.Lstat(path)
	assert.True(t, os.IsNotExist(err), "no pipe should have been created")
}

// TestRun_EmptyPathFlag rejects an explicitly empty --path.
func TestRun_EmptyPathFlag(t *testing.T) {
	quietEnv(t)

	status, out := execute(t, "--path", "", "exists")
	assert.Equal(t, model.ExitUsage, status)
	assert.Contains(t, out, "--path must not be empty")
}

// TestRun_NoCommand checks that running without a subcommand is a usage
// error.
func TestRun_NoCommand(t *testing.T) {
	quietEnv(t)

	status, out := execute(t)
	assert.Equal(t, model.ExitUsage, status)
	assert.Contains(t, out, "a command is required")

	status, out = execute(t, "--path", filepath.Join(t.TempDir(), "lock"))
	assert.Equal(t, model.ExitUsage, status)
	assert.Contains(t, out, "a command is required")
}

// TestRun_Version checks the version flag succeeds without touching the pipe.
func TestRun_Version(t *testing.T) {
	quietEnv(t)

	status, out := execute(t, "--version")
	assert.Equal(t, model.ExitSuccess, status)
	assert.Contains(t, out, Version)
}

// TestNewRootCommand_Subcommands checks every operation is registered with
// its one-letter alias.
func TestNewRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()

	for name, alias := range map[string]string{
		"create": "c",
		"delete": "d",
		"exists": "e",
		"read":   "r",
		"write":  "w",
	} {
		cmd, _, err := root.Find([]string{alias})
		require.NoError(t, err, alias)
		assert.Equal(t, name, cmd.Name())
	}
}
