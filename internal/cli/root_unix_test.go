//go:build unix

package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/lockpipe/internal/model"
)

// TestRun_Scenario walks one path through the full command sequence:
// create, create again, a concurrent write/read pair, delete twice, and a
// final exists.
func TestRun_Scenario(t *testing.T) {
	quietEnv(t)
	path := filepath.Join(t.TempDir(), "t1")

	status, _ := execute(t, "--path", path, "create")
	assert.Equal(t, model.ExitSuccess, status)

	info, err := os.Lstat(path)
	require.NoError(t, err)
	assert.Equal(t, fs.ModeNamedPipe, info.Mode().Type())

	status, _ = execute(t, "--path", path, "create")
	assert.Equal(t, model.ExitSuccess, status, "create must be idempotent")

	results := make(chan model.ExitStatus, 2)
	go func() {
		status, _ := execute(t, "--path", path, "read")
		results <- status
	}()
	go func() {
		status, _ := execute(t, "--path", path, "write")
		results <- status
	}()
	for i := 0; i < 2; i++ {
		select {
		case status := <-results:
			assert.Equal(t, model.ExitSuccess, status)
		case <-time.After(10 * time.Second):
			t.Fatal("read and write did not meet")
		}
	}

	status, _ = execute(t, "--path", path, "delete")
	assert.Equal(t, model.ExitSuccess, status)

	_, err = os.Lstat(path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	status, _ = execute(t, "--path", path, "delete")
	assert.Equal(t, model.ExitSuccess, status, "delete must be idempotent")

	status, _ = execute(t, "--path", path, "exists")
	assert.Equal(t, model.ExitNotExist, status)
}

// TestRun_PathPrecedence checks that --path beats LOCKPIPE_PATH, and that
// LOCKPIPE_PATH beats the config file.
func TestRun_PathPrecedence(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()
	fromFile := filepath.Join(dir, "from-file")
	fromEnv := filepath.Join(dir, "from-env")
	fromFlag := filepath.Join(dir, "from-flag")

	configFile := filepath.Join(dir, "lockpipe.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("path: "+fromFile+"\n"), 0o600))

	status, _ := execute(t, "--config", configFile, "c")
	assert.Equal(t, model.ExitSuccess, status)
	assert.FileExists(t, fromFile)

	t.Setenv("LOCKPIPE_PATH", fromEnv)
	status, _ = execute(t, "--config", configFile, "c")
	assert.Equal(t, model.ExitSuccess, status)
	assert.FileExists(t, fromEnv)

	status, _ = execute(t, "--config", configFile, "-p", fromFlag, "c")
	assert.Equal(t, model.ExitSuccess, status)
	assert.FileExists(t, fromFlag)
}

// TestRun_ErrnoPassThrough checks that an unexpected OS failure becomes
// the exit status.
func TestRun_ErrnoPassThrough(t *testing.T) {
	quietEnv(t)
	dir := t.TempDir()

	// unlink(2) refuses directories, so deleting one is an unexpected failure.
	status, _ := execute(t, "--path", dir, "delete")
	assert.NotEqual(t, model.ExitSuccess, status)
	assert.NotEqual(t, model.ExitNotExist, status)
	assert.DirExists(t, dir)

	// A regular file in the parent position gives ENOTDIR on the check.
	parent := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(parent, nil, 0o600))
	status, _ = execute(t, "--path", filepath.Join(parent, "lock"), "exists")
	assert.Equal(t, model.ExitStatus(syscall.ENOTDIR), status)
}
