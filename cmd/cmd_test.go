package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns everything it wrote.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reportFailures = false
	reportSessions = false
	shellCommand = ""
	shellCmd.Flags().Lookup("command").Changed = false

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestInit(t *testing.T) {
	home := t.TempDir()
	prefs := filepath.Join(home, "preferences.yml")

	out, err := execute(t, "--home", home, "init")
	require.NoError(t, err)
	assert.Equal(t, "Writing default preferences to "+prefs+"\n", out)
	assert.FileExists(t, prefs)
	assert.DirExists(t, filepath.Join(home, "logs"))

	out, err = execute(t, "--home", home, "init")
	require.NoError(t, err)
	assert.Equal(t, "Keeping existing preferences in "+prefs+"\n", out)
}

func TestConfig(t *testing.T) {
	home := t.TempDir()
	_, err := execute(t, "--home", home, "init")
	require.NoError(t, err)

	_, err = execute(t, "--home", home, "config", "set", "terminal_config", "history_limit", "20")
	require.NoError(t, err)

	out, err := execute(t, "--home", home, "config", "get", "terminal_config", "history_limit")
	require.NoError(t, err)
	assert.Equal(t, "20\n", out)

	out, err = execute(t, "--home", home, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "terminal_config.history_limit: 20\n")

	_, err = execute(t, "--home", home, "config", "set", "terminal_config", "history_limit", "-1")
	assert.Error(t, err)
}

func TestConfig_NotInitialized(t *testing.T) {
	_, err := execute(t, "--home", t.TempDir(), "config", "list")

	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBuiltins(t *testing.T) {
	out, err := execute(t, "builtins")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "ls")
	assert.Contains(t, lines, "shell:cd")
	assert.Contains(t, lines, "shell:exit")
	assert.IsIncreasing(t, lines)
}

func TestShell_Command(t *testing.T) {
	home := t.TempDir()

	out, err := execute(t, "--home", home, "shell", "-c", "echo hi; echo there | cat")
	require.NoError(t, err)
	assert.Equal(t, "hi\nthere\n", out)

	_, err = execute(t, "--home", home, "shell", "-c", "exit 3")
	var status exitStatus
	require.True(t, errors.As(err, &status))
	assert.Equal(t, exitStatus(3), status)

	_, err = execute(t, "--home", home, "shell", "-c", "doesnotexist-yarp")
	require.True(t, errors.As(err, &status))
	assert.Equal(t, exitStatus(1), status)

	t.Run("events", func(t *testing.T) {
		out, err := execute(t, "--home", home, "events", "report")
		require.NoError(t, err)
		assert.Contains(t, out, "sessions: 3\n")

		out, err = execute(t, "--home", home, "events", "report", "--failures")
		require.NoError(t, err)
		assert.Contains(t, out, "doesnotexist-yarp")

		_, err = execute(t, "--home", home, "events", "report", "--failures", "--sessions")
		assert.Error(t, err)
	})

	t.Run("logs", func(t *testing.T) {
		out, err := execute(t, "--home", home, "logs", "list")
		require.NoError(t, err)
		// Runs started within the same second share a log.
		assert.Contains(t, out, "yarp-")
		assert.Contains(t, out, ".log\n")

		out, err = execute(t, "--home", home, "logs", "last")
		require.NoError(t, err)
		assert.Contains(t, out, "yarp: Starting session")
	})
}

func TestLogs_Empty(t *testing.T) {
	home := t.TempDir()
	_, err := execute(t, "--home", home, "init")
	require.NoError(t, err)

	_, err = execute(t, "--home", home, "logs", "last")
	assert.EqualError(t, err, "no logs in "+filepath.Join(home, "logs"))

	out, err := execute(t, "--home", home, "logs", "list")
	require.NoError(t, err)
	assert.Empty(t, out)
}
