package pipeline_test

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yarp-sh/yarp/core/pipeline"
	"github.com/yarp-sh/yarp/core/pipeline/pipelinetest"
	"golang.org/x/sys/unix"
)

func newExecutor(t *testing.T, stdin io.Reader, scripts pipelinetest.Scripts) (*pipeline.Executor, *bytes.Buffer, string) {
	t.Helper()

	dir := pipelinetest.WriteScripts(t, scripts)
	stdout := &bytes.Buffer{}
	return pipeline.NewExecutor(pipelinetest.Resolver(dir), stdin, stdout, io.Discard), stdout, dir
}

func run(t *testing.T, e *pipeline.Executor, line string) int {
	t.Helper()

	running, err := e.Execute(pipeline.ParseStatement(line))
	require.NoError(t, err)
	require.NotNil(t, running)

	code, err := running.Wait()
	require.NoError(t, err)
	return code
}

func TestExecutor_Pipelines(t *testing.T) {
	cases := map[string]struct {
		line     string
		stdin    string
		expected string
	}{
		"single":       {line: "echo hi", expected: "hi\n"},
		"echo-cat":     {line: "echo hi | cat", expected: "hi\n"},
		"three-stages": {line: `printf b\na\nc\n | sort | head -n 1`, expected: "a\n"},
		"stdin-first":  {line: "cat | cat | cat", stdin: "from the terminal\n", expected: "from the terminal\n"},
		"only-last":    {line: "echo one two three | wc -w", expected: "3"},
		"upper":        {line: "echo shout | tr a-z A-Z", expected: "SHOUT\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			e, stdout, _ := newExecutor(t, strings.NewReader(tc.stdin), nil)

			code := run(t, e, tc.line)

			assert.Equal(t, 0, code)
			if tn == "only-last" {
				assert.Equal(t, tc.expected, strings.TrimSpace(stdout.String()))
				return
			}
			assert.Equal(t, tc.expected, stdout.String())
		})
	}
}

func TestExecutor_InheritsWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	e, stdout, _ := newExecutor(t, nil, nil)

	assert.Equal(t, 0, run(t, e, "pwd | cat"))
	assert.Equal(t, dir+"\n", stdout.String())
}

func TestExecutor_EmptyStatement(t *testing.T) {
	e, stdout, _ := newExecutor(t, nil, nil)

	running, err := e.Execute(pipeline.ParseStatement(" | "))

	assert.NoError(t, err)
	assert.Nil(t, running)
	assert.Empty(t, stdout.String())
}

func TestExecutor_ExitCode(t *testing.T) {
	e, _, _ := newExecutor(t, nil, pipelinetest.Scripts{
		"exit3": "exit 3",
	})

	assert.Equal(t, 3, run(t, e, "exit3"))
	assert.Equal(t, 3, run(t, e, "echo ignored | exit3"))
	assert.Equal(t, 0, run(t, e, "exit3 | cat"))
}

func TestExecutor_NotFoundSpawnsNothing(t *testing.T) {
	for _, position := range []string{
		"missing-cmd-xyz | touch-marker | cat",
		"touch-marker | missing-cmd-xyz | cat",
		"touch-marker | cat | missing-cmd-xyz",
	} {
		t.Run(position, func(t *testing.T) {
			marker := filepath.Join(t.TempDir(), "marker")
			e, _, _ := newExecutor(t, nil, pipelinetest.Scripts{
				"touch-marker": "touch " + marker,
			})

			running, err := e.Execute(pipeline.ParseStatement(position))

			assert.Nil(t, running)
			assert.ErrorIs(t, err, pipeline.ErrNotFound)
			var nfe *pipeline.NotFoundError
			require.True(t, errors.As(err, &nfe))
			assert.Equal(t, "missing-cmd-xyz", nfe.Name)

			// Give a wrongly started process time to leave evidence.
			time.Sleep(50 * time.Millisecond)
			assert.NoFileExists(t, marker)
		})
	}
}

func TestExecutor_SpawnFailureTerminatesUpstream(t *testing.T) {
	e, _, dir := newExecutor(t, nil, nil)
	pipelinetest.WriteFile(t, dir, "not-executable", 0644)

	running, err := e.Execute(pipeline.ParseStatement("sleep 30 | not-executable"))

	assert.Nil(t, running)
	var spawnErr *pipeline.SpawnError
	require.True(t, errors.As(err, &spawnErr), "expected SpawnError got %v", err)
	assert.Equal(t, "not-executable", spawnErr.Name)
	assert.True(t, strings.HasPrefix(err.Error(), "not-executable: "))
	require.Len(t, spawnErr.Terminated, 1)

	upstream := spawnErr.Terminated[0]
	assert.Eventually(t, func() bool {
		return errors.Is(unix.Kill(upstream, 0), unix.ESRCH)
	}, 5*time.Second, 10*time.Millisecond, "upstream stage %d was left running", upstream)
}

func TestExecutor_SignaledForeground(t *testing.T) {
	e, _, _ := newExecutor(t, nil, nil)

	running, err := e.Execute(pipeline.ParseStatement("sleep 30"))
	require.NoError(t, err)
	require.NoError(t, unix.Kill(running.PID(), unix.SIGTERM))

	code, err := running.Wait()
	assert.NoError(t, err)
	assert.Equal(t, -1, code)
}

func TestRunningPipeline_PIDs(t *testing.T) {
	e, _, _ := newExecutor(t, nil, nil)

	running, err := e.Execute(pipeline.ParseStatement("echo a | cat | cat"))
	require.NoError(t, err)

	pids := running.PIDs()
	assert.Len(t, pids, 3)
	assert.Equal(t, pids[2], running.PID())
	assert.Len(t, running.Paths, 3)
	for _, path := range running.Paths {
		assert.True(t, filepath.IsAbs(path), "expected absolute path got %q", path)
	}

	_, err = running.Wait()
	assert.NoError(t, err)
}
