package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger := NewJsonLinesLogRecorder(&buf)
	session := logger.NewSession()

	for _, event := range []LogType{
		&LogEntry_SessionStart{SessionStart: &SessionStart{Interactive: true, WorkingDir: "/home/user"}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{
			Command:              []string{"echo", "cat"},
			ResolvedCommandPaths: []string{"/bin/echo", "/bin/cat"},
		}},
		&LogEntry_CommandExit{CommandExit: &CommandExit{Command: []string{"echo", "cat"}, ExitCode: 0}},
		&LogEntry_UnknownCommand{UnknownCommand: &UnknownCommand{
			Command:      []string{"doesnotexist"},
			ErrorMessage: "doesnotexist: command not found",
		}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{Command: []string{"ls"}, Builtin: true}},
		&LogEntry_RunCommand{RunCommand: &RunCommand{
			Command:              []string{"sleep"},
			ResolvedCommandPaths: []string{"/bin/sleep"},
		}},
		&LogEntry_Cancellation{Cancellation: &Cancellation{Pid: 42, Delivered: true}},
		&LogEntry_CommandExit{CommandExit: &CommandExit{Command: []string{"sleep"}, ExitCode: -1}},
		&LogEntry_Cancellation{Cancellation: &Cancellation{Pid: 43, ErrorMessage: "no such process"}},
		&LogEntry_SpawnFailure{SpawnFailure: &SpawnFailure{
			Command:      []string{"noexec"},
			ErrorMessage: "permission denied",
			Terminated:   []int32{7},
		}},
		&LogEntry_SessionEnd{SessionEnd: &SessionEnd{Statements: 4}},
	} {
		require.NoError(t, session.Record(event))
	}

	// Entry from another session and an empty entry.
	require.NoError(t, logger.NewSession().Record(&LogEntry_SessionStart{SessionStart: &SessionStart{}}))
	require.NoError(t, logger.Record(&LogEntry{}))

	return &buf
}

func TestReport(t *testing.T) {
	var report Report
	require.NoError(t, ReadJSONLinesLog(sampleLog(t), report.Update))

	assert.Equal(t, 13, report.LogEntries)
	assert.Equal(t, 2, report.Sessions)
	assert.Equal(t, 1, report.InvalidEntries.Get("<nil>"))

	assert.Equal(t, 1, report.RunCommand.CommandNames.Get("echo"))
	assert.Equal(t, 1, report.RunCommand.CommandNames.Get("sleep"))
	assert.Equal(t, 0, report.RunCommand.CommandNames.Get("ls"))
	assert.Equal(t, 1, report.RunCommand.Builtins.Get("ls"))
	assert.Equal(t, 1, report.RunCommand.Stages.Get("2"))
	assert.Equal(t, 1, report.RunCommand.ResolvedCommandPaths.Get("/bin/cat"))

	assert.Equal(t, 1, report.UnknownCommand.CommandNames.Get("doesnotexist"))
	assert.Equal(t, 1, report.SpawnFailure.Count)
	assert.Equal(t, 1, report.SpawnFailure.Terminated)
	assert.Equal(t, 1, report.CommandExit.ExitCodes.Get("0"))
	assert.Equal(t, 1, report.CommandExit.ExitCodes.Get("-1"))
	assert.Equal(t, CancellationReport{Delivered: 1, Failed: 1}, report.Cancellation)
}

func TestFailureReport(t *testing.T) {
	report := NewFailureReport()
	require.NoError(t, ReadJSONLinesLog(sampleLog(t), report.Update))

	out, err := json.Marshal(report)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"log_entries": 13,
		"unknown_commands": [
			{"count": 1, "event": {"command": "doesnotexist", "error": "doesnotexist: command not found"}}
		],
		"spawn_failures": [
			{"count": 1, "event": {"command": "noexec", "error": "permission denied"}}
		],
		"wait_failures": [],
		"failed_cancellations": [
			{"count": 1, "event": {"error": "no such process"}}
		]
	}`, string(out))
}

func TestSessionReport(t *testing.T) {
	var report SessionReport
	require.NoError(t, ReadJSONLinesLog(sampleLog(t), report.Update))

	out, err := json.Marshal(&report)
	require.NoError(t, err)

	var sessions map[string]*Session
	require.NoError(t, json.Unmarshal(out, &sessions))
	require.Len(t, sessions, 2)

	var main *Session
	for _, s := range sessions {
		if s.Interactive {
			main = s
		}
	}
	require.NotNil(t, main)
	assert.Equal(t, "/home/user", main.WorkingDir)
	assert.Equal(t, []string{"echo | cat", "ls", "sleep"}, main.Commands)
	assert.Equal(t, []string{"doesnotexist"}, main.Unknown)
	assert.Equal(t, []int32{42, 43}, main.Cancelled)
	assert.True(t, main.Ended)
}

func TestPathCounter(t *testing.T) {
	ctr := NewPathCounter("a", "b")
	ctr.Increment("x", "y")
	ctr.Increment("x", "y")
	ctr.Increment("p", "q")

	out, err := json.Marshal(ctr)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"count": 2, "event": {"a": "x", "b": "y"}},
		{"count": 1, "event": {"a": "p", "b": "q"}}
	]`, string(out))

	assert.Panics(t, func() { ctr.Increment("only-one") })
}
