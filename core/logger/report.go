package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var rawEntry json.RawMessage
		if err := decoder.Decode(&rawEntry); err != nil {
			return err
		}

		var logEntry LogEntry
		if err := protojson.Unmarshal(rawEntry, &logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

func NewFailureReport() *FailureReport {
	return &FailureReport{
		UnknownCommands: NewPathCounter("command", "error"),
		SpawnFailures:   NewPathCounter("command", "error"),
		WaitFailures:    NewPathCounter("error"),
		Cancellations:   NewPathCounter("error"),
	}
}

// FailureReport pulls events where the shell couldn't do what was asked.
type FailureReport struct {
	LogEntries int `json:"log_entries"`

	UnknownCommands *PathCounter `json:"unknown_commands"`
	SpawnFailures   *PathCounter `json:"spawn_failures"`
	WaitFailures    *PathCounter `json:"wait_failures"`
	Cancellations   *PathCounter `json:"failed_cancellations"`
}

func (r *FailureReport) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *LogEntry_UnknownCommand:
		msg := event.UnknownCommand
		r.UnknownCommands.Increment(firstOrEmpty(msg.Command), msg.ErrorMessage)
	case *LogEntry_SpawnFailure:
		msg := event.SpawnFailure
		r.SpawnFailures.Increment(firstOrEmpty(msg.Command), msg.ErrorMessage)
	case *LogEntry_WaitFailure:
		r.WaitFailures.Increment(event.WaitFailure.ErrorMessage)
	case *LogEntry_Cancellation:
		if msg := event.Cancellation; !msg.Delivered {
			r.Cancellations.Increment(msg.ErrorMessage)
		}
	}
}

// SessionReport groups the commands run by each session.
type SessionReport struct {
	// Map of sessionID -> session
	sessions map[string]*Session
}

// Session is a summary of a single session.
type Session struct {
	Interactive bool     `json:"interactive"`
	WorkingDir  string   `json:"working_dir,omitempty"`
	LogEntries  int      `json:"log_entries"`
	Commands    []string `json:"commands"`
	Unknown     []string `json:"unknown_commands,omitempty"`
	Cancelled   []int32  `json:"cancelled_pids,omitempty"`
	Ended       bool     `json:"ended"`
}

func (s *Session) Update(le *LogEntry) {
	s.LogEntries++

	switch event := le.GetLogType().(type) {
	case *LogEntry_SessionStart:
		s.Interactive = event.SessionStart.Interactive
		s.WorkingDir = event.SessionStart.WorkingDir
	case *LogEntry_RunCommand:
		s.Commands = append(s.Commands, strings.Join(event.RunCommand.Command, " | "))
	case *LogEntry_UnknownCommand:
		s.Unknown = append(s.Unknown, strings.Join(event.UnknownCommand.Command, " | "))
	case *LogEntry_Cancellation:
		s.Cancelled = append(s.Cancelled, event.Cancellation.Pid)
	case *LogEntry_SessionEnd:
		s.Ended = true
	}
}

func (i *SessionReport) init() {
	if i.sessions == nil {
		i.sessions = make(map[string]*Session)
	}
}

// MarshalJSON implemnts custom JSON marshaler.
func (i *SessionReport) MarshalJSON() ([]byte, error) {
	i.init()

	return json.Marshal(i.sessions)
}

func (i *SessionReport) Update(le *LogEntry) {
	i.init()

	if le.SessionId == "" {
		return
	}
	report, ok := i.sessions[le.SessionId]
	if !ok {
		report = &Session{}
		i.sessions[le.SessionId] = report
	}

	report.Update(le)
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`
	Sessions       int        `json:"sessions"`

	RunCommand     RunCommandReport     `json:"run_command_report"`
	UnknownCommand UnknownCommandReport `json:"unknown_command_report"`
	SpawnFailure   SpawnFailureReport   `json:"spawn_failure_report"`
	CommandExit    CommandExitReport    `json:"command_exit_report"`
	Cancellation   CancellationReport   `json:"cancellation_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.GetLogType().(type) {
	case *LogEntry_SessionStart:
		r.Sessions++
	case *LogEntry_RunCommand:
		r.RunCommand.update(event.RunCommand)
	case *LogEntry_UnknownCommand:
		r.UnknownCommand.update(event.UnknownCommand)
	case *LogEntry_SpawnFailure:
		r.SpawnFailure.update(event.SpawnFailure)
	case *LogEntry_CommandExit:
		r.CommandExit.update(event.CommandExit)
	case *LogEntry_Cancellation:
		r.Cancellation.update(event.Cancellation)
	case *LogEntry_WaitFailure, *LogEntry_SessionEnd:
		// Ignore
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type RunCommandReport struct {
	// Name of the resolved command
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Number of stages in each statement
	Stages StrCounter `json:"stages"`
	Builtins StrCounter `json:"builtins"`
}

func (r *RunCommandReport) update(rc *RunCommand) {
	for _, path := range rc.ResolvedCommandPaths {
		r.ResolvedCommandPaths.Increment(path)
	}
	for _, name := range rc.Command {
		if rc.Builtin {
			r.Builtins.Increment(name)
			continue
		}
		r.CommandNames.Increment(name)
	}
	if !rc.Builtin {
		r.Stages.Increment(strconv.Itoa(len(rc.Command)))
	}
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(logEntry *UnknownCommand) {
	if len(logEntry.Command) > 0 {
		r.CommandNames.Increment(logEntry.Command[0])
	}
}

type SpawnFailureReport struct {
	Count        int        `json:"count"`
	CommandNames StrCounter `json:"command_names"`
	Terminated   int        `json:"terminated_stages"`
}

func (r *SpawnFailureReport) update(sf *SpawnFailure) {
	r.Count++
	r.Terminated += len(sf.Terminated)
	if len(sf.Command) > 0 {
		r.CommandNames.Increment(sf.Command[0])
	}
}

type CommandExitReport struct {
	ExitCodes StrCounter `json:"exit_codes"`
}

func (r *CommandExitReport) update(ce *CommandExit) {
	r.ExitCodes.Increment(strconv.Itoa(int(ce.ExitCode)))
}

type CancellationReport struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

func (r *CancellationReport) update(c *Cancellation) {
	if c.Delivered {
		r.Delivered++
	} else {
		r.Failed++
	}
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for the given key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}

func NewPathCounter(cols ...string) *PathCounter {
	return &PathCounter{
		cols:     cols,
		internal: make(map[string]int),
	}
}

// PathCounter counts the number of string tuples seen.
type PathCounter struct {
	cols     []string
	internal map[string]int
}

// Increment adds one to the given key.
func (ctr *PathCounter) Increment(toAdd ...string) {
	if len(toAdd) != len(ctr.cols) {
		panic("wrong number of columns to add")
	}

	ctr.internal[toKey(toAdd...)]++
}

// MarshalJSON implemnts custom JSON marshaler.
func (ctr *PathCounter) MarshalJSON() ([]byte, error) {
	type Count struct {
		Count  int               `json:"count"`
		Fields map[string]string `json:"event"`
		Path   string            `json:"-"`
	}

	out := []Count{}
	for k, v := range ctr.internal {
		count := Count{
			Count:  v,
			Path:   k,
			Fields: make(map[string]string),
		}

		splitPath := fromKey(k)
		for colNum, colVal := range ctr.cols {
			count.Fields[colVal] = splitPath[colNum]
		}

		out = append(out, count)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Path < out[j].Path
		}
		return out[i].Count > out[j].Count
	})

	return json.Marshal(out)
}

func firstOrEmpty(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func toKey(vals ...string) string {
	key, _ := json.Marshal(vals)
	return string(key)
}

func fromKey(key string) (out []string) {
	json.Unmarshal([]byte(key), &out)
	return
}
