package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// SpawnError is returned when the operating system fails to create a stage's
// process. Stages started before the failure are terminated and their process
// IDs are listed in Terminated.
type SpawnError struct {
	Name       string
	Err        error
	Terminated []int
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// WaitError is returned when waiting on the foreground process fails for a
// reason other than the process exiting unsuccessfully.
type WaitError struct {
	PID int
	Err error
}

func (e *WaitError) Error() string {
	return fmt.Sprintf("wait %d: %v", e.PID, e.Err)
}

func (e *WaitError) Unwrap() error {
	return e.Err
}

// Executor spawns statements as chains of processes connected by pipes.
// Processes inherit the working directory and environment of the shell.
type Executor struct {
	Resolver *Resolver

	// Stdin is given to the first stage, Stdout to the last, Stderr to every
	// stage. A nil value connects the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecutor creates an Executor wired to the given streams.
func NewExecutor(resolver *Resolver, stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{
		Resolver: resolver,
		Stdin:    stdin,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Execute resolves every stage of stmt and then starts them in order, the
// output of each stage feeding the input of the next.
//
// No process is started unless every stage resolves. An empty statement
// returns a nil pipeline and a nil error.
func (e *Executor) Execute(stmt Statement) (*RunningPipeline, error) {
	if stmt.Empty() {
		return nil, nil
	}

	paths := make([]string, len(stmt.Stages))
	for i, stage := range stmt.Stages {
		path, err := e.Resolver.Resolve(stage.Name)
		if err != nil {
			return nil, err
		}
		paths[i] = path
	}

	last := len(stmt.Stages) - 1
	var cmds []*exec.Cmd
	var prevReader *os.File

	for i, stage := range stmt.Stages {
		cmd := &exec.Cmd{
			Path:   paths[i],
			Args:   stage.Argv(),
			Stderr: e.Stderr,
		}

		// ----- stdin -----
		if i == 0 {
			cmd.Stdin = e.Stdin
		} else {
			cmd.Stdin = prevReader
		}

		// ----- stdout -----
		var pipeReader, pipeWriter *os.File
		if i == last {
			cmd.Stdout = e.Stdout
		} else {
			var err error
			pipeReader, pipeWriter, err = os.Pipe()
			if err != nil {
				closeFiles(prevReader)
				return nil, &SpawnError{
					Name:       stage.Name,
					Err:        fmt.Errorf("pipe: %w", err),
					Terminated: terminate(cmds),
				}
			}
			cmd.Stdout = pipeWriter
		}

		if err := cmd.Start(); err != nil {
			closeFiles(prevReader, pipeReader, pipeWriter)
			return nil, &SpawnError{
				Name:       stage.Name,
				Err:        err,
				Terminated: terminate(cmds),
			}
		}

		// The children hold their own copies now, the pipe must only be open in
		// them so EOF and SIGPIPE propagate.
		closeFiles(prevReader, pipeWriter)
		prevReader = pipeReader
		cmds = append(cmds, cmd)
	}

	return &RunningPipeline{
		Statement: stmt,
		Paths:     paths,
		cmds:      cmds,
	}, nil
}

// RunningPipeline holds the processes of one started statement.
type RunningPipeline struct {
	Statement Statement
	// Paths holds the resolved executable of each stage.
	Paths []string

	cmds []*exec.Cmd
}

// PID returns the process ID of the foreground (last) stage.
func (p *RunningPipeline) PID() int {
	return p.foreground().Process.Pid
}

// PIDs returns the process IDs of every stage in order.
func (p *RunningPipeline) PIDs() []int {
	var out []int
	for _, cmd := range p.cmds {
		out = append(out, cmd.Process.Pid)
	}
	return out
}

func (p *RunningPipeline) foreground() *exec.Cmd {
	return p.cmds[len(p.cmds)-1]
}

// Wait blocks until the foreground process exits and returns its exit code.
// A process ended by a signal reports -1. Upstream stages are reaped in the
// background, they exit once the pipe chain closes.
func (p *RunningPipeline) Wait() (int, error) {
	fg := p.foreground()
	err := fg.Wait()
	go reap(p.cmds[:len(p.cmds)-1])

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, nil
	case errors.As(err, &exitErr):
		return exitErr.ExitCode(), nil
	default:
		return -1, &WaitError{PID: fg.Process.Pid, Err: err}
	}
}

func closeFiles(files ...*os.File) {
	for _, f := range files {
		if f != nil {
			_ = f.Close()
		}
	}
}

// terminate sends SIGTERM to started stages and reaps them in the background.
func terminate(cmds []*exec.Cmd) []int {
	var pids []int
	for _, cmd := range cmds {
		pids = append(pids, cmd.Process.Pid)
		_ = cmd.Process.Signal(unix.SIGTERM)
	}
	go reap(cmds)
	return pids
}

func reap(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		_ = cmd.Wait()
	}
}
