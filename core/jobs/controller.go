package jobs

import (
	"errors"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/yarp-sh/yarp/core/logger"
	"github.com/yarp-sh/yarp/core/pipeline"
)

// DefaultQueueSize is the number of interrupts that can wait for the
// canceller before new ones are dropped.
const DefaultQueueSize = 8

// Outcome describes how a statement ran.
type Outcome struct {
	Statement pipeline.Statement
	// PID of the foreground process, 0 if nothing was spawned.
	PID int
	// ExitCode of the foreground process, -1 if it couldn't run or was
	// killed by a signal.
	ExitCode int
	Err      error
	Duration time.Duration
}

// Success is true if the statement ran and exited with status 0.
func (o Outcome) Success() bool {
	return o.Err == nil && o.ExitCode == 0
}

// Options configures a Controller.
type Options struct {
	// Signals relayed to the foreground job, os.Interrupt if empty.
	Signals []os.Signal
	// Signaller used to terminate jobs, SIGTERM if nil.
	Signaller Signaller
	// QueueSize of the cancellation channel, DefaultQueueSize if <= 0.
	QueueSize int
	Log       *log.Logger
	Events    *logger.SessionLogger
}

// Controller runs statements one at a time and cancels the foreground job
// when interrupted.
type Controller struct {
	executor *pipeline.Executor
	log      *log.Logger
	events   *logger.SessionLogger
	signals  []os.Signal

	slot      Slot
	messages  chan Message
	bridge    *Bridge
	canceller *Canceller

	mu         sync.Mutex
	started    bool
	shutdown   bool
	statements int
}

// NewController creates a controller that spawns statements with executor.
func NewController(executor *pipeline.Executor, opts Options) *Controller {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard, "", 0)
	}
	if opts.Events == nil {
		opts.Events = logger.NewDiscardLogger().Sessionless()
	}

	c := &Controller{
		executor: executor,
		log:      opts.Log,
		events:   opts.Events,
		signals:  opts.Signals,
		messages: make(chan Message, opts.QueueSize),
	}
	c.bridge = NewBridge(&c.slot, c.messages, c.log)
	c.canceller = NewCanceller(opts.Signaller, c.log, c.events)

	return c
}

// Start launches the canceller and begins relaying signals.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started || c.shutdown {
		return
	}
	c.started = true

	c.canceller.Start(c.messages)
	c.bridge.Start(c.signals...)
}

// Slot returns the foreground job slot.
func (c *Controller) Slot() *Slot {
	return &c.slot
}

// Interrupt cancels the foreground job as if a relayed signal arrived.
func (c *Controller) Interrupt() bool {
	return c.bridge.Interrupt()
}

// RunLine parses line and runs each statement in order. A failing statement
// doesn't stop the ones after it.
func (c *Controller) RunLine(line string) []Outcome {
	var out []Outcome
	for _, stmt := range pipeline.Parse(line) {
		out = append(out, c.Run(stmt))
	}
	return out
}

// RunStatement runs a single statement given as text.
func (c *Controller) RunStatement(text string) Outcome {
	return c.Run(pipeline.ParseStatement(text))
}

// Run spawns stmt, waits for its foreground process and returns the result.
// An empty statement does nothing and succeeds.
func (c *Controller) Run(stmt pipeline.Statement) Outcome {
	start := time.Now()
	outcome := Outcome{Statement: stmt, ExitCode: -1}
	if stmt.Empty() {
		outcome.ExitCode = 0
		return outcome
	}

	c.mu.Lock()
	c.statements++
	c.mu.Unlock()

	names := stageNames(stmt)

	running, err := c.executor.Execute(stmt)
	if err != nil {
		outcome.Err = err
		outcome.Duration = time.Since(start)
		c.recordSpawnError(names, err)
		return outcome
	}

	c.events.RecordOrLog(&logger.LogEntry_RunCommand{
		RunCommand: &logger.RunCommand{
			Command:              names,
			ResolvedCommandPaths: running.Paths,
			Pids:                 int32s(running.PIDs()),
		},
	}, c.log)

	outcome.PID = running.PID()
	c.slot.Set(outcome.PID)
	code, err := running.Wait()
	c.slot.Clear()

	outcome.ExitCode = code
	outcome.Duration = time.Since(start)

	if err != nil {
		outcome.Err = err
		c.log.Println(err)
		c.events.RecordOrLog(&logger.LogEntry_WaitFailure{
			WaitFailure: &logger.WaitFailure{Pid: int32(outcome.PID), ErrorMessage: err.Error()},
		}, c.log)
		return outcome
	}

	c.events.RecordOrLog(&logger.LogEntry_CommandExit{
		CommandExit: &logger.CommandExit{
			Command:        names,
			Pid:            int32(outcome.PID),
			ExitCode:       int32(code),
			DurationMicros: outcome.Duration.Microseconds(),
		},
	}, c.log)

	return outcome
}

func (c *Controller) recordSpawnError(names []string, err error) {
	c.log.Println(err)

	var spawnErr *pipeline.SpawnError
	switch {
	case errors.Is(err, pipeline.ErrNotFound):
		c.events.RecordOrLog(&logger.LogEntry_UnknownCommand{
			UnknownCommand: &logger.UnknownCommand{Command: names, ErrorMessage: err.Error()},
		}, c.log)
	case errors.As(err, &spawnErr):
		c.events.RecordOrLog(&logger.LogEntry_SpawnFailure{
			SpawnFailure: &logger.SpawnFailure{
				Command:      names,
				ErrorMessage: err.Error(),
				Terminated:   int32s(spawnErr.Terminated),
			},
		}, c.log)
	}
}

// RequestShutdown stops relaying signals, shuts down the canceller and waits
// for it to exit. Calling it more than once has no further effect.
func (c *Controller) RequestShutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		return
	}
	c.shutdown = true

	if c.started {
		c.bridge.Stop()
		c.messages <- Shutdown()
		<-c.canceller.Done()
	}

	c.events.RecordOrLog(&logger.LogEntry_SessionEnd{
		SessionEnd: &logger.SessionEnd{Statements: int32(c.statements)},
	}, c.log)
}

func stageNames(stmt pipeline.Statement) []string {
	var names []string
	for _, stage := range stmt.Stages {
		names = append(names, stage.Name)
	}
	return names
}

func int32s(pids []int) []int32 {
	var out []int32
	for _, pid := range pids {
		out = append(out, int32(pid))
	}
	return out
}
