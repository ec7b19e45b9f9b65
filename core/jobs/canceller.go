package jobs

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/yarp-sh/yarp/core/logger"
	"golang.org/x/sys/unix"
)

// ErrChannelBroken is reported when the cancellation channel closes without
// a shutdown message.
var ErrChannelBroken = errors.New("cancellation channel closed")

// MessageKind identifies a cancellation message.
type MessageKind int

const (
	// KindTerminate asks for a process to be terminated.
	KindTerminate MessageKind = iota
	// KindShutdown stops the canceller.
	KindShutdown
)

func (k MessageKind) String() string {
	switch k {
	case KindTerminate:
		return "terminate"
	case KindShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("MessageKind(%d)", int(k))
	}
}

// Message is consumed by the Canceller.
type Message struct {
	Kind MessageKind
	// PID is the process to terminate, 0 if no job was running.
	PID int
}

// Terminate creates a message asking the canceller to terminate pid.
func Terminate(pid int) Message {
	return Message{Kind: KindTerminate, PID: pid}
}

// Shutdown creates a message that stops the canceller.
func Shutdown() Message {
	return Message{Kind: KindShutdown}
}

// SignalError is returned when a termination signal can't be delivered.
type SignalError struct {
	PID int
	Err error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("kill %d: %v", e.PID, e.Err)
}

func (e *SignalError) Unwrap() error {
	return e.Err
}

// Signaller delivers termination requests to processes.
type Signaller interface {
	Terminate(pid int) error
}

// SignalFunc adapts a function to the Signaller interface.
type SignalFunc func(pid int) error

func (f SignalFunc) Terminate(pid int) error {
	return f(pid)
}

// SIGTERM terminates processes with the SIGTERM signal.
var SIGTERM Signaller = SignalFunc(func(pid int) error {
	return unix.Kill(pid, unix.SIGTERM)
})

// Canceller terminates the processes named by the messages it receives.
type Canceller struct {
	signaller Signaller
	log       *log.Logger
	events    *logger.SessionLogger

	done chan struct{}
}

// NewCanceller creates a Canceller. A nil signaller uses SIGTERM, nil loggers
// discard their output.
func NewCanceller(signaller Signaller, appLog *log.Logger, events *logger.SessionLogger) *Canceller {
	if signaller == nil {
		signaller = SIGTERM
	}
	if appLog == nil {
		appLog = log.New(io.Discard, "", 0)
	}
	if events == nil {
		events = logger.NewDiscardLogger().Sessionless()
	}

	return &Canceller{
		signaller: signaller,
		log:       appLog,
		events:    events,
		done:      make(chan struct{}),
	}
}

// Start consumes messages in a new goroutine until a shutdown message
// arrives or the channel closes.
func (c *Canceller) Start(messages <-chan Message) {
	go func() {
		defer close(c.done)

		if err := c.Run(messages); err != nil {
			c.log.Printf("canceller stopped: %v", err)
		}
	}()
}

// Done is closed once a goroutine launched by Start returns.
func (c *Canceller) Done() <-chan struct{} {
	return c.done
}

// Run consumes messages on the calling goroutine. It returns nil after a
// shutdown message and ErrChannelBroken if the channel is closed first.
func (c *Canceller) Run(messages <-chan Message) error {
	for {
		msg, ok := <-messages
		if !ok {
			return ErrChannelBroken
		}

		switch msg.Kind {
		case KindShutdown:
			return nil
		case KindTerminate:
			c.terminate(msg.PID)
		default:
			c.log.Printf("ignoring unknown cancellation message %v", msg.Kind)
		}
	}
}

func (c *Canceller) terminate(pid int) {
	if pid == 0 {
		return
	}

	event := &logger.Cancellation{Pid: int32(pid), Delivered: true}
	if err := c.signaller.Terminate(pid); err != nil {
		sigErr := &SignalError{PID: pid, Err: err}
		c.log.Println(sigErr)
		event.Delivered = false
		event.ErrorMessage = sigErr.Error()
	} else {
		c.log.Printf("terminated foreground process %d", pid)
	}

	c.events.RecordOrLog(&logger.LogEntry_Cancellation{Cancellation: event}, c.log)
}
