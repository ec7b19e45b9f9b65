package jobs

import (
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
)

// Bridge turns asynchronous interrupts into Terminate messages for the
// current foreground job.
type Bridge struct {
	slot *Slot
	out  chan<- Message
	log  *log.Logger

	signals  chan os.Signal
	stop     chan struct{}
	done     chan struct{}
	started  bool
	stopOnce sync.Once
}

// NewBridge creates a bridge that reads slot and writes to out.
func NewBridge(slot *Slot, out chan<- Message, appLog *log.Logger) *Bridge {
	if appLog == nil {
		appLog = log.New(io.Discard, "", 0)
	}

	return &Bridge{
		slot:    slot,
		out:     out,
		log:     appLog,
		signals: make(chan os.Signal, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start relays the given signals, os.Interrupt if none are given. It must be
// called at most once.
func (b *Bridge) Start(sigs ...os.Signal) {
	if len(sigs) == 0 {
		sigs = []os.Signal{os.Interrupt}
	}

	b.started = true
	signal.Notify(b.signals, sigs...)

	go func() {
		defer close(b.done)

		for {
			select {
			case <-b.signals:
				b.Interrupt()
			case <-b.stop:
				return
			}
		}
	}()
}

// Interrupt publishes the foreground job without blocking. It reports false
// if the message was dropped because the channel is full.
func (b *Bridge) Interrupt() bool {
	msg := Terminate(b.slot.Load())

	select {
	case b.out <- msg:
		return true
	default:
		b.log.Printf("dropped interrupt for process %d: cancellation queue full", msg.PID)
		return false
	}
}

// Stop stops relaying signals and waits for the relay goroutine to exit.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		if !b.started {
			return
		}

		signal.Stop(b.signals)
		close(b.stop)
		<-b.done
	})
}
