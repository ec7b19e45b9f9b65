package jobs

import (
	"bytes"
	"errors"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yarp-sh/yarp/core/logger"
	"golang.org/x/sys/unix"
)

type recordingSignaller struct {
	mu   sync.Mutex
	pids []int
	err  error
}

func (r *recordingSignaller) Terminate(pid int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pids = append(r.pids, pid)
	return r.err
}

func (r *recordingSignaller) calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]int(nil), r.pids...)
}

// syncBuffer is a bytes.Buffer that can be written by the canceller goroutine
// and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestSlot(t *testing.T) {
	var slot Slot
	assert.Equal(t, 0, slot.Load())

	slot.Set(1234)
	assert.Equal(t, 1234, slot.Load())

	slot.Clear()
	assert.Equal(t, 0, slot.Load())
}

func TestMessageKind_String(t *testing.T) {
	assert.Equal(t, "terminate", KindTerminate.String())
	assert.Equal(t, "shutdown", KindShutdown.String())
	assert.Equal(t, "MessageKind(9)", MessageKind(9).String())
}

func TestCanceller_Run(t *testing.T) {
	cases := map[string]struct {
		messages []Message
		close    bool
		expected []int
		err      error
	}{
		"empty-slot-no-signal": {
			messages: []Message{Terminate(0), Shutdown()},
		},
		"one-signal-per-request": {
			messages: []Message{Terminate(42), Shutdown()},
			expected: []int{42},
		},
		"in-order": {
			messages: []Message{Terminate(1), Terminate(0), Terminate(2), Terminate(1), Shutdown()},
			expected: []int{1, 2, 1},
		},
		"nothing-after-shutdown": {
			messages: []Message{Shutdown(), Terminate(7)},
		},
		"closed-channel": {
			messages: []Message{Terminate(5)},
			close:    true,
			expected: []int{5},
			err:      ErrChannelBroken,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			messages := make(chan Message, len(tc.messages))
			for _, msg := range tc.messages {
				messages <- msg
			}
			if tc.close {
				close(messages)
			}

			signaller := &recordingSignaller{}
			err := NewCanceller(signaller, nil, nil).Run(messages)

			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.expected, signaller.calls())
		})
	}
}

func TestCanceller_SignalFailureIsNotFatal(t *testing.T) {
	var appLog, events bytes.Buffer
	signaller := &recordingSignaller{err: unix.ESRCH}
	canceller := NewCanceller(
		signaller,
		log.New(&appLog, "", 0),
		logger.NewJsonLinesLogRecorder(&events).Sessionless(),
	)

	messages := make(chan Message, 3)
	messages <- Terminate(99)
	messages <- Terminate(100)
	messages <- Shutdown()

	require.NoError(t, canceller.Run(messages))
	assert.Equal(t, []int{99, 100}, signaller.calls())
	assert.Contains(t, appLog.String(), "kill 99: no such process")

	var cancellations []*logger.Cancellation
	require.NoError(t, logger.ReadJSONLinesLog(&events, func(le *logger.LogEntry) {
		cancellations = append(cancellations, le.GetCancellation())
	}))
	require.Len(t, cancellations, 2)
	assert.False(t, cancellations[0].Delivered)
	assert.Equal(t, "kill 99: no such process", cancellations[0].ErrorMessage)
}

func TestCanceller_StartAndShutdown(t *testing.T) {
	signaller := &recordingSignaller{}
	canceller := NewCanceller(signaller, nil, nil)
	messages := make(chan Message)

	canceller.Start(messages)
	messages <- Terminate(10)
	messages <- Shutdown()

	select {
	case <-canceller.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("canceller did not stop after shutdown")
	}

	assert.Equal(t, []int{10}, signaller.calls())
}

func TestCanceller_ClosedChannelStops(t *testing.T) {
	appLog := &syncBuffer{}
	canceller := NewCanceller(&recordingSignaller{}, log.New(appLog, "", 0), nil)
	messages := make(chan Message)

	canceller.Start(messages)
	close(messages)

	select {
	case <-canceller.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("canceller did not stop after the channel closed")
	}
	assert.Contains(t, appLog.String(), ErrChannelBroken.Error())
}

func TestSIGTERM_MissingProcess(t *testing.T) {
	// PIDs above the kernel maximum never exist.
	err := SIGTERM.Terminate(1 << 30)

	assert.True(t, errors.Is(err, unix.ESRCH), "expected ESRCH got %v", err)
}

func TestBridge_Interrupt(t *testing.T) {
	var slot Slot
	out := make(chan Message, 1)
	var appLog bytes.Buffer
	bridge := NewBridge(&slot, out, log.New(&appLog, "", 0))

	slot.Set(77)
	assert.True(t, bridge.Interrupt())
	assert.Equal(t, Terminate(77), <-out)

	slot.Clear()
	assert.True(t, bridge.Interrupt())
	assert.Equal(t, Terminate(0), <-out)

	// A full queue drops the interrupt rather than blocking.
	slot.Set(5)
	assert.True(t, bridge.Interrupt())
	assert.False(t, bridge.Interrupt())
	assert.Contains(t, appLog.String(), "dropped interrupt for process 5")
}

func TestBridge_RelaysSignal(t *testing.T) {
	var slot Slot
	slot.Set(321)
	out := make(chan Message, 1)
	bridge := NewBridge(&slot, out, nil)

	bridge.Start(unix.SIGUSR1)
	defer bridge.Stop()

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGUSR1))

	select {
	case msg := <-out:
		assert.Equal(t, Terminate(321), msg)
	case <-time.After(5 * time.Second):
		t.Fatal("signal was not relayed")
	}
}

func TestBridge_StopIsIdempotent(t *testing.T) {
	bridge := NewBridge(&Slot{}, make(chan Message, 1), nil)

	// Stopping a bridge that never started is a no-op.
	bridge.Stop()

	started := NewBridge(&Slot{}, make(chan Message, 1), nil)
	started.Start(unix.SIGUSR2)
	started.Stop()
	started.Stop()
}
