// Package jobs tracks the foreground process of the shell and cancels it on
// request.
package jobs

import "sync/atomic"

// Slot holds the process ID of the current foreground job, 0 when nothing
// is running. Only the main loop writes to it.
type Slot struct {
	pid atomic.Int64
}

// Set marks pid as the foreground job.
func (s *Slot) Set(pid int) {
	s.pid.Store(int64(pid))
}

// Clear empties the slot.
func (s *Slot) Clear() {
	s.pid.Store(0)
}

// Load returns a copy of the slot's contents.
func (s *Slot) Load() int {
	return int(s.pid.Load())
}
