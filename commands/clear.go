package commands

import (
	"fmt"
)

// Clear clears the terminal screen.
func Clear(proc *Process) int {
	if proc.PTY.IsPTY {
		// Assumes VT100 compatibility.
		fmt.Fprint(proc.Stdout, "\033[H\033[2J")
	}
	return 0
}

var _ ProcessFunc = Clear

func init() {
	mustAddCmd("clear", Clear)
}
