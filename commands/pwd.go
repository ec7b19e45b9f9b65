package commands

import (
	"fmt"
)

// Pwd prints the current working directory.
func Pwd(proc *Process) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(proc, func() int {
		fmt.Fprintln(proc.Stdout, proc.Wd())
		return 0
	})
}

var _ ProcessFunc = Pwd

func init() {
	mustAddCmd("pwd", Pwd)
}
