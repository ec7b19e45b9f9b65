package commands

import (
	"fmt"

	"github.com/yarp-sh/yarp/core/pipeline"
)

// Which prints the executable a command name resolves to.
func Which(proc *Process) int {
	cmd := &SimpleCommand{
		Use:   "which [COMMAND...]",
		Short: "Locate a command.",
		// Never bail, even if args are bad.
		NeverBail: true,
	}

	resolver := proc.Resolver
	if resolver == nil {
		resolver = pipeline.NewResolver()
	}

	return cmd.RunEachArg(proc, func(arg string) error {
		res, err := resolver.Resolve(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(proc.Stdout, res)
		return nil
	})
}

var _ ProcessFunc = Which

func init() {
	mustAddCmd("which", Which)
}
