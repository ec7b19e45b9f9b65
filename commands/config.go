package commands

import (
	"fmt"
)

// Config lists, reads and updates the shell's preferences.
func Config(proc *Process) int {
	cmd := &SimpleCommand{
		Use:   "config [-l] [-g SECTION FIELD] [-s SECTION FIELD VALUE]",
		Short: "Edit the preferences of the shell.",
	}

	opts := cmd.Flags()
	list := opts.BoolLong("list", 'l', "list all preferences")
	get := opts.BoolLong("get", 'g', "print the value of SECTION FIELD")
	set := opts.BoolLong("set", 's', "set SECTION FIELD to VALUE and save")

	var color ColorPrinter
	color.Init(opts, proc)

	return cmd.Run(proc, func() int {
		cfg := proc.Config
		if cfg == nil {
			fmt.Fprintln(proc.Stderr, "config: no preferences loaded")
			return 1
		}

		args := opts.Args()
		switch {
		case *set:
			if len(args) != 3 {
				fmt.Fprintln(proc.Stderr, "config: -s needs SECTION FIELD VALUE")
				return 1
			}
			if err := cfg.Set(args[0], args[1], args[2]); err != nil {
				fmt.Fprintf(proc.Stderr, "config: %v\n", err)
				return 1
			}
			if err := cfg.Save(); err != nil {
				fmt.Fprintf(proc.Stderr, "config: %v\n", err)
				return 1
			}
			return 0

		case *get:
			if len(args) != 2 {
				fmt.Fprintln(proc.Stderr, "config: -g needs SECTION FIELD")
				return 1
			}
			value, err := cfg.Get(args[0], args[1])
			if err != nil {
				fmt.Fprintf(proc.Stderr, "config: %v\n", err)
				return 1
			}
			fmt.Fprintln(proc.Stdout, value)
			return 0

		case *list:
			settings, err := cfg.List()
			if err != nil {
				fmt.Fprintf(proc.Stderr, "config: %v\n", err)
				return 1
			}

			section := ""
			for _, s := range settings {
				if s.Section != section {
					section = s.Section
					fmt.Fprintf(proc.Stdout, "%s:\n", color.Sprintf(ColorBoldGreen, "%s", section))
				}
				fmt.Fprintf(proc.Stdout, "  %s: %s\n", s.Field, s.Value)
			}
			return 0

		default:
			cmd.PrintHelp(proc.Stdout)
			return 1
		}
	})
}

var _ ProcessFunc = Config

func init() {
	mustAddCmd("config", Config)
}
