package core

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/yarp-sh/yarp/commands"
	"github.com/yarp-sh/yarp/core/config"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]ShellBuiltin)

// ShellBuiltin is a command that changes the state of the shell itself.
type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		args = append(args, os.Getenv(EnvHome))
		fallthrough
	case 2:
		if args[1] == "" {
			fmt.Fprintf(s.Stderr(), "%s: HOME not set\n", args[0])
			return 1
		}
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
		if wd, err := os.Getwd(); err == nil {
			os.Setenv(EnvPWD, wd)
		}
	default:
		fmt.Fprintf(s.Stderr(), "%s: too many arguments\n", args[0])
		return 1
	}
	return 0
}

// Exit quits the shell with the given status or the last one.
func Exit(s *Shell, args []string) int {
	status := s.lastStatus
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %s: numeric argument required\n", args[0], args[1])
			n = 2
		}
		status = n
	}

	s.exited = true
	return status
}

func History(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.Stderr()
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display the history list with line numbers.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		if err != nil {
			return 1
		}
		return 0
	}

	if *clear {
		if s.Readline != nil {
			s.Readline.Operation.ResetHistory()
		}
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.Stdout(), "% 5d  %s\n", i+1, line)
	}
	return 0
}

func Help(s *Shell, args []string) int {
	w := s.Stdout()
	fmt.Fprintln(w, "yarp, an interactive shell.")
	fmt.Fprintln(w, "Statements are separated by ';' and stages of a pipeline by '|'.")
	fmt.Fprintln(w, "Anything that isn't listed below is looked up on PATH.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Builtins:")
	for _, name := range sortedKeys(AllBuiltins) {
		fmt.Fprintf(w, "  %s\n", name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, entry := range commands.ListBuiltinCommands() {
		fmt.Fprintf(w, "  %s\n", strings.Join(entry.Names, ", "))
	}

	return 0
}

// Alias lists, shows and sets aliases. New aliases are saved to the
// preferences immediately.
func Alias(s *Shell, args []string) int {
	cfg := s.Config()
	if cfg == nil {
		fmt.Fprintf(s.Stderr(), "%s: no preferences loaded\n", args[0])
		return 1
	}

	if len(args) == 1 {
		for _, name := range sortedKeys(cfg.Terminal.Alias) {
			fmt.Fprintf(s.Stdout(), "alias %s='%s'\n", name, cfg.Terminal.Alias[name])
		}
		return 0
	}

	status := 0
	changed := false
	for _, arg := range args[1:] {
		name, value, isSet := strings.Cut(arg, "=")
		if !isSet {
			current, ok := cfg.Terminal.Alias[name]
			if !ok {
				fmt.Fprintf(s.Stderr(), "%s: %s: not found\n", args[0], name)
				status = 1
				continue
			}
			fmt.Fprintf(s.Stdout(), "alias %s='%s'\n", name, current)
			continue
		}

		if !config.ValidAliasName(name) {
			fmt.Fprintf(s.Stderr(), "%s: %q: invalid alias name\n", args[0], name)
			status = 1
			continue
		}
		cfg.SetAlias(name, value)
		changed = true
	}

	if changed {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
	}
	return status
}

// Source runs the lines of a file as if they were typed.
func Source(s *Shell, args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(s.Stderr(), "usage: %s FILE\n", args[0])
		return 1
	}
	return s.RunScript(args[1])
}

func sortedKeys[V any](m map[string]V) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
	AllBuiltins["alias"] = ShellBuiltinFunc(Alias)
	AllBuiltins["source"] = ShellBuiltinFunc(Source)
}
