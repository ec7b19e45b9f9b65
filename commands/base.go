package commands

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"sort"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
	"github.com/yarp-sh/yarp/core/config"
	"github.com/yarp-sh/yarp/core/pipeline"
)

// ProcessFunc is a command that runs inside the shell's own process.
type ProcessFunc func(proc *Process) int

// PTY describes the terminal the command writes to.
type PTY struct {
	Width int
	IsPTY bool
}

// ProcAttr holds the environment given to a command.
type ProcAttr struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Fs is used for file access, the OS file system if nil.
	Fs  afero.Fs
	PTY PTY
	// Getwd returns the working directory, os.Getwd if nil.
	Getwd func() (string, error)

	Resolver *pipeline.Resolver
	// Config may be nil if the shell runs without preferences.
	Config *config.Configuration
	Log    *log.Logger
}

// Process is a single invocation of a command.
type Process struct {
	ProcAttr
	Args []string
}

// FS returns the file system the command should use.
func (p *Process) FS() afero.Fs {
	if p.Fs == nil {
		return afero.NewOsFs()
	}
	return p.Fs
}

// Wd returns the working directory or "." if it can't be determined.
func (p *Process) Wd() string {
	getwd := p.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	wd, err := getwd()
	if err != nil {
		return "."
	}
	return wd
}

// LogInvalidInvocation records a command that was called incorrectly.
func (p *Process) LogInvalidInvocation(err error) {
	if p.Log != nil {
		p.Log.Printf("invalid invocation of %q: %v", p.Args, err)
	}
}

// AllCommands holds a list of all registered commands
var AllCommands = make(map[string]ProcessFunc)

// mustAddCmd registers a command, it panics if the name is taken.
func mustAddCmd(name string, cmd ProcessFunc) {
	if _, ok := AllCommands[name]; ok {
		panic(fmt.Sprintf("command %q registered twice", name))
	}
	AllCommands[name] = cmd
}

// Lookup returns the command registered under name.
func Lookup(name string) (ProcessFunc, bool) {
	cmd, ok := AllCommands[name]
	return cmd, ok
}

// Run invokes the command named by args[0].
func Run(args []string, attr ProcAttr) (int, error) {
	if len(args) == 0 {
		return 1, errors.New("no command given")
	}

	cmd, ok := Lookup(args[0])
	if !ok {
		return 127, &pipeline.NotFoundError{Name: args[0]}
	}

	return cmd(&Process{ProcAttr: attr, Args: args}), nil
}

func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

// CommandEntry groups the names a single command is registered under.
type CommandEntry struct {
	Names []string
	Proc  ProcessFunc
}

// ListBuiltinCommands returns the registered commands sorted by name.
func ListBuiltinCommands() []CommandEntry {
	byFunc := make(map[uintptr]*CommandEntry)
	var order []uintptr

	var names []string
	for name := range AllCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		proc := AllCommands[name]
		key := reflect.ValueOf(proc).Pointer()
		entry, ok := byFunc[key]
		if !ok {
			entry = &CommandEntry{Proc: proc}
			byFunc[key] = entry
			order = append(order, key)
		}
		entry.Names = append(entry.Names, name)
	}

	var out []CommandEntry
	for _, key := range order {
		out = append(out, *byFunc[key])
	}
	return out
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a sone line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(proc *Process, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(proc.Args, nil)
	if err != nil {
		proc.LogInvalidInvocation(err)
	}

	if err != nil && !s.NeverBail {
		fmt.Fprintf(proc.Stderr, "%s: %s\n\n", proc.Args[0], err)

		s.PrintHelp(proc.Stdout)
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(proc.Stdout)
		return 0
	}

	return callback()
}

// RunEachArg runs the callback for every positional argument, errors are
// printed and make the command fail but don't stop the remaining arguments.
func (s *SimpleCommand) RunEachArg(proc *Process, callback func(string) error) int {
	return s.Run(proc, func() int {
		ret := 0
		for _, arg := range s.Flags().Args() {
			if err := callback(arg); err != nil {
				fmt.Fprintf(proc.Stderr, "%s: %v\n", proc.Args[0], err)
				ret = 1
			}
		}
		return ret
	})
}

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var (
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorYellow    = color.New(color.FgYellow)
	ColorBoldCyan  = color.New(color.FgCyan, color.Bold)
	ColorBoldRed   = color.New(color.FgRed, color.Bold)
)

type ColorPrinter struct {
	value *string
	proc  *Process
}

// Init sets up the flag and process to determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, proc *Process) {
	c.proc = proc
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{colorAlways, colorAuto, colorNever},
		colorAuto,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == colorNever:
		return false
	case *c.value == colorAlways:
		return true
	default:
		return c.proc.PTY.IsPTY
	}
}

func (c *ColorPrinter) Sprintf(color *color.Color, format string, a ...interface{}) string {
	if c.ShouldColor() {
		// Colors are decided by the flag, not by fatih/color's own tty check.
		color.EnableColor()
		return color.Sprintf(format, a...)
	}
	return fmt.Sprintf(format, a...)
}
