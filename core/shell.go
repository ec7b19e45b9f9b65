package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/yarp-sh/yarp/commands"
	"github.com/yarp-sh/yarp/core/config"
	"github.com/yarp-sh/yarp/core/jobs"
	"github.com/yarp-sh/yarp/core/logger"
	"github.com/yarp-sh/yarp/core/pipeline"
)

const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"

	// DefaultPrompt is used when no preferences are loaded.
	DefaultPrompt = "{} >> "

	// ExitHint is printed when the user tries to leave the prompt with
	// Ctrl-C or Ctrl-D.
	ExitHint = "yarp: If you want to exit the prompt, you need to execute the command 'exit'"
)

var errorColor = color.New(color.FgRed)

// ShellOptions configures a Shell.
type ShellOptions struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Config may be nil, defaults are used for everything it would set.
	Config *config.Configuration
	// Fs is used to read scripts, the OS file system if nil.
	Fs       afero.Fs
	Resolver *pipeline.Resolver
	Log      *log.Logger
	Events   *logger.SessionLogger

	// IsTerminal is true if Stdin is an interactive terminal.
	IsTerminal bool
	// Width gets the terminal width in columns.
	Width func() int
	// Signaller terminates the foreground job, SIGTERM if nil.
	Signaller jobs.Signaller
	// Signals relayed to the foreground job, os.Interrupt if empty.
	Signals []os.Signal
}

// Shell reads lines, runs builtins in-process and hands everything else to
// the job controller.
type Shell struct {
	Readline   *readline.Instance
	Controller *jobs.Controller

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	config     *config.Configuration
	fs         afero.Fs
	resolver   *pipeline.Resolver
	log        *log.Logger
	events     *logger.SessionLogger
	isTerminal bool
	width      func() int

	history    []string
	lastStatus int
	exited     bool
}

// NewShell creates a shell. Call Close when done with it.
func NewShell(opts ShellOptions) *Shell {
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Resolver == nil {
		opts.Resolver = pipeline.NewResolver()
	}
	if opts.Log == nil {
		opts.Log = log.New(io.Discard, "", 0)
	}
	if opts.Events == nil {
		opts.Events = logger.NewDiscardLogger().Sessionless()
	}
	if opts.Width == nil {
		opts.Width = func() int { return 80 }
	}

	executor := pipeline.NewExecutor(opts.Resolver, opts.Stdin, opts.Stdout, opts.Stderr)
	controller := jobs.NewController(executor, jobs.Options{
		Signals:   opts.Signals,
		Signaller: opts.Signaller,
		Log:       opts.Log,
		Events:    opts.Events,
	})

	return &Shell{
		Controller: controller,
		stdin:      opts.Stdin,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		config:     opts.Config,
		fs:         opts.Fs,
		resolver:   opts.Resolver,
		log:        opts.Log,
		events:     opts.Events,
		isTerminal: opts.IsTerminal,
		width:      opts.Width,
	}
}

// Stdout gets the shell's output stream.
func (s *Shell) Stdout() io.Writer {
	return s.stdout
}

// Stderr gets the shell's error stream.
func (s *Shell) Stderr() io.Writer {
	return s.stderr
}

// Config gets the loaded preferences, nil if there are none.
func (s *Shell) Config() *config.Configuration {
	return s.config
}

// History gets the lines entered at the prompt, oldest first.
func (s *Shell) History() []string {
	return s.history
}

// Exited is true once the exit builtin ran.
func (s *Shell) Exited() bool {
	return s.exited
}

// LastStatus is the exit code of the most recent statement.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

// Prompt renders the configured prompt, "{}" is replaced with the working
// directory.
func (s *Shell) Prompt() string {
	prompt := DefaultPrompt
	if s.config != nil && s.config.Terminal.Prompt != "" {
		prompt = s.config.Terminal.Prompt
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = "?"
	}
	if home := os.Getenv(EnvHome); home != "" && (pwd == home || strings.HasPrefix(pwd, home+string(filepath.Separator))) {
		pwd = "~" + strings.TrimPrefix(pwd, home)
	}

	return commands.Unescape(strings.ReplaceAll(prompt, "{}", pwd))
}

func (s *Shell) start(interactive bool) {
	s.Controller.Start()

	wd, _ := os.Getwd()
	s.events.RecordOrLog(&logger.LogEntry_SessionStart{
		SessionStart: &logger.SessionStart{Interactive: interactive, WorkingDir: wd},
	}, s.log)
}

// RunCommand runs a single line non-interactively and returns its status.
func (s *Shell) RunCommand(line string) int {
	s.start(false)
	return s.RunLine(line)
}

// Run starts the interactive loop and returns when the user exits or input
// can no longer be read.
func (s *Shell) Run() error {
	s.start(true)

	if err := s.initReadline(); err != nil {
		return err
	}

	if s.config != nil {
		for _, script := range s.config.ScriptPaths() {
			if s.exited {
				return nil
			}
			s.RunScript(script)
		}
	}

	for !s.exited {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == readline.ErrInterrupt:
			fmt.Fprintln(s.stderr, ExitHint)
			continue

		case err == io.EOF:
			if !s.isTerminal {
				return nil
			}
			fmt.Fprintln(s.stderr, ExitHint)
			continue

		case err != nil:
			return fmt.Errorf("reading line: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			s.history = append(s.history, line)
		}
		s.RunLine(line)
	}

	return nil
}

func (s *Shell) initReadline() error {
	stdin := s.stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}

	cfg := &readline.Config{
		Prompt: s.Prompt(),
		Stdin:  readline.NewCancelableStdin(stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
		FuncGetWidth: func() int {
			return s.width()
		},
		FuncIsTerminal: func() bool {
			return s.isTerminal
		},
	}

	if !s.isTerminal {
		// Raw mode would be applied to the process's own stdin.
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}

	if s.config != nil {
		cfg.HistoryFile = s.config.HistoryPath()
		cfg.HistoryLimit = s.config.Terminal.HistoryLimit
		if cfg.HistoryLimit == 0 {
			// readline treats 0 as the default limit.
			cfg.HistoryLimit = -1
		}
	}

	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	s.Readline = rl
	return nil
}

// RunLine runs every statement of line in order and returns the status of
// the last one.
func (s *Shell) RunLine(line string) int {
	if strings.TrimSpace(line) == "" {
		return s.lastStatus
	}

	tokens, err := splitLine(line)
	if err != nil {
		fmt.Fprintf(s.stderr, "yarp: syntax error: %v\n", err)
		s.lastStatus = 2
		return s.lastStatus
	}

	for _, stmt := range pipeline.ParseTokens(s.expandAliases(tokens)) {
		if s.exited {
			break
		}
		s.lastStatus = s.runStatement(stmt)
	}
	return s.lastStatus
}

func (s *Shell) runStatement(stmt pipeline.Statement) int {
	if stmt.Empty() {
		return s.lastStatus
	}

	if len(stmt.Stages) == 1 {
		if status, ok := s.runInProcess(stmt.Stages[0]); ok {
			return status
		}
	}

	outcome := s.Controller.Run(stmt)
	if outcome.Err != nil {
		errorColor.Fprintln(s.stderr, outcome.Err)
	}
	return outcome.ExitCode
}

// expandAliases replaces the first word of each statement with its alias,
// once. Alias values are split with the same quoting rules as typed lines.
func (s *Shell) expandAliases(tokens []pipeline.Token) []pipeline.Token {
	if s.config == nil || len(s.config.Terminal.Alias) == 0 {
		return tokens
	}

	var out []pipeline.Token
	first := true
	for _, tok := range tokens {
		if first && tok.Kind == pipeline.Word {
			first = false
			if value, ok := s.config.Terminal.Alias[tok.Text]; ok {
				expanded, err := splitLine(value)
				if err == nil {
					out = append(out, expanded...)
					continue
				}
				s.log.Printf("alias %s: %v", tok.Text, err)
			}
		}
		if tok.Kind == pipeline.StatementSeparator {
			first = true
		}
		out = append(out, tok)
	}
	return out
}

// runInProcess runs shell builtins and command applets. It returns false if
// the stage names neither.
func (s *Shell) runInProcess(stage pipeline.Stage) (int, bool) {
	builtin, isBuiltin := AllBuiltins[stage.Name]
	_, isApplet := commands.Lookup(stage.Name)
	if !isBuiltin && !isApplet {
		return 0, false
	}

	args := stage.Argv()
	s.events.RecordOrLog(&logger.LogEntry_RunCommand{
		RunCommand: &logger.RunCommand{Command: args, Builtin: true},
	}, s.log)

	if isBuiltin {
		return builtin.Main(s, args), true
	}

	status, err := commands.Run(args, s.procAttr())
	if err != nil {
		errorColor.Fprintln(s.stderr, err)
	}
	return status, true
}

func (s *Shell) procAttr() commands.ProcAttr {
	return commands.ProcAttr{
		Stdin:  s.stdin,
		Stdout: s.stdout,
		Stderr: s.stderr,
		Fs:     s.fs,
		PTY: commands.PTY{
			Width: s.width(),
			IsPTY: s.isTerminal,
		},
		Resolver: s.resolver,
		Config:   s.config,
		Log:      s.log,
	}
}

// RunScript runs a file one line at a time. Blank lines and lines starting
// with # are skipped.
func (s *Shell) RunScript(path string) int {
	contents, err := afero.ReadFile(s.fs, path)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		fmt.Fprintf(s.stderr, "yarp: %s: %v\n", path, err)
		s.lastStatus = 1
		return s.lastStatus
	}

	for _, line := range strings.Split(string(contents), "\n") {
		if s.exited {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		s.RunLine(line)
	}
	return s.lastStatus
}

// Close shuts down the job controller and the line reader.
func (s *Shell) Close() error {
	s.Controller.RequestShutdown()
	if s.Readline != nil {
		return s.Readline.Close()
	}
	return nil
}
