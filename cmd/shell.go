package cmd

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yarp-sh/yarp/core"
	"github.com/yarp-sh/yarp/core/logger"
	"golang.org/x/term"
)

const defaultWidth = 80

var shellCommand string

var shellCmd = &cobra.Command{
	Use:   "shell [-c LINE]",
	Short: "Start the shell, or run a single line with -c.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		if cmd.Flags().Changed("command") {
			return runShell(cmd, &shellCommand)
		}
		return runShell(cmd, nil)
	},
}

// runShell runs the interactive shell, or only line if it's non-nil.
func runShell(cmd *cobra.Command, line *string) error {
	configuration, err := initConfig(io.Discard)
	if err != nil {
		return err
	}

	var logWriters []io.Writer
	if configuration.Logs.WriteToFile {
		runLog, err := configuration.CreateRunLog(time.Now())
		if err != nil {
			return err
		}
		defer runLog.Close()
		logWriters = append(logWriters, runLog)
	}
	if configuration.Logs.WriteToStdout {
		logWriters = append(logWriters, cmd.ErrOrStderr())
	}
	appLog := logger.NewAppLogger(logWriters...)

	eventLog, err := configuration.OpenEventLog()
	if err != nil {
		return err
	}
	defer eventLog.Close()
	events := logger.NewJsonLinesLogRecorder(eventLog).NewSession()
	appLog.Printf("Starting session %s", events.SessionID())

	stdinFd := int(os.Stdin.Fd())
	stdoutFd := int(os.Stdout.Fd())

	shell := core.NewShell(core.ShellOptions{
		Stdin:      os.Stdin,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
		Config:     configuration,
		Log:        appLog,
		Events:     events,
		IsTerminal: term.IsTerminal(stdinFd),
		Width: func() int {
			width, _, err := term.GetSize(stdoutFd)
			if err != nil || width <= 0 {
				return defaultWidth
			}
			return width
		},
	})
	defer shell.Close()

	var status int
	if line != nil {
		status = shell.RunCommand(*line)
	} else {
		if err := shell.Run(); err != nil {
			appLog.Println(err)
			return err
		}
		status = shell.LastStatus()
	}

	shell.Close()
	appLog.Printf("Session %s finished with status %d", events.SessionID(), status)

	if status < 0 {
		// Statements that never ran or were killed have no exit code.
		status = 1
	}
	if status != 0 {
		cmd.SilenceErrors = true
		return exitStatus(status)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().StringVarP(&shellCommand, "command", "c", "", "run LINE and exit with its status")
}
