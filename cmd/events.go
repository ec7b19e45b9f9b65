package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yarp-sh/yarp/core/logger"
	"sigs.k8s.io/yaml"
)

var (
	reportFailures bool
	reportSessions bool
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Explore the shell event log.",
}

type eventReport interface {
	Update(le *logger.LogEntry)
}

var reportCommand = &cobra.Command{
	Use:   "report",
	Short: "Show a report of events.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		config, err := loadConfig()
		if err != nil {
			return err
		}

		fd, err := config.ReadEventLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		var report eventReport
		switch {
		case reportFailures && reportSessions:
			return fmt.Errorf("--failures and --sessions can't be combined")
		case reportFailures:
			report = logger.NewFailureReport()
		case reportSessions:
			report = &logger.SessionReport{}
		default:
			report = &logger.Report{}
		}

		if err := logger.ReadJSONLinesLog(fd, report.Update); err != nil {
			return err
		}

		out, err := yaml.Marshal(report)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(reportCommand)

	reportCommand.Flags().BoolVar(&reportFailures, "failures", false, "only report commands that couldn't run")
	reportCommand.Flags().BoolVar(&reportSessions, "sessions", false, "report the commands of each session")
}
