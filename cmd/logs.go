package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yarp-sh/yarp/commands"
	"github.com/yarp-sh/yarp/core/config"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Explore the application logs of previous runs.",
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the run logs, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		runLogs, err := configuration.RunLogs()
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, runLog := range runLogs {
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				runLog.ModTime.Format("2006-01-02 15:04:05"),
				commands.BytesToHuman(runLog.Size),
				runLog.Name)
		}
		return tw.Flush()
	},
}

var logsLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Print the most recent run log.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		runLogs, err := configuration.RunLogs()
		if err != nil {
			return err
		}
		if len(runLogs) == 0 {
			return fmt.Errorf("no logs in %s", configuration.Path(config.LogsDirName))
		}

		fd, err := configuration.ReadRunLog(runLogs[0].Name)
		if err != nil {
			return err
		}
		defer fd.Close()

		_, err = io.Copy(cmd.OutOrStdout(), fd)
		return err
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsLastCmd)
}
