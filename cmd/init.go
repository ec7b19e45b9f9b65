package cmd

import (
	"github.com/spf13/cobra"
)

// initCmd intializes the preferences directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default preferences if they don't exist.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		_, err := initConfig(cmd.ErrOrStderr())
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
