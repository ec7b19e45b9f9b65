package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and change the shell preferences.",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every preference.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		settings, err := configuration.List()
		if err != nil {
			return err
		}
		for _, setting := range settings {
			fmt.Fprintln(cmd.OutOrStdout(), setting)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get SECTION FIELD",
	Short: "Print a single preference.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		value, err := configuration.Get(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set SECTION FIELD VALUE",
	Short: "Change a preference and save it.",
	Long:  `Change a preference and save it. VALUE is parsed as YAML unless the field holds text.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		if err := configuration.Set(args[0], args[1], args[2]); err != nil {
			return err
		}
		return configuration.Save()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
