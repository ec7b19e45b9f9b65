package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/yarp-sh/yarp/core/config"
)

var homeDir string

// exitStatus is returned by commands that need the process to exit with a
// specific status without printing an error.
type exitStatus int

func (e exitStatus) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func resolveHome() (string, error) {
	if homeDir != "" {
		return homeDir, nil
	}
	return config.DefaultDir()
}

// loadConfig loads existing preferences, it fails if they don't exist.
func loadConfig() (*config.Configuration, error) {
	dir, err := resolveHome()
	if err != nil {
		return nil, err
	}

	configuration, err := config.Load(dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load preferences: did you run init?")
	}

	return configuration, err
}

// initConfig loads preferences, writing the defaults first if needed.
func initConfig(logOut io.Writer) (*config.Configuration, error) {
	dir, err := resolveHome()
	if err != nil {
		return nil, err
	}

	return config.Initialize(dir, log.New(logOut, "", 0))
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yarp",
	Short: "An interactive shell",
	Long:  `An interactive shell that runs pipelines of programs and lets you cancel the one in the foreground.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runShell(cmd, nil)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	var status exitStatus
	if errors.As(err, &status) {
		os.Exit(int(status))
	}
	cobra.CheckErr(err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "directory holding preferences and logs (default is the user config dir)")
}
