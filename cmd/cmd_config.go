package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zbiljic/gitprompt/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gitprompt configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  `Writes the default configuration to the user config location and prints its path. Fails when a configuration file already exists.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInitE,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file in use",
	Args:  cobra.NoArgs,
	RunE:  runConfigPathE,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigInitE(cmd *cobra.Command, args []string) error {
	if path, ok := config.GetPath(); ok {
		return fmt.Errorf("config file already exists: %s", path)
	}

	path := config.GetDefaultPath()
	if path == "" {
		return errors.New("cannot determine home directory")
	}

	if err := config.Save(config.NewDefault(), path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}

func runConfigPathE(cmd *cobra.Command, args []string) error {
	path, ok := config.GetPath()
	if !ok {
		return errors.New("no config file found, run 'gitprompt config init' to create one")
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
