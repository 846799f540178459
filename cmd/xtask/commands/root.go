// Package commands implements the CLI commands for xtask.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xtask/internal/adapters/config" //nolint:depguard // Default filename only
	"go.trai.ch/xtask/internal/app"
	"go.trai.ch/xtask/internal/build"
	"go.trai.ch/xtask/internal/core/ports"
)

// jsonSwitcher is implemented by loggers that can emit structured JSON.
type jsonSwitcher interface {
	SetJSON(enabled bool)
}

// CLI represents the command line interface for xtask.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "xtask",
		Short:         "Invoke the project toolchain for a target and profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Path to configuration file")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.applyLogFormat

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	jsonLogs, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	if s, ok := c.logger.(jsonSwitcher); ok {
		s.SetJSON(jsonLogs)
	}
	return nil
}
