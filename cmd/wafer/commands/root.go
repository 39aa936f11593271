// Package commands implements the CLI commands for wafer.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/wafer/internal/app"
	"go.trai.ch/wafer/internal/build"
	"go.trai.ch/wafer/internal/core/domain"
)

// CLI represents the command line interface for wafer.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	started  bool
	shutdown func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, opts app.ResolveOptions) error
	Resolve(ctx context.Context, opts app.ResolveOptions) (domain.InvocationSpec, error)
	Platforms() []domain.Platform
	SetJSONLogs(enable bool)
	EnableTracing() func(context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "wafer",
		Short:         "Resolve and run the waf build of the flight software stack",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log the duration of every build phase")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.before

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newPlatformsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// before runs once arguments are validated, ahead of any command.
func (c *CLI) before(cmd *cobra.Command, _ []string) error {
	if err := cmd.ValidateFlagGroups(); err != nil {
		return &UsageError{Err: err}
	}
	c.started = true

	logJSON, _ := cmd.Flags().GetBool("log-json")
	c.app.SetJSONLogs(logJSON)

	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		c.shutdown = c.app.EnableTracing()
	}
	return nil
}

// Execute runs the root command with the given context.
// Errors raised before any command started are returned as *UsageError.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()

	if c.shutdown != nil {
		_ = c.shutdown(context.WithoutCancel(ctx))
	}

	var usageErr *UsageError
	if err != nil && !c.started && !errors.As(err, &usageErr) {
		return &UsageError{Err: err}
	}
	return err
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// UsageError reports a command line rejected before any command ran:
// unknown commands, unknown flags or wrong argument counts.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cobra error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// addResolveFlags registers the flags shared by build and resolve.
func addResolveFlags(cmd *cobra.Command) {
	cmd.Flags().String("os", "", "Target platform: posix, macosx, windows or auto (default from wafer.yaml, else posix)")
	cmd.Flags().StringP("config", "c", "", "Profile file to read instead of ./wafer.yaml")
}

func resolveOptions(cmd *cobra.Command) app.ResolveOptions {
	platform, _ := cmd.Flags().GetString("os")
	config, _ := cmd.Flags().GetString("config")
	return app.ResolveOptions{
		Platform:   platform,
		ConfigPath: config,
	}
}
