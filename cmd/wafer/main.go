// Package main is the entry point for the wafer build launcher.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/wafer/cmd/wafer/commands"
	"go.trai.ch/wafer/internal/app"
	"go.trai.ch/wafer/internal/core/domain"
	_ "go.trai.ch/wafer/internal/wiring"
)

const (
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 127
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available when initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		var tcErr *domain.ToolchainError
		if errors.As(err, &tcErr) && tcErr.ExitCode > 0 {
			// The toolchain already reported its own failure.
			return tcErr.ExitCode
		}
		components.Logger.Error(err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	var usageErr *commands.UsageError
	switch {
	case errors.Is(err, domain.ErrSpawnFailed):
		return exitNotFound
	case errors.As(err, &usageErr), errors.Is(err, domain.ErrUnrecognizedPlatform):
		return exitUsage
	default:
		return exitFailure
	}
}
