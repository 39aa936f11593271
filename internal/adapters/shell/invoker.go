// Package shell runs resolved toolchain invocations as child processes.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"go.trai.ch/wafer/internal/core/domain"
	"go.trai.ch/wafer/internal/core/ports"
)

// Invoker implements ports.Invoker using os/exec.
// Nil streams fall back to the process's own stdin, stdout and stderr.
type Invoker struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Dir is the working directory of the child. Empty means the caller's.
	Dir string
	// Env replaces the inherited environment when non-nil.
	Env []string
}

// NewInvoker creates an Invoker wired to the process's standard streams.
func NewInvoker() *Invoker {
	return &Invoker{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var _ ports.Invoker = (*Invoker)(nil)

// Invoke runs spec and waits for it to exit.
//
// The child is not tied to ctx cancellation: once started it runs until it
// exits on its own or receives a signal from the terminal.
func (i *Invoker) Invoke(ctx context.Context, spec domain.InvocationSpec) error {
	program := spec.Program()
	if program == "" {
		return domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(context.WithoutCancel(ctx), program, spec.Args()...) //nolint:gosec // argv comes from the resolved profile
	cmd.Dir = i.Dir
	cmd.Env = i.Env
	cmd.Stdin = orReader(i.Stdin, os.Stdin)
	cmd.Stdout = orWriter(i.Stdout, os.Stdout)
	cmd.Stderr = orWriter(i.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return &domain.SpawnError{Program: program, Err: err}
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.ToolchainError{ExitCode: exitCode(exitErr), Err: err}
		}
		return &domain.ToolchainError{ExitCode: 1, Err: err}
	}

	return nil
}

// exitCode maps a process exit to a shell-style status.
// Signal deaths become 128+signal.
func exitCode(err *exec.ExitError) int {
	if code := err.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
