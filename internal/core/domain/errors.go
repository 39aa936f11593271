package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnrecognizedPlatform is returned when a platform name or value has no overlay rule.
	ErrUnrecognizedPlatform = zerr.New("unrecognized platform")

	// ErrToolchainFailed is returned when the toolchain process exits with a non-zero status.
	ErrToolchainFailed = zerr.New("toolchain failed")

	// ErrSpawnFailed is returned when the toolchain executable cannot be located or started.
	ErrSpawnFailed = zerr.New("failed to start toolchain")

	// ErrEmptyCommand is returned when a resolved invocation has no program to run.
	ErrEmptyCommand = zerr.New("invocation has no program")

	// ErrConfigReadFailed is returned when the profile file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read profile file")

	// ErrConfigParseFailed is returned when the profile file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse profile file")

	// ErrInvalidFlag is returned when a profile flag entry does not name exactly one kind.
	ErrInvalidFlag = zerr.New("invalid flag, expected exactly one of enable, disable, with or option")

	// ErrInvalidToolchain is returned when the profile toolchain section is incomplete.
	ErrInvalidToolchain = zerr.New("invalid toolchain entry point")
)

// annotate attaches metadata to sentinel while keeping it matchable with errors.Is.
func annotate(sentinel error, key string, value any) error {
	return zerr.With(zerr.Wrap(sentinel, ""), key, value)
}

// ToolchainError reports a toolchain process that ran and exited non-zero.
type ToolchainError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *ToolchainError) Error() string {
	return fmt.Sprintf("toolchain exited with status %d", e.ExitCode)
}

// Unwrap exposes both ErrToolchainFailed and the underlying process error.
func (e *ToolchainError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrToolchainFailed}
	}
	return []error{ErrToolchainFailed, e.Err}
}

// SpawnError reports a toolchain that could not be started at all.
type SpawnError struct {
	Program string
	Err     error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to start toolchain %q", e.Program)
	}
	return fmt.Sprintf("failed to start toolchain %q: %v", e.Program, e.Err)
}

// Unwrap exposes both ErrSpawnFailed and the underlying start error.
func (e *SpawnError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrSpawnFailed}
	}
	return []error{ErrSpawnFailed, e.Err}
}
