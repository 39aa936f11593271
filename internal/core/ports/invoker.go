// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wafer/internal/core/domain"
)

// Invoker runs a resolved toolchain invocation as a single external process.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke starts the process described by spec and blocks until it exits.
	//
	// It returns a *domain.SpawnError if the program cannot be started and a
	// *domain.ToolchainError carrying the exit status if it exits non-zero.
	Invoke(ctx context.Context, spec domain.InvocationSpec) error
}
