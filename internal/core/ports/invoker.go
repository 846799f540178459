// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/xtask/internal/core/domain"
)

// Invoker defines the interface for running the external build tool.
//
//go:generate mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Invoke runs the build tool once for the given definition and waits for it to exit.
	//
	// A nonzero exit status is reported through BuildResult.ExitCode and is not an error.
	// It returns an error only when the tool could not be started, in which case the
	// result is nil.
	Invoke(ctx context.Context, def domain.BuildDefinition) (*domain.BuildResult, error)
}

// InvokerFactory creates an Invoker bound to a toolchain.
type InvokerFactory func(tc domain.Toolchain) Invoker
