// Package kernel owns the lifecycle of the service kernel that backs the
// handle storage: the database, the repository properties and the handle use
// case. A Manager starts the kernel at most once per process and tears it
// down exactly once.
package kernel

import (
	"context"
	"errors"
	"fmt"

	"github.com/clarin-dspace/handle-resolver/internal/handle/usecase"
)

// ErrStartup matches every *StartupError through errors.Is.
var ErrStartup = errors.New("kernel startup failed")

// Kernel is the set of backing services used by the resolver.
type Kernel interface {
	Start(ctx context.Context) error
	Destroy(ctx context.Context) error
	IsRunning() bool
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
	Handles() usecase.HandleUseCase
}

// Factory constructs a new, not yet started kernel.
type Factory func() (Kernel, error)

// StartupError reports a failed kernel construction or start.
type StartupError struct {
	Cause error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("%s: %v", ErrStartup, e.Cause)
}

// Unwrap returns the root cause.
func (e *StartupError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrStartup.
func (e *StartupError) Is(target error) bool {
	return target == ErrStartup
}
