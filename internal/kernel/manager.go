package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/atomic"
)

// Manager guards the process-wide kernel instance.
type Manager struct {
	factory Factory
	logger  *slog.Logger

	mu      sync.Mutex
	kernel  Kernel
	running atomic.Bool
}

// NewManager creates a Manager that builds kernels with factory.
func NewManager(factory Factory, logger *slog.Logger) *Manager {
	return &Manager{factory: factory, logger: logger}
}

// EnsureStarted returns the running kernel, constructing and starting it on
// the first call. Concurrent callers wait for the first one; only one kernel
// is ever constructed per successful start. A failed start leaves no kernel
// behind and returns a *StartupError.
func (m *Manager) EnsureStarted(ctx context.Context) (Kernel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.kernel != nil {
		if m.kernel.IsRunning() {
			return m.kernel, nil
		}
		m.logger.Warn("kernel is no longer running, restarting")
		m.destroyQuietly(ctx, m.kernel)
		m.kernel = nil
		m.running.Store(false)
	}

	k, err := m.factory()
	if err != nil {
		return nil, &StartupError{Cause: err}
	}

	if err := k.Start(ctx); err != nil {
		m.logger.Error("failed to start kernel", slog.Any("error", err))
		m.destroyQuietly(ctx, k)
		return nil, &StartupError{Cause: err}
	}

	m.kernel = k
	m.running.Store(true)
	m.logger.Info("kernel started")
	return k, nil
}

// Shutdown destroys the kernel if one was started. It is safe to call more
// than once and before EnsureStarted.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.kernel == nil {
		return nil
	}

	k := m.kernel
	m.kernel = nil
	m.running.Store(false)

	if err := k.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy kernel: %w", err)
	}
	m.logger.Info("kernel destroyed")
	return nil
}

// IsRunning reports whether a started kernel is held. It does not block.
func (m *Manager) IsRunning() bool {
	return m.running.Load()
}

// destroyQuietly is best-effort cleanup of a kernel that failed to start or
// stopped running. Errors and panics are logged at warn and never returned.
func (m *Manager) destroyQuietly(ctx context.Context, k Kernel) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("panic while destroying kernel", slog.Any("panic", r))
		}
	}()

	if err := k.Destroy(ctx); err != nil {
		m.logger.Warn("failed to destroy kernel", slog.Any("error", err))
	}
}
