// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	handleHTTP "github.com/clarin-dspace/handle-resolver/internal/handle/http"
	"github.com/clarin-dspace/handle-resolver/internal/handle/plugin"
	"github.com/clarin-dspace/handle-resolver/internal/http"
	"github.com/clarin-dspace/handle-resolver/internal/kernel"
	"github.com/clarin-dspace/handle-resolver/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	config *config.Config

	// ctx bounds background work of components; cancelled by Shutdown.
	ctx    context.Context
	cancel context.CancelFunc

	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics
	kernelManager   *kernel.Manager
	kernelFactory   kernel.Factory
	handleStorage   *plugin.Plugin
	handleHandler   *handleHTTP.HandleHandler
	httpServer      *http.Server
	metricsServer   *http.MetricsServer

	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	kernelManagerInit   sync.Once
	handleStorageInit   sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	ctx, cancel := context.WithCancel(context.Background())
	return &Container{
		config:     cfg,
		ctx:        ctx,
		cancel:     cancel,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// once runs init under o and returns the error it recorded for key, if any.
func (c *Container) once(o *sync.Once, key string, init func() error) error {
	o.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[key] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.once(&c.metricsProviderInit, "metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the resolver operation metrics, a no-op
// implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.once(&c.businessMetricsInit, "businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		c.businessMetrics = bm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// KernelManager returns the manager owning the service kernel. The kernel
// itself is started lazily by the handle storage.
func (c *Container) KernelManager() (*kernel.Manager, error) {
	err := c.once(&c.kernelManagerInit, "kernelManager", func() error {
		return c.initKernelManager()
	})
	if err != nil {
		return nil, err
	}
	return c.kernelManager, nil
}

// HandleStorage returns the read-only handle storage.
func (c *Container) HandleStorage() (*plugin.Plugin, error) {
	err := c.once(&c.handleStorageInit, "handleStorage", func() error {
		manager, err := c.KernelManager()
		if err != nil {
			return fmt.Errorf("failed to get kernel manager for handle storage: %w", err)
		}
		c.handleStorage = plugin.New(manager, c.Logger())
		c.handleHandler = handleHTTP.NewHandleHandler(c.handleStorage, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.handleStorage, nil
}

// HTTPServer returns the resolver HTTP server with its router set up.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.once(&c.httpServerInit, "httpServer", func() error {
		storage, err := c.HandleStorage()
		if err != nil {
			return fmt.Errorf("failed to get handle storage for http server: %w", err)
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}

		server := http.NewServer(storage, c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(c.ctx, c.config, c.handleHandler, provider)
		c.httpServer = server
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.once(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown stops the kernel and flushes metrics. Servers are stopped by
// their owners.
func (c *Container) Shutdown(ctx context.Context) error {
	c.cancel()

	var shutdownErrors []error

	if c.kernelManager != nil {
		if err := c.kernelManager.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("kernel shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

func (c *Container) initKernelManager() error {
	logger := c.Logger()

	provider, err := c.MetricsProvider()
	if err != nil {
		return err
	}

	// The use case is only decorated when metrics are exported.
	var bm metrics.BusinessMetrics
	if provider != nil {
		if bm, err = c.BusinessMetrics(); err != nil {
			return fmt.Errorf("failed to get business metrics for kernel: %w", err)
		}
	}

	factory := c.kernelFactory
	if factory == nil {
		factory = func() (kernel.Kernel, error) {
			return newServiceKernel(c.config, logger, bm), nil
		}
	}
	manager := kernel.NewManager(factory, logger)

	if provider != nil {
		if err := metrics.RegisterKernelState(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
			manager.IsRunning,
		); err != nil {
			return err
		}
	}

	c.kernelManager = manager
	return nil
}
