package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	"github.com/clarin-dspace/handle-resolver/internal/handle/usecase"
	"github.com/clarin-dspace/handle-resolver/internal/kernel"
	"github.com/clarin-dspace/handle-resolver/internal/metrics"
)

type stubKernel struct {
	running   atomic.Bool
	destroyed atomic.Int32
}

func (k *stubKernel) Start(context.Context) error {
	k.running.Store(true)
	return nil
}

func (k *stubKernel) Destroy(context.Context) error {
	k.running.Store(false)
	k.destroyed.Inc()
	return nil
}

func (k *stubKernel) IsRunning() bool                { return k.running.Load() }
func (k *stubKernel) Ping(context.Context) error     { return nil }
func (k *stubKernel) Handles() usecase.HandleUseCase { return nil }

func testConfig(metricsEnabled bool) *config.Config {
	return &config.Config{
		LogLevel:         "error",
		DBDriver:         "postgres",
		ServerHost:       "localhost",
		ServerPort:       8080,
		MetricsEnabled:   metricsEnabled,
		MetricsNamespace: "test_app",
		MetricsPort:      8081,
	}
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig(false)

	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	container := NewContainer(testConfig(false))
	assert.Nil(t, container.logger)

	logger := container.Logger()

	require.NotNil(t, logger)
	assert.Same(t, logger, container.Logger())
}

func TestContainer_LoggerLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "invalid"} {
		t.Run(level, func(t *testing.T) {
			cfg := testConfig(false)
			cfg.LogLevel = level

			assert.NotNil(t, NewContainer(cfg).Logger())
		})
	}
}

func TestContainer_MetricsDisabled(t *testing.T) {
	container := NewContainer(testConfig(false))

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	assert.Nil(t, provider)

	bm, err := container.BusinessMetrics()
	require.NoError(t, err)
	assert.IsType(t, &metrics.NoOpBusinessMetrics{}, bm)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	assert.Nil(t, metricsServer)
}

func TestContainer_MetricsEnabled(t *testing.T) {
	container := NewContainer(testConfig(true))
	container.kernelFactory = func() (kernel.Kernel, error) { return &stubKernel{}, nil }
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	provider, err := container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	_, err = container.KernelManager()
	require.NoError(t, err)

	metricsServer, err := container.MetricsServer()
	require.NoError(t, err)
	require.NotNil(t, metricsServer)

	w := httptest.NewRecorder()
	metricsServer.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_app_kernel_running")
}

func TestContainer_HTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	container := NewContainer(testConfig(false))
	container.kernelFactory = func() (kernel.Kernel, error) { return &stubKernel{}, nil }
	defer func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	}()

	server, err := container.HTTPServer()
	require.NoError(t, err)
	require.NotNil(t, server.GetHandler())

	again, err := container.HTTPServer()
	require.NoError(t, err)
	assert.Same(t, server, again)

	w := httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// the kernel is not started by building the server
	w = httptest.NewRecorder()
	server.GetHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestContainer_KernelLifecycle(t *testing.T) {
	stub := &stubKernel{}
	builds := atomic.NewInt32(0)

	container := NewContainer(testConfig(false))
	container.kernelFactory = func() (kernel.Kernel, error) {
		builds.Inc()
		return stub, nil
	}

	storage, err := container.HandleStorage()
	require.NoError(t, err)

	require.NoError(t, storage.Init(context.Background(), nil))
	require.NoError(t, storage.Init(context.Background(), nil))
	assert.Equal(t, int32(1), builds.Load())
	assert.True(t, stub.IsRunning())

	manager, err := container.KernelManager()
	require.NoError(t, err)
	assert.True(t, manager.IsRunning())

	require.NoError(t, container.Shutdown(context.Background()))
	assert.False(t, stub.IsRunning())
	assert.Equal(t, int32(1), stub.destroyed.Load())
}

func TestContainer_ShutdownWithoutComponents(t *testing.T) {
	container := NewContainer(testConfig(false))

	assert.NoError(t, container.Shutdown(context.Background()))
}
