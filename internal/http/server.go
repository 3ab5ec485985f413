// Package http provides the resolver HTTP server, its middleware and the
// separate metrics server.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clarin-dspace/handle-resolver/internal/config"
	handleHTTP "github.com/clarin-dspace/handle-resolver/internal/handle/http"
	"github.com/clarin-dspace/handle-resolver/internal/metrics"
)

// ReadinessChecker reports whether the kernel and its store can serve requests.
type ReadinessChecker interface {
	Ping(ctx context.Context) error
}

// Server represents the resolver HTTP server.
type Server struct {
	server    *http.Server
	logger    *slog.Logger
	readiness ReadinessChecker
	router    *gin.Engine
}

// NewServer creates a new HTTP server. A nil readiness checker makes /ready
// always report not ready.
func NewServer(
	readiness ReadinessChecker,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		logger:    logger,
		readiness: readiness,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with middleware and all routes. ctx bounds
// background work started by middleware.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	handleHandler *handleHTTP.HandleHandler,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	resolver := router.Group("")
	if cfg.RateLimitEnabled {
		resolver.Use(RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	if handleHandler != nil {
		handleHandler.RegisterRoutes(resolver)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.readiness == nil {
		s.notReady(c, nil)
		return
	}
	if err := s.readiness.Ping(ctx); err != nil {
		s.notReady(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"kernel": "ok"},
	})
}

func (s *Server) notReady(c *gin.Context, err error) {
	if err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":     "not_ready",
		"components": gin.H{"kernel": "error"},
	})
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
