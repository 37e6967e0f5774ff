package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pustakadigital/relevance/internal/logging"
	"github.com/pustakadigital/relevance/internal/telemetry"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 120 * time.Second
)

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port           int
	RateLimitRPS   int
	RateLimitBurst int
	Development    bool
}

// Server wraps the HTTP server of the relevance service.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds the router with middleware and routes, and wraps it in an
// http.Server with sane timeouts.
func NewServer(cfg ServerConfig, handler *Handler, provider *telemetry.Provider, logger logging.Logger) *Server {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestLogger(logger),
		Metrics(provider),
		RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)
	SetupRoutes(router, handler, provider)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or the server is shut down.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until the context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
