package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mythicforge/hero-forge/internal/allocator"
	"github.com/mythicforge/hero-forge/internal/api/middleware"
	"github.com/mythicforge/hero-forge/internal/api/rest"
	"github.com/mythicforge/hero-forge/internal/api/shared/executor"
	"github.com/mythicforge/hero-forge/internal/logger"
	"github.com/mythicforge/hero-forge/internal/metadata"
	"github.com/mythicforge/hero-forge/internal/providers/ethereum"
	"github.com/mythicforge/hero-forge/internal/providers/pinata"
	"github.com/mythicforge/hero-forge/internal/providers/temporal"
	"github.com/mythicforge/hero-forge/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug                 bool
	Host                  string
	Port                  int
	ReadTimeout           time.Duration
	WriteTimeout          time.Duration
	IdleTimeout           time.Duration
	OrchestratorTaskQueue string
	Auth                  middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	uploader     pinata.Client
	updater      ethereum.Updater
	assembler    *metadata.Assembler
	httpServer   *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	dataStore store.Store,
	orchestrator temporal.TemporalOrchestrator,
	uploader pinata.Client,
	updater ethereum.Updater,
	assembler *metadata.Assembler,
) *Server {
	return &Server{
		config:       cfg,
		store:        dataStore,
		orchestrator: orchestrator,
		uploader:     uploader,
		updater:      updater,
		assembler:    assembler,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	exec := executor.NewExecutor(
		s.store,
		allocator.New(s.store),
		s.orchestrator,
		s.uploader,
		s.updater,
		s.assembler,
		s.config.OrchestratorTaskQueue,
	)

	restHandler := rest.NewHandler(exec)
	rest.SetupRoutes(router, restHandler, s.config.Auth)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
