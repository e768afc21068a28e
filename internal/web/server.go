package web

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/addrsplit/internal/config"
	"github.com/addrsplit/internal/web/handlers"
	"github.com/addrsplit/internal/web/middleware"
)

// shutdownTimeout bounds how long in-flight requests may run after a stop
// signal arrives
const shutdownTimeout = 30 * time.Second

// Server represents the web server
type Server struct {
	config     *config.Config
	logger     zerolog.Logger
	httpServer *http.Server
	router     *mux.Router
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, logger zerolog.Logger) *Server {
	server := &Server{
		config: cfg,
		logger: logger,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// setupRoutes configures all HTTP routes and the middleware chain
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	// Request ID first so everything downstream can log it
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recovery(s.logger))
	if s.config.Features.Metrics {
		metrics := middleware.NewMetrics("addrsplit")
		s.router.Use(metrics.Middleware)
		s.router.Handle("/metrics", metrics.Handler()).Methods("GET")
	}
	s.router.Use(middleware.RequestLogging(s.logger))
	if s.config.Features.CORS {
		s.router.Use(middleware.CORS())
	}
	s.router.Use(middleware.ContentType())
	s.router.Use(middleware.MaxBodySize(s.config.Limits.MaxBodyBytes))

	// Convert config for handlers
	handlerConfig := &handlers.Config{}
	handlerConfig.Features.MetricsEnabled = s.config.Features.Metrics

	splitHandler := &handlers.SplitHandler{Validate: validator.New(), Logger: s.logger}
	discoveryHandler := &handlers.DiscoveryHandler{Config: handlerConfig}
	healthHandler := &handlers.HealthHandler{}

	// Preflight only matters when browsers are allowed in
	splitMethods := []string{"POST"}
	if s.config.Features.CORS {
		splitMethods = append(splitMethods, "OPTIONS")
	}

	s.router.HandleFunc("/split", splitHandler.SplitAddress).Methods(splitMethods...)
	s.router.HandleFunc("/", discoveryHandler.Describe).Methods("GET")
	s.router.HandleFunc("/health", healthHandler.Check).Methods("GET")
}

// Handler returns the fully configured route tree
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the server until SIGINT or SIGTERM, then shuts down gracefully
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("starting http server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("http server error")
		}
	}()

	<-stop
	s.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
