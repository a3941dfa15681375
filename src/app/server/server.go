// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"contactbook/src/app/http/handler"
	"contactbook/src/app/http/response"
	"contactbook/src/app/middleware"
	"contactbook/src/core/ports"
	"contactbook/src/core/usecase"
	"contactbook/src/infra/config"
	"contactbook/src/infra/logger"
)

// Deps are the adapters the server's services are built on.
type Deps struct {
	Contacts ports.ContactRepository
	Users    ports.UserRepository
	Hasher   ports.PasswordHasher

	// Probes are checked by /health/detailed, keyed by component name.
	Probes map[string]ports.ExternalService
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	healthHandler  *handler.HealthHandler
	contactHandler *handler.ContactHandler
	userHandler    *handler.UserHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	if logger.IsDebug(cfg.Log) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	healthService := usecase.NewHealthService(log, deps.Probes)
	contactService := usecase.NewContactService(deps.Contacts, logger.WithComponent(log, "contacts"))
	userService := usecase.NewUserService(deps.Users, deps.Hasher, logger.WithComponent(log, "users"))

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		healthHandler:  handler.NewHealthHandler(healthService),
		contactHandler: handler.NewContactHandler(contactService),
		userHandler:    handler.NewUserHandler(userService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Recovery first so it catches panics from everything below.
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.Server.CORSOrigin))
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	{
		contacts := api.Group("/contacts")
		contacts.GET("", s.contactHandler.List)
		contacts.POST("", s.contactHandler.Create)
		contacts.GET("/:contact_id", s.contactHandler.Get)
		contacts.PUT("/:contact_id", s.contactHandler.Update)
		contacts.DELETE("/:contact_id", s.contactHandler.Delete)

		users := api.Group("/users")
		users.POST("", s.userHandler.Signup)
		users.GET("", s.userHandler.GetByEmail)
		users.POST("/confirm", s.userHandler.ConfirmEmail)
		users.PATCH("/avatar", s.userHandler.UpdateAvatar)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully.
func (s *Server) Run() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
