// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TaskVault Contributors

// Package httpapi exposes the account and todo services over HTTP.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/oops"

	"github.com/taskvault/taskvault/internal/auth"
	"github.com/taskvault/taskvault/internal/todo"
)

// Authenticator is the account-facing surface the API depends on.
type Authenticator interface {
	Register(ctx context.Context, login, password string) (auth.AuthToken, error)
	Login(ctx context.Context, login, password string) (auth.AuthToken, error)
	Authorize(ctx context.Context, token string) (int64, error)
}

// TodoWorkflow is the todo-facing surface the API depends on.
type TodoWorkflow interface {
	Create(ctx context.Context, ownerID int64, title, description string) (*todo.TodoItem, error)
	List(ctx context.Context, filters todo.Filters) ([]*todo.TodoItem, int64, error)
	Get(ctx context.Context, id int64) (*todo.TodoItem, error)
	Update(ctx context.Context, ownerID, itemID int64, next todo.Status) (*todo.TodoItem, error)
}

// ServerConfig holds the dependencies for NewServer.
type ServerConfig struct {
	Accounts Authenticator
	Todos    TodoWorkflow
	Logger   *slog.Logger
}

// Server is the HTTP transport for the service.
type Server struct {
	echo     *echo.Echo
	accounts Authenticator
	todos    TodoWorkflow
	logger   *slog.Logger
	now      func() time.Time
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Accounts == nil {
		return nil, oops.Errorf("accounts is required")
	}
	if cfg.Todos == nil {
		return nil, oops.Errorf("todos is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		echo:     echo.New(),
		accounts: cfg.Accounts,
		todos:    cfg.Todos,
		logger:   logger,
		now:      time.Now,
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.requestLogger())
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.echo.POST("/register", s.handleRegister)
	s.echo.POST("/login", s.handleLogin)

	api := s.echo.Group("", s.requireAuth)
	api.POST("/todo", s.handleCreateTodo)
	api.GET("/todo", s.handleListTodos)
	api.GET("/todo/:id", s.handleGetTodo)
	api.PATCH("/todo/:id", s.handleUpdateTodo)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves the API on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server starting", "addr", addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return oops.With("addr", addr).Wrap(err)
	}
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return oops.With("operation", "shutdown_http_server").Wrap(err)
	}
	s.logger.Info("http server stopped")
	return nil
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogMethod: true,
		LogURI:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.InfoContext(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	})
}
