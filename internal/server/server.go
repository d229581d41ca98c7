// Package server exposes the client, fund and analysis views as a JSON API.
// All state behind the API is in-memory; process lifetime is data lifetime.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gubermangroup/fundmatch/internal/gemini"
	"github.com/gubermangroup/fundmatch/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// Server wires the stores and the matching service to the HTTP surface.
type Server struct {
	echo     *echo.Echo
	clients  *store.ClientStore
	funds    *store.FundStore
	matcher  gemini.MatchingService
	analysis *analysisRunner
	logger   *zap.Logger
	config   *Config
}

// New creates the HTTP server.
func New(clients *store.ClientStore, funds *store.FundStore, matcher gemini.MatchingService, logger *zap.Logger, cfg *Config) (*Server, error) {
	if clients == nil || funds == nil {
		return nil, fmt.Errorf("client and fund stores are required")
	}
	if matcher == nil {
		return nil, fmt.Errorf("matching service is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host: "localhost",
			Port: 8080,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})

	s := &Server{
		echo:     e,
		clients:  clients,
		funds:    funds,
		matcher:  matcher,
		analysis: newAnalysisRunner(clients, funds, matcher, logger),
		logger:   logger,
		config:   cfg,
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")

	v1.GET("/clients", s.handleListClients)
	v1.POST("/clients", s.handleAddClients)
	v1.POST("/clients/import", s.handleImportClients)
	v1.POST("/clients/demo", s.handleLoadDemo)
	v1.DELETE("/clients", s.handleClearClients)
	v1.DELETE("/clients/imported", s.handleClearImported)

	v1.GET("/funds", s.handleListFunds)
	v1.POST("/funds", s.handleAddFund)
	v1.DELETE("/funds/:id", s.handleRemoveFund)

	v1.GET("/analysis", s.handleGetAnalysis)
	v1.POST("/analysis/run", s.handleRunAnalysis)
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
