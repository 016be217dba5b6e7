// Package server exposes the search engine over HTTP.
//
// Routes:
//
//	POST /api/v1/path      single-source search from S to E
//	POST /api/v1/shortest  multi-source search from every lowest cell to E
//	GET  /healthz          liveness probe
//
// Every request gets a wall-clock budget (Config.Timeout) propagated to the
// engine as a context deadline, and a request id echoed in X-Request-ID.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/hillclimb/astar"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// Config holds server settings.
type Config struct {
	Addr          string
	Timeout       time.Duration
	MaxBodyBytes  int64
	Workers       int
	Strategy      astar.Strategy
	MaxClimb      int
	MaxExpansions int
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Timeout:      10 * time.Second,
		MaxBodyBytes: 1 << 20,
		Workers:      4,
		Strategy:     astar.StrategyIndependent,
		MaxClimb:     1,
	}
}

// Server wires the gin router to the engine.
type Server struct {
	cfg    Config
	log    *slog.Logger
	router *gin.Engine
}

// New builds a Server. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{cfg: cfg, log: logger, router: gin.New()}
	s.router.Use(gin.Recovery(), s.requestID(), s.accessLog())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := s.router.Group("/api/v1")
	api.POST("/path", s.handlePath)
	api.POST("/shortest", s.handleShortest)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestID assigns a uuid unless the client supplied one.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("Request served",
			"requestId", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
