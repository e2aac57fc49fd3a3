package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/msto63/minipy/internal/provider"
	"github.com/msto63/minipy/internal/store"
	minilog "github.com/msto63/minipy/pkg/core/log"
)

// Server is the minipy HTTP server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	history    store.HistoryStore
	logger     *minilog.Logger
	config     Config
}

// Config holds server configuration
type Config struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxInputLength int
	Version        string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:           "0.0.0.0",
		Port:           8090,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   120 * time.Second,
		MaxInputLength: 65536,
		Version:        "1.0.0",
	}
}

// New creates a new minipy server. The provider manager and history
// store are optional.
func New(cfg Config, providers *provider.Manager, history store.HistoryStore) *Server {
	logger := minilog.GetDefault().WithField("component", "minipy-server")

	h := NewHandler(cfg.Version, providers, history, cfg.MaxInputLength)
	wsHandler := NewWebSocketHandler(cfg.MaxInputLength)

	mux := http.NewServeMux()

	// WebSocket route
	mux.Handle("/api/v1/ws", wsHandler)

	// API routes and web form
	mux.Handle("/", h)
	mux.Handle("/api/", h)
	mux.Handle("/api/v1/", h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		history:    history,
		logger:     logger,
		config:     cfg,
	}
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *minilog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request", minilog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Flush implements http.Flusher
func (w *responseWrapper) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("Starting minipy server", minilog.Fields{
		"host": s.config.Host,
		"port": s.config.Port,
	})
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() {
	s.logger.Info("Starting minipy server (async)", minilog.Fields{
		"host": s.config.Host,
		"port": s.config.Port,
	})

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorWithErr("HTTP server error", err)
		}
	}()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping minipy server")

	if s.history != nil {
		if err := s.history.Close(); err != nil {
			s.logger.WarnWithErr("Error closing history store", err)
		}
	}

	return s.httpServer.Shutdown(ctx)
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}
