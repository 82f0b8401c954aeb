package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

const idleTimeout = 120 * time.Second

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

// newHTTPServer bounds every request by cfg.RequestTimeout: the request
// context carries the deadline and a handler still running past it answers
// 504.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	if cfg.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	}

	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			IdleTimeout:       idleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// RunServer blocks in ListenAndServe. A graceful Shutdown is not an error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("HTTP server listening")
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
		return err
	}
	return nil
}

// Shutdown waits for in-flight requests for at most shutdownTimeout.
func (h *httpServer) Shutdown() {
	ctx := context.Background()
	if h.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.shutdownTimeout)
		defer cancel()
	}

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
