package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sales-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-sales-keeper/internal/handler/http"
	"github.com/MKhiriev/go-sales-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	background []Stopper
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handler. background components are
// stopped once the HTTP server has shut down.
func NewServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger, background ...Stopper) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandlerProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT arrives or the listener
// fails, then shuts everything down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the HTTP server first so no request reaches a stopped
// worker pool.
func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	for _, b := range s.background {
		b.Stop()
	}
}

func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err = <-serveErr:
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}
