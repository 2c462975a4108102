package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-food-order/internal/config"
	"github.com/MKhiriev/go-food-order/internal/handler"
	"github.com/MKhiriev/go-food-order/internal/logger"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type server struct {
	servers         []*httpServer
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	servers := []*httpServer{
		newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), logger),
	}

	if cfg.MetricsAddress != "" && handlers.Metrics != nil {
		router := chi.NewRouter()
		router.Handle("/metrics", handlers.Metrics.Handler())
		servers = append(servers, newHTTPServer("metrics", cfg.MetricsAddress, router, logger))
	}

	return &server{
		servers:         servers,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	// bind every address up front so a taken port fails fast
	listeners := make([]net.Listener, 0, len(s.servers))
	for _, srv := range s.servers {
		ln, err := srv.listen()
		if err != nil {
			for _, opened := range listeners {
				opened.Close()
			}
			return err
		}
		listeners = append(listeners, ln)
	}

	g, gctx := errgroup.WithContext(ctx)

	for i, srv := range s.servers {
		g.Go(func() error {
			return srv.serve(listeners[i])
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range s.servers {
			if err := srv.shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
