package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"labelsheet/internal/app"
	"labelsheet/internal/processing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// ShutdownTimeout bounds how long in-flight requests may finish after Run's context ends
const ShutdownTimeout = 10 * time.Second

// Server is the HTTP front end of the label sheet generator
type Server struct {
	cfg     *app.Config
	metrics *Metrics
	router  chi.Router
}

// New builds the router. job's outcomes are reported to the server's metrics.
func New(cfg *app.Config, job *processing.LabelJob) *Server {
	metrics := NewMetrics()
	job.WithObserver(metrics)

	s := &Server{
		cfg:     cfg,
		metrics: metrics,
	}
	s.router = s.routes(NewHandler(cfg, job))
	return s
}

func (s *Server) routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", h.Teams)
		r.Post("/labels", h.GenerateLabels)
	})

	return r
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's metrics
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.ListenAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(listener)
	}()

	log.Info().
		Str("addr", listener.Addr().String()).
		Strs("teams", s.cfg.Teams).
		Msg("Label sheet server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	log.Info().Msg("Shutting down label sheet server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	// Serve returns ErrServerClosed once Shutdown begins
	<-errCh
	return nil
}
