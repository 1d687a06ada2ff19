// Package server hosts the localized option list component behind a chi
// router with access logging and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	tzselect "github.com/goliatone/go-tzselect"
	"github.com/goliatone/go-tzselect/components/timezones"
	"github.com/goliatone/go-tzselect/internal/config"
	"github.com/goliatone/go-tzselect/pkg/zoneselect"
)

type Server struct {
	cfg     *config.Config
	logger  zerolog.Logger
	router  chi.Router
	metrics *Metrics
	route   string
}

// New wires the component, health and metrics routes. A nil registry gets a
// fresh one so servers never collide on the default registerer.
func New(cfg *config.Config, helper *tzselect.Helper, logger zerolog.Logger, reg *prometheus.Registry) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: missing config")
	}
	if helper == nil {
		return nil, errors.New("server: missing helper")
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	var locales localeSet
	if set, ok := helper.Translator().(localeSet); ok {
		locales = set
	}
	metrics := NewMetrics(reg, locales)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	component := timezones.New(
		timezones.WithHelper(helper),
		timezones.WithRoutePath(cfg.Server.RoutePath),
		timezones.WithDefaultLocale(cfg.Locale.Default),
		timezones.WithPriority(cfg.PriorityZones()),
		timezones.WithSettings(zoneselect.Settings{PriorityLabel: cfg.Locale.PriorityLabel}),
		timezones.WithObserver(metrics.Observe),
	)
	route, err := component.RegisterRoutes(r, "/")
	if err != nil {
		return nil, fmt.Errorf("server: register routes: %w", err)
	}

	return &Server{
		cfg:     cfg,
		logger:  logger,
		router:  r,
		metrics: metrics,
		route:   route,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Route returns the path the option list component is mounted on.
func (s *Server) Route() string {
	return s.route
}

// Run serves until ctx is cancelled, then shuts down within the configured
// grace period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Str("route", s.route).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	grace := s.cfg.ShutdownGrace()
	s.logger.Info().Dur("grace", grace).Msg("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
