// Package server exposes the dashboard views, exports and saved filters over
// a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	vistamiddleware "github.com/alexanderramin/vista/internal/server/middleware"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Dashboard service.DashboardService
	Exports   service.ExportService
	Filters   service.SavedFilterService
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	// Dark selects the dark palette when a request has no theme parameter.
	Dark         bool
	Dependencies Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)
	timeout := config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: timeout,
	}
}

// ConfigureRouter builds the /api/v1 routes.
func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	h := &handler{
		dashboard: config.Dependencies.Dashboard,
		exports:   config.Dependencies.Exports,
		filters:   config.Dependencies.Filters,
		dark:      config.Dark,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(vistamiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/views", h.ListViews)
		r.Get("/views/{view}", h.GetView)
		r.Get("/views/{view}/export/{format}", h.ExportView)
		r.Get("/records", h.ListRecords)
		r.Get("/filters", h.ListFilters)
		r.Post("/filters", h.SaveFilter)
		r.Get("/filters/{id}", h.GetFilter)
		r.Put("/filters/{id}/default", h.SetDefaultFilter)
		r.Delete("/filters/{id}", h.DeleteFilter)
	})
	return router
}

// Handler returns the router, for tests and embedding.
func (w *WebAPI) Handler() http.Handler { return w.router }

// Start serves until ctx is cancelled, then shuts down gracefully.
func (w *WebAPI) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(shutdownCtx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}
		return err
	}
}
