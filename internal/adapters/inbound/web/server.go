// Package web exposes the auditor over HTTP.
package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	pagelensmiddleware "github.com/pagelens/pagelens/internal/adapters/inbound/web/middleware"
)

type API struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

func NewAPI(logger zerolog.Logger, config Config, auditor Auditor) *API {
	handler := NewHandler(auditor)

	router := chi.NewRouter()
	router.Use(pagelensmiddleware.Logger(&logger))
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/audits", handler.CreateAudit)
	})

	return &API{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
	}
}

// Router exposes the mux for tests.
func (a *API) Router() http.Handler { return a.router }

func (a *API) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		a.logger.Info().Str("addr", a.server.Addr).Msg("starting server")
		serverErrors <- a.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		a.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := a.server.Shutdown(ctx)
		if err != nil {
			a.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = a.server.Close()
		}
		if err != nil {
			return err
		}
	}

	return nil
}
