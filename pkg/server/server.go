// Package server serves the shift board over HTTP: HTML event cards for people and JSON for scripts.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rosterboard/shiftboard/internal/config"
	"github.com/rosterboard/shiftboard/pkg/core/severity"
	"github.com/rosterboard/shiftboard/pkg/core/shiftevent"
	"github.com/rosterboard/shiftboard/pkg/db"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var boardTemplate = template.Must(template.ParseFS(templateFS, "templates/board.html.tmpl"))

// Server holds the dependencies shared by all handlers
type Server struct {
	store     db.ShiftStore
	renderer  *shiftevent.Renderer
	colorizer *severity.Colorizer
	cfg       config.ServerConfig
	logger    *zap.Logger

	Mux *chi.Mux
}

func New(
	store db.ShiftStore,
	renderer *shiftevent.Renderer,
	colorizer *severity.Colorizer,
	cfg config.ServerConfig,
	logger *zap.Logger,
) *Server {
	s := &Server{
		store:     store,
		renderer:  renderer,
		colorizer: colorizer,
		cfg:       cfg,
		logger:    logger,
		Mux:       chi.NewRouter(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Mux.Use(s.requestID)
	s.Mux.Use(s.requestLogger)
	s.Mux.Use(s.recoverer)

	s.Mux.Get("/healthz", s.healthz)

	s.Mux.Get("/", s.board)
	s.Mux.Route("/shifts", func(r chi.Router) {
		r.Get("/", s.board)
		r.Route("/{tenantID}/{id}", func(r chi.Router) {
			r.Get("/", s.shiftCard)
			r.Post("/edit", s.editShift)
			r.Post("/delete", s.deleteShift)
		})
	})

	s.Mux.Route("/api", func(r chi.Router) {
		r.Get("/shifts", s.listShifts)
		r.Get("/shifts/{tenantID}/{id}/indictments", s.shiftIndictments)
		r.Get("/color", s.scoreColor)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully within the configured timeout
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Mux,
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
		ErrorLog:     zap.NewStdLog(s.logger),
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}
