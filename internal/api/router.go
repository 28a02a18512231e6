package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"roadguard/internal/api/handlers/http/admin"
	"roadguard/internal/api/handlers/http/public"
	"roadguard/internal/api/handlers/http/system"
	"roadguard/internal/config"
	"roadguard/internal/middleware"
	"roadguard/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service) *Server {
	adminHandler := admin.NewHandler(logger, svc.Accidents, svc.Dispatch)
	publicHandler := public.NewHandler(logger, svc.Accidents, svc.Severity, svc.Notifications)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// RequestID first so it lands in chi.Logger lines
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.Stats)

			ar.Route("/accidents", func(rr chi.Router) {
				rr.Get("/", adminHandler.AccidentList)

				rr.Route("/{id}", func(ir chi.Router) {
					ir.Patch("/status", adminHandler.AccidentUpdateStatus)
					ir.Patch("/assign", adminHandler.AccidentAssignOfficer)
					ir.Delete("/", adminHandler.AccidentDelete)
				})
			})

			ar.Route("/dispatch", func(dr chi.Router) {
				dr.Post("/manual", adminHandler.DispatchManual)
				dr.Get("/active", adminHandler.DispatchActive)
				dr.Get("/pending", adminHandler.DispatchPending)
				dr.Get("/completed", adminHandler.DispatchCompleted)
				dr.Get("/accident/{id}", adminHandler.DispatchByAccident)
				dr.Patch("/{id}/status", adminHandler.DispatchAdvanceStatus)
			})
		})

		// PUBLIC
		api.Route("/accidents", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/", publicHandler.AccidentReport)
			pr.Post("/analyze", publicHandler.AccidentAnalyze)
			pr.Get("/{id}", publicHandler.AccidentGet)
			pr.Get("/report/{reportNumber}", publicHandler.AccidentGetByReportNumber)
		})

		api.Route("/severity", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Post("/classify", publicHandler.SeverityClassify)
		})

		api.Route("/notifications", func(pr chi.Router) {
			pr.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			pr.Get("/", publicHandler.NotificationList)
			pr.Patch("/{id}/read", publicHandler.NotificationMarkRead)
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
