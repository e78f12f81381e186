// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/readalong/internal/core/book"
	"github.com/taibuivan/readalong/internal/core/dashboard"
	"github.com/taibuivan/readalong/internal/core/leaderboard"
	"github.com/taibuivan/readalong/internal/core/progress"
	"github.com/taibuivan/readalong/internal/platform/config"
	"github.com/taibuivan/readalong/internal/platform/constants"
	"github.com/taibuivan/readalong/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Book handles the catalogue and deadline schedules.
	Book *book.Handler

	// Progress handles the entry ledger and per-reader snapshots.
	Progress *progress.Handler

	// Leaderboard handles the cached ranked views.
	Leaderboard *leaderboard.Handler

	// Dashboard composes a book's full reading dashboard.
	Dashboard *dashboard.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Authentication
	// Login is a redirect to the external identity provider; tokens come back
	// through it, never from this server.
	r.Get("/auth/login", loginRedirect(cfg.IDPLoginURL))

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	// Every per-book surface shares the one {slug} route so the router never
	// sees two competing parameter patterns.
	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/books", func(books chi.Router) {
			h.Book.RegisterCatalogueRoutes(books)

			books.Route("/{slug}", func(perBook chi.Router) {
				h.Book.RegisterBookRoutes(perBook)
				h.Progress.RegisterRoutes(perBook)
				h.Dashboard.RegisterRoutes(perBook)

				perBook.Route("/leaderboard", func(boards chi.Router) {
					h.Leaderboard.RegisterRoutes(boards)
				})
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// loginRedirect sends the client to the external identity provider.
func loginRedirect(idpLoginURL string) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		http.Redirect(writer, request, idpLoginURL, http.StatusFound)
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
