// Package server wires handlers, middleware, and routes, and owns the server
// lifecycle. It is the composition root: every dependency is constructed in
// New and injected down the handler tree, so each layer only receives what it
// needs. Handlers never touch the database; the store never touches HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/studyhub/studyhub/internal/auth"
	"github.com/studyhub/studyhub/internal/config"
	"github.com/studyhub/studyhub/internal/handler"
	"github.com/studyhub/studyhub/internal/middleware"
	sqliteRepo "github.com/studyhub/studyhub/internal/repository/sqlite"
	"github.com/studyhub/studyhub/internal/store"
	"github.com/studyhub/studyhub/internal/summary"
)

// Server holds the router and the resources it owns. The database connection
// is closed during graceful shutdown to flush the WAL and release the file
// lock.
type Server struct {
	router *chi.Mux
	config config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
	store  *store.Store
}

// New assembles the full dependency chain: database, identity slot, state
// store, token service, summary client, handlers, routes. A previously
// persisted session user is restored before the server accepts traffic.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating token service: %w", err)
	}

	st := store.New(db, store.Options{
		CampusDomain: cfg.CampusEmailDomain,
		DemoEmail:    cfg.DemoEmail,
	}, logger)

	if err := st.Restore(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
		store:  st,
	}

	s.setupRoutes(tokens, summary.NewClient(cfg.GeminiAPIKey, logger))
	return s, nil
}

// setupRoutes configures middleware and the API route tree.
//
// Middleware order matters: request ID first so every later log line can
// carry it, then real IP, the request logger, and the panic recoverer.
func (s *Server) setupRoutes(tokens *auth.TokenService, summaries *summary.Client) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	if len(s.config.CorsOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true, // the session cookie must cross origins in dev
			MaxAge:           300,
		}))
	}

	authHandler := handler.NewAuthHandler(s.store, tokens, s.logger)
	questionHandler := handler.NewQuestionHandler(s.store, s.logger)
	resourceHandler := handler.NewResourceHandler(s.store, s.logger)
	answerHandler := handler.NewAnswerHandler(s.store, s.logger)
	voteHandler := handler.NewVoteHandler(s.store, s.logger)
	communityHandler := handler.NewCommunityHandler(s.store, s.logger)
	summaryHandler := handler.NewSummaryHandler(s.store, summaries, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Get("/questions", questionHandler.HandleList)
		r.Get("/questions/{id}", questionHandler.HandleGet)
		r.Post("/questions/{id}/summary", summaryHandler.HandleCreate)

		r.Get("/resources", resourceHandler.HandleList)

		// Voting deliberately has no auth gate: logged-out votes count, only
		// the karma side effect needs a session.
		r.With(auth.OptionalAuth(tokens)).Post("/votes", voteHandler.HandleCreate)

		r.Get("/leaderboard", communityHandler.HandleLeaderboard)
		r.Get("/courses", communityHandler.HandleCourses)
		r.Get("/stats", communityHandler.HandleStats)

		// Session-only routes. The JWT middleware rejects requests without a
		// valid cookie; the handlers then read the session from the store.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(tokens))

			r.Get("/me", authHandler.HandleMe)
			r.Get("/activity", communityHandler.HandleActivity)
			r.Post("/questions", questionHandler.HandleCreate)
			r.Post("/resources", resourceHandler.HandleCreate)
			r.Post("/answers", answerHandler.HandleCreate)
		})
	})
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully: stop accepting connections, give in-flight requests 30 seconds,
// close the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
