// Package server exposes the generation services over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduforge/eduforge/internal/config"
	"github.com/eduforge/eduforge/internal/exercises"
	"github.com/eduforge/eduforge/internal/flashcards"
	"github.com/eduforge/eduforge/internal/games"
	"github.com/eduforge/eduforge/internal/learningpath"
	"github.com/eduforge/eduforge/internal/llm"
	"github.com/eduforge/eduforge/internal/roadmap"
	"github.com/eduforge/eduforge/internal/summarize"
)

// Services bundles the generators the server fronts.
type Services struct {
	LearningPath *learningpath.Service
	Summarize    *summarize.Service
	Flashcards   *flashcards.Service
	Exercises    *exercises.Service
	Games        *games.Service
	Roadmap      *roadmap.Service
}

// NewServices builds all generators on a shared provider with default
// per-service settings.
func NewServices(provider llm.Provider) Services {
	return Services{
		LearningPath: learningpath.NewService(provider, learningpath.DefaultConfig()),
		Summarize:    summarize.NewService(provider, summarize.DefaultConfig()),
		Flashcards:   flashcards.NewService(provider, flashcards.DefaultConfig()),
		Exercises:    exercises.NewService(provider, exercises.DefaultConfig()),
		Games:        games.NewService(provider, games.DefaultConfig()),
		Roadmap:      roadmap.NewService(provider, roadmap.DefaultConfig()),
	}
}

// Server is the HTTP front for the generation services.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	svc    Services
	engine *gin.Engine
}

// New creates a server with all routes registered.
func New(cfg config.Config, log *zap.Logger, svc Services) *Server {
	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		cfg:    cfg,
		log:    log,
		svc:    svc,
		engine: gin.New(),
	}
	s.engine.MaxMultipartMemory = cfg.Limits.MaxUploadBytes
	s.registerRoutes()
	return s
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Server.Port,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
