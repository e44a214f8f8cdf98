package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/danendrashafi/ai-portfolio/backend/internal/config"
	"github.com/danendrashafi/ai-portfolio/backend/internal/handler"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/ai"
	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/fallback"
)

// app holds the services shared by every subcommand.
type app struct {
	profile *profile.Profile
	ask     *askService.Service
	logger  *zap.Logger
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	p, err := profile.Load(cfg.Fallback.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	var opts []fallback.Option
	if cfg.Fallback.Seed != nil {
		opts = append(opts, fallback.WithRand(fallback.NewSeeded(*cfg.Fallback.Seed)))
	}
	composer, err := fallback.NewComposer(p, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build fallback composer: %w", err)
	}

	// A nil *ai.Service must not be stored in the interface.
	var generator askService.Generator
	aiSvc, err := ai.NewService(ctx, p, cfg.AI, logger)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		logger.Warn("LLM_API_KEY not set, answering from the fallback core only")
	case err != nil:
		logger.Warn("failed to initialize AI service, answering from the fallback core only", zap.Error(err))
	default:
		generator = aiSvc
		logger.Info("AI service initialized",
			zap.String("model", cfg.AI.Model),
			zap.String("base_url", cfg.AI.BaseURL),
			zap.Bool("stream", cfg.AI.StreamResponse))
	}

	return &app{
		profile: p,
		ask:     askService.NewService(generator, composer, logger),
		logger:  logger,
	}, nil
}

func (a *app) router() http.Handler {
	return handler.NewRouter(a.profile, a.ask, a.logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) error {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("AI portfolio backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
