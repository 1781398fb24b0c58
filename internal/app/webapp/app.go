// Package webapp assembles the web application: the backend API client,
// the redis-backed session store, the template renderer and the HTTP
// server with all routes.
package webapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/TheoNshimyimana/success-frontend/internal/api"
	"github.com/TheoNshimyimana/success-frontend/internal/cache"
	"github.com/TheoNshimyimana/success-frontend/internal/config"
	"github.com/TheoNshimyimana/success-frontend/internal/session"
	"github.com/TheoNshimyimana/success-frontend/internal/web"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "webapp.New"

	cacheRedis, err := cache.New(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := api.New(cfg.BackendAPI, logger)
	sessions := session.NewStore(cacheRedis, cfg.SessionStore, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, client, sessions, renderer)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.cache.Db.Close()
		return err
	}
}
