package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/interviewprep-backend/internal/adapter/postgres"
	"github.com/heartmarshall/interviewprep-backend/internal/config"
	"github.com/heartmarshall/interviewprep-backend/internal/transport/middleware"
	"github.com/heartmarshall/interviewprep-backend/internal/transport/rest"
	"github.com/heartmarshall/interviewprep-backend/migrations"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("llm_enabled", cfg.LLM.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("app: %w", err)
		}
	}

	svc := NewServices(logger, pool, cfg)

	composeLimiter := middleware.NewRateLimiter(cfg.RateLimit.Compose, rateLimitCleanupInterval)
	defer composeLimiter.Stop()
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.Login, rateLimitCleanupInterval)
	defer loginLimiter.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Auth:        rest.NewAuthHandler(svc.Auth, logger),
		Catalog:     rest.NewCatalogHandler(svc.Catalog, logger),
		Content:     rest.NewContentHandler(svc.Content, logger),
		Compose:     rest.NewComposeHandler(svc.Compose, logger),
		Preferences: rest.NewPreferencesHandler(svc.User, logger),
		Playlists:   rest.NewPlaylistHandler(svc.Playlist, logger),
		Progress:    rest.NewProgressHandler(svc.Progress, logger),
	}, rest.RouterOptions{
		ComposeLimiter: composeLimiter,
		LoginLimiter:   loginLimiter,
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.ClientIP(cfg.Server.TrustProxyHeaders),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(svc.Auth),
	)(mux)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	}
}
