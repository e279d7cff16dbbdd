package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetup/internal/config"
	"meetup/internal/http-server/middleware/auth"
	"meetup/internal/http-server/router"
	"meetup/internal/lib/logger/handlers/slogpretty"
	"meetup/internal/lib/logger/sl"
	"meetup/internal/lib/session"
	"meetup/internal/policy"
	"meetup/internal/services/meetup"
	"meetup/internal/storage/postgres"
	"meetup/internal/storage/redis"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting meetup", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	loc, err := cfg.Location()
	if err != nil {
		log.Error("invalid time zone", sl.Err(err))
		os.Exit(1)
	}

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(context.Background()); err != nil {
		log.Error("failed to apply schema", sl.Err(err))
		os.Exit(1)
	}

	// the cache is optional; without it every public view reads postgres
	var cache meetup.EventCache
	if cfg.Cache.RedisURL != "" {
		rc, err := redis.New(context.Background(), cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Warn("redis unavailable, running without cache", sl.Err(err))
		} else {
			cache = rc
			defer rc.Close()
		}
	}

	exchanger, err := session.NewGoTrueExchanger(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseAnonKey)
	if err != nil {
		log.Error("failed to init supabase client", sl.Err(err))
		os.Exit(1)
	}

	svc := meetup.New(log, storage, policy.New(storage), cache, loc)

	handler := router.New(log, router.Deps{
		Meetup:        svc,
		Exchanger:     exchanger,
		DB:            storage,
		Auth:          auth.New(log, session.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), cfg.Auth.LoginPath),
		RateLimit:     cfg.RateLimit,
		SecureCookies: cfg.Auth.CookieSecure,
		TrustProxy:    cfg.HTTPServer.TrustProxy,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
