package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	elliotlab "github.com/set-night/elliotlab"
	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/handler"
	"github.com/set-night/elliotlab/internal/kv"
	"github.com/set-night/elliotlab/internal/middleware"
	"github.com/set-night/elliotlab/internal/repository"
	"github.com/set-night/elliotlab/internal/service"
	"github.com/set-night/elliotlab/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open storage; an unavailable backend degrades to an in-memory session
	backing, closeStorage := openStorage(ctx, cfg)
	defer closeStorage()

	lab := service.NewLab(backing, service.LabConfig{
		Think: service.ThinkTime{
			Base:   cfg.ThinkBase,
			Jitter: cfg.ThinkJitter,
		},
		HistoryLimit:   cfg.HistoryLimit,
		ChatIdleTTL:    cfg.ChatIdleTTL,
		DialogueWeight: cfg.DialogueWeight,
		CommentWeight:  cfg.CommentWeight,
		Logger:         logger,
	})

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(middleware.NewLimiter(cfg.RateLimitPerMinute, config.RateLimitBurst, cfg.ChatIdleTTL)),
			middleware.ChatLoader(cfg),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}

	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	tgLogger := telegram.NewTelegramLogger(b, cfg)

	h := handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Lab:         lab,
		TgLogger:    tgLogger,
		BotUsername: me.Username,
	})
	h.Register()

	slog.Info("starting bot", "username", me.Username, "storage", cfg.StorageBackend)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}

func openStorage(ctx context.Context, cfg *config.Config) (kv.Store, func()) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendPebble:
		p, err := kv.OpenPebble(cfg.PebblePath)
		if err != nil {
			slog.Warn("pebble unavailable, falling back to memory", "error", err)
			return kv.NewMemory(), noop
		}
		return p, func() {
			if err := p.Close(); err != nil {
				slog.Error("close pebble", "error", err)
			}
		}

	case config.BackendPostgres:
		migrationsFS, err := fs.Sub(elliotlab.MigrationsFS, "migrations")
		if err != nil {
			slog.Error("failed to load embedded migrations", "error", err)
			return kv.NewMemory(), noop
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Warn("migrations failed, falling back to memory", "error", err)
			return kv.NewMemory(), noop
		}
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Warn("database unavailable, falling back to memory", "error", err)
			return kv.NewMemory(), noop
		}
		return repository.NewKVStore(pool), pool.Close

	default:
		return kv.NewMemory(), noop
	}
}
