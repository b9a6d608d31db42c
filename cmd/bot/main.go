package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-export-roster/internal/bot"
	"telegram-export-roster/internal/health"
	"telegram-export-roster/internal/log"
	"telegram-export-roster/internal/pkg/config"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadConfig("config.yml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to validate config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с маскировкой токенов и настройками из конфига
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	switch cfg.Logging.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	logger := log.NewMaskedLogger(handler)
	slog.SetDefault(logger)

	// Внутренний логгер библиотеки Bot API тоже уводим в slog.
	if err := tgbotapi.SetLogger(&log.TGBotAPIAdapter{Logger: logger.With(slog.String("component", "tgbotapi"))}); err != nil {
		slog.Warn("failed to set bot api logger", slog.Any("error", err))
	}

	sessions := bot.NewSessionStore()

	b, err := bot.NewBot(cfg.Bot, sessions, logger.With(slog.String("component", "bot")))
	if err != nil {
		slog.Error("failed to create bot", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Bot created successfully, starting...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var healthSrv *health.Server
	if cfg.Health.Enabled {
		healthSrv = health.New(cfg.Health.Port, logger.With(slog.String("component", "health")))
		go func() {
			if err := healthSrv.Start(); err != nil {
				slog.Error("health server stopped", slog.Any("error", err))
			}
		}()
	}

	go b.Start(ctx)

	<-ctx.Done()

	slog.Info("Shutting down bot...")

	if healthSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := healthSrv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown health server", slog.Any("error", err))
		}
	}

	slog.Info("Bot stopped gracefully")
}
