// cmd/bot/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/bot"
	"purchase-tracker/internal/config"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/service"
	"purchase-tracker/internal/storage/postgres"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Бот в режиме long polling; для webhook-режима см. cmd/api.
func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if cfg.TelegramBotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN не задан")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DBConn, cfg.DBConnectAttempts)
	if err != nil {
		slog.Error("Не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Бот только читает, события не публикует
	services := service.New(postgres.NewStorage(pool), auth.NewPasswordHasher(cfg.BcryptCost), events.NopPublisher{})
	b := bot.New(services.Purchases, services.Locations)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		slog.Error("Не удалось инициализировать Telegram бота", "error", err)
		os.Exit(1)
	}
	slog.Info("🚀 Бот запущен", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			slog.Info("Бот остановлен")
			return
		case update := <-updates:
			b.HandleUpdate(ctx, api, update)
		}
	}
}
