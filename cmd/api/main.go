// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/bot"
	"purchase-tracker/internal/config"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/handler"
	"purchase-tracker/internal/service"
	"purchase-tracker/internal/storage/postgres"
	"purchase-tracker/migrations"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()

	// Настройка логгера
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := migrations.Up(cfg.DBConn); err != nil {
			slog.Error("Не удалось применить миграции", "error", err)
			os.Exit(1)
		}
		slog.Info("✅ Миграции применены")
	}

	pool, err := postgres.Connect(ctx, cfg.DBConn, cfg.DBConnectAttempts)
	if err != nil {
		slog.Error("Не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := postgres.NewStorage(pool)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			slog.Error("Не удалось подключиться к RabbitMQ", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()
		publisher = rabbit
		slog.Info("✅ События покупок публикуются в RabbitMQ", "queue", cfg.AMQPQueue)
	}

	services := service.New(store, auth.NewPasswordHasher(cfg.BcryptCost), publisher)
	tokenService := auth.NewTokenService(cfg)

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(services, tokenService, cfg.AuthEnabled)

	if cfg.TelegramBotToken != "" && cfg.TelegramWebhookURL != "" {
		if err := mountTelegramWebhook(router, cfg, bot.New(services.Purchases, services.Locations)); err != nil {
			slog.Error("Не удалось инициализировать Telegram бота", "error", err)
			os.Exit(1)
		}
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           corsHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("🚀 Сервер запущен", "addr", cfg.ServerPort, "auth", cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Сервер завершил работу с ошибкой", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Останавливаем сервер...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Ошибка при остановке сервера", "error", err)
	}
}

// mountTelegramWebhook регистрирует webhook у Telegram и принимает обновления на POST /telegram.
func mountTelegramWebhook(router *gin.Engine, cfg config.Config, b *bot.Bot) error {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return err
	}

	webhook, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL + "/telegram")
	if err != nil {
		return err
	}
	if _, err := api.Request(webhook); err != nil {
		return err
	}
	slog.Info("Telegram webhook установлен", "url", webhook.URL.String())

	router.POST("/telegram", func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Ошибка парсинга обновления", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		b.HandleUpdate(c.Request.Context(), api, update)
		c.Status(http.StatusOK)
	})
	return nil
}
