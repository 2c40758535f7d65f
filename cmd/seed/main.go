// cmd/seed/main.go
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"purchase-tracker/internal/auth"
	"purchase-tracker/internal/config"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/seed"
	"purchase-tracker/internal/service"
	"purchase-tracker/internal/storage/postgres"
	"purchase-tracker/migrations"

	"github.com/brianvoe/gofakeit/v6"
)

func main() {
	random := flag.Int("random", 0, "сколько случайных покупок добавить после фикстур")
	fakerSeed := flag.Int64("faker-seed", 0, "seed генератора (0 = случайный)")
	migrate := flag.Bool("migrate", false, "применить миграции перед заливкой")
	flag.Parse()

	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if *migrate || cfg.AutoMigrate {
		if err := migrations.Up(cfg.DBConn); err != nil {
			slog.Error("Не удалось применить миграции", "error", err)
			os.Exit(1)
		}
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DBConn, cfg.DBConnectAttempts)
	if err != nil {
		slog.Error("Не удалось подключиться к БД", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	services := service.New(postgres.NewStorage(pool), auth.NewPasswordHasher(cfg.BcryptCost), events.NopPublisher{})

	slog.Info("Заливаем фикстуры...")
	if err := seed.Fixtures(ctx, services); err != nil {
		slog.Error("Ошибка во время заливки", "error", err)
		os.Exit(1)
	}

	if *random > 0 {
		created, err := seed.Random(ctx, services, gofakeit.New(*fakerSeed), *random)
		if err != nil {
			slog.Error("Ошибка при генерации случайных покупок", "error", err, "created", len(created))
			os.Exit(1)
		}
		slog.Info("Случайные покупки добавлены", "count", len(created))
	}

	slog.Info("✅ Заливка завершена")
}
