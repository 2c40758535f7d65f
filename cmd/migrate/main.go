// cmd/migrate/main.go
package main

import (
	"log/slog"
	"os"
	"purchase-tracker/internal/config"
	"purchase-tracker/migrations"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := migrations.Up(cfg.DBConn); err != nil {
		slog.Error("Миграции завершились с ошибкой", "error", err)
		os.Exit(1)
	}

	slog.Info("✅ Миграции применены")
}
