package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Gunvolt24/buzzline/config"
	"github.com/Gunvolt24/buzzline/internal/app"
)

func main() {
	// локальное окружение; отсутствие файла — не ошибка
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, &cfg)
	if err != nil {
		panic(err)
	}

	runErr := a.Run(ctx)
	cleanup()

	// Фоновая ошибка (например, потеря соединения с базой) — ненулевой код выхода,
	// чтобы оркестратор перезапустил сервис.
	if runErr != nil {
		os.Exit(1)
	}
}
