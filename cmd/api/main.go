package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Coca162/Denarius/internal/adapter/handler"
	"github.com/Coca162/Denarius/internal/adapter/middleware"
	"github.com/Coca162/Denarius/internal/adapter/storage"
	"github.com/Coca162/Denarius/internal/core/config"
	"github.com/Coca162/Denarius/internal/core/worker"
)

func main() {
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPool, err := storage.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	personRepo := storage.NewPersonRepository(dbPool)
	accountRepo := storage.NewAccountRepository(dbPool)
	ledgerRepo := storage.NewLedgerRepository(dbPool)
	webhookQueue := storage.NewWebhookQueue(dbPool)

	personHandler := &handler.PersonHandler{Repo: personRepo}
	ecoHandler := &handler.EcoHandler{
		Accounts:   accountRepo,
		Ledger:     ledgerRepo,
		Hooks:      webhookQueue,
		WebhookURL: cfg.WebhookURL,
	}
	healthHandler := &handler.HealthHandler{DB: dbPool, Accounts: accountRepo}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handler.ErrorHandler,
	})

	app.Use(middleware.RequestID())
	app.Use(cors.New())

	handler.RegisterRoutes(app, personHandler, ecoHandler, healthHandler, middleware.Idempotency(dbPool))

	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker.StartWebhookWorker(workerCtx, webhookQueue, cfg.WebhookSecret)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "env", cfg.Env, "addr", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	stopWorker()

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	dbPool.Close()
	slog.Info("server exited")
}
