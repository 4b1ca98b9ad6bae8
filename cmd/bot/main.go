package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/salon_bot/internal/app"
	"github.com/Freeeeeet/salon_bot/internal/config"
	"github.com/Freeeeeet/salon_bot/internal/controller"
	"github.com/Freeeeeet/salon_bot/internal/repository"
	"github.com/Freeeeeet/salon_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)

	defer logger.Sync()

	logger.Sugar().Infow("Starting salon calendar bot",
		"environment", cfg.Environment,
		"token_length", len(cfg.TelegramToken))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Подключаемся к базе
	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}

	// Применяем миграции
	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Собираем слои: репозитории -> сервисы -> контроллер
	appointmentRepo := repository.NewAppointmentRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)

	hours := service.BusinessHours{
		OpenHour:        cfg.OpenHour,
		CloseHour:       cfg.CloseHour,
		SlotStepMinutes: cfg.SlotStepMinutes,
	}
	appointmentService := service.NewAppointmentService(appointmentRepo, hours, logger)
	staffService := service.NewStaffService(staffRepo, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, appointmentService, staffService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	// Фоновые задачи (автозавершение прошедших записей)
	scheduler := app.NewScheduler(appointmentService, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot stopped")
}
